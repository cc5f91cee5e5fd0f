package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad3DRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")

	env := newEnv()
	env.run(`create3d cube at 1, 2, 3 size 2
create3d sphere at 0, 5, 0
save3d "` + path + `"`)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("scene file not written: %v", err)
	}

	env2 := newEnv()
	env2.run(`load3d "` + path + `"`)
	if env2.interp.Scene.Len() != 2 {
		t.Fatalf("loaded %d shapes, want 2", env2.interp.Scene.Len())
	}
	if len(env2.says) == 0 || !strings.Contains(env2.says[len(env2.says)-1], "2 objects") {
		t.Fatalf("load3d output = %v", env2.says)
	}
}

func TestLoad3DMissingFileLogsError(t *testing.T) {
	env := newEnv()
	env.run(`load3d "` + filepath.Join(t.TempDir(), "nope.yaml") + `"`)
	if len(env.logs) == 0 || !strings.HasPrefix(env.logs[0], "error:") {
		t.Fatalf("missing file did not log an error: %v", env.logs)
	}
}

func TestCopyPaste3D(t *testing.T) {
	env := newEnv()
	env.run("create3d cube at 1, 0, 1 size 2")
	env.run("copy3d last3d")
	env.run("paste3d")
	if env.interp.Scene.Len() != 2 {
		t.Fatalf("scene has %d shapes, want 2", env.interp.Scene.Len())
	}
	dup := env.lastShape(t)
	if dup.Position.X != 2 || dup.Position.Z != 2 {
		t.Fatalf("paste offset wrong: %v", dup.Position)
	}
	if dup.Size != 2 {
		t.Fatalf("paste lost the size: %v", dup.Size)
	}
}

func TestPaste3DEmptyClipboard(t *testing.T) {
	env := newEnv()
	env.run("paste3d")
	if env.interp.Scene.Len() != 0 {
		t.Fatal("paste with empty clipboard created a shape")
	}
	if len(env.logs) == 0 || !strings.Contains(env.logs[0], "Clipboard") {
		t.Fatalf("expected clipboard warning, got %v", env.logs)
	}
}

func TestSnap3DWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	env := newEnv()
	env.run(`create3d cube at 0, 0, 5
snap3d "` + path + `"`)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatal("snapshot is not a PNG")
	}
}
