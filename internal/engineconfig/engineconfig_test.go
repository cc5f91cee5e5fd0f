package engineconfig

import (
	"os"
	"testing"
)

// chdir mirrors t.Chdir (Go 1.24+), which is unavailable on this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Fatalf("got %+v, want defaults %+v", p, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	want := EnginePrefs{
		ShowFPS:      true,
		GridVisible:  false,
		WindowWidth:  1920,
		WindowHeight: 1080,
		Fullscreen:   true,
		TargetFPS:    120,
		ScriptDir:    "scripts",
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll("config", 0755); err != nil {
		t.Fatal(err)
	}
	data := `{"window_width": -5, "window_height": 0, "target_fps": 0}`
	if err := os.WriteFile(EngineConfigPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if p.WindowWidth != def.WindowWidth || p.WindowHeight != def.WindowHeight {
		t.Fatalf("window size not clamped: %dx%d", p.WindowWidth, p.WindowHeight)
	}
	if p.TargetFPS != def.TargetFPS {
		t.Fatalf("target FPS not clamped: %d", p.TargetFPS)
	}
}

func TestLoadInvalidJSONReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll("config", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(EngineConfigPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Fatalf("got %+v, want defaults", p)
	}
}
