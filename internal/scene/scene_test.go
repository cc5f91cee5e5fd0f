package scene

import (
	"image/color"
	"path/filepath"
	"testing"

	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

func TestHandlesSurviveRemove(t *testing.T) {
	sc := New()
	a := sc.Add(shape.New(shape.KindCube, vec.New(0, 0, 0), 1))
	b := sc.Add(shape.New(shape.KindSphere, vec.New(1, 0, 0), 1))
	c := sc.Add(shape.New(shape.KindCone, vec.New(2, 0, 0), 1))

	sc.Remove(b)
	if _, ok := sc.Get(b); ok {
		t.Fatal("removed handle still resolves")
	}
	for _, h := range []Handle{a, c} {
		if _, ok := sc.Get(h); !ok {
			t.Fatalf("handle %v lost after unrelated removal", h)
		}
	}
	if sc.Len() != 2 {
		t.Fatalf("Len = %d; want 2", sc.Len())
	}
}

func TestRemoveClearsWeakRefs(t *testing.T) {
	sc := New()
	p := shape.New(shape.KindCube, vec.New(0, 1, 0), 1)
	h := sc.Add(p)
	sc.Selected = h
	sc.Player = h

	sc.Remove(h)
	if sc.Selected != None || sc.Player != None {
		t.Fatalf("weak refs not cleared: selected=%v player=%v", sc.Selected, sc.Player)
	}
}

func TestDialogueCycling(t *testing.T) {
	sc := New()
	npc := shape.New(shape.KindCube, vec.New(0, 0, 0), 1)
	npc.IsNPC = true
	npc.Name = "guard"
	h := sc.Add(npc)
	sc.Dialogues["guard"] = []string{"hi", "bye"}

	want := []string{"hi", "bye", "hi"}
	for i, w := range want {
		got, ok := sc.Interact(h)
		if !ok || got != w {
			t.Fatalf("interact %d = %q, %v; want %q", i, got, ok, w)
		}
	}
}

func TestInteractMisses(t *testing.T) {
	sc := New()
	plain := sc.Add(shape.New(shape.KindCube, vec.Vector3{}, 1))
	if _, ok := sc.Interact(plain); ok {
		t.Fatal("interact with non-NPC should fail")
	}
	if _, ok := sc.Interact(Handle(999)); ok {
		t.Fatal("interact with unknown handle should fail")
	}
}

func TestNearestNPC(t *testing.T) {
	sc := New()
	near := shape.New(shape.KindCube, vec.New(1, 0, 0), 1)
	near.IsNPC = true
	near.Name = "near"
	far := shape.New(shape.KindCube, vec.New(9, 0, 0), 1)
	far.IsNPC = true
	far.Name = "far"
	hNear := sc.Add(near)
	sc.Add(far)

	got, ok := sc.NearestNPC(vec.New(0, 0, 0), 3.0)
	if !ok || got != hNear {
		t.Fatalf("NearestNPC = %v, %v; want %v", got, ok, hNear)
	}
	if _, ok := sc.NearestNPC(vec.New(100, 0, 0), 3.0); ok {
		t.Fatal("no NPC should be in range")
	}
}

func TestCopyPaste(t *testing.T) {
	sc := New()
	src := shape.New(shape.KindCube, vec.New(2, 3, 4), 2)
	src.Color = color.RGBA{0, 0, 255, 255}
	src.HasCollision = true
	src.Velocity = vec.New(5, 0, 0)
	sc.Selected = sc.Add(src)

	if !sc.Copy() {
		t.Fatal("Copy failed with a selection")
	}
	h, ok := sc.Paste()
	if !ok {
		t.Fatal("Paste failed with a loaded clipboard")
	}
	dup, _ := sc.Get(h)
	if dup == src {
		t.Fatal("paste returned the original, not a copy")
	}
	if dup.Position != (vec.Vector3{X: 3, Y: 3, Z: 5}) {
		t.Fatalf("pasted position = %v; want offset by (1,0,1)", dup.Position)
	}
	if dup.Color != src.Color || !dup.HasCollision {
		t.Fatal("pasted shape lost material fields")
	}
	if dup.Velocity != (vec.Vector3{}) {
		t.Fatalf("pasted shape inherited velocity %v", dup.Velocity)
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	sc := New()
	if _, ok := sc.Paste(); ok {
		t.Fatal("paste from empty clipboard should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")

	sc := New()
	cube := shape.New(shape.KindCube, vec.New(0, 2, 0), 2)
	cube.Color = color.RGBA{0, 0, 255, 255}
	cube.HasPhysics = true
	sc.Add(cube)
	sc.Add(shape.New(shape.KindPlane, vec.New(0, 0, 0), 10))
	sc.Camera.Position = vec.New(1, 5, -12)

	if err := sc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d shapes; want 2", loaded.Len())
	}
	got := loaded.Shapes()[0]
	if got.Kind != shape.KindCube || got.Position != cube.Position || got.Size != 2 {
		t.Fatalf("loaded cube = %+v", got)
	}
	if got.Color != cube.Color || !got.HasPhysics {
		t.Fatal("loaded cube lost material/physics fields")
	}
	if loaded.Camera.Position != sc.Camera.Position {
		t.Fatalf("loaded camera = %v; want %v", loaded.Camera.Position, sc.Camera.Position)
	}
}

func TestLoadMissingFileLeavesSceneIntact(t *testing.T) {
	sc := New()
	sc.Add(shape.New(shape.KindCube, vec.Vector3{}, 1))
	if err := sc.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if sc.Len() != 1 {
		t.Fatal("failed load wiped the scene")
	}
}
