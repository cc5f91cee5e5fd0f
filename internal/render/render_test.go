package render

import (
	"math"
	"testing"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

func testProjector(cam *scene.Camera) Projector {
	return Projector{Camera: cam, Width: 800, Height: 600}
}

func TestProjectCenterOfView(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = vec.New(0, 0, 0)
	proj := testProjector(&cam)

	p, ok := proj.Project(vec.New(0, 0, cam.Near+0.01))
	if !ok {
		t.Fatal("point in front of camera not visible")
	}
	if math.Abs(p.X-400) > 1e-6 || math.Abs(p.Y-300) > 1e-6 {
		t.Fatalf("center projection = %v; want (400, 300)", p)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = vec.New(0, 0, 0)
	proj := testProjector(&cam)

	for _, z := range []float64{-5, 0, cam.Near} {
		if _, ok := proj.Project(vec.New(0, 0, z)); ok {
			t.Fatalf("point at z=%v should not be visible", z)
		}
	}
}

func TestProjectAboveCenterGoesUp(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = vec.New(0, 0, 0)
	proj := testProjector(&cam)

	p, ok := proj.Project(vec.New(0, 1, 5))
	if !ok {
		t.Fatal("point not visible")
	}
	// Screen Y grows downward, so a point above the camera axis lands above center.
	if p.Y >= 300 {
		t.Fatalf("projected Y = %v; want < 300", p.Y)
	}
}

func TestProjectFirstPersonYaw(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = vec.New(0, 0, 0)
	cam.FirstPerson = true
	cam.Yaw = 0
	proj := testProjector(&cam)

	straight, ok := proj.Project(vec.New(0, 0, 5))
	if !ok || math.Abs(straight.X-400) > 1e-6 {
		t.Fatalf("straight ahead = %v, %v", straight, ok)
	}

	// A point ahead on +Z should leave the view center once the camera yaws.
	cam.Yaw = 45
	turned, ok := proj.Project(vec.New(0, 0, 5))
	if !ok {
		t.Fatal("point left the frustum entirely")
	}
	if math.Abs(turned.X-400) < 1 {
		t.Fatalf("yawed projection still centered at %v", turned)
	}
}

func TestBackfaceCullingCubeFromPlusZ(t *testing.T) {
	// Camera on +Z looking at a cube at the origin: the face toward the
	// camera must survive, the opposite face must be culled.
	cube := shape.New(shape.KindCube, vec.New(0, 0, 0), 2)
	verts := cube.Vertices()
	camPos := vec.New(0, 0, 5)

	// The cube's +Z and -Z quads, wound with outward normals.
	towardCamera := []int{4, 5, 6, 7}
	awayFromCamera := []int{0, 3, 2, 1}

	if _, facing := shadeFace(cube, verts, towardCamera, camPos); !facing {
		t.Fatal("+Z face should face a +Z camera")
	}
	if _, facing := shadeFace(cube, verts, awayFromCamera, camPos); facing {
		t.Fatal("-Z face should be culled from a +Z camera")
	}
}

func TestShadingClampsBrightness(t *testing.T) {
	cube := shape.New(shape.KindCube, vec.New(0, 0, 0), 2)
	cube.LightLevel = 0.01
	verts := cube.Vertices()

	col, facing := shadeFace(cube, verts, []int{4, 5, 6, 7}, vec.New(0, 0, 5))
	if !facing {
		t.Fatal("face should face camera")
	}
	// brightness floors at 0.2 even with a near-zero light level.
	wantG := uint8(float64(cube.Color.G) * minBrightness)
	if col.G != wantG {
		t.Fatalf("shaded G = %d; want %d", col.G, wantG)
	}
}

func TestPickSkipsPlanes(t *testing.T) {
	sc := scene.New()
	sc.Camera.Position = vec.New(0, 0, -10)
	sc.Add(shape.New(shape.KindPlane, vec.New(0, 0, 0), 10))
	cubeH := sc.Add(shape.New(shape.KindCube, vec.New(0, 0, 0), 1))

	proj := Projector{Camera: &sc.Camera, Width: 800, Height: 600}
	center, ok := proj.Project(vec.New(0, 0, 0))
	if !ok {
		t.Fatal("origin not visible")
	}
	got, ok := Pick(proj, sc, center.X, center.Y)
	if !ok || got != cubeH {
		t.Fatalf("Pick = %v, %v; want cube %v", got, ok, cubeH)
	}
}

func TestPickMiss(t *testing.T) {
	sc := scene.New()
	sc.Camera.Position = vec.New(0, 0, -10)
	sc.Add(shape.New(shape.KindCube, vec.New(0, 0, 0), 1))
	proj := Projector{Camera: &sc.Camera, Width: 800, Height: 600}
	if _, ok := Pick(proj, sc, 5, 5); ok {
		t.Fatal("corner click should miss")
	}
}

func TestRendererDrawHeadless(t *testing.T) {
	c, err := NewSoftCanvas(320, 240)
	if err != nil {
		t.Fatalf("NewSoftCanvas: %v", err)
	}
	sc := scene.New()
	cube := shape.New(shape.KindCube, vec.New(0, 1, 0), 2)
	cube.Filled = true
	cube.HasCollision = true
	sc.Selected = sc.Add(cube)
	sc.Add(shape.New(shape.KindPlane, vec.New(0, 0, 0), 10))
	sc.Add(shape.New(shape.KindSphere, vec.New(3, 1, 0), 1))

	r := New()
	r.GizmoVisible = true
	// A full frame over every shape kind must not panic or index out of range.
	r.Draw(c, sc)

	sc.Mode = scene.ModeGame
	sc.Gameplay = scene.GameplayShooter
	sc.Player = sc.Handles()[0]
	sc.Camera.FirstPerson = true
	r.Weapon.MuzzleFlash = true
	r.Draw(c, sc)
}
