package physics

import (
	"math"
	"testing"

	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

func dynamicCube(pos vec.Vector3, size float64) *shape.Shape {
	s := shape.New(shape.KindCube, pos, size)
	s.HasPhysics = true
	return s
}

func TestGravityIntegration(t *testing.T) {
	w := NewWorld()
	c := dynamicCube(vec.New(0, 50, 0), 1)

	w.Step([]*shape.Shape{c}, DT)
	want := DefaultGravity * DT
	if math.Abs(c.Velocity.Y-want) > 1e-12 {
		t.Fatalf("velocity.Y = %v; want %v", c.Velocity.Y, want)
	}
	// Second step doubles the velocity; pure Euler, no drag in the air.
	w.Step([]*shape.Shape{c}, DT)
	if math.Abs(c.Velocity.Y-2*want) > 1e-12 {
		t.Fatalf("velocity.Y after 2 steps = %v; want %v", c.Velocity.Y, 2*want)
	}
}

func TestRestingCubeStaysPut(t *testing.T) {
	w := NewWorld()
	ground := shape.New(shape.KindPlane, vec.New(0, 0, 0), 10)
	cube := dynamicCube(vec.New(0, 1, 0), 2) // bottom exactly on the plane
	cube.OnGround = true
	shapes := []*shape.Shape{ground, cube}

	for i := 0; i < 100; i++ {
		w.Step(shapes, DT)
		if cube.Position.Y != 1 {
			t.Fatalf("step %d: resting cube moved to y=%v", i, cube.Position.Y)
		}
		if cube.Velocity.Y != 0 {
			t.Fatalf("step %d: resting cube has vertical velocity %v", i, cube.Velocity.Y)
		}
		if !cube.OnGround {
			t.Fatalf("step %d: resting cube lost ground contact", i)
		}
	}
}

func TestFallingCubeLandsOnPlane(t *testing.T) {
	w := NewWorld()
	ground := shape.New(shape.KindPlane, vec.New(0, 0, 0), 10)
	cube := dynamicCube(vec.New(0, 5, 0), 2)
	cube.Restitution = 0 // no bounce, just land
	shapes := []*shape.Shape{ground, cube}

	for i := 0; i < 600; i++ {
		w.Step(shapes, DT)
	}
	if cube.Position.Y != 1 {
		t.Fatalf("cube settled at y=%v; want 1", cube.Position.Y)
	}
	if !cube.OnGround {
		t.Fatal("cube not flagged on ground")
	}
}

func TestBounceUsesRestitution(t *testing.T) {
	w := NewWorld()
	ground := shape.New(shape.KindPlane, vec.New(0, 0, 0), 10)
	cube := dynamicCube(vec.New(0, 1.001, 0), 2)
	cube.Velocity.Y = -5
	cube.Restitution = 0.5

	w.Step([]*shape.Shape{ground, cube}, DT)
	if cube.Velocity.Y <= 0 {
		t.Fatalf("fast impact should bounce; velocity.Y = %v", cube.Velocity.Y)
	}
	// Impact speed includes this step's gravity kick.
	wantMax := (5 + math.Abs(DefaultGravity)*DT) * 0.5
	if cube.Velocity.Y > wantMax {
		t.Fatalf("bounce velocity %v exceeds restitution bound %v", cube.Velocity.Y, wantMax)
	}
}

func TestGroundFrictionSlowsSliding(t *testing.T) {
	w := NewWorld()
	ground := shape.New(shape.KindPlane, vec.New(0, 0, 0), 10)
	cube := dynamicCube(vec.New(0, 1, 0), 2)
	cube.OnGround = true
	cube.Velocity.X = 10

	w.Step([]*shape.Shape{ground, cube}, DT)
	if cube.Velocity.X >= 10 {
		t.Fatalf("friction should slow sliding; velocity.X = %v", cube.Velocity.X)
	}
	if cube.Velocity.X <= 0 {
		t.Fatalf("friction reversed motion; velocity.X = %v", cube.Velocity.X)
	}
}

func TestSphereRollsFromVelocity(t *testing.T) {
	w := NewWorld()
	ground := shape.New(shape.KindPlane, vec.New(0, 0, 0), 10)
	ball := shape.New(shape.KindSphere, vec.New(0, 1, 0), 2)
	ball.HasPhysics = true
	ball.OnGround = true
	ball.Velocity.X = 4
	ball.Velocity.Z = 2

	w.Step([]*shape.Shape{ground, ball}, DT)
	if ball.Rotation.Z <= 0 {
		t.Fatalf("rolling on +X should spin +Z; rotation.Z = %v", ball.Rotation.Z)
	}
	if ball.Rotation.X >= 0 {
		t.Fatalf("rolling on +Z should spin -X; rotation.X = %v", ball.Rotation.X)
	}
}

func TestStackedCubesSeparate(t *testing.T) {
	w := NewWorld()
	base := dynamicCube(vec.New(0, 0.5, 0), 1)
	base.IsStatic = true
	top := dynamicCube(vec.New(0, 1.2, 0), 1) // overlapping the base

	w.Step([]*shape.Shape{base, top}, DT)
	if base.Position.Y != 0.5 {
		t.Fatalf("static base moved to %v", base.Position.Y)
	}
	gap := (top.Position.Y - 0.5) - (base.Position.Y + 0.5)
	if gap < -1e-9 {
		t.Fatalf("cubes still overlap by %v", -gap)
	}
	if !top.OnGround {
		t.Fatal("top cube should rest on the base")
	}
}

func TestStaticShapesIgnoreGravity(t *testing.T) {
	w := NewWorld()
	wall := dynamicCube(vec.New(0, 3, 0), 1)
	wall.IsStatic = true

	w.Step([]*shape.Shape{wall}, DT)
	if wall.Position.Y != 3 || wall.Velocity.Y != 0 {
		t.Fatalf("static shape moved: pos=%v vel=%v", wall.Position, wall.Velocity)
	}
}
