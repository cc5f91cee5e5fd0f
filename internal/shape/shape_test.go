package shape

import (
	"image/color"
	"math"
	"testing"

	"atlas-engine/internal/vec"
)

func TestCubeUnitCorners(t *testing.T) {
	c := New(KindCube, vec.New(0, 0, 0), 2)
	got := c.Vertices()
	want := []vec.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertex %d = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestCubeFullRotationRoundTrip(t *testing.T) {
	for _, rot := range []vec.Vector3{{X: 360}, {Y: 360}, {Z: 360}} {
		plain := New(KindCube, vec.New(1, 2, 3), 2)
		turned := New(KindCube, vec.New(1, 2, 3), 2)
		turned.Rotation = rot
		a, b := plain.Vertices(), turned.Vertices()
		for i := range a {
			if d := a[i].Sub(b[i]).Length(); d > 1e-9 {
				t.Fatalf("rotation %v moved vertex %d by %v", rot, i, d)
			}
		}
	}
}

func TestCubeTopology(t *testing.T) {
	c := New(KindCube, vec.Vector3{}, 1)
	if got := len(c.Edges()); got != 12 {
		t.Fatalf("cube edges = %d; want 12", got)
	}
	if got := len(c.Faces()); got != 6 {
		t.Fatalf("cube faces = %d; want 6", got)
	}
}

func TestSphereVertexCount(t *testing.T) {
	s := New(KindSphere, vec.Vector3{}, 1)
	if got := len(s.Vertices()); got != SphereSegments*SphereSegments {
		t.Fatalf("sphere vertices = %d; want %d", got, SphereSegments*SphereSegments)
	}
	if !s.IsRolling {
		t.Fatal("sphere should default to rolling")
	}
	radius := s.Radius()
	for i, v := range s.Vertices() {
		if d := v.Length(); math.Abs(d-radius) > 1e-9 {
			t.Fatalf("vertex %d at distance %v; want %v", i, d, radius)
		}
	}
}

func TestConeTopology(t *testing.T) {
	c := New(KindCone, vec.New(0, 0, 0), 2)
	verts := c.Vertices()
	if len(verts) != ConeSegments+2 {
		t.Fatalf("cone vertices = %d; want %d", len(verts), ConeSegments+2)
	}
	if verts[0] != (vec.Vector3{Y: 1}) {
		t.Fatalf("apex = %v; want (0,1,0)", verts[0])
	}
	if verts[1] != (vec.Vector3{Y: -1}) {
		t.Fatalf("base center = %v; want (0,-1,0)", verts[1])
	}
	if got := len(c.Edges()); got != 3*ConeSegments {
		t.Fatalf("cone edges = %d; want %d", got, 3*ConeSegments)
	}
}

func TestWedgeRampSurface(t *testing.T) {
	w := New(KindWedge, vec.Vector3{}, 2)
	verts := w.Vertices()
	if len(verts) != 6 {
		t.Fatalf("wedge vertices = %d; want 6", len(verts))
	}
	// Front edge stays low, back edge is raised.
	if verts[2].Y != -1 || verts[3].Y != -1 {
		t.Fatalf("front corners not at bottom: %v %v", verts[2], verts[3])
	}
	if verts[4].Y != 1 || verts[5].Y != 1 {
		t.Fatalf("top back corners not raised: %v %v", verts[4], verts[5])
	}
}

func TestPlaneIsStatic(t *testing.T) {
	p := New(KindPlane, vec.New(0, 0, 0), 10)
	if !p.IsStatic {
		t.Fatal("plane should be static")
	}
	verts := p.Vertices()
	if len(verts) != 4 {
		t.Fatalf("plane vertices = %d; want 4", len(verts))
	}
	for i, v := range verts {
		if v.Y != 0 {
			t.Fatalf("plane vertex %d off its Y level: %v", i, v)
		}
	}
	if got := len(p.Edges()); got != 6 {
		t.Fatalf("plane edges = %d; want 6 (quad + diagonals)", got)
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"blue", color.RGBA{0, 0, 255, 255}, true},
		{"  RED ", color.RGBA{255, 0, 0, 255}, true},
		{"#00ff00", color.RGBA{0, 255, 0, 255}, true},
		{"#A0826D", color.RGBA{160, 130, 109, 255}, true},
		{"chartreuse-ish", color.RGBA{}, false},
	}
	for _, tc := range tcs {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseColor(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseColor(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func faceNormal(verts []vec.Vector3, face []int) vec.Vector3 {
	e1 := verts[face[1]].Sub(verts[face[0]])
	e2 := verts[face[2]].Sub(verts[face[0]])
	return e1.Cross(e2).Normalize()
}

func TestFaceNormalsPointOutward(t *testing.T) {
	for _, kind := range []Kind{KindCube, KindWedge} {
		s := New(kind, vec.Vector3{}, 2)
		verts := s.Vertices()
		for i, face := range s.Faces() {
			n := faceNormal(verts, face)
			center := vec.Vector3{}
			for _, idx := range face {
				center = center.Add(verts[idx])
			}
			center = center.Scale(1 / float64(len(face)))
			// An outward normal never points back toward the shape center
			// (the wedge ramp face passes through the origin, so allow zero).
			if n.Dot(center) < -1e-9 {
				t.Fatalf("%s face %d normal %v points inward (center %v)", kind, i, n, center)
			}
		}
	}
}

func TestPlaneFaceNormalPointsUp(t *testing.T) {
	p := New(KindPlane, vec.New(0, 0, 0), 10)
	n := faceNormal(p.Vertices(), p.Faces()[0])
	if n.Y <= 0 {
		t.Fatalf("plane normal = %v; want +Y", n)
	}
}
