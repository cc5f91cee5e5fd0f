package vec

import (
	"math"
	"testing"
)

func almostEqual(a, b Vector3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestAddSubScale(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)
	if got := a.Add(b); got != (Vector3{5, 7, 9}) {
		t.Fatalf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vector3{3, 3, 3}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vector3{2, 4, 6}) {
		t.Fatalf("Scale = %v", got)
	}
}

func TestDotCross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	if got := x.Dot(y); got != 0 {
		t.Fatalf("Dot = %v; want 0", got)
	}
	if got := x.Cross(y); got != (Vector3{0, 0, 1}) {
		t.Fatalf("Cross = %v; want +Z", got)
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 0, 4)
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("normalized length = %v", n.Length())
	}
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Fatalf("zero normalize = %v; want zero", got)
	}
}

func TestRotateFullTurn(t *testing.T) {
	v := New(1, 2, 3)
	for _, rot := range []Vector3{{360, 0, 0}, {0, 360, 0}, {0, 0, 360}} {
		if got := v.RotateEuler(rot); !almostEqual(got, v) {
			t.Fatalf("RotateEuler(%v) = %v; want %v", rot, got, v)
		}
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	// +X rotated 90 degrees about Y lands on -Z under this engine's convention.
	got := New(1, 0, 0).RotateY(90)
	if !almostEqual(got, Vector3{0, 0, -1}) {
		t.Fatalf("RotateY(90) of +X = %v; want (0,0,-1)", got)
	}
}
