package physics

import (
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

// AABB is an axis-aligned box given by its two corners.
type AABB struct {
	Min, Max vec.Vector3
}

// BoxFor returns the AABB for a shape: center position, half extents from
// size and per-axis scale. Spheres use their radius on every axis.
func BoxFor(s *shape.Shape) AABB {
	half := vec.Vector3{
		X: s.Size * s.Scale.X / 2,
		Y: s.Size * s.Scale.Y / 2,
		Z: s.Size * s.Scale.Z / 2,
	}
	if s.Kind == shape.KindSphere {
		r := s.Radius()
		half = vec.New(r, r, r)
	}
	return AABB{
		Min: s.Position.Sub(half),
		Max: s.Position.Add(half),
	}
}

// Overlaps reports whether two boxes intersect.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// penetrationAxis returns the overlap depth and axis index (0=X, 1=Y, 2=Z)
// of the minimum penetration between two boxes. If no overlap, (0, -1).
func penetrationAxis(a, b AABB) (depth float64, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}
