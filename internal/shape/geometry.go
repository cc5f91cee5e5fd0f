package shape

import (
	"math"

	"atlas-engine/internal/vec"
)

// Edge is a pair of vertex indices into the slice returned by Vertices.
type Edge [2]int

// transform applies the shape's world transform to a local-space vertex:
// scale is already baked into the local coordinates, so this rotates
// (X then Y then Z) and translates.
func (s *Shape) transform(v vec.Vector3) vec.Vector3 {
	return v.RotateEuler(s.Rotation).Add(s.Position)
}

// Vertices returns the shape's world-space vertex list. Local coordinates are
// scaled, then rotated X/Y/Z, then translated. Planes and round shapes ignore
// rotation and non-uniform scale, matching their generators.
func (s *Shape) Vertices() []vec.Vector3 {
	switch s.Kind {
	case KindCube:
		return s.boxVertices()
	case KindWedge:
		return s.wedgeVertices()
	case KindSphere:
		return s.sphereVertices()
	case KindCone:
		return s.coneVertices()
	case KindPlane:
		return s.planeVertices()
	}
	return nil
}

// Edges returns index pairs into Vertices describing the wireframe.
func (s *Shape) Edges() []Edge {
	switch s.Kind {
	case KindCube:
		return cubeEdges
	case KindWedge:
		return wedgeEdges
	case KindSphere:
		return sphereEdges(s.segments())
	case KindCone:
		return coneEdges(s.segments())
	case KindPlane:
		return planeEdges
	}
	return nil
}

// Faces returns planar polygons (vertex index rings) for filled rendering.
// Only cubes, wedges and planes have faces; spheres and cones draw wireframe.
func (s *Shape) Faces() [][]int {
	switch s.Kind {
	case KindCube:
		return cubeFaces
	case KindWedge:
		return wedgeFaces
	case KindPlane:
		return planeFaces
	}
	return nil
}

func (s *Shape) segments() int {
	if s.Segments > 0 {
		return s.Segments
	}
	if s.Kind == KindCone {
		return ConeSegments
	}
	return SphereSegments
}

func (s *Shape) boxVertices() []vec.Vector3 {
	sx := s.Size * s.Scale.X / 2
	sy := s.Size * s.Scale.Y / 2
	sz := s.Size * s.Scale.Z / 2
	local := []vec.Vector3{
		{X: -sx, Y: -sy, Z: -sz}, {X: sx, Y: -sy, Z: -sz},
		{X: sx, Y: sy, Z: -sz}, {X: -sx, Y: sy, Z: -sz},
		{X: -sx, Y: -sy, Z: sz}, {X: sx, Y: -sy, Z: sz},
		{X: sx, Y: sy, Z: sz}, {X: -sx, Y: sy, Z: sz},
	}
	out := make([]vec.Vector3, len(local))
	for i, v := range local {
		out[i] = s.transform(v)
	}
	return out
}

var cubeEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// Face windings keep the edge cross-product normal pointing outward, so the
// renderer's dot(normal, viewDir) > 0 test is a correct backface cull.
var cubeFaces = [][]int{
	{0, 3, 2, 1}, // back (-Z)
	{4, 5, 6, 7}, // front (+Z)
	{0, 1, 5, 4}, // bottom (-Y)
	{2, 3, 7, 6}, // top (+Y)
	{0, 4, 7, 3}, // left (-X)
	{1, 2, 6, 5}, // right (+X)
}

// Wedge: a rectangular base with a raised back edge. The two sloped side
// faces run from the front-bottom corners to the top-back corners.
func (s *Shape) wedgeVertices() []vec.Vector3 {
	sx := s.Size * s.Scale.X / 2
	sy := s.Size * s.Scale.Y / 2
	sz := s.Size * s.Scale.Z / 2
	local := []vec.Vector3{
		{X: -sx, Y: -sy, Z: -sz}, // 0: bottom back left
		{X: sx, Y: -sy, Z: -sz},  // 1: bottom back right
		{X: sx, Y: -sy, Z: sz},   // 2: bottom front right
		{X: -sx, Y: -sy, Z: sz},  // 3: bottom front left
		{X: -sx, Y: sy, Z: -sz},  // 4: top back left
		{X: sx, Y: sy, Z: -sz},   // 5: top back right
	}
	out := make([]vec.Vector3, len(local))
	for i, v := range local {
		out[i] = s.transform(v)
	}
	return out
}

var wedgeEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
	{4, 5},                         // top edge
	{0, 4}, {1, 5},                 // vertical edges
	{2, 4}, {2, 5}, {3, 4}, {3, 5}, // sloped faces
}

var wedgeFaces = [][]int{
	{0, 1, 2, 3}, // bottom
	{0, 4, 5, 1}, // back
	{0, 3, 4},    // left triangle
	{1, 5, 2},    // right triangle
	{3, 2, 5, 4}, // ramp surface
}

func (s *Shape) sphereVertices() []vec.Vector3 {
	segs := s.segments()
	radius := s.Size / 2
	out := make([]vec.Vector3, 0, segs*segs)
	for i := 0; i < segs; i++ {
		theta := float64(i) / float64(segs) * 2 * math.Pi
		for j := 0; j < segs; j++ {
			phi := float64(j) / float64(segs) * math.Pi
			out = append(out, vec.Vector3{
				X: radius*math.Sin(phi)*math.Cos(theta) + s.Position.X,
				Y: radius*math.Cos(phi) + s.Position.Y,
				Z: radius*math.Sin(phi)*math.Sin(theta) + s.Position.Z,
			})
		}
	}
	return out
}

func sphereEdges(segs int) []Edge {
	edges := make([]Edge, 0, 2*segs*(segs-1))
	for i := 0; i < segs-1; i++ {
		for j := 0; j < segs; j++ {
			current := i*segs + j
			nextRing := (i+1)*segs + j
			nextSeg := i*segs + (j+1)%segs
			edges = append(edges, Edge{current, nextRing}, Edge{current, nextSeg})
		}
	}
	return edges
}

// Cone: vertex 0 is the apex, 1 is the base center, then the base circle.
func (s *Shape) coneVertices() []vec.Vector3 {
	segs := s.segments()
	radius := s.Size / 2
	height := s.Size
	out := make([]vec.Vector3, 0, segs+2)
	out = append(out,
		vec.New(s.Position.X, s.Position.Y+height/2, s.Position.Z),
		vec.New(s.Position.X, s.Position.Y-height/2, s.Position.Z),
	)
	for i := 0; i < segs; i++ {
		theta := float64(i) / float64(segs) * 2 * math.Pi
		out = append(out, vec.Vector3{
			X: s.Position.X + radius*math.Cos(theta),
			Y: s.Position.Y - height/2,
			Z: s.Position.Z + radius*math.Sin(theta),
		})
	}
	return out
}

func coneEdges(segs int) []Edge {
	edges := make([]Edge, 0, 3*segs)
	for i := 0; i < segs; i++ {
		edges = append(edges, Edge{0, i + 2}) // apex to rim
	}
	for i := 0; i < segs; i++ {
		edges = append(edges, Edge{i + 2, (i+1)%segs + 2}) // rim
	}
	for i := 0; i < segs; i++ {
		edges = append(edges, Edge{1, i + 2}) // hub to rim
	}
	return edges
}

// Plane: an axis-aligned quad at the shape's Y, spanning size units from the
// center on X and Z. Never rotated.
func (s *Shape) planeVertices() []vec.Vector3 {
	sz := s.Size
	return []vec.Vector3{
		{X: s.Position.X - sz, Y: s.Position.Y, Z: s.Position.Z - sz},
		{X: s.Position.X + sz, Y: s.Position.Y, Z: s.Position.Z - sz},
		{X: s.Position.X + sz, Y: s.Position.Y, Z: s.Position.Z + sz},
		{X: s.Position.X - sz, Y: s.Position.Y, Z: s.Position.Z + sz},
	}
}

var planeEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 2}, {1, 3}, // diagonals for grid
}

var planeFaces = [][]int{
	{0, 3, 2, 1}, // wound so the upward side faces the camera
}
