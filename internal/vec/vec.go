package vec

import "math"

// Vector3 is a 3-component float vector. Value type: every operation returns
// a new vector and never mutates the receiver.
type Vector3 struct {
	X, Y, Z float64
}

// New returns a vector with the given components.
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l > 0 {
		return Vector3{v.X / l, v.Y / l, v.Z / l}
	}
	return Vector3{}
}

// RotateX returns v rotated about the X axis by deg degrees.
func (v Vector3) RotateX(deg float64) Vector3 {
	r := deg * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return Vector3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

// RotateY returns v rotated about the Y axis by deg degrees.
func (v Vector3) RotateY(deg float64) Vector3 {
	r := deg * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return Vector3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}

// RotateZ returns v rotated about the Z axis by deg degrees.
func (v Vector3) RotateZ(deg float64) Vector3 {
	r := deg * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return Vector3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// RotateEuler applies the X, then Y, then Z axis rotations in degrees.
// This ordering matches the rest of the engine (shape transforms, camera).
func (v Vector3) RotateEuler(rot Vector3) Vector3 {
	return v.RotateX(rot.X).RotateY(rot.Y).RotateZ(rot.Z)
}
