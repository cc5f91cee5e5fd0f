package render

import (
	"math"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/vec"
)

// Projector maps world-space points to screen space through a camera and a
// target size. The zero Point plus ok=false means the point is behind the
// near plane and must not be drawn.
type Projector struct {
	Camera *scene.Camera
	Width  int
	Height int
}

// Project returns the screen position of a world-space point. In first-person
// mode the point is rotated by the camera yaw then pitch; in trajectory mode
// only the camera's Y rotation applies. Points at or behind the near plane
// are not visible.
func (p Projector) Project(point vec.Vector3) (Point, bool) {
	rel := point.Sub(p.Camera.Position)

	if p.Camera.FirstPerson {
		yaw := p.Camera.Yaw * math.Pi / 180
		sin, cos := math.Sin(yaw), math.Cos(yaw)
		rel = vec.Vector3{
			X: rel.X*cos - rel.Z*sin,
			Y: rel.Y,
			Z: rel.X*sin + rel.Z*cos,
		}
		pitch := p.Camera.Pitch * math.Pi / 180
		sin, cos = math.Sin(pitch), math.Cos(pitch)
		rel = vec.Vector3{
			X: rel.X,
			Y: rel.Y*cos - rel.Z*sin,
			Z: rel.Y*sin + rel.Z*cos,
		}
	} else {
		angle := p.Camera.Rotation.Y * math.Pi / 180
		sin, cos := math.Sin(angle), math.Cos(angle)
		rel = vec.Vector3{
			X: rel.X*cos - rel.Z*sin,
			Y: rel.Y,
			Z: rel.X*sin + rel.Z*cos,
		}
	}

	if rel.Z <= p.Camera.Near {
		return Point{}, false
	}
	fovFactor := 1.0 / math.Tan(p.Camera.FOV/2*math.Pi/180)
	w, h := float64(p.Width), float64(p.Height)
	return Point{
		X: rel.X/rel.Z*fovFactor*w/2 + w/2,
		Y: -rel.Y/rel.Z*fovFactor*h/2 + h/2,
	}, true
}
