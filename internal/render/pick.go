package render

import (
	"math"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
)

// pickThreshold is the pixel radius within which a click selects a shape.
const pickThreshold = 50.0

// Pick returns the handle of the shape whose projected center is closest to
// the screen point, within the pick threshold. Planes are never pickable.
func Pick(proj Projector, sc *scene.Scene, x, y float64) (scene.Handle, bool) {
	best := scene.None
	bestDist := pickThreshold
	for _, h := range sc.Handles() {
		s, ok := sc.Get(h)
		if !ok || s.Kind == shape.KindPlane {
			continue
		}
		center, ok := proj.Project(s.Position)
		if !ok {
			continue
		}
		if d := math.Hypot(center.X-x, center.Y-y); d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best, best != scene.None
}
