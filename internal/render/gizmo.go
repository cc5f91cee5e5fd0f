package render

import (
	"image/color"
	"math"

	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

const (
	gizmoArrowHead  = 10.0
	gizmoHeadSpread = 0.5
	gizmoLabelPad   = 15.0
	gizmoFontSize   = 12.0
	gizmoHitRadius  = 8.0
)

var gizmoZColor = color.RGBA{0, 136, 255, 255}

// gizmoAxis is one arrow of the manipulation gizmo.
type gizmoAxis struct {
	name   string
	offset vec.Vector3
	color  color.RGBA
}

var gizmoAxes = []gizmoAxis{
	{"X", vec.Vector3{X: 1}, axisXColor},
	{"Y", vec.Vector3{Y: 1}, axisYColor},
	{"Z", vec.Vector3{Z: 1}, gizmoZColor},
}

func (r *Renderer) drawGizmo(c Canvas, proj Projector, s *shape.Shape) {
	center, ok := proj.Project(s.Position)
	if !ok {
		return
	}
	for _, axis := range gizmoAxes {
		end, ok := proj.Project(s.Position.Add(axis.offset))
		if !ok {
			continue
		}
		c.Line(center, end, axis.color, 3)

		angle := math.Atan2(end.Y-center.Y, end.X-center.X)
		head := []Point{
			end,
			{X: end.X - gizmoArrowHead*math.Cos(angle-gizmoHeadSpread), Y: end.Y - gizmoArrowHead*math.Sin(angle-gizmoHeadSpread)},
			{X: end.X - gizmoArrowHead*math.Cos(angle+gizmoHeadSpread), Y: end.Y - gizmoArrowHead*math.Sin(angle+gizmoHeadSpread)},
		}
		c.Polygon(head, axis.color)
		c.Text(axis.name, end.X+gizmoLabelPad, end.Y, gizmoFontSize, axis.color)
	}
}

// GizmoHit returns which axis label ("x", "y", "z") the screen point lands
// on, or "" when the click misses every arrow tip. Used by the frontend to
// start a gizmo drag.
func GizmoHit(proj Projector, s *shape.Shape, x, y float64) string {
	for _, axis := range gizmoAxes {
		end, ok := proj.Project(s.Position.Add(axis.offset))
		if !ok {
			continue
		}
		if math.Hypot(end.X-x, end.Y-y) <= gizmoHitRadius {
			switch axis.name {
			case "X":
				return "x"
			case "Y":
				return "y"
			case "Z":
				return "z"
			}
		}
	}
	return ""
}
