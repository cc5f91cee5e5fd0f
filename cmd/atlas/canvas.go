package main

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"atlas-engine/internal/render"
)

// dashLength is the on/off segment length for dashed collision outlines.
const dashLength = 6.0

// rlCanvas adapts the raylib drawing calls to the render.Canvas interface so
// the software renderer can target the live window.
type rlCanvas struct{}

func toRl(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (rlCanvas) Size() (int, int) {
	return int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
}

func (rlCanvas) Clear(c color.RGBA) {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), toRl(c))
}

func (rlCanvas) Line(a, b render.Point, c color.RGBA, width float64) {
	rl.DrawLineEx(
		rl.NewVector2(float32(a.X), float32(a.Y)),
		rl.NewVector2(float32(b.X), float32(b.Y)),
		float32(width), toRl(c))
}

func (cv rlCanvas) DashedLine(a, b render.Point, c color.RGBA, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	steps := int(length / dashLength)
	for s := 0; s < steps; s += 2 {
		t0 := float64(s) / float64(steps)
		t1 := float64(s+1) / float64(steps)
		cv.Line(
			render.Point{X: a.X + dx*t0, Y: a.Y + dy*t0},
			render.Point{X: a.X + dx*t1, Y: a.Y + dy*t1},
			c, width)
	}
}

func (rlCanvas) Polygon(pts []render.Point, fill color.RGBA) {
	if len(pts) < 3 {
		return
	}
	// Fan triangulation; raylib culls clockwise triangles, so emit both
	// windings rather than sorting the projected polygon.
	col := toRl(fill)
	v0 := rl.NewVector2(float32(pts[0].X), float32(pts[0].Y))
	for i := 1; i < len(pts)-1; i++ {
		v1 := rl.NewVector2(float32(pts[i].X), float32(pts[i].Y))
		v2 := rl.NewVector2(float32(pts[i+1].X), float32(pts[i+1].Y))
		rl.DrawTriangle(v0, v1, v2, col)
		rl.DrawTriangle(v0, v2, v1, col)
	}
}

func (rlCanvas) Rect(x, y, w, h float64, fill color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRl(fill))
}

func (rlCanvas) RectOutline(x, y, w, h float64, c color.RGBA, width float64) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawRectangleLinesEx(rec, float32(width), toRl(c))
}

func (rlCanvas) Circle(x, y, r float64, fill color.RGBA) {
	rl.DrawCircle(int32(x), int32(y), float32(r), toRl(fill))
}

func (rlCanvas) Text(s string, x, y float64, size float64, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toRl(c))
}
