package render

import "image/color"

// Point is a 2D screen coordinate.
type Point struct {
	X, Y float64
}

// Canvas is the 2D surface the renderer and the script draw channel target.
// The interactive frontend backs it with raylib; tests and snapshots use the
// software canvas in this package.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	Line(a, b Point, c color.RGBA, width float64)
	DashedLine(a, b Point, c color.RGBA, width float64)
	Polygon(pts []Point, fill color.RGBA)
	Rect(x, y, w, h float64, fill color.RGBA)
	RectOutline(x, y, w, h float64, c color.RGBA, width float64)
	Circle(x, y, r float64, fill color.RGBA)
	Text(s string, x, y float64, size float64, c color.RGBA)
}
