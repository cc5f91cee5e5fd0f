package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// SoftCanvas is a windowless Canvas backed by a gg raster context. It is used
// for scene snapshots (PNG export) and lets renderer tests run headless.
type SoftCanvas struct {
	dc     *gg.Context
	ttf    *truetype.Font
	width  int
	height int
}

// NewSoftCanvas returns a software canvas of the given pixel size with a
// monospace text face loaded.
func NewSoftCanvas(width, height int) (*SoftCanvas, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	c := &SoftCanvas{
		dc:     gg.NewContext(width, height),
		ttf:    ttf,
		width:  width,
		height: height,
	}
	return c, nil
}

// Size returns the canvas dimensions in pixels.
func (c *SoftCanvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the whole canvas with one color.
func (c *SoftCanvas) Clear(col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// Line draws a solid line from a to b.
func (c *SoftCanvas) Line(a, b Point, col color.RGBA, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

// DashedLine draws a dashed line from a to b (used for collision outlines).
func (c *SoftCanvas) DashedLine(a, b Point, col color.RGBA, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetDash(4, 2)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
	c.dc.SetDash()
}

// Polygon fills a closed polygon.
func (c *SoftCanvas) Polygon(pts []Point, fill color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.dc.SetColor(fill)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

// Rect fills an axis-aligned rectangle.
func (c *SoftCanvas) Rect(x, y, w, h float64, fill color.RGBA) {
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// RectOutline strokes an axis-aligned rectangle.
func (c *SoftCanvas) RectOutline(x, y, w, h float64, col color.RGBA, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// Circle fills a circle centered at (x, y).
func (c *SoftCanvas) Circle(x, y, r float64, fill color.RGBA) {
	c.dc.SetColor(fill)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

// Text draws s with its top-left corner at (x, y).
func (c *SoftCanvas) Text(s string, x, y float64, size float64, col color.RGBA) {
	face := truetype.NewFace(c.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y+size)
}

// SavePNG writes the canvas contents to path.
func (c *SoftCanvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
