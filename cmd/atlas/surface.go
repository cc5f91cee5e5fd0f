package main

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"atlas-engine/internal/shape"
)

// sprite is one named, movable 2D rectangle created by the sprite verb.
type sprite struct {
	x, y, w, h float64
	color      color.RGBA
	visible    bool
}

// drawOp is one retained primitive from the drawing verbs. Scripts run once
// but the window redraws every frame, so the 2D layer keeps what was drawn.
type drawOp struct {
	kind           string // "line", "rect", "circle", "text"
	x1, y1, x2, y2 float64
	radius, width  float64
	fill           bool
	text           string
	color          color.RGBA
}

// drawSurface is the 2D layer behind switchgraphics: a background fill, the
// retained draw ops in issue order, then the sprites. It implements the
// interpreter's Surface.
type drawSurface struct {
	graphics   bool
	background color.RGBA
	hasFill    bool
	ops        []drawOp
	sprites    map[string]*sprite
	order      []string
}

func newDrawSurface() *drawSurface {
	return &drawSurface{sprites: make(map[string]*sprite)}
}

// parse falls back to white so a bad color name still draws something.
func parse(name string) color.RGBA {
	c, err := shape.ParseColor(name)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// SetMode switches between the 2D graphics layer and the 3D viewport.
func (d *drawSurface) SetMode(graphics bool) { d.graphics = graphics }

// Clear drops all retained draw ops and the background fill. Sprites survive
// a clear so animations can redraw the backdrop without respawning them.
func (d *drawSurface) Clear() {
	d.ops = nil
	d.hasFill = false
}

func (d *drawSurface) FillScreen(color string) {
	d.background = parse(color)
	d.hasFill = true
	d.ops = nil
}

func (d *drawSurface) Line(x1, y1, x2, y2 float64, color string, width float64) {
	d.ops = append(d.ops, drawOp{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, width: width, color: parse(color)})
}

func (d *drawSurface) Rect(x, y, w, h float64, color string) {
	d.ops = append(d.ops, drawOp{kind: "rect", x1: x, y1: y, x2: w, y2: h, color: parse(color)})
}

func (d *drawSurface) Circle(x, y, r float64, color string, fill bool) {
	d.ops = append(d.ops, drawOp{kind: "circle", x1: x, y1: y, radius: r, fill: fill, color: parse(color)})
}

func (d *drawSurface) Text(x, y float64, text, color string) {
	d.ops = append(d.ops, drawOp{kind: "text", x1: x, y1: y, text: text, color: parse(color)})
}

func (d *drawSurface) CreateSprite(name string, x, y, w, h float64, color string) {
	if _, exists := d.sprites[name]; !exists {
		d.order = append(d.order, name)
	}
	d.sprites[name] = &sprite{x: x, y: y, w: w, h: h, color: parse(color), visible: true}
}

func (d *drawSurface) MoveSprite(name string, x, y float64) {
	if s, ok := d.sprites[name]; ok {
		s.x, s.y = x, y
	}
}

func (d *drawSurface) ColorSprite(name, color string) {
	if s, ok := d.sprites[name]; ok {
		s.color = parse(color)
	}
}

func (d *drawSurface) ShowSprite(name string) {
	if s, ok := d.sprites[name]; ok {
		s.visible = true
	}
}

func (d *drawSurface) HideSprite(name string) {
	if s, ok := d.sprites[name]; ok {
		s.visible = false
	}
}

func (d *drawSurface) DeleteSprite(name string) {
	if _, ok := d.sprites[name]; !ok {
		return
	}
	delete(d.sprites, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Draw renders the 2D layer over the frame. Only active in graphics mode.
func (d *drawSurface) Draw() {
	if !d.graphics {
		return
	}
	if d.hasFill {
		rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), toRl(d.background))
	}
	for _, op := range d.ops {
		switch op.kind {
		case "line":
			rl.DrawLineEx(
				rl.NewVector2(float32(op.x1), float32(op.y1)),
				rl.NewVector2(float32(op.x2), float32(op.y2)),
				float32(op.width), toRl(op.color))
		case "rect":
			rl.DrawRectangle(int32(op.x1), int32(op.y1), int32(op.x2), int32(op.y2), toRl(op.color))
		case "circle":
			if op.fill {
				rl.DrawCircle(int32(op.x1), int32(op.y1), float32(op.radius), toRl(op.color))
			} else {
				rl.DrawCircleLines(int32(op.x1), int32(op.y1), float32(op.radius), toRl(op.color))
			}
		case "text":
			rl.DrawText(op.text, int32(op.x1), int32(op.y1), 20, toRl(op.color))
		}
	}
	for _, name := range d.order {
		s := d.sprites[name]
		if s == nil || !s.visible {
			continue
		}
		rl.DrawRectangle(int32(s.x), int32(s.y), int32(s.w), int32(s.h), toRl(s.color))
	}
}
