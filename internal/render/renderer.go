package render

import (
	"image/color"
	"sort"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

const (
	gridSize    = 10
	gridSpacing = 1.0
	axisLength  = 2.0

	badgeOffsetY = 30
	badgeRadius  = 4

	messageFontSize = 16.0
	messageTopPad   = 60.0

	minBrightness = 0.2
)

var (
	// Reused every frame to avoid per-frame color churn.
	backgroundColor = color.RGBA{30, 30, 30, 255}
	gridColor       = color.RGBA{51, 51, 51, 255}
	axisXColor      = color.RGBA{255, 0, 0, 255}
	axisYColor      = color.RGBA{0, 255, 0, 255}
	axisZColor      = color.RGBA{0, 0, 255, 255}
	outlineColor    = color.RGBA{255, 255, 255, 255}
	badgeColor      = color.RGBA{0, 255, 255, 255}
	messageColor    = color.RGBA{255, 255, 0, 255}
)

// GizmoMode selects what dragging the gizmo arrows edits.
type GizmoMode string

const (
	GizmoTranslate GizmoMode = "translate"
	GizmoRotate    GizmoMode = "rotate"
	GizmoScale     GizmoMode = "scale"
)

// WeaponState animates the first-person weapon overlay. The frontend sets
// Moving while a movement key is held; shooting sets Recoil and MuzzleFlash.
type WeaponState struct {
	BobTime     float64
	Recoil      float64
	MuzzleFlash bool
	Moving      bool
}

// Renderer draws a scene onto a Canvas through a Projector. One renderer per
// viewport; it carries only presentation state (gizmo, weapon overlay), never
// world state.
type Renderer struct {
	GizmoVisible bool
	GizmoMode    GizmoMode
	Weapon       WeaponState

	GridVisible      bool
	HUDVisible       bool
	CrosshairVisible bool

	// Vars reads script variables for HUD values (ammo, magazine). Optional.
	Vars func(name string) (float64, bool)

	background color.RGBA

	// Timed on-screen message from the message verb.
	messageText   string
	messageFrames int

	// Laser beam feedback after a shot, in frames remaining.
	laserFrames int
	laserFrom   vec.Vector3
	laserTo     vec.Vector3
}

// New returns a renderer with the gizmo in translate mode and all overlays
// visible.
func New() *Renderer {
	return &Renderer{
		GizmoMode:        GizmoTranslate,
		GridVisible:      true,
		HUDVisible:       true,
		CrosshairVisible: true,
		background:       backgroundColor,
	}
}

// SetHUDVisible toggles the game-mode HUD.
func (r *Renderer) SetHUDVisible(on bool) { r.HUDVisible = on }

// SetCrosshairVisible toggles the crosshair inside the HUD.
func (r *Renderer) SetCrosshairVisible(on bool) { r.CrosshairVisible = on }

// SetSkyColor changes the clear color. Unparseable names are ignored.
func (r *Renderer) SetSkyColor(name string) {
	if c, err := shape.ParseColor(name); err == nil {
		r.background = c
	}
}

// ShowMessage overlays text near the top of the viewport for the given
// number of seconds (at the fixed 60 Hz step).
func (r *Renderer) ShowMessage(text string, seconds float64) {
	r.messageText = text
	r.messageFrames = int(seconds * 60)
}

// ShowLaser draws a brief beam from a point along dir for length units.
func (r *Renderer) ShowLaser(from, dir vec.Vector3, length float64) {
	r.laserFrom = from
	r.laserTo = from.Add(dir.Scale(length))
	r.laserFrames = 3
}

// Draw renders one frame: grid, axes, shapes by layer, gizmo, then HUD or
// camera info depending on mode.
func (r *Renderer) Draw(c Canvas, sc *scene.Scene) {
	w, h := c.Size()
	proj := Projector{Camera: &sc.Camera, Width: w, Height: h}

	c.Clear(r.background)
	if r.GridVisible {
		r.drawGrid(c, proj)
		r.drawAxes(c, proj)
	}

	selected, _ := sc.SelectedShape()
	shapes := sc.Shapes()
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].Layer < shapes[j].Layer
	})
	for _, s := range shapes {
		r.drawShape(c, proj, sc, s, s == selected)
	}

	if r.laserFrames > 0 {
		r.laserFrames--
		a, aok := proj.Project(r.laserFrom)
		b, bok := proj.Project(r.laserTo)
		if aok && bok {
			c.Line(a, b, axisYColor, 3)
		}
	}

	if selected != nil && r.GizmoVisible {
		if sc.Mode == scene.ModeTrajectory || sc.Gameplay == scene.GameplayBuilder {
			r.drawGizmo(c, proj, selected)
		}
	}

	if sc.Mode == scene.ModeGame && sc.Player != scene.None {
		if r.HUDVisible {
			r.drawHUD(c, proj, sc)
		}
	} else {
		r.drawCameraInfo(c, sc)
	}
	r.drawMessage(c)
}

// drawMessage renders the timed script message centered near the top.
func (r *Renderer) drawMessage(c Canvas) {
	if r.messageFrames <= 0 || r.messageText == "" {
		return
	}
	r.messageFrames--
	w, _ := c.Size()
	x := float64(w)/2 - float64(len(r.messageText))*messageFontSize*0.3
	c.Text(r.messageText, x, messageTopPad, messageFontSize, messageColor)
}

func (r *Renderer) drawGrid(c Canvas, proj Projector) {
	for i := -gridSize; i <= gridSize; i++ {
		f := float64(i) * gridSpacing
		ext := gridSize * gridSpacing

		p1, ok1 := proj.Project(vec.New(f, 0, -ext))
		p2, ok2 := proj.Project(vec.New(f, 0, ext))
		if ok1 && ok2 {
			c.Line(p1, p2, gridColor, 1)
		}
		p1, ok1 = proj.Project(vec.New(-ext, 0, f))
		p2, ok2 = proj.Project(vec.New(ext, 0, f))
		if ok1 && ok2 {
			c.Line(p1, p2, gridColor, 1)
		}
	}
}

func (r *Renderer) drawAxes(c Canvas, proj Projector) {
	origin, ok := proj.Project(vec.New(0, 0, 0))
	if !ok {
		return
	}
	axes := []struct {
		end   vec.Vector3
		color color.RGBA
	}{
		{vec.New(axisLength, 0, 0), axisXColor},
		{vec.New(0, axisLength, 0), axisYColor},
		{vec.New(0, 0, axisLength), axisZColor},
	}
	for _, a := range axes {
		if end, ok := proj.Project(a.end); ok {
			c.Line(origin, end, a.color, 2)
		}
	}
}

// shadeFace returns whether a face points toward the camera and, if so, the
// face color scaled by its incidence angle and the shape's light level.
func shadeFace(s *shape.Shape, verts []vec.Vector3, face []int, camPos vec.Vector3) (color.RGBA, bool) {
	v0, v1, v2 := verts[face[0]], verts[face[1]], verts[face[2]]
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	center := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
	viewDir := camPos.Sub(center).Normalize()

	dot := normal.Dot(viewDir)
	if dot <= 0 {
		return color.RGBA{}, false
	}
	brightness := dot * s.LightLevel
	if brightness < minBrightness {
		brightness = minBrightness
	}
	if brightness > 1 {
		brightness = 1
	}
	return color.RGBA{
		R: uint8(float64(s.Color.R) * brightness),
		G: uint8(float64(s.Color.G) * brightness),
		B: uint8(float64(s.Color.B) * brightness),
		A: 255,
	}, true
}

func (r *Renderer) drawShape(c Canvas, proj Projector, sc *scene.Scene, s *shape.Shape, selected bool) {
	verts := s.Vertices()
	projected := make([]Point, len(verts))
	visible := make([]bool, len(verts))
	for i, v := range verts {
		projected[i], visible[i] = proj.Project(v)
	}

	width := 1.0
	if selected {
		width = 2.0
	}

	if s.Filled {
		for _, face := range s.Faces() {
			pts := make([]Point, 0, len(face))
			ok := true
			for _, idx := range face {
				if idx >= len(projected) || !visible[idx] {
					ok = false
					break
				}
				pts = append(pts, projected[idx])
			}
			if !ok || len(pts) < 3 {
				continue
			}
			shaded, facing := shadeFace(s, verts, face, sc.Camera.Position)
			if !facing {
				continue
			}
			c.Polygon(pts, shaded)
		}
	}

	// Wireframe under two conditions: unfilled shapes always, filled shapes
	// only while selected (white outline).
	if !s.Filled || selected {
		edgeColor := s.Color
		if s.Filled {
			edgeColor = outlineColor
		}
		for _, e := range s.Edges() {
			if e[0] >= len(projected) || e[1] >= len(projected) {
				continue
			}
			if !visible[e[0]] || !visible[e[1]] {
				continue
			}
			if s.HasCollision {
				c.DashedLine(projected[e[0]], projected[e[1]], edgeColor, width)
			} else {
				c.Line(projected[e[0]], projected[e[1]], edgeColor, width)
			}
		}
	}

	if s.HasCollision && !selected {
		if center, ok := proj.Project(s.Position); ok {
			c.Circle(center.X, center.Y-badgeOffsetY, badgeRadius, badgeColor)
		}
	}
}
