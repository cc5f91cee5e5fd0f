package main

import (
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"atlas-engine/internal/commands"
	"atlas-engine/internal/debug"
	"atlas-engine/internal/engineconfig"
	"atlas-engine/internal/graphics"
	"atlas-engine/internal/logger"
	"atlas-engine/internal/physics"
	"atlas-engine/internal/player"
	"atlas-engine/internal/render"
	"atlas-engine/internal/scene"
	"atlas-engine/internal/script"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/terminal"
)

const (
	// interactRange is how close (world units) the player must be to an NPC
	// for E to start dialogue.
	interactRange = 3.0
	// dragScale converts horizontal mouse pixels into gizmo-drag world units.
	dragScale = 0.02
	// maxFrameDt clamps the frame delta so a stalled frame cannot launch
	// shapes through the floor.
	maxFrameDt = 0.05
	// placeDistance is how far in front of the camera builder blocks land.
	placeDistance = 3.0
)

// paletteKeys maps the number keys to builder-mode block kinds.
var paletteKeys = map[int32]shape.Kind{
	rl.KeyOne:   shape.KindCube,
	rl.KeyTwo:   shape.KindSphere,
	rl.KeyThree: shape.KindCone,
	rl.KeyFour:  shape.KindWedge,
	rl.KeyFive:  shape.KindPlane,
}

// app owns the engine subsystems and the per-frame state that ties them
// together: input buffers, the gizmo drag, and the script wait queue.
type app struct {
	prefs  engineconfig.EnginePrefs
	log    *logger.Logger
	scn    *scene.Scene
	interp *script.Interpreter
	rend   *render.Renderer
	surf   *drawSurface
	ctrl   *player.Controller
	enemies player.EnemyAI
	world  *physics.World
	reg    *commands.Registry
	term   *terminal.Terminal
	dbg    *debug.Debug
	canvas rlCanvas

	playerIn player.Input
	cameraIn player.CameraInput
	dragAxis string

	// Builder-mode block palette, selected with the number keys.
	palette shape.Kind

	// Statements queued behind a wait verb, run as the wait drains.
	pending  []string
	waitLeft float64
}

func newApp() *app {
	a := &app{}
	a.prefs, _ = engineconfig.Load()
	a.log = logger.New()
	a.scn = scene.New()
	a.world = physics.NewWorld()
	a.ctrl = player.NewController()
	a.ctrl.Enabled = true

	a.interp = script.New(a.scn)
	a.surf = newDrawSurface()
	a.rend = render.New()
	a.rend.GridVisible = a.prefs.GridVisible
	a.rend.Vars = func(name string) (float64, bool) {
		if _, ok := a.interp.Variables[name]; !ok {
			return 0, false
		}
		return a.interp.Number(name, 0), true
	}

	a.interp.Say = a.log.Say
	a.interp.Log = a.log.Log
	a.interp.Surface = a.surf
	a.interp.View = a.rend
	a.interp.Player = a.ctrl
	a.interp.ScriptDir = a.prefs.ScriptDir

	a.dbg = debug.New()
	a.dbg.SetShowFPS(a.prefs.ShowFPS)
	a.dbg.SetShowMemAlloc(a.prefs.ShowMemAlloc)
	a.dbg.Stats = func() (int, string) {
		return a.scn.Len(), string(a.scn.Mode)
	}

	a.reg = commands.NewRegistry()
	registerCommands(a)
	a.term = terminal.New(a.log, a.reg)
	a.term.OnScript = a.runScript
	return a
}

// runScript executes one console line, or queues it while a wait is pending.
// Wait requests the line produces are added to the pending time.
func (a *app) runScript(line string) {
	if a.waitLeft > 0 {
		a.pending = append(a.pending, line)
		return
	}
	a.interp.Run(line)
	a.drainWait()
}

func (a *app) drainWait() {
	if a.interp.PendingWait > 0 {
		a.waitLeft += a.interp.PendingWait.Seconds()
		a.interp.PendingWait = 0
	}
}

func (a *app) update() {
	a.term.Update()

	dt := float64(rl.GetFrameTime())
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	// Drain the wait queue.
	if a.waitLeft > 0 {
		a.waitLeft -= dt
	} else if len(a.pending) > 0 {
		line := a.pending[0]
		a.pending = a.pending[1:]
		a.interp.Run(line)
		a.drainWait()
	}

	if a.term.IsOpen() {
		return
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.scn.Camera.FirstPerson = !a.scn.Camera.FirstPerson
	}

	if a.scn.Mode == scene.ModeGame {
		a.updateGame(dt)
	} else {
		a.updateEditor()
	}

	if a.scn.PhysicsEnabled {
		a.world.Step(a.scn.Shapes(), dt)
	}
}

func (a *app) updateGame(dt float64) {
	readPlayerInput(&a.playerIn)
	a.rend.Weapon.Moving = moving(&a.playerIn)

	if rl.IsKeyPressed(rl.KeyV) && a.scn.Gameplay == scene.GameplayBuilder {
		a.ctrl.Noclip = !a.ctrl.Noclip
	}

	a.ctrl.Update(a.scn, &a.playerIn, dt)
	a.enemies.Update(a.scn, a.ctrl, a.interp, a.log.Log)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if a.scn.Gameplay == scene.GameplayBuilder {
			a.placeBlock()
		} else {
			res := player.Shoot(a.scn, a.interp, a.log.Log)
			if res.Fired {
				a.rend.Weapon.Recoil = 1.0
				a.rend.Weapon.MuzzleFlash = true
				a.rend.ShowLaser(res.Origin, res.Dir, res.Length)
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyE) {
		a.interact()
	}

	for key, kind := range paletteKeys {
		if rl.IsKeyPressed(key) {
			a.palette = kind
			a.log.Info("Block palette: " + string(kind))
		}
	}
}

// placeBlock drops a palette block a few units along the view direction,
// snapped to the unit grid so stacks line up.
func (a *app) placeBlock() {
	kind := a.palette
	if kind == "" {
		kind = shape.KindCube
	}
	pos := a.scn.Camera.Position.Add(player.LookDir(&a.scn.Camera).Scale(placeDistance))
	pos.X = math.Round(pos.X)
	pos.Y = math.Round(pos.Y)
	pos.Z = math.Round(pos.Z)
	s := shape.New(kind, pos, 1)
	s.HasCollision = true
	a.scn.Add(s)
}

func (a *app) interact() {
	p, ok := a.scn.PlayerShape()
	if !ok {
		return
	}
	h, ok := a.scn.NearestNPC(p.Position, interactRange)
	if !ok {
		return
	}
	npc, _ := a.scn.Get(h)
	if line, ok := a.scn.Interact(h); ok {
		a.log.Say("💬 " + npc.Name + ": " + line)
	}
}

func (a *app) updateEditor() {
	readCameraInput(&a.cameraIn)
	player.UpdateFreeCamera(a.scn, &a.cameraIn)

	if rl.IsKeyPressed(rl.KeyG) {
		switch a.rend.GizmoMode {
		case render.GizmoTranslate:
			a.rend.GizmoMode = render.GizmoRotate
		case render.GizmoRotate:
			a.rend.GizmoMode = render.GizmoScale
		default:
			a.rend.GizmoMode = render.GizmoTranslate
		}
	}
	if rl.IsKeyPressed(rl.KeyC) {
		if a.scn.Copy() {
			a.log.Info("Shape copied")
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		if h, ok := a.scn.Paste(); ok {
			a.scn.Selected = h
			a.log.Info("Shape pasted")
		}
	}
	if rl.IsKeyPressed(rl.KeyDelete) && a.scn.Selected != scene.None {
		a.scn.Remove(a.scn.Selected)
	}

	a.updateGizmoDrag()
}

// updateGizmoDrag handles click selection and dragging the gizmo arrows.
// Clicking an arrow tip starts a drag on that axis; clicking elsewhere
// re-picks the selection.
func (a *app) updateGizmoDrag() {
	w, h := a.canvas.Size()
	proj := render.Projector{Camera: &a.scn.Camera, Width: w, Height: h}
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if s, ok := a.scn.SelectedShape(); ok && a.rend.GizmoVisible {
			if axis := render.GizmoHit(proj, s, float64(mouse.X), float64(mouse.Y)); axis != "" {
				a.dragAxis = axis
				return
			}
		}
		if picked, ok := render.Pick(proj, a.scn, float64(mouse.X), float64(mouse.Y)); ok {
			a.scn.Selected = picked
			a.rend.GizmoVisible = true
		} else {
			a.scn.Selected = scene.None
			a.rend.GizmoVisible = false
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.dragAxis = ""
	}
	if a.dragAxis == "" {
		return
	}
	s, ok := a.scn.SelectedShape()
	if !ok {
		a.dragAxis = ""
		return
	}
	amount := float64(rl.GetMouseDelta().X) * dragScale
	switch a.rend.GizmoMode {
	case render.GizmoRotate:
		amount *= 45 // pixels to degrees
		switch a.dragAxis {
		case "x":
			s.Rotation.X += amount
		case "y":
			s.Rotation.Y += amount
		case "z":
			s.Rotation.Z += amount
		}
	case render.GizmoScale:
		switch a.dragAxis {
		case "x":
			s.Scale.X += amount
		case "y":
			s.Scale.Y += amount
		case "z":
			s.Scale.Z += amount
		}
	default:
		switch a.dragAxis {
		case "x":
			s.Position.X += amount
		case "y":
			s.Position.Y -= amount
		case "z":
			s.Position.Z += amount
		}
	}
}

func (a *app) draw() {
	a.rend.Draw(a.canvas, a.scn)
	a.surf.Draw()
	a.term.Draw()
	a.dbg.Draw()
}

func main() {
	a := newApp()
	if len(os.Args) > 1 {
		if err := a.interp.RunFile(os.Args[1]); err != nil {
			a.log.Log(logger.LevelError, err.Error())
		}
		a.drainWait()
	}
	graphics.Run(a.prefs, a.update, a.draw)
}
