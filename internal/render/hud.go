package render

import (
	"fmt"
	"image/color"
	"math"

	"atlas-engine/internal/scene"
)

const (
	crosshairSize = 10.0
	hudFontSize   = 11.0
	hintFontSize  = 9.0

	weaponBottomPad = 80.0
	gunWidth        = 80.0
	gunHeight       = 60.0
	barrelWidth     = 20.0
	barrelHeight    = 40.0
	gripWidth       = 30.0
	gripHeight      = 25.0
	recoilScale     = 15.0
	recoilDecay     = 0.1
	bobAmplitude    = 3.0
	swayAmplitude   = 2.0
	flashSize       = 30.0
)

var (
	hudTextColor  = color.RGBA{255, 255, 255, 255}
	hintColor     = color.RGBA{136, 136, 136, 255}
	modeColor     = color.RGBA{255, 170, 0, 255}
	gunBodyColor  = color.RGBA{51, 102, 255, 255}
	gunDarkColor  = color.RGBA{34, 68, 170, 255}
	barrelColor   = color.RGBA{17, 68, 170, 255}
	gunShineColor = color.RGBA{85, 136, 255, 255}
	flashColors   = []color.RGBA{
		{255, 255, 0, 255},
		{255, 170, 0, 255},
		{255, 102, 0, 255},
	}
)

func (r *Renderer) drawHUD(c Canvas, proj Projector, sc *scene.Scene) {
	w, h := c.Size()
	cx, cy := float64(w)/2, float64(h)/2

	if r.CrosshairVisible {
		c.Line(Point{cx - crosshairSize, cy}, Point{cx + crosshairSize, cy}, hudTextColor, 2)
		c.Line(Point{cx, cy - crosshairSize}, Point{cx, cy + crosshairSize}, hudTextColor, 2)
	}

	player, ok := sc.PlayerShape()
	if ok {
		pos := player.Position
		c.Text(fmt.Sprintf("Position: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z), 10, 10, hudFontSize, hudTextColor)
		status := "In Air"
		if player.OnGround {
			status = "On Ground"
		}
		c.Text("Status: "+status, 10, 30, hudFontSize, hudTextColor)
		c.Text(fmt.Sprintf("Look: Yaw %.0f Pitch %.0f", sc.Camera.Yaw, sc.Camera.Pitch), 10, 50, hudFontSize, hudTextColor)
		c.Text("Mode: "+string(sc.Gameplay), 10, 70, hudFontSize, modeColor)

		var hint1, hint2 string
		switch sc.Gameplay {
		case scene.GameplayShooter:
			hint1 = "Arrow Keys: Look Around | LMB: Shoot"
			hint2 = "WASD: Move | Space: Jump | E: Interact | Tab: Toggle View"
		case scene.GameplayBuilder:
			hint1 = "Arrow Keys: Look | V: Fly | LMB: Place"
			hint2 = "WASD: Move | Space: Jump | Tab: Toggle View"
		case scene.GameplayRPG:
			hint1 = "Arrow Keys: Look | I: Inventory | E: Interact"
			hint2 = "WASD: Move | Space: Jump | Q: Quest Log | Tab: Toggle View"
		default:
			hint1 = "Arrow Keys: Look Around | Tab: Toggle View"
			hint2 = "WASD: Move | Space: Jump | E: Interact"
		}
		c.Text(hint1, 10, float64(h)-40, hintFontSize, hintColor)
		c.Text(hint2, 10, float64(h)-20, hintFontSize, hintColor)
	}

	if sc.Gameplay == scene.GameplayShooter {
		r.drawWeapon(c)
	}
}

// drawWeapon renders the center-bottom first-person gun with bob, sway,
// recoil and an optional muzzle flash.
func (r *Renderer) drawWeapon(c Canvas) {
	w, h := c.Size()

	var bob, sway float64
	if r.Weapon.Moving {
		r.Weapon.BobTime += 0.2
		bob = math.Sin(r.Weapon.BobTime) * bobAmplitude
		sway = math.Cos(r.Weapon.BobTime*0.5) * swayAmplitude
	}
	var recoil float64
	if r.Weapon.Recoil > 0 {
		recoil = r.Weapon.Recoil * recoilScale
		r.Weapon.Recoil -= recoilDecay
		if r.Weapon.Recoil < 0 {
			r.Weapon.Recoil = 0
		}
	}

	x := float64(w)/2 + sway
	y := float64(h) - weaponBottomPad + bob + recoil

	c.Rect(x-gunWidth/2, y-gunHeight, gunWidth, gunHeight, gunBodyColor)
	c.RectOutline(x-gunWidth/2, y-gunHeight, gunWidth, gunHeight, gunDarkColor, 2)
	c.Rect(x-barrelWidth/2, y-gunHeight-barrelHeight, barrelWidth, barrelHeight, barrelColor)
	c.Line(Point{x - gunWidth/2, y - gunHeight}, Point{x - gunWidth/2 + 10, y - gunHeight + 10}, gunShineColor, 2)
	c.Rect(x-gripWidth/2, y, gripWidth, gripHeight, gunDarkColor)

	if r.Weapon.MuzzleFlash {
		muzzleY := y - gunHeight - barrelHeight
		for i, col := range flashColors {
			c.Circle(x, muzzleY, flashSize-float64(i)*10, col)
		}
		r.Weapon.MuzzleFlash = false
	}

	if r.Vars != nil {
		ammo, ok1 := r.Vars("ammo")
		magazine, ok2 := r.Vars("magazine")
		if !ok1 {
			ammo = 30
		}
		if !ok2 {
			magazine = 30
		}
		c.Text(fmt.Sprintf("%.0f/%.0f", ammo, magazine), float64(w)-90, float64(h)-95, 18, hudTextColor)
		c.Text("AMMO", float64(w)-60, float64(h)-70, hintFontSize, hintColor)
	}
}

func (r *Renderer) drawCameraInfo(c Canvas, sc *scene.Scene) {
	pos := sc.Camera.Position
	rot := sc.Camera.Rotation
	c.Text(fmt.Sprintf("Camera: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z), 10, 10, hintFontSize, hintColor)
	c.Text(fmt.Sprintf("Rotation: (%.0f, %.0f, %.0f)", rot.X, rot.Y, rot.Z), 10, 25, hintFontSize, hintColor)
	c.Text(fmt.Sprintf("Objects: %d", sc.Len()), 10, 40, hintFontSize, hintColor)
}
