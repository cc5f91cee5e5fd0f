package player

import (
	"fmt"
	"math"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/vec"
)

// Weapon tunables (shooter gameplay).
const (
	rayLength    = 1000.0
	npcHealth    = 3
	gunDamage    = 2
	killScore    = 10.0
	hitThreshold = 1.5 // multiplied by the target's size
)

// ShotResult reports one trigger pull for frontend feedback (recoil, muzzle
// flash, laser beam).
type ShotResult struct {
	Fired  bool
	Hit    scene.Handle
	Target string
	Killed bool
	Origin vec.Vector3
	Dir    vec.Vector3
	Length float64
}

// LookDir converts the camera's yaw/pitch into a unit ray direction.
func LookDir(cam *scene.Camera) vec.Vector3 {
	yaw := cam.Yaw * math.Pi / 180
	pitch := cam.Pitch * math.Pi / 180
	return vec.Vector3{
		X: math.Sin(yaw) * math.Cos(pitch),
		Y: -math.Sin(pitch),
		Z: math.Cos(yaw) * math.Cos(pitch),
	}
}

// Shoot fires a ray from the camera along the view direction. Costs one
// round of ammo; hits damage NPCs (removing them at zero health and scoring
// a kill) and report plain objects. Only fires in shooter gameplay.
func Shoot(sc *scene.Scene, vars Vars, log Logf) ShotResult {
	if sc.Gameplay != scene.GameplayShooter || vars == nil {
		return ShotResult{}
	}
	ammo := vars.Number("ammo", 0)
	if ammo <= 0 {
		if log != nil {
			log("warning", "Click! Out of ammo!")
		}
		return ShotResult{}
	}
	vars.SetNumber("ammo", ammo-1)

	origin := sc.Camera.Position
	dir := LookDir(&sc.Camera)

	hit := scene.None
	closest := rayLength
	for _, h := range sc.Handles() {
		if h == sc.Player {
			continue
		}
		s, ok := sc.Get(h)
		if !ok {
			continue
		}
		toShape := s.Position.Sub(origin)
		dist := toShape.Length()
		along := toShape.Dot(dir)
		if along <= 0 || dist >= closest {
			continue
		}
		// Distance from the shape center to the ray line.
		closestPoint := origin.Add(dir.Scale(along))
		if s.Position.Sub(closestPoint).Length() < s.Size*hitThreshold {
			hit = h
			closest = dist
		}
	}

	res := ShotResult{Fired: true, Origin: origin, Dir: dir, Length: closest}
	if hit == scene.None {
		if log != nil {
			log("info", "Miss!")
		}
		return res
	}

	target, _ := sc.Get(hit)
	res.Hit = hit
	res.Target = target.Name
	if target.IsNPC {
		if target.Health == 0 {
			target.Health = npcHealth
		}
		target.Health -= gunDamage
		if log != nil {
			log("success", fmt.Sprintf("Hit %s! HP: %d", target.Name, target.Health))
		}
		if target.Health <= 0 {
			res.Killed = true
			sc.Remove(hit)
			vars.SetNumber("kills", vars.Number("kills", 0)+1)
			score := vars.Number("score", 0) + killScore
			vars.SetNumber("score", score)
			if log != nil {
				log("success", fmt.Sprintf("%s eliminated! Score: %.0f", res.Target, score))
			}
		}
	} else if log != nil {
		log("success", "Hit object!")
	}
	return res
}
