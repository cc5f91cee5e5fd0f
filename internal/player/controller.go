package player

import (
	"math"

	"atlas-engine/internal/physics"
	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

// Controller tunables.
const (
	// DefaultSpeed is horizontal movement in units per second.
	DefaultSpeed = 5.0
	// lookSpeed is look rotation in degrees per frame.
	lookSpeed = 3.0
	// pitchLimit clamps pitch so the view never flips.
	pitchLimit = 89.0
	// DefaultJumpForce is the vertical velocity set on jump.
	DefaultJumpForce = 5.0
	// EyeHeight offsets the camera above the player center.
	EyeHeight = 0.8
	// standTolerance: vertical distance within which the player snaps onto a
	// block's top face.
	standTolerance = 0.3
	// rampSnap: vertical distance within which the player snaps onto a wedge
	// slope.
	rampSnap = 0.5
	// topClearance: when the player's bottom is this close to (or above) a
	// block's top, side pushback is skipped so landings work.
	topClearance = 0.3
)

// Input is one frame of held keys for the first-person controller. Jump is
// consumed on use so holding the key does not multi-jump.
type Input struct {
	Forward, Back, StrafeLeft, StrafeRight bool
	LookLeft, LookRight, LookUp, LookDown  bool
	Jump                                   bool
	FlyUp, FlyDown                         bool
}

// Controller drives the player's shape in game mode: look, move, jump,
// gravity and collision. Noclip (fly) is only honored in builder gameplay.
type Controller struct {
	Speed     float64
	JumpForce float64
	Gravity   float64
	Enabled   bool
	Noclip    bool
}

// NewController returns a controller with default speed, jump and gravity.
func NewController() *Controller {
	return &Controller{
		Speed:     DefaultSpeed,
		JumpForce: DefaultJumpForce,
		Gravity:   physics.DefaultGravity,
	}
}

// SetSpeed sets horizontal movement speed in units per second.
func (c *Controller) SetSpeed(speed float64) { c.Speed = speed }

// SetJumpForce sets the vertical velocity applied on jump.
func (c *Controller) SetJumpForce(force float64) { c.JumpForce = force }

// Update advances the player by one fixed step and syncs the camera to the
// player's eyes. It does nothing outside game mode, while disabled, or
// without a player shape.
func (c *Controller) Update(sc *scene.Scene, in *Input, dt float64) {
	player, ok := sc.PlayerShape()
	if !ok || sc.Mode != scene.ModeGame || !c.Enabled {
		return
	}
	cam := &sc.Camera
	oldPos := player.Position

	if in.LookLeft {
		cam.Yaw -= lookSpeed
	}
	if in.LookRight {
		cam.Yaw += lookSpeed
	}
	if in.LookUp {
		cam.Pitch += lookSpeed
		if cam.Pitch > pitchLimit {
			cam.Pitch = pitchLimit
		}
	}
	if in.LookDown {
		cam.Pitch -= lookSpeed
		if cam.Pitch < -pitchLimit {
			cam.Pitch = -pitchLimit
		}
	}

	moveSpeed := c.Speed * dt
	yaw := cam.Yaw * math.Pi / 180
	forwardX, forwardZ := math.Sin(yaw), math.Cos(yaw)
	rightX, rightZ := math.Sin(yaw+math.Pi/2), math.Cos(yaw+math.Pi/2)

	if in.Forward {
		player.Position.X += forwardX * moveSpeed
		player.Position.Z += forwardZ * moveSpeed
	}
	if in.Back {
		player.Position.X -= forwardX * moveSpeed
		player.Position.Z -= forwardZ * moveSpeed
	}
	if in.StrafeLeft {
		player.Position.X -= rightX * moveSpeed
		player.Position.Z -= rightZ * moveSpeed
	}
	if in.StrafeRight {
		player.Position.X += rightX * moveSpeed
		player.Position.Z += rightZ * moveSpeed
	}

	flying := c.Noclip && sc.Gameplay == scene.GameplayBuilder
	if flying {
		if in.FlyDown {
			player.Position.Y -= moveSpeed
		}
		if in.FlyUp {
			player.Position.Y += moveSpeed
		}
	}

	if !flying {
		c.resolveSideCollisions(sc, player, oldPos)

		player.Velocity.Y += c.Gravity * dt
		player.Position.Y += player.Velocity.Y * dt

		player.OnGround = false
		c.landOnPlanes(sc, player)
		if !player.OnGround {
			c.landOnBlocks(sc, player)
		}
	} else {
		// Flying counts as grounded so nothing else fights the fly keys.
		player.OnGround = true
	}

	if in.Jump && player.OnGround && !flying {
		player.Velocity.Y = c.JumpForce
		player.OnGround = false
		in.Jump = false
	}

	cam.Position = player.Position
	cam.Position.Y += EyeHeight
	cam.Rotation.X = cam.Pitch
	cam.Rotation.Y = cam.Yaw
}

// resolveSideCollisions reverts horizontal motion into a collidable block's
// side and nudges the player out along the dominant axis. Blocks whose top
// the player is about to land on are skipped.
func (c *Controller) resolveSideCollisions(sc *scene.Scene, player *shape.Shape, oldPos vec.Vector3) {
	for _, s := range sc.Shapes() {
		if s == player || !s.HasCollision {
			continue
		}
		// Wedges are walkable ramps; the slope test owns them.
		if s.Kind == shape.KindWedge {
			continue
		}
		playerBottom := player.Position.Y - player.Size/2
		blockTop := s.Position.Y + s.Size*s.Scale.Y/2
		if playerBottom >= blockTop-topClearance {
			continue
		}
		if !overlapAABB(player, s) {
			continue
		}
		player.Position.X = oldPos.X
		player.Position.Z = oldPos.Z

		dx := player.Position.X - s.Position.X
		dz := player.Position.Z - s.Position.Z
		gap := s.Size/2 + player.Size/2
		if math.Abs(dx) > math.Abs(dz) {
			if dx > 0 {
				player.Position.X = s.Position.X + gap
			} else {
				player.Position.X = s.Position.X - gap
			}
		} else {
			if dz > 0 {
				player.Position.Z = s.Position.Z + gap
			} else {
				player.Position.Z = s.Position.Z - gap
			}
		}
		break
	}
}

func (c *Controller) landOnPlanes(sc *scene.Scene, player *shape.Shape) {
	for _, s := range sc.Shapes() {
		if s.Kind != shape.KindPlane || !s.IsStatic {
			continue
		}
		groundLevel := s.Position.Y + player.Size/2
		if player.Position.Y <= groundLevel {
			player.Position.Y = groundLevel
			player.Velocity.Y = 0
			player.OnGround = true
			return
		}
	}
}

func (c *Controller) landOnBlocks(sc *scene.Scene, player *shape.Shape) {
	for _, s := range sc.Shapes() {
		if s == player || !s.HasCollision {
			continue
		}
		if s.Kind == shape.KindWedge {
			if c.landOnRamp(s, player) {
				return
			}
			continue
		}

		playerBottom := player.Position.Y - player.Size/2
		var blockTop, halfX, halfZ float64
		if s.Kind == shape.KindSphere {
			blockTop = s.Position.Y + s.Radius()
			halfX, halfZ = s.Radius(), s.Radius()
		} else {
			blockTop = s.Position.Y + s.Size*s.Scale.Y/2
			halfX = s.Size * s.Scale.X / 2
			halfZ = s.Size * s.Scale.Z / 2
		}

		xOverlap := math.Abs(player.Position.X-s.Position.X) < player.Size/2+halfX
		zOverlap := math.Abs(player.Position.Z-s.Position.Z) < player.Size/2+halfZ
		if xOverlap && zOverlap && math.Abs(playerBottom-blockTop) < standTolerance {
			player.Position.Y = blockTop + player.Size/2
			player.Velocity.Y = 0
			player.OnGround = true
			return
		}
	}
}

// landOnRamp snaps the player onto a wedge's sloped surface. The player's
// horizontal offset is rotated into the wedge's yaw-local frame; within the
// footprint, the slope height interpolates from the low front edge (+Z) to
// the raised back edge (-Z).
func (c *Controller) landOnRamp(w *shape.Shape, player *shape.Shape) bool {
	halfX := w.Size * w.Scale.X / 2
	halfZ := w.Size * w.Scale.Z / 2
	halfY := w.Size * w.Scale.Y / 2

	yaw := -w.Rotation.Y * math.Pi / 180
	relX := player.Position.X - w.Position.X
	relZ := player.Position.Z - w.Position.Z
	localX := relX*math.Cos(yaw) - relZ*math.Sin(yaw)
	localZ := relX*math.Sin(yaw) + relZ*math.Cos(yaw)

	if math.Abs(localX) >= halfX || math.Abs(localZ) >= halfZ {
		return false
	}

	zNorm := (halfZ - localZ) / (2 * halfZ) // 0 at front (low), 1 at back (high)
	zNorm = math.Max(0, math.Min(1, zNorm))
	slopeHeight := w.Position.Y - halfY + zNorm*2*halfY

	playerBottom := player.Position.Y - player.Size/2
	if math.Abs(playerBottom-slopeHeight) >= rampSnap {
		return false
	}
	player.Position.Y = slopeHeight + player.Size/2
	player.Velocity.Y = 0
	player.OnGround = true
	return true
}

// overlapAABB tests player-vs-shape overlap on all three axes using
// size-and-scale half extents.
func overlapAABB(a, b *shape.Shape) bool {
	return math.Abs(a.Position.X-b.Position.X) < a.Size*a.Scale.X/2+b.Size*b.Scale.X/2 &&
		math.Abs(a.Position.Y-b.Position.Y) < a.Size*a.Scale.Y/2+b.Size*b.Scale.Y/2 &&
		math.Abs(a.Position.Z-b.Position.Z) < a.Size*a.Scale.Z/2+b.Size*b.Scale.Z/2
}
