package physics

import (
	"math"

	"atlas-engine/internal/shape"
)

// Tunables for the fixed-step simulation.
const (
	// DefaultGravity pulls along -Y in world units per second squared.
	DefaultGravity = -9.81
	// DT is the fixed timestep, about one frame at 60 FPS.
	DT = 0.016
	// frictionRate scales per-shape friction into a per-step velocity decay.
	frictionRate = 5.0
	// bounceThreshold: falling slower than this lands dead instead of bouncing.
	bounceThreshold = -0.1
	// rollRate converts surface speed into degrees of sphere spin per step.
	rollRate = 50.0
	// rollMinSpeed: below this horizontal speed spheres stop spinning.
	rollMinSpeed = 0.01
)

// World steps shapes through gravity, friction, ground contact, sphere
// rolling, and pairwise box separation (stacking). It mutates the shapes it
// is given and holds no state of its own beyond gravity.
type World struct {
	Gravity float64
}

// NewWorld returns a world with standard downward gravity.
func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

// Step advances every dynamic shape by dt seconds. Static shapes and shapes
// without physics are left untouched but still act as ground (planes) and
// stacking obstacles.
func (w *World) Step(shapes []*shape.Shape, dt float64) {
	for _, s := range shapes {
		if !s.HasPhysics || s.IsStatic {
			continue
		}
		wasOnGround := s.OnGround

		s.Velocity.Y += w.Gravity * dt

		if s.OnGround {
			factor := 1.0 - s.Friction*dt*frictionRate
			s.Velocity.X *= factor
			s.Velocity.Z *= factor
		}

		s.Position = s.Position.Add(s.Velocity.Scale(dt))

		if s.Kind == shape.KindSphere && s.IsRolling && s.OnGround {
			radius := s.Radius()
			if math.Abs(s.Velocity.X) > rollMinSpeed || math.Abs(s.Velocity.Z) > rollMinSpeed {
				s.Rotation.Z += (s.Velocity.X / radius) * dt * rollRate
				s.Rotation.X -= (s.Velocity.Z / radius) * dt * rollRate
			}
		}

		s.OnGround = false
		for _, other := range shapes {
			if other.Kind != shape.KindPlane || !other.IsStatic {
				continue
			}
			groundLevel := other.Position.Y + s.Size/2
			if s.Position.Y <= groundLevel {
				s.Position.Y = groundLevel
				// Bounce on impact only. A shape already resting on the
				// ground zeroes out instead of re-bouncing off the gravity
				// applied this step, so resting contact is stationary.
				if !wasOnGround && s.Velocity.Y < bounceThreshold {
					s.Velocity.Y = -s.Velocity.Y * s.Restitution
				} else {
					s.Velocity.Y = 0
				}
				s.OnGround = true
			}
		}
	}

	w.resolveStacking(shapes)
}

// resolveStacking pushes apart overlapping physics boxes along the minimum
// penetration axis, splitting the correction by mass. Static shapes do not
// move. Planes are handled by the ground pass and skipped here.
func (w *World) resolveStacking(shapes []*shape.Shape) {
	for i := 0; i < len(shapes); i++ {
		si := shapes[i]
		if !si.HasPhysics || si.Kind == shape.KindPlane {
			continue
		}
		boxI := BoxFor(si)
		for j := i + 1; j < len(shapes); j++ {
			sj := shapes[j]
			if !sj.HasPhysics || sj.Kind == shape.KindPlane {
				continue
			}
			depth, axis := penetrationAxis(boxI, BoxFor(sj))
			if axis < 0 {
				continue
			}
			totalMass := si.Mass + sj.Mass
			if si.IsStatic {
				totalMass = sj.Mass
			}
			if sj.IsStatic {
				totalMass = si.Mass
			}
			var moveI, moveJ float64
			switch {
			case si.IsStatic && sj.IsStatic:
				continue
			case si.IsStatic:
				moveJ = depth
			case sj.IsStatic:
				moveI = -depth
			default:
				moveI = -depth * (sj.Mass / totalMass)
				moveJ = depth * (si.Mass / totalMass)
			}
			switch axis {
			case 0:
				si.Position.X += moveI
				sj.Position.X += moveJ
				if !si.IsStatic {
					si.Velocity.X = 0
				}
				if !sj.IsStatic {
					sj.Velocity.X = 0
				}
			case 1:
				si.Position.Y += moveI
				sj.Position.Y += moveJ
				if !si.IsStatic {
					si.Velocity.Y = 0
				}
				if !sj.IsStatic {
					sj.Velocity.Y = 0
				}
				// The upper shape now rests on the lower one.
				if moveJ > 0 {
					sj.OnGround = true
				} else if moveI > 0 {
					si.OnGround = true
				}
			case 2:
				si.Position.Z += moveI
				sj.Position.Z += moveJ
				if !si.IsStatic {
					si.Velocity.Z = 0
				}
				if !sj.IsStatic {
					sj.Velocity.Z = 0
				}
			}
			boxI = BoxFor(si) // update for next pair
		}
	}
}
