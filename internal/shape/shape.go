package shape

import (
	"fmt"
	"image/color"
	"strings"

	"atlas-engine/internal/vec"
)

// Kind selects a shape's geometry generator.
type Kind string

const (
	KindCube   Kind = "cube"
	KindSphere Kind = "sphere"
	KindCone   Kind = "cone"
	KindWedge  Kind = "wedge"
	KindPlane  Kind = "plane"
)

// Default segment counts for round shapes.
const (
	SphereSegments = 12
	ConeSegments   = 16
)

// Shape is a drawable, optionally physics-enabled primitive. All variants share
// one struct; Kind picks the geometry. Fields are plain data so shapes can be
// snapshotted (clipboard) and serialized (scene files) without special casing.
type Shape struct {
	Kind     Kind         `yaml:"kind"`
	Position vec.Vector3  `yaml:"position"`
	Rotation vec.Vector3  `yaml:"rotation"` // Euler degrees, applied X then Y then Z
	Scale    vec.Vector3  `yaml:"scale"`
	Size     float64      `yaml:"size"`
	Color    color.RGBA   `yaml:"color"`
	Filled   bool         `yaml:"filled"`
	Layer    int          `yaml:"layer"`

	LightLevel float64 `yaml:"light_level"`

	Velocity        vec.Vector3 `yaml:"velocity,omitempty"`
	AngularVelocity vec.Vector3 `yaml:"angular_velocity,omitempty"`

	HasPhysics   bool    `yaml:"has_physics"`
	IsStatic     bool    `yaml:"is_static"`
	OnGround     bool    `yaml:"-"`
	HasCollision bool    `yaml:"has_collision"`
	IsRolling    bool    `yaml:"is_rolling"`
	Mass         float64 `yaml:"mass"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`

	// Round shapes only.
	Segments int `yaml:"segments,omitempty"`

	// NPC metadata (cubes only).
	Name          string `yaml:"name,omitempty"`
	IsNPC         bool   `yaml:"is_npc,omitempty"`
	DialogueIndex int    `yaml:"-"`
	Health        int    `yaml:"health,omitempty"`
}

// New returns a shape of the given kind at position with the given size,
// carrying that kind's defaults (color, segments, static/rolling flags).
func New(kind Kind, position vec.Vector3, size float64) *Shape {
	s := &Shape{
		Kind:        kind,
		Position:    position,
		Scale:       vec.New(1, 1, 1),
		Size:        size,
		Color:       color.RGBA{0, 255, 0, 255},
		LightLevel:  1.0,
		Mass:        1.0,
		Friction:    0.5,
		Restitution: 0.3,
	}
	switch kind {
	case KindSphere:
		s.Segments = SphereSegments
		s.IsRolling = true
		s.Color = color.RGBA{255, 136, 0, 255}
	case KindCone:
		s.Segments = ConeSegments
		s.Color = color.RGBA{255, 0, 0, 255}
	case KindWedge:
		s.Color = color.RGBA{160, 130, 109, 255}
	case KindPlane:
		s.IsStatic = true
		s.Color = color.RGBA{102, 102, 102, 255}
	}
	return s
}

// Radius returns the sphere/cone base radius (half the size).
func (s *Shape) Radius() float64 {
	return s.Size / 2
}

// namedColors maps the color names scripts may use to RGB values.
var namedColors = map[string]color.RGBA{
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"orange":  {255, 136, 0, 255},
	"purple":  {128, 0, 128, 255},
	"pink":    {255, 105, 180, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"brown":   {160, 130, 109, 255},
}

// ParseColor resolves a script color operand: a known color name ("blue") or a
// hex literal ("#00ff00"). Unknown input returns an error; callers keep the
// shape's current color in that case.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
