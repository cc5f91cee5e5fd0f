package scene

import (
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

// Handle identifies a shape inside a Scene. Handles stay valid until the shape
// is removed; a stale handle simply misses. None is the zero value.
type Handle int

// None is the absent handle.
const None Handle = 0

// Camera holds the view state. Trajectory (edit) mode orbits with Rotation;
// game mode steers with Yaw/Pitch and FirstPerson set.
type Camera struct {
	Position    vec.Vector3 `yaml:"position"`
	Rotation    vec.Vector3 `yaml:"rotation"`
	FOV         float64     `yaml:"fov"`
	Near        float64     `yaml:"near"`
	Far         float64     `yaml:"far"`
	FirstPerson bool        `yaml:"-"`
	Yaw         float64     `yaml:"-"`
	Pitch       float64     `yaml:"-"`
}

// DefaultCamera returns the editor's starting camera: slightly raised, pulled
// back on -Z, 60 degree field of view.
func DefaultCamera() Camera {
	return Camera{
		Position: vec.New(0, 3, -10),
		FOV:      60,
		Near:     0.1,
		Far:      100,
	}
}

// Mode splits free-camera editing from first-person play.
type Mode string

const (
	ModeTrajectory Mode = "trajectory"
	ModeGame       Mode = "game"
)

// GameplayMode tunes game-mode behavior (HUD, shooting, noclip).
type GameplayMode string

const (
	GameplayShooter  GameplayMode = "shooter"
	GameplayExplorer GameplayMode = "explorer"
	GameplayBuilder  GameplayMode = "builder"
	GameplayRPG      GameplayMode = "rpg"
	GameplayPuzzle   GameplayMode = "puzzle"
	GameplayRacing   GameplayMode = "racing"
	GameplaySurvival GameplayMode = "survival"
	GameplaySandbox  GameplayMode = "sandbox"
)

type entry struct {
	handle Handle
	shape  *shape.Shape
}

// Scene owns the shape list (insertion order preserved), the camera, and the
// weak references into the list: selection, player, NPCs. All mutation happens
// on the main loop; Scene is not safe for concurrent use.
type Scene struct {
	entries []entry
	nextID  Handle

	Camera   Camera
	Selected Handle
	Player   Handle

	Mode           Mode
	Gameplay       GameplayMode
	PhysicsEnabled bool

	npcs      []Handle
	Dialogues map[string][]string

	clipboard *shape.Shape
}

// New returns an empty scene with the default camera.
func New() *Scene {
	return &Scene{
		nextID:    1,
		Camera:    DefaultCamera(),
		Mode:      ModeTrajectory,
		Gameplay:  GameplayExplorer,
		Dialogues: make(map[string][]string),
	}
}

// Add appends a shape and returns its handle. NPC-flagged shapes also join
// the NPC list.
func (sc *Scene) Add(s *shape.Shape) Handle {
	h := sc.nextID
	sc.nextID++
	sc.entries = append(sc.entries, entry{handle: h, shape: s})
	if s.IsNPC {
		sc.npcs = append(sc.npcs, h)
	}
	return h
}

// Get returns the shape for h, or false if h was removed or never issued.
func (sc *Scene) Get(h Handle) (*shape.Shape, bool) {
	if h == None {
		return nil, false
	}
	for _, e := range sc.entries {
		if e.handle == h {
			return e.shape, true
		}
	}
	return nil, false
}

// Shapes returns the live shapes in insertion order.
func (sc *Scene) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(sc.entries))
	for i, e := range sc.entries {
		out[i] = e.shape
	}
	return out
}

// Handles returns the live handles in insertion order.
func (sc *Scene) Handles() []Handle {
	out := make([]Handle, len(sc.entries))
	for i, e := range sc.entries {
		out[i] = e.handle
	}
	return out
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return len(sc.entries)
}

// Remove deletes the shape for h and clears any weak references to it
// (selection, player, NPC list). Removing a missing handle is a no-op.
func (sc *Scene) Remove(h Handle) {
	for i, e := range sc.entries {
		if e.handle != h {
			continue
		}
		sc.entries = append(sc.entries[:i], sc.entries[i+1:]...)
		break
	}
	if sc.Selected == h {
		sc.Selected = None
	}
	if sc.Player == h {
		sc.Player = None
	}
	for i, n := range sc.npcs {
		if n == h {
			sc.npcs = append(sc.npcs[:i], sc.npcs[i+1:]...)
			break
		}
	}
}

// Clear removes every shape and resets selection, player, NPCs and dialogues.
// The camera and clipboard survive a clear.
func (sc *Scene) Clear() {
	sc.entries = nil
	sc.Selected = None
	sc.Player = None
	sc.npcs = nil
	sc.Dialogues = make(map[string][]string)
}

// SelectedShape returns the currently selected shape, if any.
func (sc *Scene) SelectedShape() (*shape.Shape, bool) {
	return sc.Get(sc.Selected)
}

// PlayerShape returns the player's shape, if a player is spawned.
func (sc *Scene) PlayerShape() (*shape.Shape, bool) {
	return sc.Get(sc.Player)
}

// NPCs returns the handles of all NPC shapes still in the scene.
func (sc *Scene) NPCs() []Handle {
	return sc.npcs
}

// NPCByName finds an NPC handle by its shape name.
func (sc *Scene) NPCByName(name string) (Handle, bool) {
	for _, h := range sc.npcs {
		if s, ok := sc.Get(h); ok && s.Name == name {
			return h, true
		}
	}
	return None, false
}

// Interact returns the NPC's next dialogue line and advances its cursor,
// wrapping at the end of the list. Returns false for non-NPCs, missing
// handles, or NPCs with no dialogue.
func (sc *Scene) Interact(h Handle) (string, bool) {
	s, ok := sc.Get(h)
	if !ok || !s.IsNPC {
		return "", false
	}
	lines := sc.Dialogues[s.Name]
	if len(lines) == 0 {
		return "", false
	}
	line := lines[s.DialogueIndex%len(lines)]
	s.DialogueIndex++
	return line, true
}

// NearestNPC returns the closest NPC within maxDist of pos, or false if none.
func (sc *Scene) NearestNPC(pos vec.Vector3, maxDist float64) (Handle, bool) {
	best := None
	bestDist := maxDist
	for _, h := range sc.npcs {
		s, ok := sc.Get(h)
		if !ok {
			continue
		}
		if d := s.Position.Sub(pos).Length(); d <= bestDist {
			best = h
			bestDist = d
		}
	}
	return best, best != None
}
