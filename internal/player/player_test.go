package player

import (
	"math"
	"testing"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

type fakeVars map[string]float64

func (v fakeVars) Number(name string, fallback float64) float64 {
	if n, ok := v[name]; ok {
		return n
	}
	return fallback
}

func (v fakeVars) SetNumber(name string, value float64) { v[name] = value }

func gameScene() (*scene.Scene, *Controller) {
	sc := scene.New()
	sc.Mode = scene.ModeGame
	sc.Camera.FirstPerson = true
	p := shape.New(shape.KindCube, vec.New(0, 0.5, 0), 1)
	sc.Player = sc.Add(p)
	sc.Add(shape.New(shape.KindPlane, vec.New(0, 0, 0), 20))
	c := NewController()
	c.Enabled = true
	return sc, c
}

const dt = 0.016

func TestPitchClamp(t *testing.T) {
	sc, c := gameScene()
	in := &Input{LookUp: true}
	for i := 0; i < 100; i++ {
		c.Update(sc, in, dt)
	}
	if sc.Camera.Pitch != pitchLimit {
		t.Fatalf("pitch = %v; want clamped at %v", sc.Camera.Pitch, pitchLimit)
	}
	in = &Input{LookDown: true}
	for i := 0; i < 200; i++ {
		c.Update(sc, in, dt)
	}
	if sc.Camera.Pitch != -pitchLimit {
		t.Fatalf("pitch = %v; want clamped at %v", sc.Camera.Pitch, -pitchLimit)
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	sc, c := gameScene()
	sc.Camera.Yaw = 90 // facing +X
	player, _ := sc.PlayerShape()
	start := player.Position

	c.Update(sc, &Input{Forward: true}, dt)
	if player.Position.X <= start.X {
		t.Fatalf("forward at yaw 90 should move +X; pos %v", player.Position)
	}
	if math.Abs(player.Position.Z-start.Z) > 1e-9 {
		t.Fatalf("forward at yaw 90 should not move Z; pos %v", player.Position)
	}
}

func TestJumpConsumesKeyOnce(t *testing.T) {
	sc, c := gameScene()
	player, _ := sc.PlayerShape()
	player.OnGround = true

	in := &Input{Jump: true}
	c.Update(sc, in, dt)
	if player.Velocity.Y <= 0 {
		t.Fatalf("jump did not set upward velocity: %v", player.Velocity.Y)
	}
	if in.Jump {
		t.Fatal("jump key not consumed")
	}
	if player.OnGround {
		t.Fatal("player still grounded after jump")
	}
}

func TestGroundSnapOnPlane(t *testing.T) {
	sc, c := gameScene()
	player, _ := sc.PlayerShape()
	player.Position.Y = 0.4 // sunk slightly below standing height

	c.Update(sc, &Input{}, dt)
	if player.Position.Y != 0.5 {
		t.Fatalf("player y = %v; want snapped to 0.5", player.Position.Y)
	}
	if !player.OnGround {
		t.Fatal("player should be grounded")
	}
	// Camera rides at eye height above the player.
	if got := sc.Camera.Position.Y - player.Position.Y; math.Abs(got-EyeHeight) > 1e-9 {
		t.Fatalf("camera eye offset = %v; want %v", got, EyeHeight)
	}
}

func TestStandOnBlockTop(t *testing.T) {
	sc, c := gameScene()
	player, _ := sc.PlayerShape()
	block := shape.New(shape.KindCube, vec.New(0, 1, 0), 2) // top at y=2
	block.HasCollision = true
	sc.Add(block)

	player.Position = vec.New(0, 2.6, 0) // bottom at 2.1, within tolerance
	c.Update(sc, &Input{}, dt)
	if player.Position.Y != 2.5 {
		t.Fatalf("player y = %v; want standing at 2.5", player.Position.Y)
	}
	if !player.OnGround {
		t.Fatal("player should stand on the block")
	}
}

func TestSidePushback(t *testing.T) {
	sc, c := gameScene()
	player, _ := sc.PlayerShape()
	wall := shape.New(shape.KindCube, vec.New(2, 0.5, 0), 1)
	wall.HasCollision = true
	sc.Add(wall)

	// Walk into the wall from the -X side.
	player.Position = vec.New(1.2, 0.5, 0)
	sc.Camera.Yaw = 90
	c.Update(sc, &Input{Forward: true}, dt)

	wantX := wall.Position.X - (wall.Size/2 + player.Size/2)
	if math.Abs(player.Position.X-wantX) > 1e-9 {
		t.Fatalf("player x = %v; want pushed to %v", player.Position.X, wantX)
	}
}

func TestWedgeRampInterpolation(t *testing.T) {
	sc, c := gameScene()
	player, _ := sc.PlayerShape()
	ramp := shape.New(shape.KindWedge, vec.New(5, 1, 0), 2) // slope from y=0 front to y=2 back
	ramp.HasCollision = true
	sc.Add(ramp)

	// Stand at the wedge center: slope height is the wedge's mid height.
	player.Position = vec.New(5, 1.6, 0)
	player.Velocity.Y = 0
	c.Update(sc, &Input{}, dt)
	if !player.OnGround {
		t.Fatal("player should be on the ramp")
	}
	if math.Abs(player.Position.Y-1.5) > 1e-9 {
		t.Fatalf("player y = %v; want 1.5 (slope mid + half size)", player.Position.Y)
	}

	// Toward the back edge (-Z) the slope rises.
	player.Position = vec.New(5, 2.2, -0.8)
	player.Velocity.Y = 0
	c.Update(sc, &Input{}, dt)
	if !player.OnGround {
		t.Fatal("player should ride the higher part of the ramp")
	}
	if player.Position.Y <= 1.5 {
		t.Fatalf("player y = %v; want above ramp midpoint", player.Position.Y)
	}
}

func TestNoclipFliesOnlyInBuilder(t *testing.T) {
	sc, c := gameScene()
	c.Noclip = true
	player, _ := sc.PlayerShape()

	// Explorer gameplay: noclip ignored, gravity still applies.
	sc.Gameplay = scene.GameplayExplorer
	player.Position.Y = 5
	c.Update(sc, &Input{FlyUp: true}, dt)
	if player.Position.Y >= 5 {
		t.Fatalf("noclip outside builder should fall; y = %v", player.Position.Y)
	}

	// Builder gameplay: fly keys work, no gravity.
	sc.Gameplay = scene.GameplayBuilder
	player.Position.Y = 5
	player.Velocity.Y = 0
	c.Update(sc, &Input{FlyUp: true}, dt)
	if player.Position.Y <= 5 {
		t.Fatalf("builder noclip should fly up; y = %v", player.Position.Y)
	}
}

func TestControllerIdleOutsideGameMode(t *testing.T) {
	sc, c := gameScene()
	sc.Mode = scene.ModeTrajectory
	player, _ := sc.PlayerShape()
	before := player.Position
	c.Update(sc, &Input{Forward: true}, dt)
	if player.Position != before {
		t.Fatal("controller moved player outside game mode")
	}
}

func TestFreeCameraMovesAndResets(t *testing.T) {
	sc := scene.New()
	if !UpdateFreeCamera(sc, &CameraInput{Forward: true}) {
		t.Fatal("camera should report movement")
	}
	if sc.Camera.Position.Z != scene.DefaultCamera().Position.Z+CameraSpeed {
		t.Fatalf("camera z = %v", sc.Camera.Position.Z)
	}
	in := &CameraInput{Reset: true}
	UpdateFreeCamera(sc, in)
	if sc.Camera.Position != scene.DefaultCamera().Position {
		t.Fatalf("camera not reset: %v", sc.Camera.Position)
	}
	if in.Reset {
		t.Fatal("reset key not consumed")
	}

	sc.Camera.FirstPerson = true
	if UpdateFreeCamera(sc, &CameraInput{Forward: true}) {
		t.Fatal("free camera should be inactive in first person")
	}
}

func TestShootHitAndKill(t *testing.T) {
	sc, _ := gameScene()
	sc.Gameplay = scene.GameplayShooter
	sc.Camera.Position = vec.New(0, 1, 0)
	sc.Camera.Yaw = 0
	sc.Camera.Pitch = 0

	npc := shape.New(shape.KindCube, vec.New(0, 1, 5), 1)
	npc.IsNPC = true
	npc.Name = "target"
	npcH := sc.Add(npc)

	vars := fakeVars{"ammo": 3}
	// NPC starts at 3 HP and takes 2 per hit: two shots kill.
	res := Shoot(sc, vars, nil)
	if !res.Fired || res.Hit != npcH || res.Killed {
		t.Fatalf("first shot = %+v", res)
	}
	res = Shoot(sc, vars, nil)
	if !res.Killed {
		t.Fatalf("second shot should kill; got %+v", res)
	}
	if _, ok := sc.Get(npcH); ok {
		t.Fatal("killed NPC still in scene")
	}
	if vars["ammo"] != 1 {
		t.Fatalf("ammo = %v; want 1", vars["ammo"])
	}
	if vars["kills"] != 1 || vars["score"] != killScore {
		t.Fatalf("kills=%v score=%v", vars["kills"], vars["score"])
	}
}

func TestShootOutOfAmmo(t *testing.T) {
	sc, _ := gameScene()
	sc.Gameplay = scene.GameplayShooter
	vars := fakeVars{"ammo": 0}
	if res := Shoot(sc, vars, nil); res.Fired {
		t.Fatal("shot fired with no ammo")
	}
}

func TestEnemyChasesAndDamages(t *testing.T) {
	sc, c := gameScene()
	sc.Gameplay = scene.GameplayShooter
	player, _ := sc.PlayerShape()
	player.Position = vec.New(0, 1, 0)

	npc := shape.New(shape.KindCube, vec.New(5, 1, 0), 1)
	npc.IsNPC = true
	npc.Name = "chaser"
	sc.Add(npc)

	vars := fakeVars{"health": 100}
	ai := &EnemyAI{}
	ai.Update(sc, c, vars, nil)
	if npc.Position.X >= 5 {
		t.Fatalf("enemy did not chase; x = %v", npc.Position.X)
	}

	// Within attack range: player takes damage once per cooldown window.
	npc.Position = vec.New(0.6, 1, 0)
	ai.Update(sc, c, vars, nil)
	if vars["health"] != 100-enemyDamage {
		t.Fatalf("health = %v; want %v", vars["health"], 100-enemyDamage)
	}
	ai.Update(sc, c, vars, nil)
	if vars["health"] != 100-enemyDamage {
		t.Fatalf("cooldown ignored; health = %v", vars["health"])
	}
}

func TestEnemyKillsPlayerDisablesControls(t *testing.T) {
	sc, c := gameScene()
	sc.Gameplay = scene.GameplayShooter
	player, _ := sc.PlayerShape()
	player.Position = vec.New(0, 1, 0)

	npc := shape.New(shape.KindCube, vec.New(0.6, 1, 0), 1)
	npc.IsNPC = true
	sc.Add(npc)

	vars := fakeVars{"health": enemyDamage}
	ai := &EnemyAI{}
	if alive := ai.Update(sc, c, vars, nil); alive {
		t.Fatal("zero health should end the game")
	}
	if c.Enabled {
		t.Fatal("controls should be disabled on game over")
	}
}
