package script

import (
	"strings"
	"testing"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
)

type fakeView struct {
	hud       bool
	crosshair bool
	sky       string
	message   string
	duration  float64
}

func (v *fakeView) SetHUDVisible(on bool)       { v.hud = on }
func (v *fakeView) SetCrosshairVisible(on bool) { v.crosshair = on }
func (v *fakeView) SetSkyColor(color string)    { v.sky = color }
func (v *fakeView) ShowMessage(text string, seconds float64) {
	v.message = text
	v.duration = seconds
}

type fakePlayerControl struct {
	speed float64
	jump  float64
}

func (p *fakePlayerControl) SetSpeed(s float64)     { p.speed = s }
func (p *fakePlayerControl) SetJumpForce(f float64) { p.jump = f }

func (env *scriptEnv) lastShape(t *testing.T) *shape.Shape {
	t.Helper()
	h, ok := env.interp.Variables["last3d"].(scene.Handle)
	if !ok {
		t.Fatalf("last3d is not a handle: %v", env.interp.Variables["last3d"])
	}
	s, found := env.interp.Scene.Get(h)
	if !found {
		t.Fatalf("last3d handle %d not in scene", h)
	}
	return s
}

func TestCreate3D(t *testing.T) {
	env := newEnv()
	env.run("create3d cube at 0, 1, 0 size 2")
	if env.interp.Scene.Len() != 1 {
		t.Fatalf("scene has %d shapes, want 1", env.interp.Scene.Len())
	}
	s := env.lastShape(t)
	if s.Kind != shape.KindCube || s.Size != 2 || s.Position.Y != 1 {
		t.Fatalf("wrong shape: kind=%s size=%v pos=%v", s.Kind, s.Size, s.Position)
	}
}

func TestCreate3DUnknownKind(t *testing.T) {
	env := newEnv()
	env.run("create3d dodecahedron at 0, 0, 0")
	if env.interp.Scene.Len() != 0 {
		t.Fatal("unknown kind still added a shape")
	}
	if len(env.logs) == 0 || !strings.Contains(env.logs[0], "Unknown 3D shape") {
		t.Fatalf("no error logged: %v", env.logs)
	}
}

func TestMove3DAndRotate3D(t *testing.T) {
	env := newEnv()
	env.run("create3d sphere at 0, 0, 0\nmove3d last3d to 3, 4, 5\nrotate3d last3d to 0, 90, 0")
	s := env.lastShape(t)
	if s.Position.X != 3 || s.Position.Y != 4 || s.Position.Z != 5 {
		t.Fatalf("position = %v", s.Position)
	}
	if s.Rotation.Y != 90 {
		t.Fatalf("rotation = %v", s.Rotation)
	}
}

func TestColor3D(t *testing.T) {
	env := newEnv()
	env.run("create3d cube at 0, 0, 0\ncolor3d last3d to \"red\"")
	want, err := shape.ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}
	if s := env.lastShape(t); s.Color != want {
		t.Fatalf("color = %v, want %v", s.Color, want)
	}
}

func TestDelete3D(t *testing.T) {
	env := newEnv()
	env.run("create3d cube at 0, 0, 0\ndelete3d last3d")
	if env.interp.Scene.Len() != 0 {
		t.Fatal("shape survived delete3d")
	}
	if _, exists := env.interp.Variables["last3d"]; exists {
		t.Fatal("handle variable survived delete3d")
	}
}

func TestVelocity3DEnablesPhysics(t *testing.T) {
	env := newEnv()
	env.run("create3d sphere at 0, 5, 0\nvelocity3d last3d to 1, 0, 0")
	s := env.lastShape(t)
	if !s.HasPhysics || s.Velocity.X != 1 {
		t.Fatalf("physics=%v velocity=%v", s.HasPhysics, s.Velocity)
	}
}

func TestPlayerSpawn(t *testing.T) {
	env := newEnv()
	env.run("player at 0, 2, 0")
	sc := env.interp.Scene
	if sc.Player == scene.None {
		t.Fatal("no player handle set")
	}
	if sc.Mode != scene.ModeGame {
		t.Fatalf("mode = %s, want game", sc.Mode)
	}
	s, _ := sc.PlayerShape()
	if s.Position.Y != 2 {
		t.Fatalf("player position = %v", s.Position)
	}
}

func TestPlatformAndGround(t *testing.T) {
	env := newEnv()
	env.run("platform at 0, 0, 5 size 4, 1, 4\nground at 0 color \"green\" size 30")
	s := env.lastShape(t)
	if !s.IsStatic || !s.HasCollision || s.Scale.X != 4 {
		t.Fatalf("platform wrong: static=%v collision=%v scale=%v", s.IsStatic, s.HasCollision, s.Scale)
	}
	gh, ok := env.interp.Variables["ground"].(scene.Handle)
	if !ok {
		t.Fatal("ground handle not stored")
	}
	g, _ := env.interp.Scene.Get(gh)
	if g.Kind != shape.KindPlane || !g.HasCollision || g.Size != 30 {
		t.Fatalf("ground wrong: %+v", g)
	}
}

func TestCameraVerbs(t *testing.T) {
	env := newEnv()
	env.run("camera at 0, 10, -20\nfov 90\nfirstperson")
	cam := env.interp.Scene.Camera
	if cam.Position.Y != 10 || cam.Position.Z != -20 {
		t.Fatalf("camera position = %v", cam.Position)
	}
	if cam.FOV != 90 {
		t.Fatalf("fov = %v", cam.FOV)
	}
	if !cam.FirstPerson || env.interp.Scene.Mode != scene.ModeGame {
		t.Fatal("firstperson did not switch modes")
	}
}

func TestViewVerbs(t *testing.T) {
	env := newEnv()
	view := &fakeView{hud: true, crosshair: true}
	env.interp.View = view
	env.run("hud hide\ncrosshair hide\nskybox \"#87ceeb\"\nmessage \"Welcome\" duration 2")
	if view.hud || view.crosshair {
		t.Fatal("hide verbs ignored")
	}
	if view.sky != "#87ceeb" {
		t.Fatalf("sky = %q", view.sky)
	}
	if view.message != "Welcome" || view.duration != 2 {
		t.Fatalf("message = %q for %v", view.message, view.duration)
	}
}

func TestSpeedAndJump(t *testing.T) {
	env := newEnv()
	ctl := &fakePlayerControl{}
	env.interp.Player = ctl
	env.run("speed is 8\njump force 12")
	if ctl.speed != 8 {
		t.Fatalf("speed = %v", ctl.speed)
	}
	if ctl.jump != 12 {
		t.Fatalf("jump = %v", ctl.jump)
	}
	if env.number(t, "player_speed") != 8 || env.number(t, "jump_force") != 12 {
		t.Fatal("tunables not mirrored into variables")
	}
}

func TestNPCDialogue(t *testing.T) {
	env := newEnv()
	env.run("npc \"Bob\" at 1, 0, 2\ndialogue \"Bob\" says \"Hello there\"\ndialogue \"Bob\" says \"Nice day\"\ntalk to \"Bob\"\ntalk to \"Bob\"\ntalk to \"Bob\"")
	h, ok := env.interp.Scene.NPCByName("Bob")
	if !ok {
		t.Fatal("NPC not registered")
	}
	s, _ := env.interp.Scene.Get(h)
	if !s.IsNPC || s.Position.Z != 2 {
		t.Fatalf("npc shape wrong: %+v", s)
	}

	var lines []string
	for _, say := range env.says {
		if strings.HasPrefix(say, "💬 Bob:") {
			lines = append(lines, say)
		}
	}
	want := []string{"💬 Bob: Hello there", "💬 Bob: Nice day", "💬 Bob: Hello there"}
	if len(lines) != len(want) {
		t.Fatalf("dialogue lines = %v", lines)
	}
	for idx := range want {
		if lines[idx] != want[idx] {
			t.Fatalf("line %d = %q, want %q", idx, lines[idx], want[idx])
		}
	}
}

func TestTalkToMissingNPC(t *testing.T) {
	env := newEnv()
	env.run("talk to \"Ghost\"")
	if len(env.logs) == 0 || !strings.Contains(env.logs[0], "No NPC named Ghost") {
		t.Fatalf("missing NPC not reported: %v", env.logs)
	}
}

func TestHealthVerb(t *testing.T) {
	env := newEnv()
	env.run("health is 50\nhealth add 20\nhealth subtract 10")
	if env.number(t, "player_health") != 60 {
		t.Fatalf("player_health = %v", env.interp.Variables["player_health"])
	}
}
