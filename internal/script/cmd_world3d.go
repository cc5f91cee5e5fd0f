package script

import (
	"math"
	"strings"

	"atlas-engine/internal/scene"
	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

func init() {
	register(cmdCreate3D, "create3d")
	register(cmdMove3D, "move3d")
	register(cmdRotate3D, "rotate3d")
	register(cmdScale3D, "scale3d")
	register(cmdColor3D, "color3d")
	register(cmdDelete3D, "delete3d")
	register(cmdPhysics3D, "physics3d")
	register(cmdCollision3D, "collision3d")
	register(cmdVelocity3D, "velocity3d")
	register(cmdCamera, "camera")
	register(cmdLookAt, "lookat")
	register(cmdFirstPerson, "firstperson")
	register(cmdThirdPerson, "thirdperson")
	register(cmdFOV, "fov")
	register(cmdSkybox, "skybox")
	register(cmdGround, "ground")
	register(cmdPlatform, "platform")
	register(cmdPlayer, "player")
	register(cmdSpeed, "speed")
	register(cmdJump, "jump")
	register(cmdHealth, "health")
	register(cmdHUD, "hud")
	register(cmdCrosshair, "crosshair")
	register(cmdMessage, "message")
	register(cmdNPC, "npc")
	register(cmdDialogue, "dialogue")
	register(cmdTalk, "talk")
}

// resolve3D turns an object argument into a scene handle. The argument is a
// variable name holding a handle (create3d stores the newest one in last3d).
func (i *Interpreter) resolve3D(name string) (scene.Handle, *shape.Shape, bool) {
	if i.Scene == nil {
		return scene.None, nil, false
	}
	v, ok := i.Variables[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return scene.None, nil, false
	}
	var h scene.Handle
	switch hv := v.(type) {
	case scene.Handle:
		h = hv
	case float64:
		h = scene.Handle(hv)
	default:
		return scene.None, nil, false
	}
	s, ok := i.Scene.Get(h)
	return h, s, ok
}

// vec3Arg evaluates a comma-separated x, y, z triple.
func (i *Interpreter) vec3Arg(s string) (vec.Vector3, bool) {
	c, ok := i.coords(s, 3)
	if !ok {
		return vec.Vector3{}, false
	}
	return vec.New(c[0], c[1], c[2]), true
}

// cmdCreate3D spawns a primitive: create3d cube at x, y, z size s.
// The new handle lands in the last3d variable.
func cmdCreate3D(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	kindName, after, ok := identifier(rest(stmt))
	if !ok {
		return
	}
	kind := shape.Kind(strings.ToLower(kindName))
	switch kind {
	case shape.KindCube, shape.KindSphere, shape.KindCone, shape.KindWedge, shape.KindPlane:
	default:
		i.logf("error", "❌ Unknown 3D shape: %s", kindName)
		return
	}
	spec := dropWord(after, "at")
	size := 1.0
	if before, ss, sok := cutWord(" "+spec, "size"); sok {
		spec = before
		if n, nok := asNumber(i.Eval(ss)); nok {
			size = n
		}
	}
	pos, pok := i.vec3Arg(spec)
	if !pok {
		return
	}
	h := i.Scene.Add(shape.New(kind, pos, size))
	i.Variables["last3d"] = h
	i.sayf("🎮 Created %s at (%s, %s, %s)", kind, Format(pos.X), Format(pos.Y), Format(pos.Z))
}

func cmdMove3D(i *Interpreter, stmt string) {
	name, ps, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	_, s, found := i.resolve3D(name)
	if !found {
		i.logf("error", "❌ No 3D object: %s", name)
		return
	}
	if pos, pok := i.vec3Arg(ps); pok {
		s.Position = pos
	}
}

func cmdRotate3D(i *Interpreter, stmt string) {
	name, rs, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if _, s, found := i.resolve3D(name); found {
		if rot, rok := i.vec3Arg(rs); rok {
			s.Rotation = rot
		}
	}
}

func cmdScale3D(i *Interpreter, stmt string) {
	name, ss, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if _, s, found := i.resolve3D(name); found {
		if sc, sok := i.vec3Arg(ss); sok {
			s.Scale = sc
		}
	}
}

func cmdColor3D(i *Interpreter, stmt string) {
	name, cs, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	_, s, found := i.resolve3D(name)
	if !found {
		return
	}
	colorName, _, qok := quoted(cs)
	if !qok {
		colorName = strings.TrimSpace(cs)
	}
	if c, err := shape.ParseColor(colorName); err == nil {
		s.Color = c
	} else {
		i.logf("error", "❌ Unknown color: %s", colorName)
	}
}

func cmdDelete3D(i *Interpreter, stmt string) {
	name := rest(stmt)
	if h, _, found := i.resolve3D(name); found {
		i.Scene.Remove(h)
		delete(i.Variables, strings.ToLower(strings.TrimSpace(name)))
		i.sayf("🗑️ Deleted %s", strings.TrimSpace(name))
	}
}

func cmdPhysics3D(i *Interpreter, stmt string) {
	args := rest(stmt)
	on := !strings.EqualFold(firstWord(args), "off")
	if _, s, found := i.resolve3D(rest(args)); found {
		s.HasPhysics = on
		if on {
			i.Scene.PhysicsEnabled = true
		}
		i.logf("info", "⚙️ Physics %s for %s", onOff(on), strings.TrimSpace(rest(args)))
	}
}

func cmdCollision3D(i *Interpreter, stmt string) {
	args := rest(stmt)
	on := !strings.EqualFold(firstWord(args), "off")
	if _, s, found := i.resolve3D(rest(args)); found {
		s.HasCollision = on
		i.logf("info", "🛡️ Collision %s for %s", onOff(on), strings.TrimSpace(rest(args)))
	}
}

func cmdVelocity3D(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if _, s, found := i.resolve3D(name); found {
		if v, vok := i.vec3Arg(vs); vok {
			s.Velocity = v
			s.HasPhysics = true
		}
	}
}

func cmdCamera(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	if pos, ok := i.vec3Arg(dropWord(rest(stmt), "at")); ok {
		i.Scene.Camera.Position = pos
		i.sayf("📷 Camera at (%s, %s, %s)", Format(pos.X), Format(pos.Y), Format(pos.Z))
	}
}

func cmdLookAt(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	target, ok := i.vec3Arg(dropWord(rest(stmt), "at"))
	if !ok {
		return
	}
	cam := &i.Scene.Camera
	d := target.Sub(cam.Position)
	cam.Yaw = math.Atan2(d.X, d.Z) * 180 / math.Pi
	cam.Pitch = -math.Atan2(d.Y, math.Hypot(d.X, d.Z)) * 180 / math.Pi
	cam.Rotation = vec.New(cam.Pitch, cam.Yaw, 0)
}

func cmdFirstPerson(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	i.Scene.Camera.FirstPerson = true
	i.Scene.Mode = scene.ModeGame
	i.say("🎮 First-person mode")
}

func cmdThirdPerson(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	i.Scene.Camera.FirstPerson = false
	i.Scene.Mode = scene.ModeGame
	i.say("🎮 Third-person mode")
}

func cmdFOV(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok && i.Scene != nil {
		i.Scene.Camera.FOV = n
		i.sayf("🎥 FOV: %s", Format(n))
	}
}

func cmdSkybox(i *Interpreter, stmt string) {
	colorName, _, ok := quoted(rest(stmt))
	if !ok {
		colorName = rest(stmt)
	}
	if i.View != nil {
		i.View.SetSkyColor(colorName)
	}
	i.sayf("🌅 Sky: %s", colorName)
}

// cmdGround lays a static floor: ground at y color "c" size s.
func cmdGround(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	spec := dropWord(rest(stmt), "at")
	size := 20.0
	if before, ss, ok := cutWord(" "+spec, "size"); ok {
		spec = before
		if n, nok := asNumber(i.Eval(ss)); nok {
			size = n
		}
	}
	spec, colorName := colorArg(spec, "")
	y, ok := asNumber(i.Eval(spec))
	if !ok {
		y = 0
	}
	s := shape.New(shape.KindPlane, vec.New(0, y, 0), size)
	s.HasCollision = true
	if colorName != "" {
		if c, err := shape.ParseColor(colorName); err == nil {
			s.Color = c
		}
	}
	i.Variables["ground"] = i.Scene.Add(s)
	i.sayf("🟩 Ground at y=%s", Format(y))
}

// cmdPlatform places a collidable block: platform at x, y, z size w, h, d.
func cmdPlatform(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	pos3, sizeSpec, ok := cutWord(" "+dropWord(rest(stmt), "at"), "size")
	if !ok {
		return
	}
	pos, pok := i.vec3Arg(pos3)
	if !pok {
		return
	}
	s := shape.New(shape.KindCube, pos, 1)
	s.IsStatic = true
	s.HasCollision = true
	if dims, dok := i.vec3Arg(sizeSpec); dok {
		s.Scale = dims
	}
	i.Variables["last3d"] = i.Scene.Add(s)
	i.sayf("🟦 Platform at (%s, %s, %s)", Format(pos.X), Format(pos.Y), Format(pos.Z))
}

// cmdPlayer spawns the player body and switches to game mode.
func cmdPlayer(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	pos, ok := i.vec3Arg(dropWord(rest(stmt), "at"))
	if !ok {
		return
	}
	s := shape.New(shape.KindCube, pos, 1)
	s.HasCollision = true
	h := i.Scene.Add(s)
	i.Scene.Player = h
	i.Scene.Mode = scene.ModeGame
	i.Variables["player3d"] = h
	i.sayf("👤 Player spawned at (%s, %s, %s)", Format(pos.X), Format(pos.Y), Format(pos.Z))
}

func cmdSpeed(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(dropWord(rest(stmt), "is"))); ok {
		i.Variables["player_speed"] = n
		if i.Player != nil {
			i.Player.SetSpeed(n)
		}
		i.sayf("⚡ Speed: %s", Format(n))
	}
}

func cmdJump(i *Interpreter, stmt string) {
	force := 10.0
	if _, fs, ok := cutWord(" "+rest(stmt), "force"); ok {
		if n, nok := asNumber(i.Eval(fs)); nok {
			force = n
		}
	}
	i.Variables["jump_force"] = force
	if i.Player != nil {
		i.Player.SetJumpForce(force)
	}
	i.sayf("🦘 Jump force: %s", Format(force))
}

func cmdHealth(i *Interpreter, stmt string) {
	args := rest(stmt)
	op := strings.ToLower(firstWord(args))
	src := rest(args)
	if op != "add" && op != "subtract" {
		op, src = "set", dropWord(args, "is")
	}
	n, ok := asNumber(i.Eval(src))
	if !ok {
		return
	}
	switch op {
	case "add":
		i.addNum("player_health", n, 100)
	case "subtract":
		i.addNum("player_health", -n, 100)
	default:
		i.Variables["player_health"] = n
	}
	i.sayf("❤️ Health: %s", Format(i.Variables["player_health"]))
}

func cmdHUD(i *Interpreter, stmt string) {
	on := !strings.EqualFold(firstWord(rest(stmt)), "hide")
	if i.View != nil {
		i.View.SetHUDVisible(on)
	}
	i.sayf("📊 HUD %s", onOff(on))
}

func cmdCrosshair(i *Interpreter, stmt string) {
	on := !strings.EqualFold(firstWord(rest(stmt)), "hide")
	if i.View != nil {
		i.View.SetCrosshairVisible(on)
	}
	i.sayf("🎯 Crosshair %s", onOff(on))
}

// cmdMessage shows on-screen text: message "text" duration n.
func cmdMessage(i *Interpreter, stmt string) {
	text, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	seconds := 3.0
	if _, ds, dok := cutWord(" "+after, "duration"); dok {
		if n, nok := asNumber(i.Eval(ds)); nok {
			seconds = n
		}
	}
	if i.View != nil {
		i.View.ShowMessage(text, seconds)
	}
	i.sayf("📢 %s", text)
}

// cmdNPC places a named character: npc "name" at x, y, z color "c".
func cmdNPC(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	name, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	spec, colorName := colorArg(dropWord(after, "at"), "#9900ff")
	pos, pok := i.vec3Arg(spec)
	if !pok {
		return
	}
	s := shape.New(shape.KindCube, pos, 1)
	s.IsNPC = true
	s.Name = name
	s.Health = 3
	if c, err := shape.ParseColor(colorName); err == nil {
		s.Color = c
	}
	h := i.Scene.Add(s)
	i.Variables[strings.ToLower(name)] = h
	i.sayf("👤 NPC '%s' at (%s, %s, %s)", name, Format(pos.X), Format(pos.Y), Format(pos.Z))
}

// cmdDialogue queues a line: dialogue "name" says "text".
func cmdDialogue(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	name, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	line, _, lok := quoted(dropWord(after, "says"))
	if !lok {
		return
	}
	i.Scene.Dialogues[name] = append(i.Scene.Dialogues[name], line)
	i.logf("info", "💬 Dialogue added for %s", name)
}

// cmdTalk speaks the NPC's next line: talk to "name".
func cmdTalk(i *Interpreter, stmt string) {
	if i.Scene == nil {
		return
	}
	name, _, ok := quoted(dropWord(rest(stmt), "to"))
	if !ok {
		name = dropWord(rest(stmt), "to")
	}
	h, found := i.Scene.NPCByName(name)
	if !found {
		i.logf("error", "❌ No NPC named %s", name)
		return
	}
	if line, lok := i.Scene.Interact(h); lok {
		i.sayf("💬 %s: %s", name, line)
	}
}
