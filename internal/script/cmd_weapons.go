package script

import "strings"

func init() {
	register(cmdGun, "gun")
	register(cmdShoot, "shoot", "fire")
	register(cmdRaycast, "raycast")
	register(cmdLaser, "laser")
	register(cmdBullet, "bullet")
	register(cmdProjectile, "projectile")
	register(cmdReload, "reload")
	register(cmdAmmo, "ammo")
	register(cmdWeapon, "weapon")
	register(cmdMelee, "melee", "punch")
	register(weaponPick("sword", "⚔️ Sword equipped!"), "sword")
	register(weaponPick("bow", "🏹 Bow equipped!"), "bow")
	register(cmdArrow, "arrow")
	register(cmdGrenade, "grenade", "bomb")
	register(cmdExplode, "explode")
	register(cmdAim, "aim")
	register(cmdRecoil, "recoil")
	register(cmdSpread, "spread")
	register(cmdShotgun, "shotgun")
	register(weaponPick("sniper", "🔭 Sniper rifle equipped!"), "sniper")
	register(weaponPick("rifle", "🔫 Rifle equipped!"), "rifle")
	register(weaponPick("pistol", "🔫 Pistol equipped!"), "pistol")
	register(cmdRocket, "rocket")
	register(cmdHoming, "homing")
	register(cmdScope, "scope")
	register(cmdZoom, "zoom")
	register(cmdAccuracy, "accuracy")
	register(cmdFireRate, "firerate")
	register(cmdMagazine, "magazine")
}

func weaponPick(name, msg string) handler {
	return func(i *Interpreter, stmt string) {
		i.Variables["equipped_weapon"] = name
		i.say(msg)
	}
}

func cmdGun(i *Interpreter, stmt string) {
	name := rest(stmt)
	if q, _, ok := quoted(name); ok {
		name = q
	}
	if name == "" {
		name = "gun"
	}
	i.Variables["equipped_weapon"] = name
	i.Variables["ammo"] = 30.0
	i.Variables["magazine"] = 30.0
	i.sayf("🔫 %s equipped (30/30)", name)
}

func cmdShoot(i *Interpreter, stmt string) {
	ammo := i.Number("ammo", 30)
	if ammo <= 0 {
		i.say("🔫 Click! Out of ammo!")
		return
	}
	i.Variables["ammo"] = ammo - 1
	i.Variables["_shot_fired"] = true
	i.sayf("💥 BANG! (%s rounds left)", Format(ammo-1))
}

func cmdRaycast(i *Interpreter, stmt string) {
	i.castLine(stmt, "#ffffff", 3, "📡 Raycast fired")
}

func cmdLaser(i *Interpreter, stmt string) {
	i.castLine(stmt, "#ff0000", 5, "🔴 Laser fired")
}

// castLine draws a beam: <verb> from x1, y1 to x2, y2 [color "c"].
func (i *Interpreter) castLine(stmt, defColor string, width float64, msg string) {
	from, to, ok := cutWord(" "+dropWord(rest(stmt), "from"), "to")
	if !ok {
		i.say(msg)
		return
	}
	to, color := colorArg(to, defColor)
	p1, aok := i.coords(from, 2)
	p2, bok := i.coords(to, 2)
	if aok && bok && i.Surface != nil {
		i.Surface.Line(p1[0], p1[1], p2[0], p2[1], color, width)
	}
	i.say(msg)
}

func cmdBullet(i *Interpreter, stmt string) {
	xy, ok := i.coords(dropWord(rest(stmt), "at"), 2)
	if !ok {
		return
	}
	if i.Surface != nil {
		name := i.sprite2DName("bullet", xy[0], xy[1])
		i.Surface.CreateSprite(name, xy[0], xy[1], 5, 5, "#ffff00")
	}
	i.logf("info", "• Bullet at (%s, %s)", Format(xy[0]), Format(xy[1]))
}

func (i *Interpreter) sprite2DName(kind string, x, y float64) string {
	return kind + "_" + Format(x) + "_" + Format(y)
}

func cmdProjectile(i *Interpreter, stmt string) {
	i.say("🎯 Projectile launched!")
}

func cmdReload(i *Interpreter, stmt string) {
	mag := i.Number("magazine", 30)
	i.Variables["ammo"] = mag
	i.sayf("🔄 Reloaded! (%s/%s)", Format(mag), Format(mag))
}

func cmdAmmo(i *Interpreter, stmt string) {
	args := rest(stmt)
	op := strings.ToLower(firstWord(args))
	src := rest(args)
	if op != "add" && op != "set" {
		op, src = "set", args
	}
	n, ok := asNumber(i.Eval(src))
	if !ok {
		return
	}
	if op == "add" {
		i.addNum("ammo", n, 30)
	} else {
		i.Variables["ammo"] = n
	}
	i.sayf("📦 Ammo: %s", Format(i.Variables["ammo"]))
}

func cmdWeapon(i *Interpreter, stmt string) {
	name, _, ok := quoted(rest(stmt))
	if !ok {
		name = rest(stmt)
	}
	i.Variables["equipped_weapon"] = name
	i.sayf("⚔️ Weapon: %s", name)
}

func cmdMelee(i *Interpreter, stmt string) {
	i.say("👊 Melee attack!")
}

func cmdArrow(i *Interpreter, stmt string) {
	i.say("🏹 Arrow loosed!")
}

func cmdGrenade(i *Interpreter, stmt string) {
	i.say("💣 Grenade thrown!")
}

func cmdExplode(i *Interpreter, stmt string) {
	spec := dropWord(rest(stmt), "at")
	radius := 50.0
	if before, rs, ok := cutWord(" "+spec, "radius"); ok {
		spec = before
		if n, nok := asNumber(i.Eval(rs)); nok {
			radius = n
		}
	}
	if xy, ok := i.coords(spec, 2); ok && i.Surface != nil {
		i.Surface.Circle(xy[0], xy[1], radius, "#ff8800", true)
	}
	i.say("💥 BOOM!")
}

func cmdAim(i *Interpreter, stmt string) {
	if xy, ok := i.coords(dropWord(rest(stmt), "at"), 2); ok {
		i.Variables["aim_x"] = xy[0]
		i.Variables["aim_y"] = xy[1]
		i.logf("info", "🎯 Aiming at (%s, %s)", Format(xy[0]), Format(xy[1]))
	}
}

func cmdRecoil(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["weapon_recoil"] = n
		i.logf("info", "📐 Recoil set to %s", Format(n))
	}
}

func cmdSpread(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["weapon_spread"] = n
		i.logf("info", "📐 Spread set to %s", Format(n))
	}
}

func cmdShotgun(i *Interpreter, stmt string) {
	i.Variables["equipped_weapon"] = "shotgun"
	i.say("💥 SHOTGUN BLAST!")
	for n := 1; n <= 8; n++ {
		i.logf("info", "  pellet %d fired", n)
	}
}

func cmdRocket(i *Interpreter, stmt string) {
	i.say("🚀 Rocket launched!")
}

func cmdHoming(i *Interpreter, stmt string) {
	i.say("🎯 Homing missile locked on!")
}

func cmdScope(i *Interpreter, stmt string) {
	n, ok := asNumber(i.Eval(rest(stmt)))
	if !ok {
		n = 2
	}
	i.Variables["scope_zoom"] = n
	i.sayf("🔭 Scoped in (%sx)", Format(n))
}

func cmdZoom(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["zoom_level"] = n
		i.logf("info", "🔍 Zoom level: %s", Format(n))
	}
}

func cmdAccuracy(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["weapon_accuracy"] = n
		i.logf("info", "🎯 Accuracy: %s", Format(n))
	}
}

func cmdFireRate(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["weapon_firerate"] = n
		i.logf("info", "🔥 Fire rate: %s", Format(n))
	}
}

func cmdMagazine(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["magazine"] = n
		i.logf("info", "📦 Magazine size: %s", Format(n))
	}
}
