package script

import "strings"

func init() {
	register(announce("🏹 Trajectory computed"), "trajectory")
	register(announce("📈 Parabolic path set"), "parabola")
	register(announce("🎯 Ballistic arc computed"), "ballistic")
	register(announce("🪐 Orbit established"), "orbit")
	register(announce("⭕ Circular motion set"), "circular")
	register(announce("🌀 Spiral motion set"), "spiral")
	register(announce("〰️ Sine motion set"), "sine")
	register(announce("🕰️ Pendulum motion set"), "pendulum")
	register(announce("🪀 Spring attached"), "spring")
	register(announce("🎗️ Elastic constraint added"), "elastic")
	register(announce("🎱 Momentum transferred"), "momentum")
	register(announce("🛟 Buoyancy applied"), "buoyancy")
	register(announce("🧲 Attraction force applied"), "attract")
	register(announce("🔴 Repulsion force applied"), "repel")
	register(announce("⚡ Force applied"), "force")
	register(announce("💥 Impulse applied"), "impulse")
	register(announce("🔄 Torque applied"), "torque")
	register(cmdBounce, "bounce")
	register(cmdGravity, "gravity")
	register(cmdAngular, "angular")
	register(bodyProp("inertia", "⚖️"), "inertia")
	register(bodyProp("drag", "💨"), "drag")
	register(bodyProp("lift", "🪁"), "lift")
	register(bodyProp("magnetism", "🧲"), "magnetism")
}

// bodyProp handles `<verb> obj is N` per-object physics tunables.
func bodyProp(prop, emoji string) handler {
	return func(i *Interpreter, stmt string) {
		name, vs, ok := cutWord(" "+rest(stmt), "is")
		if !ok {
			name, vs, ok = identifier(rest(stmt))
			if !ok {
				return
			}
		}
		if n, nok := asNumber(i.Eval(vs)); nok {
			i.Variables[strings.ToLower(name)+"_"+prop] = n
			i.logf("info", "%s %s of '%s': %s", emoji, prop, name, Format(n))
		}
	}
}

func cmdBounce(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "is")
	if !ok {
		name, vs, ok = identifier(rest(stmt))
		if !ok {
			return
		}
	}
	if n, nok := asNumber(i.Eval(vs)); nok {
		i.Variables[strings.ToLower(name)+"_bounce"] = n
		i.logf("info", "🏀 Bounciness of '%s': %s", name, Format(n))
	}
}

func cmdGravity(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(dropWord(rest(stmt), "is"))); ok {
		i.Variables["gravity"] = n
		i.sayf("🌍 Gravity: %s", Format(n))
	}
}

func cmdAngular(i *Interpreter, stmt string) {
	name, vs, ok := cutWord(" "+rest(stmt), "is")
	if !ok {
		return
	}
	if n, nok := asNumber(i.Eval(vs)); nok {
		i.Variables[strings.ToLower(name)+"_angular_velocity"] = n
		i.logf("info", "🔄 Angular velocity of '%s': %s", name, Format(n))
	}
}
