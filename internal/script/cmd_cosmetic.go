package script

import "strings"

func init() {
	register(cmdEmitter, "emitter")
	register(cmdAnimation, "animation")
	register(cmdFrame, "frame")
	register(cmdLayer, "layer")
	register(spriteProp("zindex", "📚"), "zindex")
	register(spriteProp("opacity", "👻"), "opacity")
	register(spriteProp("rotation", "🔄"), "rotate")
	register(spriteProp("scale", "📏"), "scale")
	register(spriteProp("flip", "🔃"), "flip")
	register(spriteProp("tint", "🎨"), "tint")
	register(spriteProp("shadow", "🌑"), "shadow")
	register(spriteProp("blur", "🌫️"), "blur")
	register(spriteProp("pixelate", "🟦"), "pixelate")
	register(spriteProp("mask", "🎭"), "mask")
	register(spriteProp("texture", "🖼️"), "texture")
	register(announce("🌅 Fade effect applied"), "fade")
	register(announce("✨ Glow effect applied"), "glow")
	register(announce("🖊️ Outline applied"), "outline")
	register(announce("🎬 Tween started"), "tween")
	register(announce("📳 Shake effect applied"), "shake")
	register(announce("🔷 Polygon drawn"), "polygon")
	register(announce("⬭ Ellipse drawn"), "ellipse")
	register(announce("◜ Arc drawn"), "arc")
	register(announce("〰️ Curve drawn"), "curve")
	register(announce("〰️ Bezier curve drawn"), "bezier")
	register(announce("🛤️ Path created"), "path")
	register(announce("🔀 Transform applied"), "transform")
	register(cmdGradient, "gradient")
	register(cmdPattern, "pattern")
	register(cmdClip, "clip")
	register(cmdAnchor, "anchor")
	register(cmdPivot, "pivot")
	register(cmdEase, "ease")
}

// spriteProp builds a handler for `<verb> sprite to value` style statements
// that record the value under {sprite}_{prop}.
func spriteProp(prop, emoji string) handler {
	return func(i *Interpreter, stmt string) {
		args := rest(stmt)
		name, vs, ok := cutWord(" "+args, "to")
		if !ok {
			// Also accept `<verb> sprite value`.
			if name, vs, ok = identifier(args); !ok {
				return
			}
		}
		v := i.Eval(vs)
		i.Variables[name+"_"+prop] = v
		i.logf("info", "%s %s of '%s' set to %s", emoji, prop, name, Format(v))
	}
}

// announce builds a handler for purely cosmetic effects that only report.
func announce(msg string) handler {
	return func(i *Interpreter, stmt string) {
		i.logf("info", "%s", msg)
	}
}

func cmdEmitter(i *Interpreter, stmt string) {
	if xy, ok := i.coords(dropWord(rest(stmt), "at"), 2); ok {
		i.Variables["emitter_x"] = xy[0]
		i.Variables["emitter_y"] = xy[1]
		i.logf("info", "💨 Particle emitter placed at (%s, %s)", Format(xy[0]), Format(xy[1]))
	}
}

// cmdAnimation declares an animation: animation "name" frames N fps F.
func cmdAnimation(i *Interpreter, stmt string) {
	name, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	frames := 1.0
	fps := 12.0
	if _, fs, fok := cutWord(" "+after, "frames"); fok {
		if n, nok := asNumber(i.Eval(firstWord(fs))); nok {
			frames = n
		}
	}
	if _, ps, pok := cutWord(" "+after, "fps"); pok {
		if n, nok := asNumber(i.Eval(firstWord(ps))); nok {
			fps = n
		}
	}
	key := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	i.Variables["anim_"+key+"_frames"] = frames
	i.Variables["anim_"+key+"_fps"] = fps
	i.logf("info", "🎞️ Animation '%s' defined (%s frames at %s fps)", name, Format(frames), Format(fps))
}

func cmdFrame(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["current_frame"] = n
	}
}

func cmdLayer(i *Interpreter, stmt string) {
	if n, ok := asNumber(i.Eval(rest(stmt))); ok {
		i.Variables["current_layer"] = n
		i.logf("info", "📚 Drawing layer set to %s", Format(n))
	}
}

func cmdGradient(i *Interpreter, stmt string) {
	start, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	end, _, ok := quoted(dropWord(after, "to"))
	if !ok {
		return
	}
	i.Variables["gradient_start"] = start
	i.Variables["gradient_end"] = end
	i.logf("info", "🌈 Gradient set from %s to %s", start, end)
}

func cmdPattern(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		i.Variables["fill_pattern"] = name
		i.logf("info", "🔲 Fill pattern set to %s", name)
	}
}

func cmdClip(i *Interpreter, stmt string) {
	on := !strings.EqualFold(firstWord(rest(stmt)), "off")
	i.Variables["clipping_enabled"] = on
	i.logf("info", "✂️ Clipping %s", onOff(on))
}

func cmdAnchor(i *Interpreter, stmt string) {
	name, pos, ok := cutWord(" "+rest(stmt), "at")
	if !ok {
		return
	}
	if xy, pok := i.coords(pos, 2); pok {
		i.Variables[name+"_anchor_x"] = xy[0]
		i.Variables[name+"_anchor_y"] = xy[1]
		i.logf("info", "⚓ Anchor of '%s' set", name)
	}
}

func cmdPivot(i *Interpreter, stmt string) {
	name, pos, ok := cutWord(" "+rest(stmt), "at")
	if !ok {
		return
	}
	if xy, pok := i.coords(pos, 2); pok {
		i.Variables[name+"_pivot_x"] = xy[0]
		i.Variables[name+"_pivot_y"] = xy[1]
		i.logf("info", "📌 Pivot of '%s' set", name)
	}
}

func cmdEase(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		i.Variables["ease_function"] = name
		i.logf("info", "📈 Easing function set to %s", name)
	}
}

func onOff(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
