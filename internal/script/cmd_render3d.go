package script

import "strings"

func init() {
	register(announce("📐 Mesh loaded"), "mesh")
	register(announce("📦 Model loaded"), "model")
	register(announce("💡 Emissive material applied"), "emissive")
	register(announce("📦 Instancing enabled"), "instancing")
	register(announce("🌗 Hemisphere light added"), "hemisphere")
	register(announce("💡 Point light added"), "pointlight")
	register(announce("🔦 Spotlight added"), "spotlight")
	register(announce("☀️ Directional light added"), "directional")
	register(announce("🎞️ Post-processing enabled"), "postprocess")
	register(announce("🎬 Render pass added"), "renderpass")
	register(announce("🖼️ Framebuffer created"), "framebuffer")
	register(cmdMaterial, "material")
	register(materialProp("metallic", "✨"), "metallic")
	register(materialProp("roughness", "🪨"), "roughness")
	register(materialProp("transparency", "👻"), "transparent")
	register(cmdWireframe, "wireframe")
	register(cmdCulling, "culling")
	register(objectProp("billboard", "🏷️"), "billboard")
	register(cmdLOD, "lod")
	register(toggleFlag("raytracing_enabled", "✨ Ray tracing"), "raytrace")
	register(toggleFlag("caustics_enabled", "💎 Caustics"), "caustics")
	register(toggleFlag("volumetric_enabled", "🌫️ Volumetric lighting"), "volumetric")
	register(toggleFlag("ssao_enabled", "🌑 Ambient occlusion"), "ssao")
	register(toggleFlag("dof_enabled", "📷 Depth of field"), "dof")
	register(toggleFlag("chromatic_enabled", "🌈 Chromatic aberration"), "chromatic")
	register(objectProp("reflection", "🪞"), "reflect")
	register(objectProp("refraction", "💧"), "refract")
	register(numSetting("skylight_intensity", "☀️ Skylight intensity"), "skylight")
	register(numSetting("godray_intensity", "✨ God ray intensity"), "godrays")
	register(numSetting("motionblur_amount", "💨 Motion blur"), "motionblur")
	register(numSetting("vignette_amount", "⬛ Vignette"), "vignette")
	register(numSetting("grain_amount", "📺 Film grain"), "grain")
	register(nameSetting("tonemapping_type", "🎨 Tone mapping"), "tonemapping")
	register(nameSetting("colorgrading_type", "🎨 Color grading"), "colorgrading")
	register(nameSetting("antialiasing_type", "📐 Anti-aliasing"), "antialiasing")
}

// materialProp builds a handler for `<verb> name value` statements that set
// material_{name}_{prop}.
func materialProp(prop, emoji string) handler {
	return func(i *Interpreter, stmt string) {
		name, vs, ok := identifier(rest(stmt))
		if !ok {
			return
		}
		if n, nok := asNumber(i.Eval(dropWord(vs, "is"))); nok {
			i.Variables["material_"+strings.ToLower(name)+"_"+prop] = n
			i.logf("info", "%s %s of material '%s': %s", emoji, prop, name, Format(n))
		}
	}
}

// objectProp handles `<verb> obj [on|off|value]` toggles stored per object.
func objectProp(prop, emoji string) handler {
	return func(i *Interpreter, stmt string) {
		name, vs, ok := identifier(rest(stmt))
		if !ok {
			return
		}
		var v Value = true
		switch strings.ToLower(strings.TrimSpace(vs)) {
		case "", "on":
		case "off":
			v = false
		default:
			v = i.Eval(vs)
		}
		i.Variables[strings.ToLower(name)+"_"+prop] = v
		i.logf("info", "%s %s of '%s' set to %s", emoji, prop, name, Format(v))
	}
}

// toggleFlag handles global `<verb> on|off` render switches.
func toggleFlag(varName, label string) handler {
	return func(i *Interpreter, stmt string) {
		on := !strings.EqualFold(firstWord(rest(stmt)), "off")
		i.Variables[varName] = on
		i.logf("info", "%s %s", label, onOff(on))
	}
}

// numSetting handles `<verb> N` global numeric render settings.
func numSetting(varName, label string) handler {
	return func(i *Interpreter, stmt string) {
		if n, ok := asNumber(i.Eval(rest(stmt))); ok {
			i.Variables[varName] = n
			i.logf("info", "%s: %s", label, Format(n))
		}
	}
}

// nameSetting handles `<verb> name` global mode settings.
func nameSetting(varName, label string) handler {
	return func(i *Interpreter, stmt string) {
		if name, _, ok := identifier(rest(stmt)); ok {
			i.Variables[varName] = name
			i.logf("info", "%s: %s", label, name)
		}
	}
}

// cmdMaterial declares a material color: material name color "c".
func cmdMaterial(i *Interpreter, stmt string) {
	name, after, ok := identifier(rest(stmt))
	if !ok {
		return
	}
	_, color := colorArg(after, "#ffffff")
	i.Variables["material_"+strings.ToLower(name)+"_color"] = color
	i.logf("info", "🎨 Material '%s' color %s", name, color)
}

func cmdWireframe(i *Interpreter, stmt string) {
	on := !strings.EqualFold(firstWord(rest(stmt)), "off")
	i.Variables["render_wireframe"] = on
	i.sayf("🔲 Wireframe %s", onOff(on))
}

func cmdCulling(i *Interpreter, stmt string) {
	if mode, _, ok := identifier(rest(stmt)); ok {
		i.Variables["culling_mode"] = mode
		i.logf("info", "✂️ Culling mode: %s", mode)
	}
}

// cmdLOD records a level-of-detail distance: lod N distance D.
func cmdLOD(i *Interpreter, stmt string) {
	level, after, ok := identifier(rest(stmt))
	if !ok {
		return
	}
	if _, ds, dok := cutWord(" "+after, "distance"); dok {
		if n, nok := asNumber(i.Eval(ds)); nok {
			i.Variables["lod_"+level+"_distance"] = n
			i.logf("info", "📏 LOD %s distance: %s", level, Format(n))
		}
	}
}
