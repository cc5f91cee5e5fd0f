package script

import (
	"atlas-engine/internal/render"
)

// Scene persistence and clipboard verbs.
func init() {
	register(cmdSave3D, "save3d")
	register(cmdLoad3D, "load3d")
	register(cmdSnap3D, "snap3d")
	register(cmdCopy3D, "copy3d")
	register(cmdPaste3D, "paste3d")
}

// save3d "scene.yaml"
func cmdSave3D(i *Interpreter, stmt string) {
	path, _, ok := quoted(stmt)
	if !ok {
		return
	}
	if err := i.Scene.Save(path); err != nil {
		i.logf("error", "%v", err)
		return
	}
	i.sayf("💾 Scene saved to %s", path)
}

// load3d "scene.yaml"
func cmdLoad3D(i *Interpreter, stmt string) {
	path, _, ok := quoted(stmt)
	if !ok {
		return
	}
	if err := i.Scene.Load(path); err != nil {
		i.logf("error", "%v", err)
		return
	}
	i.sayf("📂 Scene loaded: %d objects", i.Scene.Len())
}

const (
	snapWidth  = 800
	snapHeight = 600
)

// snap3d "shot.png" — renders the scene offscreen and writes a PNG.
func cmdSnap3D(i *Interpreter, stmt string) {
	path, _, ok := quoted(stmt)
	if !ok {
		return
	}
	soft, err := render.NewSoftCanvas(snapWidth, snapHeight)
	if err != nil {
		i.logf("error", "%v", err)
		return
	}
	render.New().Draw(soft, i.Scene)
	if err := soft.SavePNG(path); err != nil {
		i.logf("error", "%v", err)
		return
	}
	i.sayf("📸 Snapshot saved to %s", path)
}

// copy3d [object] — copies the named object, or the current selection.
func cmdCopy3D(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok && name != "" {
		if h, _, found := i.resolve3D(name); found {
			i.Scene.Selected = h
		}
	}
	if !i.Scene.Copy() {
		i.logf("warning", "Nothing selected to copy")
		return
	}
	i.say("📋 Object copied")
}

// paste3d — spawns the clipboard object; its handle lands in last3d.
func cmdPaste3D(i *Interpreter, stmt string) {
	h, ok := i.Scene.Paste()
	if !ok {
		i.logf("warning", "Clipboard is empty")
		return
	}
	i.Variables["last3d"] = h
	if s, found := i.Scene.Get(h); found {
		i.sayf("📌 Object pasted at %s, %s, %s",
			Format(s.Position.X), Format(s.Position.Y), Format(s.Position.Z))
	}
}
