package scene

import (
	"github.com/jinzhu/copier"

	"atlas-engine/internal/shape"
	"atlas-engine/internal/vec"
)

// Copy snapshots the selected shape's transform and material fields into the
// clipboard. Returns false when nothing is selected.
func (sc *Scene) Copy() bool {
	src, ok := sc.SelectedShape()
	if !ok {
		return false
	}
	snap := &shape.Shape{}
	if err := copier.Copy(snap, src); err != nil {
		return false
	}
	// The snapshot is a template, not a live object.
	snap.Velocity = vec.Vector3{}
	snap.AngularVelocity = vec.Vector3{}
	snap.OnGround = false
	sc.clipboard = snap
	return true
}

// Paste spawns a new shape from the clipboard, offset by one unit on X and Z
// so it does not overlap the original. Returns the new handle, or false when
// the clipboard is empty.
func (sc *Scene) Paste() (Handle, bool) {
	if sc.clipboard == nil {
		return None, false
	}
	dup := &shape.Shape{}
	if err := copier.Copy(dup, sc.clipboard); err != nil {
		return None, false
	}
	dup.Position.X += 1.0
	dup.Position.Z += 1.0
	return sc.Add(dup), true
}

// HasClipboard reports whether a shape snapshot is available to paste.
func (sc *Scene) HasClipboard() bool {
	return sc.clipboard != nil
}
