package player

import "atlas-engine/internal/scene"

// Free-camera tunables for trajectory (edit) mode.
const (
	// CameraSpeed is edit-camera movement in units per frame.
	CameraSpeed = 0.5
	// cameraTurnSpeed is edit-camera rotation in degrees per frame.
	cameraTurnSpeed = 2.0
)

// CameraInput is one frame of held keys for the trajectory free camera.
// Reset is consumed on use.
type CameraInput struct {
	Forward, Back, Left, Right bool
	Down, Up                   bool
	TurnLeft, TurnRight        bool
	TurnUp, TurnDown           bool
	Reset                      bool
}

// UpdateFreeCamera moves the edit camera from held keys. Inactive while the
// camera is in first-person mode. Returns true when the camera changed.
func UpdateFreeCamera(sc *scene.Scene, in *CameraInput) bool {
	if sc.Camera.FirstPerson {
		return false
	}
	cam := &sc.Camera
	moved := false

	if in.Forward {
		cam.Position.Z += CameraSpeed
		moved = true
	}
	if in.Back {
		cam.Position.Z -= CameraSpeed
		moved = true
	}
	if in.Left {
		cam.Position.X -= CameraSpeed
		moved = true
	}
	if in.Right {
		cam.Position.X += CameraSpeed
		moved = true
	}
	if in.Down {
		cam.Position.Y -= CameraSpeed
		moved = true
	}
	if in.Up {
		cam.Position.Y += CameraSpeed
		moved = true
	}
	if in.TurnLeft {
		cam.Rotation.Y -= cameraTurnSpeed
		moved = true
	}
	if in.TurnRight {
		cam.Rotation.Y += cameraTurnSpeed
		moved = true
	}
	if in.TurnUp {
		cam.Rotation.X -= cameraTurnSpeed
		moved = true
	}
	if in.TurnDown {
		cam.Rotation.X += cameraTurnSpeed
		moved = true
	}
	if in.Reset {
		reset := scene.DefaultCamera()
		cam.Position = reset.Position
		cam.Rotation = reset.Rotation
		in.Reset = false
		moved = true
	}
	return moved
}
