package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"atlas-engine/internal/player"
)

// readPlayerInput fills the first-person input from held keys. Jump is set on
// key press only; the controller consumes it.
func readPlayerInput(in *player.Input) {
	in.Forward = rl.IsKeyDown(rl.KeyW)
	in.Back = rl.IsKeyDown(rl.KeyS)
	in.StrafeLeft = rl.IsKeyDown(rl.KeyA)
	in.StrafeRight = rl.IsKeyDown(rl.KeyD)
	in.LookLeft = rl.IsKeyDown(rl.KeyLeft)
	in.LookRight = rl.IsKeyDown(rl.KeyRight)
	in.LookUp = rl.IsKeyDown(rl.KeyUp)
	in.LookDown = rl.IsKeyDown(rl.KeyDown)
	in.FlyUp = rl.IsKeyDown(rl.KeySpace)
	in.FlyDown = rl.IsKeyDown(rl.KeyLeftShift)
	if rl.IsKeyPressed(rl.KeySpace) {
		in.Jump = true
	}
}

// moving reports whether any movement key is held, for the weapon bob.
func moving(in *player.Input) bool {
	return in.Forward || in.Back || in.StrafeLeft || in.StrafeRight
}

// readCameraInput fills the free-camera input for trajectory mode. R resets
// the camera; the free camera consumes the reset flag.
func readCameraInput(in *player.CameraInput) {
	in.Forward = rl.IsKeyDown(rl.KeyW)
	in.Back = rl.IsKeyDown(rl.KeyS)
	in.Left = rl.IsKeyDown(rl.KeyA)
	in.Right = rl.IsKeyDown(rl.KeyD)
	in.Up = rl.IsKeyDown(rl.KeyE)
	in.Down = rl.IsKeyDown(rl.KeyQ)
	in.TurnLeft = rl.IsKeyDown(rl.KeyLeft)
	in.TurnRight = rl.IsKeyDown(rl.KeyRight)
	in.TurnUp = rl.IsKeyDown(rl.KeyUp)
	in.TurnDown = rl.IsKeyDown(rl.KeyDown)
	if rl.IsKeyPressed(rl.KeyR) {
		in.Reset = true
	}
}
