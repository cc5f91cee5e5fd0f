package graphics

import (
	"atlas-engine/internal/engineconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run starts the window and main loop. Each frame it calls update (input,
// physics, player), then clears the screen and calls draw (viewport, console,
// overlays). Window size, fullscreen, and FPS come from the engine prefs.
// ESC toggles the console; close via window button.
func Run(prefs engineconfig.EnginePrefs, update, draw func()) {
	if prefs.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), "Atlas Engine")
	} else {
		rl.InitWindow(int32(prefs.WindowWidth), int32(prefs.WindowHeight), "Atlas Engine")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC is used to toggle the console, not to quit; close via window button
	rl.SetTargetFPS(int32(prefs.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
