package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine-only preferences (debug overlays, grid, window, script search path).
// Persisted across runs. Scene files are separate and handled by the scene package.
type EnginePrefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int    `json:"target_fps"`
	ScriptDir    string `json:"script_dir,omitempty"`
}

// Default returns default engine preferences (debug overlays off, grid on,
// a 1280x720 window at 60 FPS, scripts loaded from the working directory).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    60,
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = Default().WindowWidth, Default().WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = Default().TargetFPS
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
