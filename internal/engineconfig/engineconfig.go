package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"cube-scene/internal/mesh"
	"cube-scene/internal/scenedef"
)

// DefaultPath is the engine config file, relative to the process working directory.
const DefaultPath = "config/engine.json"

// Environment variables that override the file (see env.Load for .env support).
const (
	EnvScene      = "CUBE_SCENE"
	EnvFullscreen = "CUBE_FULLSCREEN"
	EnvSound      = "CUBE_SOUND"
	EnvStep       = "CUBE_STEP"
)

// EnginePrefs holds engine-only preferences (overlays, grid, window, sound, spin step).
// Persisted across runs. The scene itself lives in a separate YAML file.
type EnginePrefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	GridVisible  bool    `json:"grid_visible"`
	Fullscreen   bool    `json:"fullscreen"`
	Sound        bool    `json:"sound"`
	Step         float32 `json:"step"`
	ScenePath    string  `json:"scene,omitempty"`
	Width        int32   `json:"width,omitempty"`
	Height       int32   `json:"height,omitempty"`
}

// Default returns default preferences: overlays off, grid off, windowed 1280x720, sound off.
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  false,
		Fullscreen:   false,
		Sound:        false,
		Step:         mesh.DefaultStep,
		ScenePath:    scenedef.DefaultPath,
		Width:        1280,
		Height:       720,
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns Default()
// and does not create a file. Fields absent from the file keep their defaults.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	d := Default()
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = d.Width, d.Height
	}
	if p.Step < 0 {
		p.Step = d.Step
	}
	return p, nil
}

// Save writes preferences to path, creating the config directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p from the process environment. Unparseable values and negative steps are ignored.
func ApplyEnv(p EnginePrefs) EnginePrefs {
	if v := os.Getenv(EnvScene); v != "" {
		p.ScenePath = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvFullscreen)); err == nil {
		p.Fullscreen = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvSound)); err == nil {
		p.Sound = v
	}
	if v, err := strconv.ParseFloat(os.Getenv(EnvStep), 32); err == nil && v >= 0 {
		p.Step = float32(v)
	}
	return p
}
