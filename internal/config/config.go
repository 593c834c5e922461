package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"room-planner/internal/camera"
)

// Path is the planner config file, relative to the process working directory.
const Path = "config/planner.json"

// Prefs holds planner preferences persisted across runs. The room and furniture live in the
// layout file named by LayoutPath, not here.
type Prefs struct {
	WindowWidth    int    `json:"window_width"`
	WindowHeight   int    `json:"window_height"`
	Fullscreen     bool   `json:"fullscreen"`
	LayoutPath     string `json:"layout_path"`
	ViewMode       string `json:"view_mode"`
	ShowFPS        bool   `json:"show_fps"`
	ReleaseOnLeave bool   `json:"release_on_leave"`
	TextureRoot    string `json:"texture_root"`
	LogPath        string `json:"log_path"`
}

// Default returns the preferences used when no config file exists.
func Default() Prefs {
	return Prefs{
		WindowWidth:    1280,
		WindowHeight:   800,
		LayoutPath:     "layouts/room.yaml",
		ViewMode:       camera.Free.String(),
		ReleaseOnLeave: true,
		TextureRoot:    "assets",
		LogPath:        "logs/planner.txt",
	}
}

// Load reads Path. See LoadFrom.
func Load() (Prefs, error) {
	return LoadFrom(Path)
}

// LoadFrom reads preferences from path. Fields absent from the file keep their default values.
// A missing file yields Default() and no error. Any other read or parse failure yields
// Default() together with the error, so the caller can report it and keep running.
func LoadFrom(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p.normalize(), nil
}

func (p Prefs) normalize() Prefs {
	def := Default()
	if p.WindowWidth <= 0 {
		p.WindowWidth = def.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = def.WindowHeight
	}
	if p.LayoutPath == "" {
		p.LayoutPath = def.LayoutPath
	}
	if _, err := camera.ParseViewMode(p.ViewMode); err != nil {
		p.ViewMode = def.ViewMode
	}
	return p
}

// Mode returns the configured initial view mode.
func (p Prefs) Mode() camera.ViewMode {
	m, err := camera.ParseViewMode(p.ViewMode)
	if err != nil {
		return camera.Free
	}
	return m
}

// Save writes p to Path.
func Save(p Prefs) error {
	return SaveTo(Path, p)
}

// SaveTo writes p to path, creating the directory if needed.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
