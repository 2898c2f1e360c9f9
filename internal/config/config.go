// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	FPSLimit      int           `yaml:"fps_limit"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Clamp for camera integration after stalls
	Background    [3]float32    `yaml:"background"`
	MeshColor     [4]float32    `yaml:"mesh_color"`
}

// SceneConfig selects the geometry and the exhibit zone table.
type SceneConfig struct {
	Path  string `yaml:"path"`  // OBJ, glTF or GLB file
	Zones string `yaml:"zones"` // Built-in table name or path to a YAML file

	// Placement of the mesh in the world: scale, then rotate about Y, then translate.
	Translate      [3]float32 `yaml:"translate"`
	RotateYDegrees float32    `yaml:"rotate_y_degrees"`
	Scale          float32    `yaml:"scale"`
}

// CameraConfig holds the initial camera placement and projection constants.
type CameraConfig struct {
	Eye        [3]float32 `yaml:"eye"`
	Center     [3]float32 `yaml:"center"`
	Up         [3]float32 `yaml:"up"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// ControlsConfig holds per-axis speeds and key bindings.
// Bindings map a direction name (forward, back, turn_left, turn_right,
// strafe_left, strafe_right) to key names.
type ControlsConfig struct {
	DollySpeed float32             `yaml:"dolly_speed"`
	TruckSpeed float32             `yaml:"truck_speed"`
	PanSpeed   float32             `yaml:"pan_speed"`
	Bindings   map[string][]string `yaml:"bindings"`
}

// AudioConfig holds audio guide settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// GameConfig holds presentation toggles.
type GameConfig struct {
	ShowPosition  bool   `yaml:"show_position"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			FPSLimit:      60,
			MaxFrameDelta: 100 * time.Millisecond,
			Background:    [3]float32{0, 0, 0},
			MeshColor:     [4]float32{1, 1, 1, 1},
		},
		Scene: SceneConfig{
			Path:  "assets/museum.obj",
			Zones: "museum-v1",

			// The museum hall model is authored facing +X at twice the
			// walkable size; the built-in zone coordinates assume this placement.
			Translate:      [3]float32{-1, 0, 0},
			RotateYDegrees: 90,
			Scale:          0.5,
		},
		Camera: CameraConfig{
			Eye:        [3]float32{0, 0.5, 2.5},
			Center:     [3]float32{0, 0.5, 0},
			Up:         [3]float32{0, 1, 0},
			FOVDegrees: 70,
			Near:       0.1,
			Far:        5,
		},
		Controls: ControlsConfig{
			DollySpeed: 1,
			TruckSpeed: 1,
			PanSpeed:   1,
			Bindings: map[string][]string{
				"forward":      {"W", "UpArrow"},
				"back":         {"S", "DownArrow"},
				"turn_left":    {"A", "LeftArrow"},
				"turn_right":   {"D", "RightArrow"},
				"strafe_left":  {"Q"},
				"strafe_right": {"E"},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Game: GameConfig{
			ShowPosition:  false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("graphics: max_frame_delta must be positive, got %v", c.Graphics.MaxFrameDelta))
	}
	if c.Scene.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scene: scale must be positive, got %v", c.Scene.Scale))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_degrees %v out of range (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Eye == c.Camera.Center {
		errs = append(errs, errors.New("camera: eye and center must differ"))
	}
	if c.Controls.DollySpeed <= 0 || c.Controls.TruckSpeed <= 0 || c.Controls.PanSpeed <= 0 {
		errs = append(errs, errors.New("controls: speeds must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %v out of range [0, 1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
