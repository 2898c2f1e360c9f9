package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.MaxFrameDelta != 100*time.Millisecond {
		t.Errorf("expected max frame delta 100ms, got %v", cfg.Graphics.MaxFrameDelta)
	}

	if cfg.Camera.FOVDegrees != 70 {
		t.Errorf("expected fov 70, got %v", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 5 {
		t.Errorf("expected near/far 0.1/5, got %v/%v", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.Eye != [3]float32{0, 0.5, 2.5} {
		t.Errorf("unexpected default eye %v", cfg.Camera.Eye)
	}

	if cfg.Controls.DollySpeed != 1 || cfg.Controls.TruckSpeed != 1 || cfg.Controls.PanSpeed != 1 {
		t.Errorf("expected unit speeds, got %+v", cfg.Controls)
	}
	if got := cfg.Controls.Bindings["forward"]; len(got) != 2 || got[0] != "W" {
		t.Errorf("unexpected forward bindings %v", got)
	}
	if len(cfg.Controls.Bindings) != 6 {
		t.Errorf("expected 6 bound directions, got %d", len(cfg.Controls.Bindings))
	}

	if cfg.Scene.Zones != "museum-v1" {
		t.Errorf("expected zones museum-v1, got %s", cfg.Scene.Zones)
	}
	if cfg.Scene.Translate != [3]float32{-1, 0, 0} || cfg.Scene.RotateYDegrees != 90 || cfg.Scene.Scale != 0.5 {
		t.Errorf("unexpected default placement %v rot %v scale %v",
			cfg.Scene.Translate, cfg.Scene.RotateYDegrees, cfg.Scene.Scale)
	}
	if cfg.Game.ShowPosition {
		t.Error("expected position HUD to be off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "museum.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  max_frame_delta: 50ms

scene:
  path: "scenes/hall.glb"
  zones: "museum-v2"

camera:
  eye: [1, 2, 3]
  fov_degrees: 60
  far: 50

controls:
  dolly_speed: 0.5
  bindings:
    strafe_left: ["Z"]

audio:
  enabled: false
  volume: 0.25

game:
  show_position: true

logging:
  level: "debug"
  log_file: "museum.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.MaxFrameDelta != 50*time.Millisecond {
		t.Errorf("expected max frame delta 50ms, got %v", cfg.Graphics.MaxFrameDelta)
	}
	if cfg.Scene.Path != "scenes/hall.glb" {
		t.Errorf("expected scene path scenes/hall.glb, got %s", cfg.Scene.Path)
	}
	if cfg.Scene.Zones != "museum-v2" {
		t.Errorf("expected zones museum-v2, got %s", cfg.Scene.Zones)
	}
	if cfg.Camera.Eye != [3]float32{1, 2, 3} {
		t.Errorf("expected eye [1 2 3], got %v", cfg.Camera.Eye)
	}
	if cfg.Camera.FOVDegrees != 60 || cfg.Camera.Far != 50 {
		t.Errorf("expected fov 60 far 50, got %v %v", cfg.Camera.FOVDegrees, cfg.Camera.Far)
	}
	// Unset values keep their defaults
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected default near 0.1, got %v", cfg.Camera.Near)
	}
	if cfg.Controls.DollySpeed != 0.5 {
		t.Errorf("expected dolly speed 0.5, got %v", cfg.Controls.DollySpeed)
	}
	if got := cfg.Controls.Bindings["strafe_left"]; len(got) != 1 || got[0] != "Z" {
		t.Errorf("expected strafe_left [Z], got %v", got)
	}
	if got := cfg.Controls.Bindings["forward"]; len(got) != 2 {
		t.Errorf("expected default forward bindings to survive, got %v", got)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio disabled")
	}
	if !cfg.Game.ShowPosition {
		t.Error("expected show_position to be true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "museum.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileRebindsKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "museum.yaml")

	yamlContent := `
controls:
  bindings:
    strafe_left: ["W"]
    turn_left: ["Q"]
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	b := cfg.Controls.Bindings
	if got := b["forward"]; len(got) != 1 || got[0] != "UpArrow" {
		t.Errorf("expected W moved off forward, got %v", got)
	}
	if got := b["strafe_left"]; len(got) != 1 || got[0] != "W" {
		t.Errorf("expected strafe_left [W], got %v", got)
	}
	if got := b["turn_left"]; len(got) != 1 || got[0] != "Q" {
		t.Errorf("expected turn_left [Q], got %v", got)
	}
	if got := b["back"]; len(got) != 2 {
		t.Errorf("expected untouched back bindings, got %v", got)
	}

	seen := make(map[string]string)
	for dir, keys := range b {
		for _, k := range keys {
			if other, ok := seen[k]; ok {
				t.Errorf("key %s bound to both %s and %s", k, other, dir)
			}
			seen[k] = dir
		}
	}
}

func TestMergeBindingsKeepsBaseWithoutFileBindings(t *testing.T) {
	base := Default().Controls.Bindings
	if got := mergeBindings(base, nil); len(got) != len(base) {
		t.Errorf("expected %d directions, got %d", len(base), len(got))
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/museum.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero height", func(c *Config) { c.Graphics.Height = 0 }, "window size"},
		{"zero frame delta", func(c *Config) { c.Graphics.MaxFrameDelta = 0 }, "max_frame_delta"},
		{"fov too wide", func(c *Config) { c.Camera.FOVDegrees = 180 }, "fov_degrees"},
		{"near beyond far", func(c *Config) { c.Camera.Near = 10 }, "near < far"},
		{"eye on center", func(c *Config) { c.Camera.Center = c.Camera.Eye }, "eye and center"},
		{"negative speed", func(c *Config) { c.Controls.PanSpeed = -1 }, "speeds"},
		{"loud volume", func(c *Config) { c.Audio.Volume = 2 }, "volume"},
		{"zero scale", func(c *Config) { c.Scene.Scale = 0 }, "scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "museum.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find museum.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Zones = "museum-v2"
	cfg.Graphics.MaxFrameDelta = 40 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Scene.Zones != "museum-v2" {
		t.Errorf("expected zones museum-v2 after reload, got %s", loaded.Scene.Zones)
	}
	if loaded.Graphics.MaxFrameDelta != 40*time.Millisecond {
		t.Errorf("expected 40ms after reload, got %v", loaded.Graphics.MaxFrameDelta)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Game.ShowPosition {
					t.Error("expected position HUD with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene and zones flags",
			setup: func() { *flagScene = "hall.obj"; *flagZones = "museum-v2" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "hall.obj" {
					t.Errorf("expected scene hall.obj, got %s", cfg.Scene.Path)
				}
				if cfg.Scene.Zones != "museum-v2" {
					t.Errorf("expected zones museum-v2, got %s", cfg.Scene.Zones)
				}
			},
			teardown: func() { *flagScene = ""; *flagZones = "" },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
		{
			name:  "no-audio flag",
			setup: func() { *flagNoAudio = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with no-audio flag")
				}
			},
			teardown: func() { *flagNoAudio = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "museum.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "museum.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  near: 9\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject near >= far")
	}
}
