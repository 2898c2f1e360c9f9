package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./museum.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MuseumWalk")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MuseumWalk")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "museum-walk")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "museum-walk")
	}
}

// loadFromFile merges a YAML file over the existing values.
// Binding lists named in the file replace the list for that direction, and
// keys the file binds are taken away from directions it leaves alone.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prev := cfg.Controls.Bindings
	cfg.Controls.Bindings = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Controls.Bindings = prev
		return err
	}
	cfg.Controls.Bindings = mergeBindings(prev, cfg.Controls.Bindings)
	return nil
}

// mergeBindings overlays file bindings on base without leaving any key bound
// to two directions.
func mergeBindings(base, file map[string][]string) map[string][]string {
	if len(file) == 0 {
		return base
	}

	claimed := make(map[string]bool)
	for _, keys := range file {
		for _, k := range keys {
			claimed[k] = true
		}
	}

	merged := make(map[string][]string, len(base)+len(file))
	for dir, keys := range base {
		if _, ok := file[dir]; ok {
			continue
		}
		var kept []string
		for _, k := range keys {
			if !claimed[k] {
				kept = append(kept, k)
			}
		}
		if len(kept) > 0 {
			merged[dir] = kept
		}
	}
	for dir, keys := range file {
		merged[dir] = keys
	}
	return merged
}
