package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and the position HUD")
	flagScene   = flag.String("scene", "", "Scene geometry file (OBJ, glTF or GLB)")
	flagZones   = flag.String("zones", "", "Built-in zone table name or path to a zone YAML file")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagNoAudio = flag.Bool("no-audio", false, "Disable audio guide cues")
	flagLogFile = flag.String("log-file", "", "Write logs to this file in addition to stdout")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowPosition = true
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagZones != "" {
		cfg.Scene.Zones = *flagZones
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
