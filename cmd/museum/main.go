// Package main is the entry point for the museum walkthrough viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/museum-walk/internal/config"
	"github.com/Faultbox/museum-walk/internal/engine/mesh"
	"github.com/Faultbox/museum-walk/internal/logger"
	"github.com/Faultbox/museum-walk/internal/tour"
	"github.com/Faultbox/museum-walk/internal/viewer"
)

const appTitle = "Museum Walk"

func init() {
	// SDL and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Museum Walk ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		fatal(err)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	scenePath, err := resolveScene(cfg.Scene.Path)
	if err != nil {
		return err
	}

	buf, err := mesh.Load(scenePath)
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("path", scenePath),
		zap.Int("vertices", len(buf.Vertices)),
		zap.Int("indices", len(buf.Indices)),
	)

	table, err := tour.LoadTable(cfg.Scene.Zones)
	if err != nil {
		return fmt.Errorf("zone table: %w", err)
	}
	logger.Info("zone table loaded",
		zap.String("table", table.Name),
		zap.Int("zones", len(table.Zones)),
	)

	v, err := viewer.New(cfg, buf, table)
	if err != nil {
		return err
	}
	defer v.Close()

	v.Run()
	return nil
}

// resolveScene returns path when it exists and otherwise asks the user to
// pick a scene file.
func resolveScene(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		logger.Warn("scene file not found, asking for one", zap.String("path", path))
	}

	picked, err := dialog.File().
		Filter("Scenes", "obj", "gltf", "glb").
		Filter("All Files", "*").
		Title("Open Museum Scene").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", fmt.Errorf("no scene selected (configured path %q)", path)
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return picked, nil
}

func fatal(err error) {
	logger.Error("fatal error", zap.Error(err))
	logger.Sync()
	dialog.Message("%s", err).Title(appTitle).Error()
	os.Exit(1)
}
