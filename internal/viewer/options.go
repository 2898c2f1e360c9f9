package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/museum-walk/internal/config"
	"github.com/Faultbox/museum-walk/internal/control"
	"github.com/Faultbox/museum-walk/internal/engine/camera"
	"github.com/Faultbox/museum-walk/internal/engine/input"
	"github.com/Faultbox/museum-walk/internal/engine/renderer"
	"github.com/Faultbox/museum-walk/internal/tour"
)

// sessionOptions maps configuration onto the tour session.
func sessionOptions(cfg *config.Config) tour.Options {
	c := cfg.Camera
	return tour.Options{
		Eye:    mgl32.Vec3(c.Eye),
		Center: mgl32.Vec3(c.Center),
		Up:     mgl32.Vec3(c.Up),
		Projection: camera.Projection{
			FOVY: mgl32.DegToRad(c.FOVDegrees),
			Near: c.Near,
			Far:  c.Far,
		},
		Speeds: control.Speeds{
			Dolly: cfg.Controls.DollySpeed,
			Truck: cfg.Controls.TruckSpeed,
			Pan:   cfg.Controls.PanSpeed,
		},
		MaxFrameDelta: cfg.Graphics.MaxFrameDelta,
	}
}

// rendererConfig maps configuration onto the mesh renderer.
func rendererConfig(cfg *config.Config) renderer.Config {
	s := cfg.Scene
	return renderer.Config{
		Color:        mgl32.Vec4(cfg.Graphics.MeshColor),
		Background:   mgl32.Vec3(cfg.Graphics.Background),
		Model:        renderer.ModelMatrix(mgl32.Vec3(s.Translate), s.RotateYDegrees, s.Scale),
		FadeDistance: cfg.Camera.Far,
	}
}

// keyHandler forwards key transitions to a session through the bindings.
type keyHandler interface {
	HandleKey(dir control.Direction, down bool)
}

// dispatchEdges sends bound transitions to h and ignores the rest.
func dispatchEdges(edges []input.Edge, b control.Bindings, h keyHandler) {
	for _, e := range edges {
		if dir := b.Lookup(e.Key); dir != control.DirectionNone {
			h.HandleKey(dir, e.Down)
		}
	}
}

// cuePaths lists the distinct audio cues referenced by a table.
func cuePaths(t *tour.Table) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, z := range t.Zones {
		if z.Audio != "" && !seen[z.Audio] {
			seen[z.Audio] = true
			paths = append(paths, z.Audio)
		}
	}
	return paths
}

// panelIDs returns the ids of the panels in draw order.
func panelIDs(panels []tour.Panel) []string {
	ids := make([]string, len(panels))
	for i, p := range panels {
		ids[i] = p.ID
	}
	return ids
}

func windowTitle(base string, paused bool) string {
	if paused {
		return base + " (paused)"
	}
	return base
}
