// Package viewer runs the museum walkthrough: it owns the window, pumps
// input into the tour session and draws each frame.
package viewer

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/museum-walk/internal/config"
	"github.com/Faultbox/museum-walk/internal/control"
	"github.com/Faultbox/museum-walk/internal/engine/audio"
	"github.com/Faultbox/museum-walk/internal/engine/debug"
	"github.com/Faultbox/museum-walk/internal/engine/framebuffer"
	"github.com/Faultbox/museum-walk/internal/engine/input"
	"github.com/Faultbox/museum-walk/internal/engine/mesh"
	"github.com/Faultbox/museum-walk/internal/engine/renderer"
	"github.com/Faultbox/museum-walk/internal/engine/ui"
	"github.com/Faultbox/museum-walk/internal/logger"
	"github.com/Faultbox/museum-walk/internal/tour"
)

const toastDuration = 2 * time.Second

// Viewer is one running walkthrough window.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	backend  *ui.Backend
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	session  *tour.Session
	bindings control.Bindings
	poller   *input.Poller
	fader    *ui.Fader
	guide    *audio.Guide
	shots    *debug.Screenshots

	title        string
	viewW, viewH int
	paused       bool

	screenshotRequested bool
	toast               string
	toastUntil          time.Time
}

// New opens the window and uploads the scene. buf and table must already
// be loaded; load failures are the caller's to report.
func New(cfg *config.Config, buf *mesh.Buffer, table *tour.Table) (*Viewer, error) {
	v := &Viewer{
		cfg:   cfg,
		log:   logger.Named("viewer"),
		fader: ui.NewFader(cfg.Graphics.FPSLimit),
		shots: debug.NewScreenshots(cfg.Game.ScreenshotDir, "museum"),
		viewW: cfg.Graphics.Width,
		viewH: cfg.Graphics.Height,
	}

	var err error
	v.bindings, err = control.NewBindings(cfg.Controls.Bindings)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	v.poller, err = input.NewPoller(v.bindings.Keys())
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	v.title = fmt.Sprintf("Museum Walk - %s", table.Name)
	v.backend, err = ui.NewBackend(v.title, cfg.Graphics.Width, cfg.Graphics.Height,
		cfg.Graphics.FPSLimit, cfg.Graphics.Background)
	if err != nil {
		return nil, err
	}

	v.renderer, err = renderer.New(rendererConfig(cfg), buf)
	if err != nil {
		return nil, err
	}

	v.fb, err = framebuffer.New(v.viewW, v.viewH)
	if err != nil {
		v.renderer.Close()
		return nil, err
	}

	v.session = tour.NewSession(table, sessionOptions(cfg))
	v.session.Resize(v.viewW, v.viewH)

	if cfg.Audio.Enabled {
		v.initAudio(table)
	}

	v.log.Info("viewer ready",
		zap.Int("vertices", len(buf.Vertices)),
		zap.Int("triangles", buf.Triangles()),
		zap.Strings("keys", v.bindings.Keys()),
	)
	return v, nil
}

// initAudio starts the guide. Audio is optional: failures are logged and
// the tour continues silently.
func (v *Viewer) initAudio(table *tour.Table) {
	cues := cuePaths(table)
	if len(cues) == 0 {
		return
	}

	guide := audio.New(v.cfg.Audio.Volume)
	if err := guide.Init(); err != nil {
		v.log.Warn("audio disabled", zap.Error(err))
		return
	}
	if err := guide.Preload(cues...); err != nil {
		v.log.Warn("audio cue failed to load", zap.Error(err))
	}
	v.guide = guide
}

// Run blocks until the window is closed.
func (v *Viewer) Run() {
	v.backend.Run(v.frame)
}

// Close releases GPU and audio resources.
func (v *Viewer) Close() {
	if v.guide != nil {
		v.guide.Close()
	}
	if v.fb != nil {
		v.fb.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
}

func (v *Viewer) frame() {
	// Keys are only read while no imgui widget owns the keyboard; a focus
	// change releases anything held so the camera does not keep walking.
	if imgui.CurrentIO().WantCaptureKeyboard() {
		dispatchEdges(v.poller.Release(), v.bindings, v.session)
	} else {
		dispatchEdges(v.poller.Poll(imgui.IsKeyDown), v.bindings, v.session)
	}

	if w, h := ui.ViewportSize(); w > 0 && h > 0 && (w != v.viewW || h != v.viewH) {
		v.viewW, v.viewH = w, h
		v.session.Resize(w, h)
		v.fb.Resize(w, h)
		v.log.Debug("viewport resized", zap.Int("width", w), zap.Int("height", h))
	}

	f := v.session.Tick(time.Now())
	v.playCues(f)
	if f.Paused != v.paused {
		v.paused = f.Paused
		v.backend.SetWindowTitle(windowTitle(v.title, f.Paused))
	}

	v.fb.Render(func() {
		v.renderer.Draw(f.View, f.Proj)
	})
	if v.screenshotRequested {
		v.screenshotRequested = false
		v.captureScreenshot()
	}

	v.drawUI(f)

	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		v.screenshotRequested = true
	}
}

func (v *Viewer) playCues(f tour.Frame) {
	if v.guide == nil {
		return
	}
	engine := v.session.Engine()
	overlay := v.session.Overlay()

	for _, id := range f.Left {
		if z, ok := engine.Zone(id); ok && z.Audio != "" && v.guide.Current() == z.Audio {
			v.guide.Stop()
		}
	}
	for _, id := range f.Entered {
		z, ok := engine.Zone(id)
		if !ok || z.Audio == "" || !overlay.IsShown(id) {
			continue
		}
		if err := v.guide.Play(z.Audio); err != nil {
			v.log.Warn("cue playback failed", zap.String("zone", id), zap.Error(err))
		}
	}
}

func (v *Viewer) drawUI(f tour.Frame) {
	dw, dh := ui.DisplaySize()
	ui.DrawScene(v.fb.ColorTexture(), dw, dh)

	v.fader.Step(panelIDs(f.Panels))
	for i, p := range f.Panels {
		if ui.DrawPanel(p, i, v.fader.Alpha(p.ID), dw, dh) {
			v.session.Dismiss(p.ID)
		}
	}

	if v.cfg.Game.ShowPosition {
		titles := make([]string, 0, len(f.Active))
		for _, id := range f.Active {
			if z, ok := v.session.Engine().Zone(id); ok {
				titles = append(titles, z.Title)
			}
		}
		ui.DrawHUD(f.Eye, titles, dw, dh)
	}

	if v.toast != "" {
		if time.Now().Before(v.toastUntil) {
			ui.DrawToast(v.toast)
		} else {
			v.toast = ""
		}
	}
}

func (v *Viewer) captureScreenshot() {
	path, err := v.shots.Save(v.fb.Snapshot())
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		v.showToast("Screenshot failed")
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	v.showToast("Saved " + path)
}

func (v *Viewer) showToast(msg string) {
	v.toast = msg
	v.toastUntil = time.Now().Add(toastDuration)
}
