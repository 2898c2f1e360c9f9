package tour

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/museum-walk/internal/control"
	"github.com/Faultbox/museum-walk/internal/engine/camera"
	"github.com/Faultbox/museum-walk/internal/logger"
)

// DefaultMaxFrameDelta bounds camera integration after a stall.
const DefaultMaxFrameDelta = 100 * time.Millisecond

// Options configures a Session. The table's start pose, when present,
// replaces Eye, Center and Up.
type Options struct {
	Eye           mgl32.Vec3
	Center        mgl32.Vec3
	Up            mgl32.Vec3
	Projection    camera.Projection
	Speeds        control.Speeds
	MaxFrameDelta time.Duration
}

// DefaultOptions returns the standing pose at the hall entrance.
func DefaultOptions() Options {
	return Options{
		Eye:           mgl32.Vec3{0, 0.5, 2.5},
		Center:        mgl32.Vec3{0, 0.5, 0},
		Up:            mgl32.Vec3{0, 1, 0},
		Projection:    camera.DefaultProjection(),
		Speeds:        control.DefaultSpeeds(),
		MaxFrameDelta: DefaultMaxFrameDelta,
	}
}

// Frame is everything the renderer and UI need for one tick.
type Frame struct {
	View    mgl32.Mat4
	Proj    mgl32.Mat4
	Eye     mgl32.Vec3
	Delta   time.Duration
	Active  []string
	Panels  []Panel
	Entered []string
	Left    []string
	Paused  bool
}

type keyEvent struct {
	dir  control.Direction
	down bool
}

// Session owns the camera, velocity and overlay state of one walkthrough.
// It is driven from the render loop and is not safe for concurrent use.
type Session struct {
	camera   *camera.LookAtCamera
	velocity *control.Velocity
	engine   *Engine
	overlay  *Overlay

	pending  []keyEvent
	maxDelta time.Duration
	last     time.Time
	started  bool
	paused   bool

	log *zap.Logger
}

func NewSession(t *Table, opts Options) *Session {
	eye, center, up := opts.Eye, opts.Center, opts.Up
	if t.Start != nil {
		eye, center, up = t.Start.Eye, t.Start.Center, t.Start.Up
	}
	if opts.MaxFrameDelta <= 0 {
		opts.MaxFrameDelta = DefaultMaxFrameDelta
	}

	s := &Session{
		camera:   camera.New(eye, center, up, opts.Projection),
		velocity: control.NewVelocity(opts.Speeds),
		engine:   NewEngine(t),
		overlay:  NewOverlay(t),
		maxDelta: opts.MaxFrameDelta,
		log:      logger.Named("tour"),
	}
	s.log.Info("Tour started",
		zap.String("table", t.Name),
		zap.Int("zones", len(t.Zones)),
		zap.Bool("welcome", t.Welcome != nil))
	return s
}

// HandleKey queues a key transition for the next tick.
func (s *Session) HandleKey(dir control.Direction, down bool) {
	if dir == control.DirectionNone {
		return
	}
	s.pending = append(s.pending, keyEvent{dir: dir, down: down})
}

// Resize updates the projection for a new viewport.
func (s *Session) Resize(width, height int) {
	s.camera.ComputeProjectionMatrix(width, height)
}

// Dismiss closes a panel by id, including the welcome panel.
func (s *Session) Dismiss(id string) {
	if id == WelcomeID {
		if s.overlay.IsWelcomeShown() {
			s.overlay.DismissWelcome()
			s.log.Debug("Welcome dismissed")
		}
		return
	}
	if s.overlay.IsShown(id) {
		s.overlay.Dismiss(id)
		s.paused = false
		s.log.Info("Panel dismissed", zap.String("zone", id))
	}
}

// Tick advances the session to now: queued keys update velocity, the camera
// integrates the elapsed time, then zones are evaluated.
func (s *Session) Tick(now time.Time) Frame {
	for _, ev := range s.pending {
		if ev.down {
			s.velocity.KeyDown(ev.dir)
		} else {
			s.velocity.KeyUp(ev.dir)
		}
	}
	s.pending = s.pending[:0]

	delta := s.advance(now)
	if !s.paused {
		dt := float32(delta.Seconds())
		s.camera.Dolly(s.velocity.Dolly() * dt)
		s.camera.Truck(s.velocity.Truck() * dt)
		s.camera.Pan(s.velocity.Pan() * dt)
	}

	eye := s.camera.Eye()
	r := s.engine.Evaluate(eye, s.overlay)
	for _, id := range r.Entered {
		s.log.Info("Entered zone", zap.String("zone", id), zap.Bool("shown", s.overlay.IsShown(id)))
	}
	for _, id := range r.Left {
		s.log.Debug("Left zone", zap.String("zone", id))
	}

	// Velocity is zeroed once as the pause begins. Keys pressed while paused
	// are kept and take effect after the panel is dismissed.
	if r.Pause && !s.paused {
		s.log.Debug("Camera paused for panel", zap.Strings("active", r.Active))
		s.velocity.Stop()
	}
	s.paused = r.Pause

	return Frame{
		View:    s.camera.ViewMatrix(),
		Proj:    s.camera.ProjMatrix(),
		Eye:     eye,
		Delta:   delta,
		Active:  r.Active,
		Panels:  r.Panels,
		Entered: r.Entered,
		Left:    r.Left,
		Paused:  r.Pause,
	}
}

// advance returns the time since the previous tick, clamped to
// [0, maxDelta]. The first tick has zero delta.
func (s *Session) advance(now time.Time) time.Duration {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	delta := now.Sub(s.last)
	s.last = now
	return min(max(delta, 0), s.maxDelta)
}

// Camera returns the session camera.
func (s *Session) Camera() *camera.LookAtCamera {
	return s.camera
}

// Overlay returns the session overlay state.
func (s *Session) Overlay() *Overlay {
	return s.overlay
}

// Engine returns the zone engine.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Velocity returns the current per-axis speeds.
func (s *Session) Velocity() *control.Velocity {
	return s.velocity
}
