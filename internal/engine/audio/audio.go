// Package audio plays the narration cues attached to exhibits.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker rate; cues at other rates are resampled.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeds.
var ErrNotInitialized = errors.New("audio not initialized")

// Guide owns the speaker and a cache of decoded cues. Only one cue plays at
// a time; starting another cuts the current one off.
type Guide struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	mixer     *beep.Mixer
	cues      map[string]*beep.Buffer
	narration *beep.Ctrl
	current   string
}

// New creates a guide with the given volume. Call Init before Play.
func New(volume float64) *Guide {
	return &Guide{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
		cues:       make(map[string]*beep.Buffer),
	}
}

// Init opens the audio device.
func (g *Guide) Init() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return nil
	}
	if err := speaker.Init(g.sampleRate, g.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(g.mixer)
	g.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (g *Guide) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	g.narration = nil
	g.current = ""
	g.initialized = false
}

// Preload decodes every cue file into memory so entering a zone never
// touches the disk. Already loaded paths are skipped.
func (g *Guide) Preload(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		g.mu.Lock()
		_, ok := g.cues[path]
		g.mu.Unlock()
		if ok {
			continue
		}

		buf, err := decodeFile(path)
		if err != nil {
			return fmt.Errorf("cue %s: %w", path, err)
		}

		g.mu.Lock()
		g.cues[path] = buf
		g.mu.Unlock()
	}
	return nil
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return buf, nil
}

// Play starts the cue for path, loading it first if needed.
func (g *Guide) Play(path string) error {
	if err := g.Preload(path); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return ErrNotInitialized
	}

	buf := g.cues[path]
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if rate := buf.Format().SampleRate; rate != g.sampleRate {
		s = beep.Resample(4, rate, g.sampleRate, s)
	}

	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToDb(g.volume),
		Silent:   g.volume <= 0,
	}}

	speaker.Lock()
	if g.narration != nil {
		g.narration.Streamer = nil
	}
	g.mixer.Add(ctrl)
	speaker.Unlock()

	g.narration = ctrl
	g.current = path
	return nil
}

// Stop cuts off the current cue.
func (g *Guide) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.narration != nil && g.initialized {
		speaker.Lock()
		g.narration.Streamer = nil
		speaker.Unlock()
	}
	g.narration = nil
	g.current = ""
}

// Current returns the path of the last cue started, or "" after Stop.
func (g *Guide) Current() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Loaded reports whether path has been decoded.
func (g *Guide) Loaded(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.cues[path]
	return ok
}

// SetVolume sets the volume for cues started afterwards.
func (g *Guide) SetVolume(vol float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.volume = clamp(vol, 0, 1)
}

func (g *Guide) Volume() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.volume
}

// volumeToDb maps 0..1 onto the Base 2 exponent used by effects.Volume.
// Halving the level lowers the exponent by one.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
