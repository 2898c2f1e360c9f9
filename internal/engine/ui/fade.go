package ui

import (
	"github.com/charmbracelet/harmonica"
)

// Fader eases newly shown panels from transparent to opaque. Panels that
// leave the frame are forgotten, so re-entering a zone fades in again.
type Fader struct {
	spring harmonica.Spring
	panels map[string]*fade
}

type fade struct {
	alpha    float64
	velocity float64
}

// minAlpha keeps a panel legible on its first frame.
const minAlpha = 0.05

// NewFader creates a fader stepped once per frame at fps.
func NewFader(fps int) *Fader {
	if fps <= 0 {
		fps = 60
	}
	return &Fader{
		// Critically damped so panels never overshoot to alpha > 1.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		panels: make(map[string]*fade),
	}
}

// Step advances every panel in visible and drops the rest.
func (f *Fader) Step(visible []string) {
	keep := make(map[string]bool, len(visible))
	for _, id := range visible {
		keep[id] = true
		p, ok := f.panels[id]
		if !ok {
			p = &fade{}
			f.panels[id] = p
		}
		p.alpha, p.velocity = f.spring.Update(p.alpha, p.velocity, 1)
	}
	for id := range f.panels {
		if !keep[id] {
			delete(f.panels, id)
		}
	}
}

// Alpha returns the current opacity of a panel in [minAlpha, 1].
func (f *Fader) Alpha(id string) float32 {
	p, ok := f.panels[id]
	if !ok {
		return minAlpha
	}
	return float32(min(max(p.alpha, minAlpha), 1))
}
