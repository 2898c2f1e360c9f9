package tour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WelcomeID identifies the welcome panel in panel lists and dismissals.
const WelcomeID = "welcome"

// Panel describes one overlay window for the presentation layer.
type Panel struct {
	ID          string
	Title       string
	Body        []string
	Dismissible bool
}

// Result is the outcome of evaluating the zones for one frame.
type Result struct {
	// Active lists zones containing the eye, in table order.
	Active []string
	// Panels holds the welcome panel (if pending) followed by the panels
	// of active zones that are still shown.
	Panels []Panel
	// Entered and Left list zones whose containment changed since the
	// previous evaluation.
	Entered []string
	Left    []string
	// Pause is set when a shown active zone asks to park the camera.
	Pause bool
}

// Engine evaluates the eye position against a zone table.
type Engine struct {
	table  *Table
	inside map[string]bool
}

func NewEngine(t *Table) *Engine {
	return &Engine{
		table:  t,
		inside: make(map[string]bool, len(t.Zones)),
	}
}

// Zone returns the zone with the given id.
func (e *Engine) Zone(id string) (Zone, bool) {
	for _, z := range e.table.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// Table returns the zone table the engine evaluates.
func (e *Engine) Table() *Table {
	return e.table
}

// Evaluate tests every zone against eye. It reads the overlay but never
// changes it; the only state it keeps is which zones held the eye last time.
func (e *Engine) Evaluate(eye mgl32.Vec3, o *Overlay) Result {
	var r Result

	if w := e.table.Welcome; w != nil && o.IsWelcomeShown() {
		r.Panels = append(r.Panels, Panel{
			ID:          WelcomeID,
			Title:       w.Title,
			Body:        w.Body,
			Dismissible: true,
		})
	}

	for _, z := range e.table.Zones {
		in := z.Bounds.Contains(eye)
		switch {
		case in && !e.inside[z.ID]:
			r.Entered = append(r.Entered, z.ID)
		case !in && e.inside[z.ID]:
			r.Left = append(r.Left, z.ID)
		}
		e.inside[z.ID] = in

		if !in {
			continue
		}
		r.Active = append(r.Active, z.ID)

		if !o.IsShown(z.ID) {
			continue
		}
		r.Panels = append(r.Panels, Panel{
			ID:          z.ID,
			Title:       z.Title,
			Body:        z.Body,
			Dismissible: true,
		})
		if z.PauseCameraOnShow {
			r.Pause = true
		}
	}

	return r
}
