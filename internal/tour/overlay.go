package tour

// Overlay tracks which panels the visitor has closed during this session.
// A closed panel stays closed; nothing re-arms it.
type Overlay struct {
	firstRun bool
	shown    map[string]bool
}

// NewOverlay marks every zone in the table as shown. The welcome panel is
// pending only if the table defines one.
func NewOverlay(t *Table) *Overlay {
	o := &Overlay{
		firstRun: t.Welcome != nil,
		shown:    make(map[string]bool, len(t.Zones)),
	}
	for _, z := range t.Zones {
		o.shown[z.ID] = true
	}
	return o
}

// Dismiss hides the panel for id. Unknown ids are ignored.
func (o *Overlay) Dismiss(id string) {
	if _, ok := o.shown[id]; ok {
		o.shown[id] = false
	}
}

// IsShown reports whether the panel for id is still visible when its zone
// is active. Unknown ids report false.
func (o *Overlay) IsShown(id string) bool {
	return o.shown[id]
}

func (o *Overlay) DismissWelcome() {
	o.firstRun = false
}

func (o *Overlay) IsWelcomeShown() bool {
	return o.firstRun
}
