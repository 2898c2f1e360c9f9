// Package input turns imgui keyboard state into key transitions.
package input

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Edge is a key changing state between two polls.
type Edge struct {
	Key  string
	Down bool
}

var keyNames = map[string]imgui.Key{
	"UpArrow":    imgui.KeyUpArrow,
	"DownArrow":  imgui.KeyDownArrow,
	"LeftArrow":  imgui.KeyLeftArrow,
	"RightArrow": imgui.KeyRightArrow,
	"Space":      imgui.KeySpace,
	"Escape":     imgui.KeyEscape,
	"F12":        imgui.KeyF12,
}

func init() {
	for i := range 26 {
		keyNames[string(rune('A'+i))] = imgui.KeyA + imgui.Key(i)
	}
}

// LookupKey resolves a binding name such as "W" or "UpArrow".
func LookupKey(name string) (imgui.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// Poller remembers which watched keys were down at the previous poll.
type Poller struct {
	names []string
	keys  []imgui.Key
	down  []bool
}

// NewPoller watches the named keys. Unknown names are an error.
func NewPoller(names []string) (*Poller, error) {
	names = slices.Clone(names)
	slices.Sort(names)
	names = slices.Compact(names)

	p := &Poller{names: names, down: make([]bool, len(names))}
	for _, name := range names {
		k, ok := LookupKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		p.keys = append(p.keys, k)
	}
	return p, nil
}

// Poll compares the current state reported by isDown with the previous
// poll and returns the transitions in key-name order. Pass imgui.IsKeyDown
// from inside a frame.
func (p *Poller) Poll(isDown func(imgui.Key) bool) []Edge {
	var edges []Edge
	for i, k := range p.keys {
		now := isDown(k)
		if now != p.down[i] {
			p.down[i] = now
			edges = append(edges, Edge{Key: p.names[i], Down: now})
		}
	}
	return edges
}

// Release reports every held key as released, for focus loss.
func (p *Poller) Release() []Edge {
	var edges []Edge
	for i, held := range p.down {
		if held {
			p.down[i] = false
			edges = append(edges, Edge{Key: p.names[i], Down: false})
		}
	}
	return edges
}
