// Package tour decides which exhibit panels a visitor sees while walking
// through the museum.
package tour

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Interval is an open range (Min, Max) on one axis.
type Interval struct {
	Min float32
	Max float32
}

// Contains reports whether Min < v < Max.
func (iv Interval) Contains(v float32) bool {
	return v > iv.Min && v < iv.Max
}

// UnmarshalYAML reads an interval written as a [min, max] pair.
func (iv *Interval) UnmarshalYAML(value *yaml.Node) error {
	var pair []float32
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: interval needs [min, max], got %d values", value.Line, len(pair))
	}
	iv.Min, iv.Max = pair[0], pair[1]
	return nil
}

// MarshalYAML writes the interval as a flow-style pair.
func (iv Interval) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float32{iv.Min, iv.Max} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: fmt.Sprintf("%g", v),
		})
	}
	return node, nil
}

// Bounds is an axis-aligned box over two or three eye coordinates.
// A nil axis is unconstrained.
type Bounds struct {
	X *Interval `yaml:"x,omitempty"`
	Y *Interval `yaml:"y,omitempty"`
	Z *Interval `yaml:"z,omitempty"`
}

// Axes returns how many coordinates the box constrains.
func (b Bounds) Axes() int {
	n := 0
	for _, iv := range []*Interval{b.X, b.Y, b.Z} {
		if iv != nil {
			n++
		}
	}
	return n
}

// Contains reports whether p lies strictly inside every constrained axis.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for i, iv := range []*Interval{b.X, b.Y, b.Z} {
		if iv != nil && !iv.Contains(p[i]) {
			return false
		}
	}
	return true
}

// Zone is a trigger region attached to one exhibit.
type Zone struct {
	ID                string   `yaml:"id"`
	Title             string   `yaml:"title"`
	Body              []string `yaml:"body"`
	Bounds            Bounds   `yaml:"bounds"`
	PauseCameraOnShow bool     `yaml:"pause_camera_on_show,omitempty"`
	Audio             string   `yaml:"audio,omitempty"`
}

// Welcome is the panel shown once when the tour starts.
type Welcome struct {
	Title string   `yaml:"title"`
	Body  []string `yaml:"body"`
}

// Pose is a starting camera placement that overrides the configured one.
type Pose struct {
	Eye    mgl32.Vec3 `yaml:"eye"`
	Center mgl32.Vec3 `yaml:"center"`
	Up     mgl32.Vec3 `yaml:"up"`
}

// Table is one complete set of zones for a museum layout.
type Table struct {
	Name    string   `yaml:"name"`
	Start   *Pose    `yaml:"start,omitempty"`
	Welcome *Welcome `yaml:"welcome,omitempty"`
	Zones   []Zone   `yaml:"zones"`
}

// Validate checks every zone and reports all problems at once.
func (t *Table) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(t.Zones))

	for i, z := range t.Zones {
		name := z.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Errorf("zone %s: missing id", name))
		} else if seen[z.ID] {
			errs = append(errs, fmt.Errorf("zone %s: duplicate id", name))
		}
		seen[z.ID] = true

		if z.ID == WelcomeID {
			errs = append(errs, fmt.Errorf("zone %s: id is reserved", name))
		}
		if z.Title == "" {
			errs = append(errs, fmt.Errorf("zone %s: missing title", name))
		}
		if z.Bounds.Axes() < 2 {
			errs = append(errs, fmt.Errorf("zone %s: bounds must constrain at least two axes", name))
		}
		for axis, iv := range []*Interval{z.Bounds.X, z.Bounds.Y, z.Bounds.Z} {
			if iv != nil && !(iv.Min < iv.Max) {
				errs = append(errs, fmt.Errorf("zone %s: %c interval is empty (%g, %g)", name, "xyz"[axis], iv.Min, iv.Max))
			}
		}
	}

	if t.Start != nil {
		if t.Start.Eye == t.Start.Center {
			errs = append(errs, errors.New("start: eye and center must differ"))
		}
		if t.Start.Up.Len() == 0 {
			errs = append(errs, errors.New("start: up must be non-zero"))
		}
	}

	return errors.Join(errs...)
}
