package control

import (
	"fmt"
	"slices"
)

// Bindings maps key names to directions.
type Bindings map[string]Direction

// NewBindings builds a key table from direction name to key names, as found
// in configuration. A key bound to two directions is an error.
func NewBindings(byDirection map[string][]string) (Bindings, error) {
	b := make(Bindings)
	for name, keys := range byDirection {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if prev, ok := b[key]; ok && prev != d {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, d)
			}
			b[key] = d
		}
	}
	return b, nil
}

// Lookup returns the direction bound to key, or DirectionNone.
func (b Bindings) Lookup(key string) Direction {
	return b[key]
}

// Keys returns every bound key name in sorted order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
