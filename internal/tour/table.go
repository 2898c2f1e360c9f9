package tour

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed zones/*.yaml
var builtinFS embed.FS

// BuiltinTables lists the zone tables compiled into the binary.
func BuiltinTables() []string {
	entries, err := builtinFS.ReadDir("zones")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// LoadTable resolves a built-in table name or reads a YAML file from disk.
func LoadTable(nameOrPath string) (*Table, error) {
	data, err := builtinFS.ReadFile("zones/" + nameOrPath + ".yaml")
	fromDisk := err != nil
	if fromDisk {
		data, err = os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("zone table %q: not built in (%s) and %w",
				nameOrPath, strings.Join(BuiltinTables(), ", "), err)
		}
	}

	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("zone table %q: %w", nameOrPath, err)
	}
	if t.Name == "" {
		t.Name = nameOrPath
	}
	if fromDisk {
		// Cue paths are relative to the table file.
		dir := filepath.Dir(nameOrPath)
		for i, z := range t.Zones {
			if z.Audio != "" && !filepath.IsAbs(z.Audio) {
				t.Zones[i].Audio = filepath.Join(dir, z.Audio)
			}
		}
	}
	return t, nil
}

// ParseTable decodes and validates a zone table. Unknown keys are rejected.
func ParseTable(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
