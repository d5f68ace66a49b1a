package config

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
)

// DefaultPreset is the configuration run when none is named.
const DefaultPreset = "falcon9"

var ErrUnknownPreset = errors.New("config: unknown preset")

//go:embed presets.yaml
var presetsYAML []byte

var Presets = mustParse(presetsYAML)

func mustParse(data []byte) map[string]*Config {
	presets, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return presets
}

// GetPreset returns a copy of the named preset, so callers cannot alter the
// catalogue.
func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c := *cfg
	return &c, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
