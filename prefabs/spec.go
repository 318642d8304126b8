package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SolidSpec is one axis-aligned static box, centred on X, Y.
type SolidSpec struct {
	Name     string  `yaml:"name"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
}

type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// ArenaSpec is the static test level: solids plus the character spawn.
type ArenaSpec struct {
	Name   string      `yaml:"name"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Spawn  SpawnSpec   `yaml:"spawn"`
	Solids []SolidSpec `yaml:"solids"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	for i, s := range spec.Solids {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("prefabs: %s: solid %d (%q) has empty size", filename, i, s.Name)
		}
	}
	return &spec, nil
}
