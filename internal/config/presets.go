package config

import "sort"

// Presets are named rotor compositions known to produce good traces.
// Each returns a fresh Config so callers can mutate freely.
var presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"flower":  flowerPreset,
	"orbit":   orbitPreset,
	"weave":   weavePreset,
}

func flowerPreset() *Config {
	cfg := DefaultConfig()
	cfg.Rotors = []RotorConfig{
		{InnerRadius: 260, Thickness: 2, Angle: 0, Velocity: 3},
		{InnerRadius: 90, Thickness: 2, Angle: 0, Velocity: -24},
	}
	cfg.TraceColor = Color{R: 220, G: 80, B: 160}
	return cfg
}

func orbitPreset() *Config {
	cfg := DefaultConfig()
	cfg.DrawRings = true
	cfg.Rotors = []RotorConfig{
		{InnerRadius: 180, Thickness: 3, Angle: 90, Velocity: 2},
		{InnerRadius: 70, Thickness: 3, Angle: 90, Velocity: -11},
		{InnerRadius: 25, Thickness: 3, Angle: 90, Velocity: 37},
	}
	cfg.TraceColor = Color{R: 80, G: 200, B: 255}
	return cfg
}

func weavePreset() *Config {
	cfg := DefaultConfig()
	cfg.Rotors = []RotorConfig{
		{InnerRadius: 210, Thickness: 1, Angle: 45, Velocity: 5},
		{InnerRadius: 140, Thickness: 1, Angle: 45, Velocity: -8},
		{InnerRadius: 70, Thickness: 1, Angle: 45, Velocity: 13},
		{InnerRadius: 35, Thickness: 1, Angle: 45, Velocity: -0.2},
	}
	cfg.BrushSize = 3
	cfg.TraceColor = Color{R: 240, G: 200, B: 60}
	return cfg
}

func GetPreset(name string) *Config {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
