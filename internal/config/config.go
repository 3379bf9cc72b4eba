package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultBrushSize = 5
)

// Config is the declarative description of a spirograph: screen geometry,
// colors, and the ordered rotor descriptors. It is built once, validated
// once, and passed by ownership into chain construction; the core never
// looks anything up ambiently.
type Config struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Anchor     Anchor        `yaml:"anchor"`
	BrushSize  int           `yaml:"brush_size"`
	TraceColor Color         `yaml:"trace_color"`
	RingColor  Color         `yaml:"ring_color"`
	DrawRings  bool          `yaml:"draw_rings"`
	Rotors     []RotorConfig `yaml:"rotors"`
}

// Anchor fixes the root rotor's reference position on screen.
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RotorConfig describes one rotor before construction.
type RotorConfig struct {
	InnerRadius float64 `yaml:"inner_radius"`
	Thickness   float64 `yaml:"thickness"`
	Angle       float64 `yaml:"angle"`
	Velocity    float64 `yaml:"velocity"`
}

// DefaultConfig reproduces the classic twenty-rotor composition: a column of
// equally sized rotors at angle 90 with alternating velocities, finished by
// four small slow rotors that bend the trace.
func DefaultConfig() *Config {
	w, h := DefaultWidth, DefaultHeight
	z := 0.1 * float64(min(w, h))

	velocities := []float64{
		5, -5, 0, -115, 0, 50, 0, 90, -120, 0,
		-0.05, 0.05, 0, 60, -15, 0.05,
	}
	tail := []float64{-0.05, 0, 0.15, 0}

	rotors := make([]RotorConfig, 0, len(velocities)+len(tail))
	for _, v := range velocities {
		rotors = append(rotors, RotorConfig{InnerRadius: z, Thickness: 1, Angle: 90, Velocity: v})
	}
	for _, v := range tail {
		rotors = append(rotors, RotorConfig{InnerRadius: 10, Thickness: 1, Angle: 90, Velocity: v})
	}

	return &Config{
		Width:      w,
		Height:     h,
		Anchor:     Anchor{X: float64(w) * 0.5, Y: float64(h) * 0.5},
		BrushSize:  DefaultBrushSize,
		TraceColor: Color{R: 155, G: 10, B: 20},
		RingColor:  Color{R: 255, G: 255, B: 255},
		DrawRings:  false,
		Rotors:     rotors,
	}
}

// Validate fails fast on structural errors; nothing is silently clamped.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.BrushSize < 1 {
		return fmt.Errorf("brush size must be at least 1, got %d", c.BrushSize)
	}
	if len(c.Rotors) == 0 {
		return fmt.Errorf("at least one rotor is required")
	}
	for i, r := range c.Rotors {
		if r.InnerRadius < 0 {
			return fmt.Errorf("rotor %d: inner radius must be non-negative, got %f", i, r.InnerRadius)
		}
		if r.Thickness < 0 {
			return fmt.Errorf("rotor %d: thickness must be non-negative, got %f", i, r.Thickness)
		}
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
