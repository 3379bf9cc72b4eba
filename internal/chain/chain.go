// Package chain owns the ordered rotor sequence and advances it tick by tick.
package chain

import (
	"fmt"

	"github.com/san-kum/spiro/internal/config"
	"github.com/san-kum/spiro/internal/rotor"
)

// Chain is a root-to-tip dependency sequence of rotors. rotors[0] is anchored
// at construction; every later rotor orbits its predecessor. No rotor is
// added or removed after construction.
type Chain struct {
	rotors []*rotor.Rotor
	init   []snapshot
}

type snapshot struct {
	angle    float64
	velocity float64
	center   rotor.Coord
}

// New wires a chain from already-constructed rotors. Rotor 0 is seeded from a
// synthetic reference rotor (angle 0, velocity 0, ring inner=1 thickness=1)
// centered on anchor, so the same recalculation rule applies to every index.
// Velocities accumulate forward in index order, exactly once.
func New(rotors []*rotor.Rotor, anchor rotor.Coord) (*Chain, error) {
	if len(rotors) == 0 {
		return nil, fmt.Errorf("chain requires at least one rotor")
	}

	ref := rotor.New(false, 0, rotor.Ring{Inner: 1, Thickness: 1}, 0)
	ref.SetCenter(anchor)
	rotors[0].RecalcCenter(ref)

	for i := 1; i < len(rotors); i++ {
		rotors[i].AddVelocity(rotors[i-1])
	}

	c := &Chain{rotors: rotors}
	c.init = make([]snapshot, len(rotors))
	for i, r := range c.rotors {
		c.init[i] = snapshot{angle: r.Angle, velocity: r.Velocity, center: r.Center}
	}
	return c, nil
}

// FromConfig builds rotors from a validated configuration and wires them.
// Radii are re-checked here so a chain can never be built from a descriptor
// that would silently change the annulus shape.
func FromConfig(cfg *config.Config) (*Chain, error) {
	if len(cfg.Rotors) == 0 {
		return nil, fmt.Errorf("config has no rotors")
	}

	rotors := make([]*rotor.Rotor, len(cfg.Rotors))
	for i, rc := range cfg.Rotors {
		if rc.InnerRadius < 0 {
			return nil, fmt.Errorf("rotor %d: negative inner radius %f", i, rc.InnerRadius)
		}
		if rc.Thickness < 0 {
			return nil, fmt.Errorf("rotor %d: negative thickness %f", i, rc.Thickness)
		}
		ring := rotor.Ring{Inner: rc.InnerRadius, Thickness: rc.Thickness}
		rotors[i] = rotor.New(cfg.DrawRings, rc.Angle, ring, rc.Velocity)
	}

	anchor := rotor.Coord{X: cfg.Anchor.X, Y: cfg.Anchor.Y}
	return New(rotors, anchor)
}

// Tick advances the chain by one frame. Centers are recomputed strictly
// root-to-tip first, each from the parent's center computed this same tick
// and this rotor's previous-tick angle; only then do all angles update.
// Swapping the two passes changes the trace shape.
func (c *Chain) Tick() {
	for i := 1; i < len(c.rotors); i++ {
		c.rotors[i].RecalcCenter(c.rotors[i-1])
	}
	for _, r := range c.rotors {
		r.UpdateAngle()
	}
}

// Tip returns the last rotor's center, the point the trace accumulates.
func (c *Chain) Tip() rotor.Coord {
	return c.rotors[len(c.rotors)-1].Center
}

// WorldPixels concatenates, in rotor index order, the world pixels of every
// rotor that draws its ring. Empty when no rotor draws.
func (c *Chain) WorldPixels() []rotor.Coord {
	var pixels []rotor.Coord
	for _, r := range c.rotors {
		if r.DrawRing {
			pixels = append(pixels, r.WorldPixels()...)
		}
	}
	return pixels
}

func (c *Chain) Len() int {
	return len(c.rotors)
}

// Rotors exposes the sequence for rendering. Callers must not reorder it.
func (c *Chain) Rotors() []*rotor.Rotor {
	return c.rotors
}

// Reset restores every rotor to its post-construction state: initial angle,
// wired velocity, and seeded center. Re-running N ticks after a reset
// reproduces the same center sequence.
func (c *Chain) Reset() {
	for i, r := range c.rotors {
		r.Angle = c.init[i].angle
		r.Velocity = c.init[i].velocity
		r.SetCenter(c.init[i].center)
	}
}
