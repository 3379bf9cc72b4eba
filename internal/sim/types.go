package sim

import "github.com/san-kum/spiro/internal/rotor"

// Color is an RGB triple handed to render surfaces with each draw request.
type Color struct {
	R, G, B uint8
}

// TraceLayer is the persistent surface: pixels plotted here stay visible for
// the rest of the run. Implementations clip out-of-bounds points silently.
type TraceLayer interface {
	DrawPixel(p rotor.Coord, c Color, brush int)
}

// RingLayer is the transient surface for live rotor rings. It is cleared and
// fully replaced every tick; clearing it must never touch the trace layer.
type RingLayer interface {
	Plot(p rotor.Coord, c Color)
	Clear()
}

// Presenter flips the composited frame to the viewer.
type Presenter interface {
	Present() error
}

// Observer receives every tick's tip coordinate.
type Observer interface {
	OnTick(tick int, tip rotor.Coord)
}

// Config bounds a loop run. MaxTicks of zero means run until the context is
// cancelled; the animation has no natural termination.
type Config struct {
	MaxTicks  int
	DrawRings bool
}

// Result collects what a bounded run produced.
type Result struct {
	Points []rotor.Coord
	Ticks  int
}
