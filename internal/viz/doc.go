// Package viz renders the spirograph in the terminal.
//
// It implements a live view on the Bubble Tea framework:
//
//   - [Model]: interactive live animation of a rotor chain
//   - [Canvas]: Braille-based pixel canvas, one per render layer
//   - [Layer]: adapter mapping screen coordinates onto a canvas
//
// The trace layer is persistent for the whole session; the ring layer is
// cleared and redrawn every frame. The two are composited at view time so
// clearing rings can never erase trace pixels.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	R     - Reset chain and clear the trace
//	C     - Toggle live rotor rings
//	T     - Cycle color themes
//	?     - Toggle help overlay
//	Q     - Quit
package viz
