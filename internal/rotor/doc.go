// Package rotor implements the kinematic building block of the spirograph:
// a circle whose center orbits its parent's center.
//
//   - [Coord]: 2D point value with exact equality
//   - [Ring]: annulus geometry (inner radius + thickness)
//   - [Rotor]: angle, angular velocity, ring, and the rasterized annulus mask
//
// A rotor's center is recomputed from its parent every tick via
// [Rotor.RecalcCenter]; the orbit radius is the parent ring's midline
// (inner + thickness/2). Centers are truncated toward zero to integer pixel
// positions, which is what gives traces their characteristic stepped look.
//
// # Angle Update
//
// [Rotor.UpdateAngle] mirrors the advanced angle through the pre-update sign
// before wrapping:
//
//	angle = (sign(angle) * (angle + velocity)) mod 360
//
// with a floor modulo, so the result is always in [0,360). A rotor whose
// angle starts negative is reflected onto the positive branch on its first
// update; the reflection is intentional and visibly shapes the traced curve.
package rotor
