package rotor

import "math"

// Coord is a 2D point. Held by value; equality is exact field comparison.
type Coord struct {
	X, Y float64
}

func (c Coord) Equal(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

func (c Coord) Clone() Coord {
	return Coord{X: c.X, Y: c.Y}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Ring describes the annulus around a rotor's center.
type Ring struct {
	Inner     float64
	Thickness float64
}

func (r Ring) Outer() float64 {
	return r.Inner + r.Thickness
}

// Midline is the orbit radius for a child rotor.
func (r Ring) Midline() float64 {
	return r.Inner + r.Thickness/2
}

// Rotor is one circle in the chain. Center is recomputed every tick from the
// parent rotor; mask is computed once at construction and never mutated.
type Rotor struct {
	Angle    float64 // degrees; wrapped into [0,360) on update
	Velocity float64 // degrees per tick, signed
	Ring     Ring
	Center   Coord
	DrawRing bool

	mask  []Coord
	world []Coord
}

func New(drawRing bool, angle float64, ring Ring, velocity float64) *Rotor {
	r := &Rotor{
		Angle:    angle,
		Velocity: velocity,
		Ring:     ring,
		DrawRing: drawRing,
	}
	if drawRing {
		r.mask = calcMask(ring)
		r.world = make([]Coord, len(r.mask))
		copy(r.world, r.mask)
	}
	return r
}

// calcMask rasterizes the annulus as integer offsets around the origin:
// every (dx, dy) in the bounding square with inner² < dx²+dy² <= outer².
// Brute-force scan; radii are screen-fraction scale and this runs once.
func calcMask(ring Ring) []Coord {
	outer := ring.Outer()
	inner2 := ring.Inner * ring.Inner
	outer2 := outer * outer

	n := int(math.Ceil(outer))
	var mask []Coord
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			d2 := float64(dx*dx + dy*dy)
			if d2 > inner2 && d2 <= outer2 {
				mask = append(mask, Coord{X: float64(dx), Y: float64(dy)})
			}
		}
	}
	return mask
}

// Mask returns the local annulus offsets. Empty unless DrawRing is set.
// Callers must not modify the returned slice.
func (r *Rotor) Mask() []Coord {
	return r.mask
}

// WorldPixels returns the mask translated by the current center, as of the
// last RecalcCenter or SetCenter call.
func (r *Rotor) WorldPixels() []Coord {
	return r.world
}

// SetCenter places the rotor directly and refreshes its world pixels.
func (r *Rotor) SetCenter(c Coord) {
	r.Center = c
	r.refreshWorld()
}

// RecalcCenter orbits this rotor around parent at the parent ring's midline
// radius, using this rotor's own (pre-update) angle. The result is truncated
// toward zero: integer pixel snapping every frame, deliberately not rounding.
func (r *Rotor) RecalcCenter(parent *Rotor) {
	orbit := parent.Ring.Midline()
	rad := r.Angle / 180 * math.Pi

	r.Center.X = math.Trunc(parent.Center.X + orbit*math.Cos(rad))
	r.Center.Y = math.Trunc(parent.Center.Y + orbit*math.Sin(rad))
	r.refreshWorld()
}

func (r *Rotor) refreshWorld() {
	if !r.DrawRing {
		return
	}
	for i, p := range r.mask {
		r.world[i] = p.Add(r.Center)
	}
}

// UpdateAngle advances the angle by one tick. The advanced angle is mirrored
// through the pre-update sign and then floor-wrapped, so the result is always
// in [0,360): a negative angle is reflected onto the positive branch on its
// first update.
func (r *Rotor) UpdateAngle() {
	sign := 1.0
	if r.Angle < 0 {
		sign = -1.0
	}
	r.Angle = floorMod(sign*(r.Angle+r.Velocity), 360)
}

// AddVelocity accumulates the parent's angular velocity into this rotor.
// Called once per rotor during chain wiring, never per tick.
func (r *Rotor) AddVelocity(other *Rotor) {
	r.Velocity += other.Velocity
}

// floorMod is the floored modulo: the result has the sign of m (here always
// non-negative), unlike math.Mod which keeps the dividend's sign.
func floorMod(a, m float64) float64 {
	v := math.Mod(a, m)
	if v < 0 {
		v += m
	}
	return v
}
