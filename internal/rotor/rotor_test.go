package rotor

import (
	"math"
	"testing"
)

func TestCoord(t *testing.T) {
	a := Coord{X: 1, Y: 2}
	b := Coord{X: 1, Y: 2}

	if !a.Equal(b) {
		t.Error("equal coords reported unequal")
	}
	if a.Equal(Coord{X: 1, Y: 3}) {
		t.Error("unequal coords reported equal")
	}

	c := a.Clone()
	c.X = 99
	if a.X == 99 {
		t.Error("clone is not independent")
	}

	sum := a.Add(Coord{X: 10, Y: 20})
	if sum.X != 11 || sum.Y != 22 {
		t.Errorf("Add failed: got %v", sum)
	}
}

func TestRing(t *testing.T) {
	r := Ring{Inner: 10, Thickness: 2}
	if r.Outer() != 12 {
		t.Errorf("Outer() = %f, want 12", r.Outer())
	}
	if r.Midline() != 11 {
		t.Errorf("Midline() = %f, want 11", r.Midline())
	}
}

func TestCalcMask_Band(t *testing.T) {
	ring := Ring{Inner: 10, Thickness: 2}
	r := New(true, 0, ring, 0)

	mask := r.Mask()
	if len(mask) == 0 {
		t.Fatal("expected non-empty mask")
	}

	inner2 := ring.Inner * ring.Inner
	outer2 := ring.Outer() * ring.Outer()
	for _, p := range mask {
		d2 := p.X*p.X + p.Y*p.Y
		if d2 <= inner2 || d2 > outer2 {
			t.Errorf("mask point (%v, %v) outside annulus band: d2=%f", p.X, p.Y, d2)
		}
	}
}

func TestCalcMask_NoDraw(t *testing.T) {
	r := New(false, 0, Ring{Inner: 10, Thickness: 2}, 0)
	if len(r.Mask()) != 0 {
		t.Error("non-drawing rotor should have an empty mask")
	}
	if len(r.WorldPixels()) != 0 {
		t.Error("non-drawing rotor should have no world pixels")
	}
}

func TestRecalcCenter(t *testing.T) {
	parent := New(false, 0, Ring{Inner: 10, Thickness: 2}, 0)
	parent.SetCenter(Coord{X: 100, Y: 100})

	tests := []struct {
		name  string
		angle float64
		want  Coord
	}{
		{"angle 0", 0, Coord{X: 111, Y: 100}},
		{"angle 90", 90, Coord{X: 100, Y: 111}},
		{"angle 180", 180, Coord{X: 89, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := New(false, tt.angle, Ring{Inner: 5, Thickness: 1}, 0)
			child.RecalcCenter(parent)
			if !child.Center.Equal(tt.want) {
				t.Errorf("center = %v, want %v", child.Center, tt.want)
			}
		})
	}
}

// Truncation is toward zero, not floor: 11*cos(135°) ≈ -7.778 must land on
// -7, where rounding or flooring would give -8.
func TestRecalcCenter_TruncatesTowardZero(t *testing.T) {
	parent := New(false, 0, Ring{Inner: 10, Thickness: 2}, 0)
	parent.SetCenter(Coord{X: 0, Y: 0})

	child := New(false, 135, Ring{Inner: 5, Thickness: 1}, 0)
	child.RecalcCenter(parent)

	if child.Center.X != -7 {
		t.Errorf("X = %f, want -7 (truncation toward zero)", child.Center.X)
	}
	if child.Center.Y != 7 {
		t.Errorf("Y = %f, want 7", child.Center.Y)
	}
}

func TestRecalcCenter_Deterministic(t *testing.T) {
	parent := New(false, 0, Ring{Inner: 33, Thickness: 3}, 0)
	parent.SetCenter(Coord{X: 17, Y: -41})

	child := New(false, 123.456, Ring{Inner: 5, Thickness: 1}, 0)
	child.RecalcCenter(parent)
	first := child.Center

	child.RecalcCenter(parent)
	if !child.Center.Equal(first) {
		t.Errorf("recalc not deterministic: %v then %v", first, child.Center)
	}
}

func TestRecalcCenter_WorldPixels(t *testing.T) {
	parent := New(false, 0, Ring{Inner: 10, Thickness: 2}, 0)
	parent.SetCenter(Coord{X: 50, Y: 50})

	child := New(true, 0, Ring{Inner: 3, Thickness: 1}, 0)
	child.RecalcCenter(parent)

	mask := child.Mask()
	world := child.WorldPixels()
	if len(world) != len(mask) {
		t.Fatalf("world has %d points, mask has %d", len(world), len(mask))
	}
	for i := range mask {
		want := mask[i].Add(child.Center)
		if !world[i].Equal(want) {
			t.Errorf("world[%d] = %v, want %v", i, world[i], want)
		}
	}
}

func TestUpdateAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		velocity float64
		want     float64
	}{
		{"simple advance", 0, 10, 10},
		{"wrap at 360", 350, 20, 10},
		{"zero velocity non-negative", 42, 0, 42},
		{"normalize above 360", 370, 0, 10},
		{"negative angle reflected", -10, 5, 5},
		{"negative angle overtaken by velocity", -10, 20, 350},
		{"negative velocity", 10, -30, 340},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(false, tt.angle, Ring{Inner: 1, Thickness: 1}, tt.velocity)
			r.UpdateAngle()
			if math.Abs(r.Angle-tt.want) > 1e-12 {
				t.Errorf("angle = %f, want %f", r.Angle, tt.want)
			}
		})
	}
}

func TestUpdateAngle_ZeroVelocityFixed(t *testing.T) {
	r := New(false, 42, Ring{Inner: 1, Thickness: 1}, 0)
	for i := 0; i < 5; i++ {
		r.UpdateAngle()
		if r.Angle != 42 {
			t.Fatalf("tick %d: angle drifted to %f", i, r.Angle)
		}
	}
}

// The sign multiply binds before the wrap, so a negative angle is reflected
// onto the positive branch by its first update and then advances normally,
// never returning to negative values.
func TestUpdateAngle_NegativeAngleReflectsThenAdvances(t *testing.T) {
	r := New(false, -10, Ring{Inner: 1, Thickness: 1}, 5)

	for i, want := range []float64{5, 10, 15} {
		r.UpdateAngle()
		if r.Angle != want {
			t.Fatalf("update %d: angle = %f, want %f", i+1, r.Angle, want)
		}
	}
}

func TestUpdateAngle_NegativeAngleZeroVelocityFixedAfterReflection(t *testing.T) {
	r := New(false, -10, Ring{Inner: 1, Thickness: 1}, 0)

	r.UpdateAngle()
	if r.Angle != 10 {
		t.Fatalf("first update: angle = %f, want 10", r.Angle)
	}
	for i := 0; i < 5; i++ {
		r.UpdateAngle()
		if r.Angle != 10 {
			t.Fatalf("angle drifted to %f after reflection", r.Angle)
		}
	}
}

func TestAddVelocity(t *testing.T) {
	a := New(false, 0, Ring{Inner: 1, Thickness: 1}, 5)
	b := New(false, 0, Ring{Inner: 1, Thickness: 1}, -3)
	a.AddVelocity(b)
	if a.Velocity != 2 {
		t.Errorf("velocity = %f, want 2", a.Velocity)
	}
	if b.Velocity != -3 {
		t.Errorf("other rotor's velocity changed: %f", b.Velocity)
	}
}
