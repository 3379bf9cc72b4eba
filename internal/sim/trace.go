package sim

import "github.com/san-kum/spiro/internal/rotor"

// Accumulator owns cumulative-draw semantics for the trace: every recorded
// tip is kept for the life of the run and, when a layer is attached, plotted
// once with the configured brush. It never erases anything; transient layers
// clearing themselves each frame cannot affect it.
type Accumulator struct {
	layer  TraceLayer
	color  Color
	brush  int
	points []rotor.Coord
}

// NewAccumulator builds a trace accumulator. layer may be nil for headless
// runs that only collect points.
func NewAccumulator(layer TraceLayer, c Color, brush int) *Accumulator {
	return &Accumulator{
		layer:  layer,
		color:  c,
		brush:  brush,
		points: make([]rotor.Coord, 0, 1024),
	}
}

// Record appends the point and plots it on the persistent layer.
func (a *Accumulator) Record(p rotor.Coord) {
	a.points = append(a.points, p.Clone())
	if a.layer != nil {
		a.layer.DrawPixel(p, a.color, a.brush)
	}
}

// Points returns every recorded tip in tick order.
func (a *Accumulator) Points() []rotor.Coord {
	return a.points
}

func (a *Accumulator) Len() int {
	return len(a.points)
}

func (a *Accumulator) Brush() int {
	return a.brush
}

// Reset drops recorded points. The attached layer is not cleared here; the
// caller owns layer lifecycle.
func (a *Accumulator) Reset() {
	a.points = a.points[:0]
}
