package viz

import (
	"strings"

	"github.com/san-kum/spiro/internal/rotor"
	"github.com/san-kum/spiro/internal/sim"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-dot pixel grid. The drawable area in sub-pixels is
// (Width*2) x (Height*4). Out-of-bounds sets are ignored, never errors.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y), silently clipping anything outside.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Compose renders this canvas with other overlaid on top, OR-ing the dot
// patterns cell by cell. Used to show the transient ring layer over the
// persistent trace without letting either clear the other.
func (c *Canvas) Compose(other *Canvas) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			merged := r
			if other != nil && i < other.Height && j < other.Width {
				merged |= other.Grid[i][j]
			}
			b.WriteRune(merged)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// Layer maps screen-space coordinates onto a braille canvas and implements
// the sim surface interfaces. A 1920-wide screen collapses onto 160
// sub-pixels, so brushes shrink by the same factor.
type Layer struct {
	canvas *Canvas
	sx, sy float64
}

func NewLayer(canvas *Canvas, screenW, screenH int) *Layer {
	return &Layer{
		canvas: canvas,
		sx:     float64(canvas.Width*2) / float64(screenW),
		sy:     float64(canvas.Height*4) / float64(screenH),
	}
}

// DrawPixel plots a brush-sized square whose top-left sits half a brush
// before p, matching the persistent-trace brush semantics.
func (l *Layer) DrawPixel(p rotor.Coord, _ sim.Color, brush int) {
	size := int(float64(brush) * l.sx)
	x := int(p.X*l.sx) - size/2
	y := int(p.Y*l.sy) - size/2
	for row := y; row <= y+size; row++ {
		for col := x; col <= x+size; col++ {
			l.canvas.Set(col, row)
		}
	}
}

// Plot lights a single mapped sub-pixel on the transient layer.
func (l *Layer) Plot(p rotor.Coord, _ sim.Color) {
	l.canvas.Set(int(p.X*l.sx), int(p.Y*l.sy))
}

func (l *Layer) Clear() {
	l.canvas.Clear()
}
