// Package gui renders the spirograph in a pixel window using Ebitengine.
// The persistent trace lives on an offscreen image that is never cleared
// during a run; rotor rings are drawn directly on the frame, so they vanish
// and redraw naturally every frame.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/san-kum/spiro/internal/chain"
	"github.com/san-kum/spiro/internal/config"
	"github.com/san-kum/spiro/internal/rotor"
	"github.com/san-kum/spiro/internal/sim"
)

// traceImage adapts an ebiten image to the persistent trace surface. The
// brush square starts half a brush before the point and spans brush+1 pixels
// per side; anything outside the image is clipped.
type traceImage struct {
	img  *ebiten.Image
	w, h int
}

func (t *traceImage) DrawPixel(p rotor.Coord, c sim.Color, brush int) {
	rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	offset := brush / 2
	x := int(p.X) - offset
	y := int(p.Y) - offset
	for row := y; row <= y+brush; row++ {
		for col := x; col <= x+brush; col++ {
			if col >= 0 && col < t.w && row >= 0 && row < t.h {
				t.img.Set(col, row, rgba)
			}
		}
	}
}

// Game drives one chain per window. It satisfies ebiten.Game.
type Game struct {
	cfg   *config.Config
	ch    *chain.Chain
	acc   *sim.Accumulator
	trace *traceImage

	ringColor color.RGBA
	paused    bool
	prevKey   map[ebiten.Key]bool
	lastErr   error
}

func newGame(cfg *config.Config) (*Game, error) {
	ch, err := chain.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		ch:      ch,
		prevKey: map[ebiten.Key]bool{},
	}
	g.attachSurfaces()
	return g, nil
}

func (g *Game) attachSurfaces() {
	g.trace = &traceImage{
		img: ebiten.NewImage(g.cfg.Width, g.cfg.Height),
		w:   g.cfg.Width,
		h:   g.cfg.Height,
	}
	traceColor := sim.Color{R: g.cfg.TraceColor.R, G: g.cfg.TraceColor.G, B: g.cfg.TraceColor.B}
	g.acc = sim.NewAccumulator(g.trace, traceColor, g.cfg.BrushSize)
	g.ringColor = color.RGBA{R: g.cfg.RingColor.R, G: g.cfg.RingColor.G, B: g.cfg.RingColor.B, A: 255}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyR) {
		g.ch.Reset()
		g.acc.Reset()
		g.trace.img.Clear()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
		}
	}

	if !g.paused {
		g.ch.Tick()
		g.acc.Record(g.ch.Tip())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(g.trace.img, nil)

	if g.cfg.DrawRings {
		for _, p := range g.ch.WorldPixels() {
			x, y := int(p.X), int(p.Y)
			if x >= 0 && x < g.cfg.Width && y >= 0 && y < g.cfg.Height {
				screen.Set(x, y, g.ringColor)
			}
		}
	}

	status := "Space: pause  R: reset  O: open config  Esc/Q: quit"
	if g.paused {
		status = "PAUSED - " + status
	}
	if g.lastErr != nil {
		status += " | error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// openConfigDialog lets the user swap in another validated configuration.
// The editor/picker stays outside the core: only an already-parsed,
// validated Config ever reaches the chain.
func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Spiro Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ch, err := chain.FromConfig(cfg)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.ch = ch
	g.lastErr = nil
	g.attachSurfaces()
	return nil
}

// Run opens the window and animates until the user quits.
func Run(cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("spiro")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
