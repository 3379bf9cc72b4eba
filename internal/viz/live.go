package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spiro/internal/chain"
	"github.com/san-kum/spiro/internal/config"
	"github.com/san-kum/spiro/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model animates a rotor chain on two braille layers: a persistent trace and
// a transient ring overlay redrawn every frame.
type Model struct {
	ch  *chain.Chain
	acc *sim.Accumulator
	cfg *config.Config

	traceCanvas *Canvas
	ringCanvas  *Canvas
	traceLayer  *Layer
	ringLayer   *Layer

	ringColor sim.Color
	showRings bool
	running   bool
	showHelp  bool
	ticks     int
	fps       int
	tipX      []float64
}

// NewModel wires the chain to fresh render layers sized for the terminal.
func NewModel(ch *chain.Chain, cfg *config.Config, fps int) Model {
	traceCanvas := NewCanvas(canvasWidth, canvasHeight)
	ringCanvas := NewCanvas(canvasWidth, canvasHeight)
	traceLayer := NewLayer(traceCanvas, cfg.Width, cfg.Height)

	traceColor := sim.Color{R: cfg.TraceColor.R, G: cfg.TraceColor.G, B: cfg.TraceColor.B}
	acc := sim.NewAccumulator(traceLayer, traceColor, cfg.BrushSize)

	return Model{
		ch:          ch,
		acc:         acc,
		cfg:         cfg,
		traceCanvas: traceCanvas,
		ringCanvas:  ringCanvas,
		traceLayer:  traceLayer,
		ringLayer:   NewLayer(ringCanvas, cfg.Width, cfg.Height),
		ringColor:   sim.Color{R: cfg.RingColor.R, G: cfg.RingColor.G, B: cfg.RingColor.B},
		showRings:   cfg.DrawRings,
		running:     true,
		fps:         fps,
		tipX:        make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "c":
			m.showRings = !m.showRings
			if !m.showRings {
				m.ringCanvas.Clear()
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the chain one tick: record the tip on the persistent layer,
// then fully replace the ring overlay.
func (m *Model) step() {
	m.ch.Tick()
	tip := m.ch.Tip()
	m.acc.Record(tip)
	m.ticks++

	m.tipX = append(m.tipX, tip.X)
	if len(m.tipX) > historyCapacity {
		m.tipX = m.tipX[1:]
	}

	if m.showRings {
		m.ringLayer.Clear()
		for _, p := range m.ch.WorldPixels() {
			m.ringLayer.Plot(p, m.ringColor)
		}
	}
}

// reset restores the chain and wipes both layers.
func (m *Model) reset() {
	m.ch.Reset()
	m.acc.Reset()
	m.traceCanvas.Clear()
	m.ringCanvas.Clear()
	m.tipX = m.tipX[:0]
	m.ticks = 0
}

// View renders the composited layers beside the stats panel.
func (m Model) View() string {
	composed := m.traceCanvas.Compose(m.ringCanvas)
	canvasView := canvasStyle.Foreground(CurrentTheme.Trace).Render(composed)

	var s strings.Builder
	s.WriteString(headerStyle.Render("SPIRO") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.tipX) > 1 {
		chart := asciigraph.Plot(m.tipX, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("tip x"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	tip := m.ch.Tip()
	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprintf("%d", m.ticks)) + "\n")
	s.WriteString(labelStyle.Render("Rotors") + valueStyle.Render(fmt.Sprintf("%d", m.ch.Len())) + "\n")
	s.WriteString(labelStyle.Render("Tip") + valueStyle.Render(fmt.Sprintf("(%.0f, %.0f)", tip.X, tip.Y)) + "\n")
	s.WriteString(labelStyle.Render("Trace") + valueStyle.Render(fmt.Sprintf("%d points", m.acc.Len())) + "\n")
	rings := "off"
	if m.showRings {
		rings = "on"
	}
	s.WriteString(labelStyle.Render("Rings") + valueStyle.Render(rings) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset C:Rings\nT:Theme ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  R        - Reset and clear trace    ║
║  C        - Toggle live rotor rings  ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
