// Package sim drives the rotor chain frame by frame and accumulates the
// traced path. Rendering stays behind the small surface interfaces in
// types.go; the loop itself is single-threaded and owns the chain for its
// entire lifetime.
package sim

import (
	"context"

	"github.com/san-kum/spiro/internal/chain"
	"github.com/san-kum/spiro/internal/rotor"
)

// Loop ticks the chain and records the tip once per frame, in a fixed order:
// poll cancellation, tick, record, redraw rings, present.
type Loop struct {
	chain     *chain.Chain
	acc       *Accumulator
	rings     RingLayer
	ringColor Color
	present   Presenter
	observers []Observer
}

func New(ch *chain.Chain, acc *Accumulator) *Loop {
	return &Loop{
		chain:     ch,
		acc:       acc,
		observers: make([]Observer, 0),
	}
}

// SetRingLayer attaches the transient surface for live rotor rings.
func (l *Loop) SetRingLayer(layer RingLayer, c Color) {
	l.rings = layer
	l.ringColor = c
}

func (l *Loop) SetPresenter(p Presenter) { l.present = p }
func (l *Loop) AddObserver(o Observer)   { l.observers = append(l.observers, o) }

// Run executes ticks until cfg.MaxTicks is reached or ctx is cancelled.
// Cancellation is cooperative: it is polled non-blockingly once per
// iteration and ticks already applied are not undone.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	result := &Result{}

	for i := 0; cfg.MaxTicks == 0 || i < cfg.MaxTicks; i++ {
		select {
		case <-ctx.Done():
			result.Points = l.acc.Points()
			return result, ctx.Err()
		default:
		}

		l.chain.Tick()
		tip := l.chain.Tip()
		l.acc.Record(tip)

		for _, o := range l.observers {
			o.OnTick(i, tip)
		}

		if cfg.DrawRings && l.rings != nil {
			l.rings.Clear()
			for _, p := range l.chain.WorldPixels() {
				l.rings.Plot(p, l.ringColor)
			}
		}

		if l.present != nil {
			if err := l.present.Present(); err != nil {
				result.Points = l.acc.Points()
				return result, err
			}
		}

		result.Ticks++
	}

	result.Points = l.acc.Points()
	return result, nil
}

// RunWithCallback ticks until the callback returns false or ctx is
// cancelled. The callback sees each tick's tip after it was recorded.
func (l *Loop) RunWithCallback(ctx context.Context, fn func(tick int, tip rotor.Coord) bool) error {
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.chain.Tick()
		tip := l.chain.Tip()
		l.acc.Record(tip)

		if !fn(i, tip) {
			return nil
		}
	}
}
