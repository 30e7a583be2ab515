// Package host drives an engine on a fixed interval: seed, paint, then
// advance, paint and log on every tick.
package host

import (
	"context"
	"fmt"
	"time"

	"gol-ca/internal/ctxlog"
	"gol-ca/pkg/core"
)

// Painter consumes the per-cell draw data of an engine.
type Painter interface {
	Paint(cells []core.CellState, size core.Size) error
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(cells []core.CellState, size core.Size) error

// Paint calls f.
func (f PainterFunc) Paint(cells []core.CellState, size core.Size) error { return f(cells, size) }

// Driver runs an engine against a painter.
type Driver struct {
	Engine  core.Engine
	Painter Painter

	Interval time.Duration
	// Turns stops the run after that many advances. Zero runs until the
	// context is cancelled.
	Turns int

	Seed    int64
	Density float64

	// Echo logs the text rendering at Info on every tick instead of Debug,
	// for runs whose painter shows nothing.
	Echo bool
}

// Run seeds the engine, paints it and then advances once per interval.
// Cancellation of ctx ends the run without error.
func (d *Driver) Run(ctx context.Context) error {
	if d.Engine == nil || d.Painter == nil {
		return fmt.Errorf("host: driver needs an engine and a painter")
	}
	if d.Interval <= 0 {
		return fmt.Errorf("host: interval must be positive, got %s", d.Interval)
	}
	logger := ctxlog.FromContext(ctx).With("engine", d.Engine.Name())

	d.Engine.SeedRandom(d.Seed, d.Density)
	size := d.Engine.Size()
	logger.Info("Engine seeded.", "width", size.W, "height", size.H, "seed", d.Seed, "density", d.Density)
	if err := d.paint(); err != nil {
		return err
	}

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Run stopped.", "turn", d.Engine.Turn(), "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}

		if err := d.Tick(ctx); err != nil {
			return err
		}
		if d.Turns > 0 && d.Engine.Turn() >= d.Turns {
			logger.Info("Run finished.", "turn", d.Engine.Turn())
			return nil
		}
	}
}

// Tick advances the engine once, repaints it and logs the new state.
func (d *Driver) Tick(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	d.Engine.Advance()
	if err := d.paint(); err != nil {
		return err
	}
	logger.Info("Turn advanced.", "turn", d.Engine.Turn())
	if d.Echo {
		logger.Info("Grid snapshot.", "text", d.Engine.RenderText())
	} else {
		logger.Debug("Grid snapshot.", "text", d.Engine.RenderText())
	}
	logger.Debug("Engine state.", "dump", d.Engine.DebugDump())
	return nil
}

func (d *Driver) paint() error {
	if err := d.Painter.Paint(d.Engine.RenderCells(), d.Engine.Size()); err != nil {
		return fmt.Errorf("host: paint at turn %d: %w", d.Engine.Turn(), err)
	}
	return nil
}
