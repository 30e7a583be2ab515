// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// grid with either bounded or toroidal edges.
package life

import (
	"fmt"

	"gol-ca/pkg/core"
)

// ErrInvalidDimension is returned by New for non-positive width or height.
var ErrInvalidDimension = core.ErrInvalidDimension

// Life is a Game of Life engine. It is not safe for concurrent use.
type Life struct {
	cfg  Config
	cur  *core.Grid
	nxt  *core.Grid
	turn int
}

// New returns a Life engine with every cell dead and the turn counter at 0.
func New(cfg Config) (*Life, error) {
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	nxt, _ := core.NewGrid(cfg.Width, cfg.Height)
	return &Life{cfg: cfg, cur: cur, nxt: nxt}, nil
}

// NewSize returns a Life engine of the given dimensions using default options.
func NewSize(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return New(cfg)
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Turn returns the number of generations advanced so far.
func (l *Life) Turn() int { return l.turn }

// Boundary returns the edge policy chosen at construction.
func (l *Life) Boundary() Boundary { return l.cfg.Boundary }

// Cells exposes the current generation in row-major order.
func (l *Life) Cells() []core.State { return l.cur.Cells() }

// Alive reports whether the cell at (x, y) is alive. Off-grid cells are dead.
func (l *Life) Alive(x, y int) bool { return l.cur.At(x, y) == core.Alive }

// Set overwrites a single cell; coordinates off the grid are ignored.
func (l *Life) Set(x, y int, s core.State) { l.cur.Set(x, y, s) }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// SeedRandom overwrites every cell, alive with probability p. The same seed
// and p always produce the same board. The turn counter is untouched.
func (l *Life) SeedRandom(seed int64, p float64) {
	core.FillBernoulli(core.NewRNG(seed), l.cur.Cells(), p)
}

// Reset seeds the board using the configured density.
func (l *Life) Reset(seed int64) {
	l.SeedRandom(seed, l.cfg.Density)
}

// Advance computes the next generation from a snapshot of the current one
// and increments the turn counter.
func (l *Life) Advance() {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	next := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			next[idx] = core.Dead
			if rule(cells[idx] == core.Alive, l.neighbors(x, y)) {
				next[idx] = core.Alive
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.turn++
}

func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if l.cfg.Boundary == Toroidal {
				nx, ny = l.cur.Wrap(nx, ny)
			}
			// At reads off-grid cells as dead, which is the bounded policy.
			if l.cur.At(nx, ny) == core.Alive {
				n++
			}
		}
	}
	return n
}

// rule is B3/S23: survive with 2 or 3 neighbours, birth with exactly 3.
func rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// RenderCells returns every cell with its coordinates, row by row.
func (l *Life) RenderCells() []core.CellState {
	w, h := l.cur.W, l.cur.H
	out := make([]core.CellState, 0, w*h)
	cells := l.cur.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, core.CellState{X: x, Y: y, State: cells[y*w+x]})
		}
	}
	return out
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Engine, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
