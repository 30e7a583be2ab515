package core

import "fmt"

// Grid stores a 2D grid of cell states in row-major order.
type Grid struct {
	W, H int
	data []State
}

// MaxCells bounds W*H for a single grid.
const MaxCells = 1 << 26

// NewGrid allocates a grid with every cell Dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, w, h, MaxCells)
	}
	return &Grid{W: w, H: h, data: make([]State, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []State { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the state at (x, y). Off-grid coordinates read as Dead.
func (g *Grid) At(x, y int) State {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Set writes s at (x, y) and reports whether the coordinates were on the grid.
func (g *Grid) Set(x, y int, s State) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = s
	return true
}

// Count returns the number of Alive cells.
func (g *Grid) Count() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}
