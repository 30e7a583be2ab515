package core

import (
	"errors"
	"sort"
)

// ErrInvalidDimension reports a grid width or height that is not positive.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// State is the value of a single cell.
type State uint8

const (
	// Dead is the zero value, so a freshly allocated grid is all dead.
	Dead State = 0
	// Alive marks a live cell.
	Alive State = 1
)

// String returns "alive" or "dead".
func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// CellState is one entry of the per-cell draw data handed to renderers.
type CellState struct {
	X, Y  int
	State State
}

// Engine is the contract a host driver uses to run a two-state automaton.
// Implementations are not safe for concurrent use.
type Engine interface {
	Name() string
	Size() Size
	Turn() int
	SeedRandom(seed int64, p float64)
	Advance()
	RenderCells() []CellState
	RenderText() string
	DebugDump() string
}

// Factory constructs an Engine from flag-style key/value options.
type Factory func(cfg map[string]string) (Engine, error)

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := engines[name]
	return f, ok
}

// Names lists the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
