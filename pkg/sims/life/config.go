package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig reports a configuration value outside its domain.
var ErrInvalidConfig = errors.New("invalid life config")

// Boundary selects how neighbour counts treat the grid edges.
type Boundary uint8

const (
	// Bounded clips at the edges; edge and corner cells have fewer neighbours.
	Bounded Boundary = iota
	// Toroidal wraps both axes so every cell has eight neighbours. On an axis
	// shorter than 3 cells a neighbour is counted once per wrapped offset, so
	// the same cell, or the cell itself, may be counted more than once.
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return "boundary(" + strconv.Itoa(int(b)) + ")"
	}
}

// ParseBoundary accepts "bounded" or "toroidal" (also "torus", "wrap").
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "clip":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return 0, fmt.Errorf("%w: unknown boundary %q", ErrInvalidConfig, s)
}

// Config holds the construction parameters of a Life engine.
type Config struct {
	Width    int
	Height   int
	Boundary Boundary
	// Density is the probability of a cell being seeded alive by Reset.
	Density float64
}

// DefaultConfig returns the standard 15x15 bounded board.
func DefaultConfig() Config {
	return Config{Width: 15, Height: 15, Boundary: Bounded, Density: 0.5}
}

// Validate checks the boundary and density. Dimensions are checked by New.
func (c Config) Validate() error {
	if c.Boundary != Bounded && c.Boundary != Toroidal {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Boundary)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Missing keys keep their defaults; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w=%q", ErrInvalidConfig, v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: h=%q", ErrInvalidConfig, v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["boundary"]; ok {
		parsed, err := ParseBoundary(v)
		if err != nil {
			return c, err
		}
		c.Boundary = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: density=%q", ErrInvalidConfig, v)
		}
		c.Density = parsed
	}
	return c, nil
}
