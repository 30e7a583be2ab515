package ui

import (
	"fmt"
	"strings"

	"gol-ca/pkg/core"
)

// StatusLines renders the text shown in the HUD panel.
func StatusLines(engine core.Engine, paused bool) []string {
	if engine == nil {
		return []string{"Controls"}
	}
	name := engine.Name()
	title := "Controls"
	if name != "" {
		title = strings.ToUpper(name[:1]) + name[1:]
	}
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		title,
		fmt.Sprintf("turn %d (%s)", engine.Turn(), state),
	}
	provider, ok := engine.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, "", group.Name)
		for _, param := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-12s %s", param.Label, param.Value))
		}
	}
	lines = append(lines, "", "space pause  n step", "r reseed  s new seed", "1 changes  q quit")
	return lines
}

// Change marks a cell whose state differs between two frames.
type Change struct {
	X, Y int
	Born bool
}

// Changes compares two frames of draw data. Frames of different length
// report nothing.
func Changes(prev, cur []core.CellState) []Change {
	if len(prev) != len(cur) {
		return nil
	}
	var out []Change
	for i, c := range cur {
		p := prev[i]
		if p.X != c.X || p.Y != c.Y || p.State == c.State {
			continue
		}
		out = append(out, Change{X: c.X, Y: c.Y, Born: c.State == core.Alive})
	}
	return out
}
