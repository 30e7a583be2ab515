package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gol-ca/pkg/core"
	"gol-ca/pkg/sims/life"
)

func TestStatusLines(t *testing.T) {
	l, err := life.NewSize(4, 4)
	require.NoError(t, err)
	l.Advance()

	lines := StatusLines(l, true)
	require.Equal(t, "Life", lines[0])
	require.Equal(t, "turn 1 (paused)", lines[1])
	require.Contains(t, lines, "Grid")
	require.Contains(t, lines, "  Boundary     bounded")

	require.Equal(t, []string{"Controls"}, StatusLines(nil, false))
}

func TestChanges(t *testing.T) {
	prev := []core.CellState{
		{X: 0, Y: 0, State: core.Alive},
		{X: 1, Y: 0, State: core.Dead},
		{X: 2, Y: 0, State: core.Alive},
	}
	cur := []core.CellState{
		{X: 0, Y: 0, State: core.Dead},
		{X: 1, Y: 0, State: core.Alive},
		{X: 2, Y: 0, State: core.Alive},
	}
	require.Equal(t, []Change{{X: 0, Y: 0, Born: false}, {X: 1, Y: 0, Born: true}}, Changes(prev, cur))
	require.Nil(t, Changes(prev, cur[:2]))
}
