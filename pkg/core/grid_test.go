package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)
	require.Len(t, g.Cells(), 12)
	require.Zero(t, g.Count())

	_, err = NewGrid(0, 3)
	require.True(t, errors.Is(err, ErrInvalidDimension))
	_, err = NewGrid(3, -1)
	require.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestGridAccessors(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	require.True(t, g.Set(3, 2, Alive))
	require.False(t, g.Set(4, 0, Alive))
	require.False(t, g.Set(0, -1, Alive))
	require.Equal(t, Alive, g.At(3, 2))
	require.Equal(t, Alive, g.Cells()[g.Index(3, 2)])
	require.Equal(t, Dead, g.At(-1, 0))
	require.Equal(t, 1, g.Count())

	x, y := g.Wrap(-1, 3)
	require.Equal(t, [2]int{3, 0}, [2]int{x, y})
	x, y = g.Wrap(9, -4)
	require.Equal(t, [2]int{1, 2}, [2]int{x, y})
}

func TestNewGridTooLarge(t *testing.T) {
	for _, dims := range [][2]int{{1 << 32, 1 << 32}, {MaxCells, 2}, {2, MaxCells}, {MaxCells + 1, 1}} {
		g, err := NewGrid(dims[0], dims[1])
		require.Nil(t, g, "dims %v", dims)
		require.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
	}

	g, err := NewGrid(MaxCells/4, 4)
	require.NoError(t, err)
	require.Len(t, g.Cells(), MaxCells)
}
