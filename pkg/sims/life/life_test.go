package life

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"gol-ca/pkg/core"
)

func newLife(t *testing.T, w, h int, b Boundary) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Boundary = w, h, b
	l, err := New(cfg)
	require.NoError(t, err)
	return l
}

func place(l *Life, cells ...[2]int) {
	for _, c := range cells {
		l.Set(c[0], c[1], core.Alive)
	}
}

func aliveSet(l *Life) map[[2]int]bool {
	out := map[[2]int]bool{}
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if l.Alive(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestNewAllDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {15, 15}, {40, 3}} {
		l, err := NewSize(dims[0], dims[1])
		require.NoError(t, err)
		require.Equal(t, core.Size{W: dims[0], H: dims[1]}, l.Size())
		require.Zero(t, l.Turn())
		require.Zero(t, l.Population())
		require.Len(t, l.Cells(), dims[0]*dims[1])
	}
}

func TestNewInvalidDimension(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -4}, {0, 0}} {
		l, err := NewSize(dims[0], dims[1])
		require.Nil(t, l, "dims %v", dims)
		require.True(t, errors.Is(err, ErrInvalidDimension), "dims %v: %v", dims, err)
	}
}

func TestNewTooLarge(t *testing.T) {
	for _, dims := range [][2]int{{1 << 32, 1 << 32}, {core.MaxCells, 2}} {
		l, err := NewSize(dims[0], dims[1])
		require.Nil(t, l, "dims %v", dims)
		require.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 1.5
	_, err := New(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Boundary = Boundary(9)
	_, err = New(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSeedRandomExtremes(t *testing.T) {
	l := newLife(t, 9, 6, Bounded)

	l.SeedRandom(7, 1.0)
	require.Equal(t, 9*6, l.Population())

	l.SeedRandom(7, 0.0)
	require.Zero(t, l.Population())
	require.Zero(t, l.Turn())
}

func TestSeedRandomDeterministic(t *testing.T) {
	a := newLife(t, 20, 20, Toroidal)
	b := newLife(t, 20, 20, Toroidal)
	a.SeedRandom(1234, 0.5)
	b.SeedRandom(1234, 0.5)
	require.Empty(t, cmp.Diff(a.Cells(), b.Cells()))

	b.SeedRandom(4321, 0.5)
	require.NotEmpty(t, cmp.Diff(a.Cells(), b.Cells()), "different seeds should differ on a 20x20 board")
}

func TestResetUsesConfiguredDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 1
	l, err := New(cfg)
	require.NoError(t, err)
	l.Reset(3)
	require.Equal(t, cfg.Width*cfg.Height, l.Population())
}

func TestAdvanceDeterministic(t *testing.T) {
	for _, b := range []Boundary{Bounded, Toroidal} {
		x := newLife(t, 16, 12, b)
		y := newLife(t, 16, 12, b)
		x.SeedRandom(99, 0.4)
		y.SeedRandom(99, 0.4)
		for i := 0; i < 10; i++ {
			x.Advance()
			y.Advance()
			if diff := cmp.Diff(x.Cells(), y.Cells()); diff != "" {
				t.Fatalf("%s: generation %d diverged (-x +y):\n%s", b, i+1, diff)
			}
		}
	}
}

func TestTurnCounter(t *testing.T) {
	l := newLife(t, 5, 5, Bounded)
	l.SeedRandom(1, 0.5)
	for n := 1; n <= 25; n++ {
		l.Advance()
		require.Equal(t, n, l.Turn())
	}
}

func TestSingleCellDies(t *testing.T) {
	for _, b := range []Boundary{Bounded, Toroidal} {
		l := newLife(t, 5, 5, b)
		place(l, [2]int{2, 2})
		l.Advance()
		require.Zero(t, l.Population(), b.String())

		corner := newLife(t, 5, 5, b)
		place(corner, [2]int{0, 0})
		corner.Advance()
		require.Zero(t, corner.Population(), b.String())
	}
}

func TestTopRowOnThreeByThree(t *testing.T) {
	bounded := newLife(t, 3, 3, Bounded)
	place(bounded, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
	bounded.Advance()
	require.Equal(t, "_X_\n_X_\n___\n", bounded.RenderText())

	// On a 3x3 torus every cell neighbours all eight others.
	torus := newLife(t, 3, 3, Toroidal)
	place(torus, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
	torus.Advance()
	require.Equal(t, "XXX\nXXX\nXXX\n", torus.RenderText())
}

func TestNarrowTorusCountsWrappedNeighboursPerOffset(t *testing.T) {
	// On a 3x1 torus the rows above and below wrap onto the single row, so a
	// lone cell is seen three times by each neighbour and twice by itself.
	torus := newLife(t, 3, 1, Toroidal)
	place(torus, [2]int{1, 0})
	torus.Advance()
	require.Equal(t, "XXX\n", torus.RenderText())
	torus.Advance()
	require.Equal(t, "___\n", torus.RenderText(), "every cell now sees eight live neighbours")

	bounded := newLife(t, 3, 1, Bounded)
	place(bounded, [2]int{1, 0})
	bounded.Advance()
	require.Equal(t, "___\n", bounded.RenderText())

	// A lone cell on a 1x1 torus is its own eight neighbours.
	single := newLife(t, 1, 1, Toroidal)
	place(single, [2]int{0, 0})
	single.Advance()
	require.Zero(t, single.Population())
}

func TestBlinkerOscillation(t *testing.T) {
	for _, b := range []Boundary{Bounded, Toroidal} {
		l := newLife(t, 5, 5, b)
		place(l, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
		start := l.RenderText()

		l.Advance()
		require.Equal(t, map[[2]int]bool{
			{1, 2}: true,
			{2, 2}: true,
			{3, 2}: true,
		}, aliveSet(l), "%s after first step", b)

		l.Advance()
		require.Equal(t, start, l.RenderText(), "%s after second step", b)
		require.Equal(t, 2, l.Turn())
	}
}

func TestEdgeBlinkerDependsOnBoundary(t *testing.T) {
	bounded := newLife(t, 5, 5, Bounded)
	place(bounded, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	bounded.Advance()
	require.Equal(t, map[[2]int]bool{{2, 0}: true, {2, 1}: true}, aliveSet(bounded))

	torus := newLife(t, 5, 5, Toroidal)
	place(torus, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	torus.Advance()
	require.Equal(t, map[[2]int]bool{{2, 4}: true, {2, 0}: true, {2, 1}: true}, aliveSet(torus))
	torus.Advance()
	require.Equal(t, map[[2]int]bool{{1, 0}: true, {2, 0}: true, {3, 0}: true}, aliveSet(torus))
}

func TestGliderWrapsTorus(t *testing.T) {
	l := newLife(t, 8, 8, Toroidal)
	place(l, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	start := append([]core.State(nil), l.Cells()...)

	// A glider travels one cell diagonally every four generations.
	for i := 0; i < 32; i++ {
		l.Advance()
		require.Equal(t, 5, l.Population(), "generation %d", i+1)
	}
	require.Empty(t, cmp.Diff(start, l.Cells()))
}

func TestBlockStillLife(t *testing.T) {
	l := newLife(t, 2, 2, Bounded)
	l.SeedRandom(0, 1)
	l.Advance()
	require.Equal(t, "XX\nXX\n", l.RenderText())
}

func TestRenderTextShape(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 8}, {8, 3}, {15, 15}} {
		l := newLife(t, dims[0], dims[1], Bounded)
		l.SeedRandom(5, 0.5)
		lines := strings.Split(strings.TrimSuffix(l.RenderText(), "\n"), "\n")
		require.Len(t, lines, dims[1])
		for _, line := range lines {
			require.Len(t, line, dims[0])
			require.Empty(t, strings.Trim(line, "X_"))
		}
		require.Equal(t, l.RenderText(), l.String())
	}
}

func TestRenderCells(t *testing.T) {
	l := newLife(t, 4, 3, Bounded)
	place(l, [2]int{3, 0}, [2]int{0, 2})
	cells := l.RenderCells()
	require.Len(t, cells, 12)
	require.Equal(t, core.CellState{X: 0, Y: 0, State: core.Dead}, cells[0])
	require.Equal(t, core.CellState{X: 3, Y: 0, State: core.Alive}, cells[3])
	require.Equal(t, core.CellState{X: 0, Y: 1, State: core.Dead}, cells[4])
	require.Equal(t, core.CellState{X: 0, Y: 2, State: core.Alive}, cells[8])

	before := l.RenderText()
	_ = l.RenderCells()
	_ = l.DebugDump()
	require.Equal(t, before, l.RenderText(), "read-only operations must not mutate")
	require.Zero(t, l.Turn())
}

func TestDebugDump(t *testing.T) {
	l := newLife(t, 3, 2, Toroidal)
	place(l, [2]int{0, 0})
	l.Advance()
	l.Advance()
	dump := l.DebugDump()
	require.True(t, strings.HasPrefix(dump, "life 3x2 boundary=toroidal turn=2 alive=0\n"), dump)
	require.True(t, strings.HasSuffix(dump, l.RenderText()))
}

func TestParameters(t *testing.T) {
	l := newLife(t, 6, 4, Toroidal)
	place(l, [2]int{1, 1})
	require.Equal(t, Toroidal, l.Boundary())
	snap := l.Parameters()

	p, ok := snap.Lookup("boundary")
	require.True(t, ok)
	require.Equal(t, "toroidal", p.Value)
	p, ok = snap.Lookup("alive")
	require.True(t, ok)
	require.Equal(t, "1", p.Value)
	p, ok = snap.Lookup("w")
	require.True(t, ok)
	require.Equal(t, "6", p.Value)
}

func TestParseBoundary(t *testing.T) {
	b, err := ParseBoundary("Toroidal")
	require.NoError(t, err)
	require.Equal(t, Toroidal, b)
	b, err = ParseBoundary(" bounded ")
	require.NoError(t, err)
	require.Equal(t, Bounded, b)
	_, err = ParseBoundary("hex")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)

	c, err = FromMap(map[string]string{"w": "30", "h": "10", "boundary": "torus", "density": "0.25"})
	require.NoError(t, err)
	require.Equal(t, Config{Width: 30, Height: 10, Boundary: Toroidal, Density: 0.25}, c)

	_, err = FromMap(map[string]string{"w": "wide"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Lookup("life")
	require.True(t, ok)

	eng, err := factory(map[string]string{"w": "4", "h": "3"})
	require.NoError(t, err)
	require.Equal(t, core.Size{W: 4, H: 3}, eng.Size())
	require.Equal(t, "life", eng.Name())

	eng, err = factory(map[string]string{"w": "0"})
	require.ErrorIs(t, err, ErrInvalidDimension)
	require.Nil(t, eng)

	_, err = factory(map[string]string{"boundary": "hex"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func ExampleLife_RenderText() {
	l, _ := NewSize(3, 3)
	l.Set(0, 1, core.Alive)
	l.Set(1, 1, core.Alive)
	l.Set(2, 1, core.Alive)
	l.Advance()
	fmt.Print(l.RenderText())
	// Output:
	// _X_
	// _X_
	// _X_
}
