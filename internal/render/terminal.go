package render

import (
	"bufio"
	"io"
	"strings"

	"gol-ca/pkg/core"
)

const ansiHomeClear = "\x1b[H\x1b[2J"

// Terminal paints cells as text, one row per line.
type Terminal struct {
	w io.Writer

	Alive string
	Dead  string
	// Clear moves the cursor home and clears the screen before each frame.
	Clear bool

	rows [][]string
}

// NewTerminal returns a painter writing block glyphs to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, Alive: "█", Dead: "·"}
}

// Paint writes one frame.
func (t *Terminal) Paint(cells []core.CellState, size core.Size) error {
	t.reset(size)
	for _, cell := range cells {
		if cell.X < 0 || cell.X >= size.W || cell.Y < 0 || cell.Y >= size.H {
			continue
		}
		if cell.State == core.Alive {
			t.rows[cell.Y][cell.X] = t.Alive
		}
	}

	bw := bufio.NewWriter(t.w)
	if t.Clear {
		bw.WriteString(ansiHomeClear)
	}
	for _, row := range t.rows {
		bw.WriteString(strings.Join(row, ""))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (t *Terminal) reset(size core.Size) {
	if len(t.rows) != size.H || (size.H > 0 && len(t.rows[0]) != size.W) {
		t.rows = make([][]string, size.H)
		for y := range t.rows {
			t.rows[y] = make([]string, size.W)
		}
	}
	for _, row := range t.rows {
		for x := range row {
			row[x] = t.Dead
		}
	}
}
