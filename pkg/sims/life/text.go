package life

import (
	"fmt"
	"strings"

	"gol-ca/pkg/core"
)

const (
	glyphAlive = 'X'
	glyphDead  = '_'
)

// RenderText returns one line per row and one glyph per cell, 'X' for alive
// and '_' for dead. Every line ends with a newline.
func (l *Life) RenderText() string {
	w, h := l.cur.W, l.cur.H
	var b strings.Builder
	b.Grow((w + 1) * h)
	cells := l.cur.Cells()
	for y := 0; y < h; y++ {
		for _, s := range cells[y*w : (y+1)*w] {
			if s == core.Alive {
				b.WriteByte(glyphAlive)
			} else {
				b.WriteByte(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer with the same output as RenderText.
func (l *Life) String() string { return l.RenderText() }

// DebugDump returns a header with the engine state followed by the grid.
func (l *Life) DebugDump() string {
	size := l.Size()
	return fmt.Sprintf("%s %dx%d boundary=%s turn=%d alive=%d\n%s",
		l.Name(), size.W, size.H, l.cfg.Boundary, l.turn, l.Population(), l.RenderText())
}
