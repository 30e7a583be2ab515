//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gol-ca/internal/render"
	"gol-ca/pkg/core"
)

var (
	bornTint = color.RGBA{R: 40, G: 170, B: 70, A: 140}
	diedTint = color.RGBA{R: 200, G: 50, B: 40, A: 140}
)

// Overlay tints the cells that changed during the last turn.
type Overlay struct {
	geo   render.Geometry
	scale int
	show  bool

	prev    []core.CellState
	changes []Change
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay matching the painter's geometry.
func NewOverlay(geo render.Geometry, scale int) *Overlay {
	o := &Overlay{geo: geo, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Observe records a new frame of draw data.
func (o *Overlay) Observe(cells []core.CellState) {
	o.changes = Changes(o.prev, cells)
	o.prev = append(o.prev[:0], cells...)
}

// Draw paints the recorded changes on top of the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || len(o.changes) == 0 {
		return
	}
	side := float64(o.geo.Cell * o.scale)
	for _, c := range o.changes {
		x := float64((c.X*o.geo.Pitch + o.geo.Offset) * o.scale)
		y := float64((c.Y*o.geo.Pitch + o.geo.Offset) * o.scale)
		tint := diedTint
		if c.Born {
			tint = bornTint
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side, side)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(o.pixel, op)
	}
}
