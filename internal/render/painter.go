//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gol-ca/pkg/core"
)

// GridPainter uploads a Canvas into an ebiten image and draws it scaled.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, geo Geometry) *GridPainter {
	c := NewCanvas(size, geo)
	b := c.Bounds()
	return &GridPainter{canvas: c, img: ebiten.NewImage(b.Dx(), b.Dy())}
}

// Paint rasterises the cells into the painter's canvas.
func (gp *GridPainter) Paint(cells []core.CellState, size core.Size) error {
	if err := gp.canvas.Paint(cells, size); err != nil {
		return err
	}
	gp.img.ReplacePixels(gp.canvas.Image().Pix)
	return nil
}

// Blit draws the last painted frame onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the unscaled pixel dimensions of the painter image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.canvas.Bounds()
	return b.Dx(), b.Dy()
}
