// Package render turns the per-cell draw data of an engine into pixels or
// terminal text.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"gol-ca/pkg/core"
)

// Geometry describes how cells are laid out on a canvas.
type Geometry struct {
	// Pitch is the distance in pixels between the origins of adjacent cells.
	Pitch int
	// Cell is the side of the filled square drawn for each cell.
	Cell int
	// Offset is the inset of the filled square within its pitch.
	Offset int
	// GridLines draws 1 px lines at k*Pitch+1 on both axes.
	GridLines bool
}

// BoardGeometry is a 20 px pitch with 18 px cells separated by grid lines.
func BoardGeometry() Geometry {
	return Geometry{Pitch: 20, Cell: 18, Offset: 2, GridLines: true}
}

// PixelGeometry maps each cell to exactly one pixel.
func PixelGeometry() Geometry {
	return Geometry{Pitch: 1, Cell: 1}
}

// Colours of the board canvas: dark grey live cells on white with black grid lines.
var (
	ColorAlive      = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	ColorDead       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorLine       = color.RGBA{A: 255}
	ColorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Canvas rasterises cell states into an RGBA image.
type Canvas struct {
	geo  Geometry
	size core.Size
	img  *image.RGBA
	buf  []core.State

	Alive, Dead color.RGBA
}

// NewCanvas allocates a canvas for a grid of the given size.
func NewCanvas(size core.Size, geo Geometry) *Canvas {
	if geo.Pitch <= 0 {
		geo = PixelGeometry()
	}
	w, h := size.W*geo.Pitch, size.H*geo.Pitch
	if geo.GridLines {
		w += 2
		h += 2
	}
	c := &Canvas{
		geo:   geo,
		size:  size,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		buf:   make([]core.State, size.W*size.H),
		Alive: ColorAlive,
		Dead:  ColorDead,
	}
	c.drawGrid()
	return c
}

func (c *Canvas) drawGrid() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)
	if !c.geo.GridLines {
		return
	}
	b := c.img.Bounds()
	for k := 0; k <= c.size.W; k++ {
		x := k*c.geo.Pitch + 1
		for y := 1; y < b.Max.Y; y++ {
			c.img.SetRGBA(x, y, ColorLine)
		}
	}
	for k := 0; k <= c.size.H; k++ {
		y := k*c.geo.Pitch + 1
		for x := 1; x < b.Max.X; x++ {
			c.img.SetRGBA(x, y, ColorLine)
		}
	}
}

// Paint draws every cell in cells. Cells outside the canvas grid are skipped.
func (c *Canvas) Paint(cells []core.CellState, size core.Size) error {
	if size != c.size {
		return fmt.Errorf("render: canvas is %dx%d, got %dx%d cells", c.size.W, c.size.H, size.W, size.H)
	}
	if c.geo == PixelGeometry() && len(cells) == len(c.buf) {
		for _, cell := range cells {
			if cell.X >= 0 && cell.X < size.W && cell.Y >= 0 && cell.Y < size.H {
				c.buf[cell.Y*size.W+cell.X] = cell.State
			}
		}
		fillBinaryRGBA(c.img.Pix, c.buf, c.Alive, c.Dead)
		return nil
	}
	alive := image.NewUniform(c.Alive)
	dead := image.NewUniform(c.Dead)
	for _, cell := range cells {
		if cell.X < 0 || cell.X >= size.W || cell.Y < 0 || cell.Y >= size.H {
			continue
		}
		x0 := cell.X*c.geo.Pitch + c.geo.Offset
		y0 := cell.Y*c.geo.Pitch + c.geo.Offset
		src := dead
		if cell.State == core.Alive {
			src = alive
		}
		draw.Draw(c.img, image.Rect(x0, y0, x0+c.geo.Cell, y0+c.geo.Cell), src, image.Point{}, draw.Src)
	}
	return nil
}

// Image returns the backing image. It is reused across Paint calls.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the pixel size of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }
