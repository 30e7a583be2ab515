//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gol-ca/pkg/core"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	engine core.Engine
	width  int
	panel  *ebiten.Image
	lines  []string
}

// NewHUD constructs a HUD for the provided engine and panel width.
func NewHUD(engine core.Engine, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{engine: engine, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status text from the engine.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.lines = StatusLines(h.engine, paused)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight
		if y > height {
			break
		}
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
