//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gol-ca/internal/render"
	"gol-ca/internal/ui"
	"gol-ca/pkg/core"
)

const hudWidth = 220

// Game adapts a core engine to the ebiten.Game interface.
type Game struct {
	engine  core.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	logger  *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	density  float64
}

// New constructs a Game for the provided engine and seeds it.
func New(engine core.Engine, cfg *Config, logger *slog.Logger) *Game {
	geo := render.BoardGeometry()
	if cfg.Compact {
		geo = render.PixelGeometry()
	}
	g := &Game{
		engine:  engine,
		painter: render.NewGridPainter(engine.Size(), geo),
		hud:     ui.NewHUD(engine, hudWidth),
		overlay: ui.NewOverlay(geo, cfg.Scale),
		step:    core.NewFixedStep(cfg.Interval),
		logger:  logger,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		density: cfg.Density,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset reinitializes the engine state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.SeedRandom(seed, g.density)
	g.tickOnce = false
	g.logger.Info("Engine seeded.", "seed", seed, "density", g.density)
	g.repaint()
}

func (g *Game) repaint() {
	cells := g.engine.RenderCells()
	if err := g.painter.Paint(cells, g.engine.Size()); err != nil {
		g.logger.Error("Paint failed.", "turn", g.engine.Turn(), "error", err)
	}
	g.overlay.Observe(cells)
}

// Update handles per-frame logic and advances the engine when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.engine.Advance()
		g.repaint()
		g.tickOnce = false
		g.logger.Info("Turn advanced.", "turn", g.engine.Turn())
		g.logger.Debug("Grid snapshot.", "text", g.engine.RenderText())
		g.logger.Debug("Engine state.", "dump", g.engine.DebugDump())
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current engine state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
