// Command life runs a Game of Life engine in the terminal: it seeds the
// grid, paints it, then advances, repaints and logs once per interval.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gol-ca/internal/app"
	"gol-ca/internal/ctxlog"
	"gol-ca/internal/host"
	"gol-ca/internal/render"
	"gol-ca/pkg/core"
	_ "gol-ca/pkg/sims/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*app.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run paints frames to outW and writes logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := app.Parse("life", args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	factory, ok := core.Lookup(cfg.Engine)
	if !ok {
		return &app.ExitError{Code: 2, Message: fmt.Sprintf("unknown sim %q (available: %v)", cfg.Engine, core.Names())}
	}
	engine, err := factory(cfg.EngineOptions())
	if err != nil {
		return &app.ExitError{Code: 2, Message: err.Error()}
	}
	logger.Debug("Engine constructed.", "engine", engine.Name(), "config", cfg.ConfigPath)

	var painter host.Painter = host.PainterFunc(func([]core.CellState, core.Size) error { return nil })
	if !cfg.Quiet {
		term := render.NewTerminal(outW)
		term.Clear = isTerminal(outW)
		painter = term
	}

	driver := &host.Driver{
		Engine:   engine,
		Painter:  painter,
		Interval: cfg.Interval,
		Turns:    cfg.Turns,
		Seed:     cfg.Seed,
		Density:  cfg.Density,
		Echo:     cfg.Quiet,
	}
	return driver.Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
