package app

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"gol-ca/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config represents the command-line parameters for the application.
type Config struct {
	config.Settings

	// ConfigPath is an optional HCL file applied beneath explicit flags.
	ConfigPath string
	// Compact draws one pixel per cell instead of the ruled board.
	Compact bool
	// Quiet disables the terminal painter in headless runs.
	Quiet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Settings: config.Default()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional HCL configuration file")
	fs.StringVar(&c.Engine, "sim", c.Engine, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: bounded or toroidal")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a cell being seeded alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between turns")
	fs.IntVar(&c.Turns, "turns", c.Turns, "stop after this many turns (0 runs until interrupted)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: text or json")
	fs.BoolVar(&c.Compact, "compact", c.Compact, "draw one pixel per cell without grid lines")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "do not paint the grid to stdout")
}

// Parse processes command-line arguments. Precedence is defaults, then the
// HCL file named by -config, then flags given explicitly. It returns a
// boolean reporting whether the program should exit cleanly (help shown).
func Parse(name string, args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "\nUsage:\n  %s [options]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}

	parsed := NewConfig()
	parsed.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}

	cfg := parsed
	if parsed.ConfigPath != "" {
		file, err := config.Load(parsed.ConfigPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = NewConfig()
		if err := file.Apply(&cfg.Settings); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		overlay := flag.NewFlagSet(name, flag.ContinueOnError)
		overlay.SetOutput(io.Discard)
		cfg.Bind(overlay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if err := overlay.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
				setErr = err
			}
		})
		if setErr != nil {
			return nil, false, &ExitError{Code: 2, Message: setErr.Error()}
		}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
