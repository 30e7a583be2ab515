// Package config loads host settings from an HCL file. Expressions in the
// file can read the process environment through the env object, e.g.
// `seed = env.LIFE_SEED`, and call a few cty standard functions.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Settings is the fully resolved configuration of a host run.
type Settings struct {
	Engine   string
	Width    int
	Height   int
	Boundary string
	Density  float64
	Seed     int64

	Interval time.Duration
	Turns    int
	Scale    int

	LogLevel  string
	LogFormat string
}

// Default returns the settings used when neither a file nor flags override them.
func Default() Settings {
	return Settings{
		Engine:    "life",
		Width:     15,
		Height:    15,
		Boundary:  "bounded",
		Density:   0.5,
		Seed:      42,
		Interval:  800 * time.Millisecond,
		Turns:     0,
		Scale:     1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// EngineOptions returns the flag-style map consumed by core engine factories.
func (s Settings) EngineOptions() map[string]string {
	return map[string]string{
		"w":        fmt.Sprint(s.Width),
		"h":        fmt.Sprint(s.Height),
		"boundary": s.Boundary,
		"density":  fmt.Sprint(s.Density),
	}
}

// Validate checks the host-side values. Engine options are validated by
// the engine factory.
func (s Settings) Validate() error {
	if s.Engine == "" {
		return fmt.Errorf("engine name must not be empty")
	}
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", s.Interval)
	}
	if s.Turns < 0 {
		return fmt.Errorf("turns must not be negative, got %d", s.Turns)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", s.Scale)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", s.LogFormat)
	}
	return nil
}

// File mirrors the HCL document. Absent attributes decode to nil.
type File struct {
	Engine *EngineBlock `hcl:"engine,block"`
	Host   *HostBlock   `hcl:"host,block"`
	Log    *LogBlock    `hcl:"log,block"`
}

// EngineBlock configures the simulation.
type EngineBlock struct {
	Name     *string  `hcl:"name,optional"`
	Width    *int     `hcl:"width,optional"`
	Height   *int     `hcl:"height,optional"`
	Boundary *string  `hcl:"boundary,optional"`
	Density  *float64 `hcl:"density,optional"`
	Seed     *int64   `hcl:"seed,optional"`
}

// HostBlock configures the driver loop.
type HostBlock struct {
	Interval *string `hcl:"interval,optional"`
	Turns    *int    `hcl:"turns,optional"`
	Scale    *int    `hcl:"scale,optional"`
}

// LogBlock configures logging.
type LogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}
	return decode(hclFile, os.Environ())
}

// Parse decodes an in-memory HCL document; filename is used in diagnostics.
func Parse(src []byte, filename string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	return decode(hclFile, environ)
}

func decode(hclFile *hcl.File, environ []string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, evalContext(environ), &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %w", diags)
	}
	return &f, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" || !hclIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"min":      stdlib.MinFunc,
			"max":      stdlib.MaxFunc,
			"lower":    stdlib.LowerFunc,
			"upper":    stdlib.UpperFunc,
			"coalesce": stdlib.CoalesceFunc,
		},
	}
}

func hclIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}

// Apply overlays every attribute present in the file onto s.
func (f *File) Apply(s *Settings) error {
	if e := f.Engine; e != nil {
		setIf(&s.Engine, e.Name)
		setIf(&s.Width, e.Width)
		setIf(&s.Height, e.Height)
		setIf(&s.Boundary, e.Boundary)
		setIf(&s.Density, e.Density)
		setIf(&s.Seed, e.Seed)
	}
	if h := f.Host; h != nil {
		if h.Interval != nil {
			d, err := time.ParseDuration(*h.Interval)
			if err != nil {
				return fmt.Errorf("host.interval: %w", err)
			}
			s.Interval = d
		}
		setIf(&s.Turns, h.Turns)
		setIf(&s.Scale, h.Scale)
	}
	if l := f.Log; l != nil {
		setIf(&s.LogLevel, l.Level)
		setIf(&s.LogFormat, l.Format)
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
