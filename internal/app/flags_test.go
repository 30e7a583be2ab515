package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gol-ca/internal/config"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, exit, err := Parse("life", nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, config.Default(), cfg.Settings)
	require.Empty(t, cfg.ConfigPath)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse("life", []string{
		"-width", "30", "-height", "10", "-boundary", "toroidal",
		"-density", "0.2", "-seed", "7", "-interval", "100ms", "-turns", "4",
		"-log-level", "DEBUG", "-log-format", "json", "-compact", "-quiet",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Width)
	require.Equal(t, 10, cfg.Height)
	require.Equal(t, "toroidal", cfg.Boundary)
	require.Equal(t, 0.2, cfg.Density)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 100*time.Millisecond, cfg.Interval)
	require.Equal(t, 4, cfg.Turns)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.True(t, cfg.Compact)
	require.True(t, cfg.Quiet)
}

func TestParseConfigFileBeneathFlags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, `
engine {
  width  = 40
  height = 20
  seed   = 9
}
host {
  interval = "50ms"
}
`)

	// --- Act ---
	cfg, _, err := Parse("life", []string{"-config", path, "-height", "12", "-interval", "1s"}, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Width, "file value applies")
	require.Equal(t, 12, cfg.Height, "explicit flag wins over file")
	require.Equal(t, int64(9), cfg.Seed)
	require.Equal(t, time.Second, cfg.Interval)
	require.Equal(t, path, cfg.ConfigPath)
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, exit, err := Parse("life", []string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"unknown flag": {"-colour", "red"},
		"stray arg":    {"extra"},
		"bad level":    {"-log-level", "loud"},
		"bad interval": {"-interval", "0s"},
		"missing file": {"-config", filepath.Join(t.TempDir(), "nope.hcl")},
	}
	for name, args := range cases {
		_, _, err := Parse("life", args, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, name)
		require.Equal(t, 2, exitErr.Code, name)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewLogger("warn", "json", &buf).Info("hidden")
	require.Empty(t, buf.String())

	NewLogger("debug", "json", &buf).Debug("shown", "turn", 2)
	require.Contains(t, buf.String(), `"turn":2`)

	buf.Reset()
	NewLogger("info", "text", &buf).Info("plain")
	require.Contains(t, buf.String(), "msg=plain")
}
