package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeaiclub/fastpane"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	oldWD, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendANSI, cfg.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultLayout(), cfg.Layout)

	theme, err := cfg.Theme.Calculator()
	require.NoError(t, err)
	assert.Equal(t, fastpane.DefaultColor, theme.Stack)
	assert.Equal(t, fastpane.Yellow, theme.Buffer)

	level, err := cfg.Log.ParsedLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "fastcalc.yaml", `
backend: tcell
log:
  level: debug
theme:
  stack: "#ff8800"
layout:
  orientation: row
  children:
    - pane: calculator
      size: 2
      wrap: true
    - pane: memory
keys:
  quit: [ctrl+q, ctrl+x]
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, BackendTCell, cfg.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "magenta", cfg.Theme.Title, "unset keys keep their defaults")
	assert.Equal(t, Layout{
		Orientation: "row",
		Children: []Layout{
			{Pane: PaneCalculator, Size: 2, Wrap: true},
			{Pane: PaneMemory},
		},
	}, cfg.Layout)

	assert.Equal(t, map[string][]string{"quit": {"ctrl+q", "ctrl+x"}}, cfg.Keys)

	theme, err := cfg.Theme.Calculator()
	require.NoError(t, err)
	assert.Equal(t, fastpane.RGBColor(255, 136, 0), theme.Stack)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("FASTCALC_BACKEND", "tcell")
	t.Setenv("FASTCALC_THEME_RULE", "red")
	path := writeConfig(t, "fastcalc.json", `{"backend": "ansi"}`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, BackendTCell, cfg.Backend)

	rule, err := cfg.Theme.RuleColor()
	require.NoError(t, err)
	assert.Equal(t, fastpane.Red, rule)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "unknown backend", file: "c.yaml", content: "backend: curses", wantErr: "unknown backend"},
		{name: "bad level", file: "c.yaml", content: "log:\n  level: loud", wantErr: "log.level"},
		{name: "bad colour", file: "c.yaml", content: "theme:\n  memory: chartreuse", wantErr: "theme.memory"},
		{name: "bad rule colour", file: "c.yaml", content: "theme:\n  rule: \"#12\"", wantErr: "theme.rule"},
		{name: "broken file", file: "c.json", content: "{", wantErr: "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
