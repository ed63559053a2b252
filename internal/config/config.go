// Package config loads fastcalc settings from a config file, the environment
// and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/internal/calc"
)

const (
	appName = "fastcalc"

	BackendANSI  = "ansi"
	BackendTCell = "tcell"

	defaultBackend  = BackendANSI
	defaultLogLevel = "info"
)

var ErrUnknownBackend = errors.New("unknown backend")

// LogConfig controls the file logger. The terminal belongs to the renderer,
// so logs never go to stdout.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ParsedLevel parses the configured level name.
func (c LogConfig) ParsedLevel() (log.Level, error) {
	return log.ParseLevel(c.Level)
}

// ThemeConfig names the colours of each pane, see fastpane.ParseColor.
type ThemeConfig struct {
	Stack  string `mapstructure:"stack"`
	Buffer string `mapstructure:"buffer"`
	Title  string `mapstructure:"title"`
	Memory string `mapstructure:"memory"`
	Rule   string `mapstructure:"rule"`
}

// Calculator returns the colours of the calculator and memory panes.
func (t ThemeConfig) Calculator() (calc.Theme, error) {
	var theme calc.Theme
	fields := []struct {
		key   string
		value string
		dst   *fastpane.Color
	}{
		{"theme.stack", t.Stack, &theme.Stack},
		{"theme.buffer", t.Buffer, &theme.Buffer},
		{"theme.title", t.Title, &theme.Title},
		{"theme.memory", t.Memory, &theme.Memory},
	}
	for _, f := range fields {
		c, err := fastpane.ParseColor(f.value)
		if err != nil {
			return calc.Theme{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return theme, nil
}

func (t ThemeConfig) RuleColor() (fastpane.Color, error) {
	c, err := fastpane.ParseColor(t.Rule)
	if err != nil {
		return fastpane.Color{}, fmt.Errorf("theme.rule: %w", err)
	}
	return c, nil
}

type Config struct {
	Backend string      `mapstructure:"backend"`
	Log     LogConfig   `mapstructure:"log"`
	Theme   ThemeConfig `mapstructure:"theme"`
	Layout  Layout      `mapstructure:"layout"`
	// Keys overrides key bindings by action name, "quit: [ctrl+q]".
	Keys map[string][]string `mapstructure:"keys"`
}

// New returns a viper instance with defaults, search paths and the
// FASTCALC_ environment prefix set up. Flags are bound to it by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(appName)
	v.AddConfigPath(".")
	v.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", defaultBackend)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("theme.stack", "default")
	v.SetDefault("theme.buffer", "yellow")
	v.SetDefault("theme.title", "magenta")
	v.SetDefault("theme.memory", "green")
	v.SetDefault("theme.rule", "brightblack")
}

// Load reads file, or the first fastcalc.* found on the search path when
// file is empty, and validates the result. A missing config file is not an
// error unless it was named explicitly.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := readConfig(v.ReadInConfig(), file != ""); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Layout.isZero() {
		cfg.Layout = DefaultLayout()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func readConfig(err error, explicit bool) error {
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) && !explicit {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

// Validate checks everything that can be checked without building the layout.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTCell:
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := c.Log.ParsedLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := c.Theme.Calculator(); err != nil {
		return err
	}
	if _, err := c.Theme.RuleColor(); err != nil {
		return err
	}
	return nil
}
