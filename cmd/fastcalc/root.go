package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/internal/app"
	"github.com/yeeaiclub/fastpane/internal/config"
	"github.com/yeeaiclub/fastpane/terminal"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:   "fastcalc",
		Short: "An RPN calculator drawn with fastpane",
		Long: `fastcalc is a reverse polish notation calculator with a twelve register
stack and named memory registers, laid out in resizable terminal panes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Config file (default ./fastcalc.yaml or ~/.config/fastcalc/fastcalc.yaml)")
	flags.StringP("backend", "b", "", "Terminal backend: ansi or tcell")
	flags.BoolP("debug", "d", false, "Log at debug level")
	flags.String("log-file", "", "Write logs to this file")

	_ = v.BindPFlag("backend", flags.Lookup("backend"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		v.Set("log.level", "debug")
	}
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, file)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := newScreen(cfg.Backend)
	if err != nil {
		return err
	}
	a, err := app.New(screen, cfg, fastpane.WithCrashLog(fastpane.DefaultCrashLogPath()))
	if err != nil {
		return err
	}

	fastpane.Logger().Info("fastcalc started", "backend", cfg.Backend)
	return a.Run(cmd.Context())
}

// setupLogger points the fastpane logger at the configured file. Without a
// file logs are dropped, the terminal being busy with frames.
func setupLogger(cfg config.LogConfig) (func(), error) {
	if cfg.File == "" {
		fastpane.SetLogger(nil)
		return func() {}, nil
	}
	level, err := cfg.ParsedLevel()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	fastpane.SetLogger(log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "fastcalc",
	}))
	return func() {
		fastpane.SetLogger(nil)
		_ = f.Close()
	}, nil
}

func newScreen(backend string) (terminal.Screen, error) {
	switch backend {
	case config.BackendANSI:
		return terminal.NewProcess(), nil
	case config.BackendTCell:
		s, err := terminal.NewTCellScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, backend)
	}
}
