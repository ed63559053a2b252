// Package app wires the calculator panes, the layout and a terminal screen
// into the fastcalc event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/components"
	"github.com/yeeaiclub/fastpane/internal/calc"
	"github.com/yeeaiclub/fastpane/internal/config"
	"github.com/yeeaiclub/fastpane/terminal"
)

var helpLines = []string{
	"esc quit  ^U clear  ^L redraw  enter push  + - * / %  N neg  S swap  P pow  R root  C pop",
	"words: sqrt nrt sqr pow neg swp sin cos tan asin acos atan deg rad exp idiv mod pop  sto/rcl/del a-z",
}

type App struct {
	screen   terminal.Screen
	renderer *fastpane.Renderer
	root     fastpane.Node
	calc     *calc.Calculator
	memory   *calc.Memory
	keys     *Keybindings
	logger   *log.Logger
}

// New builds the panes and the layout tree described by cfg. Renderer
// options are passed through.
func New(screen terminal.Screen, cfg *config.Config, opts ...fastpane.Option) (*App, error) {
	theme, err := cfg.Theme.Calculator()
	if err != nil {
		return nil, err
	}
	ruleColor, err := cfg.Theme.RuleColor()
	if err != nil {
		return nil, err
	}

	keys, err := NewKeybindings(KeybindingsConfig(cfg.Keys))
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	memory := calc.NewMemory(theme)
	calculator := calc.New(memory, theme)

	help := components.NewText(1, 0)
	for _, line := range helpLines {
		help.AddLine(fastpane.NewStyledText(line, fastpane.Fg(fastpane.BrightBlack)))
	}

	root, err := cfg.Layout.Build(map[string]fastpane.Provider{
		config.PaneCalculator: calculator,
		config.PaneMemory:     memory,
		config.PaneRule:       components.NewRule(ruleColor),
		config.PaneHelp:       help,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		screen:   screen,
		renderer: fastpane.NewRenderer(screen, opts...),
		root:     root,
		calc:     calculator,
		memory:   memory,
		keys:     keys,
		logger:   fastpane.Logger().WithPrefix("app"),
	}, nil
}

func (a *App) Calculator() *calc.Calculator {
	return a.calc
}

func (a *App) Memory() *calc.Memory {
	return a.memory
}

func (a *App) Renderer() *fastpane.Renderer {
	return a.renderer
}

// Run takes over the screen and draws a frame before every event until the
// user quits, the screen runs out of events or a frame fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		if err := a.screen.Stop(); err != nil {
			a.logger.Error("failed to restore terminal", "err", err)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.renderer.Render(a.root, a.screen.Size()); err != nil {
			return err
		}

		ev, err := a.screen.PollEvent()
		if errors.Is(err, io.EOF) {
			a.logger.Debug("event source closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("poll event: %w", err)
		}
		if a.handle(ev) == calc.Exit {
			return nil
		}
	}
}

func (a *App) handle(ev terminal.Event) calc.Response {
	switch ev := ev.(type) {
	case terminal.KeyEvent:
		action, ok := a.keys.Match(ev)
		if !ok {
			return a.calc.HandleKey(ev)
		}
		switch action {
		case ActionQuit:
			return calc.Exit
		case ActionClear:
			a.calc.ClearBuffer()
		case ActionRedraw:
			a.renderer.Invalidate()
		}
	case terminal.PasteEvent:
		a.calc.Paste(ev.Text)
	case terminal.ResizeEvent:
		// the next frame lays out for the new size
		a.logger.Debug("terminal resized", "size", ev.Size)
	}
	return calc.NoAction
}
