package config

import (
	"errors"
	"fmt"

	"github.com/yeeaiclub/fastpane"
)

// Pane names understood by the default application.
const (
	PaneCalculator = "calculator"
	PaneMemory     = "memory"
	PaneRule       = "rule"
	PaneHelp       = "help"
)

var (
	ErrUnknownPane        = errors.New("unknown pane")
	ErrUnknownOrientation = errors.New("unknown orientation")
	ErrInvalidLayout      = errors.New("invalid layout node")
)

// Layout is one node of the window tree as written in the config file. A
// node is either a leaf naming a pane or a container with children. A zero
// size means 1.
type Layout struct {
	Pane        string   `mapstructure:"pane"`
	Orientation string   `mapstructure:"orientation"`
	Size        float64  `mapstructure:"size"`
	Wrap        bool     `mapstructure:"wrap"`
	Children    []Layout `mapstructure:"children"`
}

// DefaultLayout puts the calculator and memory side by side above a rule
// and a help line.
func DefaultLayout() Layout {
	return Layout{
		Orientation: "column",
		Size:        1,
		Children: []Layout{
			{
				Orientation: "row",
				Size:        8,
				Children: []Layout{
					{Pane: PaneCalculator, Size: 1.0, Wrap: true},
					{Pane: PaneMemory, Size: 1.1, Wrap: true},
				},
			},
			{Pane: PaneRule, Size: 0.4},
			{Pane: PaneHelp, Size: 1},
		},
	}
}

func (l Layout) isZero() bool {
	return l.Pane == "" && len(l.Children) == 0
}

func (l Layout) relativeSize() float64 {
	if l.Size == 0 {
		return 1
	}
	return l.Size
}

// Build turns the layout into a node tree, looking panes up by name. Errors
// name the offending node, for example "layout.children[1]: unknown pane".
func (l Layout) Build(panes map[string]fastpane.Provider) (fastpane.Node, error) {
	return l.build(panes, "layout")
}

func (l Layout) build(panes map[string]fastpane.Provider, path string) (fastpane.Node, error) {
	switch {
	case l.Pane != "" && len(l.Children) > 0:
		return nil, fmt.Errorf("%s: %w: both pane and children set", path, ErrInvalidLayout)
	case l.Pane != "":
		p, ok := panes[l.Pane]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownPane, l.Pane)
		}
		w, err := fastpane.NewWindow(p, fastpane.RegionConfig{RelativeSize: l.relativeSize(), Wrapping: l.Wrap})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return w, nil
	case len(l.Children) == 0:
		return nil, fmt.Errorf("%s: %w: neither pane nor children set", path, ErrInvalidLayout)
	}

	orientation, err := parseOrientation(l.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	children := make([]fastpane.Node, 0, len(l.Children))
	for i, child := range l.Children {
		node, err := child.build(panes, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	c, err := fastpane.NewContainer(orientation, l.relativeSize(), children...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func parseOrientation(s string) (fastpane.Orientation, error) {
	switch s {
	case "", "column":
		return fastpane.Column, nil
	case "row":
		return fastpane.Row, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOrientation, s)
	}
}
