package app

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yeeaiclub/fastpane/terminal"
)

// Action is something the app does on a key before the calculator sees it.
type Action string

const (
	ActionQuit   Action = "quit"
	ActionClear  Action = "clear"
	ActionRedraw Action = "redraw"
)

var ErrUnknownAction = errors.New("unknown key action")

// KeybindingsConfig maps actions to key ids such as "ctrl+c" or "escape".
type KeybindingsConfig map[string][]string

var defaultKeybindings = map[Action][]string{
	ActionQuit:   {"ctrl+c", "ctrl+d"},
	ActionClear:  {"ctrl+u"},
	ActionRedraw: {"ctrl+l"},
}

type Keybindings struct {
	actionToKeys map[Action][]string
}

// NewKeybindings starts from the defaults and replaces the keys of every
// action named in config.
func NewKeybindings(config KeybindingsConfig) (*Keybindings, error) {
	kb := &Keybindings{actionToKeys: make(map[Action][]string)}
	for action, keys := range defaultKeybindings {
		kb.actionToKeys[action] = append([]string{}, keys...)
	}

	for name, keys := range config {
		action := Action(name)
		if _, ok := defaultKeybindings[action]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
		}
		if keys != nil {
			kb.actionToKeys[action] = append([]string{}, keys...)
		}
	}
	return kb, nil
}

// Match returns the action bound to ev.
func (kb *Keybindings) Match(ev terminal.KeyEvent) (Action, bool) {
	id := ev.String()
	actions := make([]Action, 0, len(kb.actionToKeys))
	for action := range kb.actionToKeys {
		actions = append(actions, action)
	}
	// stable when two actions share a key
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, action := range actions {
		for _, key := range kb.actionToKeys[action] {
			if key == id {
				return action, true
			}
		}
	}
	return "", false
}

func (kb *Keybindings) Keys(action Action) []string {
	if keys, ok := kb.actionToKeys[action]; ok {
		return append([]string{}, keys...)
	}
	return []string{}
}
