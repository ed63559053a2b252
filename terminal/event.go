package terminal

import (
	"fmt"

	"github.com/yeeaiclub/fastpane"
)

// Event is something that happened on the terminal: a key press, a paste or
// a resize.
type Event interface {
	event()
}

type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
}

func (k Key) String() string {
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ModMask holds the modifier keys held during a key press.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModAlt
	ModCtrl
)

type KeyEvent struct {
	Key  Key
	Rune rune // set when Key is KeyRune
	Mod  ModMask
}

// String renders the event as a key id such as "ctrl+c", "shift+up" or "x".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod&ModAlt != 0 {
		name = "alt+" + name
	}
	if e.Mod&ModCtrl != 0 {
		name = "ctrl+" + name
	}
	if e.Mod&ModShift != 0 {
		name = "shift+" + name
	}
	return name
}

// PasteEvent carries bracketed paste content.
type PasteEvent struct {
	Text string
}

// ResizeEvent reports the new terminal size.
type ResizeEvent struct {
	Size fastpane.Size
}

func (KeyEvent) event()    {}
func (PasteEvent) event()  {}
func (ResizeEvent) event() {}
