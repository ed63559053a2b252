package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/yeeaiclub/fastpane"
)

// TCell draws into a tcell screen. Cells are set as commands arrive and
// become visible when Flush calls Show.
type TCell struct {
	screen        tcell.Screen
	pos           fastpane.Point
	style         tcell.Style
	cursorVisible bool
}

func NewTCell(screen tcell.Screen) *TCell {
	return &TCell{
		screen:        screen,
		style:         tcell.StyleDefault,
		cursorVisible: true,
	}
}

// NewTCellScreen creates a TCell backend on the controlling terminal.
func NewTCellScreen() (*TCell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewTCell(screen), nil
}

func (t *TCell) Start() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	t.screen.EnablePaste()
	t.screen.Clear()
	return nil
}

func (t *TCell) Stop() error {
	t.screen.Fini()
	return nil
}

func (t *TCell) Screen() tcell.Screen {
	return t.screen
}

func (t *TCell) MoveTo(row, col int) error {
	t.pos = fastpane.Point{Row: row, Col: col}
	return nil
}

func (t *TCell) WriteText(s string) error {
	for _, r := range s {
		t.screen.SetContent(t.pos.Col, t.pos.Row, r, nil, t.style)
		t.pos.Col++
	}
	return nil
}

func (t *TCell) SetForeground(c fastpane.Color) error {
	t.style = t.style.Foreground(tcellColor(c))
	return nil
}

func (t *TCell) SetBackground(c fastpane.Color) error {
	t.style = t.style.Background(tcellColor(c))
	return nil
}

func (t *TCell) ResetAttributes() error {
	t.style = tcell.StyleDefault
	return nil
}

func (t *TCell) SetCursorVisible(visible bool) error {
	t.cursorVisible = visible
	return nil
}

func (t *TCell) ClearScreen() error {
	t.screen.Clear()
	t.pos = fastpane.Point{}
	return nil
}

func (t *TCell) Flush() error {
	if t.cursorVisible {
		t.screen.ShowCursor(t.pos.Col, t.pos.Row)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

func (t *TCell) Size() fastpane.Size {
	w, h := t.screen.Size()
	return fastpane.Size{Rows: h, Cols: w}
}

// PollEvent waits for the next key, paste or resize event. Mouse and other
// tcell events are skipped.
func (t *TCell) PollEvent() (Event, error) {
	var paste []rune
	pasting := false
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil, io.EOF
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			return ResizeEvent{Size: fastpane.Size{Rows: h, Cols: w}}, nil
		case *tcell.EventPaste:
			if ev.Start() {
				pasting, paste = true, paste[:0]
				continue
			}
			pasting = false
			return PasteEvent{Text: string(paste)}, nil
		case *tcell.EventKey:
			key, ok := tcellKeyEvent(ev)
			if !ok {
				continue
			}
			if pasting {
				if key.Key == KeyRune {
					paste = append(paste, key.Rune)
				}
				continue
			}
			return key, nil
		}
	}
}

func tcellColor(c fastpane.Color) tcell.Color {
	switch c.Mode() {
	case fastpane.ColorANSI, fastpane.ColorPalette:
		return tcell.PaletteColor(int(c.Index()))
	case fastpane.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func tcellKeyEvent(ev *tcell.EventKey) (KeyEvent, bool) {
	mod := tcellMods(ev.Modifiers())
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return withShift(KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}), true
	case k == tcell.KeyBacktab:
		return KeyEvent{Key: KeyTab, Mod: mod | ModShift}, true
	default:
		if key, ok := tcellKeys[k]; ok {
			return KeyEvent{Key: key, Mod: mod}, true
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return KeyEvent{Key: KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Mod: mod | ModCtrl}, true
		}
	}
	return KeyEvent{}, false
}

func tcellMods(m tcell.ModMask) ModMask {
	var mod ModMask
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
