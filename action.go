package fastpane

import "fmt"

// Action is one drawing instruction produced by a Provider. Coordinates are
// local to the window the provider is bound to. Actions are interpreted
// strictly in order because each one starts where the previous left the cursor.
type Action interface {
	action()
}

// MoveTo places the cursor at a local cell. Out of range values are clamped
// to the window.
type MoveTo struct {
	Row int
	Col int
}

// MoveToNextLine advances Lines rows and returns to the window's first column.
type MoveToNextLine struct {
	Lines int
}

// ClearLineRemainder blanks the current row from the cursor to the window's
// right edge. The cursor does not move.
type ClearLineRemainder struct{}

// ClearRegionRemainder blanks from the cursor to the window's bottom-right
// corner. The cursor does not move.
type ClearRegionRemainder struct{}

// Write prints styled text at the cursor using the window's fitting policy.
type Write struct {
	Text StyledText
}

type HideCursor struct{}

type ShowCursor struct{}

func (MoveTo) action()               {}
func (MoveToNextLine) action()       {}
func (ClearLineRemainder) action()   {}
func (ClearRegionRemainder) action() {}
func (Write) action()                {}
func (HideCursor) action()           {}
func (ShowCursor) action()           {}

// Print is shorthand for a Write of text with the given style.
func Print(text string, style ...StyleProperty) Write {
	return Write{Text: NewStyledText(text, style...)}
}

func (a MoveTo) String() string {
	return fmt.Sprintf("MoveTo(%d,%d)", a.Row, a.Col)
}

func (a MoveToNextLine) String() string {
	return fmt.Sprintf("MoveToNextLine(%d)", a.Lines)
}

func (ClearLineRemainder) String() string {
	return "ClearLineRemainder"
}

func (ClearRegionRemainder) String() string {
	return "ClearRegionRemainder"
}

func (a Write) String() string {
	return fmt.Sprintf("Write(%q)", a.Text.Text)
}

func (HideCursor) String() string {
	return "HideCursor"
}

func (ShowCursor) String() string {
	return "ShowCursor"
}
