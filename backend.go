package fastpane

// Backend is the command sink a frame is drawn into. Implementations buffer
// commands until Flush; how they are encoded is entirely up to them.
// Every command may fail with an I/O fault, which aborts the frame.
type Backend interface {
	// MoveTo places the cursor at an absolute cell.
	MoveTo(row, col int) error
	// WriteText prints s at the cursor with the current attributes and
	// advances the cursor by one column per rune.
	WriteText(s string) error
	SetForeground(c Color) error
	SetBackground(c Color) error
	ResetAttributes() error
	SetCursorVisible(visible bool) error
	// ClearScreen blanks the whole terminal and homes the cursor.
	ClearScreen() error
	// Flush submits everything buffered since the previous flush.
	Flush() error
}

// Discarder is implemented by backends that can drop a partially buffered
// frame after a fault.
type Discarder interface {
	Discard()
}
