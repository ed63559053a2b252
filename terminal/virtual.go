package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yeeaiclub/fastpane"
)

// ErrFault is the default error returned by commands set up to fail with
// FailOn.
var ErrFault = errors.New("virtual terminal fault")

// Cell is one character cell of a Virtual terminal.
type Cell struct {
	Rune rune
	Fg   fastpane.Color
	Bg   fastpane.Color
}

var blankCell = Cell{Rune: ' '}

// Virtual is an in-memory terminal. Commands draw into a pending grid which
// becomes visible on Flush, so tests can observe exactly what a frame looked
// like when it was submitted. It also records every command and can be made
// to fail.
type Virtual struct {
	size    fastpane.Size
	pending [][]Cell
	visible [][]Cell

	cursor        fastpane.Point
	cursorVisible bool
	fg, bg        fastpane.Color

	flushedCursor        fastpane.Point
	flushedCursorVisible bool

	commands []string
	faults   map[string]error
	flushes  int
	discards int
	events   []Event
	started  bool
}

func NewVirtual(rows, cols int) *Virtual {
	v := &Virtual{
		size:                 fastpane.Size{Rows: rows, Cols: cols},
		cursorVisible:        true,
		flushedCursorVisible: true,
		faults:               make(map[string]error),
	}
	v.pending = newGrid(v.size)
	v.visible = newGrid(v.size)
	return v
}

func newGrid(size fastpane.Size) [][]Cell {
	grid := make([][]Cell, max(size.Rows, 0))
	for r := range grid {
		grid[r] = make([]Cell, max(size.Cols, 0))
		for c := range grid[r] {
			grid[r][c] = blankCell
		}
	}
	return grid
}

func copyGrid(dst, src [][]Cell) {
	for r := range src {
		copy(dst[r], src[r])
	}
}

// FailOn makes every later call of the named command return err. Command
// names are the Backend method names, for example "WriteText" or "Flush".
// A nil err removes the fault.
func (v *Virtual) FailOn(command string, err error) {
	if err == nil {
		delete(v.faults, command)
		return
	}
	v.faults[command] = err
}

func (v *Virtual) record(command string, format string, args ...any) error {
	if err, ok := v.faults[command]; ok {
		return fmt.Errorf("%s: %w", command, err)
	}
	entry := command
	if format != "" {
		entry += "(" + fmt.Sprintf(format, args...) + ")"
	}
	v.commands = append(v.commands, entry)
	return nil
}

func (v *Virtual) MoveTo(row, col int) error {
	if err := v.record("MoveTo", "%d,%d", row, col); err != nil {
		return err
	}
	v.cursor = fastpane.Point{Row: row, Col: col}
	return nil
}

// WriteText puts one rune per cell from the cursor onwards. Cells outside
// the screen are dropped; the cursor still advances.
func (v *Virtual) WriteText(s string) error {
	if err := v.record("WriteText", "%q", s); err != nil {
		return err
	}
	for _, r := range s {
		if v.inBounds(v.cursor) {
			v.pending[v.cursor.Row][v.cursor.Col] = Cell{Rune: r, Fg: v.fg, Bg: v.bg}
		}
		v.cursor.Col++
	}
	return nil
}

func (v *Virtual) SetForeground(c fastpane.Color) error {
	if err := v.record("SetForeground", "%s", c); err != nil {
		return err
	}
	v.fg = c
	return nil
}

func (v *Virtual) SetBackground(c fastpane.Color) error {
	if err := v.record("SetBackground", "%s", c); err != nil {
		return err
	}
	v.bg = c
	return nil
}

func (v *Virtual) ResetAttributes() error {
	if err := v.record("ResetAttributes", ""); err != nil {
		return err
	}
	v.fg, v.bg = fastpane.DefaultColor, fastpane.DefaultColor
	return nil
}

func (v *Virtual) SetCursorVisible(visible bool) error {
	if err := v.record("SetCursorVisible", "%t", visible); err != nil {
		return err
	}
	v.cursorVisible = visible
	return nil
}

func (v *Virtual) ClearScreen() error {
	if err := v.record("ClearScreen", ""); err != nil {
		return err
	}
	v.pending = newGrid(v.size)
	v.cursor = fastpane.Point{}
	return nil
}

func (v *Virtual) Flush() error {
	if err := v.record("Flush", ""); err != nil {
		return err
	}
	copyGrid(v.visible, v.pending)
	v.flushedCursor = v.cursor
	v.flushedCursorVisible = v.cursorVisible
	v.flushes++
	return nil
}

// Discard throws away everything drawn since the last flush.
func (v *Virtual) Discard() {
	copyGrid(v.pending, v.visible)
	v.cursor = v.flushedCursor
	v.cursorVisible = v.flushedCursorVisible
	v.fg, v.bg = fastpane.DefaultColor, fastpane.DefaultColor
	v.discards++
}

func (v *Virtual) inBounds(p fastpane.Point) bool {
	return p.Row >= 0 && p.Row < v.size.Rows && p.Col >= 0 && p.Col < v.size.Cols
}

func (v *Virtual) Start() error {
	v.started = true
	return nil
}

func (v *Virtual) Stop() error {
	v.started = false
	return nil
}

func (v *Virtual) Started() bool {
	return v.started
}

func (v *Virtual) Size() fastpane.Size {
	return v.size
}

// Resize changes the screen size, keeping the overlapping contents, and
// queues a ResizeEvent.
func (v *Virtual) Resize(rows, cols int) {
	size := fastpane.Size{Rows: rows, Cols: cols}
	pending, visible := newGrid(size), newGrid(size)
	for r := 0; r < min(rows, v.size.Rows); r++ {
		n := min(cols, v.size.Cols)
		copy(pending[r][:n], v.pending[r][:n])
		copy(visible[r][:n], v.visible[r][:n])
	}
	v.size, v.pending, v.visible = size, pending, visible
	v.events = append(v.events, ResizeEvent{Size: size})
}

// Inject queues events for PollEvent.
func (v *Virtual) Inject(events ...Event) {
	v.events = append(v.events, events...)
}

// InjectKeys queues one key event per rune of s.
func (v *Virtual) InjectKeys(s string) {
	for _, r := range s {
		v.events = append(v.events, withShift(KeyEvent{Key: KeyRune, Rune: r}))
	}
}

// PollEvent returns the next queued event, or io.EOF once the queue is empty.
func (v *Virtual) PollEvent() (Event, error) {
	if len(v.events) == 0 {
		return nil, io.EOF
	}
	ev := v.events[0]
	v.events = v.events[1:]
	return ev, nil
}

// Line returns the visible text of a row.
func (v *Virtual) Line(row int) string {
	return gridLine(v.visible, row)
}

// Lines returns every visible row.
func (v *Virtual) Lines() []string {
	lines := make([]string, len(v.visible))
	for r := range v.visible {
		lines[r] = gridLine(v.visible, r)
	}
	return lines
}

// PendingLine returns a row as drawn so far in the current, unflushed frame.
func (v *Virtual) PendingLine(row int) string {
	return gridLine(v.pending, row)
}

func gridLine(grid [][]Cell, row int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	var b strings.Builder
	for _, cell := range grid[row] {
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

// CellAt returns a visible cell. Out of range positions return a blank cell.
func (v *Virtual) CellAt(row, col int) Cell {
	if !v.inBounds(fastpane.Point{Row: row, Col: col}) {
		return blankCell
	}
	return v.visible[row][col]
}

// Cursor is the cursor position as of the last flush.
func (v *Virtual) Cursor() fastpane.Point {
	return v.flushedCursor
}

func (v *Virtual) CursorVisible() bool {
	return v.flushedCursorVisible
}

func (v *Virtual) Flushes() int {
	return v.flushes
}

func (v *Virtual) Discards() int {
	return v.discards
}

// Commands returns the successful commands recorded so far.
func (v *Virtual) Commands() []string {
	return v.commands
}

func (v *Virtual) ResetCommands() {
	v.commands = nil
}
