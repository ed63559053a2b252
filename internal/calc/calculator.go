// Package calc is an RPN calculator drawn into fastpane windows.
package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/terminal"
)

// Theme colours the calculator panes.
type Theme struct {
	Stack  fastpane.Color
	Buffer fastpane.Color
	Title  fastpane.Color
	Memory fastpane.Color
}

// Response tells the caller what to do after a key.
type Response int

const (
	NoAction Response = iota
	Exit
)

type Calculator struct {
	stack     Stack
	buffer    []rune
	registers Registers
	theme     Theme
}

// New returns a calculator saving named values into registers, which may be
// nil when there is no memory pane.
func New(registers Registers, theme Theme) *Calculator {
	return &Calculator{
		buffer:    make([]rune, 0, 256),
		registers: registers,
		theme:     theme,
	}
}

func (c *Calculator) Stack() *Stack {
	return &c.stack
}

// Buffer returns the pending input.
func (c *Calculator) Buffer() string {
	return string(c.buffer)
}

// HandleKey applies a key press. Keys held with anything but shift are
// ignored.
func (c *Calculator) HandleKey(ev terminal.KeyEvent) Response {
	if ev.Mod&^terminal.ModShift != 0 {
		return NoAction
	}

	switch ev.Key {
	case terminal.KeyEscape:
		return Exit
	case terminal.KeyBackspace:
		if n := len(c.buffer); n > 0 {
			c.buffer = c.buffer[:n-1]
		}
	case terminal.KeyEnter:
		c.enter()
	case terminal.KeyRune:
		c.char(ev.Rune)
	}
	return NoAction
}

func (c *Calculator) ClearBuffer() {
	c.buffer = c.buffer[:0]
}

// Paste appends text to the input buffer.
func (c *Calculator) Paste(text string) {
	c.buffer = append(c.buffer, []rune(fastpane.Sanitize(text))...)
}

func (c *Calculator) char(r rune) {
	if word, ok := keyOperators[r]; ok {
		c.run(operators[word])
		return
	}
	c.buffer = append(c.buffer, r)
}

func (c *Calculator) run(op operator) {
	if op.binary && len(c.buffer) > 0 {
		if v, err := strconv.ParseFloat(string(c.buffer), 64); err == nil {
			c.stack.RotateIn(v)
		}
	}
	op.apply(&c.stack)
	c.buffer = c.buffer[:0]
}

func (c *Calculator) enter() {
	text := strings.TrimSpace(string(c.buffer))
	defer func() { c.buffer = c.buffer[:0] }()

	if text == "" {
		c.stack.RotateIn(c.stack.X())
		return
	}
	if op, ok := operators[text]; ok {
		op.apply(&c.stack)
		return
	}
	if cmd, name, ok := registerCommand(text); ok {
		c.register(cmd, name)
		return
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		c.stack.RotateIn(v)
	}
}

// registerCommand splits "sto a" into its command and register name.
func registerCommand(text string) (string, rune, bool) {
	cmd, arg, ok := strings.Cut(text, " ")
	if !ok {
		return "", 0, false
	}
	switch cmd {
	case cmdStore, cmdRecall, cmdDelete:
	default:
		return "", 0, false
	}
	arg = strings.TrimSpace(arg)
	name, size := utf8.DecodeRuneInString(arg)
	if size == 0 || size != len(arg) {
		return "", 0, false
	}
	return cmd, name, true
}

func (c *Calculator) register(cmd string, name rune) {
	if c.registers == nil {
		return
	}
	switch cmd {
	case cmdStore:
		c.registers.Store(name, c.stack.X())
	case cmdRecall:
		if v, ok := c.registers.Recall(name); ok {
			c.stack.RotateIn(v)
		}
	case cmdDelete:
		c.registers.Delete(name)
	}
}

// Render draws the registers from the top of the stack down to x, then the
// input buffer below a blank line.
func (c *Calculator) Render(fastpane.Size) []fastpane.Action {
	out := make([]fastpane.Action, 0, StackSize*3+8)
	out = append(out, fastpane.HideCursor{}, fastpane.MoveTo{Row: 0, Col: 0})
	for i := StackSize - 1; i >= 0; i-- {
		out = append(out,
			fastpane.Print(FormatValue(c.stack.nums[i]), fastpane.Fg(c.theme.Stack)),
			fastpane.ClearLineRemainder{},
			fastpane.MoveToNextLine{Lines: 1},
		)
	}
	out = append(out,
		fastpane.ClearLineRemainder{},
		fastpane.MoveToNextLine{Lines: 1},
		fastpane.Print(string(c.buffer), fastpane.Fg(c.theme.Buffer)),
		fastpane.ClearLineRemainder{},
		fastpane.ClearRegionRemainder{},
	)
	return out
}
