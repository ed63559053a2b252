package terminal

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/yeeaiclub/fastpane"
)

// ANSI is a Backend that encodes commands as escape sequences and writes a
// whole frame to the underlying writer in a single call on Flush.
type ANSI struct {
	w       io.Writer
	profile termenv.Profile
	sync    bool
	buf     *RenderBuffer
	sgr     sgrState
	flushed sgrState
}

type ANSIOption func(*ANSI)

// WithProfile sets the colour profile colours are downsampled to. The
// default is termenv.TrueColor.
func WithProfile(p termenv.Profile) ANSIOption {
	return func(a *ANSI) {
		a.profile = p
	}
}

// WithSyncOutput wraps every flushed frame in synchronized output mode
// (DEC private mode 2026) so terminals that support it paint the frame at
// once. On by default.
func WithSyncOutput(enabled bool) ANSIOption {
	return func(a *ANSI) {
		a.sync = enabled
	}
}

func NewANSI(w io.Writer, opts ...ANSIOption) *ANSI {
	a := &ANSI{
		w:       w,
		profile: termenv.TrueColor,
		sync:    true,
		buf:     NewRenderBuffer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *ANSI) MoveTo(row, col int) error {
	a.buf.MoveTo(row, col)
	return nil
}

func (a *ANSI) WriteText(s string) error {
	a.buf.Write(s)
	return nil
}

func (a *ANSI) SetForeground(c fastpane.Color) error {
	if !a.sgr.setForeground(c) {
		return nil
	}
	if seq := a.colorSequence(c, false); seq != "" {
		a.buf.SGR(seq)
	}
	return nil
}

func (a *ANSI) SetBackground(c fastpane.Color) error {
	if !a.sgr.setBackground(c) {
		return nil
	}
	if seq := a.colorSequence(c, true); seq != "" {
		a.buf.SGR(seq)
	}
	return nil
}

func (a *ANSI) ResetAttributes() error {
	if a.sgr.reset() {
		a.buf.SGR(termenv.ResetSeq)
	}
	return nil
}

func (a *ANSI) SetCursorVisible(visible bool) error {
	if visible {
		a.buf.ShowCursor()
	} else {
		a.buf.HideCursor()
	}
	return nil
}

func (a *ANSI) ClearScreen() error {
	a.buf.ClearAll()
	return nil
}

func (a *ANSI) Flush() error {
	if a.buf.Len() == 0 {
		return nil
	}
	frame := a.buf.String()
	if a.sync {
		out := NewRenderBuffer()
		out.BeginSync()
		out.Write(frame)
		out.EndSync()
		frame = out.String()
	}
	a.buf.Reset()
	if _, err := io.WriteString(a.w, frame); err != nil {
		a.sgr = a.flushed
		return fmt.Errorf("write frame: %w", err)
	}
	a.flushed = a.sgr
	return nil
}

// Discard drops everything buffered since the last flush.
func (a *ANSI) Discard() {
	a.buf.Reset()
	a.sgr = a.flushed
}

// Pending returns the commands buffered since the last flush.
func (a *ANSI) Pending() string {
	return a.buf.String()
}

func (a *ANSI) colorSequence(c fastpane.Color, bg bool) string {
	var tc termenv.Color
	switch c.Mode() {
	case fastpane.ColorANSI:
		tc = termenv.ANSIColor(c.Index())
	case fastpane.ColorPalette:
		tc = termenv.ANSI256Color(c.Index())
	case fastpane.ColorRGB:
		tc = termenv.RGBColor(c.Hex())
	default:
		if bg {
			return "49"
		}
		return "39"
	}
	tc = a.profile.Convert(tc)
	if tc == nil {
		return ""
	}
	return tc.Sequence(bg)
}
