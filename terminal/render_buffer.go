package terminal

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// RenderBuffer builds one frame of escape sequences.
type RenderBuffer struct {
	builder strings.Builder
}

func NewRenderBuffer() *RenderBuffer {
	return &RenderBuffer{}
}

func (rb *RenderBuffer) BeginSync() {
	rb.builder.WriteString(termenv.CSI + "?2026h")
}

func (rb *RenderBuffer) EndSync() {
	rb.builder.WriteString(termenv.CSI + "?2026l")
}

func (rb *RenderBuffer) ClearAll() {
	rb.builder.WriteString(termenv.CSI + "2J" + termenv.CSI + "H")
}

// MoveTo positions the cursor at a zero-based cell.
func (rb *RenderBuffer) MoveTo(row, col int) {
	rb.builder.WriteString(termenv.CSI)
	rb.builder.WriteString(strconv.Itoa(row + 1))
	rb.builder.WriteByte(';')
	rb.builder.WriteString(strconv.Itoa(col + 1))
	rb.builder.WriteByte('H')
}

// SGR writes a select graphic rendition sequence with the given parameters.
func (rb *RenderBuffer) SGR(params string) {
	rb.builder.WriteString(termenv.CSI)
	rb.builder.WriteString(params)
	rb.builder.WriteByte('m')
}

func (rb *RenderBuffer) ShowCursor() {
	rb.builder.WriteString(termenv.CSI + termenv.ShowCursorSeq)
}

func (rb *RenderBuffer) HideCursor() {
	rb.builder.WriteString(termenv.CSI + termenv.HideCursorSeq)
}

func (rb *RenderBuffer) Write(text string) {
	rb.builder.WriteString(text)
}

func (rb *RenderBuffer) Len() int {
	return rb.builder.Len()
}

func (rb *RenderBuffer) Reset() {
	rb.builder.Reset()
}

func (rb *RenderBuffer) String() string {
	return rb.builder.String()
}
