package components

import (
	"strings"

	"github.com/yeeaiclub/fastpane"
)

// Text displays styled lines inside its window, optionally padded.
// Every row it does not own is cleared, so stale output never survives a frame.
type Text struct {
	lines    []fastpane.StyledText
	paddingX int // left padding
	paddingY int // top padding
}

func NewText(paddingX int, paddingY int, lines ...fastpane.StyledText) *Text {
	return &Text{
		lines:    lines,
		paddingX: max(0, paddingX),
		paddingY: max(0, paddingY),
	}
}

// SetText replaces the content with text split on newlines, every line
// carrying the same style.
func (t *Text) SetText(text string, style ...fastpane.StyleProperty) {
	t.lines = t.lines[:0]
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		t.lines = append(t.lines, fastpane.NewStyledText(line, style...))
	}
}

func (t *Text) SetLines(lines ...fastpane.StyledText) {
	t.lines = lines
}

func (t *Text) AddLine(line fastpane.StyledText) {
	t.lines = append(t.lines, line)
}

func (t *Text) Lines() []fastpane.StyledText {
	return t.lines
}

func (t *Text) Render(size fastpane.Size) []fastpane.Action {
	if size.Empty() {
		return nil
	}

	var out []fastpane.Action
	row := 0
	for ; row < t.paddingY && row < size.Rows; row++ {
		out = append(out, fastpane.MoveTo{Row: row}, fastpane.ClearLineRemainder{})
	}

	for _, line := range t.lines {
		if row >= size.Rows {
			break
		}
		out = append(out, fastpane.MoveTo{Row: row})
		if t.paddingX > 0 {
			out = append(out, fastpane.Print(strings.Repeat(" ", t.paddingX)))
		}
		out = append(out, fastpane.Write{Text: line}, fastpane.ClearLineRemainder{})
		row++
	}

	if row < size.Rows {
		out = append(out, fastpane.MoveTo{Row: row}, fastpane.ClearRegionRemainder{})
	}
	return out
}
