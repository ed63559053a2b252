package components

import (
	"strings"

	"github.com/yeeaiclub/fastpane"
)

const defaultRuleRune = '─'

// Rule draws a horizontal line across the first row of its window.
type Rule struct {
	char  rune
	color fastpane.Color
}

func NewRule(color fastpane.Color) *Rule {
	return &Rule{char: defaultRuleRune, color: color}
}

// WithRune changes the rune the line is drawn with.
func (r *Rule) WithRune(char rune) *Rule {
	r.char = char
	return r
}

func (r *Rule) Render(size fastpane.Size) []fastpane.Action {
	if size.Empty() {
		return nil
	}
	out := []fastpane.Action{
		fastpane.MoveTo{},
		fastpane.Print(strings.Repeat(string(r.char), size.Cols), fastpane.Fg(r.color)),
	}
	if size.Rows > 1 {
		out = append(out, fastpane.MoveTo{Row: 1}, fastpane.ClearRegionRemainder{})
	}
	return out
}
