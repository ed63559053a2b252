package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/terminal"
)

// dirtyScreen returns a virtual screen whose every cell holds '#'.
func dirtyScreen(t *testing.T, rows, cols int) *terminal.Virtual {
	t.Helper()
	screen := terminal.NewVirtual(rows, cols)
	for r := 0; r < rows; r++ {
		require.NoError(t, screen.MoveTo(r, 0))
		require.NoError(t, screen.WriteText(strings.Repeat("#", cols)))
	}
	require.NoError(t, screen.Flush())
	return screen
}

func draw(t *testing.T, screen *terminal.Virtual, p fastpane.Provider) {
	t.Helper()
	w := fastpane.MustWindow(p, fastpane.RegionConfig{RelativeSize: 1})
	var cursor fastpane.Point
	require.NoError(t, w.Draw(screen, &cursor, fastpane.Point{}, screen.Size()))
	require.NoError(t, screen.Flush())
}

func TestNewText(t *testing.T) {
	text := NewText(-1, 2, fastpane.NewStyledText("a"))
	assert.Equal(t, 0, text.paddingX)
	assert.Equal(t, 2, text.paddingY)
	assert.Len(t, text.Lines(), 1)
}

func TestTextRender(t *testing.T) {
	tests := []struct {
		name     string
		text     *Text
		rows     int
		expected []string
	}{
		{
			name:     "empty clears the window",
			text:     NewText(0, 0),
			rows:     2,
			expected: []string{"      ", "      "},
		},
		{
			name:     "lines without padding",
			text:     NewText(0, 0, fastpane.NewStyledText("ab"), fastpane.NewStyledText("cde")),
			rows:     3,
			expected: []string{"ab    ", "cde   ", "      "},
		},
		{
			name:     "padding",
			text:     NewText(1, 1, fastpane.NewStyledText("ab"), fastpane.NewStyledText("cd")),
			rows:     4,
			expected: []string{"      ", " ab   ", " cd   ", "      "},
		},
		{
			name:     "lines past the bottom are dropped",
			text:     NewText(0, 0, fastpane.NewStyledText("1"), fastpane.NewStyledText("2"), fastpane.NewStyledText("3")),
			rows:     2,
			expected: []string{"1     ", "2     "},
		},
		{
			name:     "long lines are truncated",
			text:     NewText(2, 0, fastpane.NewStyledText("abcdefgh")),
			rows:     1,
			expected: []string{"  abcd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := dirtyScreen(t, tt.rows, 6)
			draw(t, screen, tt.text)
			assert.Equal(t, tt.expected, screen.Lines())
		})
	}
}

func TestTextSetText(t *testing.T) {
	text := NewText(0, 0)
	text.SetText("one\ntwo", fastpane.Fg(fastpane.Green))
	require.Len(t, text.Lines(), 2)
	assert.Equal(t, "two", text.Lines()[1].Text)

	screen := dirtyScreen(t, 3, 4)
	draw(t, screen, text)
	assert.Equal(t, []string{"one ", "two ", "    "}, screen.Lines())
	assert.Equal(t, fastpane.Green, screen.CellAt(1, 0).Fg)

	text.SetText("")
	assert.Empty(t, text.Lines())
}

func TestTextEmptySize(t *testing.T) {
	assert.Nil(t, NewText(0, 0, fastpane.NewStyledText("x")).Render(fastpane.Size{Cols: 3}))
}

func TestRuleRender(t *testing.T) {
	screen := dirtyScreen(t, 2, 5)
	draw(t, screen, NewRule(fastpane.Yellow))

	assert.Equal(t, []string{"─────", "     "}, screen.Lines())
	assert.Equal(t, fastpane.Yellow, screen.CellAt(0, 4).Fg)
}

func TestRuleWithRune(t *testing.T) {
	screen := terminal.NewVirtual(1, 3)
	draw(t, screen, NewRule(fastpane.DefaultColor).WithRune('='))
	assert.Equal(t, "===", screen.Line(0))
}

func TestSpacerClearsWindow(t *testing.T) {
	screen := dirtyScreen(t, 2, 3)
	draw(t, screen, NewSpacer())
	assert.Equal(t, []string{"   ", "   "}, screen.Lines())
	assert.Nil(t, NewSpacer().Render(fastpane.Size{}))
}
