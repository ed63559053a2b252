package fastpane_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/terminal"
)

func twoPanes(t *testing.T) fastpane.Node {
	return fastpane.MustContainer(fastpane.Row, 1,
		leaf(t, fill('l'), 1),
		leaf(t, fill('r'), 1),
	)
}

func countCommand(commands []string, name string) int {
	n := 0
	for _, c := range commands {
		if c == name {
			n++
		}
	}
	return n
}

func TestRenderer_OneFlushPerFrame(t *testing.T) {
	screen := terminal.NewVirtual(2, 4)
	r := fastpane.NewRenderer(screen)
	root := twoPanes(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Render(root, screen.Size()))
	}

	assert.Equal(t, 3, screen.Flushes())
	assert.Equal(t, 3, countCommand(screen.Commands(), "Flush"))
	assert.Equal(t, 3, r.Frames())
	assert.Equal(t, []string{"llrr", "llrr"}, screen.Lines())
}

func TestRenderer_ClearsOnFirstFrameAndResize(t *testing.T) {
	screen := terminal.NewVirtual(2, 4)
	r := fastpane.NewRenderer(screen)
	root := twoPanes(t)

	require.NoError(t, r.Render(root, screen.Size()))
	require.NoError(t, r.Render(root, screen.Size()))
	assert.Equal(t, 1, countCommand(screen.Commands(), "ClearScreen"))

	screen.Resize(3, 6)
	require.NoError(t, r.Render(root, screen.Size()))
	assert.Equal(t, 2, countCommand(screen.Commands(), "ClearScreen"))
	assert.Equal(t, 2, r.FullRedraws())
	assert.Equal(t, []string{"lllrrr", "lllrrr", "lllrrr"}, screen.Lines())
}

func TestRenderer_WithoutClearOnResize(t *testing.T) {
	screen := terminal.NewVirtual(1, 2)
	r := fastpane.NewRenderer(screen, fastpane.WithClearOnResize(false))
	require.NoError(t, r.Render(twoPanes(t), screen.Size()))

	assert.Zero(t, countCommand(screen.Commands(), "ClearScreen"))
	assert.Zero(t, r.FullRedraws())
}

func TestRenderer_InvalidateClearsWithoutClearOnResize(t *testing.T) {
	screen := terminal.NewVirtual(1, 2)
	r := fastpane.NewRenderer(screen, fastpane.WithClearOnResize(false))
	root := twoPanes(t)

	require.NoError(t, r.Render(root, screen.Size()))
	r.Invalidate()
	require.NoError(t, r.Render(root, screen.Size()))
	require.NoError(t, r.Render(root, screen.Size()))

	assert.Equal(t, 1, countCommand(screen.Commands(), "ClearScreen"))
	assert.Equal(t, 1, r.FullRedraws())
}

func TestRenderer_AbortedFrameClearsWithoutClearOnResize(t *testing.T) {
	screen := terminal.NewVirtual(1, 2)
	r := fastpane.NewRenderer(screen, fastpane.WithClearOnResize(false))
	root := twoPanes(t)

	screen.FailOn("WriteText", terminal.ErrFault)
	require.Error(t, r.Render(root, screen.Size()))
	screen.FailOn("WriteText", nil)

	require.NoError(t, r.Render(root, screen.Size()))
	assert.Equal(t, 1, countCommand(screen.Commands(), "ClearScreen"))
	assert.Equal(t, 1, r.FullRedraws())
	assert.Equal(t, []string{"lr"}, screen.Lines())
}

func TestRenderFrame_StartsFromGivenCursor(t *testing.T) {
	screen := terminal.NewVirtual(2, 6)
	r := fastpane.NewRenderer(screen, fastpane.WithClearOnResize(false))
	root := fastpane.MustWindow(actions(fastpane.Print("ab")), fastpane.RegionConfig{RelativeSize: 1})

	// the terminal cursor already sits where RenderFrame is told it is
	require.NoError(t, screen.MoveTo(1, 3))
	require.NoError(t, r.RenderFrame(root, fastpane.Point{Row: 1, Col: 3}, screen.Size()))
	assert.Equal(t, "   ab ", screen.Line(1))
	assert.Equal(t, fastpane.Point{Row: 1, Col: 5}, r.Cursor())

	// Render continues from where the previous frame left the cursor, which
	// leaves room for a single rune
	require.NoError(t, r.Render(root, screen.Size()))
	assert.Equal(t, "   aba", screen.Line(1))
}

func TestRenderer_AbortsFrameOnFault(t *testing.T) {
	screen := terminal.NewVirtual(2, 4)
	r := fastpane.NewRenderer(screen)
	root := twoPanes(t)
	require.NoError(t, r.Render(root, screen.Size()))

	changed := fastpane.MustContainer(fastpane.Row, 1,
		leaf(t, fill('x'), 1),
		leaf(t, fill('y'), 1),
	)
	screen.FailOn("WriteText", terminal.ErrFault)
	err := r.Render(changed, screen.Size())

	require.Error(t, err)
	assert.True(t, errors.Is(err, terminal.ErrFault))
	assert.Contains(t, err.Error(), "render frame 2")
	assert.Equal(t, 1, screen.Flushes(), "an aborted frame is never flushed")
	assert.Equal(t, 1, screen.Discards())
	assert.Equal(t, []string{"llrr", "llrr"}, screen.Lines())
	assert.Equal(t, 1, r.Frames())

	// the next frame starts over from a cleared screen
	screen.FailOn("WriteText", nil)
	require.NoError(t, r.Render(changed, screen.Size()))
	assert.Equal(t, []string{"xxyy", "xxyy"}, screen.Lines())
	assert.Equal(t, 2, r.FullRedraws())
}

func TestRenderer_FlushFault(t *testing.T) {
	screen := terminal.NewVirtual(1, 2)
	screen.FailOn("Flush", terminal.ErrFault)
	r := fastpane.NewRenderer(screen)

	err := r.Render(twoPanes(t), screen.Size())
	require.Error(t, err)
	assert.ErrorIs(t, err, terminal.ErrFault)
	assert.Zero(t, r.Frames())
}

func TestRenderer_NilRoot(t *testing.T) {
	r := fastpane.NewRenderer(terminal.NewVirtual(1, 1))
	assert.ErrorIs(t, r.Render(nil, fastpane.Size{Rows: 1, Cols: 1}), fastpane.ErrNilNode)
}

func TestRenderer_WritesCrashLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "crash.log")
	screen := terminal.NewVirtual(2, 4)
	screen.FailOn("MoveTo", terminal.ErrFault)
	r := fastpane.NewRenderer(screen, fastpane.WithCrashLog(path))

	require.Error(t, r.Render(twoPanes(t), screen.Size()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, "Frame: 1")
	assert.Contains(t, report, "Terminal size: 2x4")
	assert.Contains(t, report, "virtual terminal fault")
	assert.Contains(t, report, "[1] origin=(0,2) size=2x2 wrap=false")
}

func TestPlacements(t *testing.T) {
	calc := leaf(t, fill('c'), 1.0)
	memory := leaf(t, fill('m'), 1.1)
	help := leaf(t, fill('h'), 1)
	root := fastpane.MustContainer(fastpane.Column, 1,
		fastpane.MustContainer(fastpane.Row, 3, calc, memory),
		help,
	)

	placements := fastpane.Placements(root, fastpane.Size{Rows: 4, Cols: 21})
	require.Len(t, placements, 3)

	assert.Same(t, calc, placements[0].Window)
	assert.Equal(t, []int{0, 0}, placements[0].Path)
	assert.Equal(t, fastpane.Region{Size: fastpane.Size{Rows: 3, Cols: 10}}, placements[0].Region)

	assert.Same(t, memory, placements[1].Window)
	assert.Equal(t, fastpane.Region{Origin: fastpane.Point{Col: 10}, Size: fastpane.Size{Rows: 3, Cols: 11}}, placements[1].Region)

	assert.Same(t, help, placements[2].Window)
	assert.Equal(t, []int{1}, placements[2].Path)
	assert.Equal(t, fastpane.Region{Origin: fastpane.Point{Row: 3}, Size: fastpane.Size{Rows: 1, Cols: 21}}, placements[2].Region)
}
