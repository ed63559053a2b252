package fastpane_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/terminal"
)

// fill paints every cell of its window with one rune.
func fill(r rune) fastpane.Provider {
	return fastpane.ProviderFunc(func(size fastpane.Size) []fastpane.Action {
		var out []fastpane.Action
		for row := 0; row < size.Rows; row++ {
			out = append(out, fastpane.MoveTo{Row: row, Col: 0}, fastpane.Print(string(repeat(r, size.Cols))))
		}
		return out
	})
}

func repeat(r rune, n int) []rune {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return runes
}

func leaf(t *testing.T, p fastpane.Provider, size float64) *fastpane.Window {
	t.Helper()
	w, err := fastpane.NewWindow(p, fastpane.RegionConfig{RelativeSize: size})
	require.NoError(t, err)
	return w
}

func TestContainer_SplitRow(t *testing.T) {
	c := fastpane.MustContainer(fastpane.Row, 1,
		leaf(t, fill('a'), 1),
		leaf(t, fill('b'), 2),
	)

	regions := c.Split(fastpane.Point{Row: 2, Col: 3}, fastpane.Size{Rows: 4, Cols: 10})
	assert.Equal(t, []fastpane.Region{
		{Origin: fastpane.Point{Row: 2, Col: 3}, Size: fastpane.Size{Rows: 4, Cols: 4}},
		{Origin: fastpane.Point{Row: 2, Col: 7}, Size: fastpane.Size{Rows: 4, Cols: 6}},
	}, regions)
}

func TestContainer_SplitColumn(t *testing.T) {
	c := fastpane.MustContainer(fastpane.Column, 1,
		leaf(t, fill('a'), 1),
		leaf(t, fill('b'), 1),
	)

	regions := c.Split(fastpane.Point{}, fastpane.Size{Rows: 10, Cols: 7})
	assert.Equal(t, []fastpane.Region{
		{Origin: fastpane.Point{}, Size: fastpane.Size{Rows: 5, Cols: 7}},
		{Origin: fastpane.Point{Row: 5}, Size: fastpane.Size{Rows: 5, Cols: 7}},
	}, regions)
}

func TestContainer_DrawTilesRegion(t *testing.T) {
	root := fastpane.MustContainer(fastpane.Column, 1,
		fastpane.MustContainer(fastpane.Row, 2,
			leaf(t, fill('a'), 1),
			leaf(t, fill('b'), 1.1),
		),
		leaf(t, fill('c'), 1),
	)

	screen := terminal.NewVirtual(3, 7)
	var cursor fastpane.Point
	require.NoError(t, root.Draw(screen, &cursor, fastpane.Point{}, screen.Size()))
	require.NoError(t, screen.Flush())

	assert.Equal(t, []string{
		"aaaabbb",
		"aaaabbb",
		"ccccccc",
	}, screen.Lines())
}

func TestContainer_RegionsTileWithoutOverlap(t *testing.T) {
	root := fastpane.MustContainer(fastpane.Column, 1,
		fastpane.MustContainer(fastpane.Row, 8,
			leaf(t, fill('a'), 1.0),
			leaf(t, fill('b'), 1.1),
		),
		leaf(t, fill('c'), 0.4),
		fastpane.MustContainer(fastpane.Row, 1,
			leaf(t, fill('d'), 3),
			leaf(t, fill('e'), 1),
			leaf(t, fill('f'), 0.5),
		),
	)

	for _, size := range []fastpane.Size{{Rows: 1, Cols: 1}, {Rows: 9, Cols: 13}, {Rows: 24, Cols: 80}, {Rows: 50, Cols: 211}} {
		placements := fastpane.Placements(root, size)
		require.Len(t, placements, 6)

		area := 0
		for i, p := range placements {
			area += p.Region.Size.Rows * p.Region.Size.Cols
			assert.GreaterOrEqual(t, p.Region.Origin.Row, 0)
			assert.GreaterOrEqual(t, p.Region.Origin.Col, 0)
			assert.LessOrEqual(t, p.Region.Bottom(), size.Rows)
			assert.LessOrEqual(t, p.Region.Right(), size.Cols)
			for _, q := range placements[i+1:] {
				assert.False(t, p.Region.Overlaps(q.Region), "size %s: %v overlaps %v", size, p.Region, q.Region)
			}
		}
		assert.Equal(t, size.Rows*size.Cols, area, "size %s", size)
	}
}

func TestContainer_SharedCursorFlowsBetweenChildren(t *testing.T) {
	var seen []fastpane.Point
	probe := func(cursor *fastpane.Point) fastpane.Provider {
		return fastpane.ProviderFunc(func(fastpane.Size) []fastpane.Action {
			seen = append(seen, *cursor)
			return []fastpane.Action{fastpane.Print("xy")}
		})
	}

	var cursor fastpane.Point
	root := fastpane.MustContainer(fastpane.Row, 1,
		leaf(t, probe(&cursor), 1),
		leaf(t, probe(&cursor), 1),
	)
	screen := terminal.NewVirtual(1, 6)
	require.NoError(t, root.Draw(screen, &cursor, fastpane.Point{}, screen.Size()))

	assert.Equal(t, []fastpane.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, seen)
	assert.Equal(t, fastpane.Point{Row: 0, Col: 5}, cursor)
}

func TestContainer_ChildErrorNamesChild(t *testing.T) {
	root := fastpane.MustContainer(fastpane.Row, 1,
		leaf(t, actions(), 1),
		leaf(t, fill('b'), 1),
	)
	screen := terminal.NewVirtual(1, 4)
	screen.FailOn("WriteText", terminal.ErrFault)

	var cursor fastpane.Point
	err := root.Draw(screen, &cursor, fastpane.Point{}, screen.Size())
	require.Error(t, err)
	assert.True(t, errors.Is(err, terminal.ErrFault))
	assert.Contains(t, err.Error(), "container child 1")
}

func TestNewContainer_Errors(t *testing.T) {
	ok := leaf(t, fill('a'), 1)

	_, err := fastpane.NewContainer(fastpane.Row, 1)
	assert.ErrorIs(t, err, fastpane.ErrNoChildren)

	_, err = fastpane.NewContainer(fastpane.Row, 0, ok)
	assert.ErrorIs(t, err, fastpane.ErrInvalidSize)

	_, err = fastpane.NewContainer(fastpane.Column, 1, ok, nil)
	assert.ErrorIs(t, err, fastpane.ErrNilNode)

	assert.Panics(t, func() {
		fastpane.MustContainer(fastpane.Row, -2, ok)
	})
}
