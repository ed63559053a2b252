package fastpane

import (
	"strings"
	"unicode/utf8"
)

// pen emits commands for one window and keeps the shared cursor equal to
// where the terminal cursor ends up.
type pen struct {
	out    Backend
	cursor *Point
	region Region
}

func (p *pen) moveTo(to Point) error {
	if err := p.out.MoveTo(to.Row, to.Col); err != nil {
		return err
	}
	*p.cursor = to
	return nil
}

func (p *pen) write(s string) error {
	if s == "" {
		return nil
	}
	if err := p.out.WriteText(s); err != nil {
		return err
	}
	p.cursor.Col += utf8.RuneCountInString(s)
	return nil
}

func (p *pen) blank(n int) error {
	if n <= 0 {
		return nil
	}
	return p.write(strings.Repeat(" ", n))
}

// enter pulls the cursor into the region before it is used as a drawing
// position. The column may rest one past the right edge, which is where a
// write that filled the row leaves it.
func (p *pen) enter() error {
	r := p.region
	to := Point{
		Row: clampInt(p.cursor.Row, r.Origin.Row, r.Bottom()-1),
		Col: clampInt(p.cursor.Col, r.Origin.Col, r.Right()),
	}
	if to == *p.cursor {
		return nil
	}
	return p.moveTo(to)
}

// local translates a provider coordinate, clamping it into the region.
func (p *pen) local(row, col int) Point {
	r := p.region
	return Point{
		Row: r.Origin.Row + clampInt(row, 0, r.Size.Rows-1),
		Col: r.Origin.Col + clampInt(col, 0, r.Size.Cols-1),
	}
}
