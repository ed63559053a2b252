package fastpane

import "fmt"

// Point is a cell position, row first.
type Point struct {
	Row int
	Col int
}

func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Size is an extent in cells, rows first.
type Size struct {
	Rows int
	Cols int
}

// Empty reports whether the size has no drawable cell.
func (s Size) Empty() bool {
	return s.Rows <= 0 || s.Cols <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Region is an absolute rectangle on the terminal grid.
type Region struct {
	Origin Point
	Size   Size
}

func (r Region) Bottom() int {
	return r.Origin.Row + r.Size.Rows
}

func (r Region) Right() int {
	return r.Origin.Col + r.Size.Cols
}

// Contains reports whether p is one of the region's cells.
func (r Region) Contains(p Point) bool {
	return p.Row >= r.Origin.Row && p.Row < r.Bottom() &&
		p.Col >= r.Origin.Col && p.Col < r.Right()
}

// Overlaps reports whether the two regions share at least one cell.
func (r Region) Overlaps(o Region) bool {
	if r.Size.Empty() || o.Size.Empty() {
		return false
	}
	return r.Origin.Row < o.Bottom() && o.Origin.Row < r.Bottom() &&
		r.Origin.Col < o.Right() && o.Origin.Col < r.Right()
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
