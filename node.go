package fastpane

import "math"

// RegionConfig is the construction-time configuration of a window.
type RegionConfig struct {
	// RelativeSize is the weight compared against sibling weights.
	RelativeSize float64
	// Wrapping selects the text fitting policy: wrap onto following rows
	// when true, truncate at the right edge when false.
	Wrapping bool
}

// Node is an element of the layout tree. Draw renders the node into the
// absolute region described by origin and size, starting from and updating
// the shared cursor.
type Node interface {
	RelativeSize() float64
	Draw(out Backend, cursor *Point, origin Point, size Size) error
}

func validRelativeSize(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
