package fastpane

import "fmt"

// Orientation is the axis a container splits along.
type Orientation uint8

const (
	// Row places children side by side and divides the columns.
	Row Orientation = iota
	// Column stacks children and divides the rows.
	Column
)

func (o Orientation) String() string {
	if o == Column {
		return "column"
	}
	return "row"
}

// Container is an interior layout node dividing its region between its
// children by relative size.
type Container struct {
	orientation  Orientation
	relativeSize float64
	children     []Node
}

func NewContainer(o Orientation, relativeSize float64, children ...Node) (*Container, error) {
	if !validRelativeSize(relativeSize) {
		return nil, fmt.Errorf("container size %v: %w", relativeSize, ErrInvalidSize)
	}
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("child %d: %w", i, ErrNilNode)
		}
		if !validRelativeSize(child.RelativeSize()) {
			return nil, fmt.Errorf("child %d size %v: %w", i, child.RelativeSize(), ErrInvalidSize)
		}
	}
	return &Container{
		orientation:  o,
		relativeSize: relativeSize,
		children:     append([]Node(nil), children...),
	}, nil
}

// MustContainer is like NewContainer but panics on a configuration error.
func MustContainer(o Orientation, relativeSize float64, children ...Node) *Container {
	c, err := NewContainer(o, relativeSize, children...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Container) RelativeSize() float64 {
	return c.relativeSize
}

func (c *Container) Orientation() Orientation {
	return c.orientation
}

func (c *Container) Children() []Node {
	return c.children
}

// Split returns the region of every child, in child order. Child origins
// advance by the running sum of the previous extents along the split axis;
// the other axis is inherited unchanged.
func (c *Container) Split(origin Point, size Size) []Region {
	weights := make([]float64, len(c.children))
	for i, child := range c.children {
		weights[i] = child.RelativeSize()
	}

	total := size.Cols
	if c.orientation == Column {
		total = size.Rows
	}
	extents := Partition(weights, total)

	regions := make([]Region, len(extents))
	offset := 0
	for i, extent := range extents {
		r := Region{Origin: origin, Size: size}
		if c.orientation == Column {
			r.Origin.Row += offset
			r.Size.Rows = extent
		} else {
			r.Origin.Col += offset
			r.Size.Cols = extent
		}
		regions[i] = r
		offset += extent
	}
	return regions
}

func (c *Container) Draw(out Backend, cursor *Point, origin Point, size Size) error {
	for i, r := range c.Split(origin, size) {
		if err := c.children[i].Draw(out, cursor, r.Origin, r.Size); err != nil {
			return fmt.Errorf("container child %d: %w", i, err)
		}
	}
	return nil
}
