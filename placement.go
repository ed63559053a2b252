package fastpane

// Placement is the absolute region a window is drawn into for a given
// terminal size.
type Placement struct {
	// Path lists the child indexes from the root down to the window.
	Path   []int
	Window *Window
	Region Region
}

// Placements lays out root for size without drawing anything and returns
// every window's region in draw order.
func Placements(root Node, size Size) []Placement {
	var out []Placement
	place(root, nil, Region{Size: size}, &out)
	return out
}

func place(n Node, path []int, r Region, out *[]Placement) {
	switch n := n.(type) {
	case *Container:
		for i, child := range n.Split(r.Origin, r.Size) {
			childPath := append(append([]int(nil), path...), i)
			place(n.children[i], childPath, child, out)
		}
	case *Window:
		*out = append(*out, Placement{Path: path, Window: n, Region: r})
	}
}
