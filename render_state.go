package fastpane

// renderState tracks what the renderer knows about the terminal between
// frames.
type renderState struct {
	previousSize    Size
	drawn           bool
	invalidated     bool
	frames          int
	fullRedrawCount int
}

// needsClear reports whether the next frame must start from a blank screen.
// An invalidated screen is always cleared. Otherwise clearing follows
// onResize: nothing drawn yet or a changed terminal size.
func (rs *renderState) needsClear(size Size, onResize bool) bool {
	if rs.invalidated {
		return true
	}
	return onResize && (!rs.drawn || rs.previousSize != size)
}

func (rs *renderState) updateAfterRender(size Size, cleared bool) {
	rs.previousSize = size
	rs.drawn = true
	rs.invalidated = false
	rs.frames++
	if cleared {
		rs.fullRedrawCount++
	}
}

// invalidate forgets the screen contents, after an aborted frame or on
// request.
func (rs *renderState) invalidate() {
	rs.drawn = false
	rs.invalidated = true
}
