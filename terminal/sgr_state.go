package terminal

import "github.com/yeeaiclub/fastpane"

// sgrState tracks the colours the terminal is currently drawing with so
// repeated colour commands inside a frame can be skipped.
type sgrState struct {
	fg fastpane.Color
	bg fastpane.Color
}

// setForeground records c and reports whether it differs from the current
// foreground.
func (s *sgrState) setForeground(c fastpane.Color) bool {
	if s.fg == c {
		return false
	}
	s.fg = c
	return true
}

func (s *sgrState) setBackground(c fastpane.Color) bool {
	if s.bg == c {
		return false
	}
	s.bg = c
	return true
}

// reset reports whether a reset sequence would change anything.
func (s *sgrState) reset() bool {
	if s.fg.IsDefault() && s.bg.IsDefault() {
		return false
	}
	*s = sgrState{}
	return true
}
