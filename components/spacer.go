package components

import "github.com/yeeaiclub/fastpane"

// Spacer keeps its window blank.
type Spacer struct{}

func NewSpacer() *Spacer {
	return &Spacer{}
}

func (s Spacer) Render(size fastpane.Size) []fastpane.Action {
	if size.Empty() {
		return nil
	}
	return []fastpane.Action{fastpane.MoveTo{}, fastpane.ClearRegionRemainder{}}
}
