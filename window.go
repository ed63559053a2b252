package fastpane

import "fmt"

// Window is a leaf of the layout tree. It binds a Provider to the region it
// is handed each frame and interprets the provider's actions there.
type Window struct {
	provider Provider
	config   RegionConfig
}

func NewWindow(p Provider, cfg RegionConfig) (*Window, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	if !validRelativeSize(cfg.RelativeSize) {
		return nil, fmt.Errorf("window size %v: %w", cfg.RelativeSize, ErrInvalidSize)
	}
	return &Window{provider: p, config: cfg}, nil
}

// MustWindow is like NewWindow but panics on a configuration error.
func MustWindow(p Provider, cfg RegionConfig) *Window {
	w, err := NewWindow(p, cfg)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Window) RelativeSize() float64 {
	return w.config.RelativeSize
}

func (w *Window) Wrapping() bool {
	return w.config.Wrapping
}

func (w *Window) Provider() Provider {
	return w.provider
}

func (w *Window) Draw(out Backend, cursor *Point, origin Point, size Size) error {
	p := &pen{out: out, cursor: cursor, region: Region{Origin: origin, Size: size}}
	for _, a := range w.provider.Render(size) {
		if err := w.apply(p, a); err != nil {
			return fmt.Errorf("window at %s size %s: %w", origin, size, err)
		}
	}
	return nil
}

func (w *Window) apply(p *pen, a Action) error {
	switch a.(type) {
	case HideCursor:
		return p.out.SetCursorVisible(false)
	case ShowCursor:
		return p.out.SetCursorVisible(true)
	}

	// nothing positional can land in a region without cells
	if p.region.Size.Empty() {
		return nil
	}

	switch a := a.(type) {
	case MoveTo:
		return p.moveTo(p.local(a.Row, a.Col))
	case MoveToNextLine:
		if err := p.enter(); err != nil {
			return err
		}
		row := min(p.cursor.Row+max(a.Lines, 0), p.region.Bottom()-1)
		return p.moveTo(Point{Row: row, Col: p.region.Origin.Col})
	case ClearLineRemainder:
		if err := p.enter(); err != nil {
			return err
		}
		return clearLine(p)
	case ClearRegionRemainder:
		if err := p.enter(); err != nil {
			return err
		}
		return clearRegion(p)
	case Write:
		if err := p.enter(); err != nil {
			return err
		}
		return w.write(p, a.Text)
	}
	return nil
}

func clearLine(p *pen) error {
	saved := *p.cursor
	n := p.region.Right() - saved.Col
	if n <= 0 {
		return nil
	}
	if err := p.blank(n); err != nil {
		return err
	}
	return p.moveTo(saved)
}

func clearRegion(p *pen) error {
	saved := *p.cursor
	r := p.region
	wrote := false
	if n := r.Right() - saved.Col; n > 0 {
		if err := p.blank(n); err != nil {
			return err
		}
		wrote = true
	}
	for row := saved.Row + 1; row < r.Bottom(); row++ {
		if err := p.moveTo(Point{Row: row, Col: r.Origin.Col}); err != nil {
			return err
		}
		if err := p.blank(r.Size.Cols); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		return nil
	}
	return p.moveTo(saved)
}

func (w *Window) write(p *pen, st StyledText) error {
	for _, prop := range st.Style {
		var err error
		switch prop.Kind {
		case Background:
			err = p.out.SetBackground(prop.Color)
		default:
			err = p.out.SetForeground(prop.Color)
		}
		if err != nil {
			return err
		}
	}

	text := Sanitize(st.Text)
	var err error
	if w.config.Wrapping {
		err = p.wrapText(text)
	} else {
		err = p.truncateText(text)
	}
	if err != nil {
		return err
	}
	return p.out.ResetAttributes()
}
