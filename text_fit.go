package fastpane

// wrapText writes text row by row, moving to the start of the next row of
// the region whenever the current one is full. Text left over at the bottom
// edge is dropped.
func (p *pen) wrapText(text string) error {
	runes := []rune(text)
	r := p.region
	for len(runes) > 0 {
		if p.cursor.Col >= r.Right() {
			if p.cursor.Row+1 >= r.Bottom() {
				return nil
			}
			if err := p.moveTo(Point{Row: p.cursor.Row + 1, Col: r.Origin.Col}); err != nil {
				return err
			}
		}
		n := min(len(runes), r.Right()-p.cursor.Col)
		if err := p.write(string(runes[:n])); err != nil {
			return err
		}
		runes = runes[n:]
	}
	return nil
}

// truncateText writes as many runes as fit between the cursor and the right
// edge and drops the rest.
func (p *pen) truncateText(text string) error {
	available := p.region.Right() - p.cursor.Col
	if available <= 0 {
		return nil
	}
	runes := []rune(text)
	if len(runes) > available {
		runes = runes[:available]
	}
	return p.write(string(runes))
}
