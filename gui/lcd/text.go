package lcd

// TextWidth measures the first n characters of s; n <= 0 measures all of it.
// A NUL rune ends the text, matching fixed-size name buffers.
func (r *Renderer) TextWidth(s string, n int, style Style) int {
	face := r.Face(style)
	vertical := style&Vertical != 0
	w, i := 0, 0
	for _, c := range s {
		if c == 0 || (n > 0 && i >= n) {
			break
		}
		g, _ := face.Table.Lookup(c)
		a := advance(g, face, style)
		if vertical {
			if a > w {
				w = a
			}
		} else {
			w += a
		}
		i++
	}
	return w
}

// DrawText draws s anchored at x. See DrawSizedText.
func (r *Renderer) DrawText(x, y int, s string, style Style) Extent {
	return r.DrawSizedText(x, y, s, 0, style)
}

// DrawSizedText draws at most n characters of s (all when n <= 0).
//
// The run is measured first, then placed: left-aligned text starts at x,
// right-aligned text ends at x, centred text is split around x. The returned
// extent covers the run whether or not a blink phase suppressed the drawing.
func (r *Renderer) DrawSizedText(x, y int, s string, n int, style Style) Extent {
	face := r.Face(style)
	w := r.TextWidth(s, n, style)
	start := alignStart(x, w, style)
	ext := Extent{Left: start, Right: start + w, Next: start + w}
	if !r.visible(style) {
		return ext
	}

	r.invertMargin(start, y, face, style)
	vertical := style&Vertical != 0
	cx, cy, i := start, y, 0
	for _, c := range s {
		if c == 0 || (n > 0 && i >= n) {
			break
		}
		g, _ := face.Table.Lookup(c)
		if vertical {
			r.drawGlyph(cx, cy, g, face, style)
			cy += face.CellHeight()
		} else {
			cx += r.drawGlyph(cx, cy, g, face, style)
		}
		i++
	}
	return ext
}

// DrawTextAtIndex draws list[idx]. An index outside the list draws nothing and
// returns an empty extent at x.
func (r *Renderer) DrawTextAtIndex(x, y int, list []string, idx int, style Style) Extent {
	if idx < 0 || idx >= len(list) {
		return Extent{Left: x, Right: x, Next: x}
	}
	return r.DrawText(x, y, list[idx], style)
}

// DrawCenteredText centres s on the surface's middle column.
func (r *Renderer) DrawCenteredText(y int, s string, style Style) Extent {
	return r.DrawText(r.s.Width()/2, y, s, style&^Right|Centered)
}

// DrawTextAlignedLeft draws s from the left edge in the standard style.
func (r *Renderer) DrawTextAlignedLeft(y int, s string) Extent {
	return r.DrawText(0, y, s, Left)
}

// DrawTextIndented draws s half a character in from the left edge.
func (r *Renderer) DrawTextIndented(y int, s string) Extent {
	return r.DrawText(FW/2, y, s, Left)
}
