package lcd

import "edgelcd/gui/fonts"

// advance is the horizontal space a glyph takes under style.
func advance(g fonts.Glyph, face fonts.Face, style Style) int {
	a := g.Advance * face.ScaleX
	if style&FixedWidth != 0 {
		a = face.Pitch()
	}
	if style&Bold != 0 {
		a++
	}
	if style&Condensed != 0 {
		a--
	}
	if a < 1 {
		a = 1
	}
	return a
}

// glyphBits returns the glyph column feeding pixel column px, with the bold
// copy one pixel to the right merged in.
func glyphBits(cols []byte, px, sx int, bold bool) byte {
	var b byte
	if i := px / sx; i < len(cols) {
		b = cols[i]
	}
	if bold && px >= 1 {
		if i := (px - 1) / sx; i < len(cols) {
			b |= cols[i]
		}
	}
	return b
}

// drawGlyph renders g with its cell's top-left corner at (x, y) and returns
// the advance. Inverse and EraseBG write the whole cell; otherwise only ink
// pixels are ORed in.
func (r *Renderer) drawGlyph(x, y int, g fonts.Glyph, face fonts.Face, style Style) int {
	adv := advance(g, face, style)
	bold := style&Bold != 0
	inv := style&Inverse != 0
	exact := inv || style&EraseBG != 0

	sx, sy := face.ScaleX, face.ScaleY
	ink := len(g.Cols) * sx
	if bold && ink > 0 {
		ink++
	}
	span := adv
	if ink > span {
		span = ink
	}
	cellH := face.CellHeight()
	rows := face.Table.Height

	for px := 0; px < span; px++ {
		bits := glyphBits(g.Cols, px, sx, bold)
		inCell := px < adv
		if bits == 0 && !(exact && inCell) {
			continue
		}
		for py := 0; py < cellH; py++ {
			row := py / sy
			on := row < rows && bits&(1<<row) != 0
			if inv && inCell {
				on = !on
			}
			switch {
			case on:
				r.s.DrawPoint(x+px, y+py, AttrDraw)
			case exact && inCell:
				r.s.ClearPoint(x+px, y+py)
			}
		}
	}
	return adv
}

// DrawChar draws a single character, honouring alignment like DrawText.
func (r *Renderer) DrawChar(x, y int, c rune, style Style) Extent {
	face := r.Face(style)
	g, _ := face.Table.Lookup(c)
	w := advance(g, face, style)
	start := alignStart(x, w, style)
	if r.visible(style) {
		r.invertMargin(start, y, face, style)
		r.drawGlyph(start, y, g, face, style)
	}
	return Extent{Left: start, Right: start + w, Next: start + w}
}

func alignStart(x, w int, style Style) int {
	switch style.Align() {
	case AlignRight:
		return x - w
	case AlignCenter:
		return x - w/2
	}
	return x
}

// invertMargin fills the column left of inverted text so the highlight does
// not start flush against the first glyph.
func (r *Renderer) invertMargin(start, y int, face fonts.Face, style Style) {
	if style&Inverse == 0 || start <= 0 || start >= r.s.Width() {
		return
	}
	r.s.DrawSolidVLine(start-1, y, face.CellHeight(), AttrDraw)
}
