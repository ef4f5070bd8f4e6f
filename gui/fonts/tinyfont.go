package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter exposes f as a tinyfont.Fonter so tinyfont.WriteLine and friends can
// draw it on any drivers.Displayer.
//
// Concurrent access is not safe due to internal glyph reuse.
func (f Face) Fonter() tinyfont.Fonter {
	return &fonter{face: f}
}

type fonter struct {
	face Face
	g    glypher
}

type glypher struct {
	face  Face
	glyph Glyph
}

func (f *fonter) GetYAdvance() uint8 { return uint8(f.face.CellHeight()) }

func (f *fonter) GetGlyph(r rune) tinyfont.Glypher {
	g, _ := f.face.Table.Lookup(r)
	f.g = glypher{face: f.face, glyph: g}
	return &f.g
}

// Draw paints the glyph with its bottom row on the baseline y.
func (g *glypher) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	sx, sy := g.face.ScaleX, g.face.ScaleY
	top := int(y) - g.face.Height() + 1
	for ci, col := range g.glyph.Cols {
		for row := 0; row < g.face.Table.Height; row++ {
			if col&(1<<row) == 0 {
				continue
			}
			for dx := 0; dx < sx; dx++ {
				for dy := 0; dy < sy; dy++ {
					display.SetPixel(int16(int(x)+ci*sx+dx), int16(top+row*sy+dy), c)
				}
			}
		}
	}
}

func (g *glypher) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.glyph.Rune,
		Width:    uint8(len(g.glyph.Cols) * g.face.ScaleX),
		Height:   uint8(g.face.Height()),
		XAdvance: uint8(g.glyph.Advance * g.face.ScaleX),
		XOffset:  0,
		YOffset:  int8(1 - g.face.Height()),
	}
}
