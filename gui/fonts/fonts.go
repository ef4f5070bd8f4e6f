// Package fonts holds the column-packed bitmap glyph tables used by the LCD
// renderer, one per size class, plus tinyfont adapters for them.
//
// Glyphs are stored one byte per column with bit 0 as the top row, which is the
// same orientation as a display page byte, so a glyph column can be merged into
// the framebuffer without transposition.
package fonts

const (
	firstRune   = 0x20
	asciiGlyphs = 0x7f - firstRune
)

// Symbols lists the non-ASCII runes every table carries, in storage order.
const Symbols = "°↑↓←→Δ"

// Glyph is one resolved character: its visible columns and horizontal advance.
type Glyph struct {
	Rune    rune
	Cols    []byte
	Advance int
}

// Table is a column-packed bitmap font.
type Table struct {
	Name    string
	Columns int // bytes per glyph, the widest glyph
	Height  int // rows used by glyph bits

	data    []byte
	first   []uint8 // first non-blank column per glyph
	width   []uint8 // visible column count per glyph
	symbols []rune
}

var (
	// Tiny is a 3x5 table without lowercase shapes.
	Tiny = newTable("tiny", 3, 5, tinyData[:])
	// Small is a 4x6 table without lowercase shapes.
	Small = newTable("small", 4, 6, smallData[:])
	// Std is the 5x7 standard table.
	Std = newTable("std", 5, 7, stdData[:])
)

func newTable(name string, cols, height int, data []byte) *Table {
	t := &Table{
		Name:    name,
		Columns: cols,
		Height:  height,
		data:    data,
		symbols: []rune(Symbols),
	}
	n := len(data) / cols
	t.first = make([]uint8, n)
	t.width = make([]uint8, n)
	for i := 0; i < n; i++ {
		g := data[i*cols : (i+1)*cols]
		r := t.runeAt(i)
		if r == ' ' || isDigit(r) {
			t.first[i] = 0
			t.width[i] = uint8(cols)
			continue
		}
		lo, hi := 0, cols-1
		for lo < cols && g[lo] == 0 {
			lo++
		}
		for hi >= lo && g[hi] == 0 {
			hi--
		}
		if lo > hi {
			lo, hi = 0, 0
		}
		t.first[i] = uint8(lo)
		t.width[i] = uint8(hi - lo + 1)
	}
	return t
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (t *Table) runeAt(i int) rune {
	if i < asciiGlyphs {
		return rune(firstRune + i)
	}
	return t.symbols[i-asciiGlyphs]
}

func (t *Table) index(r rune) (int, bool) {
	if r >= firstRune && r < firstRune+asciiGlyphs {
		return int(r - firstRune), true
	}
	for i, s := range t.symbols {
		if s == r {
			return asciiGlyphs + i, true
		}
	}
	return int('?' - firstRune), false
}

// Lookup resolves r to its glyph. Unknown runes resolve to '?' and report false.
func (t *Table) Lookup(r rune) (Glyph, bool) {
	i, ok := t.index(r)
	if !ok {
		r = '?'
	}
	off := i*t.Columns + int(t.first[i])
	w := int(t.width[i])
	g := Glyph{Rune: r, Cols: t.data[off : off+w], Advance: w + 1}
	if r == ' ' {
		g.Cols = g.Cols[:0]
		g.Advance = t.SpaceAdvance()
	}
	return g, ok
}

// Pitch is the fixed advance used for digits and fixed-width text.
func (t *Table) Pitch() int { return t.Columns + 1 }

// SpaceAdvance is the advance of a proportional space.
func (t *Table) SpaceAdvance() int { return (t.Columns+1)/2 + 1 }

// CellHeight is the glyph height plus the one-row gap below it.
func (t *Table) CellHeight() int { return t.Height + 1 }

// Len returns the number of glyphs in the table.
func (t *Table) Len() int { return len(t.width) }
