package fonts

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont"
)

func TestTablesCoverPrintableASCIIAndSymbols(t *testing.T) {
	for _, tbl := range []*Table{Tiny, Small, Std} {
		require.Equal(t, asciiGlyphs+len([]rune(Symbols)), tbl.Len(), tbl.Name)
		for r := rune(0x20); r < 0x7f; r++ {
			g, ok := tbl.Lookup(r)
			assert.True(t, ok, "%s %q", tbl.Name, r)
			assert.Greater(t, g.Advance, 0, "%s %q", tbl.Name, r)
			assert.LessOrEqual(t, len(g.Cols), tbl.Columns)
			for _, c := range g.Cols {
				assert.Zero(t, c>>tbl.Height, "%s %q uses rows beyond height", tbl.Name, r)
			}
		}
		for _, r := range Symbols {
			_, ok := tbl.Lookup(r)
			assert.True(t, ok, "%s %q", tbl.Name, r)
		}
	}
}

func TestLookupUnknownFallsBackToQuestionMark(t *testing.T) {
	g, ok := Std.Lookup('€')
	require.False(t, ok)
	q, _ := Std.Lookup('?')
	assert.Equal(t, '?', g.Rune)
	assert.Equal(t, q.Cols, g.Cols)
}

func TestDigitsUseFixedPitch(t *testing.T) {
	for _, tbl := range []*Table{Tiny, Small, Std} {
		for r := '0'; r <= '9'; r++ {
			g, _ := tbl.Lookup(r)
			assert.Equal(t, tbl.Pitch(), g.Advance, "%s %q", tbl.Name, r)
		}
	}
}

func TestProportionalTrimming(t *testing.T) {
	g, _ := Std.Lookup('!')
	assert.Equal(t, []byte{0x5f}, g.Cols)
	assert.Equal(t, 2, g.Advance)

	sp, _ := Std.Lookup(' ')
	assert.Empty(t, sp.Cols)
	assert.Equal(t, Std.SpaceAdvance(), sp.Advance)
}

func TestDefaultSetScaling(t *testing.T) {
	set := Default()
	assert.Equal(t, 8, set.Face(ClassStd).CellHeight())
	assert.Equal(t, 6, set.Face(ClassTiny).CellHeight())
	assert.Equal(t, 16, set.Face(ClassMid).CellHeight())
	assert.Equal(t, 12, set.Face(ClassDouble).Pitch())
	assert.Equal(t, 32, set.Face(ClassXXL).CellHeight())
	assert.Equal(t, set.Face(ClassStd), set.Face(Class(42)))
}

type pixelRecorder struct {
	on map[[2]int16]bool
}

func (p *pixelRecorder) Size() (x, y int16) { return 128, 64 }
func (p *pixelRecorder) SetPixel(x, y int16, c color.RGBA) {
	p.on[[2]int16{x, y}] = true
}
func (p *pixelRecorder) Display() error { return nil }

func TestFonterDrawsOnBaseline(t *testing.T) {
	rec := &pixelRecorder{on: map[[2]int16]bool{}}
	f := Default().Face(ClassStd).Fonter()
	tinyfont.WriteLine(rec, f, 0, 6, "|", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	// '|' is a single full-height column.
	require.Len(t, rec.on, 7)
	for y := int16(0); y < 7; y++ {
		assert.True(t, rec.on[[2]int16{0, y}], "row %d", y)
	}

	_, outbox := tinyfont.LineWidth(f, "ab")
	a, _ := Std.Lookup('a')
	b, _ := Std.Lookup('b')
	assert.Equal(t, uint32(a.Advance+b.Advance), outbox)
}
