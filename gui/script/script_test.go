package script

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"edgelcd/gui/lcd"
	"edgelcd/gui/widgets"
)

func newRenderer() *lcd.Renderer {
	return lcd.NewRenderer(lcd.New(lcd.Width, lcd.Height), nil)
}

func run(t *testing.T, src string, opts Options) (*Script, *lcd.Renderer) {
	t.Helper()
	r := newRenderer()
	s := New(r, opts)
	t.Cleanup(s.Close)
	require.NoError(t, s.LoadString(src))
	require.NoError(t, s.Run())
	return s, r
}

func TestDrawTextMatchesRenderer(t *testing.T) {
	s, r := run(t, `
function run()
  lcd.clear()
  lcd.drawText(LCD_W, 0, "Thr", RIGHT + BOLD)
  lcd.drawNumber(10, 8, -5, LEADING0, 3)
  lcd.drawNumber(lcd.getLastPos(), 8, 1234, PREC2 + SMLSIZE)
end`, Options{})

	want := newRenderer()
	want.DrawText(lcd.Width, 0, "Thr", lcd.Right|lcd.Bold)
	e := want.DrawNumber(10, 8, -5, lcd.Left, lcd.NumberFormat{Mode: lcd.Leading0, Len: 3})
	last := want.DrawNumber(e.Next, 8, 1234, lcd.SmlSize, lcd.NumberFormat{Mode: lcd.Prec2})

	assert.Equal(t, want.Surface().Buffer(), r.Surface().Buffer())
	assert.Equal(t, last, s.LastExtent())
}

func TestPrimitives(t *testing.T) {
	_, r := run(t, `
function run()
  lcd.drawFilledRectangle(0, 0, 10, 8)
  lcd.drawLine(0, 20, 9, 20, DOTTED, 0)
  lcd.drawPoint(127, 63)
  lcd.drawRectangle(20, 20, 10, 10, 0, 2)
  lcd.invertLine(7)
end`, Options{})

	s := r.Surface()
	assert.Equal(t, byte(0xff), s.Buffer()[9])
	assert.True(t, s.Pixel(0, 20))
	assert.False(t, s.Pixel(1, 20))
	assert.False(t, s.Pixel(127, 63), "inverted back by invertLine")
	assert.True(t, s.Pixel(21, 21), "second outline")
	assert.False(t, s.Pixel(22, 22))
}

func TestXORHighlight(t *testing.T) {
	_, r := run(t, `
function run()
  lcd.drawText(0, 0, "A", 0)
  lcd.drawFilledRectangle(0, 0, 6, 8, XOR)
  lcd.drawPoint(50, 50, XOR)
  lcd.drawPoint(50, 50, XOR)
end`, Options{})

	want := newRenderer()
	want.DrawText(0, 0, "A", lcd.Left)
	want.Surface().DrawFilledRect(0, 0, 6, 8, lcd.Solid, lcd.AttrXOR)
	assert.Equal(t, want.Surface().Buffer(), r.Surface().Buffer())
	assert.Equal(t, byte(0x81), r.Surface().Buffer()[0], "glyph column inverted")
	assert.False(t, r.Surface().Pixel(50, 50))
}

func TestHugeRectangleThickness(t *testing.T) {
	start := time.Now()
	_, r := run(t, `
function run()
  lcd.drawRectangle(-1000000000, -1000000000, 2000000000, 2000000000, 0, 1000000000)
end`, Options{})
	assert.Less(t, time.Since(start), time.Second)

	// Only the innermost insets reach the panel.
	want := newRenderer()
	for i := 1000000000 - 300; i < 1000000000; i++ {
		want.Surface().DrawRect(-1000000000+i, -1000000000+i, 2000000000-2*i, 2000000000-2*i, lcd.Solid, lcd.AttrDraw)
	}
	assert.Equal(t, want.Surface().Buffer(), r.Surface().Buffer())
	assert.NotZero(t, r.Surface().Buffer()[0])
}

func TestThickRectangleXOR(t *testing.T) {
	_, r := run(t, `
function run()
  lcd.drawRectangle(-2, 10, 20, 12, XOR, 4)
end`, Options{})

	want := newRenderer()
	for i := 0; i < 4; i++ {
		want.Surface().DrawRect(-2+i, 10+i, 20-2*i, 12-2*i, lcd.Solid, lcd.AttrXOR)
	}
	assert.Equal(t, want.Surface().Buffer(), r.Surface().Buffer(), "each inset drawn once")
}

func TestInsetSpans(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 1}}, insetSpans(20, 20, 10, 10, 2, 128, 64))
	assert.Nil(t, insetSpans(0, 0, 10, 10, 0, 128, 64))
	assert.Equal(t, [][2]int{{0, 127}}, insetSpans(0, 0, 2000, 2000, 1000, 128, 64), "left and top windows merge")
	assert.Equal(t, [][2]int{{0, 63}, {500, 627}}, insetSpans(-500, 0, 3000, 3000, 1000, 128, 64))
}

func TestTimerSwitchAndWidth(t *testing.T) {
	sw := widgets.SwitchFunc(func(int) bool { return true })
	s, r := run(t, `
width = 0
function run()
  lcd.drawTimer(0, 0, 3725, TIMEHOUR)
  lcd.drawSwitch(0, 8, 1)
  width = lcd.getTextWidth("12", DBLSIZE)
end`, Options{Switches: sw})

	want := newRenderer()
	want.DrawText(0, 0, "1:02:05", lcd.Left)
	want.DrawText(0, 8, "SA↑", lcd.Bold)
	assert.Equal(t, want.Surface().Buffer(), r.Surface().Buffer())

	assert.Equal(t, 24, int(s.state.GetGlobal("width").(lua.LNumber)))
}

func TestDrawBitmap(t *testing.T) {
	fsys := fstest.MapFS{"icon.bmp": {Data: []byte{2, 8, 0x0f, 0xf0}}}
	s, r := run(t, `
ok, missing = nil, nil
function run()
  ok = lcd.drawBitmap(0, 0, "icon.bmp", 0, INVERS)
  missing = lcd.drawBitmap(0, 0, "nope.bmp")
end`, Options{Assets: fsys})

	assert.Equal(t, []byte{0xf0, 0x0f}, r.Surface().Buffer()[:2])
	assert.Equal(t, lua.LTrue, s.state.GetGlobal("ok"))
	assert.Equal(t, lua.LFalse, s.state.GetGlobal("missing"))
}

func TestErrors(t *testing.T) {
	s := New(newRenderer(), Options{})
	defer s.Close()
	assert.ErrorIs(t, s.Run(), ErrNoRun)
	assert.Error(t, s.LoadString("function run( end"))

	require.NoError(t, s.LoadString(`function run() error("boom") end`))
	assert.ErrorContains(t, s.Run(), "boom")

	err := s.LoadFile(fstest.MapFS{}, "missing.lua")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	r := newRenderer()
	s := New(r, Options{})
	defer s.Close()
	fsys := fstest.MapFS{"main.lua": {Data: []byte(`function run() lcd.drawPoint(1, 1) end`)}}
	require.NoError(t, s.LoadFile(fsys, "main.lua"))
	require.NoError(t, s.Run())
	assert.True(t, r.Surface().Pixel(1, 1))
}
