package lcd

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// displayer exposes a Surface through the tinygo display interface so
// tinyfont, tinydraw and similar code can paint into the page buffer.
type displayer struct {
	s     *Surface
	flush func() error
}

// Displayer returns a drivers.Displayer backed by s. Pixels brighter than mid
// grey are lit. Display calls flush when it is non-nil.
func (s *Surface) Displayer(flush func() error) drivers.Displayer {
	return &displayer{s: s, flush: flush}
}

func (d *displayer) Size() (x, y int16) { return int16(d.s.w), int16(d.s.h) }

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	if lit(c) {
		d.s.DrawPoint(int(x), int(y), AttrDraw)
		return
	}
	d.s.ClearPoint(int(x), int(y))
}

func (d *displayer) Display() error {
	if d.flush == nil {
		return nil
	}
	return d.flush()
}

// lit uses the usual integer luma approximation.
func lit(c color.RGBA) bool {
	if c.A < 0x80 {
		return false
	}
	y := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	return y >= 0x80
}
