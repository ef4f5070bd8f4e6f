package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"edgelcd/gui/fonts"
	"edgelcd/gui/lcd"
	"edgelcd/internal/buildinfo"
)

var ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// drawSplash shows the logo, the product name and the build.
func (s *system) drawSplash() {
	if s.logo != nil {
		s.r.DrawBitmap((lcd.Width-logoWidth)/2, 0, s.logo, 0, 0)
	}

	d := s.surf.Displayer(nil)
	face := fonts.Default().Face(fonts.ClassDouble).Fonter()
	const title = "edgelcd"
	_, w := tinyfont.LineWidth(face, title)
	tinyfont.WriteLine(d, face, int16((lcd.Width-int(w))/2), 31, title, ink)

	s.r.DrawCenteredText(40, buildinfo.Short(), lcd.TinSize)
	s.r.DrawCenteredText(48, "starting", lcd.SmlSize|lcd.Blink)
}
