package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"edgelcd/gui/fonts"
)

// panicScreen logs a recovered panic, paints it over the whole panel and
// freezes the app on that image.
func (s *system) panicScreen(v any) {
	s.stopped = true
	stack := debug.Stack()
	logf(s.log, "app: panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			logf(s.log, "%s", line)
		}
	}

	s.surf.Clear()
	face := fonts.Default().Face(fonts.ClassTiny)
	font := face.Fonter()
	fontWidth := int16(face.Pitch())
	fontHeight := int16(face.CellHeight())
	fontOffset := int16(face.Height() - 1)
	d := s.surf.Displayer(nil)

	lines := []string{"PANIC", fmt.Sprintf("%v", v)}
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	cols := int16(s.surf.Width()) / fontWidth
	maxH := int16(s.surf.Height())
	y := int16(0)
draw:
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				break draw
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fontOffset, 0, y, chunk)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	s.surf.InvertLine(0)

	if err := s.fb.Present(); err != nil {
		logf(s.log, "app: panic screen: %v", err)
	}
}

// drawTextLine draws s on a fixed cell grid regardless of glyph advances.
func drawTextLine(d drivers.Displayer, font tinyfont.Fonter, fontWidth, fontOffset, x0, y0 int16, s string) {
	drawX := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, ink)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
