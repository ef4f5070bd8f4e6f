// Package widgets composes the lcd primitives into radio screen fields.
//
// Widgets pass style flags through to the renderer unchanged; the only flags
// they add are ones the renderer already defines, such as Bold for an active
// switch or Blink for a low battery.
package widgets

import (
	"strings"

	"edgelcd/gui/lcd"
)

// Dashes is shown for an unassigned source.
const Dashes = "---"

func leading0(dst []byte, v int32, n int) []byte {
	return lcd.FormatNumber(dst, v, lcd.NumberFormat{Mode: lcd.Leading0, Len: n})
}

// MaxModelName is the number of characters kept from a model name.
const MaxModelName = 10

// DrawModelName draws name, or "MODEL" and the two digit model number when the
// name is blank.
func DrawModelName(r *lcd.Renderer, x, y int, name string, id uint8, style lcd.Style) lcd.Extent {
	if strings.Trim(name, " \x00") == "" {
		var buf [8]byte
		b := append(buf[:0], "MODEL"...)
		return r.DrawText(x, y, string(leading0(b, int32(id), 2)), style)
	}
	return r.DrawSizedText(x, y, name, MaxModelName, style)
}

// DrawCurveName draws a curve reference: "CV01", "!CV01" for an inverted
// curve, or dashes for none.
func DrawCurveName(r *lcd.Renderer, x, y, idx int, style lcd.Style) lcd.Extent {
	if idx == 0 {
		return r.DrawText(x, y, Dashes, style)
	}
	var buf [8]byte
	b := buf[:0]
	if idx < 0 {
		b = append(b, '!')
		idx = -idx
	}
	b = append(b, "CV"...)
	return r.DrawText(x, y, string(leading0(b, int32(idx), 2)), style)
}

// DrawShortTrimMode draws the one or two character trim mode of flight mode
// idx: "-" when the trim is off, ":" for its own trim, otherwise the source
// flight mode with a "+" prefix for added trims.
func DrawShortTrimMode(r *lcd.Renderer, x, y int, mode, idx uint8, style lcd.Style) lcd.Extent {
	if mode == TrimDisabled {
		return r.DrawText(x, y, "-", style)
	}
	fm := mode / 2
	switch {
	case mode%2 == 0 && fm == idx:
		return r.DrawText(x, y, ":", style)
	case mode%2 == 1:
		return r.DrawText(x, y, string([]byte{'+', '0' + fm%10}), style)
	}
	return r.DrawText(x, y, string([]byte{'0' + fm%10}), style)
}

// TrimDisabled marks a flight mode trim that is switched off.
const TrimDisabled uint8 = 0xff
