package widgets

import (
	"edgelcd/gui/lcd"
)

// TelemFlags modify telemetry value widgets.
type TelemFlags uint8

// NoUnit omits the unit suffix.
const NoUnit TelemFlags = 1

// PutsChn draws the channel label "CH01".."CH32".
func PutsChn(r *lcd.Renderer, x, y, idx int, style lcd.Style) lcd.Extent {
	var buf [8]byte
	b := append(buf[:0], "CH"...)
	return r.DrawText(x, y, string(leading0(b, int32(idx), 2)), style)
}

const chnLetters = "RETA"

// PutsChnLetter draws the stick letter of the first four channels.
func PutsChnLetter(r *lcd.Renderer, x, y, idx int, style lcd.Style) lcd.Extent {
	c := rune('?')
	if idx >= 1 && idx <= len(chnLetters) {
		c = rune(chnLetters[idx-1])
	}
	return r.DrawChar(x, y, c, style)
}

// PutsVolts draws a voltage given in units of 0.1 V.
func PutsVolts(r *lcd.Renderer, x, y int, volts uint16, style lcd.Style, flags TelemFlags) lcd.Extent {
	var buf [12]byte
	b := lcd.FormatNumber(buf[:0], int32(volts), lcd.NumberFormat{Mode: lcd.Prec1})
	if flags&NoUnit == 0 {
		b = append(b, 'V')
	}
	return r.DrawText(x, y, string(b), style)
}

// Battery is the main supply reading, in units of 0.1 V.
type Battery struct {
	Volts uint16
	Warn  uint16
}

// Low reports whether the reading is at or below the warning level.
func (b Battery) Low() bool { return b.Warn > 0 && b.Volts <= b.Warn }

// PutsVBat draws the battery voltage, blinking when it is low.
func PutsVBat(r *lcd.Renderer, x, y int, bat Battery, style lcd.Style) lcd.Extent {
	if bat.Low() {
		style |= lcd.Blink
	}
	return PutsVolts(r, x, y, bat.Volts, style, 0)
}

// StatusBar is the content of the telemetry top bar.
type StatusBar struct {
	ModelName string
	ModelID   uint8
	Battery   Battery
	Timer     TimerState
}

// DrawStatusBar draws the model name, battery and first timer on the top text
// line and inverts it.
func DrawStatusBar(r *lcd.Renderer, bar StatusBar) {
	w := r.Surface().Width()
	DrawModelName(r, 0, 0, bar.ModelName, bar.ModelID, lcd.Left)
	PutsVBat(r, w/2, 0, bar.Battery, lcd.Centered)
	DrawTimer(r, w, 0, bar.Timer.Value, lcd.Right, TimeHour)
	r.Surface().InvertLine(0)
}
