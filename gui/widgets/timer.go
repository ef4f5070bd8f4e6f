package widgets

import (
	"edgelcd/gui/lcd"
)

// TimerFlags select the timer layout.
type TimerFlags uint8

const (
	// TimeHour shows h:mm:ss once the value reaches an hour.
	TimeHour TimerFlags = 1 << iota
	// TimeBlink blanks the separators during the blink off phase.
	TimeBlink
)

// FormatTimer appends the mm:ss or h:mm:ss text of secs to dst.
func FormatTimer(dst []byte, secs int32, flags TimerFlags, sep byte) []byte {
	v := int64(secs)
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	if flags&TimeHour != 0 && v >= 3600 {
		dst = lcd.FormatNumber(dst, int32(v/3600), lcd.NumberFormat{})
		dst = append(dst, sep)
		v %= 3600
	}
	m := v / 60
	if m > 99 && flags&TimeHour == 0 {
		dst = lcd.FormatNumber(dst, int32(m), lcd.NumberFormat{})
	} else {
		dst = leading0(dst, int32(m), 2)
	}
	dst = append(dst, sep)
	return leading0(dst, int32(v%60), 2)
}

// DrawTimer draws secs as a clock.
func DrawTimer(r *lcd.Renderer, x, y int, secs int32, style lcd.Style, flags TimerFlags) lcd.Extent {
	sep := byte(':')
	if flags&TimeBlink != 0 && !r.BlinkOn() {
		sep = ' '
	}
	var buf [16]byte
	return r.DrawText(x, y, string(FormatTimer(buf[:0], secs, flags, sep)), style)
}

// Timer start modes. Values above TimerModeThrottleStart are switch sources
// offset by len(timerModes) - 1.
const (
	TimerModeOff = iota
	TimerModeOn
	TimerModeThrottle
	TimerModeThrottlePercent
	TimerModeThrottleStart
)

var timerModes = []string{"OFF", "ON", "THs", "TH%", "THt"}

// DrawTimerMode draws a timer's start mode, or its start switch.
func DrawTimerMode(r *lcd.Renderer, x, y, mode int, style lcd.Style) lcd.Extent {
	if mode >= 0 && mode < len(timerModes) {
		return r.DrawTextAtIndex(x, y, timerModes, mode, style)
	}
	sw := mode - len(timerModes) + 1
	if mode < 0 {
		sw = mode
	}
	return DrawSwitch(r, x, y, sw, style, nil, false)
}

// TimerState is the displayed state of one timer.
type TimerState struct {
	Name  string
	Mode  int
	Value int32
}

// DrawTimerWithMode draws the timer value right-aligned at x, and under it the
// timer's name, or its mode when unnamed, in the small size.
func DrawTimerWithMode(r *lcd.Renderer, x, y int, t TimerState, style lcd.Style) lcd.Extent {
	vs := style&^lcd.Centered | lcd.Right
	e := DrawTimer(r, x, y, t.Value, vs, TimeHour)
	ly := y + r.Face(vs).CellHeight()
	ls := lcd.SmlSize | lcd.Right
	if t.Name != "" {
		r.DrawSizedText(x, ly, t.Name, 8, ls)
	} else {
		DrawTimerMode(r, x, ly, t.Mode, ls)
	}
	return e
}
