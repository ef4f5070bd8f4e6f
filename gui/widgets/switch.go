package widgets

import (
	"edgelcd/gui/lcd"
)

// Switch sources: 1..NumPhysical are physical switch positions, followed by
// the logical switches, then the always-on sources. Negative values are the
// inverted source.
const (
	NumSwitches  = 8
	positions    = 3
	NumPhysical  = NumSwitches * positions
	NumLogical   = 64
	firstLogical = NumPhysical + 1
	SwitchOn     = firstLogical + NumLogical
	SwitchOne    = SwitchOn + 1
)

var positionGlyphs = [positions]string{"↑", "-", "↓"}

// SwitchState reports whether a switch source is currently active.
type SwitchState interface {
	Active(sw int) bool
}

// SwitchFunc adapts a function to SwitchState.
type SwitchFunc func(sw int) bool

func (f SwitchFunc) Active(sw int) bool { return f(sw) }

// SwitchName returns the display name of a switch source.
func SwitchName(sw int) string {
	if sw == 0 {
		return Dashes
	}
	var buf [8]byte
	b := buf[:0]
	if sw < 0 {
		b = append(b, '!')
		sw = -sw
	}
	switch {
	case sw <= NumPhysical:
		i := sw - 1
		b = append(b, 'S', 'A'+byte(i/positions))
		b = append(b, positionGlyphs[i%positions]...)
	case sw < SwitchOn:
		b = append(b, 'L')
		b = leading0(b, int32(sw-firstLogical+1), 2)
	case sw == SwitchOn:
		b = append(b, "ON"...)
	case sw == SwitchOne:
		b = append(b, "One"...)
	default:
		b = append(b, '?')
	}
	return string(b)
}

// DrawSwitch draws the name of sw. With autoBold, an active switch is drawn
// bold; state may be nil when activity is unknown.
func DrawSwitch(r *lcd.Renderer, x, y, sw int, style lcd.Style, state SwitchState, autoBold bool) lcd.Extent {
	if autoBold && sw != 0 && state != nil && state.Active(sw) {
		style |= lcd.Bold
	}
	return r.DrawText(x, y, SwitchName(sw), style)
}
