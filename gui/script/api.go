package script

import (
	"cmp"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"edgelcd/gui/lcd"
	"edgelcd/gui/widgets"
)

// Legacy flag word bits with no Style counterpart.
const (
	flagTimeBlink = 0x1000
	flagTimeHour  = 0x2000
)

var constants = map[string]int{
	"BLINK":      int(lcd.Blink),
	"INVERS":     int(lcd.Inverse),
	"BOLD":       int(lcd.Bold),
	"RIGHT":      int(lcd.Right),
	"LEFT":       int(lcd.Left),
	"CENTER":     int(lcd.Centered),
	"CONDENSED":  int(lcd.Condensed),
	"FIXEDWIDTH": int(lcd.FixedWidth),
	"LEADING0":   int(lcd.FlagLeading0),
	"PREC1":      int(lcd.FlagPrec1),
	"PREC2":      int(lcd.FlagPrec2),
	"TINSIZE":    int(lcd.TinSize),
	"SMLSIZE":    int(lcd.SmlSize),
	"MIDSIZE":    int(lcd.MidSize),
	"DBLSIZE":    int(lcd.DblSize),
	"XXLSIZE":    int(lcd.XXLSize),
	"ERASEBG":    int(lcd.EraseBG),
	"VERTICAL":   int(lcd.Vertical),
	"SOLID":      int(lcd.Solid),
	"DOTTED":     int(lcd.Dotted),
	"FORCE":      int(lcd.AttrForce),
	"ERASE":      int(lcd.AttrErase),
	"ROUND":      int(lcd.AttrRound),
	"XOR":        int(lcd.AttrXOR),
	"TIMEHOUR":   flagTimeHour,
	"TIMEBLINK":  flagTimeBlink,
	"LCD_W":      lcd.Width,
	"LCD_H":      lcd.Height,
}

func (s *Script) preloadAPI() {
	L := s.state
	for name, v := range constants {
		L.SetGlobal(name, lua.LNumber(v))
	}

	module := L.NewTable()
	for name, fn := range map[string]lua.LGFunction{
		"clear":               s.clear,
		"drawPoint":           s.drawPoint,
		"drawLine":            s.drawLine,
		"drawRectangle":       s.drawRectangle,
		"drawFilledRectangle": s.drawFilledRectangle,
		"drawText":            s.drawText,
		"drawNumber":          s.drawNumber,
		"drawHexNumber":       s.drawHexNumber,
		"drawTimer":           s.drawTimer,
		"drawSwitch":          s.drawSwitch,
		"drawBitmap":          s.drawBitmap,
		"invertLine":          s.invertLine,
		"getLastPos":          s.getLastPos,
		"getLastLeftPos":      s.getLastLeftPos,
		"getLastRightPos":     s.getLastRightPos,
		"getTextWidth":        s.getTextWidth,
	} {
		L.SetField(module, name, L.NewFunction(fn))
	}
	L.SetGlobal("lcd", module)
}

func optFlags(L *lua.LState, n int) uint16 { return uint16(L.OptInt(n, 0)) }

func (s *Script) clear(L *lua.LState) int {
	s.r.Clear()
	return 0
}

func (s *Script) drawPoint(L *lua.LState) int {
	s.r.Surface().DrawPoint(L.CheckInt(1), L.CheckInt(2), lcd.Attr(optFlags(L, 3)))
	return 0
}

func (s *Script) drawLine(L *lua.LState) int {
	pat := lcd.Pattern(L.OptInt(5, int(lcd.Solid)))
	s.r.Surface().DrawLine(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), pat, lcd.Attr(optFlags(L, 6)))
	return 0
}

// drawRectangle(x, y, w, h [, flags [, thickness]])
func (s *Script) drawRectangle(L *lua.LState) int {
	x, y, w, h := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	attr := lcd.Attr(optFlags(L, 5))
	t := L.OptInt(6, 1)
	surf := s.r.Surface()
	for _, span := range insetSpans(x, y, w, h, t, surf.Width(), surf.Height()) {
		for i := span[0]; i <= span[1]; i++ {
			surf.DrawRect(x+i, y+i, w-2*i, h-2*i, lcd.Solid, attr)
		}
	}
	return 0
}

// insetSpans returns the ordered, disjoint ranges of insets i in [0, t) of a
// thick outline that have an edge crossing a sw x sh surface. Insets whose
// four edges all lie off the surface draw nothing and are skipped.
func insetSpans(x, y, w, h, t, sw, sh int) [][2]int {
	last := min(t, (w+1)/2, (h+1)/2) - 1
	if last < 0 {
		return nil
	}
	// Inset i puts the left edge at x+i and the right edge at x+w-1-i, and
	// likewise for top and bottom.
	right, bottom := x+w-1, y+h-1
	leftLast, topLast := sw-1-x, sh-1-y
	rightFirst, bottomFirst := right-sw+1, bottom-sh+1
	edges := [][2]int{{-x, leftLast}, {rightFirst, right}, {-y, topLast}, {bottomFirst, bottom}}
	slices.SortFunc(edges, func(a, b [2]int) int { return cmp.Compare(a[0], b[0]) })

	var spans [][2]int
	next := 0
	for _, e := range edges {
		lo, hi := max(e[0], next), min(e[1], last)
		if lo > hi {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1][1]+1 == lo {
			spans[n-1][1] = hi
		} else {
			spans = append(spans, [2]int{lo, hi})
		}
		next = hi + 1
	}
	return spans
}

// drawFilledRectangle(x, y, w, h [, flags [, pattern]])
func (s *Script) drawFilledRectangle(L *lua.LState) int {
	pat := lcd.Pattern(L.OptInt(6, int(lcd.Solid)))
	s.r.Surface().DrawFilledRect(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), pat, lcd.Attr(optFlags(L, 5)))
	return 0
}

func (s *Script) drawText(L *lua.LState) int {
	s.last = s.r.DrawText(L.CheckInt(1), L.CheckInt(2), L.CheckString(3), lcd.TextFlags(optFlags(L, 4)))
	return 0
}

// drawNumber(x, y, value [, flags [, len]])
func (s *Script) drawNumber(L *lua.LState) int {
	style, f := lcd.SplitNumberFlags(optFlags(L, 4))
	f.Len = L.OptInt(5, 0)
	v := int32(L.CheckNumber(3))
	s.last = s.r.DrawNumber(L.CheckInt(1), L.CheckInt(2), v, style, f)
	return 0
}

// drawHexNumber(x, y, value [, flags [, digits]])
func (s *Script) drawHexNumber(L *lua.LState) int {
	v := uint32(int64(L.CheckNumber(3)))
	s.last = s.r.DrawHexNumber(L.CheckInt(1), L.CheckInt(2), v, lcd.TextFlags(optFlags(L, 4)), L.OptInt(5, 0))
	return 0
}

func (s *Script) drawTimer(L *lua.LState) int {
	word := optFlags(L, 4)
	var tf widgets.TimerFlags
	if word&flagTimeHour != 0 {
		tf |= widgets.TimeHour
	}
	if word&flagTimeBlink != 0 {
		tf |= widgets.TimeBlink
	}
	style := lcd.TextFlags(word &^ (flagTimeHour | flagTimeBlink))
	s.last = widgets.DrawTimer(s.r, L.CheckInt(1), L.CheckInt(2), int32(L.CheckNumber(3)), style, tf)
	return 0
}

func (s *Script) drawSwitch(L *lua.LState) int {
	style := lcd.TextFlags(optFlags(L, 4))
	s.last = widgets.DrawSwitch(s.r, L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), style, s.opts.Switches, true)
	return 0
}

// drawBitmap(x, y, name [, frame [, flags]]). INVERS and BLINK map to the
// bitmap invert and blink modes. Returns false when the asset is unavailable.
func (s *Script) drawBitmap(L *lua.LState) int {
	img, err := s.bitmap(L.CheckString(3))
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	word := lcd.TextFlags(optFlags(L, 5))
	var flags lcd.BitmapFlags
	if word&lcd.Inverse != 0 {
		flags |= lcd.BitmapInvert
	}
	if word&lcd.Blink != 0 {
		flags |= lcd.BitmapBlink
	}
	s.r.DrawBitmap(L.CheckInt(1), L.CheckInt(2), img, L.OptInt(4, 0), flags)
	L.Push(lua.LTrue)
	return 1
}

func (s *Script) invertLine(L *lua.LState) int {
	s.r.Surface().InvertLine(L.CheckInt(1))
	return 0
}

func (s *Script) getLastPos(L *lua.LState) int {
	L.Push(lua.LNumber(s.last.Next))
	return 1
}

func (s *Script) getLastLeftPos(L *lua.LState) int {
	L.Push(lua.LNumber(s.last.Left))
	return 1
}

func (s *Script) getLastRightPos(L *lua.LState) int {
	L.Push(lua.LNumber(s.last.Right))
	return 1
}

func (s *Script) getTextWidth(L *lua.LState) int {
	w := s.r.TextWidth(L.CheckString(1), 0, lcd.TextFlags(optFlags(L, 2)))
	L.Push(lua.LNumber(w))
	return 1
}
