package app

import (
	"edgelcd/gui/lcd"
	"edgelcd/gui/widgets"
	"edgelcd/internal/buildinfo"
)

const (
	logoWidth  = 32
	logoHeight = 16

	// Channel bars: base line and full-scale length in pixels.
	barBase  = 46
	barRange = 30
)

// inputs is the simulated radio state shown by the status screen. It is a pure
// function of the blink timer so headless runs are reproducible.
type inputs struct {
	channels [4]int // bar length, 0..barRange
	volts    uint16
	switches [3]int // position 0..2 of SA..SC
}

func simulate(count10ms uint64) inputs {
	var in inputs
	for i := range in.channels {
		phase := int((count10ms + uint64(i)*37) % (2 * barRange * 4))
		v := phase / 4
		if v > barRange {
			v = 2*barRange - v
		}
		in.channels[i] = v
	}
	// 8.4 V draining to 6.5 V over ~3 minutes, then recharged.
	in.volts = 84 - uint16((count10ms/1000)%20)
	period := uint64(200)
	for i := range in.switches {
		in.switches[i] = int(count10ms / period % 3)
		period += 200
	}
	return in
}

// swSource returns the switch source of switch idx at position pos.
func swSource(idx, pos int) int { return idx*3 + pos + 1 }

func (in inputs) active(sw int) bool {
	if sw < 0 {
		return !in.active(-sw)
	}
	i := sw - 1
	if i/3 >= len(in.switches) {
		return false
	}
	return in.switches[i/3] == i%3
}

// batteryLevel maps the reading onto the battery icon frames.
func batteryLevel(volts uint16, frames int) int {
	if frames <= 1 {
		return 0
	}
	const lo, hi = 65, 84
	switch {
	case volts <= lo:
		return 0
	case volts >= hi:
		return frames - 1
	}
	return int(volts-lo) * (frames - 1) / (hi - lo)
}

func (s *system) drawStatus() {
	c := s.timer.Count10ms()
	in := simulate(c)
	secs := int32(s.timer.Seconds())
	bat := widgets.Battery{Volts: in.volts, Warn: 70}

	widgets.DrawStatusBar(s.r, widgets.StatusBar{
		ModelName: s.cfg.ModelName,
		ModelID:   s.cfg.ModelID,
		Battery:   bat,
		Timer:     widgets.TimerState{Value: secs},
	})

	for i, v := range in.channels {
		x := 4 + i*8
		s.surf.DrawVBar(x, barBase, v)
		widgets.PutsChnLetter(s.r, x-1, barBase+2, i+1, lcd.TinSize)
	}
	s.surf.DrawSolidHLine(0, barBase, 34, lcd.AttrDraw)

	e := widgets.PutsChn(s.r, 40, 40, 1, lcd.SmlSize)
	s.r.DrawNumber(e.Next+2, 40, int32(in.channels[0]*100/barRange), lcd.SmlSize, lcd.NumberFormat{})
	e = widgets.DrawCurveName(s.r, 40, 48, 1, lcd.SmlSize)
	widgets.DrawShortTrimMode(s.r, e.Next+4, 48, 0, 0, lcd.SmlSize)

	t := widgets.TimerState{Mode: widgets.TimerModeThrottle, Value: secs}
	widgets.DrawTimerWithMode(s.r, lcd.Width-1, 12, t, lcd.DblSize)

	state := widgets.SwitchFunc(in.active)
	x := 0
	for i, pos := range in.switches {
		x = widgets.DrawSwitch(s.r, x, 56, swSource(i, pos), lcd.Left, state, true).Next + 3
	}

	if n := s.battery.Frames(); n > 0 {
		flags := lcd.BitmapFlags(0)
		if bat.Low() {
			flags |= lcd.BitmapBlink
		}
		s.r.DrawBitmap(lcd.Width-14, 40, s.battery, batteryLevel(in.volts, n), flags)
	}
	s.r.DrawText(lcd.Width, 58, buildinfo.Short(), lcd.TinSize|lcd.Right)
}
