package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgelcd/gui/lcd"
)

type pair struct {
	got, want *lcd.Renderer
}

func newPair(blinkOn bool) pair {
	b := lcd.BlinkFunc(func() bool { return blinkOn })
	return pair{
		got:  lcd.NewRenderer(lcd.New(lcd.Width, lcd.Height), b),
		want: lcd.NewRenderer(lcd.New(lcd.Width, lcd.Height), b),
	}
}

// same asserts that the widget output equals drawing text directly.
func (p pair) same(t *testing.T, e lcd.Extent, x, y int, text string, style lcd.Style) {
	t.Helper()
	we := p.want.DrawText(x, y, text, style)
	assert.Equal(t, we, e, text)
	assert.Equal(t, p.want.Surface().Buffer(), p.got.Surface().Buffer(), text)
	p.got.Clear()
	p.want.Clear()
}

func TestSwitchNames(t *testing.T) {
	cases := map[int]string{
		0:              "---",
		1:              "SA↑",
		2:              "SA-",
		6:              "SB↓",
		-24:            "!SH↓",
		firstLogical:   "L01",
		SwitchOn - 1:   "L64",
		-firstLogical:  "!L01",
		SwitchOn:       "ON",
		SwitchOne:      "One",
		SwitchOne + 10: "?",
	}
	for sw, want := range cases {
		assert.Equal(t, want, SwitchName(sw), "sw %d", sw)
	}
}

func TestDrawSwitchAutoBold(t *testing.T) {
	p := newPair(true)
	active := SwitchFunc(func(sw int) bool { return sw == 3 })

	e := DrawSwitch(p.got, 0, 0, 3, lcd.Left, active, true)
	p.same(t, e, 0, 0, "SA↓", lcd.Bold)

	e = DrawSwitch(p.got, 0, 0, 3, lcd.Left, active, false)
	p.same(t, e, 0, 0, "SA↓", lcd.Left)

	e = DrawSwitch(p.got, 50, 8, 1, lcd.Right|lcd.Inverse, active, true)
	p.same(t, e, 50, 8, "SA↑", lcd.Right|lcd.Inverse)

	e = DrawSwitch(p.got, 0, 0, 3, lcd.Left, nil, true)
	p.same(t, e, 0, 0, "SA↓", lcd.Left)
}

func TestDrawModelName(t *testing.T) {
	p := newPair(true)
	e := DrawModelName(p.got, 0, 0, "  \x00", 7, lcd.DblSize)
	p.same(t, e, 0, 0, "MODEL07", lcd.DblSize)

	e = DrawModelName(p.got, 0, 0, "Glider", 7, lcd.Left)
	p.same(t, e, 0, 0, "Glider", lcd.Left)

	e = DrawModelName(p.got, 0, 0, "ABCDEFGHIJKLMN", 1, lcd.Left)
	p.same(t, e, 0, 0, "ABCDEFGHIJ", lcd.Left)
}

func TestDrawCurveName(t *testing.T) {
	p := newPair(true)
	p.same(t, DrawCurveName(p.got, 0, 0, 0, lcd.Left), 0, 0, "---", lcd.Left)
	p.same(t, DrawCurveName(p.got, 0, 0, 3, lcd.Left), 0, 0, "CV03", lcd.Left)
	p.same(t, DrawCurveName(p.got, 0, 0, -12, lcd.Inverse), 0, 0, "!CV12", lcd.Inverse)
}

func TestFormatTimer(t *testing.T) {
	cases := []struct {
		secs  int32
		flags TimerFlags
		want  string
	}{
		{0, 0, "00:00"},
		{65, 0, "01:05"},
		{-65, 0, "-01:05"},
		{3725, 0, "62:05"},
		{3725, TimeHour, "1:02:05"},
		{59, TimeHour, "00:59"},
		{6000 * 60, 0, "6000:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, string(FormatTimer(nil, c.secs, c.flags, ':')))
	}
}

func TestDrawTimerBlink(t *testing.T) {
	p := newPair(false)
	e := DrawTimer(p.got, 0, 0, 65, lcd.Left, TimeBlink)
	p.same(t, e, 0, 0, "01 05", lcd.Left)

	e = DrawTimer(p.got, 0, 0, 65, lcd.Left, 0)
	p.same(t, e, 0, 0, "01:05", lcd.Left)

	on := newPair(true)
	e = DrawTimer(on.got, 0, 0, 65, lcd.Left, TimeBlink)
	on.same(t, e, 0, 0, "01:05", lcd.Left)
}

func TestDrawTimerMode(t *testing.T) {
	p := newPair(true)
	p.same(t, DrawTimerMode(p.got, 0, 0, TimerModeOff, lcd.Left), 0, 0, "OFF", lcd.Left)
	p.same(t, DrawTimerMode(p.got, 0, 0, TimerModeThrottlePercent, lcd.Left), 0, 0, "TH%", lcd.Left)
	p.same(t, DrawTimerMode(p.got, 0, 0, len(timerModes), lcd.Left), 0, 0, "SA↑", lcd.Left)
	p.same(t, DrawTimerMode(p.got, 0, 0, -2, lcd.Left), 0, 0, "!SA-", lcd.Left)
}

func TestDrawTimerWithMode(t *testing.T) {
	p := newPair(true)
	e := DrawTimerWithMode(p.got, 100, 0, TimerState{Mode: TimerModeOn, Value: 90}, lcd.DblSize)
	p.want.DrawText(100, 16, "ON", lcd.SmlSize|lcd.Right)
	p.same(t, e, 100, 0, "01:30", lcd.DblSize|lcd.Right)

	e = DrawTimerWithMode(p.got, 100, 0, TimerState{Name: "Flight", Value: 90}, lcd.Left)
	p.want.DrawText(100, 8, "Flight", lcd.SmlSize|lcd.Right)
	p.same(t, e, 100, 0, "01:30", lcd.Right)
}

func TestChannelLabels(t *testing.T) {
	p := newPair(true)
	p.same(t, PutsChn(p.got, 0, 0, 5, lcd.Left), 0, 0, "CH05", lcd.Left)
	p.same(t, PutsChn(p.got, 0, 0, 16, lcd.SmlSize), 0, 0, "CH16", lcd.SmlSize)
	p.same(t, PutsChnLetter(p.got, 0, 0, 3, lcd.Left), 0, 0, "T", lcd.Left)
	p.same(t, PutsChnLetter(p.got, 0, 0, 9, lcd.Left), 0, 0, "?", lcd.Left)
}

func TestVolts(t *testing.T) {
	p := newPair(true)
	p.same(t, PutsVolts(p.got, 60, 0, 74, lcd.Right, 0), 60, 0, "7.4V", lcd.Right)
	p.same(t, PutsVolts(p.got, 0, 0, 5, lcd.Left, NoUnit), 0, 0, "0.5", lcd.Left)

	bat := Battery{Volts: 66, Warn: 66}
	require.True(t, bat.Low())
	p.same(t, PutsVBat(p.got, 0, 0, bat, lcd.Left), 0, 0, "6.6V", lcd.Blink)
	assert.False(t, Battery{Volts: 80, Warn: 66}.Low())
	assert.False(t, Battery{Volts: 10}.Low(), "no warning level set")
}

func TestShortTrimMode(t *testing.T) {
	p := newPair(true)
	p.same(t, DrawShortTrimMode(p.got, 0, 0, TrimDisabled, 0, lcd.Left), 0, 0, "-", lcd.Left)
	p.same(t, DrawShortTrimMode(p.got, 0, 0, 2, 1, lcd.Left), 0, 0, ":", lcd.Left)
	p.same(t, DrawShortTrimMode(p.got, 0, 0, 2, 0, lcd.Left), 0, 0, "1", lcd.Left)
	p.same(t, DrawShortTrimMode(p.got, 0, 0, 5, 0, lcd.Left), 0, 0, "+2", lcd.Left)
}

func TestStatusBarInvertsTopLine(t *testing.T) {
	r := lcd.NewRenderer(lcd.New(lcd.Width, lcd.Height), nil)
	DrawStatusBar(r, StatusBar{ModelName: "", ModelID: 3, Battery: Battery{Volts: 82}, Timer: TimerState{Value: 61}})
	s := r.Surface()

	// Background of the bar is lit, glyph ink is dark.
	assert.True(t, s.Pixel(lcd.Width/2-20, 7))
	assert.False(t, s.Pixel(1, 1), "first column of 'M' is ink")
	for x := 0; x < lcd.Width; x++ {
		assert.True(t, s.Pixel(x, 7), "gap row lit at %d", x)
		assert.False(t, s.Pixel(x, 8))
	}
}
