package app

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgelcd/gui/lcd"
	"edgelcd/hal"
)

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeLED struct{ on, changes int }

func (l *fakeLED) High() { l.on = 1; l.changes++ }
func (l *fakeLED) Low()  { l.on = 0; l.changes++ }

type fakeFB struct {
	buf       []byte
	presents  int
	onPresent func()
}

func (f *fakeFB) Width() int              { return lcd.Width }
func (f *fakeFB) Height() int             { return lcd.Height }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatMonoPage }
func (f *fakeFB) StrideBytes() int        { return lcd.Width }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Clear()                  { clear(f.buf) }
func (f *fakeFB) Present() error {
	f.presents++
	if f.onPresent != nil {
		fn := f.onPresent
		f.onPresent = nil
		fn()
	}
	return nil
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeTime struct {
	ch   chan uint64
	tick uint64
}

func (t *fakeTime) Ticks() <-chan uint64 { return t.ch }

// advance queues ms one-millisecond ticks.
func (t *fakeTime) advance(ms int) {
	for i := 0; i < ms; i++ {
		t.tick++
		t.ch <- t.tick
	}
}

type fakeHAL struct {
	log  *fakeLogger
	led  *fakeLED
	fb   *fakeFB
	time *fakeTime
	disp hal.Display
}

func newFakeHAL() *fakeHAL {
	fb := &fakeFB{buf: make([]byte, lcd.BufferSize(lcd.Width, lcd.Height))}
	return &fakeHAL{
		log:  &fakeLogger{},
		led:  &fakeLED{},
		fb:   fb,
		time: &fakeTime{ch: make(chan uint64, 8192)},
		disp: fakeDisplay{fb: fb},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) LED() hal.LED         { return h.led }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Time() hal.Time       { return h.time }

func setBits(b []byte) int {
	n := 0
	for _, v := range b {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}

// frameAt renders one frame after ms of simulated time.
func frameAt(t *testing.T, cfg Config, ms int) (*fakeHAL, []byte) {
	t.Helper()
	h := newFakeHAL()
	step := NewWithConfig(h, cfg)
	h.time.advance(ms)
	require.NoError(t, step())
	return h, append([]byte(nil), h.fb.buf...)
}

func TestSplashThenStatus(t *testing.T) {
	h, splash := frameAt(t, Config{}, 10)
	assert.Equal(t, 1, h.fb.presents)
	assert.NotZero(t, setBits(splash))
	assert.True(t, h.log.contains("app: edgelcd"))

	_, status := frameAt(t, Config{ModelName: "Glider"}, 2000)
	assert.NotEqual(t, splash, status)
	assert.Greater(t, setBits(status[:lcd.Width]), lcd.Width*4, "status bar line is inverted")
}

func TestStatusIsDeterministic(t *testing.T) {
	_, a := frameAt(t, Config{ModelName: "Glider"}, 3000)
	_, b := frameAt(t, Config{ModelName: "Glider"}, 3000)
	assert.Equal(t, a, b)
}

func TestMissingScriptFallsBackToStatus(t *testing.T) {
	_, want := frameAt(t, Config{}, 2000)
	h, got := frameAt(t, Config{Script: "nope.lua"}, 2000)
	assert.Equal(t, want, got)
	assert.True(t, h.log.contains("nope.lua"))
}

func TestScriptDrawsPage(t *testing.T) {
	_, status := frameAt(t, Config{}, 2000)
	h, page := frameAt(t, Config{Script: "demo.lua"}, 2000)
	assert.False(t, h.log.contains("script"), "log: %v", h.log.lines)
	assert.NotEqual(t, status, page)
}

func TestScriptErrorDropsScript(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.lua": {Data: []byte(`function run() error("boom") end`)},
	}
	_, want := frameAt(t, Config{Assets: fsys}, 2000)
	h, got := frameAt(t, Config{Assets: fsys, Script: "bad.lua"}, 2000)
	assert.True(t, h.log.contains("boom"))
	assert.Equal(t, want, got)
}

func TestPanicFreezesScreen(t *testing.T) {
	h := newFakeHAL()
	h.fb.onPresent = func() { panic("display gone") }
	step := NewWithConfig(h, Config{})
	h.time.advance(10)

	require.NoError(t, step())
	assert.True(t, h.log.contains("app: panic: display gone"))
	assert.Equal(t, 2, h.fb.presents, "panic screen is presented")
	assert.NotZero(t, setBits(h.fb.buf))

	require.NoError(t, step())
	assert.Equal(t, 2, h.fb.presents, "nothing is drawn after a panic")
}

func TestNoDisplayIsLogged(t *testing.T) {
	h := newFakeHAL()
	h.disp = fakeDisplay{}
	step := NewWithConfig(h, Config{})
	assert.NoError(t, step())
	assert.True(t, h.log.contains("app: no display"))
}

func TestHeartbeatFollowsSlowBlink(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{})
	for i := 0; i < 8; i++ {
		h.time.advance(640)
		require.NoError(t, step())
	}
	assert.Equal(t, 3, h.led.changes)
	assert.Equal(t, 1, h.led.on)
}

func TestSimulatedInputs(t *testing.T) {
	for c := uint64(0); c < 1000; c += 7 {
		in := simulate(c)
		for _, v := range in.channels {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, barRange)
		}
		for i, pos := range in.switches {
			assert.True(t, in.active(swSource(i, pos)))
			assert.False(t, in.active(-swSource(i, pos)))
		}
	}
	assert.False(t, simulate(0).active(99))
}

func TestBatteryLevel(t *testing.T) {
	assert.Equal(t, 0, batteryLevel(60, 5))
	assert.Equal(t, 4, batteryLevel(84, 5))
	assert.Equal(t, 2, batteryLevel(75, 5))
	assert.Equal(t, 0, batteryLevel(80, 1))
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("SA↑ on", 3)
	assert.Equal(t, "SA↑", p)
	assert.Equal(t, " on", r)

	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)
}
