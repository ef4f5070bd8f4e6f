package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"edgelcd/gui/assets"
	"edgelcd/gui/blink"
	"edgelcd/gui/lcd"
	"edgelcd/hal"
	"edgelcd/internal/buildinfo"
)

// Config selects what the app shows.
type Config struct {
	// Assets supplies bitmaps and scripts. Nil uses DefaultAssets.
	Assets fs.FS
	// Script names a Lua screen script inside Assets. Empty shows the
	// built-in status screen.
	Script string

	ModelName string
	ModelID   uint8
}

// Frame period of the embedded run loop.
const framePeriod = 20 * time.Millisecond

// splashPeriods is how long the splash stays up, in 10 ms periods.
const splashPeriods = 150

// screen draws one frame of a full-screen page.
type screen interface {
	Draw() error
	Close()
}

type system struct {
	cfg Config
	log hal.Logger
	led hal.LED
	fb  hal.Framebuffer

	surf  *lcd.Surface
	r     *lcd.Renderer
	timer *blink.Timer

	logo    lcd.Bitmap
	battery lcd.Bitmap
	script  screen

	ledOn   bool
	stopped bool
}

// New initializes the app with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the app and renders forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

// NewWithConfig initializes the app and returns its frame step. Setup
// failures are logged and yield a step that does nothing.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		logf(h.Logger(), "app: %v", err)
		return func() error { return nil }
	}
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			logf(h.Logger(), "app: frame: %v", err)
		}
		time.Sleep(framePeriod)
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("no display")
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatMonoPage {
		return nil, fmt.Errorf("display: unsupported pixel format %d", fb.Format())
	}
	surf, err := lcd.NewOn(fb.Buffer(), fb.Width(), fb.Height())
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	if cfg.Assets == nil {
		cfg.Assets = DefaultAssets()
	}

	timer := blink.New(h.Time())
	s := &system{
		cfg:   cfg,
		log:   h.Logger(),
		led:   h.LED(),
		fb:    fb,
		surf:  surf,
		r:     lcd.NewRenderer(surf, timer),
		timer: timer,
	}
	logf(s.log, "app: edgelcd %s, panel %dx%d", buildinfo.String(), fb.Width(), fb.Height())

	logo := make([]byte, lcd.BitmapSize(logoWidth, logoHeight))
	if err := assets.Load(cfg.Assets, "logo.bmp", logo, logoWidth, logoHeight); err != nil {
		logf(s.log, "app: %v", err)
	} else {
		s.logo = logo
	}
	if s.battery, err = assets.LoadAll(cfg.Assets, "battery.bmp"); err != nil {
		logf(s.log, "app: %v", err)
	}

	if cfg.Script != "" {
		sc, err := newScriptScreen(s.r, cfg.Assets, cfg.Script)
		if err != nil {
			logf(s.log, "app: %v", err)
		} else {
			s.script = sc
		}
	}
	return s, nil
}

func (s *system) step() (err error) {
	if s.stopped {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			s.panicScreen(v)
			err = nil
		}
	}()

	s.timer.Update()
	s.r.Clear()
	switch {
	case s.timer.Count10ms() < splashPeriods:
		s.drawSplash()
	case s.script != nil:
		if err := s.script.Draw(); err != nil {
			logf(s.log, "app: %v", err)
			s.script.Close()
			s.script = nil
			s.r.Clear()
			s.drawStatus()
		}
	default:
		s.drawStatus()
	}
	s.heartbeat()

	if err := s.fb.Present(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		return err
	}
	return nil
}

// heartbeat mirrors the slow blink phase on the LED.
func (s *system) heartbeat() {
	on := s.timer.SlowOn()
	if s.led == nil || on == s.ledOn {
		return
	}
	s.ledOn = on
	if on {
		s.led.High()
	} else {
		s.led.Low()
	}
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
