// Package script runs Lua screen scripts against an lcd renderer.
//
// A script is executed once when loaded and defines a global run function,
// which is called once per frame. Drawing goes through the global lcd table;
// the flag constants are globals carrying the legacy flag word values.
package script

import (
	"errors"
	"fmt"
	"io/fs"

	lua "github.com/yuin/gopher-lua"

	"edgelcd/gui/assets"
	"edgelcd/gui/lcd"
	"edgelcd/gui/widgets"
)

var ErrNoRun = errors.New("script: no run function")

// Options configures the host side of a script.
type Options struct {
	// Assets resolves drawBitmap names. Nil disables bitmaps.
	Assets fs.FS
	// Switches drives the auto-bold of drawSwitch. May be nil.
	Switches widgets.SwitchState
}

// Script is one loaded Lua state bound to a renderer.
type Script struct {
	r     *lcd.Renderer
	opts  Options
	state *lua.LState

	last    lcd.Extent
	bitmaps map[string]lcd.Bitmap
}

// New creates a Lua state with the lcd API installed.
func New(r *lcd.Renderer, opts Options) *Script {
	s := &Script{
		r:       r,
		opts:    opts,
		state:   lua.NewState(lua.Options{SkipOpenLibs: false}),
		bitmaps: make(map[string]lcd.Bitmap),
	}
	s.preloadAPI()
	return s
}

// LoadString executes src.
func (s *Script) LoadString(src string) error {
	if err := s.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// LoadFile executes the named script from fsys.
func (s *Script) LoadFile(fsys fs.FS, name string) error {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", name, err)
	}
	if err := s.state.DoString(string(src)); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

// Run calls the script's run function once.
func (s *Script) Run() error {
	fn := s.state.GetGlobal("run")
	if fn.Type() != lua.LTFunction {
		return ErrNoRun
	}
	if err := s.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

// LastExtent is the extent of the most recent text or number drawn by the
// script.
func (s *Script) LastExtent() lcd.Extent { return s.last }

// Close tears down the Lua state.
func (s *Script) Close() {
	if s.state != nil {
		s.state.Close()
		s.state = nil
	}
}

func (s *Script) bitmap(name string) (lcd.Bitmap, error) {
	if img, ok := s.bitmaps[name]; ok {
		return img, nil
	}
	if s.opts.Assets == nil {
		return nil, fmt.Errorf("script: bitmap %s: %w", name, assets.ErrNotFound)
	}
	img, err := assets.LoadAll(s.opts.Assets, name)
	if err != nil {
		return nil, err
	}
	s.bitmaps[name] = img
	return img, nil
}
