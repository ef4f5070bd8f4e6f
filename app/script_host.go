//go:build !tinygo

package app

import (
	"io/fs"

	"edgelcd/gui/lcd"
	"edgelcd/gui/script"
)

type scriptScreen struct {
	s *script.Script
}

func newScriptScreen(r *lcd.Renderer, fsys fs.FS, name string) (screen, error) {
	s := script.New(r, script.Options{Assets: fsys})
	if err := s.LoadFile(fsys, name); err != nil {
		s.Close()
		return nil, err
	}
	return &scriptScreen{s: s}, nil
}

func (sc *scriptScreen) Draw() error { return sc.s.Run() }

func (sc *scriptScreen) Close() { sc.s.Close() }
