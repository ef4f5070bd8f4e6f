//go:build tinygo

package app

import (
	"errors"
	"fmt"
	"io/fs"

	"edgelcd/gui/lcd"
)

var errNoScripts = errors.New("scripts are not supported on this target")

func newScriptScreen(_ *lcd.Renderer, _ fs.FS, name string) (screen, error) {
	return nil, fmt.Errorf("script %s: %w", name, errNoScripts)
}
