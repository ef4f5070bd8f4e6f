package app

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.bmp assets/*.lua
var embedded embed.FS

// DefaultAssets holds the bitmaps and the demo script built into the binary.
func DefaultAssets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
