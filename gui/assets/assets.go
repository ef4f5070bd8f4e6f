// Package assets loads and builds packed 1-bpp bitmap assets.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"edgelcd/gui/lcd"
)

var (
	// ErrNotFound indicates that the named asset does not exist.
	ErrNotFound = errors.New("assets: not found")
	// ErrCorrupt indicates a short file or a header that does not match the
	// requested geometry.
	ErrCorrupt = errors.New("assets: corrupt")
	// ErrBufferTooSmall indicates that the destination cannot hold the asset.
	ErrBufferTooSmall = errors.New("assets: buffer too small")
)

// Load reads a single-frame w x h asset into dst. Exactly lcd.BitmapSize(w, h)
// bytes of dst are used. If the body turns out short the used range is zeroed;
// any other failure leaves dst untouched.
func Load(fsys fs.FS, name string, dst []byte, w, h int) error {
	need := lcd.BitmapSize(w, h)
	if w <= 0 || h <= 0 || w > 0xff || h > 0xff {
		return fmt.Errorf("assets: %s: invalid geometry %dx%d: %w", name, w, h, ErrCorrupt)
	}
	if len(dst) < need {
		return fmt.Errorf("assets: %s: need %d bytes, have %d: %w", name, need, len(dst), ErrBufferTooSmall)
	}

	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("assets: %s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	var hdr [2]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return fmt.Errorf("assets: %s: header: %w", name, ErrCorrupt)
	}
	if int(hdr[0]) != w || int(hdr[1]) != h {
		return fmt.Errorf("assets: %s: header %dx%d, want %dx%d: %w", name, hdr[0], hdr[1], w, h, ErrCorrupt)
	}

	body := dst[2:need]
	if _, err := io.ReadFull(f, body); err != nil {
		clear(dst[:need])
		return fmt.Errorf("assets: %s: body: %w", name, ErrCorrupt)
	}
	dst[0], dst[1] = hdr[0], hdr[1]
	return nil
}

// LoadAll reads every frame of the named asset.
func LoadAll(fsys fs.FS, name string) (lcd.Bitmap, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	img := lcd.Bitmap(data)
	if img.Frames() == 0 || (len(data)-2)%img.FrameSize() != 0 {
		return nil, fmt.Errorf("assets: %s: %d bytes for %dx%d frames: %w", name, len(data), img.Width(), img.Height(), ErrCorrupt)
	}
	return img, nil
}
