package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"edgelcd/gui/lcd"
)

var ErrTooLarge = errors.New("assets: image larger than 255x255")

// DefaultThreshold is the grey level at which a source pixel becomes lit.
const DefaultThreshold = 0x80

// Pack converts img into a single-frame asset. Pixels whose grey level is at
// least threshold are lit.
func Pack(img image.Image, threshold uint8) (lcd.Bitmap, error) {
	return PackFrames(img, img.Bounds().Dy(), threshold)
}

// PackFrames cuts img into horizontal strips of frameH rows, top to bottom,
// and packs each as one frame. A trailing partial strip is dropped.
func PackFrames(img image.Image, frameH int, threshold uint8) (lcd.Bitmap, error) {
	b := img.Bounds()
	w := b.Dx()
	if w <= 0 || frameH <= 0 || b.Dy() < frameH {
		return nil, fmt.Errorf("assets: empty image %dx%d frame height %d", w, b.Dy(), frameH)
	}
	if w > 0xff || frameH > 0xff {
		return nil, ErrTooLarge
	}

	frames := b.Dy() / frameH
	frameSize := lcd.BufferSize(w, frameH)
	out := make(lcd.Bitmap, 2+frames*frameSize)
	out[0], out[1] = byte(w), byte(frameH)

	for f := 0; f < frames; f++ {
		body := out[2+f*frameSize : 2+(f+1)*frameSize]
		for y := 0; y < frameH; y++ {
			sy := b.Min.Y + f*frameH + y
			for x := 0; x < w; x++ {
				if lit(img.At(b.Min.X+x, sy), threshold) {
					body[(y/8)*w+x] |= 1 << (y & 7)
				}
			}
		}
	}
	return out, nil
}

func lit(c color.Color, threshold uint8) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y >= threshold
}
