package lcd

// Bitmap is a packed 1-bpp asset: width byte, height byte, then one or more
// frames of width*ceil(height/8) bytes in the surface's own band layout.
type Bitmap []byte

// BitmapSize is the byte size of a single-frame w x h asset.
func BitmapSize(w, h int) int { return 2 + BufferSize(w, h) }

func (b Bitmap) Width() int {
	if len(b) < 2 {
		return 0
	}
	return int(b[0])
}

func (b Bitmap) Height() int {
	if len(b) < 2 {
		return 0
	}
	return int(b[1])
}

// FrameSize is the byte size of one frame.
func (b Bitmap) FrameSize() int { return BufferSize(b.Width(), b.Height()) }

// Frames is the number of complete frames present.
func (b Bitmap) Frames() int {
	fs := b.FrameSize()
	if fs == 0 {
		return 0
	}
	return (len(b) - 2) / fs
}

// Frame returns the packed bytes of frame idx, or nil if it is not present.
func (b Bitmap) Frame(idx int) []byte {
	if idx < 0 || idx >= b.Frames() {
		return nil
	}
	fs := b.FrameSize()
	off := 2 + idx*fs
	return b[off : off+fs]
}

// BitmapFlags modify a bitmap draw.
type BitmapFlags uint8

const (
	// BitmapInvert flips every bit before it is combined.
	BitmapInvert BitmapFlags = 1 << iota
	// BitmapBlink inverts while the blink phase is on.
	BitmapBlink
	// BitmapMerge ORs set bits instead of copying the whole rectangle.
	BitmapMerge
)

// Blit draws frame idx of img with its top-left corner at (x, y). Without merge
// the destination rectangle becomes an exact copy. Malformed assets and
// missing frames draw nothing.
func (s *Surface) Blit(x, y int, img Bitmap, idx int, invert, merge bool) {
	frame := img.Frame(idx)
	if frame == nil {
		return
	}
	w, h := img.Width(), img.Height()
	var flip byte
	if invert {
		flip = 0xff
	}

	for band := 0; band*8 < h; band++ {
		src := frame[band*w : (band+1)*w]
		by := y + band*8
		rows := h - band*8
		if rows > 8 {
			rows = 8
		}
		if y&7 == 0 && rows == 8 && by >= 0 && by+8 <= s.h {
			s.blitBand(x, by/8, src, flip, merge)
			continue
		}
		for i, col := range src {
			col ^= flip
			for r := 0; r < rows; r++ {
				on := col&(1<<r) != 0
				switch {
				case on:
					s.DrawPoint(x+i, by+r, AttrDraw)
				case !merge:
					s.ClearPoint(x+i, by+r)
				}
			}
		}
	}
}

// blitBand writes whole source bytes into destination band line.
func (s *Surface) blitBand(x, line int, src []byte, flip byte, merge bool) {
	row := line * s.w
	for i, col := range src {
		xx := x + i
		if xx < 0 || xx >= s.w {
			continue
		}
		if merge {
			s.buf[row+xx] |= col ^ flip
		} else {
			s.buf[row+xx] = col ^ flip
		}
	}
}

// DrawBitmap draws frame idx of img at (x, y).
func (r *Renderer) DrawBitmap(x, y int, img Bitmap, idx int, flags BitmapFlags) {
	invert := flags&BitmapInvert != 0
	if flags&BitmapBlink != 0 && r.blink.BlinkOn() {
		invert = !invert
	}
	r.s.Blit(x, y, img, idx, invert, flags&BitmapMerge != 0)
}
