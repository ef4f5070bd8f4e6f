// Package lcd renders into a monochrome, page-packed framebuffer.
//
// The buffer layout matches common 128x64 controllers: byte (y/8)*W + x holds
// the eight pixels of column x in band y/8, bit n being row 8*(y/8)+n. Every
// drawing call clips silently and never fails; a bad coordinate draws nothing.
//
// A Surface has no internal locking. One render pass at a time is expected, and
// after any call returns the buffer is a complete image ready to be transferred.
package lcd

import (
	"errors"
	"fmt"
)

// Default geometry and character metrics of the 128x64 panel.
const (
	Width  = 128
	Height = 64

	FW    = 6 // standard character pitch
	FWNUM = 5 // digit ink width
	FH    = 8 // standard line height

	Lines = Height / FH
	Cols  = Width / FW
)

// ErrBufferTooSmall is returned by NewOn when the buffer cannot hold the surface.
var ErrBufferTooSmall = errors.New("lcd: buffer too small")

// BufferSize returns the byte size of a w x h page-packed buffer.
func BufferSize(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * ((h + 7) / 8)
}

// Surface owns a page-packed pixel store.
type Surface struct {
	w   int
	h   int
	buf []byte
}

// New allocates a cleared w x h surface.
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{w: w, h: h, buf: make([]byte, BufferSize(w, h))}
}

// NewOn wraps an existing buffer, typically the one owned by a display driver.
func NewOn(buf []byte, w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("lcd: invalid geometry %dx%d", w, h)
	}
	need := BufferSize(w, h)
	if len(buf) < need {
		return nil, fmt.Errorf("lcd: %dx%d needs %d bytes, have %d: %w", w, h, need, len(buf), ErrBufferTooSmall)
	}
	return &Surface{w: w, h: h, buf: buf[:need]}, nil
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

// Bands is the number of 8-pixel bands (text lines of the standard font).
func (s *Surface) Bands() int { return (s.h + 7) / 8 }

// Buffer returns the raw page buffer. The slice aliases the surface.
func (s *Surface) Buffer() []byte { return s.buf }

// Snapshot copies the buffer into dst and returns the number of bytes copied.
func (s *Surface) Snapshot(dst []byte) int { return copy(dst, s.buf) }

// Clear sets every pixel to 0.
func (s *Surface) Clear() { clear(s.buf) }

// Fill writes b into every byte of the buffer.
func (s *Surface) Fill(b byte) {
	for i := range s.buf {
		s.buf[i] = b
	}
}

func (s *Surface) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// Pixel reports whether (x, y) is set. Out-of-range coordinates read as unset.
func (s *Surface) Pixel(x, y int) bool {
	if !s.in(x, y) {
		return false
	}
	return s.buf[(y/8)*s.w+x]&(1<<(y&7)) != 0
}

// DrawPoint applies attr to a single pixel.
func (s *Surface) DrawPoint(x, y int, attr Attr) {
	if !s.in(x, y) {
		return
	}
	s.mask((y/8)*s.w+x, 1<<(y&7), attr)
}

// ClearPoint unsets a single pixel.
func (s *Surface) ClearPoint(x, y int) {
	s.DrawPoint(x, y, AttrErase)
}

// mask applies attr to the bits of m in byte i. It is the only place the
// buffer is mutated bit-wise.
func (s *Surface) mask(i int, m byte, attr Attr) {
	if i < 0 || i >= len(s.buf) {
		return
	}
	switch {
	case attr&AttrErase != 0:
		s.buf[i] &^= m
	case attr&AttrXOR != 0:
		s.buf[i] ^= m
	default:
		s.buf[i] |= m
	}
}

// plot writes one pattern sample: on pixels get attr, off pixels are cleared
// only under AttrForce.
func (s *Surface) plot(x, y int, on bool, attr Attr) {
	if !s.in(x, y) {
		return
	}
	i, m := (y/8)*s.w+x, byte(1)<<(y&7)
	switch {
	case on:
		s.mask(i, m, attr)
	case attr&AttrForce != 0:
		s.buf[i] &^= m
	}
}
