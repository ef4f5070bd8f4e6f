//go:build !tinygo

package hal

import "sync"

// hostFramebuffer keeps the draw buffer and the last presented frame apart so
// a window or dump can read a complete image while the next one is drawn.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	n := monoBufferSize(width, height)
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, n),
		front:  make([]byte, n),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatMonoPage }
func (f *hostFramebuffer) StrideBytes() int    { return f.width }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Clear()              { clear(f.buf) }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns how many
// frames have been presented so far.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}
