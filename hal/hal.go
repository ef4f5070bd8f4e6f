package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMonoPage is 1bpp in 8-row pages: byte (y/8)*width + x holds
	// column x of page y/8, bit n being row 8*(y/8)+n.
	PixelFormatMonoPage PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// The buffer is drawn into directly. Present hands the current contents to
// the panel; nothing drawn after it returns is shown until the next Present.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Clear()
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Time provides a base tick stream.
//
// Ticks are 1 ms apart on every platform; the sequence starts at 1.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the outside
// world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Time() Time
}

// Panel geometry of the supported display.
const (
	PanelWidth  = 128
	PanelHeight = 64
)
