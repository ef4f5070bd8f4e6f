//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

// Panel wiring: SSD1306 on I2C0, SDA GP4 / SCL GP5, address 0x3C.
const (
	i2cAddress = 0x3C
	i2cFreq    = 400000
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	fb     Framebuffer
	t      *tinyGoTime
}

// New returns a Pico HAL driving a 128x64 SSD1306 panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var fb Framebuffer = &stubFramebuffer{w: PanelWidth, h: PanelHeight}
	if dev, err := newPanel(); err != nil {
		logger.WriteLineString("hal: display: " + err.Error())
	} else {
		fb = &panelFramebuffer{dev: dev, buf: dev.GetBuffer()}
	}

	return &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		fb:     fb,
		t:      newTinyGoTime(),
	}
}

func newPanel() (*ssd1306.Device, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: i2cFreq,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		return nil, err
	}
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: i2cAddress,
		Width:   PanelWidth,
		Height:  PanelHeight,
	})
	dev.ClearDisplay()
	return dev, nil
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }

// panelFramebuffer draws straight into the driver's page buffer, which has the
// same layout as the renderer's.
type panelFramebuffer struct {
	dev *ssd1306.Device
	buf []byte
}

func (f *panelFramebuffer) Width() int          { return PanelWidth }
func (f *panelFramebuffer) Height() int         { return PanelHeight }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatMonoPage }
func (f *panelFramebuffer) StrideBytes() int    { return PanelWidth }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }
func (f *panelFramebuffer) Clear()              { clear(f.buf) }
func (f *panelFramebuffer) Present() error      { return f.dev.Display() }

// stubFramebuffer keeps the app running when the panel is absent.
type stubFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func (f *stubFramebuffer) Width() int          { return f.w }
func (f *stubFramebuffer) Height() int         { return f.h }
func (f *stubFramebuffer) Format() PixelFormat { return PixelFormatMonoPage }
func (f *stubFramebuffer) StrideBytes() int    { return f.w }
func (f *stubFramebuffer) Buffer() []byte {
	if f.buf == nil {
		f.buf = make([]byte, monoBufferSize(f.w, f.h))
	}
	return f.buf
}
func (f *stubFramebuffer) Clear()         { clear(f.Buffer()) }
func (f *stubFramebuffer) Present() error { return ErrNotImplemented }
