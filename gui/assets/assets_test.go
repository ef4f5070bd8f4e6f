package assets

import (
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgelcd/gui/lcd"
)

var arrow = []byte{8, 8, 0x18, 0x3c, 0x7e, 0xff, 0x18, 0x18, 0x18, 0x18}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arrow.bmp":  {Data: arrow},
		"short.bmp":  {Data: arrow[:6]},
		"header.bmp": {Data: arrow[:1]},
		"frames.bmp": {Data: []byte{2, 8, 1, 1, 2, 2, 3, 3}},
		"ragged.bmp": {Data: []byte{2, 8, 1, 1, 2}},
	}
}

func TestLoad(t *testing.T) {
	dst := make([]byte, lcd.BitmapSize(8, 8))
	require.NoError(t, Load(testFS(), "arrow.bmp", dst, 8, 8))
	assert.Equal(t, arrow, dst)

	img := lcd.Bitmap(dst)
	assert.Equal(t, 1, img.Frames())
}

func TestLoadFailures(t *testing.T) {
	sentinel := func() []byte {
		b := make([]byte, 12)
		for i := range b {
			b[i] = 0xaa
		}
		return b
	}

	dst := sentinel()
	err := Load(testFS(), "missing.bmp", dst, 8, 8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, sentinel(), dst)

	err = Load(testFS(), "arrow.bmp", dst[:9], 8, 8)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Equal(t, sentinel(), dst)

	err = Load(testFS(), "arrow.bmp", dst, 4, 8)
	assert.ErrorIs(t, err, ErrCorrupt, "header mismatch")
	assert.Equal(t, sentinel(), dst)

	err = Load(testFS(), "header.bmp", dst, 8, 8)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, sentinel(), dst)

	err = Load(testFS(), "short.bmp", dst, 8, 8)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, make([]byte, 10), dst[:10], "used range is zeroed")
	assert.Equal(t, []byte{0xaa, 0xaa}, dst[10:], "nothing written past the asset")

	assert.ErrorIs(t, Load(testFS(), "arrow.bmp", dst, 0, 8), ErrCorrupt)
}

func TestLoadAll(t *testing.T) {
	img, err := LoadAll(testFS(), "frames.bmp")
	require.NoError(t, err)
	assert.Equal(t, 3, img.Frames())
	assert.Equal(t, []byte{2, 2}, img.Frame(1))

	_, err = LoadAll(testFS(), "ragged.bmp")
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = LoadAll(testFS(), "nope.bmp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPack(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 10))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 9, color.Gray{Y: 0x90})
	img.SetGray(2, 4, color.Gray{Y: 0x40})

	bm, err := Pack(img, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, lcd.BitmapSize(3, 10), len(bm))
	assert.Equal(t, 3, bm.Width())
	assert.Equal(t, 10, bm.Height())
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00}, []byte(bm.Frame(0)))

	s := lcd.New(lcd.Width, lcd.Height)
	s.Blit(0, 0, bm, 0, false, false)
	assert.True(t, s.Pixel(0, 0))
	assert.True(t, s.Pixel(1, 9))
	assert.False(t, s.Pixel(2, 4))
}

func TestPackFrames(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 17))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 8, color.Gray{Y: 0xff})

	bm, err := PackFrames(img, 8, DefaultThreshold)
	require.NoError(t, err)
	require.Equal(t, 2, bm.Frames())
	assert.Equal(t, []byte{0x01, 0x00}, []byte(bm.Frame(0)))
	assert.Equal(t, []byte{0x00, 0x01}, []byte(bm.Frame(1)))

	_, err = Pack(image.NewGray(image.Rect(0, 0, 300, 8)), DefaultThreshold)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = PackFrames(img, 0, DefaultThreshold)
	assert.Error(t, err)
}
