package hal

// monoBufferSize is the byte size of a page-packed width x height buffer.
func monoBufferSize(width, height int) int {
	return width * ((height + 7) / 8)
}

// monoPixel reads pixel (x, y) of a page-packed buffer.
func monoPixel(buf []byte, width, x, y int) bool {
	i := (y/8)*width + x
	if x < 0 || y < 0 || x >= width || i >= len(buf) {
		return false
	}
	return buf[i]&(1<<(y&7)) != 0
}

// Reflective LCD look: lit pixels are dark ink on a grey-green panel.
var (
	panelRGB = [3]byte{0xb8, 0xc4, 0xa0}
	inkRGB   = [3]byte{0x1c, 0x24, 0x1c}
)

// expandMono converts a page-packed buffer into RGBA pixels.
func expandMono(dst, src []byte, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := panelRGB
			if monoPixel(src, width, x, y) {
				c = inkRGB
			}
			j := (y*width + x) * 4
			if j+3 >= len(dst) {
				return
			}
			dst[j+0] = c[0]
			dst[j+1] = c[1]
			dst[j+2] = c[2]
			dst[j+3] = 0xFF
		}
	}
}
