//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Half-block cells: two display rows per text row.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// DumpFramebuffer writes the last presented frame of fb to w as block
// characters. When w is a terminal narrower than the panel the right side is
// cut at the terminal width.
func DumpFramebuffer(w io.Writer, fb Framebuffer) error {
	width, height := fb.Width(), fb.Height()
	buf := make([]byte, monoBufferSize(width, height))
	if hf, ok := fb.(*hostFramebuffer); ok {
		hf.snapshot(buf)
	} else {
		copy(buf, fb.Buffer())
	}

	cols := width
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 && tw < cols {
			cols = tw
		}
	}
	return dumpMono(w, buf, width, height, cols)
}

func dumpMono(w io.Writer, buf []byte, width, height, cols int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < height; y += 2 {
		for x := 0; x < cols && x < width; x++ {
			i := 0
			if monoPixel(buf, width, x, y) {
				i |= 1
			}
			if y+1 < height && monoPixel(buf, width, x, y+1) {
				i |= 2
			}
			bw.WriteString(halfBlocks[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
