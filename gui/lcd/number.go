package lcd

const maxDigits = 16

const hexDigits = "0123456789ABCDEF"

// FormatNumber appends the glyph sequence for v under f to dst.
//
//	v      mode      len  result
//	0      Leading0  3    000
//	-5     Leading0  3    -005
//	5      Prec1     0    0.5
//	-5     Prec2     0    -0.05
//	1234   Prec2     0    12.34
//	5      Prec1     4    000.5
//	42     Plain     5    42
func FormatNumber(dst []byte, v int32, f NumberFormat) []byte {
	neg := v < 0
	mag := uint32(v)
	if neg {
		mag = uint32(-int64(v))
	}

	var digits [maxDigits]byte // least significant first
	n := 0
	for {
		digits[n] = '0' + byte(mag%10)
		n++
		mag /= 10
		if mag == 0 {
			break
		}
	}

	prec := f.Mode.Precision()
	want := prec + 1
	if f.Mode != Plain && f.Len > want {
		want = f.Len
	}
	if want > maxDigits {
		want = maxDigits
	}
	for n < want {
		digits[n] = '0'
		n++
	}

	if neg {
		dst = append(dst, '-')
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, digits[i])
		if prec > 0 && i == prec {
			dst = append(dst, '.')
		}
	}
	return dst
}

// FormatHex appends v in upper-case hexadecimal using exactly digits digits
// (minimal when digits <= 0, at most 8).
func FormatHex(dst []byte, v uint32, digits int) []byte {
	if digits <= 0 {
		digits = 1
		for x := v >> 4; x != 0; x >>= 4 {
			digits++
		}
	}
	if digits > 8 {
		digits = 8
	}
	for i := digits - 1; i >= 0; i-- {
		dst = append(dst, hexDigits[(v>>(4*uint(i)))&0xf])
	}
	return dst
}

// DrawNumber draws v formatted by f. Alignment and styling come from style,
// exactly as for text, and the returned extent chains the same way.
func (r *Renderer) DrawNumber(x, y int, v int32, style Style, f NumberFormat) Extent {
	var buf [maxDigits + 2]byte
	return r.DrawText(x, y, string(FormatNumber(buf[:0], v, f)), style)
}

// Draw8bitsNumber draws a signed byte in the standard style.
func (r *Renderer) Draw8bitsNumber(x, y int, v int8) Extent {
	return r.DrawNumber(x, y, int32(v), Left, NumberFormat{})
}

// DrawHexNumber draws v in hexadecimal with a fixed digit count.
func (r *Renderer) DrawHexNumber(x, y int, v uint32, style Style, digits int) Extent {
	var buf [8]byte
	return r.DrawText(x, y, string(FormatHex(buf[:0], v, digits)), style)
}

// DrawHexChar draws a byte as two hexadecimal digits.
func (r *Renderer) DrawHexChar(x, y int, v uint8, style Style) Extent {
	return r.DrawHexNumber(x, y, uint32(v), style, 2)
}
