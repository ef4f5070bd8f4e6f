package lcd

// Attr selects how primitives combine with the existing pixels.
//
// The zero value draws (OR). Force also clears pixels where the stipple
// pattern is off, Erase clears, and XOR inverts. Round and Vertical are shape
// modifiers for rectangles.
type Attr uint16

const (
	AttrDraw     Attr = 0
	AttrForce    Attr = 0x02
	AttrErase    Attr = 0x04
	AttrRound    Attr = 0x08
	AttrXOR      Attr = 0x10
	AttrVertical Attr = 0x0800
)

// Pattern is an 8-bit repeating stipple. Bit n is sampled at phase n.
type Pattern uint8

const (
	Solid  Pattern = 0xff
	Dotted Pattern = 0x55
)

// On reports whether the pattern is on at phase i (only i&7 matters).
func (p Pattern) On(i int) bool { return p&(1<<(uint(i)&7)) != 0 }

// rotate shifts the pattern by one phase; fills use it per row/column so
// dotted areas come out as a checkerboard.
func (p Pattern) rotate() Pattern { return p<<1 | p>>7 }

// rotateBy rotates the pattern by n phases.
func (p Pattern) rotateBy(n int) Pattern {
	n &= 7
	return p<<n | p>>(8-n)
}
