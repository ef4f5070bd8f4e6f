package lcd

import (
	"math"
	"math/bits"
)

func clipSpan(a, b, limit int) (int, int) {
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

// visible returns the offsets [i0, i1) of the run [c, c+n) that fall inside
// [0, limit). The range is empty when none do.
func visible(c, n, limit int) (int, int) {
	i0, i1 := max(0, -c), min(n, limit-c)
	if i1 < i0 {
		return 0, 0
	}
	return i0, i1
}

// DrawHLine draws w pixels to the right of (x, y) sampling pat at x&7.
func (s *Surface) DrawHLine(x, y, w int, pat Pattern, attr Attr) {
	if w <= 0 || y < 0 || y >= s.h {
		return
	}
	x0, x1 := clipSpan(x, x+w, s.w)
	if x0 >= x1 {
		return
	}
	row := (y / 8) * s.w
	m := byte(1) << (y & 7)
	if pat == Solid {
		for xx := x0; xx < x1; xx++ {
			s.mask(row+xx, m, attr)
		}
		return
	}
	for xx := x0; xx < x1; xx++ {
		s.plot(xx, y, pat.On(xx), attr)
	}
}

func (s *Surface) DrawSolidHLine(x, y, w int, attr Attr) {
	s.DrawHLine(x, y, w, Solid, attr)
}

// DrawVLine draws h pixels below (x, y) sampling pat at y&7. Solid lines are
// written a band at a time.
func (s *Surface) DrawVLine(x, y, h int, pat Pattern, attr Attr) {
	if h <= 0 || x < 0 || x >= s.w {
		return
	}
	y0, y1 := clipSpan(y, y+h, s.h)
	if y0 >= y1 {
		return
	}
	if pat == Solid {
		s.fillColumn(x, y0, y1, attr)
		return
	}
	for yy := y0; yy < y1; yy++ {
		s.plot(x, yy, pat.On(yy), attr)
	}
}

func (s *Surface) DrawSolidVLine(x, y, h int, attr Attr) {
	s.DrawVLine(x, y, h, Solid, attr)
}

// fillColumn applies attr to rows [y0, y1) of column x, one byte per band.
// The range must already be clipped.
func (s *Surface) fillColumn(x, y0, y1 int, attr Attr) {
	for y := y0; y < y1; {
		band := y / 8
		end := (band + 1) * 8
		if end > y1 {
			end = y1
		}
		n := end - y
		m := byte(0xff)
		if n < 8 {
			m = byte((1<<n)-1) << (y & 7)
		}
		s.mask(band*s.w+x, m, attr)
		y = end
	}
}

// DrawLine draws from (x1, y1) to (x2, y2) inclusive with Bresenham stepping.
// The pattern advances one phase per step so dashes keep their length on any
// slope. The walk starts at the first step that lands on the surface, so the
// cost is bounded by the visible part of the line.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, pat Pattern, attr Attr) {
	ax, ay, bx, by := int64(x1), int64(y1), int64(x2), int64(y2)
	if !inCoordRange(ax) || !inCoordRange(ay) || !inCoordRange(bx) || !inCoordRange(by) {
		return
	}
	dx, dy := abs64(bx-ax), abs64(by-ay)
	sx, sy := int64(1), int64(1)
	if bx < ax {
		sx = -1
	}
	if by < ay {
		sy = -1
	}

	first, last, ok := s.lineSteps(ax, ay, sx, sy, dx, dy)
	if !ok {
		return
	}

	// Bresenham state at step first.
	x, y, e := lineState(ax, ay, sx, sy, dx, dy, first)
	for step := first; ; step++ {
		s.plot(int(x), int(y), pat.On(int(step&7)), attr)
		if step == last {
			return
		}
		e2 := 2 * e
		if e2 >= -dy {
			e -= dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// maxCoord bounds line endpoints so the step arithmetic cannot overflow.
const maxCoord = 1 << 59

func inCoordRange(v int64) bool { return v > -maxCoord && v < maxCoord }

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Along the line the major axis moves once per step. After k steps the minor
// axis has moved floor((2k*minor + major) / (2*major)) times.
func minorSteps(k, major, minor int64) int64 {
	hi, lo := bits.Mul64(uint64(2*k), uint64(minor))
	lo, c := bits.Add64(lo, uint64(major), 0)
	q, _ := bits.Div64(hi+c, lo, uint64(2*major))
	return int64(q)
}

// ceilMulDiv returns ceil(a*b/c) for non-negative a, b and positive c, or
// ok=false when the result does not fit.
func ceilMulDiv(a, b, c int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		return 0, false
	}
	q, r := bits.Div64(hi, lo, uint64(c))
	if r != 0 {
		q++
	}
	if q > math.MaxInt64 {
		return 0, false
	}
	return int64(q), true
}

// axisSteps returns the steps k for which c + dir*k lies in [0, limit).
func axisSteps(c, dir int64, limit int) (int64, int64) {
	if dir > 0 {
		return -c, int64(limit) - 1 - c
	}
	return c - int64(limit) + 1, c
}

// lineSteps returns the first and last step of the walk that fall inside the
// surface on both axes.
func (s *Surface) lineSteps(ax, ay, sx, sy, dx, dy int64) (first, last int64, ok bool) {
	major, minor := dx, dy
	maC, maDir, maLimit := ax, sx, s.w
	miC, miDir, miLimit := ay, sy, s.h
	if dy > dx {
		major, minor = dy, dx
		maC, maDir, maLimit = ay, sy, s.h
		miC, miDir, miLimit = ax, sx, s.w
	}

	first, last = axisSteps(maC, maDir, maLimit)
	first, last = max(first, 0), min(last, major)

	tlo, thi := axisSteps(miC, miDir, miLimit)
	tlo, thi = max(tlo, 0), min(thi, minor)
	if tlo > thi {
		return 0, 0, false
	}
	if minor > 0 {
		// First step with at least tlo minor moves, last with at most thi.
		if tlo > 0 {
			k, fits := ceilMulDiv(2*tlo-1, major, 2*minor)
			if !fits {
				return 0, 0, false
			}
			first = max(first, k)
		}
		if k, fits := ceilMulDiv(2*thi+1, major, 2*minor); fits {
			last = min(last, k-1)
		}
	}
	return first, last, first <= last
}

// lineState returns the position and error term of the walk after k steps.
func lineState(ax, ay, sx, sy, dx, dy, k int64) (x, y, e int64) {
	if k == 0 {
		return ax, ay, dx - dy
	}
	if dx >= dy {
		m := minorSteps(k, dx, dy)
		// Wrapping arithmetic: the true value is small even when the terms are not.
		e = int64(uint64(dx-dy) - uint64(k)*uint64(dy) + uint64(m)*uint64(dx))
		return ax + sx*k, ay + sy*m, e
	}
	n := minorSteps(k, dy, dx)
	e = int64(uint64(dx-dy) + uint64(k)*uint64(dx) - uint64(n)*uint64(dy))
	return ax + sx*n, ay + sy*k, e
}

// DrawRect draws a w x h outline. AttrRound leaves the four corners untouched.
// Each edge pixel is visited once, so AttrXOR outlines are clean.
func (s *Surface) DrawRect(x, y, w, h int, pat Pattern, attr Attr) {
	if w <= 0 || h <= 0 {
		return
	}
	vy, vh := y, h
	if attr&AttrRound != 0 {
		vy, vh = y+1, h-2
	}
	s.DrawVLine(x, vy, vh, pat, attr)
	if w > 1 {
		s.DrawVLine(x+w-1, vy, vh, pat, attr)
	}
	s.DrawHLine(x+1, y, w-2, pat, attr)
	if h > 1 {
		s.DrawHLine(x+1, y+h-1, w-2, pat, attr)
	}
}

// DrawSquare draws a solid w x w outline.
func (s *Surface) DrawSquare(x, y, w int, attr Attr) {
	s.DrawRect(x, y, w, w, Solid, attr)
}

// DrawFilledRect fills a w x h area row by row, or column by column under
// AttrVertical. Non-solid patterns rotate one phase per row (column).
func (s *Surface) DrawFilledRect(x, y, w, h int, pat Pattern, attr Attr) {
	if w <= 0 || h <= 0 {
		return
	}
	round := attr&AttrRound != 0
	if pat == Solid && !round {
		x0, x1 := clipSpan(x, x+w, s.w)
		y0, y1 := clipSpan(y, y+h, s.h)
		if y0 >= y1 {
			return
		}
		for xx := x0; xx < x1; xx++ {
			s.fillColumn(xx, y0, y1, attr)
		}
		return
	}
	if attr&AttrVertical != 0 {
		i0, i1 := visible(x, w, s.w)
		pat = pat.rotateBy(i0)
		for i := i0; i < i1; i++ {
			if round && (i == 0 || i == w-1) {
				s.DrawVLine(x+i, y+1, h-2, pat, attr)
			} else {
				s.DrawVLine(x+i, y, h, pat, attr)
			}
			pat = pat.rotate()
		}
		return
	}
	j0, j1 := visible(y, h, s.h)
	pat = pat.rotateBy(j0)
	for j := j0; j < j1; j++ {
		if round && (j == 0 || j == h-1) {
			s.DrawHLine(x+1, y+j, w-2, pat, attr)
		} else {
			s.DrawHLine(x, y+j, w, pat, attr)
		}
		pat = pat.rotate()
	}
}

// InvertLine XORs the whole band of text line `line`, the usual highlight bar.
// The stipple pattern does not apply.
func (s *Surface) InvertLine(line int) {
	if line < 0 || line >= s.Bands() {
		return
	}
	m := byte(0xff)
	if rows := s.h - line*8; rows < 8 {
		m = byte(1<<rows) - 1
	}
	row := line * s.w
	for x := 0; x < s.w; x++ {
		s.buf[row+x] ^= m
	}
}

func (s *Surface) InvertLastLine() { s.InvertLine(s.Bands() - 1) }

// DrawVBar draws a 3 pixel wide bar of height l standing on row y, centred on x.
func (s *Surface) DrawVBar(x, y, l int) {
	for dx := -1; dx <= 1; dx++ {
		s.DrawSolidVLine(x+dx, y-l, l, AttrDraw)
	}
}
