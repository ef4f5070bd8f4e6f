// Package blink derives the display blink phases from the HAL tick stream.
package blink

import "edgelcd/hal"

// Bits of the 10 ms counter that drive each phase.
const (
	fastBit   = 1 << 4
	normalBit = 1 << 6
	slowBit   = 1 << 7
)

// Timer counts 10 ms periods from a 1 ms tick stream. It only advances when
// its owner calls Update; renderers sample it through BlinkOn.
type Timer struct {
	ht hal.Time

	now  uint64 // last tick sequence seen
	base uint64
	ok   bool
}

func New(ht hal.Time) *Timer {
	return &Timer{ht: ht}
}

// Update drains pending ticks without blocking.
func (t *Timer) Update() {
	if t.ht == nil {
		return
	}
	ch := t.ht.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			if !t.ok {
				t.base, t.ok = seq, true
			}
			t.now = seq
		default:
			return
		}
	}
}

// Count10ms is the number of 10 ms periods since the first tick.
func (t *Timer) Count10ms() uint64 {
	if !t.ok {
		return 0
	}
	return (t.now - t.base) / 10
}

// BlinkOn is the normal phase, 1.28 s per cycle.
func (t *Timer) BlinkOn() bool { return t.Count10ms()&normalBit != 0 }

// SlowOn is the slow phase, 2.56 s per cycle.
func (t *Timer) SlowOn() bool { return t.Count10ms()&slowBit != 0 }

// FastOn is the fast phase, 0.32 s per cycle.
func (t *Timer) FastOn() bool { return t.Count10ms()&fastBit != 0 }

// Seconds is the elapsed time in whole seconds.
func (t *Timer) Seconds() uint64 { return t.Count10ms() / 100 }
