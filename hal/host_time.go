//go:build !tinygo

package hal

import "time"

const tickDur = time.Millisecond

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks elapsed on the wall clock since the previous call. The
// first call emits a single tick.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}
	t.acc += now.Sub(t.last)
	t.last = now
	t.advance(0)
}

// advance adds d of simulated time and emits the whole ticks it completes.
func (t *hostTime) advance(d time.Duration) {
	t.acc += d
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(ticks)
}

// emit sends n ticks. When the channel is full the oldest pending tick is
// dropped so readers always see the latest sequence.
func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
			select {
			case <-t.ch:
			default:
			}
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}
}
