//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner after this many frames; 0 runs until ctx ends.
	Ticks uint64
	// Dump, when set, receives the last presented frame as text on exit.
	Dump io.Writer
}

// RunHeadless runs the app without opening a window. Each frame advances the
// tick stream by exactly one frame period, so runs are reproducible.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New().(*hostHAL)
	step := newApp(h)
	err := runFrames(ctx, h, step, d, cfg.Ticks)
	if cfg.Dump != nil {
		if derr := DumpFramebuffer(cfg.Dump, h.fb); derr != nil && err == nil {
			err = derr
		}
	}
	return err
}

func runFrames(ctx context.Context, h *hostHAL, step func() error, d time.Duration, frames uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(d)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if frames > 0 && tick >= frames {
				return nil
			}
		}
	}
}
