// Package clock supplies the tick loop with time: per-frame deltas and a polled
// queue of deferred tasks. Both read from an injectable clock.Clock so tests can
// drive them with a mock.
package clock

import (
	"time"

	clk "github.com/benbjohnson/clock"
)

// FrameClock measures the time between consecutive ticks.
type FrameClock struct {
	source   clk.Clock
	start    time.Time
	last     time.Time
	started  bool
	maxDelta float64
}

// NewFrameClock creates a frame clock. maxDelta caps a single delta in seconds;
// zero disables the cap.
func NewFrameClock(source clk.Clock, maxDelta float64) *FrameClock {
	return &FrameClock{source: source, maxDelta: maxDelta}
}

// Delta returns the seconds elapsed since the previous call. The first call
// starts the clock and returns 0.
func (c *FrameClock) Delta() float64 {
	now := c.source.Now()
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return 0
	}
	delta := now.Sub(c.last).Seconds()
	c.last = now
	if delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta
}

// Elapsed returns the unclamped time since the first Delta call.
func (c *FrameClock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.source.Since(c.start)
}

// Now exposes the underlying clock's current time.
func (c *FrameClock) Now() time.Time {
	return c.source.Now()
}

// Resync makes the next Delta measure from now, dropping any time spent while
// the clock was not being ticked.
func (c *FrameClock) Resync() {
	if c.started {
		c.last = c.source.Now()
	}
}
