package explorer

import "time"

// FrameClock turns frame timestamps into elapsed seconds.
//
// The first call reports zero, so a host that starts its loop at an arbitrary
// wall-clock time does not jump the oscillator forward.
type FrameClock struct {
	last    time.Time
	started bool
}

// Delta returns the seconds elapsed since the previous call.
// Timestamps that go backwards report zero.
func (c *FrameClock) Delta(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
}
