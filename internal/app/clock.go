package app

import (
	"time"

	"github.com/Faultbox/cube-tweaks/internal/tween"
)

// clock measures frame deltas and a once-per-second FPS figure.
type clock struct {
	last   time.Time
	frames int
	window time.Time
	fps    int
}

func newClock(now time.Time) *clock {
	return &clock{last: now, window: now}
}

// tick returns the lag-smoothed delta since the previous tick.
func (c *clock) tick(now time.Time) time.Duration {
	dt := tween.SmoothLag(now.Sub(c.last))
	c.last = now

	c.frames++
	if elapsed := now.Sub(c.window); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.window = now
	}
	return dt
}
