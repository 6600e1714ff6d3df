// Package tween drives eased scalar animations one frame tick at a time.
//
// A Tween never owns the value it animates. Each Advance hands back the
// increment to add for that tick, so several contributions (a tween plus a
// constant per-frame spin, say) can be summed into the same accumulator.
package tween

import "time"

// Tween interpolates an offset from 0 to Delta over Duration.
type Tween struct {
	delta    float64
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	applied  float64 // Offset already handed out through Advance
}

// New creates a tween covering delta over duration. A nil ease means Linear.
// A non-positive duration completes on the first Advance.
func New(delta float64, duration time.Duration, ease Easing) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		delta:    delta,
		duration: duration,
		ease:     ease,
	}
}

// Advance moves the tween forward by dt and returns the increment to apply
// this tick plus whether the tween has finished. The increments of a
// completed tween sum to Delta.
func (t *Tween) Advance(dt time.Duration) (step float64, done bool) {
	if t.Done() && t.applied == t.delta {
		return 0, true
	}

	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed > t.duration || t.duration <= 0 {
		t.elapsed = t.duration
	}

	offset := t.Value()
	step = offset - t.applied
	t.applied = offset

	return step, t.Done()
}

// Progress returns linear progress in [0, 1].
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Value returns the eased offset at the current progress.
func (t *Tween) Value() float64 {
	p := t.Progress()
	if p >= 1 {
		return t.delta
	}
	return t.delta * t.ease(p)
}

// Done reports whether the full duration has elapsed.
func (t *Tween) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}

// Delta returns the total offset the tween covers.
func (t *Tween) Delta() float64 {
	return t.delta
}

// Lag smoothing thresholds: a frame gap longer than LagThreshold is treated
// as LagStep so a stalled window does not finish animations in one jump.
const (
	LagThreshold = 500 * time.Millisecond
	LagStep      = 33 * time.Millisecond
)

// SmoothLag clamps a frame delta to LagStep when it exceeds LagThreshold.
func SmoothLag(dt time.Duration) time.Duration {
	if dt > LagThreshold {
		return LagStep
	}
	if dt < 0 {
		return 0
	}
	return dt
}
