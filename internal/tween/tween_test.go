package tween

import (
	"math"
	"testing"
	"time"
)

const frame = time.Second / 60

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range easings {
		if got := ease(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	for name, ease := range easings {
		prev := ease(0)
		for i := 1; i <= 100; i++ {
			v := ease(float64(i) / 100)
			if v < prev {
				t.Errorf("%s decreases at t=%.2f: %v < %v", name, float64(i)/100, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestOutQuadIsEaseOut(t *testing.T) {
	// An ease-out curve is ahead of linear in the first half.
	if OutQuad(0.5) <= 0.5 {
		t.Errorf("OutQuad(0.5) = %v, want > 0.5", OutQuad(0.5))
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("power1.out"); !ok {
		t.Error("expected power1.out to be registered")
	}
	if _, ok := ByName("elastic.wobble"); ok {
		t.Error("expected unknown easing lookup to fail")
	}
}

func TestAdvanceSumsToDelta(t *testing.T) {
	tw := New(2*math.Pi, 500*time.Millisecond, OutQuad)

	var sum float64
	ticks := 0
	for {
		step, done := tw.Advance(20 * time.Millisecond)
		sum += step
		ticks++
		if done {
			break
		}
		if ticks > 1000 {
			t.Fatal("tween never finished")
		}
	}

	if math.Abs(sum-2*math.Pi) > 1e-9 {
		t.Errorf("sum of steps = %v, want 2π", sum)
	}
	if ticks != 25 {
		t.Errorf("expected 25 ticks of 20ms for 500ms, got %d", ticks)
	}

	// Further ticks contribute nothing.
	if step, done := tw.Advance(frame); step != 0 || !done {
		t.Errorf("finished tween returned step %v done %v", step, done)
	}
}

func TestAdvanceMidwayStrictlyInside(t *testing.T) {
	tw := New(2*math.Pi, time.Second, OutQuad)

	var offset float64
	prev := 0.0
	for i := 0; i < 30; i++ {
		step, done := tw.Advance(frame)
		if done {
			t.Fatalf("tween finished early at tick %d", i)
		}
		if step <= 0 {
			t.Fatalf("tick %d returned non-positive step %v", i, step)
		}
		offset += step
		if offset <= prev {
			t.Fatalf("offset not monotonic at tick %d", i)
		}
		prev = offset
	}

	if offset <= 0 || offset >= 2*math.Pi {
		t.Errorf("midway offset %v not strictly inside (0, 2π)", offset)
	}
	if math.Abs(offset-tw.Value()) > 1e-12 {
		t.Errorf("accumulated steps %v disagree with Value %v", offset, tw.Value())
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	tw := New(3, 0, nil)

	step, done := tw.Advance(0)
	if step != 3 || !done {
		t.Errorf("got step %v done %v, want 3 true", step, done)
	}
	if step, _ := tw.Advance(frame); step != 0 {
		t.Errorf("second advance returned %v, want 0", step)
	}
}

func TestProgressClamps(t *testing.T) {
	tw := New(1, 100*time.Millisecond, Linear)
	tw.Advance(time.Second)

	if tw.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", tw.Progress())
	}
	if !tw.Done() {
		t.Error("expected Done after overshooting duration")
	}
	if tw.Value() != tw.Delta() {
		t.Errorf("Value = %v, want Delta %v", tw.Value(), tw.Delta())
	}
}

func TestSmoothLag(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{16 * time.Millisecond, 16 * time.Millisecond},
		{LagThreshold, LagThreshold},
		{2 * time.Second, LagStep},
		{-time.Millisecond, 0},
	}
	for _, tt := range tests {
		if got := SmoothLag(tt.in); got != tt.want {
			t.Errorf("SmoothLag(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
