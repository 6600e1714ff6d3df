package controls

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float control with optional range and step.
type Number struct {
	label    string
	get      func() float64
	set      func(float64)
	min, max float64
	hasMin   bool
	hasMax   bool
	step     float64
	onChange func(float64)
	onFinish func(float64)
	dirty    bool
}

func (n *Number) Kind() Kind { return KindNumber }
func (n *Number) Label() string { return n.label }

// Name sets the display label.
func (n *Number) Name(label string) *Number {
	n.label = label
	return n
}

// Min sets the lower bound.
func (n *Number) Min(v float64) *Number {
	n.min, n.hasMin = v, true
	return n
}

// Max sets the upper bound.
func (n *Number) Max(v float64) *Number {
	n.max, n.hasMax = v, true
	return n
}

// Step sets the value granularity. Zero disables snapping.
func (n *Number) Step(v float64) *Number {
	n.step = math.Abs(v)
	return n
}

// OnChange registers the callback run on every edit.
func (n *Number) OnChange(fn func(float64)) *Number {
	n.onChange = fn
	return n
}

// OnFinishChange registers the callback run once an edit settles.
func (n *Number) OnFinishChange(fn func(float64)) *Number {
	n.onFinish = fn
	return n
}

// Range returns the declared bounds. Unset bounds are infinite.
func (n *Number) Range() (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if n.hasMin {
		lo = n.min
	}
	if n.hasMax {
		hi = n.max
	}
	return lo, hi
}

// Value reads the bound value.
func (n *Number) Value() float64 {
	return n.get()
}

// Set snaps v to the step, clamps it, writes it and fires OnChange.
// It returns the value actually written.
func (n *Number) Set(v float64) float64 {
	v = n.normalize(v)
	n.set(v)
	n.dirty = true
	if n.onChange != nil {
		n.onChange(v)
	}
	return v
}

// Commit fires OnFinishChange if the value was edited since the last commit.
func (n *Number) Commit() {
	if !n.dirty {
		return
	}
	n.dirty = false
	if n.onFinish != nil {
		n.onFinish(n.get())
	}
}

func (n *Number) normalize(v float64) float64 {
	if math.IsNaN(v) {
		v = n.get()
	}
	if n.step > 0 {
		base := 0.0
		if n.hasMin {
			base = n.min
		}
		v = base + math.Round((v-base)/n.step)*n.step
		v = roundTo(v, decimals(n.step))
	}
	if n.hasMin && v < n.min {
		v = n.min
	}
	if n.hasMax && v > n.max {
		v = n.max
	}
	return v
}

// Format returns a printf format showing as many decimals as the step has.
func (n *Number) Format() string {
	if n.step <= 0 {
		return "%.3f"
	}
	return fmt.Sprintf("%%.%df", decimals(n.step))
}

// decimals counts the fractional digits of step, e.g. 0.1 -> 1, 0.25 -> 2.
func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Int is an integer control.
type Int struct {
	label    string
	get      func() int
	set      func(int)
	min, max int
	hasMin   bool
	hasMax   bool
	step     int
	onChange func(int)
	onFinish func(int)
	dirty    bool
}

func (i *Int) Kind() Kind { return KindInt }
func (i *Int) Label() string { return i.label }

// Name sets the display label.
func (i *Int) Name(label string) *Int {
	i.label = label
	return i
}

// Min sets the lower bound.
func (i *Int) Min(v int) *Int {
	i.min, i.hasMin = v, true
	return i
}

// Max sets the upper bound.
func (i *Int) Max(v int) *Int {
	i.max, i.hasMax = v, true
	return i
}

// Step sets the value granularity.
func (i *Int) Step(v int) *Int {
	if v < 0 {
		v = -v
	}
	if v == 0 {
		v = 1
	}
	i.step = v
	return i
}

// OnChange registers the callback run on every edit.
func (i *Int) OnChange(fn func(int)) *Int {
	i.onChange = fn
	return i
}

// OnFinishChange registers the callback run once an edit settles.
func (i *Int) OnFinishChange(fn func(int)) *Int {
	i.onFinish = fn
	return i
}

// Range returns the declared bounds. Unset bounds are the int extremes.
func (i *Int) Range() (lo, hi int) {
	lo, hi = math.MinInt, math.MaxInt
	if i.hasMin {
		lo = i.min
	}
	if i.hasMax {
		hi = i.max
	}
	return lo, hi
}

// Value reads the bound value.
func (i *Int) Value() int {
	return i.get()
}

// Set snaps v to the step, clamps it, writes it and fires OnChange.
func (i *Int) Set(v int) int {
	if i.step > 1 {
		base := 0
		if i.hasMin {
			base = i.min
		}
		off := v - base
		r := off % i.step
		if r < 0 {
			r += i.step
		}
		off -= r
		if 2*r >= i.step {
			off += i.step
		}
		v = base + off
	}
	if i.hasMin && v < i.min {
		v = i.min
	}
	if i.hasMax && v > i.max {
		v = i.max
	}
	i.set(v)
	i.dirty = true
	if i.onChange != nil {
		i.onChange(v)
	}
	return v
}

// Commit fires OnFinishChange if the value was edited since the last commit.
func (i *Int) Commit() {
	if !i.dirty {
		return
	}
	i.dirty = false
	if i.onFinish != nil {
		i.onFinish(i.get())
	}
}
