package tween

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
// Every easing returns 0 at 0 and exactly 1 at 1.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// OutQuad decelerates to zero velocity (GSAP "power1.out").
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// OutCubic decelerates harder (GSAP "power2.out").
func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// InOutQuad accelerates then decelerates (GSAP "power1.inOut").
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// OutSine follows a quarter sine wave (GSAP "sine.out").
func OutSine(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return math.Sin(t * math.Pi / 2)
}

var easings = map[string]Easing{
	"linear":       Linear,
	"none":         Linear,
	"power1.out":   OutQuad,
	"quad.out":     OutQuad,
	"power2.out":   OutCubic,
	"cubic.out":    OutCubic,
	"power1.inOut": InOutQuad,
	"quad.inOut":   InOutQuad,
	"sine.out":     OutSine,
}

// ByName looks up an easing by its GSAP-style name.
func ByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
