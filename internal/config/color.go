package config

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses "#rgb" or "#rrggbb" (the leading # is optional) into
// normalized RGB.
func ParseColor(s string) ([3]float32, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return [3]float32{}, fmt.Errorf("invalid color %q", s)
	}

	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return [3]float32{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// FormatColor renders normalized RGB as "#rrggbb", clamping out-of-range
// components.
func FormatColor(c [3]float32) string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}
