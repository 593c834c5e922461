// Package shade derives lightness variants of a base material color.
package shade

import (
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Min and Max bound the accepted shade level (HSL lightness in percent).
const (
	Min = 0
	Max = 100
)

var hexRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Valid reports whether s is a canonical 6-hex-digit color, with or without a leading '#'.
func Valid(s string) bool {
	return hexRe.MatchString(s)
}

// Adjust keeps the hue and saturation of base and replaces its HSL lightness with level/100.
// level is clamped to [Min, Max]. A base that is not a canonical hex color is returned as is.
// The result is always lowercase "#rrggbb".
func Adjust(base string, level float64) string {
	if !Valid(base) {
		return base
	}
	c, err := colorful.Hex("#" + strings.TrimPrefix(strings.ToLower(base), "#"))
	if err != nil {
		return base
	}
	h, s, _ := c.Hsl()
	l := clamp(level) / 100
	// colorful.Hsl takes the s == 0 branch itself (every channel = l), so achromatic input
	// stays achromatic.
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

func clamp(level float64) float64 {
	if math.IsNaN(level) || level < Min {
		return Min
	}
	if level > Max {
		return Max
	}
	return level
}
