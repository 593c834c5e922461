package render

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// fallbackColor is drawn for any color string that does not parse.
var fallbackColor = rl.NewColor(128, 128, 128, 255)

// ColorFromHex parses "#rrggbb" (the '#' is optional) into an opaque raylib color.
// Invalid input yields mid gray.
func ColorFromHex(hex string) rl.Color {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}
