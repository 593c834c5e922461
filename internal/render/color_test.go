package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
	}{
		{"#8b4513", rl.NewColor(0x8b, 0x45, 0x13, 255)},
		{"FFD700", rl.NewColor(0xff, 0xd7, 0x00, 255)},
		{"#fff", rl.NewColor(255, 255, 255, 255)},
		{"walnut", fallbackColor},
		{"", fallbackColor},
	}
	for _, tt := range tests {
		if got := ColorFromHex(tt.in); got != tt.want {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
