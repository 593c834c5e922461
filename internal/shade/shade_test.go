package shade

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestAdjustKnownValues(t *testing.T) {
	tests := []struct {
		base  string
		level float64
		want  string
	}{
		{"#ff0000", 50, "#ff0000"},
		{"#ff0000", 25, "#800000"},
		{"FF0000", 25, "#800000"},
		{"#ff0000", 100, "#ffffff"},
		{"#ff0000", 0, "#000000"},
		{"#808080", 50, "#808080"},
		{"#808080", 25, "#404040"},
		{"#000000", 75, "#bfbfbf"},
	}
	for _, tt := range tests {
		if got := Adjust(tt.base, tt.level); got != tt.want {
			t.Errorf("Adjust(%q, %v) = %q, want %q", tt.base, tt.level, got, tt.want)
		}
	}
}

func TestAdjustInvalidPassesThrough(t *testing.T) {
	for _, in := range []string{"", "red", "#12345", "#1234567", "#gggggg", "##ff0000", "ff00 00"} {
		for _, level := range []float64{0, 42, 100} {
			if got := Adjust(in, level); got != in {
				t.Errorf("Adjust(%q, %v) = %q, want input unchanged", in, level, got)
			}
		}
	}
}

func TestAdjustAchromaticStaysAchromatic(t *testing.T) {
	for _, base := range []string{"#000000", "#7f7f7f", "#ffffff", "#f0f0f0"} {
		for level := 0.0; level <= 100; level += 5 {
			got := Adjust(base, level)
			if got[1:3] != got[3:5] || got[3:5] != got[5:7] {
				t.Errorf("Adjust(%q, %v) = %q, not gray", base, level, got)
			}
			c, _ := colorful.Hex(got)
			want := uint8(level/100*255 + 0.5)
			if r, _, _ := c.RGB255(); r != want {
				t.Errorf("Adjust(%q, %v) channel = %d, want %d", base, level, r, want)
			}
		}
	}
}

func TestAdjustPreservesHueAndSaturation(t *testing.T) {
	for _, base := range []string{"#3366cc", "#ff8800", "#2e8b57", "#8b4513"} {
		c, _ := colorful.Hex(base)
		h0, s0, _ := c.Hsl()
		for level := 30.0; level <= 70; level += 10 {
			out, err := colorful.Hex(Adjust(base, level))
			if err != nil {
				t.Fatalf("Adjust(%q, %v) not hex: %v", base, level, err)
			}
			h, s, l := out.Hsl()
			if math.Abs(h-h0) > 2 {
				t.Errorf("%s @%v: hue %.2f, want %.2f", base, level, h, h0)
			}
			if math.Abs(s-s0) > 0.03 {
				t.Errorf("%s @%v: saturation %.3f, want %.3f", base, level, s, s0)
			}
			if math.Abs(l-level/100) > 0.01 {
				t.Errorf("%s @%v: lightness %.3f", base, level, l)
			}
		}
	}
}

func TestAdjustDeterministic(t *testing.T) {
	first := Adjust("#a0522d", 37)
	for i := 0; i < 10; i++ {
		if got := Adjust("#a0522d", 37); got != first {
			t.Fatalf("call %d = %q, first = %q", i, got, first)
		}
	}
}

func TestAdjustClampsOutOfRange(t *testing.T) {
	if got, want := Adjust("#3366cc", 150), Adjust("#3366cc", 100); got != want {
		t.Errorf("level 150 = %q, want clamped %q", got, want)
	}
	if got, want := Adjust("#3366cc", -20), Adjust("#3366cc", 0); got != want {
		t.Errorf("level -20 = %q, want clamped %q", got, want)
	}
	if got := Adjust("#3366cc", math.NaN()); got != "#000000" {
		t.Errorf("NaN level = %q, want #000000", got)
	}
}

// An exact .5 channel value follows go-colorful's float rounding rather than an integer
// min/max/delta implementation: G here is 31.5 and comes out as 0x1f.
func TestAdjustRoundingTie(t *testing.T) {
	if got := Adjust("#110f00", 7); got != "#241f00" {
		t.Errorf("Adjust(#110f00, 7) = %q, want #241f00", got)
	}
}
