package core

import (
	"math"
	"testing"
)

func colorsClose(a, b Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestColor_Mix(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Color
		fact     float64
		expected Color
	}{
		{"all first", Red, Blue, 1.0, Red},
		{"all second", Red, Blue, 0.0, Blue},
		{"ninety percent first", White, Black, 0.9, NewColor(0.9, 0.9, 0.9)},
		{"half", NewColor(1, 0, 0.5), NewColor(0, 1, 0.5), 0.5, NewColor(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Mix(tt.b, tt.fact)
			if !colorsClose(result, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestColor_Clamp(t *testing.T) {
	c := NewColor(-0.5, 0.5, 1.5).Clamp()
	if c != NewColor(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", c)
	}
}

func TestColor_RGBTruncates(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected [3]uint8
	}{
		{"black", Black, [3]uint8{0, 0, 0}},
		{"white", White, [3]uint8{255, 255, 255}},
		// 0.999 * 255 = 254.745, truncation gives 254 where rounding would give 255
		{"truncation not rounding", NewColor(0.999, 0.5, 0.0021), [3]uint8{254, 127, 0}},
		{"out of range is clamped first", NewColor(2, -1, 0.25), [3]uint8{255, 0, 63}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.RGB(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	if hex := Red.Hex(); hex != "#ff0000" {
		t.Errorf("Expected #ff0000, got %s", hex)
	}
	if hex := Grey.Hex(); hex != "#3f3f3f" {
		t.Errorf("Expected #3f3f3f, got %s", hex)
	}
}
