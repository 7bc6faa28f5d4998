package core

import "fmt"

// Color is an RGB triple. Components are not clamped until Clamp is called.
type Color struct {
	R, G, B float64
}

// Predefined colors
var (
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
	Black = Color{0, 0, 0}
	Grey  = Color{0.25, 0.25, 0.25}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every component by factor
func (c Color) Multiply(factor float64) Color {
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// Mix blends two colors linearly: c*fact + other*(1-fact)
func (c Color) Mix(other Color, fact float64) Color {
	return Color{
		R: c.R*fact + other.R*(1.0-fact),
		G: c.G*fact + other.G*(1.0-fact),
		B: c.B*fact + other.B*(1.0-fact),
	}
}

// Clamp returns the color with every component clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0.0, min(1.0, c.R)),
		G: max(0.0, min(1.0, c.G)),
		B: max(0.0, min(1.0, c.B)),
	}
}

// RGB converts the color to 8-bit channels.
// Each channel is truncated, not rounded: uint8(clamp01(x) * 255).
func (c Color) RGB() [3]uint8 {
	clamped := c.Clamp()
	return [3]uint8{
		uint8(clamped.R * 255),
		uint8(clamped.G * 255),
		uint8(clamped.B * 255),
	}
}

// Hex returns the color as a #rrggbb string
func (c Color) Hex() string {
	rgb := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// Array returns the components as a fixed-size array
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}
