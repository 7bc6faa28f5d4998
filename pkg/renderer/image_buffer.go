package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// ImageBuffer is an 8-bit RGB raster, 3 bytes per pixel in row-major order.
// It implements image.Image so it can be handed to any encoder.
type ImageBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImageBuffer allocates a black image
func NewImageBuffer(width, height int) *ImageBuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid image size %d x %d", width, height))
	}
	return &ImageBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

func (b *ImageBuffer) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		panic(fmt.Sprintf("renderer: pixel %d, %d outside %d x %d image", x, y, b.Width, b.Height))
	}
	return (y*b.Width + x) * 3
}

// Set stores an RGB triple at (x, y)
func (b *ImageBuffer) Set(x, y int, rgb [3]uint8) {
	i := b.offset(x, y)
	copy(b.Pix[i:i+3], rgb[:])
}

// RGBAt returns the RGB triple at (x, y)
func (b *ImageBuffer) RGBAt(x, y int) [3]uint8 {
	i := b.offset(x, y)
	return [3]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// ColorModel implements image.Image
func (b *ImageBuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image
func (b *ImageBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image
func (b *ImageBuffer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	rgb := b.RGBAt(x, y)
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// DiffCount returns the number of pixels whose RGB values differ.
// Images of different sizes differ in every pixel of the larger one.
func (b *ImageBuffer) DiffCount(other *ImageBuffer) int {
	if b.Width != other.Width || b.Height != other.Height {
		return max(b.Width*b.Height, other.Width*other.Height)
	}
	count := 0
	for i := 0; i < len(b.Pix); i += 3 {
		if b.Pix[i] != other.Pix[i] || b.Pix[i+1] != other.Pix[i+1] || b.Pix[i+2] != other.Pix[i+2] {
			count++
		}
	}
	return count
}

// Equal reports whether both images have the same size and pixels
func (b *ImageBuffer) Equal(other *ImageBuffer) bool {
	return b.DiffCount(other) == 0
}
