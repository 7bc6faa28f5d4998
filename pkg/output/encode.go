// Package output writes rendered images to disk, HTTP responses and object
// storage, and reads reference images back for comparison.
package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Save encodes img in the format implied by the file extension
// (png, jpg, gif, bmp, tif) and creates the parent directory if needed
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the named format ("png", "jpeg", ...)
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q: %w", format, err)
	}
	return imaging.Encode(w, img, f)
}

// Load decodes an image file into an RGB buffer
func Load(path string) (*renderer.ImageBuffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage copies any image into an RGB buffer, dropping alpha
func FromImage(img image.Image) *renderer.ImageBuffer {
	bounds := img.Bounds()
	buf := renderer.NewImageBuffer(bounds.Dx(), bounds.Dy())

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels
			buf.Set(x, y, [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return buf
}

// Diff returns the number of pixels that differ between two images
func Diff(a, b *renderer.ImageBuffer) int {
	return a.DiffCount(b)
}

// CompareFile loads the reference image at path and diffs it against img
func CompareFile(path string, img *renderer.ImageBuffer) (int, error) {
	reference, err := Load(path)
	if err != nil {
		return 0, err
	}
	return Diff(reference, img), nil
}
