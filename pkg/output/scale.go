package output

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
)

// Scale resizes img by factor using nearest-neighbour sampling so upscaled
// renders keep hard pixel edges. A factor of 1 returns img unchanged.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("invalid scale factor %v", factor)
	}
	if factor == 1 {
		return img, nil
	}

	bounds := img.Bounds()
	width := max(1, int(math.Round(float64(bounds.Dx())*factor)))
	height := max(1, int(math.Round(float64(bounds.Dy())*factor)))
	return resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor), nil
}
