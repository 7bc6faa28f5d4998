package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Mixed blends a diffuse response with a mirror response
type Mixed struct {
	Diffuse  core.Color
	Specular core.Color
	Factor   float64 // 0.0 = all diffuse, 1.0 = all mirror
}

// NewMixed creates a new mixed material
func NewMixed(diffuse, specular core.Color, factor float64) Mixed {
	// Clamp factor to valid range
	factor = math.Max(0.0, math.Min(factor, 1.0))

	return Mixed{
		Diffuse:  diffuse,
		Specular: specular,
		Factor:   factor,
	}
}

// Kind implements Material
func (Mixed) Kind() Kind { return KindMixed }

func (Mixed) sealed() {}
