package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Specular is a perfect mirror tinted by Color
type Specular struct {
	Color core.Color
}

// NewSpecular creates a new mirror material
func NewSpecular(color core.Color) Specular {
	return Specular{Color: color}
}

// Kind implements Material
func (Specular) Kind() Kind { return KindSpecular }

func (Specular) sealed() {}
