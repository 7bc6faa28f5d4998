package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Diffuse is a matte surface lit directly by point lights
type Diffuse struct {
	Color core.Color
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(color core.Color) Diffuse {
	return Diffuse{Color: color}
}

// Kind implements Material
func (Diffuse) Kind() Kind { return KindDiffuse }

func (Diffuse) sealed() {}
