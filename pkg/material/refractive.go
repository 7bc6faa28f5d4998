package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Refractive is a transparent dielectric such as glass or water
type Refractive struct {
	Specular     core.Color // Surface tint
	Transmission core.Color // Carried for completeness, does not attenuate transmitted light
	IOR          float64    // Index of refraction (e.g., 1.5 for glass)
}

// NewRefractive creates a new refractive material
func NewRefractive(specular, transmission core.Color, ior float64) Refractive {
	return Refractive{
		Specular:     specular,
		Transmission: transmission,
		IOR:          ior,
	}
}

// Kind implements Material
func (Refractive) Kind() Kind { return KindRefractive }

func (Refractive) sealed() {}
