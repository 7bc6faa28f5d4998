package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection describes where a ray struck a primitive. It is a transient
// value: the material is copied and Index refers back into the scene's
// primitive list.
type Intersection struct {
	Normal   core.Vec3         // Surface normal at the hit
	Material material.Material // Material of the hit primitive
	Ray      core.Ray          // Incoming ray truncated to the hit distance
	Index    int               // Position of the primitive in its scene
}

// T returns the hit distance along the ray
func (h Intersection) T() float64 {
	return h.Ray.T
}

// Point returns the hit point: origin + direction·t
func (h Intersection) Point() core.Vec3 {
	return h.Ray.Point()
}

// Reflected returns the mirror-reflected ray leaving the hit point
func (h Intersection) Reflected() core.Ray {
	return core.NewRay(h.Point(), core.Reflect(h.Ray.Direction, h.Normal))
}

// Refracted returns the transmitted ray through a surface with the given index
// of refraction. The origin is pushed BiasEpsilon onto the transmitted side.
// Returns false on total internal reflection.
func (h Intersection) Refracted(ior float64) (core.Ray, bool) {
	dir, working, ok := core.Refract(h.Ray.Direction.Normalize(), h.Normal, ior)
	if !ok {
		return core.Ray{}, false
	}
	origin := h.Point().Subtract(working.Multiply(core.BiasEpsilon))
	return core.NewRay(origin, dir), true
}
