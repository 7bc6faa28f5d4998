package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Primitive is a shape that can be hit by rays. The set is closed: only
// *Sphere and *Plane implement it, and Intersect/NormalAt switch over both.
type Primitive interface {
	primitive()
}

// Intersect tests ray against p and returns the hit record on success
func Intersect(p Primitive, ray core.Ray) (Intersection, bool) {
	switch prim := p.(type) {
	case *Sphere:
		return prim.Intersect(ray)
	case *Plane:
		return prim.Intersect(ray)
	default:
		panic(fmt.Sprintf("geometry: unreachable primitive variant %T", p))
	}
}

// NormalAt returns the surface normal of p at point
func NormalAt(p Primitive, point core.Vec3) core.Vec3 {
	switch prim := p.(type) {
	case *Sphere:
		return prim.NormalAt(point)
	case *Plane:
		return prim.NormalAt(point)
	default:
		panic(fmt.Sprintf("geometry: unreachable primitive variant %T", p))
	}
}
