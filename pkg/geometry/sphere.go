package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) primitive() {}

// Intersect tests if a ray intersects with the sphere.
// Only the nearer root is considered, so rays starting inside the sphere miss it.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients for |O + tD - C|² = r²
	a := ray.Direction.LengthSquared()
	b := -2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := math.FMA(b, b, -4*a*c)
	if discriminant <= 0 {
		return Intersection{}, false
	}

	root := (b - math.Sqrt(discriminant)) / (2 * a)
	if root <= core.HitEpsilon {
		return Intersection{}, false
	}

	hitRay := ray.WithT(root)
	return Intersection{
		Normal:   s.NormalAt(hitRay.Point()),
		Material: s.Material,
		Ray:      hitRay,
	}, true
}

// NormalAt returns the outward normal at point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
