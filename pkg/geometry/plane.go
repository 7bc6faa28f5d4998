package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelThreshold rejects rays nearly parallel to a plane
const parallelThreshold = 0.001

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: mat,
	}
}

func (p *Plane) primitive() {}

// Intersect tests if a ray intersects with the plane.
// The reported normal is always the plane's own normal, whichever side is hit.
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Grazing or parallel
	if math.Abs(denominator) <= parallelThreshold {
		return Intersection{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= core.HitEpsilon {
		return Intersection{}, false
	}

	return Intersection{
		Normal:   p.Normal,
		Material: p.Material,
		Ray:      ray.WithT(t),
	}, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}
