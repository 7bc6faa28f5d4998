package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light at Origin
type PointLight struct {
	Origin     core.Vec3
	Color      core.Color
	Brightness float64 // Carried with the light; shading does not scale by it
}

// NewPointLight creates a new point light
func NewPointLight(origin core.Vec3, color core.Color, brightness float64) *PointLight {
	return &PointLight{
		Origin:     origin,
		Color:      color,
		Brightness: brightness,
	}
}

// NewDefaultPointLight returns a white light of brightness 1 at the world origin
func NewDefaultPointLight() *PointLight {
	return NewPointLight(core.NewVec3(0, 0, 0), core.White, 1.0)
}

// MoveTo places the light at p
func (l *PointLight) MoveTo(p core.Vec3) *PointLight {
	l.Origin = p
	return l
}

// ShadowRay returns the ray from point toward the light. Its T is the
// distance to the light, so occluders beyond the light are ignored.
func (l *PointLight) ShadowRay(point core.Vec3) core.Ray {
	toLight := l.Origin.Subtract(point)
	return core.NewRayWithT(point, toLight.Normalize(), toLight.Length())
}
