package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultBackgroundColor is used until SetBackgroundColor is called
var DefaultBackgroundColor = core.NewColor(0.1, 0.1, 0.1)

// Scene owns everything needed for rendering. It is assembled once through
// the setter methods and treated as read-only while rendering.
type Scene struct {
	camera     *geometry.Camera
	primitives []geometry.Primitive
	lights     []*lights.PointLight
	background core.Color
}

// New creates an empty scene with the default camera and background
func New() *Scene {
	return &Scene{
		camera:     geometry.NewDefaultCamera(),
		primitives: make([]geometry.Primitive, 0),
		lights:     make([]*lights.PointLight, 0),
		background: DefaultBackgroundColor,
	}
}

// SetCamera replaces the scene camera
func (s *Scene) SetCamera(camera *geometry.Camera) {
	s.camera = camera
}

// SetBackgroundColor sets the color returned for rays that hit nothing
func (s *Scene) SetBackgroundColor(color core.Color) {
	s.background = color
}

// AddObject appends a primitive. Its index is its position in insertion order.
func (s *Scene) AddObject(p geometry.Primitive) int {
	s.primitives = append(s.primitives, p)
	return len(s.primitives) - 1
}

// AddLight appends a light
func (s *Scene) AddLight(light *lights.PointLight) {
	s.lights = append(s.lights, light)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera { return s.camera }

// GetPrimitives returns the primitives in insertion order
func (s *Scene) GetPrimitives() []geometry.Primitive { return s.primitives }

// GetLights returns the lights in insertion order
func (s *Scene) GetLights() []*lights.PointLight { return s.lights }

// GetBackgroundColor returns the background color
func (s *Scene) GetBackgroundColor() core.Color { return s.background }

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int { return len(s.primitives) }

// FindNearestIntersect returns the closest hit along ray across all
// primitives. On an exact tie the earlier primitive wins.
func (s *Scene) FindNearestIntersect(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	hitAnything := false

	for i, p := range s.primitives {
		hit, isHit := geometry.Intersect(p, ray)
		if !isHit {
			continue
		}
		if !hitAnything || hit.T() < closest.T() {
			hit.Index = i
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// IsOccluded reports whether any primitive blocks ray before ray.T.
// Callers set ray.T to the light distance for shadow tests.
func (s *Scene) IsOccluded(ray core.Ray) bool {
	for _, p := range s.primitives {
		if hit, isHit := geometry.Intersect(p, ray); isHit && hit.T() < ray.T {
			return true
		}
	}
	return false
}
