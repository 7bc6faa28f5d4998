package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates a glass and a water sphere in front of colored
// diffuse spheres so refraction is visible
func NewGlassScene() *Scene {
	s := New()

	camera := geometry.NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0, 1)).
		PointAt(core.NewVec3(0, 0, -1))
	s.SetCamera(camera)

	s.AddObject(geometry.NewSphere(core.NewVec3(-0.4, 0, -1), 0.3, material.Glass))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.4, 0, -1), 0.3, material.Water))
	s.AddObject(geometry.NewSphere(core.NewVec3(-0.5, 0.1, -3), 0.6, material.RedDiffuse))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.6, 0.1, -3), 0.6, material.BlueDiffuse))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -0.3, 0), core.NewVec3(0, 1, 0), material.GreyDiffuse))

	s.AddLight(lights.NewDefaultPointLight().MoveTo(core.NewVec3(2, 5, 0)))

	s.SetBackgroundColor(core.NewColor(0.1, 0.1, 0.1))

	return s
}
