package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a red diffuse sphere behind a red
// glass sphere, both resting on a grey ground plane
func NewDefaultScene() *Scene {
	s := New()

	camera := geometry.NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0, 1)).
		PointAt(core.NewVec3(0, 0, 0))
	s.SetCamera(camera)

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -0.5), 0.25, material.RedDiffuse))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.2, 0, 0.1), 0.25, material.RedGlass))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -0.25, 0), core.NewVec3(0, 1, 0), material.GreyDiffuse))

	s.AddLight(lights.NewDefaultPointLight().MoveTo(core.NewVec3(2, 5, 0)))

	s.SetBackgroundColor(core.Black)

	return s
}

// NewRedSphereScene creates a single red diffuse sphere in front of the
// default camera, lit from above and to the right
func NewRedSphereScene() *Scene {
	s := New()

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.RedDiffuse))
	s.AddLight(lights.NewDefaultPointLight().MoveTo(core.NewVec3(2, 5, 0)))
	s.SetBackgroundColor(core.Black)

	return s
}
