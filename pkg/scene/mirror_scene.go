package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates a mirror sphere in front of a diffuse floor, flanked
// by a red and a blue sphere that show up in the reflection
func NewMirrorScene() *Scene {
	s := New()

	camera := geometry.NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0.1, 0.5)).
		PointAt(core.NewVec3(0, 0, -1.5))
	s.SetCamera(camera)

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5, material.WhiteMirror))
	s.AddObject(geometry.NewSphere(core.NewVec3(-1.1, -0.2, -1.8), 0.3, material.RedDiffuse))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.1, -0.2, -1.8), 0.3, material.BlueDiffuse))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), material.GreyDiffuse))

	s.AddLight(lights.NewDefaultPointLight().MoveTo(core.NewVec3(2, 5, 0)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-3, 4, 1), core.White, 0.5))

	s.SetBackgroundColor(core.NewColor(0.05, 0.05, 0.1))

	return s
}

// NewMixedScene creates a row of satin spheres that combine diffuse
// lighting with a partial mirror response
func NewMixedScene() *Scene {
	s := New()

	camera := geometry.NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0.3, 1)).
		PointAt(core.NewVec3(0, 0, -1))
	s.SetCamera(camera)

	factors := []float64{0.2, 0.5, 0.8}
	for i, factor := range factors {
		x := float64(i-1) * 0.7
		mat := material.NewMixed(core.NewColor(0.2, 0.6, 0.3), core.White, factor)
		s.AddObject(geometry.NewSphere(core.NewVec3(x, 0, -1), 0.3, mat))
	}
	s.AddObject(geometry.NewPlane(core.NewVec3(0, -0.3, 0), core.NewVec3(0, 1, 0), material.GreyDiffuse))

	s.AddLight(lights.NewDefaultPointLight().MoveTo(core.NewVec3(1, 4, 1)))

	s.SetBackgroundColor(core.NewColor(0.2, 0.2, 0.25))

	return s
}
