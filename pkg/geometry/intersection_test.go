package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestIntersection_Reflected(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.WhiteMirror)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	reflected := hit.Reflected()
	if reflected.Origin.Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected reflected ray to start at the hit point, got %v", reflected.Origin)
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if reflected.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, reflected.Direction)
	}
	if !math.IsInf(reflected.T, 1) {
		t.Errorf("Expected reflected ray to be unbounded, got T=%f", reflected.T)
	}

	// The reflected ray must not immediately hit the plane again
	if _, again := plane.Intersect(reflected); again {
		t.Error("Reflected ray hit its own plane")
	}
}

func TestIntersection_Refracted_EnteringSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Glass)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	refracted, ok := hit.Refracted(material.Glass.IOR)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}

	// Normal incidence: direction unchanged, origin biased just inside
	if refracted.Direction.Subtract(ray.Direction).Length() > 1e-9 {
		t.Errorf("Expected unchanged direction, got %v", refracted.Direction)
	}
	expectedOrigin := core.NewVec3(0, 0, 1-core.BiasEpsilon)
	if refracted.Origin.Subtract(expectedOrigin).Length() > 1e-9 {
		t.Errorf("Expected origin %v, got %v", expectedOrigin, refracted.Origin)
	}
}

func TestIntersection_Refracted_ExitingPlane(t *testing.T) {
	// Ray travels from inside the medium (below the plane) up through it
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.Water)
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0.2, 1, 0).Normalize())

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	refracted, ok := hit.Refracted(material.Water.IOR)
	if !ok {
		t.Fatal("Expected refraction")
	}
	if refracted.Origin.Y <= 0 {
		t.Errorf("Expected origin biased above the plane, got %v", refracted.Origin)
	}
	// Leaving the denser medium bends away from the normal
	if math.Abs(refracted.Direction.X) <= math.Abs(ray.Direction.X) {
		t.Errorf("Expected transmitted ray to bend away from the normal, got %v", refracted.Direction)
	}
	if math.Abs(refracted.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected unit direction, got %f", refracted.Direction.Length())
	}
}

func TestIntersection_Refracted_TotalInternalReflection(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.Glass)
	ray := core.NewRay(core.NewVec3(-5, -1, 0), core.NewVec3(5, 1, 0).Normalize())

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if _, ok := hit.Refracted(material.Glass.IOR); ok {
		t.Error("Expected total internal reflection")
	}
}

func TestIntersect_Dispatch(t *testing.T) {
	primitives := []Primitive{
		NewSphere(core.NewVec3(0, 0, -3), 1, material.RedDiffuse),
		NewPlane(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), material.GreyDiffuse),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	expectedT := []float64{2, 10}
	for i, p := range primitives {
		hit, isHit := Intersect(p, ray)
		if !isHit {
			t.Fatalf("Primitive %d: expected hit", i)
		}
		if math.Abs(hit.T()-expectedT[i]) > 1e-9 {
			t.Errorf("Primitive %d: expected t=%f, got %f", i, expectedT[i], hit.T())
		}
		if NormalAt(p, hit.Point()).Subtract(hit.Normal).Length() > 1e-9 {
			t.Errorf("Primitive %d: NormalAt disagrees with hit normal", i)
		}
	}
}

func TestIntersect_NilPrimitivePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil primitive")
		}
	}()
	Intersect(nil, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
}
