package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_ShadowRay(t *testing.T) {
	light := NewDefaultPointLight().MoveTo(core.NewVec3(2, 5, 0))
	point := core.NewVec3(2, 1, 3)

	ray := light.ShadowRay(point)

	if ray.Origin != point {
		t.Errorf("Expected shadow ray to start at %v, got %v", point, ray.Origin)
	}
	expectedDir := core.NewVec3(0, 0.8, -0.6)
	if ray.Direction.Subtract(expectedDir).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expectedDir, ray.Direction)
	}
	if math.Abs(ray.T-5) > 1e-12 {
		t.Errorf("Expected T equal to light distance 5, got %f", ray.T)
	}
	if ray.Point().Subtract(light.Origin).Length() > 1e-12 {
		t.Errorf("Expected ray to end at the light, got %v", ray.Point())
	}
}

func TestNewDefaultPointLight(t *testing.T) {
	light := NewDefaultPointLight()

	if light.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin at zero, got %v", light.Origin)
	}
	if light.Color != core.White {
		t.Errorf("Expected white light, got %v", light.Color)
	}
	if light.Brightness != 1.0 {
		t.Errorf("Expected brightness 1, got %f", light.Brightness)
	}
}
