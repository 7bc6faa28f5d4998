package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_GenerateRay_Mapping(t *testing.T) {
	camera := NewDefaultCamera().SetResolution(640, 480)
	ratio := 480.0 / 640.0

	tests := []struct {
		name   string
		px, py int
		target core.Vec3
	}{
		{"center pixel", 320, 240, core.NewVec3(0, 0, -1)},
		{"first pixel", 0, 0, core.NewVec3(-1, -ratio, -1)},
		{"last column first row", 639, 0, core.NewVec3(2*(639.0/640.0)-1, -ratio, -1)},
		{"last pixel", 639, 479, core.NewVec3(2*(639.0/640.0)-1, (2*(479.0/480.0)-1)*ratio, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GenerateRay(tt.px, tt.py)

			expected := tt.target.Normalize()
			if ray.Direction.Subtract(expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
			if ray.Origin != camera.Origin() {
				t.Errorf("Expected ray to start at camera origin, got %v", ray.Origin)
			}
			if !math.IsInf(ray.T, 1) {
				t.Errorf("Expected unbounded ray, got T=%f", ray.T)
			}
		})
	}
}

func TestCamera_GenerateRay_OnlyYScaledByAspect(t *testing.T) {
	// In a wide image the horizontal extent stays [-1, 1] and the vertical shrinks
	camera := NewDefaultCamera().SetResolution(200, 100)

	left := camera.GenerateRay(0, 50)
	bottom := camera.GenerateRay(100, 0)

	// Unnormalized targets are (-1, 0, -1) and (0, -0.5, -1)
	if math.Abs(left.Direction.X/left.Direction.Z-1) > 1e-12 {
		t.Errorf("Expected x/z = 1 at left edge, got %f", left.Direction.X/left.Direction.Z)
	}
	if math.Abs(bottom.Direction.Y/bottom.Direction.Z-0.5) > 1e-12 {
		t.Errorf("Expected y/z = 0.5 at bottom edge, got %f", bottom.Direction.Y/bottom.Direction.Z)
	}
}

func TestCamera_GenerateRay_OutOfRangePanics(t *testing.T) {
	camera := NewDefaultCamera().SetResolution(4, 3)

	tests := []struct {
		name   string
		px, py int
	}{
		{"x equals width", 4, 0},
		{"y equals height", 0, 3},
		{"both past the end", 10, 10},
		{"negative x", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for pixel (%d, %d)", tt.px, tt.py)
				}
			}()
			camera.GenerateRay(tt.px, tt.py)
		})
	}
}

func TestCamera_SetResolution_InvalidPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for zero width")
		}
	}()
	NewDefaultCamera().SetResolution(0, 10)
}

func TestCamera_PointAt(t *testing.T) {
	camera := NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0, 1)).PointAt(core.NewVec3(0, 0, 0))

	expected := core.NewVec3(0, 0, -1)
	if camera.View().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected view %v, got %v", expected, camera.View())
	}
	if camera.Origin() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected origin (0,0,1), got %v", camera.Origin())
	}
}

func TestCamera_SetOrigin_KeepsPreviousTarget(t *testing.T) {
	camera := NewDefaultCamera()

	// Previous target is origin + view = (0, 0, -1)
	camera.SetOrigin(core.NewVec3(1, 0, -1))

	expected := core.NewVec3(-1, 0, 0)
	if camera.View().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected view %v, got %v", expected, camera.View())
	}
}

func TestCamera_Orbit(t *testing.T) {
	camera := NewDefaultCamera()
	camera.SetOrigin(core.NewVec3(0, 0, 1)).PointAt(core.NewVec3(0, 0, 0))

	camera.Orbit(90, 1)

	expectedOrigin := core.NewVec3(1, 0, 0)
	if camera.Origin().Subtract(expectedOrigin).Length() > 1e-9 {
		t.Errorf("Expected origin %v, got %v", expectedOrigin, camera.Origin())
	}
	expectedView := core.NewVec3(-1, 0, 0)
	if camera.View().Subtract(expectedView).Length() > 1e-9 {
		t.Errorf("Expected view %v, got %v", expectedView, camera.View())
	}
	if camera.Width() != 640 || camera.Height() != 480 {
		t.Errorf("Expected orbit to keep resolution, got %d x %d", camera.Width(), camera.Height())
	}
}
