package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"unit x", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"scaled z", NewVec3(0, 0, -5), NewVec3(0, 0, -1)},
		{"diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"zero vector stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	result := x.Cross(y)
	if result != NewVec3(0, 0, 1) {
		t.Errorf("Expected x × y = z, got %v", result)
	}

	parallel := NewVec3(0, 0, -1).Cross(NewVec3(0, 0, 1))
	if parallel.Length() != 0 {
		t.Errorf("Expected parallel vectors to have zero cross product, got %v", parallel)
	}
}

func TestRay_AtAndPoint(t *testing.T) {
	ray := NewRayWithT(NewVec3(1, 2, 3), NewVec3(0, 0, -1), 2)

	if p := ray.At(1); p != NewVec3(1, 2, 2) {
		t.Errorf("Expected At(1) = (1,2,2), got %v", p)
	}
	if p := ray.Point(); p != NewVec3(1, 2, 1) {
		t.Errorf("Expected Point() = (1,2,1), got %v", p)
	}

	truncated := ray.WithT(0.5)
	if truncated.T != 0.5 || ray.T != 2 {
		t.Errorf("WithT should copy: got truncated.T=%f original.T=%f", truncated.T, ray.T)
	}
}

func TestNewRay_Unbounded(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	if !math.IsInf(ray.T, 1) {
		t.Errorf("Expected unbounded ray to have T=+Inf, got %f", ray.T)
	}
}
