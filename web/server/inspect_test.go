package server

import (
	"image/png"
	"math"
	"net/http"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/output"
)

func TestHandleInspect_Hit(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/inspect?scene=red-sphere&x=32&y=24")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp InspectResponse
	decodeJSON(t, rec, &resp)

	if !resp.Hit {
		t.Fatal("Expected the center pixel to hit the sphere")
	}
	if resp.GeometryType != "sphere" || resp.MaterialType != "diffuse" {
		t.Errorf("Expected diffuse sphere, got %s %s", resp.MaterialType, resp.GeometryType)
	}
	if resp.PrimitiveIndex != 0 {
		t.Errorf("Expected primitive 0, got %d", resp.PrimitiveIndex)
	}
	if math.Abs(resp.Point[2]+0.5) > 1e-9 || math.Abs(resp.Distance-0.5) > 1e-9 {
		t.Errorf("Expected hit at z=-0.5 distance 0.5, got %v at %f", resp.Point, resp.Distance)
	}
	if !resp.FrontFace {
		t.Error("Expected a front face hit")
	}

	geometry, ok := resp.Properties["geometry"].(map[string]interface{})
	if !ok || geometry["radius"] != 0.5 {
		t.Errorf("Expected sphere radius 0.5 in properties, got %v", resp.Properties["geometry"])
	}
}

func TestHandleInspect_Miss(t *testing.T) {
	rec := get(t, newTestServer(nil), "/api/inspect?scene=red-sphere&x=0&y=0")

	var resp InspectResponse
	decodeJSON(t, rec, &resp)

	if resp.Hit {
		t.Error("Expected the corner pixel to miss")
	}
	if resp.Color != "#000000" {
		t.Errorf("Expected background color, got %s", resp.Color)
	}
	if resp.PrimitiveIndex != -1 {
		t.Errorf("Expected no primitive, got %d", resp.PrimitiveIndex)
	}
}

func TestHandleInspect_DefaultScene(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		materialType string
		geometryType string
	}{
		{"glass sphere", "/api/inspect?scene=default&x=39&y=24", "refractive", "sphere"},
		{"diffuse sphere behind", "/api/inspect?scene=default&x=28&y=24", "diffuse", "sphere"},
		{"floor", "/api/inspect?scene=default&x=5&y=2", "diffuse", "plane"},
	}

	s := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp InspectResponse
			decodeJSON(t, get(t, s, tt.target), &resp)

			if !resp.Hit {
				t.Fatal("Expected a hit")
			}
			if resp.MaterialType != tt.materialType || resp.GeometryType != tt.geometryType {
				t.Errorf("Expected %s %s, got %s %s", tt.materialType, tt.geometryType, resp.MaterialType, resp.GeometryType)
			}
		})
	}
}

func TestHandleInspect_InvalidRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing x", "/api/inspect?y=1"},
		{"non-numeric y", "/api/inspect?x=1&y=up"},
		{"x out of bounds", "/api/inspect?x=64&y=0"},
		{"negative y", "/api/inspect?x=0&y=-1"},
		{"unknown scene", "/api/inspect?scene=nonexistent&x=0&y=0"},
		{"image out of bounds", "/api/inspect/image?x=0&y=48"},
	}

	s := newTestServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(t, s, tt.target); rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleInspectImage(t *testing.T) {
	s := newTestServer(nil)

	rec := get(t, s, "/api/inspect/image?scene=red-sphere&x=10&y=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decoded, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Expected PNG body: %v", err)
	}
	marked := output.FromImage(decoded)

	plain, err := png.Decode(get(t, s, "/api/render?scene=red-sphere").Body)
	if err != nil {
		t.Fatalf("Expected PNG render: %v", err)
	}

	if marked.Width != 64 || marked.Height != 48 {
		t.Fatalf("Expected 64x48, got %dx%d", marked.Width, marked.Height)
	}
	if marked.DiffCount(output.FromImage(plain)) == 0 {
		t.Error("Expected the marker to change the image")
	}
}
