package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit            bool                   `json:"hit"`
	Color          string                 `json:"color"` // Shaded pixel color
	MaterialType   string                 `json:"materialType,omitempty"`
	GeometryType   string                 `json:"geometryType,omitempty"`
	PrimitiveIndex int                    `json:"primitiveIndex"`
	Point          [3]float64             `json:"point"`
	Normal         [3]float64             `json:"normal"`
	Distance       float64                `json:"distance"`
	FrontFace      bool                   `json:"frontFace"`
	Properties     map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo extracts detailed material information with type assertions
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case material.Diffuse:
		properties["color"] = m.Color.Hex()
	case material.Specular:
		properties["color"] = m.Color.Hex()
	case material.Refractive:
		properties["color"] = m.Specular.Hex()
		properties["transmission"] = m.Transmission.Hex()
		properties["refractiveIndex"] = m.IOR
	case material.Mixed:
		properties["diffuse"] = m.Diffuse.Hex()
		properties["specular"] = m.Specular.Hex()
		properties["factor"] = m.Factor
		properties["description"] = fmt.Sprintf("%.0f%% diffuse, %.0f%% specular",
			(1-m.Factor)*100, m.Factor*100)
	default:
		return "unknown", properties
	}
	return mat.Kind().String(), properties
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(p geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := p.(type) {
	case *geometry.Sphere:
		properties["center"] = geom.Center.Array()
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = geom.Point.Array()
		properties["normal"] = geom.Normal.Array()
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel traces the primary ray through (pixelX, pixelY) and describes
// the first primitive hit
func (s *Server) inspectPixel(sceneObj *scene.Scene, maxDepth, pixelX, pixelY int) InspectResponse {
	raytracer := renderer.NewRaytracer(sceneObj, renderer.Config{MaxDepth: maxDepth})
	col, hit, isHit := raytracer.TracePixel(pixelX, pixelY)

	if !isHit {
		return InspectResponse{Hit: false, Color: col.Hex(), PrimitiveIndex: -1}
	}

	materialType, materialProps := s.extractMaterialInfo(hit.Material)
	geometryType, geometryProps := s.extractGeometryInfo(sceneObj.GetPrimitives()[hit.Index])

	return InspectResponse{
		Hit:            true,
		Color:          col.Hex(),
		MaterialType:   materialType,
		GeometryType:   geometryType,
		PrimitiveIndex: hit.Index,
		Point:          hit.Point().Array(),
		Normal:         hit.Normal.Array(),
		Distance:       hit.T(),
		FrontFace:      hit.Ray.Direction.Dot(hit.Normal) < 0,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// parseInspectRequest parses scene parameters plus the x and y pixel
func (s *Server) parseInspectRequest(r *http.Request) (*RenderRequest, int, int, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, 0, 0, fmt.Errorf("Invalid scene parameters: %w", err)
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		return nil, 0, 0, errors.New("Invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		return nil, 0, 0, errors.New("Invalid y coordinate")
	}

	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		return nil, 0, 0, errors.New("Pixel coordinates out of bounds")
	}
	return req, pixelX, pixelY, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, pixelX, pixelY, err := s.parseInspectRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.inspectPixel(sceneObj, req.MaxDepth, pixelX, pixelY))
}

// handleInspectImage renders the scene with a marker on the inspected pixel
func (s *Server) handleInspectImage(w http.ResponseWriter, r *http.Request) {
	req, pixelX, pixelY, err := s.parseInspectRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, renderer.Config{MaxDepth: req.MaxDepth})
	raytracer.SetLogger(NewWebLogger("inspect", nil))
	marked := output.MarkPixel(raytracer.Render(), pixelX, pixelY)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if err := output.Encode(w, marked, "png"); err != nil {
		log.Printf("Failed to write inspect image: %v", err)
	}
}
