package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	minSize     = 1
	maxSize     = 2000
	maxDepthMax = 256
	maxOrbit    = 360.0
	minPivot    = 0.01
	maxPivot    = 100.0
)

// Server handles web requests for the raytracer. Every request builds its
// own scene, so renders never share state.
type Server struct {
	port     int
	defaults config.Config
	uploader *output.S3Uploader // nil when uploads are not configured
	renders  atomic.Int64
}

// NewServer creates a new web server. uploader may be nil.
func NewServer(cfg config.Config, uploader *output.S3Uploader) *Server {
	return &Server{
		port:     cfg.Port,
		defaults: cfg,
		uploader: uploader,
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Scene name (e.g., "mirror")
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	MaxDepth int     `json:"maxDepth"` // Maximum reflection/refraction depth
	Orbit    float64 `json:"orbit"`    // Camera orbit in degrees
	Pivot    float64 `json:"pivot"`    // Orbit distance ahead of the camera
	Upload   bool    `json:"upload"`   // Store the result in S3
	Format   string  `json:"format"`   // "png" or "json"
}

// RenderResponse is returned by /api/render?format=json
type RenderResponse struct {
	RenderID  string           `json:"renderId"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	UploadKey string           `json:"uploadKey,omitempty"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels        int   `json:"totalPixels"`
	PrimaryHits        int   `json:"primaryHits"`
	PrimaryMisses      int   `json:"primaryMisses"`
	ShadowRays         int   `json:"shadowRays"`
	OccludedShadowRays int   `json:"occludedShadowRays"`
	DepthCutoffs       int   `json:"depthCutoffs"`
	ElapsedMs          int64 `json:"elapsedMs"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/inspect/image", s.handleInspectImage)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uploads": s.uploader != nil,
	})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a scene and returns it as PNG, or as JSON with
// statistics and the render log when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Upload && s.uploader == nil {
		writeError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	renderID := s.nextRenderID()
	consoleChan := make(chan ConsoleMessage, 16)
	raytracer := renderer.NewRaytracer(sceneObj, renderer.Config{MaxDepth: req.MaxDepth})
	raytracer.SetLogger(NewWebLogger(renderID, consoleChan))

	img, stats := raytracer.RenderPass()

	var encoded bytes.Buffer
	if err := output.Encode(&encoded, img, "png"); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	var uploadKey string
	if req.Upload {
		uploadKey = path.Join("renders", req.Scene, renderID+".png")
		if err := s.uploader.Upload(r.Context(), uploadKey, encoded.Bytes(), "image/png"); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
	}

	if req.Format == "json" {
		writeJSON(w, http.StatusOK, RenderResponse{
			RenderID:  renderID,
			ImageData: base64.StdEncoding.EncodeToString(encoded.Bytes()),
			Stats:     toStats(stats),
			Console:   drainConsole(consoleChan),
			UploadKey: uploadKey,
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	if uploadKey != "" {
		w.Header().Set("X-Upload-Key", uploadKey)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(encoded.Bytes())
}

func (s *Server) nextRenderID() string {
	n := s.renders.Add(1)
	return fmt.Sprintf("render_%s_%d", time.Now().Format("20060102_150405"), n)
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:        stats.TotalPixels,
		PrimaryHits:        stats.PrimaryHits,
		PrimaryMisses:      stats.PrimaryMisses,
		ShadowRays:         stats.ShadowRays,
		OccludedShadowRays: stats.OccludedShadowRays,
		DepthCutoffs:       stats.DepthCutoffs,
		ElapsedMs:          stats.Elapsed.Milliseconds(),
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	values := r.URL.Query()
	req.Upload = values.Get("upload") == "1" || values.Get("upload") == "true"

	req.Format = values.Get("format")
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("invalid format: %s", req.Format)
	}

	if req.Width*req.Height > 1280*960 && req.MaxDepth > s.defaults.MaxDepth {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}
	return req, nil
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	values := r.URL.Query()

	req.Scene = values.Get("scene")
	if req.Scene == "" {
		req.Scene = s.defaults.Scene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.defaults.Width, minSize, maxSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(values, "height", s.defaults.Height, minSize, maxSize); err != nil {
		return err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", s.defaults.MaxDepth, 1, maxDepthMax); err != nil {
		return err
	}
	if req.Orbit, err = parseFloatParam(values, "orbit", 0, -maxOrbit, maxOrbit); err != nil {
		return err
	}
	if req.Pivot, err = parseFloatParam(values, "pivot", 1, minPivot, maxPivot); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with the request's camera settings
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}
	camera := sceneObj.GetCamera()
	camera.SetResolution(req.Width, req.Height)
	if req.Orbit != 0 {
		camera.Orbit(req.Orbit, req.Pivot)
	}
	return sceneObj, nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = s.defaults.Scene
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+sceneName)
		return
	}

	camera := sceneObj.GetCamera()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    s.defaults.Width,
			"height":   s.defaults.Height,
			"maxDepth": s.defaults.MaxDepth,
		},
		"camera": map[string]interface{}{
			"origin": camera.Origin().Array(),
			"view":   camera.View().Array(),
			"up":     camera.Up().Array(),
		},
		"primitives": sceneObj.GetPrimitiveCount(),
		"lights":     len(sceneObj.GetLights()),
		"background": sceneObj.GetBackgroundColor().Hex(),
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minSize, "max": maxSize},
			"height":   map[string]int{"min": minSize, "max": maxSize},
			"maxDepth": map[string]int{"min": 1, "max": maxDepthMax},
			"orbit":    map[string]float64{"min": -maxOrbit, "max": maxOrbit},
			"pivot":    map[string]float64{"min": minPivot, "max": maxPivot},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
