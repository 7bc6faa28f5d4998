package renderer

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetLights() []*lights.PointLight
	GetBackgroundColor() core.Color
	FindNearestIntersect(ray core.Ray) (geometry.Intersection, bool)
	IsOccluded(ray core.Ray) bool
}

// Raytracer shades hits recursively and drives a full render.
// A Raytracer is not safe for concurrent use; build one per render.
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a new raytracer. A non-positive MaxDepth falls back
// to DefaultMaxDepth.
func NewRaytracer(scene Scene, config Config) *Raytracer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: log.Default(),
	}
}

// SetLogger replaces the logger used for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Config returns the effective configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// seedColor is the starting color for a hit: mostly background with a
// little of the material's own color
func (rt *Raytracer) seedColor(m material.Material) core.Color {
	return rt.scene.GetBackgroundColor().Mix(material.Tint(m), 1.0-SeedMaterialWeight)
}

// Shade computes the color seen along hit.Ray. depth counts the bounces so
// far; at maxDepth the seed color is returned without further tracing.
func (rt *Raytracer) Shade(hit geometry.Intersection, depth, maxDepth int) core.Color {
	if hit.Material == nil {
		panic("renderer: intersection without material")
	}

	seed := rt.seedColor(hit.Material)
	if depth >= maxDepth {
		rt.stats.DepthCutoffs++
		return seed
	}

	switch mat := hit.Material.(type) {
	case material.Diffuse:
		return rt.shadeDiffuse(hit, mat.Color, seed)
	case material.Specular:
		return rt.shadeSpecular(hit, mat.Color, seed, depth, maxDepth)
	case material.Refractive:
		return rt.shadeRefractive(hit, mat.IOR, seed, depth, maxDepth)
	case material.Mixed:
		diffuse := rt.shadeDiffuse(hit, mat.Diffuse, seed)
		specular := rt.shadeSpecular(hit, mat.Specular, seed, depth, maxDepth)
		return specular.Mix(diffuse, mat.Factor)
	default:
		panic(fmt.Sprintf("renderer: unreachable material variant %T", hit.Material))
	}
}

// shadeDiffuse adds the unshadowed lights' cosine contribution to col,
// clamping after each light
func (rt *Raytracer) shadeDiffuse(hit geometry.Intersection, diffuse, col core.Color) core.Color {
	point := hit.Point()
	for _, light := range rt.scene.GetLights() {
		shadowRay := light.ShadowRay(point)
		rt.stats.ShadowRays++
		if rt.scene.IsOccluded(shadowRay) {
			rt.stats.OccludedShadowRays++
			continue
		}
		cos := math.Abs(shadowRay.Direction.Dot(hit.Normal))
		col = col.Add(diffuse.Multiply(cos)).Clamp()
	}
	return col
}

func (rt *Raytracer) shadeSpecular(hit geometry.Intersection, specular, seed core.Color, depth, maxDepth int) core.Color {
	next, isHit := rt.scene.FindNearestIntersect(hit.Reflected())
	if !isHit {
		return seed
	}
	return rt.Shade(next, depth+1, maxDepth).Mix(specular, 0.9)
}

// shadeRefractive follows the transmitted ray. Total internal reflection
// and escaping rays both yield the seed color.
func (rt *Raytracer) shadeRefractive(hit geometry.Intersection, ior float64, seed core.Color, depth, maxDepth int) core.Color {
	refracted, ok := hit.Refracted(ior)
	if !ok {
		return seed
	}
	next, isHit := rt.scene.FindNearestIntersect(refracted)
	if !isHit {
		return seed
	}
	return rt.Shade(next, depth+1, maxDepth)
}

// TracePixel returns the color of pixel (x, y) and the primary hit, if any
func (rt *Raytracer) TracePixel(x, y int) (core.Color, geometry.Intersection, bool) {
	ray := rt.scene.GetCamera().GenerateRay(x, y)
	hit, isHit := rt.scene.FindNearestIntersect(ray)
	if !isHit {
		return rt.scene.GetBackgroundColor(), hit, false
	}
	return rt.Shade(hit, 0, rt.config.MaxDepth), hit, true
}

// RenderPass renders every pixel in row-major order and returns the image
// along with statistics for the pass
func (rt *Raytracer) RenderPass() (*ImageBuffer, RenderStats) {
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()

	rt.stats = RenderStats{}
	startTime := time.Now()
	rt.logger.Printf("Rendering %dx%d (max depth %d)...\n", width, height, rt.config.MaxDepth)

	img := NewImageBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			col, _, isHit := rt.TracePixel(x, y)
			if isHit {
				rt.stats.PrimaryHits++
			} else {
				rt.stats.PrimaryMisses++
			}
			img.Set(x, y, col.RGB())
		}
	}

	rt.stats.TotalPixels = width * height
	rt.stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed: %v\n", rt.stats)

	return img, rt.stats
}

// Render renders the scene and returns the image
func (rt *Raytracer) Render() *ImageBuffer {
	img, _ := rt.RenderPass()
	return img
}
