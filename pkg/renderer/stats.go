package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels        int           // Total number of pixels rendered
	PrimaryHits        int           // Camera rays that hit a primitive
	PrimaryMisses      int           // Camera rays that fell through to the background
	ShadowRays         int           // Shadow rays cast toward lights
	OccludedShadowRays int           // Shadow rays blocked before reaching their light
	DepthCutoffs       int           // Shade calls stopped at the recursion limit
	Elapsed            time.Duration // Wall time of the pass
}

// HitRatio returns the fraction of camera rays that hit a primitive
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d hits, %d misses, %d/%d shadow rays occluded, %d depth cutoffs in %v",
		s.TotalPixels, s.PrimaryHits, s.PrimaryMisses, s.OccludedShadowRays, s.ShadowRays, s.DepthCutoffs, s.Elapsed)
}
