package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Cells written or left as background
	LitPixels        int           // Visible surface, not in shadow
	ShadowedPixels   int           // Visible surface occluded from the light
	BackgroundPixels int           // No surface hit
	SkippedCells     int           // Domain coordinates with no backing cell
	Elapsed          time.Duration // Wall time of the whole render
}

// PixelKind classifies the outcome of shading a single pixel
type PixelKind int

const (
	PixelBackground PixelKind = iota
	PixelLit
	PixelShadowed
)

// String returns a short name for the pixel kind
func (k PixelKind) String() string {
	switch k {
	case PixelLit:
		return "lit"
	case PixelShadowed:
		return "shadowed"
	default:
		return "background"
	}
}

// record updates the statistics with a single shaded pixel
func (s *RenderStats) record(kind PixelKind) {
	s.TotalPixels++
	switch kind {
	case PixelLit:
		s.LitPixels++
	case PixelShadowed:
		s.ShadowedPixels++
	default:
		s.BackgroundPixels++
	}
}

// Merge adds the counters of other into s. Elapsed is left untouched.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.LitPixels += other.LitPixels
	s.ShadowedPixels += other.ShadowedPixels
	s.BackgroundPixels += other.BackgroundPixels
	s.SkippedCells += other.SkippedCells
}

// Coverage returns the fraction of pixels that hit a surface
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.LitPixels+s.ShadowedPixels) / float64(s.TotalPixels)
}
