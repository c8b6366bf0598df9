package renderer

import (
	"time"

	"github.com/strohs/raytracer/pkg/core"
)

// WorkerStats is one worker's share of a completed render
type WorkerStats struct {
	Worker   int           // Worker index
	Rows     int           // Number of rows rendered
	Pixels   int           // Number of pixels rendered
	Faults   int           // Pixels replaced by the sentinel color
	Duration time.Duration // Wall time the worker was busy
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Elapsed         time.Duration
	PerWorker       []WorkerStats
}

// TotalPixels returns the number of pixels rendered across all workers
func (s *RenderStats) TotalPixels() int {
	total := 0
	for _, w := range s.PerWorker {
		total += w.Pixels
	}
	return total
}

// TotalFaults returns the number of sentinel pixels across all workers
func (s *RenderStats) TotalFaults() int {
	total := 0
	for _, w := range s.PerWorker {
		total += w.Faults
	}
	return total
}

// TotalSamples returns the number of camera rays traced
func (s *RenderStats) TotalSamples() int {
	return s.TotalPixels() * s.SamplesPerPixel
}

// PixelStats accumulates color samples for one pixel across progressive passes
type PixelStats struct {
	ColorAccum  core.Vec3 // Sum of all samples taken so far
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// PassStats summarizes a single progressive pass
type PassStats struct {
	TotalPixels    int     // Total number of pixels in the image
	TotalSamples   int     // Samples accumulated so far, across passes
	AverageSamples float64 // Average samples per pixel so far
	TargetSamples  int     // Samples per pixel this pass aimed for
}
