package scene

import (
	"fmt"

	"github.com/strohs/raytracer/pkg/geometry"
)

// SamplingConfig carries a scene's recommended render settings. The CLI can
// override any of them.
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Scene contains all the elements needed for rendering. After Preprocess it
// is immutable and safely shared by reference across worker threads.
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape
	Background   Background
	Sampling     SamplingConfig
	BVH          *geometry.BVH // Acceleration structure, built by Preprocess
}

// SetDimensions overrides the preset image size and rebuilds the camera so
// its aspect ratio matches. Call before Preprocess.
func (s *Scene) SetDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	s.Sampling.Width = width
	s.Sampling.Height = height
	s.CameraConfig.AspectRatio = float64(width) / float64(height)

	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return fmt.Errorf("rebuilding camera: %w", err)
	}
	s.Camera = camera
	return nil
}

// Preprocess builds the BVH over the camera's shutter interval. Construction
// errors (empty scene, shapes without finite bounds) surface here, before any
// worker starts.
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if s.Background == nil {
		return fmt.Errorf("scene has no background")
	}

	time0, time1 := s.Camera.ShutterInterval()
	bvh, err := geometry.NewBVH(s.Shapes, time0, time1)
	if err != nil {
		return fmt.Errorf("building scene BVH: %w", err)
	}
	s.BVH = bvh
	return nil
}
