package scene

import (
	"fmt"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/loaders"
	"github.com/strohs/raytracer/pkg/material"
)

// DefaultEarthTexture is the texture file used when Options.TexturePath is empty
const DefaultEarthTexture = "earthmap.jpg"

// NewEarthScene builds a single globe wrapped in an image texture decoded
// from Options.TexturePath.
func NewEarthScene(opts Options) (*Scene, error) {
	texturePath := opts.TexturePath
	if texturePath == "" {
		texturePath = DefaultEarthTexture
	}

	imageData, err := loaders.LoadImage(texturePath)
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}

	sampling := SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          30.0,
		AspectRatio:   float64(sampling.Width) / float64(sampling.Height),
		Aperture:      0.0,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	earthTex := material.NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels)
	globe, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTex))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       []geometry.Shape{globe},
		Background:   NewSkyBackground(),
		Sampling:     sampling,
	}, nil
}
