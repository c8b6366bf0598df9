package scene

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/material"
)

// NewCheckeredSpheresScene builds two giant checkered spheres touching at the
// origin, viewed edge-on.
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
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
		VFov:          20.0,
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

	lower := material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	)
	upper := material.NewCheckerColors(
		core.NewVec3(0.2, 0.2, 0.2),
		core.NewVec3(0.8, 0.8, 0.8),
	)

	bottom, err := geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(lower))
	if err != nil {
		return nil, err
	}
	top, err := geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(upper))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       []geometry.Shape{bottom, top},
		Background:   NewSkyBackground(),
		Sampling:     sampling,
	}, nil
}
