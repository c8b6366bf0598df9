package scene

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/material"
)

// NewPerlinSpheresScene builds two marble-textured spheres lit by a pair of
// rectangle lights against a black background.
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	random := opts.random()

	sampling := SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}

	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          60.0,
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

	groundTex := material.NewNoiseTexture(random, 0.1)
	ground, err := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundTex))
	if err != nil {
		return nil, err
	}

	marbleTex := material.NewNoiseTexture(random, 0.1)
	marble, err := geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marbleTex))
	if err != nil {
		return nil, err
	}

	// Lights are brighter than (1,1,1) so they can carry the whole scene
	lightMat := material.NewEmissive(core.NewVec3(4, 4, 4))
	wallLight := geometry.NewXYRect(3, 4, 1, 3, -2, lightMat)
	overheadLight := geometry.NewXZRect(-2, 2, -2, 2, 6, lightMat)

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       []geometry.Shape{ground, marble, wallLight, overheadLight},
		Background:   NewSolidBackground(core.NewVec3(0, 0, 0)),
		Sampling:     sampling,
	}, nil
}
