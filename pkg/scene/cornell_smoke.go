package scene

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/material"
)

// NewCornellSmokeScene builds the Cornell box variant where the two boxes are
// replaced by constant-density volumes: one of dark smoke, one of white fog.
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	sampling := SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}

	cameraConfig, camera, err := cornellCamera(sampling)
	if err != nil {
		return nil, err
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	// A dimmer but much larger light than the plain cornell box
	light := material.NewEmissive(core.NewVec3(7, 7, 7))

	world := geometry.NewShapeList(cornellWalls()...)
	world.Add(geometry.NewXZRect(113, 443, 127, 432, 554, light))

	var tallBox geometry.Shape = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBox = geometry.NewRotateY(tallBox, 15)
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))

	var cube geometry.Shape = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	cube = geometry.NewRotateY(cube, -18)
	cube = geometry.NewTranslate(cube, core.NewVec3(130, 0, 65))

	smoke, err := geometry.NewConstantMedium(tallBox, 0.01,
		material.NewSolidColor(core.NewVec3(0, 0, 0)))
	if err != nil {
		return nil, err
	}
	fog, err := geometry.NewConstantMedium(cube, 0.01,
		material.NewSolidColor(core.NewVec3(1, 1, 1)))
	if err != nil {
		return nil, err
	}
	world.Add(smoke, fog)

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       world.Shapes,
		Background:   NewSolidBackground(core.NewVec3(0, 0, 0)),
		Sampling:     sampling,
	}, nil
}
