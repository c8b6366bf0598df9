package scene

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/material"
)

// Cornell box dimensions and wall materials shared by the two cornell presets
const cornellSize = 555.0

func cornellCamera(sampling SamplingConfig) (geometry.CameraConfig, *geometry.Camera, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   float64(sampling.Width) / float64(sampling.Height),
		Aperture:      0.0,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}
	camera, err := geometry.NewCamera(cameraConfig)
	return cameraConfig, camera, err
}

// cornellWalls returns the five walls of the box. The green wall, floor and
// back wall face away from the camera and are flipped so their front faces
// point into the room.
func cornellWalls() []geometry.Shape {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Shape{
		geometry.NewFlipFace(geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green)),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		geometry.NewFlipFace(geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white)),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewFlipFace(geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white)),
	}
}

// NewCornellBoxScene builds the classic Cornell box: five walls, a ceiling
// area light and two rotated white boxes.
func NewCornellBoxScene(opts Options) (*Scene, error) {
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
	light := material.NewEmissive(core.NewVec3(16, 16, 16))

	world := geometry.NewShapeList(cornellWalls()...)
	world.Add(geometry.NewXZRect(183, 373, 137, 302, 554, light))

	var tallBox geometry.Shape = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBox = geometry.NewRotateY(tallBox, 15)
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))
	world.Add(tallBox)

	var cube geometry.Shape = geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	cube = geometry.NewRotateY(cube, -18)
	cube = geometry.NewTranslate(cube, core.NewVec3(130, 0, 100))
	world.Add(cube)

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       world.Shapes,
		Background:   NewSolidBackground(core.NewVec3(0, 0, 0)),
		Sampling:     sampling,
	}, nil
}
