package scene

import (
	"math/rand"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/material"
)

// NewRandomSpheresScene builds a field of 484 small random spheres around
// three large ones, resting on an enormous checkered ground sphere. Roughly
// one in ten small spheres is a motion-blurred moving sphere.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	random := opts.random()

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
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	}
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	world := geometry.NewShapeList()

	// Checkered ground sphere
	checker := material.NewCheckerColors(
		core.NewVec3(0.1, 0.2, 0.1),
		core.NewVec3(0.8, 0.8, 0.8),
	)
	ground, err := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker))
	if err != nil {
		return nil, err
	}
	world.Add(ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Leave a clearing around the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var shape geometry.Shape
			prob := random.Float64()
			switch {
			case prob < 0.1:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				center2 := center.Add(core.NewVec3(0, random.Float64(), 0))
				shape, err = geometry.NewMovingSphere(center, center2, 0.0, 1.0, 0.2, material.NewLambertian(albedo))
			case prob < 0.7:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				shape, err = geometry.NewSphere(center, 0.2, material.NewLambertian(albedo))
			case prob < 0.95:
				albedo := randomColorRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				shape, err = geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				shape, err = geometry.NewSphere(center, 0.2, material.NewDielectric(1.5))
			}
			if err != nil {
				return nil, err
			}
			world.Add(shape)
		}
	}

	// The three large spheres: glass, marble and metal
	glass, err := geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	if err != nil {
		return nil, err
	}
	marbleTex := material.NewNoiseTexture(random, 0.9)
	marble, err := geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewTexturedLambertian(marbleTex))
	if err != nil {
		return nil, err
	}
	metal, err := geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	if err != nil {
		return nil, err
	}
	world.Add(glass, marble, metal)

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       world.Shapes,
		Background:   NewSkyBackground(),
		Sampling:     sampling,
	}, nil
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorRange(random *rand.Rand, min, max float64) core.Vec3 {
	spread := max - min
	return core.NewVec3(
		min+spread*random.Float64(),
		min+spread*random.Float64(),
		min+spread*random.Float64(),
	)
}
