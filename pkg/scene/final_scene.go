package scene

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/loaders"
	"github.com/strohs/raytracer/pkg/material"
)

// NewFinalScene builds the showcase scene: a ground layer of 400 random-height
// boxes, a large area light, motion-blurred/glass/metal spheres, two
// constant-density volumes, an image-mapped globe, a marble sphere, and a
// rotated cube of 1000 small spheres. The ground boxes and the sphere cube go
// into nested BVHs of their own.
func NewFinalScene(opts Options) (*Scene, error) {
	random := opts.random()

	sampling := SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 250,
		MaxDepth:        50,
	}

	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(178, 278, -800),
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
	if err != nil {
		return nil, err
	}

	world := geometry.NewShapeList()

	// Ground layer: 20x20 boxes with random heights, bundled into a BVH
	groundMat := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	groundBoxes := make([]geometry.Shape, 0, 400)
	const boxesPerSide = 20
	const boxWidth = 100.0
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*boxWidth
			z0 := -1000.0 + float64(j)*boxWidth
			y1 := 1.0 + 100.0*random.Float64()
			groundBoxes = append(groundBoxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				groundMat,
			))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, 0, 1)
	if err != nil {
		return nil, err
	}
	world.Add(groundBVH)

	// Ceiling light
	light := material.NewEmissive(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	// Motion-blurred sphere
	centerStart := core.NewVec3(400, 400, 200)
	centerEnd := centerStart.Add(core.NewVec3(30, 0, 0))
	moving, err := geometry.NewMovingSphere(centerStart, centerEnd, 0, 1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)))
	if err != nil {
		return nil, err
	}
	world.Add(moving)

	glass, err := geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5))
	if err != nil {
		return nil, err
	}
	metal, err := geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10))
	if err != nil {
		return nil, err
	}
	world.Add(glass, metal)

	// A blueish glass sphere filled with fog, approximating subsurface scatter
	boundary, err := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	if err != nil {
		return nil, err
	}
	world.Add(boundary)
	blueFog, err := geometry.NewConstantMedium(boundary, 0.2,
		material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9)))
	if err != nil {
		return nil, err
	}
	world.Add(blueFog)

	// A thin global mist spanning the whole scene
	mistBoundary, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	if err != nil {
		return nil, err
	}
	mist, err := geometry.NewConstantMedium(mistBoundary, 0.0001,
		material.NewSolidColor(core.NewVec3(1, 1, 1)))
	if err != nil {
		return nil, err
	}
	world.Add(mist)

	// Image-mapped globe; falls back to a solid color when the texture file
	// is unavailable so this preset can build without assets.
	var earthMat material.Material
	texturePath := opts.TexturePath
	if texturePath == "" {
		texturePath = DefaultEarthTexture
	}
	if imageData, err := loaders.LoadImage(texturePath); err == nil {
		earthMat = material.NewTexturedLambertian(
			material.NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels))
	} else {
		earthMat = material.NewLambertian(core.NewVec3(0.2, 0.4, 0.6))
	}
	earth, err := geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earthMat)
	if err != nil {
		return nil, err
	}
	world.Add(earth)

	marbleTex := material.NewNoiseTexture(random, 0.1)
	marble, err := geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marbleTex))
	if err != nil {
		return nil, err
	}
	world.Add(marble)

	// A cube of 1000 small white spheres, BVH'd, rotated and translated
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cloud := make([]geometry.Shape, 0, 1000)
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(
			165*random.Float64(),
			165*random.Float64(),
			165*random.Float64(),
		)
		sphere, err := geometry.NewSphere(center, 10, white)
		if err != nil {
			return nil, err
		}
		cloud = append(cloud, sphere)
	}
	cloudBVH, err := geometry.NewBVH(cloud, 0, 1)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(cloudBVH, 15),
		core.NewVec3(-100, 270, 395),
	))

	return &Scene{
		Camera:       camera,
		CameraConfig: cameraConfig,
		Shapes:       world.Shapes,
		Background:   NewSolidBackground(core.NewVec3(0, 0, 0)),
		Sampling:     sampling,
	}, nil
}
