package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Scatter toward the normal perturbed by a random point in the unit sphere
	scatterDirection := hit.Normal.Add(core.SamplePointInUnitSphere(sampler.Get3D()))

	// Degenerate direction: fall back to the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAt(hit.Point, scatterDirection, rayIn.Time)
	attenuation := l.Albedo.Evaluate(hit.UV, hit.Point)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}
