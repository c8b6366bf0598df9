package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Isotropic scatters uniformly in all directions. It is the phase function
// used inside constant-density volumes such as smoke and fog.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface with a uniform random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())
	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
