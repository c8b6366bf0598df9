package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)

	// Absorb rays that end up pointing into the surface
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
