package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter computes the scattered ray and attenuation for an incoming ray.
	// Returns false when the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light. Materials that do not
// implement it are treated as non-emissive by the integrator.
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always opposing the incoming ray
	UV        core.Vec2 // Surface coordinates at the intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
