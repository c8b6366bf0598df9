package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Emissive represents a light-emitting material. It never scatters; emission
// is what models light sources in this renderer.
type Emissive struct {
	Emission Texture
}

// NewEmissive creates a new emissive material with a solid emission color
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates a new emissive material with a textured emission
func NewTexturedEmissive(emission Texture) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface; emissive materials absorb all rays
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light at the hit point
func (e *Emissive) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point)
}
