package geometry

import (
	"fmt"
	"math"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// ConstantMedium is a participating-media volume of uniform density bounded
// by another shape. Rays passing through it scatter probabilistically with an
// exponential free-path distribution. The boundary must be convex; a ray is
// assumed to cross it at most once.
type ConstantMedium struct {
	Boundary      Shape
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a volume inside the boundary with the given
// density and an isotropic phase function of the given albedo texture.
func NewConstantMedium(boundary Shape, density float64, albedo material.Texture) (*ConstantMedium, error) {
	if density <= 0 {
		return nil, fmt.Errorf("constant medium density must be positive, got %g", density)
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}, nil
}

// Hit samples a scattering event along the ray's path through the boundary
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// Find where the ray enters the boundary, searching the whole line so
	// rays starting inside the volume are handled too.
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	exit, isHit := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength

	// Sample a free path from the exponential distribution; the ray passes
	// through untouched when it outlasts the boundary segment.
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
