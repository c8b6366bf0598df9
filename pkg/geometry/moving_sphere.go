package geometry

import (
	"fmt"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// MovingSphere represents a sphere whose center moves linearly between two
// keyframe positions over a time interval. Rays pick the center by their Time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) (*MovingSphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("moving sphere radius must be positive, got %g", radius)
	}
	if time0 == time1 {
		return nil, fmt.Errorf("moving sphere requires a non-degenerate time interval, got [%g, %g]", time0, time1)
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}, nil
}

// CenterAt returns the interpolated center position at the given time
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(frac))
}

// Hit tests if a ray intersects with the sphere at the ray's time
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	center := m.CenterAt(ray.Time)

	root, ok := sphereRoot(ray, center, m.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: m.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / m.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = SphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns a box covering the sphere's sweep over [time0, time1]
func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(m.Radius, m.Radius, m.Radius)
	box0 := core.NewAABB(
		m.CenterAt(time0).Subtract(radius),
		m.CenterAt(time0).Add(radius),
	)
	box1 := core.NewAABB(
		m.CenterAt(time1).Subtract(radius),
		m.CenterAt(time1).Add(radius),
	)
	return box0.Union(box1), true
}
