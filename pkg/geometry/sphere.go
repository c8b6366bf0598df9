package geometry

import (
	"fmt"
	"math"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	root, ok := sphereRoot(ray, s.Center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal from center to hit point
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = SphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// sphereRoot solves the quadratic |O + tD - C|² = r² and returns the
// smaller root within [tMin, tMax], falling back to the farther one.
func sphereRoot(ray core.Ray, center core.Vec3, radius, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}

	return root, true
}

// SphereUV maps a point on the unit sphere to (u,v) surface coordinates,
// u ∈ [0,1] around the Y axis and v ∈ [0,1] from the south to the north pole.
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
