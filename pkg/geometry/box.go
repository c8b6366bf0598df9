package geometry

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// Box is an axis-aligned rectangular box built from six rectangles.
// Rotated boxes are modeled by wrapping a Box in a RotateY instance.
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *ShapeList
}

// NewBox creates a box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	sides := NewShapeList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests the ray against the six faces of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box spanning the two corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
