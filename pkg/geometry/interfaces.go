package geometry

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Hit takes a sampler because volumetric shapes consume randomness while
// deciding where a ray scatters; solid shapes ignore it. BoundingBox takes
// the render's time interval so motion-blurred shapes can report a box that
// covers their full sweep; it returns false for shapes without a finite box.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
