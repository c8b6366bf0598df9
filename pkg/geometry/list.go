package geometry

import (
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// ShapeList is an ordered collection of shapes tested with a linear
// nearest-hit scan. Scenes assemble into a list before the BVH is built;
// tests use it as the reference the BVH must agree with.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit returns the nearest intersection among all shapes in the list
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes. It returns false for an
// empty list or when any member lacks a finite box.
func (l *ShapeList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	box, ok := l.Shapes[0].BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	for _, shape := range l.Shapes[1:] {
		next, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(next)
	}

	return box, true
}
