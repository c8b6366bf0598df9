package geometry

import (
	"math"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// Instance wrappers place existing shapes elsewhere in the scene without
// duplicating their geometry: the incoming ray is transformed into object
// space, the inner shape is intersected there, and the hit is transformed
// back into world space.

// Translate displaces an inner shape by a fixed offset
type Translate struct {
	Inner  Shape
	Offset core.Vec3
}

// NewTranslate creates a translated instance of the inner shape
func NewTranslate(inner Shape, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit intersects the inner shape with an offset ray and shifts the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Inner.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	// Normal and sidedness are unaffected by a pure translation
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates an inner shape around the Y axis
type RotateY struct {
	Inner    Shape
	sinTheta float64
	cosTheta float64
}

// NewRotateY creates an instance of the inner shape rotated by the given
// angle (in degrees) around the Y axis.
func NewRotateY(inner Shape, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180.0
	return &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

func (r *RotateY) rotate(v core.Vec3, sin float64) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+sin*v.Z,
		v.Y,
		-sin*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(
		r.rotate(ray.Origin, -r.sinTheta),
		r.rotate(ray.Direction, -r.sinTheta),
		ray.Time,
	)

	hit, isHit := r.Inner.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	// A rigid rotation preserves sidedness, so FrontFace carries over
	hit.Point = r.rotate(hit.Point, r.sinTheta)
	hit.Normal = r.rotate(hit.Normal, r.sinTheta)
	return hit, true
}

// BoundingBox covers the eight rotated corners of the inner box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z
				corners = append(corners, r.rotate(core.NewVec3(x, y, z), r.sinTheta))
			}
		}
	}

	return core.NewAABBFromPoints(corners...), true
}

// FlipFace inverts the front-face flag of the inner shape's hits. Used to
// orient one-sided walls and lights.
type FlipFace struct {
	Inner Shape
}

// NewFlipFace creates a face-flipped instance of the inner shape
func NewFlipFace(inner Shape) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit inverts FrontFace on the inner hit
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, isHit := f.Inner.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the inner shape's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}
