package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0:
			min = aabb.Min.X
			max = aabb.Max.X
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1:
			min = aabb.Min.Y
			max = aabb.Max.Y
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2:
			min = aabb.Min.Z
			max = aabb.Max.Z
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		// Ray parallel to this axis: inside the slab or not at all
		if math.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// LongestAxis returns the axis index (0=X, 1=Y, 2=Z) with the largest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Max.Subtract(aabb.Min)
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// Contains reports whether the point lies inside the box (inclusive)
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsValid reports whether the box has finite, ordered corners
func (aabb AABB) IsValid() bool {
	return aabb.Min.IsFinite() && aabb.Max.IsFinite() &&
		aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
