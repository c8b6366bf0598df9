package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

// BVH is a bounding volume hierarchy for fast ray-object intersection.
// It is built once over the render's shutter interval and is immutable
// thereafter, so it can be shared across worker threads without locking.
type BVH struct {
	root  Shape
	box   core.AABB
	stats BVHStats
}

// BVHStats describes the structure of a built tree
type BVHStats struct {
	Shapes        int // Number of primitives in the tree
	InternalNodes int // Number of two-child nodes
	Height        int // Longest root-to-leaf path
}

// bvhNode is an internal two-child node with a cached box covering both
type bvhNode struct {
	left  Shape
	right Shape
	box   core.AABB
}

// NewBVH constructs a BVH over the given shapes for the time interval
// [time0, time1]. An empty shape list or a shape without a finite bounding
// box is a construction error; the render refuses to start with such a scene.
func NewBVH(shapes []Shape, time0, time1 float64) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, errors.New("cannot build a BVH over an empty shape list")
	}

	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok || !box.IsValid() {
			return nil, fmt.Errorf("shape %d has no finite bounding box", i)
		}
		entries[i] = bvhEntry{shape: shape, box: box}
	}

	root, height := buildBVH(entries)
	box, _ := root.BoundingBox(time0, time1)

	stats := BVHStats{Shapes: len(shapes), Height: height}
	countInternalNodes(root, &stats)

	return &BVH{root: root, box: box, stats: stats}, nil
}

// bvhEntry pairs a shape with its precomputed time-interval box so the build
// never re-queries shapes while sorting.
type bvhEntry struct {
	shape Shape
	box   core.AABB
}

// buildBVH recursively builds the tree: sort by box centroid along the
// longest axis of the centroid bounds, split at the median. A single shape
// is its own leaf; two shapes become one node.
func buildBVH(entries []bvhEntry) (Shape, int) {
	if len(entries) == 1 {
		return entries[0].shape, 0
	}

	if len(entries) == 2 {
		return &bvhNode{
			left:  entries[0].shape,
			right: entries[1].shape,
			box:   entries[0].box.Union(entries[1].box),
		}, 1
	}

	axis := centroidBounds(entries).LongestAxis()
	sort.Slice(entries, func(i, j int) bool {
		return axisValue(entries[i].box.Center(), axis) < axisValue(entries[j].box.Center(), axis)
	})

	mid := len(entries) / 2
	left, leftHeight := buildBVH(entries[:mid])
	right, rightHeight := buildBVH(entries[mid:])

	box := entries[0].box
	for _, e := range entries[1:] {
		box = box.Union(e.box)
	}

	return &bvhNode{left: left, right: right, box: box}, 1 + max(leftHeight, rightHeight)
}

// centroidBounds returns the box spanning all entry box centers
func centroidBounds(entries []bvhEntry) core.AABB {
	points := make([]core.Vec3, len(entries))
	for i, e := range entries {
		points[i] = e.box.Center()
	}
	return core.NewAABBFromPoints(points...)
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func countInternalNodes(shape Shape, stats *BVHStats) {
	if node, ok := shape.(*bvhNode); ok {
		stats.InternalNodes++
		countInternalNodes(node.left, stats)
		countInternalNodes(node.right, stats)
	}
}

// Hit returns the nearest intersection found in the tree
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.root.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box covering the whole tree
func (b *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return b.box, true
}

// Stats returns structural statistics about the tree
func (b *BVH) Stats() BVHStats {
	return b.stats
}

// Hit rejects via the node's box, then recurses into both children with tMax
// tightened to the closer confirmed hit so far.
func (n *bvhNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := n.right.Hit(ray, tMin, tMax, sampler)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's cached box
func (n *bvhNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}
