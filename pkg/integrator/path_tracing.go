package integrator

import (
	"math"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
	"github.com/strohs/raytracer/pkg/scene"
)

// Rays start slightly above t=0 to avoid re-hitting the surface they left
const tMinEpsilon = 0.001

// PathTracer estimates radiance along camera rays by naive recursive path
// tracing: no light sampling, no Russian roulette; convergence is governed
// entirely by the number of samples per pixel.
type PathTracer struct {
	scene *scene.Scene
}

// NewPathTracer creates a path tracer bound to a preprocessed scene
func NewPathTracer(s *scene.Scene) *PathTracer {
	return &PathTracer{scene: s}
}

// RayColor computes the radiance estimate for a single ray, following
// scattered rays up to maxDepth bounces. It is written as a loop with a
// decrementing bound rather than recursion, so stack usage stays constant
// no matter how pathological the scene.
//
// Each bounce adds throughput-weighted emission; a miss adds the background
// and ends the path; an absorbed ray ends the path; an exhausted bounce
// budget contributes nothing further.
func (pt *PathTracer) RayColor(ray core.Ray, sampler core.Sampler, maxDepth int) core.Vec3 {
	accumulated := core.NewVec3(0, 0, 0)
	throughput := core.NewVec3(1, 1, 1)
	current := ray

	for depth := maxDepth; depth > 0; depth-- {
		hit, isHit := pt.scene.BVH.Hit(current, tMinEpsilon, math.Inf(1), sampler)
		if !isHit {
			background := pt.scene.Background.At(current)
			accumulated = accumulated.Add(throughput.MultiplyVec(background))
			break
		}

		if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
			emitted := emitter.Emitted(hit.UV, hit.Point)
			accumulated = accumulated.Add(throughput.MultiplyVec(emitted))
		}

		scatter, didScatter := hit.Material.Scatter(current, *hit, sampler)
		if !didScatter {
			break
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		current = scatter.Scattered
	}

	return accumulated
}
