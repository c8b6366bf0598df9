package geometry

import (
	"math"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/material"
)

func testAlbedo() material.Texture {
	return material.NewSolidColor(core.NewVec3(1, 1, 1))
}

func TestNewConstantMedium_RejectsBadDensity(t *testing.T) {
	boundary := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	if _, err := NewConstantMedium(boundary, 0, testAlbedo()); err == nil {
		t.Error("expected an error for zero density")
	}
	if _, err := NewConstantMedium(boundary, -0.1, testAlbedo()); err == nil {
		t.Error("expected an error for negative density")
	}
}

func TestConstantMedium_Hit_ScatterProbability(t *testing.T) {
	// A ray crossing a unit sphere through its center travels a path of
	// length 2, so it should scatter with probability 1 - exp(-2*density).
	boundary := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	medium, err := NewConstantMedium(boundary, 0.5, testAlbedo())
	if err != nil {
		t.Fatalf("NewConstantMedium: %v", err)
	}

	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0))

	const trials = 20000
	scattered := 0
	for i := 0; i < trials; i++ {
		hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), sampler)
		if isHit {
			scattered++
			// A scatter event must lie inside the boundary
			if hit.Point.Length() > 1.0+1e-9 {
				t.Fatalf("scatter point %v outside the boundary", hit.Point)
			}
			if hit.Material != medium.PhaseFunction {
				t.Fatal("scatter hit does not carry the phase function material")
			}
		}
	}

	want := 1.0 - math.Exp(-2*0.5)
	got := float64(scattered) / trials
	if math.Abs(got-want) > 0.02 {
		t.Errorf("scatter probability = %f, want %f ± 0.02", got, want)
	}
}

func TestConstantMedium_Hit_MissesOutsideBoundary(t *testing.T) {
	boundary := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	medium, err := NewConstantMedium(boundary, 100, testAlbedo())
	if err != nil {
		t.Fatalf("NewConstantMedium: %v", err)
	}

	// A ray that never enters the boundary can never scatter
	ray := core.NewRay(core.NewVec3(-2, 5, 0), core.NewVec3(1, 0, 0))
	sampler := core.NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		if _, isHit := medium.Hit(ray, 0.001, math.Inf(1), sampler); isHit {
			t.Fatal("expected no scattering for a ray missing the boundary")
		}
	}
}

func TestConstantMedium_Hit_FromInside(t *testing.T) {
	// With very high density a ray starting inside scatters almost surely,
	// at a non-negative parameter.
	boundary := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	medium, err := NewConstantMedium(boundary, 1000, testAlbedo())
	if err != nil {
		t.Fatalf("NewConstantMedium: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	sampler := core.NewSeededSampler(11)

	hit, isHit := medium.Hit(ray, 0.001, math.Inf(1), sampler)
	if !isHit {
		t.Fatal("expected a dense medium to scatter a ray starting inside")
	}
	if hit.T < 0 {
		t.Errorf("t = %f, want non-negative", hit.T)
	}
}
