package geometry

import (
	"math"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
)

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "head-on from +z",
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "head-on from -x",
			ray:       core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "offset miss",
			ray:       core.NewRay(core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, 1000.0, testSampler())
			if isHit != tt.expectHit {
				t.Fatalf("Hit() = %t, want %t", isHit, tt.expectHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("t = %f, want %f", hit.T, tt.expectedT)
			}
		})
	}
}

func TestBox_Hit_FromInside(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), testMaterial())
	ray := core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 1, 0))

	hit, isHit := box.Hit(ray, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected hit from inside the box")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("t = %f, want 1.0", hit.T)
	}
	if hit.FrontFace {
		t.Error("hit from inside should be a back-face hit")
	}
}

func TestBox_BoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, 2), core.NewVec3(1, 3, 4), testMaterial())

	bounds, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if !bounds.Contains(core.NewVec3(0, 1.5, 3)) {
		t.Error("expected the box center to be inside the bounds")
	}
	if !bounds.Contains(core.NewVec3(-1, 0, 2)) || !bounds.Contains(core.NewVec3(1, 3, 4)) {
		t.Error("expected the box corners to be inside the bounds")
	}
}
