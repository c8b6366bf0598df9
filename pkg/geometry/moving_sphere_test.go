package geometry

import (
	"math"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
)

func TestNewMovingSphere_Validation(t *testing.T) {
	c0 := core.NewVec3(0, 0, 0)
	c1 := core.NewVec3(1, 0, 0)

	if _, err := NewMovingSphere(c0, c1, 0, 1, -1, testMaterial()); err == nil {
		t.Error("expected an error for negative radius")
	}
	if _, err := NewMovingSphere(c0, c1, 1, 1, 0.5, testMaterial()); err == nil {
		t.Error("expected an error for a zero-length time interval")
	}
	if _, err := NewMovingSphere(c0, c1, 0, 1, 0.5, testMaterial()); err != nil {
		t.Errorf("unexpected error for a valid moving sphere: %v", err)
	}
}

func TestMovingSphere_CenterAt(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 0.5, testMaterial())
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	tests := []struct {
		time float64
		want core.Vec3
	}{
		{0.0, core.NewVec3(0, 0, 0)},
		{0.5, core.NewVec3(1, 0, 0)},
		{1.0, core.NewVec3(2, 0, 0)},
	}

	for _, tt := range tests {
		if got := sphere.CenterAt(tt.time); got.Subtract(tt.want).Length() > 1e-9 {
			t.Errorf("CenterAt(%f) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestMovingSphere_Hit_UsesRayTime(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 1.0, testMaterial())
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	// At time 0 the sphere sits at the origin and the ray down x=0 hits it
	early := core.NewRayAt(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0.0)
	hit, isHit := sphere.Hit(early, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected hit at time 0")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("t = %f, want 4.0", hit.T)
	}

	// At time 1 the sphere has moved to x=4 and the same ray misses
	late := core.NewRayAt(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(late, 0.001, 1000.0, testSampler()); isHit {
		t.Error("expected miss at time 1 after the sphere moved away")
	}

	// A ray aimed at the moved position hits it
	aimed := core.NewRayAt(core.NewVec3(4, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	if _, isHit := sphere.Hit(aimed, 0.001, 1000.0, testSampler()); !isHit {
		t.Error("expected hit at the sphere's time-1 position")
	}
}

func TestMovingSphere_BoundingBox_CoversPath(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 1.0, testMaterial())
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}

	wantMin := core.NewVec3(-1, -1, -1)
	wantMax := core.NewVec3(5, 1, 1)
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("BoundingBox() = [%v, %v], want [%v, %v]", box.Min, box.Max, wantMin, wantMax)
	}
}
