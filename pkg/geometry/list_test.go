package geometry

import (
	"math"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
)

func TestShapeList_Hit_ReturnsNearest(t *testing.T) {
	near := mustSphere(t, core.NewVec3(0, 0, 2), 0.5)
	far := mustSphere(t, core.NewVec3(0, 0, -4), 0.5)
	list := NewShapeList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("expected hit")
	}

	// The near sphere's surface is at z=2.5, so t=2.5
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("t = %f, want the nearest hit at 2.5", hit.T)
	}
}

func TestShapeList_Hit_Empty(t *testing.T) {
	list := NewShapeList()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, 0.001, math.Inf(1), testSampler()); isHit {
		t.Error("expected an empty list to miss")
	}
}

func TestShapeList_BoundingBox(t *testing.T) {
	a := mustSphere(t, core.NewVec3(-2, 0, 0), 1.0)
	b := mustSphere(t, core.NewVec3(3, 1, 0), 1.0)
	list := NewShapeList(a, b)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	wantMin := core.NewVec3(-3, -1, -1)
	wantMax := core.NewVec3(4, 2, 1)
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("BoundingBox() = [%v, %v], want [%v, %v]", box.Min, box.Max, wantMin, wantMax)
	}

	// An empty list has no box
	if _, ok := NewShapeList().BoundingBox(0, 1); ok {
		t.Error("expected no bounding box for an empty list")
	}
}
