package geometry

import (
	"math"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	// The original location is empty now
	atOrigin := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if _, isHit := moved.Hit(atOrigin, 0.001, 1000.0, testSampler()); isHit {
		t.Error("expected miss at the untranslated location")
	}

	// The translated location hits, with the point in world space
	atTranslated := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := moved.Hit(atTranslated, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected hit at the translated location")
	}
	wantPoint := core.NewVec3(5, 0, 1)
	if hit.Point.Subtract(wantPoint).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", hit.Point, wantPoint)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("normal = %v, want unchanged (0, 0, 1)", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("translation must preserve sidedness")
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	moved := NewTranslate(sphere, core.NewVec3(5, -2, 3))

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	wantMin := core.NewVec3(4, -3, 2)
	wantMax := core.NewVec3(6, -1, 4)
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("BoundingBox() = [%v, %v], want [%v, %v]", box.Min, box.Max, wantMin, wantMax)
	}
}

func TestRotateY_Hit_QuarterTurn(t *testing.T) {
	// A sphere at (2, 0, 0) rotated +90 degrees about Y presents itself at
	// (0, 0, -2) in world space.
	sphere := mustSphere(t, core.NewVec3(2, 0, 0), 1.0)
	rotated := NewRotateY(sphere, 90)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, isHit := rotated.Hit(ray, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected hit at the rotated position")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("t = %f, want 2.0", hit.T)
	}
	wantPoint := core.NewVec3(0, 0, -3)
	if hit.Point.Subtract(wantPoint).Length() > 1e-9 {
		t.Errorf("hit point = %v, want %v", hit.Point, wantPoint)
	}
	wantNormal := core.NewVec3(0, 0, -1)
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("normal = %v, want %v", hit.Normal, wantNormal)
	}

	// The original location is empty
	atOriginal := core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1))
	if _, isHit := rotated.Hit(atOriginal, 0.001, 1000.0, testSampler()); isHit {
		t.Error("expected miss at the unrotated location")
	}
}

func TestRotateY_Hit_FullTurnIsIdentity(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(2, 0, 0), 1.0)
	rotated := NewRotateY(sphere, 360)

	ray := core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))
	direct, directHit := sphere.Hit(ray, 0.001, 1000.0, testSampler())
	wrapped, wrappedHit := rotated.Hit(ray, 0.001, 1000.0, testSampler())

	if directHit != wrappedHit {
		t.Fatalf("hit disagreement: direct=%t rotated=%t", directHit, wrappedHit)
	}
	if !directHit {
		t.Fatal("expected both to hit")
	}
	if math.Abs(direct.T-wrapped.T) > 1e-9 {
		t.Errorf("t = %f, want %f", wrapped.T, direct.T)
	}
	if wrapped.Point.Subtract(direct.Point).Length() > 1e-6 {
		t.Errorf("hit point = %v, want %v", wrapped.Point, direct.Point)
	}
}

func TestRotateY_BoundingBox_CoversRotatedShape(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(2, 0, 0), 1.0)
	rotated := NewRotateY(sphere, 90)

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	// The rotated sphere sits at (0, 0, -2) with radius 1
	if !box.Contains(core.NewVec3(0, 0, -2)) {
		t.Errorf("box [%v, %v] does not contain the rotated center", box.Min, box.Max)
	}
}

func TestFlipFace_InvertsSidedness(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, testMaterial())
	flipped := NewFlipFace(rect)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	inner, isHit := rect.Hit(ray, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected inner hit")
	}
	outer, isHit := flipped.Hit(ray, 0.001, 1000.0, testSampler())
	if !isHit {
		t.Fatal("expected flipped hit")
	}

	if outer.FrontFace == inner.FrontFace {
		t.Error("FlipFace must invert the front-face flag")
	}
	if outer.T != inner.T || outer.Point != inner.Point {
		t.Error("FlipFace must not change the hit geometry")
	}
}
