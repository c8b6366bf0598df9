package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/strohs/raytracer/pkg/core"
)

func TestSolidColor_Evaluate(t *testing.T) {
	tex := NewSolidColor(core.NewVec3(0.1, 0.2, 0.3))

	// The same color everywhere, regardless of UV or position
	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(100, -50, 3),
	}
	for _, p := range points {
		if got := tex.Evaluate(core.NewVec2(0.7, 0.1), p); got != core.NewVec3(0.1, 0.2, 0.3) {
			t.Errorf("Evaluate(%v) = %v, want the solid color", p, got)
		}
	}
}

func TestCheckerTexture_Evaluate(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	tex := NewCheckerColors(even, odd)

	uv := core.NewVec2(0, 0)

	// sin(10x)sin(10y)sin(10z) is positive at (0.05, 0.05, 0.05)
	if got := tex.Evaluate(uv, core.NewVec3(0.05, 0.05, 0.05)); got != even {
		t.Errorf("positive sine product gave %v, want the even color", got)
	}

	// Flipping one coordinate's sign flips the sine product's sign
	if got := tex.Evaluate(uv, core.NewVec3(-0.05, 0.05, 0.05)); got != odd {
		t.Errorf("negative sine product gave %v, want the odd color", got)
	}
}

func TestPerlin_Noise_Deterministic(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(42)))
	b := NewPerlin(rand.New(rand.NewSource(42)))

	points := []core.Vec3{
		core.NewVec3(0.3, 1.7, -2.1),
		core.NewVec3(10.5, 0.1, 4.4),
		core.NewVec3(-3.3, -7.9, 0.6),
	}
	for _, p := range points {
		if a.Noise(p) != b.Noise(p) {
			t.Errorf("same seed produced different noise at %v", p)
		}
	}
}

func TestPerlin_Noise_Range(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(1)))
	random := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		n := perlin.Noise(p)
		if n < -1.0 || n > 1.0 {
			t.Fatalf("Noise(%v) = %f, want a value in [-1, 1]", p, n)
		}
	}
}

func TestPerlin_Turbulence_NonNegative(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(1)))
	random := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		if turb := perlin.Turbulence(p, 7); turb < 0 {
			t.Fatalf("Turbulence(%v) = %f, want non-negative", p, turb)
		}
	}
}

func TestNoiseTexture_Evaluate_Range(t *testing.T) {
	tex := NewNoiseTexture(rand.New(rand.NewSource(1)), 4.0)
	random := rand.New(rand.NewSource(4))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		c := tex.Evaluate(core.NewVec2(0, 0), p)
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Evaluate(%v) = %v, want a gray value in [0, 1]", p, c)
		}
	}
}

func TestImageTexture_Evaluate(t *testing.T) {
	// 2x2 image: top row red green, bottom row blue white
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)
	tex := NewImageTexture(2, 2, []core.Vec3{red, green, blue, white})

	tests := []struct {
		name string
		uv   core.Vec2
		want core.Vec3
	}{
		{"bottom left", core.NewVec2(0.25, 0.25), blue},
		{"bottom right", core.NewVec2(0.75, 0.25), white},
		{"top left", core.NewVec2(0.25, 0.75), red},
		{"top right", core.NewVec2(0.75, 0.75), green},
		{"wraps beyond 1", core.NewVec2(1.25, 0.75), red},
		{"wraps below 0", core.NewVec2(-0.75, 0.75), red},
		{"clamps the v=0 edge", core.NewVec2(0.25, 0), blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Evaluate(tt.uv, core.NewVec3(0, 0, 0)); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestImageTexture_Evaluate_MissingData(t *testing.T) {
	tex := NewImageTexture(0, 0, nil)

	want := core.NewVec3(0, 1, 1)
	if got := tex.Evaluate(core.NewVec2(0.5, 0.5), core.NewVec3(0, 0, 0)); got != want {
		t.Errorf("empty texture gave %v, want cyan %v", got, want)
	}
}

func TestCheckerTexture_NestedTextures(t *testing.T) {
	inner := NewNoiseTexture(rand.New(rand.NewSource(1)), 1.0)
	tex := NewCheckerTexture(inner, NewSolidColor(core.NewVec3(0, 0, 0)))

	// Positive cell evaluates the nested texture
	got := tex.Evaluate(core.NewVec2(0, 0), core.NewVec3(0.05, 0.05, 0.05))
	if got.X < 0 || got.X > 1 {
		t.Errorf("nested texture value %v outside [0, 1]", got)
	}
	if math.IsNaN(got.X) {
		t.Error("nested texture produced NaN")
	}
}
