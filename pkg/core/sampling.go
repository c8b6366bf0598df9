package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Randomness is threaded explicitly through camera, material and volume code
// so that workers stay independent and tests can seed it.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a deterministic sampler from a seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SamplePointInUnitSphere maps three uniform samples to a point inside the
// unit sphere using the inverse CDF method (no rejection loop).
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	// r = ∛(u₁) accounts for volume scaling, cos(θ) uniform on [-1,1]
	r := math.Pow(sample.X, 1.0/3.0)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	x := r * sinTheta * math.Cos(phi)
	y := r * sinTheta * math.Sin(phi)
	z := r * cosTheta

	return NewVec3(x, y, z)
}

// SampleOnUnitSphere maps two uniform samples to a uniform direction on the
// unit sphere.
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SamplePointInUnitDisk maps two uniform samples to a point in the unit disk
// using concentric mapping (no rejection loop). Used for lens sampling.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
