package material

import (
	"math"
	"math/rand"

	"github.com/strohs/raytracer/pkg/core"
)

// CheckerTexture alternates between two sub-textures in a 3D checker pattern
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker texture from two sub-textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate selects a sub-texture based on the sign of a 3D sine product
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

const perlinPointCount = 256

// Perlin generates gradient noise from precomputed permutation tables
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin creates a Perlin noise generator seeded by the given random source
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		v := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		p.randVec[i] = v.Normalize()
	}
	generatePerm(random, &p.permX)
	generatePerm(random, &p.permY)
	generatePerm(random, &p.permZ)
	return p
}

func generatePerm(random *rand.Rand, perm *[perlinPointCount]int) {
	for i := 0; i < perlinPointCount; i++ {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise in [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// perlinInterp performs Hermitian-smoothed trilinear gradient interpolation
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence returns a sum of noise octaves with halving weight and
// doubling frequency, as an absolute value.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	temp := point

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// NoiseTexture produces a marble-like procedural pattern from Perlin noise
type NoiseTexture struct {
	perlin *Perlin
	Scale  float64
}

// NewNoiseTexture creates a marble noise texture with the given frequency scale
func NewNoiseTexture(random *rand.Rand, scale float64) *NoiseTexture {
	return &NoiseTexture{perlin: NewPerlin(random), Scale: scale}
}

// Evaluate maps turbulence-perturbed sine bands onto white
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.perlin.Turbulence(point, 7)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}
