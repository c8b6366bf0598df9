package scene

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Background supplies the radiance for rays that escape the scene
type Background interface {
	At(ray core.Ray) core.Vec3
}

// SolidBackground returns a constant color; lit scenes use black
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a constant-color background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// At returns the background color regardless of ray direction
func (b *SolidBackground) At(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically between two colors, the ambient sky
// used by scenes without explicit lights.
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// At blends on the unit direction's Y component, mapped from [-1,1] to [0,1]
func (b *GradientBackground) At(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// NewSkyBackground returns the classic white-to-blue sky gradient
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}
