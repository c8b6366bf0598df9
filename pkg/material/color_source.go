package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns the color at given UV coordinates and 3D point.
	// UV is used for image textures, the point for procedural textures.
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}
