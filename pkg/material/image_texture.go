package material

import (
	"github.com/strohs/raytracer/pkg/core"
)

// Missing image data reads as cyan so the problem shows up in the frame
// instead of failing silently.
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture samples a decoded image with nearest-neighbor lookups. UVs
// wrap outside [0,1); v runs bottom-up while pixel rows run top-down.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates an image texture over a row-major pixel grid
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate returns the pixel under the wrapped UV coordinate
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		return missingImageColor
	}

	u := wrapUnit(uv.X)
	v := wrapUnit(uv.Y)

	// Flip v: texture space grows upward, pixel rows grow downward
	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int((1.0-v)*float64(t.Height)), t.Height)

	return t.Pixels[y*t.Width+x]
}

// wrapUnit maps a coordinate into [0,1) by discarding whole tile repeats
func wrapUnit(f float64) float64 {
	f -= float64(int(f))
	if f < 0 {
		f++
	}
	return f
}

// clampIndex bounds a pixel index to [0,n); the flipped v axis lands on
// exactly n at v=0
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
