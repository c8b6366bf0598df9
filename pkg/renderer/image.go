package renderer

import (
	"image"
	"image/color"

	"github.com/strohs/raytracer/pkg/core"
)

// Image is the render target: a row-major grid of final [0,1] colors.
// During rendering each pixel is written by exactly one worker; afterwards
// ownership passes to an encoder.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImage creates a zeroed image buffer
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set writes the color at pixel (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// ToRGBA converts the buffer to a standard library image for encoding.
// Pixels are expected to already be gamma-corrected and clamped.
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return rgba
}

// Vec3ToColor converts a raw accumulated color to a display color with
// gamma-2 correction and clamping.
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
