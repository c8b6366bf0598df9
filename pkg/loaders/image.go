package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"golang.org/x/image/draw"

	"github.com/strohs/raytracer/pkg/core"
)

// Textures above this dimension are downscaled before sampling; nearest
// neighbor lookups gain nothing from more resolution than the render target.
const maxTextureDim = 2048

// ImageData contains decoded image data as a Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to a Vec3 color array,
// downscaling oversized images to maxTextureDim on their longest side.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	img = capTextureSize(img)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// capTextureSize downscales images whose longest side exceeds maxTextureDim,
// preserving aspect ratio.
func capTextureSize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxTextureDim {
		return img
	}

	scale := float64(maxTextureDim) / float64(longest)
	dstWidth := int(float64(width) * scale)
	dstHeight := int(float64(height) * scale)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
