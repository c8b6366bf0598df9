package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a PNG with the given pixel grid and returns its path
func writeTestPNG(t *testing.T, pixels [][]color.RGBA) string {
	t.Helper()

	height := len(pixels)
	width := len(pixels[0])
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pixels[y][x])
		}
	}

	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writeTestPNG(t, [][]color.RGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	})

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if data.Width != 2 || data.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", data.Width, data.Height)
	}
	if len(data.Pixels) != 4 {
		t.Fatalf("got %d pixels, want 4", len(data.Pixels))
	}

	tests := []struct {
		x, y    int
		r, g, b float64
	}{
		{0, 0, 1, 0, 0},
		{1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
	const tolerance = 1e-3
	for _, tt := range tests {
		p := data.Pixels[tt.y*data.Width+tt.x]
		if math.Abs(p.X-tt.r) > tolerance || math.Abs(p.Y-tt.g) > tolerance || math.Abs(p.Z-tt.b) > tolerance {
			t.Errorf("pixel (%d,%d) = %v, want (%v, %v, %v)", tt.x, tt.y, p, tt.r, tt.g, tt.b)
		}
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "no-such-file.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected a decode error")
	}
}

func TestCapTextureSize(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if got := capTextureSize(small); got != small {
		t.Error("small images should pass through unchanged")
	}

	wide := image.NewRGBA(image.Rect(0, 0, maxTextureDim*2, maxTextureDim/2))
	capped := capTextureSize(wide)
	bounds := capped.Bounds()
	if bounds.Dx() != maxTextureDim {
		t.Errorf("capped width = %d, want %d", bounds.Dx(), maxTextureDim)
	}
	if bounds.Dy() != maxTextureDim/4 {
		t.Errorf("capped height = %d, want %d", bounds.Dy(), maxTextureDim/4)
	}
}
