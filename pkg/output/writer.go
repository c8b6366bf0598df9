// Package output encodes finished render buffers to image files.
package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/strohs/raytracer/pkg/renderer"
)

// WriteFile writes the image to path, choosing the encoding from the file
// extension. ".ppm" writes plain-text PPM; ".png" writes PNG.
func WriteFile(path string, img *renderer.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return WritePPM(path, img)
	case ".png":
		return WritePNG(path, img)
	default:
		return fmt.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}
}

// WritePPM writes the image as a plain-text (P3) PPM file
func WritePPM(path string, img *renderer.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodePPM(w, img); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// EncodePPM writes the P3 header followed by one "r g b" line per pixel in
// row-major order. Pixel colors are expected to already be in [0,1].
func EncodePPM(w *bufio.Writer, img *renderer.Image) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			r := int(255 * c.X)
			g := int(255 * c.Y)
			b := int(255 * c.Z)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRGBAFile writes an already-quantized image (such as a progressive pass
// result) to path, choosing the encoding from the file extension.
func WriteRGBAFile(path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return writeRGBAPPM(path, img)
	case ".png":
		return writeRGBAPNG(path, img)
	default:
		return fmt.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}
}

func writeRGBAPPM(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeRGBAPNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// WritePNG writes the image as a PNG file
func WritePNG(path string, img *renderer.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img.ToRGBA()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
