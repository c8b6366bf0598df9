package renderer

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/strohs/raytracer/log"
	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/geometry"
	"github.com/strohs/raytracer/pkg/integrator"
	"github.com/strohs/raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Pixels whose estimate comes out non-finite, or whose row panicked, are
// written as magenta so faults stay visible without aborting the render.
var sentinelColor = core.NewVec3(1, 0, 1)

// Config contains the rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for per-row deterministic samplers
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("image height must be positive, got %d", c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// workers returns the effective worker count
func (c Config) workers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	return runtime.NumCPU()
}

// Renderer runs a one-shot parallel render of a scene
type Renderer struct {
	scene      *scene.Scene
	config     Config
	integrator *integrator.PathTracer
}

// NewRenderer creates a renderer for the given scene. The scene must already
// be preprocessed; the configuration is validated here so an invalid render
// never starts.
func NewRenderer(s *scene.Scene, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s.BVH == nil {
		return nil, fmt.Errorf("scene has not been preprocessed")
	}
	return &Renderer{
		scene:      s,
		config:     config,
		integrator: integrator.NewPathTracer(s),
	}, nil
}

// rowBand is a contiguous range of image rows owned by one worker
type rowBand struct {
	start int // First row (inclusive)
	end   int // Last row (exclusive)
}

// partitionRows splits height rows into at most workerCount contiguous bands
// covering every row exactly once, spreading the remainder across the first
// bands.
func partitionRows(height, workerCount int) []rowBand {
	if workerCount > height {
		workerCount = height
	}
	bands := make([]rowBand, 0, workerCount)

	rowsPerBand := height / workerCount
	remainder := height % workerCount

	start := 0
	for i := 0; i < workerCount; i++ {
		size := rowsPerBand
		if i < remainder {
			size++
		}
		bands = append(bands, rowBand{start: start, end: start + size})
		start += size
	}

	return bands
}

// Render traces the whole image and returns the finished buffer. Workers own
// disjoint row bands of the shared buffer, so no synchronization is needed
// beyond joining them. Every row uses a sampler seeded from the config seed
// and the row index, so output is identical for any worker count. A render
// runs to completion once started.
func (r *Renderer) Render() (*Image, *RenderStats, error) {
	img := NewImage(r.config.Width, r.config.Height)
	bands := partitionRows(r.config.Height, r.config.workers())

	stats := &RenderStats{
		Width:           r.config.Width,
		Height:          r.config.Height,
		SamplesPerPixel: r.config.SamplesPerPixel,
		PerWorker:       make([]WorkerStats, len(bands)),
	}

	logger.Infof("rendering %dx%d at %d spp with %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, len(bands))

	startTime := time.Now()
	var group errgroup.Group
	for i, band := range bands {
		worker, band := i, band
		group.Go(func() error {
			ws := &stats.PerWorker[worker]
			ws.Worker = worker
			workerStart := time.Now()

			for y := band.start; y < band.end; y++ {
				r.renderRow(img, y, ws)
				ws.Rows++
			}

			ws.Duration = time.Since(workerStart)
			return nil
		})
	}

	// Workers never return errors; faults are recovered per row
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	stats.Elapsed = time.Since(startTime)

	if faults := stats.TotalFaults(); faults > 0 {
		logger.Warningf("render completed with %d faulted pixels", faults)
	}

	return img, stats, nil
}

// renderRow traces every pixel of one row. A panic anywhere in the row is
// recovered: the remaining pixels get the sentinel color and rendering moves
// on to the next row.
func (r *Renderer) renderRow(img *Image, y int, ws *WorkerStats) {
	sampler := core.NewSeededSampler(r.config.Seed + int64(y))
	x := 0

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Errorf("worker %d: fault in row %d at pixel %d: %v", ws.Worker, y, x, recovered)
			for ; x < img.Width; x++ {
				img.Set(x, y, sentinelColor)
				ws.Faults++
				ws.Pixels++
			}
		}
	}()

	for ; x < img.Width; x++ {
		img.Set(x, y, r.renderPixel(x, y, sampler, ws))
		ws.Pixels++
	}
}

// renderPixel averages jittered samples for one pixel and converts the
// estimate to a display color.
func (r *Renderer) renderPixel(x, y int, sampler core.Sampler, ws *WorkerStats) core.Vec3 {
	accum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
		ray := pixelRay(r.scene.Camera, x, y, r.config.Width, r.config.Height, sampler)
		accum = accum.Add(r.integrator.RayColor(ray, sampler, r.config.MaxDepth))
	}

	average := accum.Multiply(1.0 / float64(r.config.SamplesPerPixel))
	if !average.IsFinite() {
		ws.Faults++
		return sentinelColor
	}

	return average.GammaCorrect(2.0).Clamp(0.0, 1.0)
}

// pixelRay maps pixel (x, y) plus a random jitter inside the pixel footprint
// to a camera ray. Image row 0 is the top of the frame while the camera's t
// axis points up, so the row index is flipped.
func pixelRay(camera *geometry.Camera, x, y, width, height int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	s := (float64(x) + jitter.X) / float64(maxInt(width-1, 1))
	t := (float64(height-1-y) + jitter.Y) / float64(maxInt(height-1, 1))
	return camera.GetRay(s, t, sampler)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
