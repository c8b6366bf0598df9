package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/strohs/raytracer/pkg/scene"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int   // Size of each tile (64x64 recommended)
	InitialSamples     int   // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int   // Maximum total samples per pixel
	MaxPasses          int   // Maximum number of passes
	MaxDepth           int   // Maximum ray bounce depth
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base seed for per-tile samplers
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 50,
		MaxPasses:          7, // 1 then even increments up to the sample cap
		MaxDepth:           50,
		NumWorkers:         0,
		Seed:               42,
	}
}

// ProgressiveRenderer refines an image over multiple passes, distributing
// samples across tiles rendered by a worker pool
type ProgressiveRenderer struct {
	scene         *scene.Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	currentPass   int
	pixelStats    [][]PixelStats // Shared, global image coordinates
	workerPool    *WorkerPool
}

// NewProgressiveRenderer creates a progressive renderer for a preprocessed
// scene
func NewProgressiveRenderer(s *scene.Scene, width, height int, config ProgressiveConfig) (*ProgressiveRenderer, error) {
	if s.BVH == nil {
		return nil, fmt.Errorf("scene has not been preprocessed")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = 50
	}

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	// The queues hold a full pass of tasks; RenderPass submits every tile
	// before draining a single result.
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	return &ProgressiveRenderer{
		scene:      s,
		width:      width,
		height:     height,
		config:     config,
		tiles:      tiles,
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(s, width, height, config.MaxDepth, config.NumWorkers, len(tiles)),
	}, nil
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRenderer) getSamplesForPass(passNumber int) int {
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// The final pass takes whatever is left
	if passNumber == pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// RenderPass renders a single progressive pass using the worker pool
func (pr *ProgressiveRenderer) RenderPass(passNumber int, tileCallback func(TileCompletionResult)) (*image.RGBA, PassStats, error) {
	pr.currentPass = passNumber
	targetSamples := pr.getSamplesForPass(passNumber)

	logger.Infof("pass %d: target %d samples per pixel (%d workers)",
		passNumber, targetSamples, pr.workerPool.NumWorkers())

	if passNumber == 1 {
		pr.workerPool.Start()
	}

	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	// Collect results and dispatch tile callbacks from this goroutine only
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, PassStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, PassStats{}, result.Error
		}

		tile := pr.tiles[result.TaskID]
		tile.PassesCompleted++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:       tile.Bounds.Min.X / pr.config.TileSize,
				TileY:       tile.Bounds.Min.Y / pr.config.TileSize,
				TileImage:   pr.extractTileImage(tile),
				PassNumber:  passNumber,
				TileNumber:  i + 1,
				TotalTiles:  len(pr.tiles),
				TotalPasses: pr.config.MaxPasses,
			})
		}
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// extractTileImage extracts a tile image from the shared pixel stats array
func (pr *ProgressiveRenderer) extractTileImage(tile *Tile) *image.RGBA {
	bounds := tile.Bounds
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pr.pixelStats[y][x]
			if ps.SampleCount > 0 {
				tileImage.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, Vec3ToColor(ps.Color()))
			}
		}
	}

	return tileImage
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      PassStats
	IsLast     bool
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX      int // Tile coordinates (not pixel coordinates)
	TileY      int
	TileImage  *image.RGBA // Image data for just this tile
	PassNumber int         // Which pass this tile was rendered in

	// Progress information
	TileNumber  int // Current tile number in this pass (1-based)
	TotalTiles  int // Total number of tiles in the image
	TotalPasses int // Total number of passes planned
}

// RenderOptions configures progressive rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// RenderProgressive renders with channel-based communication. The caller
// reads pass results, tile updates, and errors from the returned channels.
// If options.TileUpdates is false the tile channel is closed immediately.
// Cancelling the context stops the render between passes.
func (pr *ProgressiveRenderer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100)
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)
		defer pr.workerPool.Stop()

		logger.Infof("starting progressive render, %d passes", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				logger.Infof("render cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			var tileCallback func(TileCompletionResult)
			if options.TileUpdates {
				tileCallback = func(result TileCompletionResult) {
					select {
					case tileChan <- result:
					case <-ctx.Done():
					default:
						// Channel full, drop the update
					}
				}
			}

			img, stats, err := pr.RenderPass(pass, tileCallback)
			if err != nil {
				errChan <- err
				return
			}

			passTime := time.Since(startTime)
			actualSamples := int(stats.AverageSamples)

			logger.Infof("pass %d completed in %v (%d samples/pixel)", pass, passTime, actualSamples)

			isLast := pass == pr.config.MaxPasses || actualSamples >= pr.config.MaxSamplesPerPixel
			select {
			case passChan <- PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     isLast,
			}:
			case <-ctx.Done():
				return
			}

			if actualSamples >= pr.config.MaxSamplesPerPixel {
				logger.Infof("reached maximum samples per pixel (%d), stopping", pr.config.MaxSamplesPerPixel)
				break
			}
		}
	}()

	return passChan, tileChan, errChan
}

// assembleCurrentImage creates an image from the current pixel stats and
// calculates pass statistics in a single sweep
func (pr *ProgressiveRenderer) assembleCurrentImage(targetSamples int) (*image.RGBA, PassStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))

	stats := PassStats{
		TotalPixels:   pr.width * pr.height,
		TargetSamples: targetSamples,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, Vec3ToColor(pixel.Color()))
			stats.TotalSamples += pixel.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}
