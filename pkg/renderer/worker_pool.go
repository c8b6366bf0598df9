package renderer

import (
	"runtime"
	"sync"

	"github.com/strohs/raytracer/pkg/scene"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int            // For deterministic ordering
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  PassStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*tileWorker
	numWorkers  int
	wg          sync.WaitGroup
}

// tileWorker handles individual tile rendering tasks
type tileWorker struct {
	id          int
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Each worker gets its own tile renderer so they share no mutable state
// beyond the pixel stats array. queueDepth must be at least the number of
// tasks submitted per pass, so a full pass can be queued before any result
// is drained.
func NewWorkerPool(s *scene.Scene, width, height, maxDepth, numWorkers, queueDepth int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueDepth),
		resultQueue: make(chan TileResult, queueDepth),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &tileWorker{
			id:          i,
			renderer:    NewTileRenderer(s, width, height, maxDepth),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *tileWorker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		stats := w.renderer.RenderBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Sampler, task.TargetSamples)
		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
}
