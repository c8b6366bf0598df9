package renderer

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		tileSize  int
		wantTiles int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"partial edge tiles", 100, 100, 64, 4},
		{"single tile", 32, 32, 64, 1},
		{"tall strip", 10, 200, 64, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
			if len(tiles) != tt.wantTiles {
				t.Fatalf("got %d tiles, want %d", len(tiles), tt.wantTiles)
			}

			// Tiles cover the image exactly, without overlap
			covered := 0
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("tile %d has ID %d", i, tile.ID)
				}
				b := tile.Bounds
				if b.Min.X < 0 || b.Min.Y < 0 || b.Max.X > tt.width || b.Max.Y > tt.height {
					t.Errorf("tile %d bounds %v exceed the image", i, b)
				}
				if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx() > tt.tileSize || b.Dy() > tt.tileSize {
					t.Errorf("tile %d has bad dimensions %v", i, b)
				}
				if tile.Sampler == nil {
					t.Errorf("tile %d has no sampler", i)
				}
				covered += b.Dx() * b.Dy()
			}
			if covered != tt.width*tt.height {
				t.Errorf("tiles cover %d pixels, want %d", covered, tt.width*tt.height)
			}
		})
	}
}

func TestProgressiveRenderer_GetSamplesForPass(t *testing.T) {
	s := smallTestScene(t)

	config := DefaultProgressiveConfig()
	config.InitialSamples = 1
	config.MaxSamplesPerPixel = 50
	config.MaxPasses = 7

	pr, err := NewProgressiveRenderer(s, 16, 12, config)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer: %v", err)
	}

	// Pass 1 is the quick preview; the last pass reaches the cap; targets
	// never decrease.
	if got := pr.getSamplesForPass(1); got != 1 {
		t.Errorf("pass 1 target = %d, want 1", got)
	}
	if got := pr.getSamplesForPass(7); got != 50 {
		t.Errorf("final pass target = %d, want 50", got)
	}
	prev := 0
	for pass := 1; pass <= 7; pass++ {
		target := pr.getSamplesForPass(pass)
		if target < prev {
			t.Errorf("pass %d target %d is below pass %d target %d", pass, target, pass-1, prev)
		}
		prev = target
	}

	// A single pass takes everything at once
	config.MaxPasses = 1
	pr, err = NewProgressiveRenderer(s, 16, 12, config)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer: %v", err)
	}
	if got := pr.getSamplesForPass(1); got != 50 {
		t.Errorf("single-pass target = %d, want 50", got)
	}
}

func TestProgressiveRenderer_RenderProgressive(t *testing.T) {
	s := smallTestScene(t)

	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 4,
		MaxPasses:          2,
		MaxDepth:           5,
		NumWorkers:         2,
		Seed:               42,
	}
	pr, err := NewProgressiveRenderer(s, 16, 12, config)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer: %v", err)
	}

	passChan, tileChan, errChan := pr.RenderProgressive(context.Background(), RenderOptions{TileUpdates: true})

	// Drain tiles concurrently so the render never stalls on a full buffer
	tilesSeen := 0
	tilesDone := make(chan struct{})
	go func() {
		defer close(tilesDone)
		for range tileChan {
			tilesSeen++
		}
	}()

	var passes []PassResult
	for pass := range passChan {
		passes = append(passes, pass)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("RenderProgressive: %v", err)
	}
	<-tilesDone

	if len(passes) != 2 {
		t.Fatalf("got %d passes, want 2", len(passes))
	}
	for i, pass := range passes {
		if pass.PassNumber != i+1 {
			t.Errorf("pass %d has number %d", i, pass.PassNumber)
		}
		if pass.Image == nil {
			t.Fatalf("pass %d has no image", i)
		}
		bounds := pass.Image.Bounds()
		if bounds.Dx() != 16 || bounds.Dy() != 12 {
			t.Errorf("pass %d image is %dx%d, want 16x12", i, bounds.Dx(), bounds.Dy())
		}
	}

	if !passes[len(passes)-1].IsLast {
		t.Error("final pass is not marked as last")
	}

	// The final pass accumulated the full sample budget everywhere
	final := passes[len(passes)-1].Stats
	if final.TotalSamples != 16*12*4 {
		t.Errorf("final TotalSamples = %d, want %d", final.TotalSamples, 16*12*4)
	}
	if final.AverageSamples != 4.0 {
		t.Errorf("final AverageSamples = %f, want 4.0", final.AverageSamples)
	}

	if tilesSeen == 0 {
		t.Error("expected tile updates with TileUpdates enabled")
	}
}

// Tiny tiles produce far more tasks per pass than the worker count; the pool
// queues must absorb the whole pass or submission wedges against the workers.
func TestProgressiveRenderer_TinyTiles(t *testing.T) {
	s := smallTestScene(t)
	if err := s.SetDimensions(40, 40); err != nil {
		t.Fatalf("SetDimensions: %v", err)
	}

	config := ProgressiveConfig{
		TileSize:           4,
		InitialSamples:     1,
		MaxSamplesPerPixel: 1,
		MaxPasses:          1,
		MaxDepth:           5,
		NumWorkers:         2,
		Seed:               42,
	}
	pr, err := NewProgressiveRenderer(s, 40, 40, config)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer: %v", err)
	}
	if len(pr.tiles) != 100 {
		t.Fatalf("got %d tiles, want 100", len(pr.tiles))
	}

	done := make(chan error, 1)
	go func() {
		passChan, tileChan, errChan := pr.RenderProgressive(context.Background(), RenderOptions{})
		for range tileChan {
		}
		passes := 0
		for range passChan {
			passes++
		}
		if err := <-errChan; err != nil {
			done <- err
			return
		}
		if passes != 1 {
			done <- fmt.Errorf("got %d passes, want 1", passes)
			return
		}
		done <- nil
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("rendering with 4 pixel tiles: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("rendering with 4 pixel tiles on a 40x40 image did not complete")
	}
}

func TestProgressiveRenderer_Cancellation(t *testing.T) {
	s := smallTestScene(t)

	config := DefaultProgressiveConfig()
	config.MaxDepth = 5
	pr, err := NewProgressiveRenderer(s, 16, 12, config)
	if err != nil {
		t.Fatalf("NewProgressiveRenderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, tileChan, errChan := pr.RenderProgressive(ctx, RenderOptions{TileUpdates: false})

	for range tileChan {
	}
	for range passChan {
	}
	if err := <-errChan; err == nil {
		t.Error("expected a cancellation error")
	}
}

func TestProgressiveRenderer_Validation(t *testing.T) {
	s := smallTestScene(t)

	if _, err := NewProgressiveRenderer(s, 0, 12, DefaultProgressiveConfig()); err == nil {
		t.Error("expected an error for a zero width")
	}

	unprocessed := *s
	unprocessed.BVH = nil
	if _, err := NewProgressiveRenderer(&unprocessed, 16, 12, DefaultProgressiveConfig()); err == nil {
		t.Error("expected an error for a scene without a BVH")
	}
}
