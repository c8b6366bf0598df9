package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"net/http"
	"time"

	"github.com/strohs/raytracer/pkg/renderer"
	"github.com/strohs/raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Preset scene name
	Width      int    `json:"width"`      // Image width
	Height     int    `json:"height"`     // Image height
	MaxSamples int    `json:"maxSamples"` // Maximum samples per pixel
	MaxPasses  int    `json:"maxPasses"`  // Maximum number of passes
	Seed       int64  `json:"seed"`       // Base seed for scene assembly and sampling
}

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX       int    `json:"tileX"`
	TileY       int    `json:"tileY"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG of just this tile
	PassNumber  int    `json:"passNumber"`
	TileNumber  int    `json:"tileNumber"`  // Current tile number in this pass (1-based)
	TotalTiles  int    `json:"totalTiles"`  // Total number of tiles in the image
	TotalPasses int    `json:"totalPasses"` // Total number of passes planned
}

// PassUpdate represents a completed pass sent via SSE
type PassUpdate struct {
	PassNumber     int     `json:"passNumber"`
	TotalPasses    int     `json:"totalPasses"`
	ImageData      string  `json:"imageData"` // Base64 encoded PNG of the full frame
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	IsComplete     bool    `json:"isComplete"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// SSEEvent is a unified SSE event so a single goroutine owns the response
// writer
type SSEEvent struct {
	Type string // "tile", "passComplete", "error", "complete"
	Data string
}

// handleRender handles progressive rendering with real-time tile streaming
// via SSE. The request context cancels the render when the client
// disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	setSSEHeaders(w)

	ctx := r.Context()
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		writeSSEEvents(ctx, w, sseEventChan)
	}()

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: fmt.Sprintf("invalid request: %v", err)})
		close(sseEventChan)
		<-writerDone
		return
	}

	pr, err := s.setupProgressiveRenderer(req)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
		close(sseEventChan)
		<-writerDone
		return
	}

	startTime := time.Now()
	passChan, tileChan, errChan := pr.RenderProgressive(ctx, renderer.RenderOptions{TileUpdates: true})

	s.streamRenderEvents(ctx, sseEventChan, passChan, tileChan, errChan, req, startTime)
	close(sseEventChan)
	<-writerDone
}

// setupProgressiveRenderer builds and preprocesses the requested scene and
// wraps it in a progressive renderer
func (s *Server) setupProgressiveRenderer(req *RenderRequest) (*renderer.ProgressiveRenderer, error) {
	sc, err := scene.Build(req.Scene, scene.Options{
		Random:      rand.New(rand.NewSource(req.Seed)),
		TexturePath: s.config.TexturePath,
	})
	if err != nil {
		return nil, err
	}

	if err := sc.SetDimensions(req.Width, req.Height); err != nil {
		return nil, err
	}
	if err := sc.Preprocess(); err != nil {
		return nil, err
	}

	config := renderer.DefaultProgressiveConfig()
	config.MaxSamplesPerPixel = req.MaxSamples
	config.MaxPasses = req.MaxPasses
	config.MaxDepth = sc.Sampling.MaxDepth
	config.Seed = req.Seed

	return renderer.NewProgressiveRenderer(sc, req.Width, req.Height, config)
}

// streamRenderEvents forwards pass, tile and error events to the SSE channel
func (s *Server) streamRenderEvents(ctx context.Context, sseEventChan chan SSEEvent,
	passChan <-chan renderer.PassResult, tileChan <-chan renderer.TileCompletionResult, errChan <-chan error,
	req *RenderRequest, startTime time.Time) {

	for passChan != nil || tileChan != nil {
		select {
		case passResult, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			s.sendPassUpdate(ctx, sseEventChan, passResult, req, startTime)

		case tileResult, ok := <-tileChan:
			if !ok {
				tileChan = nil
				continue
			}
			s.sendTileUpdate(ctx, sseEventChan, tileResult)

		case err := <-errChan:
			if err != nil {
				s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: fmt.Sprintf("rendering failed: %v", err)})
				return
			}
			// errChan closed, rendering completed

		case <-ctx.Done():
			return
		}
	}

	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: "rendering completed"})
}

// sendPassUpdate encodes and sends a completed pass
func (s *Server) sendPassUpdate(ctx context.Context, sseEventChan chan SSEEvent, passResult renderer.PassResult, req *RenderRequest, startTime time.Time) {
	imageData, err := imageToBase64PNG(passResult.Image)
	if err != nil {
		logger.Errorf("encoding pass %d image: %v", passResult.PassNumber, err)
		return
	}

	update := PassUpdate{
		PassNumber:     passResult.PassNumber,
		TotalPasses:    req.MaxPasses,
		ImageData:      imageData,
		TotalPixels:    passResult.Stats.TotalPixels,
		TotalSamples:   passResult.Stats.TotalSamples,
		AverageSamples: passResult.Stats.AverageSamples,
		IsComplete:     passResult.IsLast,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		logger.Errorf("marshaling pass update: %v", err)
		return
	}

	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "passComplete", Data: string(data)})
}

// sendTileUpdate encodes and sends a completed tile
func (s *Server) sendTileUpdate(ctx context.Context, sseEventChan chan SSEEvent, tileResult renderer.TileCompletionResult) {
	tileData, err := imageToBase64PNG(tileResult.TileImage)
	if err != nil {
		logger.Errorf("encoding tile (%d, %d): %v", tileResult.TileX, tileResult.TileY, err)
		return
	}

	update := TileUpdate{
		TileX:       tileResult.TileX,
		TileY:       tileResult.TileY,
		ImageData:   tileData,
		PassNumber:  tileResult.PassNumber,
		TileNumber:  tileResult.TileNumber,
		TotalTiles:  tileResult.TotalTiles,
		TotalPasses: tileResult.TotalPasses,
	}

	data, err := json.Marshal(update)
	if err != nil {
		logger.Errorf("marshaling tile update: %v", err)
		return
	}

	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "tile", Data: string(data)})
}

// sendEvent queues an event without blocking a disconnected client
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

// writeSSEEvents writes all SSE events from a single goroutine
func writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// setSSEHeaders sets the required headers for server-sent events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// parseRenderRequest parses and validates request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "cornell-box"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.MaxSamples, err = parseIntParam(r.URL.Query(), "maxSamples", 50, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(r.URL.Query(), "maxPasses", 7, 1, 10000); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(r.URL.Query(), "seed", 42); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 800*600 && req.MaxSamples > 100 {
		logger.Warningf("large image with high samples may render slowly")
	}

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
