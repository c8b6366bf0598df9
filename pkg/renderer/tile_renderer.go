package renderer

import (
	"image"

	"github.com/strohs/raytracer/pkg/core"
	"github.com/strohs/raytracer/pkg/integrator"
	"github.com/strohs/raytracer/pkg/scene"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
	Sampler         core.Sampler    // Tile-specific sampler for deterministic results
}

// NewTile creates a new tile with the specified bounds. Each tile gets its
// own sampler seeded from the base seed and the tile ID, so results do not
// depend on which worker picks the tile up.
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := minInt(x0+tileSize, width)
			y1 := minInt(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles of a progressive render
type TileRenderer struct {
	scene      *scene.Scene
	integrator *integrator.PathTracer
	width      int
	height     int
	maxDepth   int
}

// NewTileRenderer creates a tile renderer for the given scene
func NewTileRenderer(s *scene.Scene, width, height, maxDepth int) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integrator.NewPathTracer(s),
		width:      width,
		height:     height,
		maxDepth:   maxDepth,
	}
}

// RenderBounds accumulates samples for every pixel inside bounds until each
// reaches targetSamples. Tiles have non-overlapping bounds, so concurrent
// calls on the shared stats array never touch the same pixel.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) PassStats {
	stats := PassStats{
		TotalPixels:   bounds.Dx() * bounds.Dy(),
		TargetSamples: targetSamples,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			tr.samplePixel(x, y, ps, sampler, targetSamples)
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// samplePixel takes samples for one pixel until it reaches targetSamples
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler, targetSamples int) {
	for ps.SampleCount < targetSamples {
		ray := pixelRay(tr.scene.Camera, x, y, tr.width, tr.height, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, sampler, tr.maxDepth))
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
