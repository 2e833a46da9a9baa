package render

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	mandel "github.com/marben/mandel_viewer"
)

const DefaultTileSize = 64

// Tiled renders frames on the CPU. The frame is split into square tiles and
// a pool of goroutines pulls tiles until none are left; RenderFrame returns
// only after every tile is written.
//
// A Tiled renders one frame at a time; give each session its own.
type Tiled struct {
	Workers  int
	TileSize int
	Palette  mandel.Palette

	// tiles of the last rendered bounds, reused while the viewport is unchanged
	bounds   image.Rectangle
	tileSize int
	tiles    []image.Rectangle
}

// New returns a renderer with workers goroutines (NumCPU when <= 0) and
// tileSize pixel tiles (DefaultTileSize when <= 0).
func New(workers, tileSize int) *Tiled {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tiled{Workers: workers, TileSize: tileSize, Palette: mandel.DefaultPalette}
}

var _ mandel.Renderer = (*Tiled)(nil)

// RenderFrame implements mandel.Renderer.
func (t *Tiled) RenderFrame(p mandel.FrameParams, img *image.RGBA) error {
	return t.Render(context.Background(), p, img)
}

// Render is RenderFrame with cancellation between tiles. A zero TileSize
// renders with DefaultTileSize.
func (t *Tiled) Render(ctx context.Context, p mandel.FrameParams, img *image.RGBA) error {
	vp := p.Viewport
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d", mandel.ErrInvalidViewport, vp.Width, vp.Height)
	}
	if want := image.Rect(0, 0, vp.Width, vp.Height); img.Rect != want {
		return fmt.Errorf("%w: image bounds %s, viewport %s", mandel.ErrInvalidViewport, img.Rect, want)
	}

	ts := t.TileSize
	if ts <= 0 {
		ts = DefaultTileSize
	}
	if t.tiles == nil || t.bounds != img.Rect || t.tileSize != ts {
		t.bounds, t.tileSize = img.Rect, ts
		t.tiles = splitRectNoClip(img.Rect, ts, ts)
	}
	s := frameScheduler{ctx: ctx, tiles: t.tiles}

	var wg sync.WaitGroup
	for range max(1, min(t.Workers, len(t.tiles))) {
		wg.Go(func() {
			for {
				tile, found := s.popTile()
				if !found {
					return
				}
				RenderTile(p, t.Palette, tile, img)
			}
		})
	}
	wg.Wait()

	return context.Cause(ctx)
}

// RenderTile shades every pixel of tile into img.
func RenderTile(p mandel.FrameParams, pal mandel.Palette, tile image.Rectangle, img *image.RGBA) {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			c := mandel.Shade(p, pal, x, y)
			i := img.PixOffset(x, y)
			s := img.Pix[i : i+4 : i+4]
			s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
		}
	}
}

// frameScheduler hands out the tiles of one frame to workers.
type frameScheduler struct {
	ctx   context.Context
	tiles []image.Rectangle

	m    sync.Mutex
	next int
}

func (s *frameScheduler) popTile() (tile image.Rectangle, found bool) {
	if s.ctx.Err() != nil {
		return image.Rectangle{}, false
	}

	s.m.Lock()
	defer s.m.Unlock()

	if s.next >= len(s.tiles) {
		return image.Rectangle{}, false
	}
	tile = s.tiles[s.next]
	s.next++
	return tile, true
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
