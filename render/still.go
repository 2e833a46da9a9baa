package render

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	mandel "github.com/marben/mandel_viewer"
	xdraw "golang.org/x/image/draw"
)

// Still renders a single image of p. With supersample k > 1 the frame is
// evaluated at k times the resolution and filtered down to p.Viewport.
func (t *Tiled) Still(ctx context.Context, p mandel.FrameParams, supersample int) (*image.RGBA, error) {
	if supersample < 1 {
		return nil, fmt.Errorf("supersample must be at least 1, got %d", supersample)
	}
	vp := p.Viewport
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", mandel.ErrInvalidViewport, vp.Width, vp.Height)
	}

	big := p
	big.Viewport = mandel.Viewport{Width: vp.Width * supersample, Height: vp.Height * supersample}
	src := image.NewRGBA(image.Rect(0, 0, big.Viewport.Width, big.Viewport.Height))
	if err := t.Render(ctx, big, src); err != nil {
		return nil, err
	}
	if supersample == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Stills serves single renders to remote clients. Requests share one Tiled
// and run one at a time.
type Stills struct {
	// Limit bounds the requested output size.
	Limit          mandel.Viewport
	MaxSupersample int

	mu sync.Mutex
	t  *Tiled
}

func NewStills(t *Tiled, limit mandel.Viewport, maxSupersample int) *Stills {
	return &Stills{Limit: limit, MaxSupersample: max(1, maxSupersample), t: t}
}

var _ mandel.Snapshotter = (*Stills)(nil)

// Snapshot implements mandel.Snapshotter.
func (s *Stills) Snapshot(ctx context.Context, v mandel.ViewState, vp mandel.Viewport, supersample int) (image.RGBA, error) {
	if vp.Width > s.Limit.Width || vp.Height > s.Limit.Height {
		return image.RGBA{}, fmt.Errorf("%w: %dx%d exceeds %dx%d", mandel.ErrInvalidViewport, vp.Width, vp.Height, s.Limit.Width, s.Limit.Height)
	}
	if supersample > s.MaxSupersample {
		return image.RGBA{}, fmt.Errorf("supersample %d exceeds %d", supersample, s.MaxSupersample)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	img, err := s.t.Still(ctx, mandel.Params(v, vp), supersample)
	if err != nil {
		return image.RGBA{}, err
	}
	log.Printf("snapshot %dx%d x%d at (%g, %g) scale %g", vp.Width, vp.Height, supersample, v.X, v.Y, v.Scale)
	return *img, nil
}
