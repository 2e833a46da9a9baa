package mandel

import (
	"errors"
)

var (
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrUnknownPOI      = errors.New("unknown point of interest")
)

// PointOfInterest is a preset camera location known to show interesting detail.
type PointOfInterest struct {
	Name  string
	X, Y  float64
	Scale float64
}

// Classic regions / landmarks in the Mandelbrot set.
// Scale is half of the visible vertical extent.
var pois = [...]PointOfInterest{
	{Name: "Spiral Needle", X: -0.7104275066275, Y: -0.269772769335717, Scale: 3.526e-03},

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	{Name: "Seahorse Valley", X: -0.75, Y: 0.10, Scale: 0.05},

	// Elephant Valley – large bulb with trunk-like tendrils
	{Name: "Elephant Valley", X: -1.80, Y: -0.06, Scale: 0.04},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	{Name: "Spiral Minibrot", X: -0.74275, Y: 0.13175, Scale: 0.00075},

	// Triple Spiral – threefold symmetric spiral structure
	{Name: "Triple Spiral", X: -0.7465, Y: 0.0965, Scale: 0.0015},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	{Name: "Valley of the Dragon", X: -0.7375, Y: 0.1825, Scale: 0.0025},

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	{Name: "Minibrot in a Mini-Spiral", X: -1.73825, Y: -0.02275, Scale: 0.00075},
}

// POIs returns a copy of the point of interest table.
func POIs() []PointOfInterest {
	out := make([]PointOfInterest, len(pois))
	copy(out, pois[:])
	return out
}

// POI returns the point of interest at index i.
func POI(i int) (PointOfInterest, error) {
	if i < 0 || i >= len(pois) {
		return PointOfInterest{}, ErrUnknownPOI
	}
	return pois[i], nil
}

// Viewport is the output resolution in pixels.
type Viewport struct {
	Width, Height int
}

func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0
}

// FrameParams is everything the per-pixel stage needs for one frame.
// It is a value snapshot; renderers never see the live ViewState.
type FrameParams struct {
	Region     Region
	Iterations uint
	Viewport   Viewport
}

// Params derives the frame parameters for view v rendered at vp.
func Params(v ViewState, vp Viewport) FrameParams {
	return FrameParams{
		Region:     PlaneRegion(v),
		Iterations: v.IterationLimit(),
		Viewport:   vp,
	}
}
