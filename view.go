package mandel

import (
	"math"
)

const (
	DefaultX          = 0.25
	DefaultY          = 0.0
	DefaultScale      = 1.25
	DefaultIterations = 128
)

// ViewState is the camera: center of the view in the complex plane, scale
// (half of the visible vertical extent) and the iteration budget.
//
// Scale stays positive only because Apply clamps frame deltas; the
// mutators themselves do not check it.
type ViewState struct {
	X, Y       float64
	Scale      float64
	Iterations float64
}

// DefaultView is the startup view showing the whole set.
func DefaultView() ViewState {
	return ViewState{X: DefaultX, Y: DefaultY, Scale: DefaultScale, Iterations: DefaultIterations}
}

// IterationLimit is the iteration budget truncated to an integer.
func (v ViewState) IterationLimit() uint {
	if v.Iterations <= 0 {
		return 0
	}
	return uint(math.Floor(v.Iterations))
}

// Reset restores the default location. The iteration limit is kept.
func (v *ViewState) Reset() {
	v.X, v.Y, v.Scale = DefaultX, DefaultY, DefaultScale
}

func (v *ViewState) SetLocation(p PointOfInterest) {
	v.X, v.Y, v.Scale = p.X, p.Y, p.Scale
}

// MoveX pans horizontally by dir screen-heights per second.
func (v *ViewState) MoveX(dir, delta float64) {
	v.X += dir * delta * v.Scale
}

func (v *ViewState) MoveY(dir, delta float64) {
	v.Y += dir * delta * v.Scale
}

// Zoom grows scale proportionally to itself; negative rate zooms in.
func (v *ViewState) Zoom(rate, delta float64) {
	v.Scale += rate * v.Scale * delta
}

// AddIterations changes the iteration budget, never going below zero.
func (v *ViewState) AddIterations(rate, delta float64) {
	v.Iterations = math.Max(0, v.Iterations+rate*delta)
}
