package mandel

import (
	"math"
)

// Intent is a set of discrete user intents, one bit each.
type Intent uint16

const (
	Quit Intent = 1 << iota
	Reset
	JumpPOI
	MoreIterations
	FewerIterations
	ZoomIn
	ZoomOut
	PanUp
	PanDown
	PanLeft
	PanRight
)

func (i Intent) Has(o Intent) bool {
	return i&o != 0
}

// Intents active in one frame. POI is only read when Set has JumpPOI.
type Intents struct {
	Set Intent
	POI int
}

const (
	// IterationRate is iterations added or removed per second.
	IterationRate = 75.0
	ZoomRate      = 1.0
	PanRate       = 1.0

	// MaxDelta bounds the frame time fed to the mappers. Zooming in by a
	// full second would take scale to zero.
	MaxDelta = 0.5
)

// Apply mutates v by the intents in in, scaled by the frame time delta in
// seconds. It reports whether quit was requested.
//
// A jump to an index outside the POI table is ignored.
func Apply(v *ViewState, in Intents, delta float64) (quit bool) {
	delta = math.Min(math.Max(delta, 0), MaxDelta)
	s := in.Set

	if s.Has(Quit) {
		quit = true
	}
	if s.Has(Reset) {
		v.Reset()
	}
	if s.Has(JumpPOI) {
		if p, err := POI(in.POI); err == nil {
			v.SetLocation(p)
		}
	}

	if s.Has(FewerIterations) {
		v.AddIterations(-IterationRate, delta)
	}
	if s.Has(MoreIterations) {
		v.AddIterations(IterationRate, delta)
	}

	if s.Has(ZoomIn) {
		v.Zoom(-ZoomRate, delta)
	}
	if s.Has(ZoomOut) {
		v.Zoom(ZoomRate, delta)
	}

	if s.Has(PanUp) {
		v.MoveY(PanRate, delta)
	}
	if s.Has(PanDown) {
		v.MoveY(-PanRate, delta)
	}
	if s.Has(PanLeft) {
		v.MoveX(-PanRate, delta)
	}
	if s.Has(PanRight) {
		v.MoveX(PanRate, delta)
	}

	return quit
}
