package mandel

import (
	"context"
	"fmt"
	"image"
	"time"
)

// Renderer evaluates every pixel of a frame into img.
// img bounds must match p.Viewport. All pixels are written before RenderFrame returns.
type Renderer interface {
	RenderFrame(p FrameParams, img *image.RGBA) error
}

// IntentSource yields the intents active for the current frame.
type IntentSource interface {
	Intents() Intents
}

// Presenter shows a finished frame and the informational stats title.
type Presenter interface {
	Present(img *image.RGBA) error
	SetTitle(title string)
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Now() float64
}

// ViewportSource is implemented by intent sources that also know the output
// size. The loop reads it at the start of every frame.
type ViewportSource interface {
	Viewport() Viewport
}

type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loop drives the viewer one frame at a time. It owns the view, viewport and
// timing of one session and is not safe for concurrent use; collaborators
// that run on other goroutines must hand their updates to the goroutine
// calling Step.
type Loop struct {
	renderer  Renderer
	input     IntentSource
	presenter Presenter
	clock     Clock

	view     ViewState
	viewport Viewport
	timing   FrameTiming
	state    State

	frame *image.RGBA
}

func NewLoop(r Renderer, in IntentSource, out Presenter, clock Clock, vp Viewport) *Loop {
	return &Loop{
		renderer:  r,
		input:     in,
		presenter: out,
		clock:     clock,
		view:      DefaultView(),
		viewport:  vp,
		timing:    NewFrameTiming(clock.Now()),
		state:     Running,
	}
}

func (l *Loop) View() ViewState { return l.view }
func (l *Loop) SetView(v ViewState) { l.view = v }
func (l *Loop) Viewport() Viewport { return l.viewport }
func (l *Loop) Timing() FrameTiming { return l.timing }
func (l *Loop) State() State { return l.state }
func (l *Loop) Resize(vp Viewport) { l.viewport = vp }
func (l *Loop) Frame() *image.RGBA { return l.frame }

// Step runs one frame: intents, view update, render, present, timing.
// A failing renderer or presenter terminates the loop.
func (l *Loop) Step() (State, error) {
	if l.state == Terminating {
		return l.state, nil
	}

	if vs, ok := l.input.(ViewportSource); ok {
		l.viewport = vs.Viewport()
	}
	if Apply(&l.view, l.input.Intents(), l.timing.Delta) {
		l.state = Terminating
		return l.state, nil
	}

	// A minimized window has no pixels; keep the clock running.
	if l.viewport.Valid() {
		if err := l.render(); err != nil {
			l.state = Terminating
			return l.state, err
		}
	}

	l.timing.Tick(l.clock.Now())
	if l.timing.StatsDue() {
		l.presenter.SetTitle(Title(l.view, l.timing.Delta))
	}
	return l.state, nil
}

func (l *Loop) render() error {
	vp := l.viewport
	if l.frame == nil || l.frame.Rect.Dx() != vp.Width || l.frame.Rect.Dy() != vp.Height {
		l.frame = image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	}

	if err := l.renderer.RenderFrame(Params(l.view, vp), l.frame); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if err := l.presenter.Present(l.frame); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Run steps the loop on every tick until it terminates or ctx is done.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticks:
			state, err := l.Step()
			if err != nil {
				return err
			}
			if state == Terminating {
				return nil
			}
		}
	}
}
