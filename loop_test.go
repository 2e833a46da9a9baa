package mandel

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"
)

type fakeClock struct{ t float64 }

func (c *fakeClock) Now() float64 { return c.t }

// scriptedInput returns one entry per frame, then nothing.
type scriptedInput struct {
	frames []Intents
}

func (s *scriptedInput) Intents() Intents {
	if len(s.frames) == 0 {
		return Intents{}
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in
}

type sizedInput struct {
	scriptedInput
	vp Viewport
}

func (s *sizedInput) Viewport() Viewport { return s.vp }

type recorder struct {
	frames []image.Rectangle
	titles []string
	err    error
}

func (r *recorder) Present(img *image.RGBA) error {
	r.frames = append(r.frames, img.Rect)
	return r.err
}

func (r *recorder) SetTitle(title string) { r.titles = append(r.titles, title) }

type renderFunc func(p FrameParams, img *image.RGBA) error

func (f renderFunc) RenderFrame(p FrameParams, img *image.RGBA) error { return f(p, img) }

func newTestLoop(in IntentSource, vp Viewport) (*Loop, *fakeClock, *recorder, *[]FrameParams) {
	clock := &fakeClock{}
	rec := &recorder{}
	var params []FrameParams
	r := renderFunc(func(p FrameParams, img *image.RGBA) error {
		params = append(params, p)
		return nil
	})
	return NewLoop(r, in, rec, clock, vp), clock, rec, &params
}

func TestLoopStep(t *testing.T) {
	vp := Viewport{Width: 64, Height: 32}
	in := &scriptedInput{frames: []Intents{{}, {Set: ZoomIn}}}
	l, clock, rec, params := newTestLoop(in, vp)

	clock.t = 0.1
	if state, err := l.Step(); state != Running || err != nil {
		t.Fatalf("Step = %v, %v", state, err)
	}
	if len(rec.frames) != 1 || rec.frames[0] != image.Rect(0, 0, 64, 32) {
		t.Fatalf("presented %v", rec.frames)
	}
	if want := Params(DefaultView(), vp); (*params)[0] != want {
		t.Errorf("render params = %+v, want %+v", (*params)[0], want)
	}
	if l.Timing().Delta != 0.1 {
		t.Errorf("delta = %g, want 0.1", l.Timing().Delta)
	}

	// zoom uses the previous frame's delta
	clock.t = 0.2
	l.Step()
	if want := DefaultScale * 0.9; l.View().Scale != want {
		t.Errorf("scale = %g, want %g", l.View().Scale, want)
	}
	if len(rec.frames) != 2 {
		t.Errorf("presented %d frames, want 2", len(rec.frames))
	}
}

func TestLoopQuit(t *testing.T) {
	in := &scriptedInput{frames: []Intents{{Set: Quit | ZoomIn}}}
	l, _, rec, _ := newTestLoop(in, Viewport{Width: 8, Height: 8})

	if state, err := l.Step(); state != Terminating || err != nil {
		t.Fatalf("Step = %v, %v, want terminating", state, err)
	}
	if len(rec.frames) != 0 {
		t.Errorf("presented %d frames after quit", len(rec.frames))
	}

	l.Step()
	if len(rec.frames) != 0 || l.State() != Terminating {
		t.Errorf("terminated loop kept running: %d frames, state %v", len(rec.frames), l.State())
	}
}

func TestLoopCollaboratorErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("renderer", func(t *testing.T) {
		rec := &recorder{}
		r := renderFunc(func(FrameParams, *image.RGBA) error { return boom })
		l := NewLoop(r, &scriptedInput{}, rec, &fakeClock{}, Viewport{Width: 8, Height: 8})

		state, err := l.Step()
		if state != Terminating || !errors.Is(err, boom) {
			t.Errorf("Step = %v, %v", state, err)
		}
		if len(rec.frames) != 0 {
			t.Error("presented a failed frame")
		}
	})

	t.Run("presenter", func(t *testing.T) {
		l, _, rec, _ := newTestLoop(&scriptedInput{}, Viewport{Width: 8, Height: 8})
		rec.err = boom

		if state, err := l.Step(); state != Terminating || !errors.Is(err, boom) {
			t.Errorf("Step = %v, %v", state, err)
		}
	})
}

func TestLoopResize(t *testing.T) {
	l, _, rec, _ := newTestLoop(&scriptedInput{}, Viewport{})

	l.Step()
	if len(rec.frames) != 0 {
		t.Fatalf("rendered an empty viewport")
	}
	if l.State() != Running {
		t.Fatalf("empty viewport stopped the loop")
	}

	l.Resize(Viewport{Width: 10, Height: 5})
	l.Step()
	l.Resize(Viewport{Width: 3, Height: 7})
	l.Step()

	want := []image.Rectangle{image.Rect(0, 0, 10, 5), image.Rect(0, 0, 3, 7)}
	if len(rec.frames) != 2 || rec.frames[0] != want[0] || rec.frames[1] != want[1] {
		t.Errorf("frames = %v, want %v", rec.frames, want)
	}
	if l.Frame().Rect != want[1] {
		t.Errorf("frame buffer = %v", l.Frame().Rect)
	}
}

func TestLoopViewportSource(t *testing.T) {
	in := &sizedInput{vp: Viewport{Width: 4, Height: 4}}
	l, _, rec, _ := newTestLoop(in, Viewport{Width: 100, Height: 100})

	l.Step()
	in.vp = Viewport{Width: 6, Height: 2}
	l.Step()

	want := []image.Rectangle{image.Rect(0, 0, 4, 4), image.Rect(0, 0, 6, 2)}
	if len(rec.frames) != 2 || rec.frames[0] != want[0] || rec.frames[1] != want[1] {
		t.Errorf("frames = %v, want %v", rec.frames, want)
	}
}

func TestLoopTitleRefresh(t *testing.T) {
	l, clock, rec, _ := newTestLoop(&scriptedInput{}, Viewport{Width: 2, Height: 2})

	// 60 frames a second for two seconds
	for i := 1; i <= 120; i++ {
		clock.t = float64(i) / 60
		l.Step()
	}
	if n := len(rec.titles); n < 5 || n > 6 {
		t.Errorf("title set %d times in 2s, want about %d", n, 2*StatsRefreshRate)
	}
}

func TestLoopRun(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		in := &scriptedInput{frames: []Intents{{}, {}, {Set: Quit}}}
		l, _, rec, _ := newTestLoop(in, Viewport{Width: 2, Height: 2})

		ticks := make(chan time.Time)
		go func() {
			for range 3 {
				ticks <- time.Now()
			}
		}()

		if err := l.Run(context.Background(), ticks); err != nil {
			t.Fatalf("Run = %v", err)
		}
		if len(rec.frames) != 2 {
			t.Errorf("presented %d frames, want 2", len(rec.frames))
		}
	})

	t.Run("cancel", func(t *testing.T) {
		l, _, _, _ := newTestLoop(&scriptedInput{}, Viewport{Width: 2, Height: 2})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := l.Run(ctx, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	})
}
