package mandel

import (
	"testing"
)

func TestFrameTiming(t *testing.T) {
	ft := NewFrameTiming(10)
	if ft.Delta != 0 {
		t.Fatalf("initial delta = %g", ft.Delta)
	}

	ft.Tick(10.25)
	if ft.Delta != 0.25 || ft.Previous != 10.25 {
		t.Errorf("after tick: %+v", ft)
	}
	if ft.StatsDue() {
		t.Error("stats due after 0.25s")
	}

	ft.Tick(10.5)
	if !ft.StatsDue() {
		t.Error("stats not due after 0.5s")
	}
	if ft.StatsDue() {
		t.Error("stats due twice for one interval")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		v     ViewState
		delta float64
		want  string
	}{
		{
			DefaultView(), 0.016,
			"Mandelbrot | FPS: 62 @ 16.000 ms | X: 0.2500000000000000 | Y: 0.0000000000000000 | Iterations limit: 128 | Scale: 1.250e+00",
		},
		{
			ViewState{X: -0.5, Y: 0.125, Scale: 3.526e-3, Iterations: 99.9}, 0,
			"Mandelbrot | FPS: 0 @ 0.000 ms | X: -0.5000000000000000 | Y: 0.1250000000000000 | Iterations limit: 99 | Scale: 3.526e-03",
		},
	}
	for _, tt := range tests {
		if got := Title(tt.v, tt.delta); got != tt.want {
			t.Errorf("Title(%+v, %g)\n got %q\nwant %q", tt.v, tt.delta, got, tt.want)
		}
	}
}
