package mandel

import (
	"image/color"
	"testing"
)

func TestShade(t *testing.T) {
	// 5x2 pixels of the default view: column 3 is re = 0, bottom row
	// (py = 1 from the bottom, image row 0) is im = 0.
	p := Params(DefaultView(), Viewport{Width: 5, Height: 2})

	if got, want := Shade(p, DefaultPalette, 3, 0), (color.RGBA{217, 252, 255, 255}); got != want {
		t.Errorf("Shade at origin = %v, want interior %v", got, want)
	}

	// image row 1 is the bottom row and maps to Ymin
	cx, cy := p.Region.Xmin, p.Region.Ymin
	want := RGBA(DefaultPalette.Color(Escape(cx, cy, p.Iterations), p.Iterations))
	if got := Shade(p, DefaultPalette, 0, 1); got != want {
		t.Errorf("Shade bottom-left = %v, want %v", got, want)
	}
}

func TestParams(t *testing.T) {
	v := ViewState{X: 1, Y: 2, Scale: 0.5, Iterations: 64.9}
	vp := Viewport{Width: 640, Height: 480}
	p := Params(v, vp)

	want := FrameParams{
		Region:     Region{Xmin: 0, Xmax: 1.5, Ymin: 1.5, Ymax: 2.5},
		Iterations: 64,
		Viewport:   vp,
	}
	if p != want {
		t.Errorf("Params = %+v, want %+v", p, want)
	}
}

func TestPOIs(t *testing.T) {
	all := POIs()
	if len(all) != len(pois) {
		t.Fatalf("POIs() has %d entries, want %d", len(all), len(pois))
	}
	all[0].X = 42
	if p, _ := POI(0); p.X == 42 {
		t.Error("POIs() exposes the table")
	}
	for i, p := range all {
		if p.Scale <= 0 || p.Name == "" {
			t.Errorf("POI %d = %+v", i, p)
		}
	}
	if _, err := POI(len(pois)); err != ErrUnknownPOI {
		t.Errorf("POI(%d) err = %v, want ErrUnknownPOI", len(pois), err)
	}
}
