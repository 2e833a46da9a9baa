package mandel

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPaletteColor(t *testing.T) {
	interior := color.RGBA{217, 252, 255, 255}

	tests := []struct {
		name string
		r    PixelResult
		n    uint
		want color.RGBA
	}{
		{"interior", PixelResult{Iterations: 50, Escaped: false}, 50, interior},
		{"zero limit", PixelResult{Iterations: 0, Escaped: false}, 0, interior},
		{"zero limit ignores escaped flag", PixelResult{Iterations: 0, Escaped: true}, 0, interior},
		{"immediate escape is black", PixelResult{Iterations: 0, Escaped: true}, 50, color.RGBA{0, 0, 0, 255}},
		{"quarter", PixelResult{Iterations: 32, Escaped: true}, 128, color.RGBA{24, 43, 87, 255}},
		{"half", PixelResult{Iterations: 25, Escaped: true}, 50, color.RGBA{46, 82, 155, 255}},
		{"first step of 128", PixelResult{Iterations: 1, Escaped: true}, 128, color.RGBA{1, 1, 3, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBA(DefaultPalette.Color(tt.r, tt.n)); got != tt.want {
				t.Errorf("Color(%+v, %d) = %v, want %v", tt.r, tt.n, got, tt.want)
			}
		})
	}
}

func TestPaletteInteriorExact(t *testing.T) {
	got := DefaultPalette.Color(Escape(0, 0, 50), 50)
	if want := (mgl64.Vec3{0.85, 0.99, 1.0}); got != want {
		t.Errorf("interior colour = %v, want %v", got, want)
	}
}

func TestRGBAClamps(t *testing.T) {
	got := RGBA(mgl64.Vec3{-0.5, 0.5, 7})
	if want := (color.RGBA{0, 128, 255, 255}); got != want {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
}
