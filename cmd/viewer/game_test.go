package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	mandel "github.com/marben/mandel_viewer"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestIntentsFrom(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want mandel.Intents
	}{
		{"nothing", nil, mandel.Intents{}},
		{"quit", []ebiten.Key{ebiten.KeyEscape}, mandel.Intents{Set: mandel.Quit}},
		{"reset", []ebiten.Key{ebiten.KeyR}, mandel.Intents{Set: mandel.Reset}},
		{"iterations", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, mandel.Intents{Set: mandel.FewerIterations | mandel.MoreIterations}},
		{"zoom", []ebiten.Key{ebiten.KeyArrowUp}, mandel.Intents{Set: mandel.ZoomIn}},
		{"unzoom", []ebiten.Key{ebiten.KeyArrowDown}, mandel.Intents{Set: mandel.ZoomOut}},
		{"pan", []ebiten.Key{ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD}, mandel.Intents{Set: mandel.PanUp | mandel.PanLeft | mandel.PanDown | mandel.PanRight}},
		{"first poi", []ebiten.Key{ebiten.KeyDigit1}, mandel.Intents{Set: mandel.JumpPOI, POI: 0}},
		{"last poi", []ebiten.Key{ebiten.KeyDigit7}, mandel.Intents{Set: mandel.JumpPOI, POI: 6}},
		{"lowest digit wins", []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyDigit3, ebiten.KeyArrowUp}, mandel.Intents{Set: mandel.JumpPOI | mandel.ZoomIn, POI: 2}},
		{"unbound", []ebiten.Key{ebiten.KeyQ, ebiten.KeyDigit8, ebiten.KeySpace}, mandel.Intents{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intentsFrom(held(tt.keys...)); got != tt.want {
				t.Errorf("intentsFrom(%v) = %+v, want %+v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestPOIKeysCoverTable(t *testing.T) {
	if len(poiKeys) != len(mandel.POIs()) {
		t.Errorf("%d digit keys for %d points of interest", len(poiKeys), len(mandel.POIs()))
	}
}
