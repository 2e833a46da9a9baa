//go:build js && wasm

package main

import (
	"testing"

	mandel "github.com/marben/mandel_viewer"
)

func TestHeldIntents(t *testing.T) {
	tests := []struct {
		name string
		held map[string]bool
		want mandel.Intents
	}{
		{"nothing", nil, mandel.Intents{}},
		{"zoom and pan", map[string]bool{"ArrowUp": true, "KeyA": true}, mandel.Intents{Set: mandel.ZoomIn | mandel.PanLeft}},
		{"released", map[string]bool{"ArrowUp": false}, mandel.Intents{}},
		{"quit", map[string]bool{"Escape": true}, mandel.Intents{Set: mandel.Quit}},
		{"jump", map[string]bool{"Digit3": true}, mandel.Intents{Set: mandel.JumpPOI, POI: 2}},
		{"lowest digit wins", map[string]bool{"Digit7": true, "Digit2": true, "KeyR": true}, mandel.Intents{Set: mandel.JumpPOI | mandel.Reset, POI: 1}},
		{"unrelated keys", map[string]bool{"KeyQ": true, "Digit8": true, "Space": true}, mandel.Intents{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := heldIntents(tt.held); got != tt.want {
				t.Errorf("heldIntents(%v) = %+v, want %+v", tt.held, got, tt.want)
			}
		})
	}
}

func TestViewerKey(t *testing.T) {
	for _, code := range []string{"Escape", "KeyW", "ArrowDown", "Digit1", "Digit7"} {
		if !viewerKey(code) {
			t.Errorf("%s not claimed by the viewer", code)
		}
	}
	for _, code := range []string{"F5", "KeyQ", "Digit8", "Tab"} {
		if viewerKey(code) {
			t.Errorf("%s claimed by the viewer", code)
		}
	}
}
