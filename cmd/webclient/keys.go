//go:build js && wasm

package main

import (
	mandel "github.com/marben/mandel_viewer"
)

// keyIntents maps KeyboardEvent.code of a held key to its intent.
var keyIntents = map[string]mandel.Intent{
	"Escape":     mandel.Quit,
	"KeyR":       mandel.Reset,
	"ArrowLeft":  mandel.FewerIterations,
	"ArrowRight": mandel.MoreIterations,
	"ArrowUp":    mandel.ZoomIn,
	"ArrowDown":  mandel.ZoomOut,
	"KeyW":       mandel.PanUp,
	"KeyS":       mandel.PanDown,
	"KeyA":       mandel.PanLeft,
	"KeyD":       mandel.PanRight,
}

// poiKeys[i] jumps to point of interest i.
var poiKeys = []string{"Digit1", "Digit2", "Digit3", "Digit4", "Digit5", "Digit6", "Digit7"}

// viewerKey reports whether code controls the viewer, so the browser should not act on it.
func viewerKey(code string) bool {
	if _, ok := keyIntents[code]; ok {
		return true
	}
	for _, k := range poiKeys {
		if k == code {
			return true
		}
	}
	return false
}

// heldIntents combines the intents of held keys. With several digits held
// the lowest wins.
func heldIntents(held map[string]bool) mandel.Intents {
	var in mandel.Intents
	for code, down := range held {
		if down {
			in.Set |= keyIntents[code]
		}
	}
	for i, code := range poiKeys {
		if held[code] {
			in.Set |= mandel.JumpPOI
			in.POI = i
			break
		}
	}
	return in
}
