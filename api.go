package mandel

import (
	"context"
	"image"
)

//go:generate irpc api.go

// Display is a remote screen with a keyboard. The server runs the frame loop
// and drives the display once per frame.
type Display interface {
	// Poll returns the intents currently held and the drawable size.
	Poll() (Intents, Viewport, error)
	Show(frame image.RGBA) error
	SetTitle(title string) error
}

// Snapshotter renders single stills on request.
type Snapshotter interface {
	Snapshot(ctx context.Context, v ViewState, vp Viewport, supersample int) (image.RGBA, error)
}
