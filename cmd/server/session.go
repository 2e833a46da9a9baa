package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandel_viewer"
	"github.com/marben/mandel_viewer/render"
)

// remoteDisplay runs a frame loop against a mandel.Display on the other end
// of a connection. It is the loop's input source, viewport source and
// presenter. The display is polled once per frame, when the loop asks for the
// viewport; Intents hands out what that poll returned.
type remoteDisplay struct {
	display mandel.Display
	limit   mandel.Viewport

	intents  mandel.Intents
	pollErr  error // display is gone, the loop quits
	titleErr error // reported by the next Present
}

// Viewport implements mandel.ViewportSource. Sizes above the limit are
// clamped; a failed poll yields an empty viewport and a Quit intent.
func (d *remoteDisplay) Viewport() mandel.Viewport {
	in, vp, err := d.display.Poll()
	if err != nil {
		d.pollErr = fmt.Errorf("display.Poll: %w", err)
		return mandel.Viewport{}
	}
	d.intents = in
	return mandel.Viewport{
		Width:  min(vp.Width, d.limit.Width),
		Height: min(vp.Height, d.limit.Height),
	}
}

// Intents implements mandel.IntentSource.
func (d *remoteDisplay) Intents() mandel.Intents {
	if d.pollErr != nil {
		return mandel.Intents{Set: mandel.Quit}
	}
	return d.intents
}

// Present implements mandel.Presenter.
func (d *remoteDisplay) Present(img *image.RGBA) error {
	if err := d.titleErr; err != nil {
		d.titleErr = nil
		return err
	}
	if err := d.display.Show(*img); err != nil {
		return fmt.Errorf("display.Show: %w", err)
	}
	return nil
}

// SetTitle implements mandel.Presenter.
func (d *remoteDisplay) SetTitle(title string) {
	if err := d.display.SetTitle(title); err != nil {
		d.titleErr = fmt.Errorf("display.SetTitle: %w", err)
	}
}

type wallClock struct {
	start time.Time
}

// Now implements mandel.Clock.
func (c wallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// runDisplay drives display at cfg.fps until the user quits, the display
// fails or ctx is done.
func runDisplay(ctx context.Context, display mandel.Display, cfg config) error {
	d := &remoteDisplay{display: display, limit: cfg.limit()}

	loop := mandel.NewLoop(render.New(cfg.workers, cfg.tileSize), d, d, wallClock{start: time.Now()}, mandel.Viewport{})
	view := mandel.DefaultView()
	view.Iterations = float64(cfg.iterations)
	loop.SetView(view)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	if err := loop.Run(ctx, ticker.C); err != nil {
		return err
	}
	return d.pollErr
}

// serveDisplay is the onConnect hook of websocket connections.
// Every browser serves mandel.Display and gets a view and frame loop of its own.
func serveDisplay(ep *irpc.Endpoint, cfg config) {
	log.Printf("got connection from: %s", ep.RemoteAddr())

	display, err := mandel.NewDisplayIrpcClient(ep)
	if err != nil {
		log.Printf("err: new Display client: %v", err)
		ep.Close()
		return
	}

	err = runDisplay(ep.Context(), display, cfg)
	switch {
	case err == nil:
		log.Printf("session %s finished", ep.RemoteAddr())
	case errors.Is(err, irpc.ErrEndpointClosedByCounterpart):
		log.Printf("session %s: display disconnected", ep.RemoteAddr())
	case errors.Is(err, irpc.ErrEndpointClosed):
		log.Printf("session %s closed", ep.RemoteAddr())
	default:
		log.Printf("err: session %s: %v", ep.RemoteAddr(), err)
	}
	ep.Close()
}
