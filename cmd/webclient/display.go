//go:build js && wasm

package main

import (
	"fmt"
	"image"
	"sync"
	"syscall/js"

	mandel "github.com/marben/mandel_viewer"
)

// canvasDisplay implements mandel.Display on a canvas element.
// Key events arrive on the js event loop, display calls on endpoint workers.
type canvasDisplay struct {
	canvas js.Value
	ctx2d  js.Value

	listeners []listener
	shown     bool

	mu   sync.Mutex
	held map[string]bool // by KeyboardEvent.code
}

type listener struct {
	event string
	fn    js.Func
}

var _ mandel.Display = (*canvasDisplay)(nil)

func newCanvasDisplay(id string) *canvasDisplay {
	canvas := js.Global().Get("document").Call("getElementById", id)
	d := &canvasDisplay{
		canvas: canvas,
		ctx2d:  canvas.Call("getContext", "2d"),
		held:   make(map[string]bool),
	}

	d.listen("keydown", func(ev js.Value) {
		code := ev.Get("code").String()
		if viewerKey(code) {
			ev.Call("preventDefault")
		}
		d.mu.Lock()
		d.held[code] = true
		d.mu.Unlock()
	})
	d.listen("keyup", func(ev js.Value) {
		d.mu.Lock()
		delete(d.held, ev.Get("code").String())
		d.mu.Unlock()
	})
	// keyup never arrives for keys released while the page is in the background
	d.listen("blur", func(js.Value) {
		d.mu.Lock()
		clear(d.held)
		d.mu.Unlock()
	})
	return d
}

func (d *canvasDisplay) listen(event string, f func(ev js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		f(args[0])
		return nil
	})
	js.Global().Get("window").Call("addEventListener", event, fn)
	d.listeners = append(d.listeners, listener{event: event, fn: fn})
}

// Close removes the key listeners.
func (d *canvasDisplay) Close() {
	window := js.Global().Get("window")
	for _, l := range d.listeners {
		window.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	d.listeners = nil
}

// Poll implements mandel.Display.
func (d *canvasDisplay) Poll() (mandel.Intents, mandel.Viewport, error) {
	d.mu.Lock()
	in := heldIntents(d.held)
	d.mu.Unlock()

	window := js.Global().Get("window")
	vp := mandel.Viewport{
		Width:  window.Get("innerWidth").Int(),
		Height: window.Get("innerHeight").Int(),
	}
	return in, vp, nil
}

// Show implements mandel.Display. The canvas follows the frame size; css
// stretches it over the window.
func (d *canvasDisplay) Show(frame image.RGBA) error {
	width := frame.Rect.Dx()
	height := frame.Rect.Dy()
	if frame.Stride != 4*width || len(frame.Pix) != 4*width*height {
		return fmt.Errorf("frame %v: stride %d with %d bytes of pixels", frame.Rect, frame.Stride, len(frame.Pix))
	}
	if width == 0 || height == 0 {
		return nil
	}

	if d.canvas.Get("width").Int() != width || d.canvas.Get("height").Int() != height {
		d.canvas.Set("width", width)
		d.canvas.Set("height", height)
	}

	jsData := js.Global().Get("Uint8ClampedArray").New(len(frame.Pix))
	js.CopyBytesToJS(jsData, frame.Pix)
	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	d.ctx2d.Call("putImageData", imageData, 0, 0)

	if !d.shown {
		d.shown = true
		clearScreenLog()
	}
	return nil
}

// SetTitle implements mandel.Display.
func (d *canvasDisplay) SetTitle(title string) error {
	js.Global().Get("document").Set("title", title)
	return nil
}
