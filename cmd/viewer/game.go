package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	mandel "github.com/marben/mandel_viewer"
)

var keyIntents = []struct {
	key    ebiten.Key
	intent mandel.Intent
}{
	{ebiten.KeyEscape, mandel.Quit},
	{ebiten.KeyR, mandel.Reset},
	{ebiten.KeyArrowLeft, mandel.FewerIterations},
	{ebiten.KeyArrowRight, mandel.MoreIterations},
	{ebiten.KeyArrowUp, mandel.ZoomIn},
	{ebiten.KeyArrowDown, mandel.ZoomOut},
	{ebiten.KeyW, mandel.PanUp},
	{ebiten.KeyS, mandel.PanDown},
	{ebiten.KeyA, mandel.PanLeft},
	{ebiten.KeyD, mandel.PanRight},
}

// poiKeys[i] jumps to point of interest i.
var poiKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
}

// game adapts a mandel.Loop to ebiten. It is the loop's input source,
// presenter and clock; ebiten calls Update, Draw and Layout on one goroutine.
type game struct {
	loop  *mandel.Loop
	start time.Time

	offscreen *ebiten.Image
	title     string
	hud       bool
}

func newGame(r mandel.Renderer, vp mandel.Viewport, hud bool) *game {
	g := &game{start: time.Now(), hud: hud}
	g.loop = mandel.NewLoop(r, g, g, g, vp)
	return g
}

// Now implements mandel.Clock.
func (g *game) Now() float64 {
	return time.Since(g.start).Seconds()
}

// Intents implements mandel.IntentSource.
func (g *game) Intents() mandel.Intents {
	return intentsFrom(ebiten.IsKeyPressed)
}

// intentsFrom maps the keys pressed reports to intents. With several digits
// held the lowest wins.
func intentsFrom(pressed func(ebiten.Key) bool) mandel.Intents {
	var in mandel.Intents
	for _, k := range keyIntents {
		if pressed(k.key) {
			in.Set |= k.intent
		}
	}
	for i, k := range poiKeys {
		if pressed(k) {
			in.Set |= mandel.JumpPOI
			in.POI = i
			break
		}
	}
	return in
}

// Present implements mandel.Presenter.
func (g *game) Present(img *image.RGBA) error {
	size := img.Rect.Size()
	if g.offscreen == nil || g.offscreen.Bounds().Size() != size {
		if g.offscreen != nil {
			g.offscreen.Deallocate()
		}
		g.offscreen = ebiten.NewImage(size.X, size.Y)
	}
	g.offscreen.WritePixels(img.Pix)
	return nil
}

// SetTitle implements mandel.Presenter.
func (g *game) SetTitle(title string) {
	g.title = title
	ebiten.SetWindowTitle(title)
}

func (g *game) Update() error {
	state, err := g.loop.Step()
	if err != nil {
		return err
	}
	if state == mandel.Terminating {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.offscreen != nil {
		screen.DrawImage(g.offscreen, nil)
	}
	if g.hud {
		ebitenutil.DebugPrint(screen, g.title)
	}
}

// Layout renders at the window's size. Resizes reach the loop here, between
// frames.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.loop.Resize(mandel.Viewport{Width: outsideWidth, Height: outsideHeight})
	return outsideWidth, outsideHeight
}
