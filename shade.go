package mandel

import (
	"image/color"
)

// Shade runs the whole per-pixel pipeline for pixel (x, y) of an image
// whose row 0 is the top row. It reads only its arguments, so any number of
// pixels may be shaded concurrently.
func Shade(p FrameParams, pal Palette, x, y int) color.RGBA {
	py := p.Viewport.Height - 1 - y
	cx, cy := p.Region.Point(x, py, p.Viewport)
	return RGBA(pal.Color(Escape(cx, cy, p.Iterations), p.Iterations))
}
