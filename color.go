package mandel

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Palette is a cosine gradient a + b·cos(2π(c·t + d)) evaluated per channel.
type Palette struct {
	A, B, C, D mgl64.Vec3
	Interior   mgl64.Vec3
}

// DefaultPalette is the blue/violet gradient with a near-white interior.
var DefaultPalette = Palette{
	A:        mgl64.Vec3{0, 0, 0},
	B:        mgl64.Vec3{0.59, 0.55, 0.75},
	C:        mgl64.Vec3{0.1, 0.2, 0.3},
	D:        mgl64.Vec3{0.75, 0.75, 0.75},
	Interior: mgl64.Vec3{0.85, 0.99, 1.0},
}

// At evaluates the gradient at t.
func (p Palette) At(t float64) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := range out {
		out[i] = p.A[i] + p.B[i]*math.Cos(2*math.Pi*(p.C[i]*t+p.D[i]))
	}
	return out
}

// Color maps an escape result under iteration limit n to a linear colour.
// Points that did not escape, including every point when n is 0, get the
// interior colour.
func (p Palette) Color(r PixelResult, n uint) mgl64.Vec3 {
	if !r.Escaped || n == 0 {
		return p.Interior
	}
	return p.At(float64(r.Iterations) / float64(n))
}

// RGBA clamps c to [0,1] and quantizes it to an opaque 8-bit colour.
func RGBA(c mgl64.Vec3) color.RGBA {
	return color.RGBA{R: quantize(c.X()), G: quantize(c.Y()), B: quantize(c.Z()), A: 0xff}
}

func quantize(v float64) uint8 {
	v = math.Min(math.Max(v, 0), 1)
	return uint8(math.Round(v * 255))
}
