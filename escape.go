package mandel

// Bailout is the squared escape radius.
const Bailout = 4.0

// PixelResult is the escape-time classification of one point.
type PixelResult struct {
	Iterations uint
	Escaped    bool
}

// Escape iterates z = z² + c from z = 0 until |z|² exceeds Bailout or n
// iterations have run. Iterations is in [0, n] and Escaped reports
// Iterations < n.
func Escape(cx, cy float64, n uint) PixelResult {
	var zx, zy float64
	var it uint
	for ; it < n && zx*zx+zy*zy <= Bailout; it++ {
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return PixelResult{Iterations: it, Escaped: it < n}
}
