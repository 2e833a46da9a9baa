package mandel

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// PlaneRegion is the visible rectangle of the complex plane for v.
//
// The horizontal extent reaches two scales left of center and one to the
// right, vertical one scale each way. The view is not corrected for the
// window aspect ratio.
func PlaneRegion(v ViewState) Region {
	return Region{
		Xmin: v.X - 2*v.Scale,
		Xmax: v.X + v.Scale,
		Ymin: v.Y - v.Scale,
		Ymax: v.Y + v.Scale,
	}
}

// Point maps pixel (px, py) of vp to the complex plane. py counts from the
// bottom row.
func (r Region) Point(px, py int, vp Viewport) (cx, cy float64) {
	cx = float64(px)*(r.Xmax-r.Xmin)/float64(vp.Width) + r.Xmin
	cy = float64(py)*(r.Ymax-r.Ymin)/float64(vp.Height) + r.Ymin
	return cx, cy
}
