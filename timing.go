package mandel

import (
	"fmt"
	"math"
)

// StatsRefreshRate is how many times per second the stats title is rebuilt.
const StatsRefreshRate = 3

// FrameTiming tracks frame timestamps in seconds.
type FrameTiming struct {
	Previous, Current float64
	Delta             float64

	lastStats float64
}

func NewFrameTiming(now float64) FrameTiming {
	return FrameTiming{Previous: now, Current: now, lastStats: now}
}

// Tick records the end of a frame at now.
func (t *FrameTiming) Tick(now float64) {
	t.Current = now
	t.Delta = t.Current - t.Previous
	t.Previous = t.Current
}

// StatsDue reports whether the stats title is due and, if so, restarts the
// refresh interval.
func (t *FrameTiming) StatsDue() bool {
	if t.Current-t.lastStats <= 1/float64(StatsRefreshRate) {
		return false
	}
	t.lastStats = t.Current
	return true
}

// Title formats the informational stats line for view v after a frame that
// took delta seconds.
func Title(v ViewState, delta float64) string {
	var fps uint
	if delta > 0 {
		fps = uint(math.Floor(1 / delta))
	}
	return fmt.Sprintf("Mandelbrot | FPS: %d @ %.03f ms | X: %.016f | Y: %.016f | Iterations limit: %d | Scale: %.03e",
		fps, delta*1000, v.X, v.Y, v.IterationLimit(), v.Scale)
}
