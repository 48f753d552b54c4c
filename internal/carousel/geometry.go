package carousel

import "math"

// Measure is a snapshot of the rendered layout a carousel positions against.
// Container is the visible stage width, Item the width of the first rendered
// item and Gap the spacing between items.
type Measure struct {
	Container float64
	Item      float64
	Gap       float64
}

// Ready reports whether both widths have been laid out. Zero widths mean the
// stage has not been measured yet and no transform should be computed.
func (m Measure) Ready() bool {
	return m.Container > 0 && m.Item > 0
}

// Step is the distance between the left edges of two neighbouring items.
func (m Measure) Step() float64 {
	return m.Item + m.Gap
}

// ContentWidth is the full width of n items laid out in a row.
func (m Measure) ContentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*m.Item + float64(n-1)*m.Gap
}

// CenterOffset returns the translation that puts item index in the middle of
// the container: container/2 - item/2 - index*(item+gap).
func CenterOffset(m Measure, index int) (float64, bool) {
	return CenterOffsetAt(m, float64(index))
}

// CenterOffsetAt is CenterOffset for a fractional position, used while a
// transition is easing between two indices.
func CenterOffsetAt(m Measure, pos float64) (float64, bool) {
	if !m.Ready() {
		return 0, false
	}
	return m.Container/2 - m.Item/2 - pos*m.Step(), true
}

// PageOffset returns the scroll position that brings item index to the left
// edge of the stage, clamped so the last page never scrolls past the end of
// content.
func PageOffset(m Measure, index int, contentWidth float64) (float64, bool) {
	if !m.Ready() {
		return 0, false
	}
	maxScroll := math.Max(0, contentWidth-m.Container)
	return clampf(float64(index)*m.Step(), 0, maxScroll), true
}

// VisibleRatio is the fraction of an item spanning [left, left+width) that
// lies inside the viewport [0, viewport).
func VisibleRatio(left, width, viewport float64) float64 {
	if width <= 0 || viewport <= 0 {
		return 0
	}
	lo := math.Max(left, 0)
	hi := math.Min(left+width, viewport)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / width
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampf(n, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, n))
}

// easeOut is a cubic ease-out curve on [0,1].
func easeOut(t float64) float64 {
	t = clampf(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}
