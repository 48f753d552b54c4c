package carousel

import "math"

// SnapRail models a native horizontally scrolling row that snaps card by
// card. Positions are scroll offsets from the left edge.
type SnapRail struct {
	gap      float64
	card     float64
	scrollW  float64
	clientW  float64
	maxIndex int
	active   int
	left     float64
}

// NewSnapRail creates a rail with a fixed gap between cards.
func NewSnapRail(gap float64) *SnapRail {
	return &SnapRail{gap: gap}
}

func (r *SnapRail) step() float64 { return r.card + r.gap }

// Measure records the card width and the rail's scroll and client widths.
// A zero card width leaves the rail untouched until it can be measured.
func (r *SnapRail) Measure(cardWidth, scrollWidth, clientWidth float64) {
	if cardWidth <= 0 {
		return
	}
	r.card, r.scrollW, r.clientW = cardWidth, scrollWidth, clientWidth
	if scrollWidth <= clientWidth {
		r.maxIndex = 0
	} else {
		r.maxIndex = max(0, int(math.Round((scrollWidth-clientWidth)/r.step())))
	}
	r.active = clamp(r.active, 0, r.maxIndex)
}

// Ready reports whether the rail has been measured.
func (r *SnapRail) Ready() bool { return r.card > 0 }

// MaxIndex is the last index that can be scrolled to the left edge.
func (r *SnapRail) MaxIndex() int { return r.maxIndex }

// PageCount is the number of snap positions.
func (r *SnapRail) PageCount() int { return r.maxIndex + 1 }

// Active is the snap position currently at the left edge.
func (r *SnapRail) Active() int { return r.active }

// ScrollLeft is the last observed scroll offset.
func (r *SnapRail) ScrollLeft() float64 { return r.left }

// ScrollTo targets index i, clamped, and returns the scroll offset to move
// to. ok is false while unmeasured.
func (r *SnapRail) ScrollTo(i int) (float64, bool) {
	if !r.Ready() {
		return 0, false
	}
	i = clamp(i, 0, r.maxIndex)
	m := Measure{Container: r.clientW, Item: r.card, Gap: r.gap}
	left, ok := PageOffset(m, i, r.scrollW)
	if !ok {
		return 0, false
	}
	r.active = i
	return left, true
}

// Next scrolls one position forward.
func (r *SnapRail) Next() (float64, bool) { return r.ScrollTo(r.active + 1) }

// Prev scrolls one position back.
func (r *SnapRail) Prev() (float64, bool) { return r.ScrollTo(r.active - 1) }

// OnScroll observes the scroll offset and updates the active position to the
// nearest snap point.
func (r *SnapRail) OnScroll(left float64) {
	r.left = left
	if !r.Ready() {
		return
	}
	r.active = clamp(int(math.Round(left/r.step())), 0, r.maxIndex)
}

// MaxScroll is the largest scroll offset the rail allows.
func (r *SnapRail) MaxScroll() float64 {
	return math.Max(0, r.scrollW-r.clientW)
}
