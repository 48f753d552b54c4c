package ui

import "github.com/depeter/atelier/internal/carousel"

// ButtonRect is a clickable rectangle.
type ButtonRect struct {
	X, Y, W, H float64
}

func (r ButtonRect) Contains(x, y float64) bool {
	return r.W > 0 && r.H > 0 && PointInRect(x, y, r.X, r.Y, r.W, r.H)
}

// Hit is a region drawn this frame that can receive the pointer. Target
// tells the gesture layer whether a press on it may start a drag.
type Hit struct {
	ID     string
	Index  int
	Rect   ButtonRect
	Target carousel.Target
}

// HitList collects the hits of one frame. Later hits are on top.
type HitList struct {
	hits []Hit
}

func (h *HitList) Reset() { h.hits = h.hits[:0] }

func (h *HitList) Add(hit Hit) { h.hits = append(h.hits, hit) }

// Button registers an interactive hit.
func (h *HitList) Button(id string, index int, r ButtonRect) {
	h.Add(Hit{ID: id, Index: index, Rect: r, Target: carousel.Target{Role: carousel.RoleButton}})
}

// Surface registers a draggable hit.
func (h *HitList) Surface(id string, index int, r ButtonRect) {
	h.Add(Hit{ID: id, Index: index, Rect: r, Target: carousel.Target{Role: carousel.RoleSurface}})
}

// At returns the topmost hit under (x, y).
func (h *HitList) At(x, y float64) (Hit, bool) {
	for i := len(h.hits) - 1; i >= 0; i-- {
		if h.hits[i].Rect.Contains(x, y) {
			return h.hits[i], true
		}
	}
	return Hit{}, false
}

func (h *HitList) Len() int { return len(h.hits) }

// Clicker turns press/release pairs into clicks: a click fires only when
// the release lands on the same hit the press started on.
type Clicker struct {
	pressed *Hit
}

// Down records the hit under the press.
func (c *Clicker) Down(hit Hit) { c.pressed = &hit }

// Pending reports whether a press is waiting for its release.
func (c *Clicker) Pending() bool { return c.pressed != nil }

// Up resolves the press against the hit under the release.
func (c *Clicker) Up(hits *HitList, x, y float64) (Hit, bool) {
	p := c.pressed
	c.pressed = nil
	if p == nil {
		return Hit{}, false
	}
	h, ok := hits.At(x, y)
	if !ok || h.ID != p.ID || h.Index != p.Index {
		return Hit{}, false
	}
	return h, true
}
