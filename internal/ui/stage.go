package ui

import (
	"math"

	"github.com/depeter/atelier/internal/carousel"
)

// tapSlop is how far a press may travel and still count as a tap on the
// card under it.
const tapSlop = 6

// Stage routes pointer and wheel input for one carousel. Screens set Rect
// and rebuild Hits while drawing; Handle runs in Update against the last
// drawn frame.
type Stage struct {
	C    *carousel.Carousel
	Rect ButtonRect
	Hits HitList

	click     Clicker
	surface   *Hit
	maxTravel float64
}

// Handle applies this frame's pointer and wheel input. It returns the hit
// that was clicked or tapped, if any.
func (s *Stage) Handle(in *Input) (Hit, bool) {
	if in.Pressed {
		s.press(in)
	}
	if s.C.Dragging() {
		s.C.PointerMove(in.CursorX)
		s.maxTravel = math.Max(s.maxTravel, math.Abs(s.C.DragDelta()))
	}

	var (
		clicked Hit
		ok      bool
	)
	if in.Released {
		clicked, ok = s.release(in)
	}

	if in.Wheeled() && s.Rect.Contains(in.CursorX, in.CursorY) {
		s.C.Wheel(in.WheelX, in.WheelY)
	}
	return clicked, ok
}

func (s *Stage) press(in *Input) {
	s.surface = nil
	s.maxTravel = 0
	h, onHit := s.Hits.At(in.CursorX, in.CursorY)
	if onHit && h.Target.Interactive() {
		s.click.Down(h)
		return
	}
	if !s.Rect.Contains(in.CursorX, in.CursorY) {
		return
	}
	target := carousel.Target{Role: carousel.RoleSurface}
	if onHit {
		target = h.Target
		s.surface = &h
	}
	s.C.PointerDown(in.CursorX, target)
}

func (s *Stage) release(in *Input) (Hit, bool) {
	if s.click.Pending() {
		return s.click.Up(&s.Hits, in.CursorX, in.CursorY)
	}
	tapped := s.surface
	s.surface = nil
	travel := s.maxTravel
	if s.C.Dragging() {
		travel = math.Max(travel, math.Abs(s.C.DragDelta()))
		s.C.PointerUp()
	}
	if tapped != nil && travel < tapSlop {
		if h, ok := s.Hits.At(in.CursorX, in.CursorY); ok && h.ID == tapped.ID && h.Index == tapped.Index {
			return h, true
		}
	}
	return Hit{}, false
}

// Cancel abandons any drag or pending click, e.g. when a viewer opens.
func (s *Stage) Cancel() {
	if s.C.Dragging() {
		s.C.PointerCancel()
	}
	s.click = Clicker{}
	s.surface = nil
}
