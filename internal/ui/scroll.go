package ui

import "math"

// ScrollState provides horizontal scroll tracking with smooth animation,
// the way a native overflow container with smooth scrolling behaves.
type ScrollState struct {
	ScrollX float64
	TargetX float64
	Max     float64
}

// ScrollTo sets the animation target, clamped to the scroll range.
func (s *ScrollState) ScrollTo(x float64) {
	s.TargetX = math.Max(0, math.Min(x, s.Max))
}

// ScrollBy nudges the target, e.g. from wheel travel.
func (s *ScrollState) ScrollBy(dx float64) {
	s.ScrollTo(s.TargetX + dx)
}

// SetMax updates the scroll range after a resize and re-clamps.
func (s *ScrollState) SetMax(max float64) {
	s.Max = math.Max(0, max)
	s.ScrollTo(s.TargetX)
	s.ScrollX = math.Min(s.ScrollX, s.Max)
}

// Animate performs smooth scroll interpolation. Call this once per Update.
func (s *ScrollState) Animate() {
	s.ScrollX = Lerp(s.ScrollX, s.TargetX, ScrollAnimSpeed)
	if math.Abs(s.ScrollX-s.TargetX) < 0.5 {
		s.ScrollX = s.TargetX
	}
}

// Settled reports whether the animation has reached its target.
func (s *ScrollState) Settled() bool { return s.ScrollX == s.TargetX }

// Reset sets scroll position back to the start.
func (s *ScrollState) Reset() {
	s.ScrollX = 0
	s.TargetX = 0
}
