package carousel

import (
	"math"
	"time"
)

// WheelConfig controls how continuous wheel travel is turned into steps.
type WheelConfig struct {
	// Min and Max clamp the threshold derived from the item step.
	Min float64
	Max float64
	// Ratio of the item step that must be scrolled to advance once.
	Ratio float64
	// Idle is how long without wheel input before the accumulator clears.
	Idle time.Duration
	// DeadZone drops deltas smaller than this many pixels.
	DeadZone float64
}

func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Min:      70,
		Max:      220,
		Ratio:    0.45,
		Idle:     120 * time.Millisecond,
		DeadZone: 2,
	}
}

// Threshold is the accumulated travel needed for one step, given the
// distance between neighbouring items.
func (c WheelConfig) Threshold(step float64) float64 {
	return clampf(step*c.Ratio, c.Min, c.Max)
}

// WheelAdapter accumulates wheel deltas along the dominant axis and emits at
// most one step per threshold crossing.
type WheelAdapter struct {
	cfg  WheelConfig
	now  func() time.Time
	acc  float64
	last time.Time
}

// NewWheelAdapter returns an adapter reading time from now. A nil now uses
// time.Now.
func NewWheelAdapter(cfg WheelConfig, now func() time.Time) *WheelAdapter {
	if now == nil {
		now = time.Now
	}
	return &WheelAdapter{cfg: cfg, now: now}
}

// Dominant returns whichever of dx, dy has the larger magnitude.
func Dominant(dx, dy float64) float64 {
	if math.Abs(dx) > math.Abs(dy) {
		return dx
	}
	return dy
}

// Handle feeds one wheel event. step is the current item step in pixels and
// busy reports whether a committed transition is in flight. It returns +1 or
// -1 when the accumulator crossed the threshold, 0 otherwise.
func (w *WheelAdapter) Handle(dx, dy, step float64, busy bool) int {
	d := Dominant(dx, dy)
	if math.Abs(d) < w.cfg.DeadZone {
		return 0
	}
	if busy {
		return 0
	}
	now := w.now()
	w.expire(now)

	w.acc += d
	w.last = now

	if math.Abs(w.acc) >= w.cfg.Threshold(step) {
		dir := 1
		if w.acc < 0 {
			dir = -1
		}
		w.acc = 0
		return dir
	}
	return 0
}

// Accumulated returns the pending travel, taking the idle window into account.
func (w *WheelAdapter) Accumulated() float64 {
	w.expire(w.now())
	return w.acc
}

// Reset drops any pending travel.
func (w *WheelAdapter) Reset() {
	w.acc = 0
	w.last = time.Time{}
}

func (w *WheelAdapter) expire(now time.Time) {
	if !w.last.IsZero() && now.Sub(w.last) >= w.cfg.Idle {
		w.acc = 0
		w.last = time.Time{}
	}
}
