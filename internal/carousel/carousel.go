// Package carousel implements the navigation core shared by the lookbook
// carousels: layout geometry, drag and wheel gesture handling, keyboard
// routing and the index state machine that serializes every transition.
package carousel

import (
	"time"

	"go.uber.org/zap"
)

// Config bundles the tunables of a gesture-driven carousel.
type Config struct {
	Track TrackConfig
	Drag  DragConfig
	Wheel WheelConfig
}

func DefaultConfig() Config {
	return Config{
		Track: DefaultTrackConfig(),
		Drag:  DefaultDragConfig(),
		Wheel: DefaultWheelConfig(),
	}
}

// Carousel wires drag, wheel and keyboard input into a Track and turns the
// track position into a stage offset.
type Carousel struct {
	track *Track
	drag  *DragController
	wheel *WheelAdapter
	log   *zap.Logger

	measure    Measure
	lastOffset float64
}

// New creates a carousel over n items.
func New(n int, mode Mode, cfg Config, now func() time.Time, log *zap.Logger) *Carousel {
	if log == nil {
		log = zap.NewNop()
	}
	return &Carousel{
		track: NewTrack(n, mode, cfg.Track, now, log),
		drag:  NewDragController(cfg.Drag),
		wheel: NewWheelAdapter(cfg.Wheel, now),
		log:   log,
	}
}

// Track exposes the underlying index state machine.
func (c *Carousel) Track() *Track { return c.track }

// Len is the number of real items.
func (c *Carousel) Len() int { return c.track.Len() }

// CanNavigate is false for empty and single-item sequences; arrows and dots
// should then be drawn disabled.
func (c *Carousel) CanNavigate() bool { return c.track.Len() > 1 }

// SetMeasure records the latest layout. Unready measurements are kept so
// Offset can report them, but never produce a transform.
func (c *Carousel) SetMeasure(m Measure) { c.measure = m }

// Measure returns the latest layout.
func (c *Carousel) Measure() Measure { return c.measure }

// Frame must be called once per frame before input is applied.
func (c *Carousel) Frame() { c.track.Frame() }

// PointerDown starts a drag unless the target is interactive or there is
// nothing to navigate.
func (c *Carousel) PointerDown(x float64, target Target) bool {
	if !c.CanNavigate() {
		return false
	}
	if !c.drag.Down(x, target, c.track.Raw()) {
		return false
	}
	c.track.BeginDrag()
	return true
}

// PointerMove updates an active drag.
func (c *Carousel) PointerMove(x float64) {
	c.drag.Move(x)
}

// PointerUp finishes a drag, committing a step or snapping back.
func (c *Carousel) PointerUp() {
	r, ok := c.drag.Up(c.measure.Item)
	if !ok {
		return
	}
	c.release(r)
}

// PointerCancel ends a drag the same way as PointerUp.
func (c *Carousel) PointerCancel() {
	r, ok := c.drag.Cancel(c.measure.Item)
	if !ok {
		return
	}
	c.release(r)
}

func (c *Carousel) release(r Release) {
	from := c.track.Position()
	if step := c.measure.Step(); step > 0 {
		from -= r.DeltaX / step
	}
	c.track.Release(r, from)
	c.log.Debug("drag released",
		zap.Bool("commit", r.Commit),
		zap.Float64("dx", r.DeltaX),
		zap.Int("raw", c.track.Raw()))
}

// Dragging reports whether a drag is in progress.
func (c *Carousel) Dragging() bool { return c.drag.Dragging() }

// DragDelta is the live drag travel in pixels.
func (c *Carousel) DragDelta() float64 { return c.drag.DeltaX() }

// Wheel feeds a wheel event in pixels. It reports whether a step was
// committed.
func (c *Carousel) Wheel(dx, dy float64) bool {
	if !c.CanNavigate() {
		return false
	}
	dir := c.wheel.Handle(dx, dy, c.measure.Step(), c.track.Animating())
	if dir == 0 {
		return false
	}
	return c.track.Advance(dir)
}

// WheelAdapter exposes the wheel accumulator.
func (c *Carousel) WheelAdapter() *WheelAdapter { return c.wheel }

// Key routes a key press. Navigation keys are applied to the track; the
// resolved action is returned so the caller can handle open/close.
func (c *Carousel) Key(k Key, viewerOpen bool) Action {
	a := RouteKey(k, viewerOpen)
	if step := a.Step(); step != 0 && c.CanNavigate() {
		c.track.Advance(step)
	}
	return a
}

// Offset returns the stage translation including live drag travel. While the
// layout is unmeasured it returns the last good offset and false.
func (c *Carousel) Offset() (float64, bool) {
	off, ok := c.track.Offset(c.measure, c.drag.DeltaX())
	if !ok {
		return c.lastOffset, false
	}
	c.lastOffset = off
	return off, true
}

// ItemLeft returns the left edge of the rendered item at raw position i for
// the given stage offset.
func (c *Carousel) ItemLeft(offset float64, i int) float64 {
	return offset + float64(i)*c.measure.Step()
}

// Dot is one page indicator.
type Dot struct {
	Index  int
	Active bool
}

// Dots returns one indicator per real item; the active one always reflects
// the real index, never a clone.
func (c *Carousel) Dots() []Dot {
	n := c.track.Len()
	dots := make([]Dot, n)
	cur := c.track.Real()
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == cur}
	}
	return dots
}
