package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/atelier/internal/carousel"
)

func TestHitListTopmost(t *testing.T) {
	var h HitList
	h.Surface("card", 0, ButtonRect{X: 0, Y: 0, W: 100, H: 100})
	h.Button("view", 0, ButtonRect{X: 40, Y: 40, W: 20, H: 20})

	hit, ok := h.At(50, 50)
	require.True(t, ok)
	assert.Equal(t, "view", hit.ID)
	assert.True(t, hit.Target.Interactive())

	hit, ok = h.At(10, 10)
	require.True(t, ok)
	assert.Equal(t, "card", hit.ID)
	assert.False(t, hit.Target.Interactive())

	_, ok = h.At(200, 200)
	assert.False(t, ok)

	h.Reset()
	assert.Zero(t, h.Len())
}

func TestClickerNeedsSameHit(t *testing.T) {
	var h HitList
	h.Button("prev", 0, ButtonRect{X: 0, Y: 0, W: 40, H: 40})
	h.Button("next", 0, ButtonRect{X: 100, Y: 0, W: 40, H: 40})

	var c Clicker
	a, _ := h.At(10, 10)
	c.Down(a)
	assert.True(t, c.Pending())
	_, ok := c.Up(&h, 110, 10)
	assert.False(t, ok)
	assert.False(t, c.Pending())

	c.Down(a)
	got, ok := c.Up(&h, 20, 20)
	require.True(t, ok)
	assert.Equal(t, "prev", got.ID)

	_, ok = c.Up(&h, 20, 20)
	assert.False(t, ok, "release without a press")
}

func newStage() *Stage {
	now := time.Unix(0, 0)
	c := carousel.New(5, carousel.Clamped, carousel.DefaultConfig(), func() time.Time { return now }, nil)
	c.SetMeasure(carousel.Measure{Container: 1200, Item: 300, Gap: 40})
	s := &Stage{C: c, Rect: ButtonRect{X: 0, Y: 0, W: 1200, H: 400}}
	s.Hits.Surface("card", 2, ButtonRect{X: 0, Y: 0, W: 300, H: 400})
	s.Hits.Button("next", 0, ButtonRect{X: 1000, Y: 420, W: 40, H: 40})
	return s
}

func TestStageTapOnCard(t *testing.T) {
	s := newStage()

	_, ok := s.Handle(&Input{CursorX: 100, CursorY: 100, Pressed: true, Held: true})
	assert.False(t, ok)
	assert.True(t, s.C.Dragging())

	hit, ok := s.Handle(&Input{CursorX: 103, CursorY: 100, Released: true})
	require.True(t, ok)
	assert.Equal(t, "card", hit.ID)
	assert.Equal(t, 2, hit.Index)
	assert.False(t, s.C.Dragging())
	assert.Equal(t, 0, s.C.Track().Raw())
}

func TestStageDragIsNotATap(t *testing.T) {
	s := newStage()

	s.Handle(&Input{CursorX: 250, CursorY: 100, Pressed: true, Held: true})
	s.Handle(&Input{CursorX: 150, CursorY: 100, Held: true})
	assert.Equal(t, -100.0, s.C.DragDelta())

	_, ok := s.Handle(&Input{CursorX: 150, CursorY: 100, Released: true})
	assert.False(t, ok)
	assert.Equal(t, 1, s.C.Track().Raw())
}

func TestStageButtonClickDoesNotDrag(t *testing.T) {
	s := newStage()

	s.Handle(&Input{CursorX: 1010, CursorY: 430, Pressed: true, Held: true})
	assert.False(t, s.C.Dragging())

	hit, ok := s.Handle(&Input{CursorX: 1012, CursorY: 432, Released: true})
	require.True(t, ok)
	assert.Equal(t, "next", hit.ID)
}

func TestStageWheelOnlyInsideRect(t *testing.T) {
	s := newStage()

	s.Handle(&Input{CursorX: 600, CursorY: 600, WheelY: 300})
	assert.Equal(t, 0, s.C.Track().Raw())

	s.Handle(&Input{CursorX: 600, CursorY: 200, WheelY: 300})
	assert.Equal(t, 1, s.C.Track().Raw())
}

func TestStageCancelDropsDrag(t *testing.T) {
	s := newStage()
	s.Handle(&Input{CursorX: 250, CursorY: 100, Pressed: true, Held: true})
	require.True(t, s.C.Dragging())

	s.Cancel()
	assert.False(t, s.C.Dragging())
	_, ok := s.Handle(&Input{CursorX: 250, CursorY: 100, Released: true})
	assert.False(t, ok)
}
