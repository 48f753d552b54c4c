package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finish(clk *fakeClock, tr *Track) {
	clk.Advance(DefaultTrackConfig().Commit)
	tr.Frame()
}

func TestTrackGoToClamps(t *testing.T) {
	for _, mode := range []Mode{Clamped, Loop} {
		for i := -10; i <= 20; i++ {
			clk := newFakeClock()
			tr := NewTrack(5, mode, DefaultTrackConfig(), clk.Now, nil)
			tr.GoTo(i)

			lo, hi := tr.RawRange()
			assert.GreaterOrEqual(t, tr.Raw(), lo)
			assert.LessOrEqual(t, tr.Raw(), hi)
			assert.GreaterOrEqual(t, tr.Real(), 0)
			assert.LessOrEqual(t, tr.Real(), 4)

			finish(clk, tr)
			assert.GreaterOrEqual(t, tr.Raw(), lo)
			assert.LessOrEqual(t, tr.Raw(), hi)
		}
	}
}

func TestTrackRanges(t *testing.T) {
	tr := NewTrack(5, Loop, DefaultTrackConfig(), nil, nil)
	lo, hi := tr.RawRange()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 6, hi)
	assert.Equal(t, 7, tr.RenderedLen())
	assert.Equal(t, 1, tr.Raw())
	assert.Equal(t, 0, tr.Real())

	tr = NewTrack(5, Clamped, DefaultTrackConfig(), nil, nil)
	lo, hi = tr.RawRange()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
	assert.Equal(t, 5, tr.RenderedLen())
}

func TestTrackSingleFlight(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(5, Clamped, DefaultTrackConfig(), clk.Now, nil)

	assert.True(t, tr.GoTo(3))
	assert.False(t, tr.GoTo(1))
	assert.Equal(t, 3, tr.Raw())
	assert.True(t, tr.Animating())

	// not finished yet
	clk.Advance(499 * time.Millisecond)
	tr.Frame()
	assert.True(t, tr.Animating())
	assert.False(t, tr.Next())

	clk.Advance(time.Millisecond)
	tr.Frame()
	assert.False(t, tr.Animating())
	assert.True(t, tr.GoTo(1))
	assert.Equal(t, 1, tr.Raw())
}

func TestTrackNoopForTinySequences(t *testing.T) {
	for _, n := range []int{0, 1} {
		tr := NewTrack(n, Loop, DefaultTrackConfig(), nil, nil)
		assert.Equal(t, Clamped, tr.Mode())
		assert.False(t, tr.Next())
		assert.False(t, tr.Prev())
		assert.False(t, tr.GoTo(7))
		assert.False(t, tr.Animating())
		assert.Equal(t, 0, tr.Raw())
		assert.Equal(t, 0, tr.Real())
		assert.Equal(t, 1.0, tr.Progress())
	}
}

func TestTrackLoopWrapsBackward(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(5, Loop, DefaultTrackConfig(), clk.Now, nil)
	require.Equal(t, 0, tr.Real())

	require.True(t, tr.Prev())
	assert.Equal(t, 0, tr.Raw(), "lands on the leading clone first")
	assert.Equal(t, 4, tr.RealAt(tr.Raw()))

	finish(clk, tr)
	assert.False(t, tr.Animating())
	assert.Equal(t, 5, tr.Raw())
	assert.Equal(t, 4, tr.Real())
	assert.False(t, tr.TransitionsEnabled(), "rebase jump is not animated")

	tr.Frame()
	assert.False(t, tr.TransitionsEnabled())
	tr.Frame()
	assert.True(t, tr.TransitionsEnabled())
	assert.Equal(t, 5, tr.Raw())
}

func TestTrackLoopWrapsForward(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(3, Loop, DefaultTrackConfig(), clk.Now, nil)

	var settled []int
	tr.OnSettle = func(i int) { settled = append(settled, i) }

	for i := 0; i < 3; i++ {
		require.True(t, tr.Next())
		finish(clk, tr)
		tr.Frame()
		tr.Frame()
	}
	assert.Equal(t, 1, tr.Raw())
	assert.Equal(t, 0, tr.Real())
	assert.Equal(t, []int{1, 2, 0}, settled)
}

func TestTrackTransitionFinishedOnce(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(4, Loop, DefaultTrackConfig(), clk.Now, nil)
	calls := 0
	tr.OnSettle = func(int) { calls++ }

	tr.Prev()
	tr.TransitionFinished()
	tr.TransitionFinished()
	finish(clk, tr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, tr.Raw())
}

func TestTrackGoToDuringRebaseRearms(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(4, Loop, DefaultTrackConfig(), clk.Now, nil)
	tr.Prev()
	finish(clk, tr)
	require.False(t, tr.TransitionsEnabled())

	assert.True(t, tr.Prev())
	assert.True(t, tr.TransitionsEnabled())
	assert.Equal(t, 3, tr.Raw())
}

func TestTrackGoToRealAndProgress(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(4, Loop, DefaultTrackConfig(), clk.Now, nil)
	tr.GoToReal(2)
	assert.Equal(t, 3, tr.Raw())
	assert.Equal(t, 2, tr.Real())
	assert.Equal(t, 0.75, tr.Progress())
}

func TestTrackPositionEases(t *testing.T) {
	clk := newFakeClock()
	tr := NewTrack(5, Clamped, DefaultTrackConfig(), clk.Now, nil)
	tr.GoTo(2)
	assert.Equal(t, 0.0, tr.Position())

	clk.Advance(250 * time.Millisecond)
	p := tr.Position()
	assert.Greater(t, p, 1.0)
	assert.Less(t, p, 2.0)

	clk.Advance(250 * time.Millisecond)
	assert.Equal(t, 2.0, tr.Position())
}

func TestCarouselDragCommitAndSnapBack(t *testing.T) {
	clk := newFakeClock()
	c := New(5, Loop, DefaultConfig(), clk.Now, nil)
	c.SetMeasure(Measure{Container: 1200, Item: 300, Gap: 40})

	require.True(t, c.PointerDown(500, Target{}))
	assert.False(t, c.Track().TransitionsEnabled())
	c.PointerMove(435)
	assert.Equal(t, -65.0, c.DragDelta())
	c.PointerUp()
	assert.Equal(t, 1, c.Track().Raw())
	assert.False(t, c.Track().Animating())
	assert.True(t, c.Track().TransitionsEnabled())

	require.True(t, c.PointerDown(500, Target{}))
	c.PointerMove(434)
	c.PointerUp()
	assert.Equal(t, 2, c.Track().Raw())
	assert.True(t, c.Track().Animating())
}

func TestCarouselDragCommitIgnoredWhileAnimating(t *testing.T) {
	clk := newFakeClock()
	c := New(5, Clamped, DefaultConfig(), clk.Now, nil)
	c.SetMeasure(Measure{Container: 1200, Item: 300, Gap: 40})

	require.True(t, c.Track().Next())
	require.True(t, c.PointerDown(500, Target{}), "drags are still captured")
	c.PointerMove(200)
	c.PointerUp()
	assert.Equal(t, 1, c.Track().Raw())

	finish(clk, c.Track())
	assert.False(t, c.Track().Animating())
}

func TestCarouselDragOverlappingCommits(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		// before runs after the pointer went down at x=500.
		before   func(c *Carousel, clk *fakeClock)
		moveTo   float64
		wantRaw  int
		wantReal int
	}{
		{
			name:     "wheel commit then short release",
			mode:     Clamped,
			before:   func(c *Carousel, _ *fakeClock) { require.True(t, c.Wheel(0, 200)) },
			moveTo:   505,
			wantRaw:  1,
			wantReal: 1,
		},
		{
			name: "key commit then short release",
			mode: Clamped,
			before: func(c *Carousel, _ *fakeClock) {
				c.Key(KeyRight, false)
				require.Equal(t, 1, c.Track().Raw())
			},
			moveTo:   505,
			wantRaw:  1,
			wantReal: 1,
		},
		{
			name: "key commit finished then short release",
			mode: Clamped,
			before: func(c *Carousel, clk *fakeClock) {
				c.Key(KeyRight, false)
				clk.Advance(DefaultTrackConfig().Commit)
				c.Frame()
				require.False(t, c.Track().Animating())
			},
			moveTo:   490,
			wantRaw:  1,
			wantReal: 1,
		},
		{
			name: "key commit finished then committing release",
			mode: Clamped,
			before: func(c *Carousel, clk *fakeClock) {
				c.Key(KeyRight, false)
				clk.Advance(DefaultTrackConfig().Commit)
				c.Frame()
			},
			moveTo:   400,
			wantRaw:  2,
			wantReal: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			c := New(5, tt.mode, DefaultConfig(), clk.Now, nil)
			c.SetMeasure(Measure{Container: 1200, Item: 300, Gap: 40})

			require.True(t, c.PointerDown(500, Target{}))
			tt.before(c, clk)
			c.PointerMove(tt.moveTo)
			c.PointerUp()
			assert.Equal(t, tt.wantRaw, c.Track().Raw(), "release keeps the accepted commit")

			for i := 0; i < 60; i++ {
				clk.Advance(20 * time.Millisecond)
				c.Frame()
			}
			assert.False(t, c.Track().Animating())
			assert.Equal(t, tt.wantRaw, c.Track().Raw())
			assert.Equal(t, tt.wantReal, c.Track().Real())
		})
	}
}

func TestCarouselDragAcrossLoopRebase(t *testing.T) {
	tests := []struct {
		name     string
		moveTo   float64
		wantReal int
	}{
		{name: "short release stays on rebased item", moveTo: 510, wantReal: 4},
		{name: "drag right steps back", moveTo: 600, wantReal: 3},
		{name: "drag left wraps forward", moveTo: 400, wantReal: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			c := New(5, Loop, DefaultConfig(), clk.Now, nil)
			c.SetMeasure(Measure{Container: 1200, Item: 300, Gap: 40})

			require.True(t, c.Track().Prev())
			require.Equal(t, 0, c.Track().Raw(), "commit lands on the leading clone")
			require.True(t, c.PointerDown(500, Target{}))

			clk.Advance(DefaultTrackConfig().Commit)
			c.Frame()
			require.Equal(t, 5, c.Track().Raw(), "rebased under the finger")

			c.PointerMove(tt.moveTo)
			c.PointerUp()
			for i := 0; i < 60; i++ {
				clk.Advance(20 * time.Millisecond)
				c.Frame()
			}

			tr := c.Track()
			assert.False(t, tr.Animating())
			assert.True(t, tr.TransitionsEnabled())
			assert.Equal(t, tt.wantReal, tr.Real())
			assert.Equal(t, tr.Real(), tr.RealAt(tr.Raw()), "never at rest on a clone")
			lo, hi := tr.RawRange()
			assert.Greater(t, tr.Raw(), lo)
			assert.Less(t, tr.Raw(), hi)
		})
	}
}

func TestCarouselOffsetWaitsForMeasure(t *testing.T) {
	c := New(3, Loop, DefaultConfig(), nil, nil)
	_, ok := c.Offset()
	assert.False(t, ok)

	c.SetMeasure(Measure{Container: 1000, Item: 200, Gap: 40})
	off, ok := c.Offset()
	assert.True(t, ok)
	assert.Equal(t, 400.0-240.0, off)

	c.SetMeasure(Measure{Container: 0, Item: 200, Gap: 40})
	last, ok := c.Offset()
	assert.False(t, ok)
	assert.Equal(t, off, last)
}

func TestCarouselDotsUseRealIndex(t *testing.T) {
	clk := newFakeClock()
	c := New(3, Loop, DefaultConfig(), clk.Now, nil)
	c.Track().Prev()

	dots := c.Dots()
	require.Len(t, dots, 3)
	assert.True(t, dots[0].Active, "leading clone still reports real index 0 until rebase")

	finish(clk, c.Track())
	dots = c.Dots()
	assert.True(t, dots[2].Active)
}

func TestCarouselWheelAdvances(t *testing.T) {
	clk := newFakeClock()
	c := New(5, Clamped, DefaultConfig(), clk.Now, nil)
	c.SetMeasure(Measure{Container: 1000, Item: 200, Gap: 40})

	assert.True(t, c.Wheel(0, 120))
	assert.Equal(t, 1, c.Track().Raw())
	assert.False(t, c.Wheel(0, 400), "ignored while animating")
	finish(clk, c.Track())
	assert.True(t, c.Wheel(0, -120))
	assert.Equal(t, 0, c.Track().Raw())
}
