package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGridCells(t *testing.T) {
	got := GridCells(ButtonRect{X: 10, Y: 20, W: 220, H: 100}, 2, 2, 20)
	want := []ButtonRect{
		{X: 10, Y: 20, W: 100, H: 40},
		{X: 130, Y: 20, W: 100, H: 40},
		{X: 10, Y: 80, W: 100, H: 40},
		{X: 130, Y: 80, W: 100, H: 40},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GridCells mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, GridCells(ButtonRect{W: 100, H: 100}, 0, 2, 10))
	assert.Nil(t, GridCells(ButtonRect{W: 10, H: 100}, 3, 1, 10), "gaps wider than the area")
}

func TestRepeatFires(t *testing.T) {
	assert.False(t, repeatFires(1))
	assert.False(t, repeatFires(repeatDelay-1))
	assert.True(t, repeatFires(repeatDelay))
	assert.False(t, repeatFires(repeatDelay+1))
	assert.True(t, repeatFires(repeatDelay+repeatInterval))
}

func TestScrollStateClampsAndSettles(t *testing.T) {
	var s ScrollState
	s.SetMax(500)
	s.ScrollTo(800)
	assert.Equal(t, 500.0, s.TargetX)

	s.ScrollBy(-1000)
	assert.Equal(t, 0.0, s.TargetX)

	s.ScrollTo(200)
	for i := 0; i < 200 && !s.Settled(); i++ {
		s.Animate()
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 200.0, s.ScrollX)

	s.SetMax(100)
	assert.Equal(t, 100.0, s.TargetX)
	assert.Equal(t, 100.0, s.ScrollX)

	s.Reset()
	assert.Zero(t, s.ScrollX)
}

func TestTabBarNextWraps(t *testing.T) {
	tb := NewTabBar([]string{"lookbook", "showcase", "film"})
	assert.Equal(t, "lookbook", tb.Next(), "no active tab starts at the first")
	tb.Active = "showcase"
	assert.Equal(t, "film", tb.Next())
	tb.Active = "film"
	assert.Equal(t, "lookbook", tb.Next())
	assert.Empty(t, NewTabBar(nil).Next())
}

func TestButtonRectContains(t *testing.T) {
	r := ButtonRect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 30))
	assert.False(t, r.Contains(31, 20))
	assert.False(t, ButtonRect{}.Contains(0, 0))
}
