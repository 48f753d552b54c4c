package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapRailMeasure(t *testing.T) {
	r := NewSnapRail(32)
	_, ok := r.ScrollTo(2)
	assert.False(t, ok)

	// 8 cards of 300 with 32 gaps: 8*300 + 7*32 = 2624
	r.Measure(300, 2624, 1200)
	assert.Equal(t, 4, r.MaxIndex()) // round(1424/332)
	assert.Equal(t, 5, r.PageCount())

	r.Measure(300, 1000, 1200)
	assert.Equal(t, 0, r.MaxIndex())
	assert.Equal(t, 1, r.PageCount())
}

func TestSnapRailScrollTo(t *testing.T) {
	r := NewSnapRail(32)
	r.Measure(300, 2624, 1200)

	left, ok := r.ScrollTo(2)
	assert.True(t, ok)
	assert.Equal(t, 664.0, left)
	assert.Equal(t, 2, r.Active())

	left, _ = r.ScrollTo(9)
	assert.Equal(t, 4, r.Active())
	assert.Equal(t, 1328.0, left)

	left, _ = r.Prev()
	assert.Equal(t, 3, r.Active())
	assert.Equal(t, 996.0, left)
}

func TestSnapRailOnScroll(t *testing.T) {
	r := NewSnapRail(32)
	r.Measure(300, 2624, 1200)

	r.OnScroll(500)
	assert.Equal(t, 2, r.Active()) // round(1.506)
	r.OnScroll(5000)
	assert.Equal(t, 4, r.Active())

	r.Measure(300, 1300, 1200)
	assert.Equal(t, 0, r.MaxIndex())
	assert.Equal(t, 0, r.Active())
}
