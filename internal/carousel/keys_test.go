package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteKey(t *testing.T) {
	tests := []struct {
		key  Key
		open bool
		want Action
	}{
		{KeyLeft, false, ActionPrev},
		{KeyRight, false, ActionNext},
		{KeyEnter, false, ActionOpen},
		{KeyEscape, false, ActionNone},
		{KeyEscape, true, ActionClose},
		{KeyLeft, true, ActionModal},
		{KeyRight, true, ActionModal},
		{KeyNone, true, ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RouteKey(tt.key, tt.open), "key %d open %v", tt.key, tt.open)
	}
}

func TestCarouselKeyIgnoredWhileViewerOpen(t *testing.T) {
	clk := newFakeClock()
	c := New(5, Loop, DefaultConfig(), clk.Now, nil)

	assert.Equal(t, ActionModal, c.Key(KeyRight, true))
	assert.Equal(t, 1, c.Track().Raw())

	assert.Equal(t, ActionNext, c.Key(KeyRight, false))
	assert.Equal(t, 2, c.Track().Raw())
}
