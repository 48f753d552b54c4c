package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragThreshold(t *testing.T) {
	cfg := DefaultDragConfig()
	assert.Equal(t, 66.0, cfg.Threshold(300))
	assert.Equal(t, 52.0, cfg.Threshold(100))
	assert.Equal(t, 160.0, cfg.Threshold(2000))
	assert.Equal(t, 52.0, cfg.Threshold(0))
}

func TestDragThresholdBoundary(t *testing.T) {
	tests := []struct {
		name   string
		dx     float64
		commit bool
		dir    int
	}{
		{"just short left", -65, false, 0},
		{"exactly threshold left", -66, true, 1},
		{"just short right", 65, false, 0},
		{"exactly threshold right", 66, true, -1},
		{"no travel", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDragController(DefaultDragConfig())
			require.True(t, d.Down(500, Target{}, 3))
			d.Move(500 + tt.dx)

			r, ok := d.Up(300)
			require.True(t, ok)
			assert.Equal(t, tt.commit, r.Commit)
			assert.Equal(t, tt.dir, r.Dir)
			assert.Equal(t, 3+tt.dir, r.Target())
			assert.False(t, d.Dragging())
		})
	}
}

func TestDragIgnoresInteractiveTargets(t *testing.T) {
	d := NewDragController(DefaultDragConfig())
	for _, tgt := range []Target{
		{Role: RoleButton},
		{Role: RoleLink},
		{Role: RoleInput},
		{NoDrag: true},
	} {
		assert.False(t, d.Down(10, tgt, 0))
		assert.False(t, d.Dragging())
	}
	assert.True(t, d.Down(10, Target{Role: RoleSurface}, 0))
}

func TestDragUpWithoutDown(t *testing.T) {
	d := NewDragController(DefaultDragConfig())
	assert.Zero(t, d.Move(40))
	_, ok := d.Up(300)
	assert.False(t, ok)
}

func TestDragCancelEvaluatesLikeUp(t *testing.T) {
	d := NewDragController(DefaultDragConfig())
	d.Down(0, Target{}, 1)
	d.Move(-200)
	r, ok := d.Cancel(300)
	require.True(t, ok)
	assert.True(t, r.Commit)
	assert.Equal(t, 2, r.Target())
}
