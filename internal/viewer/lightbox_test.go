package viewer

import (
	"fmt"
	"testing"
	"time"

	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func archive(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{ID: fmt.Sprintf("va-%d", i+1), HeroImage: fmt.Sprintf("/a%d.png", i+1)}
	}
	return items
}

func TestLightboxCycles(t *testing.T) {
	lb := NewLightbox("archive", archive(6), nil, nil, nil)
	require.True(t, lb.Open(0))

	lb.Prev()
	assert.Equal(t, 5, lb.Index())
	lb.Next()
	lb.Next()
	assert.Equal(t, 1, lb.Index())
}

func TestLightboxOpenClamps(t *testing.T) {
	lb := NewLightbox("archive", archive(3), nil, nil, nil)
	lb.Open(9)
	assert.Equal(t, 2, lb.Index())
	lb.Open(-4)
	assert.Equal(t, 0, lb.Index())

	empty := NewLightbox("archive", nil, nil, nil, nil)
	assert.False(t, empty.Open(0))
	assert.False(t, empty.Visible())
}

func TestLightboxClosingPhase(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	lock := NewBodyLock(OverflowAuto)
	lb := NewLightbox("archive", archive(4), lock, clk.Now, nil)

	lb.Open(1)
	assert.True(t, lock.Held())

	assert.True(t, lb.HandleKey(carousel.KeyEscape))
	assert.Equal(t, PhaseClosing, lb.Phase())
	assert.True(t, lb.Visible())
	assert.False(t, lb.Interactive())

	// Arrows are swallowed but do nothing while fading out.
	assert.True(t, lb.HandleKey(carousel.KeyRight))
	assert.Equal(t, 1, lb.Index())

	clk.Advance(90 * time.Millisecond)
	lb.Frame()
	assert.InDelta(t, 0.5, lb.Alpha(), 1e-9)
	assert.True(t, lock.Held())

	clk.Advance(90 * time.Millisecond)
	lb.Frame()
	assert.Equal(t, PhaseClosed, lb.Phase())
	assert.False(t, lock.Held())
	assert.False(t, lb.HandleKey(carousel.KeyEscape))
}

func TestLightboxReopenDuringClosing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	lock := NewBodyLock(OverflowAuto)
	lb := NewLightbox("archive", archive(4), lock, clk.Now, nil)

	lb.Open(0)
	lb.Close()
	lb.Open(2)
	clk.Advance(time.Second)
	lb.Frame()
	assert.Equal(t, PhaseOpen, lb.Phase())
	assert.True(t, lock.Held())
	assert.Equal(t, 1, lock.Acquisitions())
}

func TestLightboxDispose(t *testing.T) {
	lock := NewBodyLock(OverflowAuto)
	lb := NewLightbox("archive", archive(2), lock, nil, nil)
	lb.Open(0)
	lb.Dispose()
	assert.False(t, lock.Held())
	_, ok := lb.Current()
	assert.False(t, ok)
}

func TestLightboxSetItems(t *testing.T) {
	lock := NewBodyLock(OverflowAuto)
	lb := NewLightbox("archive", archive(6), lock, nil, nil)
	lb.Open(5)

	lb.SetItems(archive(3))
	assert.Equal(t, 2, lb.Index())
	cur, ok := lb.Current()
	require.True(t, ok)
	assert.Equal(t, "va-3", cur.ID)

	lb.SetItems(nil)
	assert.False(t, lb.Visible())
	assert.False(t, lock.Held())
}
