package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestBreakpointColumns(t *testing.T) {
	bp := DefaultBreakpoints()
	assert.Equal(t, 2, bp.Columns(375))
	assert.Equal(t, 2, bp.Columns(1023))
	assert.Equal(t, 3, bp.Columns(1024))
	assert.Equal(t, 3, bp.Columns(1279))
	assert.Equal(t, 5, bp.Columns(1280))
	assert.Equal(t, 5, bp.Columns(1920))
}

func TestPaginatorShortPageIsBackfilled(t *testing.T) {
	p := NewPaginator(seq(7), 2, 3)
	assert.Equal(t, 6, p.PerPage())
	assert.Equal(t, 2, p.TotalPages())

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5}, p.PageItems(0)); diff != "" {
		t.Errorf("page 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{6, 0, 1, 2, 3, 4}, p.PageItems(1)); diff != "" {
		t.Errorf("page 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginatorFewerItemsThanPage(t *testing.T) {
	p := NewPaginator(seq(2), 5, 3)
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, []int{0, 1, 0, 1}, p.Items())

	empty := NewPaginator([]int{}, 2, 3)
	assert.Equal(t, 1, empty.TotalPages())
	assert.Empty(t, empty.Items())
	empty.Next()
	empty.Prev()
	assert.Equal(t, 0, empty.Page())
}

func TestPaginatorWraps(t *testing.T) {
	p := NewPaginator(seq(18), 2, 3) // 3 pages
	p.Prev()
	assert.Equal(t, 2, p.Page())
	assert.Equal(t, PagePrev, p.Direction())

	p.Next()
	assert.Equal(t, 0, p.Page())
	assert.Equal(t, PageNext, p.Direction())
}

func TestPaginatorJumpTo(t *testing.T) {
	p := NewPaginator(seq(18), 2, 3)

	p.JumpTo(2)
	assert.Equal(t, 2, p.Page())
	assert.Equal(t, PageNext, p.Direction())

	p.JumpTo(0)
	assert.Equal(t, 0, p.Page())
	assert.Equal(t, PagePrev, p.Direction())

	p.JumpTo(99)
	assert.Equal(t, 2, p.Page())
	p.JumpTo(-4)
	assert.Equal(t, 0, p.Page())
}

func TestPaginatorSetColumnsReclamps(t *testing.T) {
	p := NewPaginator(seq(18), 2, 3) // 3 pages
	p.JumpTo(2)

	assert.True(t, p.SetColumns(5)) // 15 per page -> 2 pages
	assert.Equal(t, 2, p.TotalPages())
	assert.Equal(t, 1, p.Page())
	assert.Len(t, p.Items(), 15)

	assert.False(t, p.SetColumns(5))
}
