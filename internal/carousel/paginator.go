package carousel

// Breakpoints maps viewport widths to grid column counts. Widths at or above
// XL get XLCols, at or above LG get LGCols, anything narrower gets BaseCols.
type Breakpoints struct {
	LG       float64
	XL       float64
	BaseCols int
	LGCols   int
	XLCols   int
}

func DefaultBreakpoints() Breakpoints {
	return Breakpoints{LG: 1024, XL: 1280, BaseCols: 2, LGCols: 3, XLCols: 5}
}

// Columns returns the column count for a viewport width.
func (b Breakpoints) Columns(width float64) int {
	switch {
	case width >= b.XL:
		return b.XLCols
	case width >= b.LG:
		return b.LGCols
	default:
		return b.BaseCols
	}
}

// PageDirection hints which way a page change animates.
type PageDirection int

const (
	PageNext PageDirection = iota
	PagePrev
)

func (d PageDirection) String() string {
	if d == PagePrev {
		return "prev"
	}
	return "next"
}

// Paginator slices a flat list into fixed-size grid pages. Paging is cyclic
// and a short last page is filled with items from the start of the list so
// every page renders a full grid.
type Paginator[T any] struct {
	items []T
	cols  int
	rows  int
	page  int
	dir   PageDirection
}

// NewPaginator creates a paginator with the given grid shape.
func NewPaginator[T any](items []T, cols, rows int) *Paginator[T] {
	return &Paginator[T]{items: items, cols: max(cols, 1), rows: max(rows, 1)}
}

// Columns is the current column count.
func (p *Paginator[T]) Columns() int { return p.cols }

// Rows is the fixed number of rows per page.
func (p *Paginator[T]) Rows() int { return p.rows }

// PerPage is the page capacity.
func (p *Paginator[T]) PerPage() int { return p.cols * p.rows }

// Len is the number of items.
func (p *Paginator[T]) Len() int { return len(p.items) }

// SetColumns changes the grid width, recomputing the page count and
// clamping the current page into range. It reports whether anything changed.
func (p *Paginator[T]) SetColumns(cols int) bool {
	cols = max(cols, 1)
	if cols == p.cols {
		return false
	}
	p.cols = cols
	p.page = clamp(p.page, 0, p.TotalPages()-1)
	return true
}

// TotalPages is ceil(len/perPage), never less than one.
func (p *Paginator[T]) TotalPages() int {
	per := p.PerPage()
	return max(1, (len(p.items)+per-1)/per)
}

// Page is the current page index.
func (p *Paginator[T]) Page() int {
	return clamp(p.page, 0, p.TotalPages()-1)
}

// Direction is the hint recorded by the last page change.
func (p *Paginator[T]) Direction() PageDirection { return p.dir }

// Next moves forward, wrapping from the last page to the first.
func (p *Paginator[T]) Next() {
	p.dir = PageNext
	p.page = (p.Page() + 1) % p.TotalPages()
}

// Prev moves back, wrapping from the first page to the last.
func (p *Paginator[T]) Prev() {
	total := p.TotalPages()
	p.dir = PagePrev
	p.page = (p.Page() - 1 + total) % total
}

// JumpTo moves to page i, clamped into range.
func (p *Paginator[T]) JumpTo(i int) {
	cur := p.Page()
	if i > cur {
		p.dir = PageNext
	} else {
		p.dir = PagePrev
	}
	p.page = clamp(i, 0, p.TotalPages()-1)
}

// Items returns the cards on the current page.
func (p *Paginator[T]) Items() []T {
	return p.PageItems(p.Page())
}

// PageItems returns the cards for page i. A short page is backfilled with
// items from the start of the list, in order.
func (p *Paginator[T]) PageItems(i int) []T {
	if len(p.items) == 0 {
		return nil
	}
	per := p.PerPage()
	start := clamp(i, 0, p.TotalPages()-1) * per
	end := min(start+per, len(p.items))

	out := make([]T, 0, per)
	out = append(out, p.items[start:end]...)
	if need := per - len(out); need > 0 {
		out = append(out, p.items[:min(need, len(p.items))]...)
	}
	return out
}
