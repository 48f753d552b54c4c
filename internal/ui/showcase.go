package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/viewer"
)

// slideSpeed is the fraction of the remaining page slide covered per frame.
const slideSpeed = 0.2

// ShowcaseScreen is the bespoke grid: a fixed number of rows whose column
// count follows the window width, paged left and right.
type ShowcaseScreen struct {
	deps    *Deps
	pages   *carousel.Paginator[catalog.Item]
	wheel   *carousel.WheelAdapter
	hits    HitList
	click   Clicker
	overlay *ViewerOverlay

	area ButtonRect
	// slide runs from 1 to 0 after a page change; the grid enters from the
	// side given by the paginator's direction.
	slide float64
}

func NewShowcaseScreen(items []catalog.Item, deps *Deps) *ShowcaseScreen {
	rows := deps.RowsPerPage
	if rows <= 0 {
		rows = 2
	}
	v := viewer.New("showcase", deps.Lock, deps.logger())
	return &ShowcaseScreen{
		deps:    deps,
		pages:   carousel.NewPaginator(items, deps.Breakpoints.BaseCols, rows),
		wheel:   carousel.NewWheelAdapter(deps.Carousel.Wheel, deps.Now),
		overlay: NewViewerOverlay(v, deps),
	}
}

func (s *ShowcaseScreen) Name() string { return "showcase" }

func (s *ShowcaseScreen) OnEnter() {}

func (s *ShowcaseScreen) OnExit() {
	s.click = Clicker{}
	s.overlay.V.Close()
}

func (s *ShowcaseScreen) ModalOpen() bool { return s.overlay.V.IsOpen() }

func (s *ShowcaseScreen) turn(fn func()) {
	before := s.pages.Page()
	fn()
	if s.pages.Page() != before {
		s.slide = 1
	}
}

func (s *ShowcaseScreen) Update(in *Input) error {
	if s.slide > 0 {
		s.slide -= s.slide * slideSpeed
		if s.slide < 0.01 {
			s.slide = 0
		}
	}
	if s.overlay.Update(in) {
		return nil
	}

	if in.Pressed {
		if h, ok := s.hits.At(in.CursorX, in.CursorY); ok {
			s.click.Down(h)
		}
	}
	if in.Released {
		if h, ok := s.click.Up(&s.hits, in.CursorX, in.CursorY); ok {
			s.activate(h)
		}
	}

	if in.Wheeled() && s.area.Contains(in.CursorX, in.CursorY) {
		if dir := s.wheel.Handle(in.WheelX, in.WheelY, s.area.W, s.slide > 0); dir > 0 {
			s.turn(s.pages.Next)
		} else if dir < 0 {
			s.turn(s.pages.Prev)
		}
	}

	switch carousel.RouteKey(in.Key, false) {
	case carousel.ActionNext:
		s.turn(s.pages.Next)
	case carousel.ActionPrev:
		s.turn(s.pages.Prev)
	}
	return nil
}

func (s *ShowcaseScreen) activate(h Hit) {
	switch h.ID {
	case "prev":
		s.turn(s.pages.Prev)
	case "next":
		s.turn(s.pages.Next)
	case "page":
		s.turn(func() { s.pages.JumpTo(h.Index) })
	case "card":
		items := s.pages.Items()
		if h.Index >= 0 && h.Index < len(items) {
			s.click = Clicker{}
			s.overlay.V.Open(items[h.Index])
		}
	}
}

func (s *ShowcaseScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	s.hits.Reset()

	DrawText(dst, letterSpaced("Bespoke"), SectionPadding, TabBarHeight+32, FontSizeCaption, ColorPrimary)
	DrawText(dst, "Made to measure", SectionPadding, TabBarHeight+48, FontSizeTitle, ColorBone)

	if s.pages.Len() == 0 {
		DrawTextCentered(dst, "Nothing to show", sw/2, sh/2, FontSizeHeading, ColorTextMuted)
		return
	}
	s.pages.SetColumns(s.deps.Breakpoints.Columns(sw))

	s.area = ButtonRect{X: SectionPadding, Y: TabBarHeight + 110, W: sw - 2*SectionPadding, H: sh - TabBarHeight - 210}
	shift := s.slide * s.area.W * 0.25
	if s.pages.Direction() == carousel.PagePrev {
		shift = -shift
	}
	alpha := 1 - s.slide

	clip := dst.SubImage(rectOf(s.area)).(*ebiten.Image)
	items := s.pages.Items()
	cells := GridCells(s.area, s.pages.Columns(), s.pages.Rows(), ShowcaseGap)
	for i, cell := range cells {
		if i >= len(items) {
			break
		}
		r := cell
		r.X += shift
		DrawImageCover(clip, s.deps.image(items[i].HeroImage, cache.Full), r, items[i].Title, CardStyle{Alpha: alpha})
		tw := r.W - 24
		DrawText(clip, truncateText(items[i].Title, tw, FontSizeBody), r.X+12, r.Y+r.H-44, FontSizeBody, ColorBone)
		DrawText(clip, letterSpaced(items[i].Label()), r.X+12, r.Y+r.H-22, FontSizeCaption, ColorPrimary)
		s.hits.Button("card", i, cell)
	}

	y := s.area.Y + s.area.H + 40
	total := s.pages.TotalPages()
	can := total > 1
	s.hits.Button("prev", 0, drawRoundButton(dst, sw/2-140, y, ChevronSize, can, chevronLeft))
	s.hits.Button("next", 0, drawRoundButton(dst, sw/2+140, y, ChevronSize, can, chevronRight))
	for i, r := range drawDots(dst, sw/2, y, total, s.pages.Page()) {
		s.hits.Button("page", i, r)
	}

	s.overlay.Draw(dst)
}

func (s *ShowcaseScreen) DebugLines() []string {
	return []string{
		fmt.Sprintf("page=%d/%d cols=%d rows=%d dir=%s", s.pages.Page()+1, s.pages.TotalPages(), s.pages.Columns(), s.pages.Rows(), s.pages.Direction()),
		fmt.Sprintf("slide=%.2f wheel=%.0f", s.slide, s.wheel.Accumulated()),
		fmt.Sprintf("viewer open=%v shot=%s", s.overlay.V.IsOpen(), s.overlay.V.ActiveShot()),
	}
}
