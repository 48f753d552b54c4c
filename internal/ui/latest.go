package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/viewer"
)

// LatestScreen is the latest attires rail: a smooth-scrolling row that snaps
// card by card, moved by arrows, drag or wheel.
type LatestScreen struct {
	deps    *Deps
	items   []catalog.Item
	rail    *carousel.SnapRail
	scroll  ScrollState
	drag    *carousel.DragController
	hits    HitList
	click   Clicker
	overlay *ViewerOverlay

	area      ButtonRect
	cardW     float64
	dragFrom  float64
	pressed   *Hit
	travel    float64
	lastWheel time.Time
	idle      time.Duration
}

func NewLatestScreen(items []catalog.Item, deps *Deps) *LatestScreen {
	v := viewer.New("latest", deps.Lock, deps.logger())
	idle := deps.Carousel.Wheel.Idle
	if idle <= 0 {
		idle = carousel.DefaultWheelConfig().Idle
	}
	return &LatestScreen{
		deps:    deps,
		items:   items,
		rail:    carousel.NewSnapRail(LatestCardGap),
		drag:    carousel.NewDragController(deps.Carousel.Drag),
		overlay: NewViewerOverlay(v, deps),
		idle:    idle,
	}
}

func (s *LatestScreen) Name() string { return "latest" }

func (s *LatestScreen) OnEnter() {}

func (s *LatestScreen) OnExit() {
	s.cancel()
	s.overlay.V.Close()
}

func (s *LatestScreen) ModalOpen() bool { return s.overlay.V.IsOpen() }

func (s *LatestScreen) cancel() {
	if s.drag.Dragging() {
		r, _ := s.drag.Cancel(s.cardW)
		s.snapTo(r.Start)
	}
	s.click = Clicker{}
	s.pressed = nil
}

func (s *LatestScreen) snapTo(i int) {
	if left, ok := s.rail.ScrollTo(i); ok {
		s.scroll.ScrollTo(left)
	}
}

func (s *LatestScreen) step(fn func() (float64, bool)) {
	if left, ok := fn(); ok {
		s.scroll.ScrollTo(left)
	}
}

func (s *LatestScreen) Update(in *Input) error {
	s.scroll.Animate()
	s.rail.OnScroll(s.scroll.ScrollX)
	if s.overlay.Update(in) {
		return nil
	}

	if in.Pressed {
		s.press(in)
	}
	if s.drag.Dragging() {
		dx := s.drag.Move(in.CursorX)
		s.travel = math.Max(s.travel, math.Abs(dx))
		s.scroll.ScrollX = math.Max(0, math.Min(s.dragFrom-dx, s.scroll.Max))
		s.scroll.TargetX = s.scroll.ScrollX
	}
	if in.Released {
		s.release(in)
	}

	if in.Wheeled() && s.area.Contains(in.CursorX, in.CursorY) {
		s.scroll.ScrollBy(carousel.Dominant(in.WheelX, in.WheelY))
		s.lastWheel = s.deps.Now()
	} else if !s.lastWheel.IsZero() && s.deps.Now().Sub(s.lastWheel) >= s.idle {
		// Wheel travel settles on the nearest card once it goes quiet.
		s.lastWheel = time.Time{}
		s.rail.OnScroll(s.scroll.TargetX)
		s.snapTo(s.rail.Active())
	}

	switch carousel.RouteKey(in.Key, false) {
	case carousel.ActionNext:
		s.step(s.rail.Next)
	case carousel.ActionPrev:
		s.step(s.rail.Prev)
	}
	return nil
}

func (s *LatestScreen) press(in *Input) {
	s.pressed = nil
	s.travel = 0
	h, ok := s.hits.At(in.CursorX, in.CursorY)
	if ok && h.Target.Interactive() {
		s.click.Down(h)
		return
	}
	if !s.area.Contains(in.CursorX, in.CursorY) {
		return
	}
	target := carousel.Target{Role: carousel.RoleSurface}
	if ok {
		target = h.Target
		s.pressed = &h
	}
	if s.drag.Down(in.CursorX, target, s.rail.Active()) {
		s.dragFrom = s.scroll.ScrollX
		s.lastWheel = time.Time{}
	}
}

func (s *LatestScreen) release(in *Input) {
	if s.click.Pending() {
		if h, ok := s.click.Up(&s.hits, in.CursorX, in.CursorY); ok {
			s.activate(h)
		}
		return
	}
	tapped := s.pressed
	s.pressed = nil
	if r, ok := s.drag.Up(s.cardW); ok {
		s.travel = math.Max(s.travel, math.Abs(r.DeltaX))
		s.snapTo(r.Target())
	}
	if tapped != nil && s.travel < tapSlop {
		if h, ok := s.hits.At(in.CursorX, in.CursorY); ok && h.ID == tapped.ID && h.Index == tapped.Index {
			s.activate(h)
		}
	}
}

func (s *LatestScreen) activate(h Hit) {
	switch h.ID {
	case "prev":
		s.step(s.rail.Prev)
	case "next":
		s.step(s.rail.Next)
	case "dot":
		s.snapTo(h.Index)
	case "card":
		if h.Index >= 0 && h.Index < len(s.items) {
			s.cancel()
			s.overlay.V.Open(s.items[h.Index])
		}
	}
}

func (s *LatestScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	s.hits.Reset()

	DrawText(dst, letterSpaced("Latest attires"), SectionPadding, TabBarHeight+32, FontSizeCaption, ColorPrimary)
	DrawText(dst, "New from the workroom", SectionPadding, TabBarHeight+48, FontSizeTitle, ColorBone)

	if len(s.items) == 0 {
		DrawTextCentered(dst, "Nothing new yet", sw/2, sh/2, FontSizeHeading, ColorTextMuted)
		return
	}

	cardH := math.Min(LatestCardHeight, sh-TabBarHeight-230)
	s.cardW = cardH * LatestCardWidth / LatestCardHeight
	s.area = ButtonRect{X: SectionPadding, Y: TabBarHeight + 110, W: sw - 2*SectionPadding, H: cardH}
	n := float64(len(s.items))
	scrollW := n*s.cardW + (n-1)*LatestCardGap
	s.rail.Measure(s.cardW, scrollW, s.area.W)
	s.scroll.SetMax(s.rail.MaxScroll())

	clip := dst.SubImage(rectOf(s.area)).(*ebiten.Image)
	for i, it := range s.items {
		x := s.area.X + float64(i)*(s.cardW+LatestCardGap) - s.scroll.ScrollX
		if x+s.cardW < s.area.X || x > s.area.X+s.area.W {
			continue
		}
		r := ButtonRect{X: x, Y: s.area.Y, W: s.cardW, H: cardH}
		DrawCard(clip, s.deps.image(it.HeroImage, cache.Full), r, it.Title, it.Label(), false)
		s.hits.Surface("card", i, r)
	}

	y := s.area.Y + s.area.H + 44
	s.hits.Button("prev", 0, drawRoundButton(dst, sw-SectionPadding-110, y, ChevronSize, s.rail.Active() > 0, chevronLeft))
	s.hits.Button("next", 0, drawRoundButton(dst, sw-SectionPadding-50, y, ChevronSize, s.rail.Active() < s.rail.MaxIndex(), chevronRight))
	for i, r := range drawDots(dst, sw/2, y, s.rail.PageCount(), s.rail.Active()) {
		s.hits.Button("dot", i, r)
	}

	s.overlay.Draw(dst)
}

func (s *LatestScreen) DebugLines() []string {
	return []string{
		fmt.Sprintf("active=%d/%d scroll=%.0f target=%.0f max=%.0f", s.rail.Active(), s.rail.MaxIndex(), s.scroll.ScrollX, s.scroll.TargetX, s.scroll.Max),
		fmt.Sprintf("dragging=%v dx=%.0f", s.drag.Dragging(), s.drag.DeltaX()),
		fmt.Sprintf("viewer open=%v shot=%s", s.overlay.V.IsOpen(), s.overlay.V.ActiveShot()),
	}
}
