package ui

import (
	"fmt"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/viewer"
)

// LookbookScreen is the coverflow of signature looks. The card nearest the
// center is featured and opens the look viewer.
type LookbookScreen struct {
	deps    *Deps
	items   []catalog.Item
	cf      *carousel.Coverflow
	stage   Stage
	overlay *ViewerOverlay
}

func NewLookbookScreen(items []catalog.Item, deps *Deps) *LookbookScreen {
	cf := carousel.NewCoverflow(len(items), deps.Carousel, deps.Now, deps.logger().Named("lookbook"))
	v := viewer.New("lookbook", deps.Lock, deps.logger())
	return &LookbookScreen{
		deps:    deps,
		items:   items,
		cf:      cf,
		stage:   Stage{C: cf.Carousel},
		overlay: NewViewerOverlay(v, deps),
	}
}

func (s *LookbookScreen) Name() string { return "lookbook" }

func (s *LookbookScreen) OnEnter() {}

func (s *LookbookScreen) OnExit() {
	s.stage.Cancel()
	s.overlay.V.Close()
}

func (s *LookbookScreen) ModalOpen() bool { return s.overlay.V.IsOpen() }

func (s *LookbookScreen) open(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.stage.Cancel()
	s.overlay.V.Open(s.items[i])
}

func (s *LookbookScreen) Update(in *Input) error {
	s.cf.Frame()
	if s.overlay.Update(in) {
		return nil
	}

	if hit, ok := s.stage.Handle(in); ok {
		tr := s.cf.Track()
		switch hit.ID {
		case "prev":
			tr.Prev()
		case "next":
			tr.Next()
		case "dot":
			tr.GoToReal(hit.Index)
		case "view":
			s.open(s.cf.Featured())
		case "card":
			if hit.Index == tr.Real() {
				s.open(hit.Index)
			} else {
				tr.GoToReal(hit.Index)
			}
		}
	}

	if in.Key != carousel.KeyNone {
		if s.cf.Key(in.Key, false) == carousel.ActionOpen {
			s.open(s.cf.Featured())
		}
	}
	s.cf.Sync()
	return nil
}

func (s *LookbookScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	s.stage.Hits.Reset()

	if len(s.items) == 0 {
		DrawTextCentered(dst, "No looks yet", sw/2, sh/2, FontSizeHeading, ColorTextMuted)
		return
	}

	cardH := math.Min(CoverCardHeight, sh-TabBarHeight-260)
	cardW := cardH * CoverCardWidth / CoverCardHeight
	s.stage.Rect = ButtonRect{X: 0, Y: TabBarHeight + 90, W: sw, H: cardH + 40}
	s.cf.SetMeasure(carousel.Measure{Container: sw, Item: cardW, Gap: CoverCardGap})
	s.cf.Sync()

	featured := s.cf.Featured()
	// The featured look washes the stage.
	bg := ButtonRect{X: 0, Y: TabBarHeight, W: sw, H: sh - TabBarHeight}
	DrawImageCover(dst, s.deps.image(s.items[featured].HeroImage, cache.Full), bg, "", CardStyle{Alpha: 0.25, Dim: 0.5})

	DrawText(dst, letterSpaced("The lookbook"), SectionPadding, TabBarHeight+32, FontSizeCaption, ColorPrimary)
	DrawText(dst, "Signature looks", SectionPadding, TabBarHeight+48, FontSizeTitle, ColorBone)

	tfs := s.cf.Transforms()
	offset, _ := s.cf.Offset()

	// Draw far cards first so the center card ends up on top.
	order := make([]int, len(s.items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return tfs[order[a]].Scale < tfs[order[b]].Scale
	})

	top := s.stage.Rect.Y + 20
	for _, i := range order {
		tf := tfs[i]
		left := s.stage.Rect.X + s.cf.ItemLeft(offset, i)
		if left+cardW < 0 || left > sw {
			continue
		}
		r := ButtonRect{X: left, Y: top + tf.TranslateY, W: cardW, H: cardH}
		squash := math.Cos(tf.RotateY * math.Pi / 180)
		DrawImageCover(dst, s.deps.image(s.items[i].HeroImage, cache.Full), r, s.items[i].Title, CardStyle{
			Alpha:  tf.Opacity,
			ScaleX: tf.Scale * squash,
			ScaleY: tf.Scale,
			Dim:    tf.Blur * 0.3,
		})
		s.stage.Hits.Surface("card", i, r)
	}

	// Caption and controls under the rail.
	item := s.items[featured]
	y := s.stage.Rect.Y + s.stage.Rect.H + 16
	DrawTextCentered(dst, item.Title, sw/2, y, FontSizeHeading, ColorBone)
	counter := fmt.Sprintf("%02d / %02d", featured+1, len(s.items))
	DrawTextCentered(dst, counter, sw/2, y+30, FontSizeSmall, ColorTextSecondary)

	tr := s.cf.Track()
	can := s.cf.CanNavigate()
	s.stage.Hits.Button("prev", 0, drawRoundButton(dst, sw/2-120, y+70, ChevronSize, can && tr.Real() > 0, chevronLeft))
	bw, _ := MeasureText(item.Label(), FontSizeSmall)
	s.stage.Hits.Button("view", 0, DrawButton(dst, item.Label(), sw/2-(bw+40)/2, y+48, false))
	s.stage.Hits.Button("next", 0, drawRoundButton(dst, sw/2+120, y+70, ChevronSize, can && tr.Real() < tr.Len()-1, chevronRight))
	for i, r := range drawDots(dst, sw/2, y+112, len(s.items), tr.Real()) {
		s.stage.Hits.Button("dot", i, r)
	}

	s.overlay.Draw(dst)
}

func (s *LookbookScreen) DebugLines() []string {
	tr := s.cf.Track()
	return []string{
		fmt.Sprintf("raw=%d real=%d featured=%d", tr.Raw(), tr.Real(), s.cf.Featured()),
		fmt.Sprintf("animating=%v dragging=%v dx=%.0f", tr.Animating(), s.cf.Dragging(), s.cf.DragDelta()),
		fmt.Sprintf("wheel=%.0f recomputes=%d", s.cf.WheelAdapter().Accumulated(), s.cf.Scheduler().Runs()),
		fmt.Sprintf("viewer open=%v shot=%s", s.overlay.V.IsOpen(), s.overlay.V.ActiveShot()),
	}
}
