package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/viewer"
)

// ArchiveScreen is the visual archive: an endless drag carousel whose cards
// open a full-screen lightbox.
type ArchiveScreen struct {
	deps     *Deps
	items    []catalog.Item
	c        *carousel.Carousel
	stage    Stage
	lightbox *LightboxOverlay
}

func NewArchiveScreen(items []catalog.Item, deps *Deps) *ArchiveScreen {
	log := deps.logger().Named("archive")
	c := carousel.New(len(items), carousel.Loop, deps.Carousel, deps.Now, log)
	lb := viewer.NewLightbox("archive", items, deps.Lock, deps.Now, deps.logger())
	return &ArchiveScreen{
		deps:     deps,
		items:    items,
		c:        c,
		stage:    Stage{C: c},
		lightbox: NewLightboxOverlay(lb, deps),
	}
}

func (s *ArchiveScreen) Name() string { return "archive" }

func (s *ArchiveScreen) OnEnter() {}

func (s *ArchiveScreen) OnExit() {
	s.stage.Cancel()
	s.lightbox.L.Dispose()
}

func (s *ArchiveScreen) ModalOpen() bool { return s.lightbox.L.Visible() }

func (s *ArchiveScreen) open(i int) {
	s.stage.Cancel()
	s.lightbox.L.Open(i)
}

func (s *ArchiveScreen) Update(in *Input) error {
	s.c.Frame()
	if s.lightbox.Update(in) {
		return nil
	}

	if hit, ok := s.stage.Handle(in); ok {
		tr := s.c.Track()
		switch hit.ID {
		case "prev":
			tr.Prev()
		case "next":
			tr.Next()
		case "dot":
			tr.GoToReal(hit.Index)
		case "card", "view":
			s.open(hit.Index)
		}
	}

	if in.Key != carousel.KeyNone {
		if s.c.Key(in.Key, false) == carousel.ActionOpen {
			s.open(s.c.Track().Real())
		}
	}
	return nil
}

func (s *ArchiveScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	s.stage.Hits.Reset()

	DrawText(dst, letterSpaced("Visual archive"), SectionPadding, TabBarHeight+32, FontSizeCaption, ColorPrimary)
	DrawText(dst, "Moments from the atelier", SectionPadding, TabBarHeight+48, FontSizeTitle, ColorBone)

	if len(s.items) == 0 {
		DrawTextCentered(dst, "The archive is empty", sw/2, sh/2, FontSizeHeading, ColorTextMuted)
		return
	}

	stageY := TabBarHeight + 110.0
	stageH := sh - stageY - 130
	s.stage.Rect = ButtonRect{X: 0, Y: stageY, W: sw, H: stageH}
	itemW := math.Min(sw*ArchiveCardRatio, stageH*1.5)
	s.c.SetMeasure(carousel.Measure{Container: sw, Item: itemW, Gap: ArchiveCardGap})

	offset, ok := s.c.Offset()
	if ok {
		tr := s.c.Track()
		clip := dst.SubImage(rectOf(s.stage.Rect)).(*ebiten.Image)
		for raw := 0; raw < tr.RenderedLen(); raw++ {
			left := s.c.ItemLeft(offset, raw)
			if left+itemW < 0 || left > sw {
				continue
			}
			idx := tr.RealAt(raw)
			r := ButtonRect{X: left, Y: stageY, W: itemW, H: stageH}
			dim := 0.0
			if idx != tr.Real() {
				dim = 0.45
			}
			DrawImageCover(clip, s.deps.image(s.items[idx].HeroImage, cache.Full), r, s.items[idx].Title, CardStyle{Dim: dim})
			s.stage.Hits.Surface("card", idx, r)
		}
	}

	// Progress and controls.
	tr := s.c.Track()
	y := stageY + stageH + 28
	barW := math.Min(420, sw-2*SectionPadding)
	barX := (sw - barW) / 2
	vector.DrawFilledRect(dst, float32(barX), float32(y), float32(barW), 2, ColorSurfaceHover, false)
	vector.DrawFilledRect(dst, float32(barX), float32(y), float32(barW*tr.Progress()), 2, ColorPrimary, false)

	counter := fmt.Sprintf("%02d / %02d", tr.Real()+1, tr.Len())
	DrawTextCentered(dst, counter, sw/2, y+26, FontSizeSmall, ColorTextSecondary)

	can := s.c.CanNavigate()
	s.stage.Hits.Button("prev", 0, drawRoundButton(dst, barX-40, y, ChevronSize, can, chevronLeft))
	s.stage.Hits.Button("next", 0, drawRoundButton(dst, barX+barW+40, y, ChevronSize, can, chevronRight))
	for i, r := range drawDots(dst, sw/2, y+56, tr.Len(), tr.Real()) {
		s.stage.Hits.Button("dot", i, r)
	}

	s.lightbox.Draw(dst)
}

func (s *ArchiveScreen) DebugLines() []string {
	tr := s.c.Track()
	return []string{
		fmt.Sprintf("raw=%d real=%d rendered=%d", tr.Raw(), tr.Real(), tr.RenderedLen()),
		fmt.Sprintf("animating=%v transitions=%v", tr.Animating(), tr.TransitionsEnabled()),
		fmt.Sprintf("dragging=%v dx=%.0f wheel=%.0f", s.c.Dragging(), s.c.DragDelta(), s.c.WheelAdapter().Accumulated()),
		fmt.Sprintf("lightbox=%s", s.lightbox.L.Phase()),
	}
}
