package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"github.com/depeter/atelier/internal/film"
)

// FilmScreen shows the craft film poster and hands playback to the
// external player.
type FilmScreen struct {
	deps  *Deps
	film  catalog.Film
	hits  HitList
	click Clicker
	err   ErrorDisplay
}

func NewFilmScreen(f catalog.Film, deps *Deps) *FilmScreen {
	return &FilmScreen{deps: deps, film: f}
}

func (s *FilmScreen) Name() string { return "film" }

func (s *FilmScreen) OnEnter() {}

func (s *FilmScreen) OnExit() { s.click = Clicker{} }

// filmSeek is the jump for the arrow keys while the film plays.
const filmSeek = 10

func (s *FilmScreen) play() {
	if s.deps.Film == nil || s.film.URL == "" {
		return
	}
	if s.deps.Film.Playing() {
		s.check("pause", s.deps.Film.TogglePause())
		return
	}
	if err := s.deps.Film.Play(film.Normalize(s.film.URL)); err != nil {
		s.deps.logger().Warn("play film", zap.String("url", s.film.URL), zap.Error(err))
		s.err.Text = "Could not start the film: " + err.Error()
		return
	}
	s.err.Text = ""
}

func (s *FilmScreen) check(op string, err error) {
	if err != nil {
		s.deps.logger().Warn("film "+op, zap.Error(err))
	}
}

func (s *FilmScreen) Update(in *Input) error {
	if in.Pressed {
		if s.err.HandleClick(in.CursorX, in.CursorY) {
			return nil
		}
		if h, ok := s.hits.At(in.CursorX, in.CursorY); ok {
			s.click.Down(h)
		}
	}
	if in.Released {
		if h, ok := s.click.Up(&s.hits, in.CursorX, in.CursorY); ok && h.ID == "play" {
			s.play()
		}
	}
	playing := s.deps.Film != nil && s.deps.Film.Playing()
	switch carousel.RouteKey(in.Key, false) {
	case carousel.ActionOpen:
		s.play()
	case carousel.ActionPrev:
		if playing {
			s.check("seek", s.deps.Film.Seek(-filmSeek))
		}
	case carousel.ActionNext:
		if playing {
			s.check("seek", s.deps.Film.Seek(filmSeek))
		}
	}
	if in.Key == carousel.KeyEscape && playing {
		s.check("stop", s.deps.Film.Stop())
	}
	return nil
}

func (s *FilmScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	s.hits.Reset()

	DrawText(dst, letterSpaced("The film"), SectionPadding, TabBarHeight+32, FontSizeCaption, ColorPrimary)
	title := s.film.Title
	if title == "" {
		title = "The craft"
	}
	DrawText(dst, title, SectionPadding, TabBarHeight+48, FontSizeTitle, ColorBone)

	areaW := sw - 2*SectionPadding
	areaH := math.Min(areaW*9/16, sh-TabBarHeight-200)
	areaW = areaH * 16 / 9
	r := ButtonRect{X: (sw - areaW) / 2, Y: TabBarHeight + 110, W: areaW, H: areaH}
	DrawImageCover(dst, s.deps.image(s.film.Poster, cache.Full), r, "", CardStyle{Dim: 0.35})
	s.hits.Button("play", 0, r)

	f := s.deps.Film
	playing := f != nil && f.Playing()
	if f != nil && s.film.URL != "" && (!playing || f.Paused()) {
		drawPlayIcon(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), 40, ColorBone)
	}

	caption := "No film configured"
	switch {
	case playing:
		caption = fmt.Sprintf("%s / %s  ·  Enter pauses, arrows seek, Esc stops", clock(f.Position()), clock(f.Duration()))
		if d := f.Duration(); d > 0 {
			frac := math.Min(1, f.Position()/d)
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+r.H+8), float32(r.W), 2, ColorSurfaceHover, false)
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+r.H+8), float32(r.W*frac), 2, ColorPrimary, false)
		}
	case s.film.URL != "":
		caption = "Press Enter to play"
		if id, ok := film.ExtractYouTubeID(s.film.URL); ok {
			caption += "  ·  youtube " + id
		}
	}
	DrawTextCentered(dst, caption, sw/2, r.Y+r.H+32, FontSizeSmall, ColorTextSecondary)

	s.err.Draw(dst)
}

// clock formats seconds as m:ss.
func clock(sec float64) string {
	n := int(math.Max(0, sec))
	return fmt.Sprintf("%d:%02d", n/60, n%60)
}

func (s *FilmScreen) DebugLines() []string {
	id, _ := film.ExtractYouTubeID(s.film.URL)
	return []string{"film url=" + s.film.URL, "youtube id=" + id}
}
