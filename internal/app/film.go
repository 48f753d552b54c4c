package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/config"
	"github.com/depeter/atelier/internal/film"
)

// lazyFilm creates the mpv player on the first Play so the app starts
// without libmpv touching the display. Controls before that are no-ops.
type lazyFilm struct {
	cfg config.FilmConfig
	log *zap.Logger

	mu sync.Mutex
	p  *film.Player
}

func (f *lazyFilm) player() *film.Player {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.p
}

func (f *lazyFilm) Play(url string) error {
	f.mu.Lock()
	if f.p == nil {
		p, err := film.New(f.cfg, f.log)
		if err != nil {
			f.mu.Unlock()
			return err
		}
		p.OnPlaybackEnd = func() { f.log.Info("film ended") }
		f.p = p
	}
	p := f.p
	f.mu.Unlock()
	return p.Play(url)
}

func (f *lazyFilm) Playing() bool {
	p := f.player()
	return p != nil && p.Playing()
}

func (f *lazyFilm) Paused() bool {
	p := f.player()
	return p != nil && p.Paused()
}

func (f *lazyFilm) TogglePause() error {
	if p := f.player(); p != nil {
		return p.TogglePause()
	}
	return nil
}

func (f *lazyFilm) Seek(seconds float64) error {
	if p := f.player(); p != nil {
		return p.Seek(seconds)
	}
	return nil
}

func (f *lazyFilm) Stop() error {
	if p := f.player(); p != nil {
		return p.Stop()
	}
	return nil
}

func (f *lazyFilm) Position() float64 {
	if p := f.player(); p != nil {
		return p.Position()
	}
	return 0
}

func (f *lazyFilm) Duration() float64 {
	if p := f.player(); p != nil {
		return p.Duration()
	}
	return 0
}

// URL is the URL last played, or "".
func (f *lazyFilm) URL() string {
	if p := f.player(); p != nil {
		return p.URL()
	}
	return ""
}

func (f *lazyFilm) destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.p != nil {
		f.p.Destroy()
		f.p = nil
	}
}
