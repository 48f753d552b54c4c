package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/viewer"
)

// Deps are the collaborators every screen is built with.
type Deps struct {
	Images      *cache.ImageCache
	Lock        viewer.ScrollLock
	Carousel    carousel.Config
	Breakpoints carousel.Breakpoints
	RowsPerPage int
	Now         func() time.Time
	Log         *zap.Logger

	// OpenCTA follows a viewer call-to-action target.
	OpenCTA func(target string)
	// Film drives the craft film player; nil disables playback.
	Film FilmControl
}

// FilmControl is the external player the film screen drives.
type FilmControl interface {
	Play(url string) error
	Playing() bool
	Paused() bool
	TogglePause() error
	Seek(seconds float64) error
	Stop() error
	Position() float64
	Duration() float64
}

func (d *Deps) image(ref string, v cache.Variant) *ebiten.Image {
	if d.Images == nil || ref == "" {
		return nil
	}
	return d.Images.Request(ref, v)
}

func (d *Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
