// Package viewer implements the modal look viewer and the archive lightbox
// that every carousel opens, together with the page scroll lock they share.
package viewer

import (
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"go.uber.org/zap"
)

// Viewer is the look viewer modal. It is either closed, or open on one item
// with one active shot from that item's gallery.
type Viewer struct {
	name string
	lock ScrollLock
	log  *zap.Logger

	open bool
	item catalog.Item
	shot string
}

// New creates a closed viewer. name identifies it as a scroll lock owner.
func New(name string, lock ScrollLock, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{name: name, lock: lock, log: log.Named("viewer")}
}

// Open opens the viewer on item showing its hero image.
func (v *Viewer) Open(item catalog.Item) {
	v.OpenAt(item, item.HeroImage)
}

// OpenAt opens the viewer on item showing shot. A shot outside the item's
// gallery falls back to the first gallery image. Opening an already open
// viewer swaps its content and keeps the single lock acquisition.
func (v *Viewer) OpenAt(item catalog.Item, shot string) {
	if !item.HasShot(shot) {
		shot = ""
		if shots := item.Shots(); len(shots) > 0 {
			shot = shots[0]
		}
	}
	v.item = item
	v.shot = shot
	v.open = true
	if v.lock != nil {
		v.lock.Acquire(v.name)
	}
	v.log.Debug("open", zap.String("owner", v.name), zap.String("item", item.ID), zap.String("shot", shot))
}

// SelectShot makes shot the hero image. It reports false and changes
// nothing when the viewer is closed or shot is not in the gallery.
func (v *Viewer) SelectShot(shot string) bool {
	if !v.open || !v.item.HasShot(shot) {
		return false
	}
	v.shot = shot
	return true
}

// StepShot moves the active shot through the gallery, wrapping at both
// ends.
func (v *Viewer) StepShot(dir int) bool {
	shots := v.Gallery()
	if !v.open || len(shots) < 2 || dir == 0 {
		return false
	}
	i := v.ShotIndex()
	n := len(shots)
	v.shot = shots[((i+dir)%n+n)%n]
	return true
}

// Close releases the scroll lock and clears the viewer. Closing a closed
// viewer is a no-op.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.open = false
	v.item = catalog.Item{}
	v.shot = ""
	if v.lock != nil {
		v.lock.Release(v.name)
	}
	v.log.Debug("close", zap.String("owner", v.name))
}

func (v *Viewer) IsOpen() bool { return v.open }

// Item returns the open item.
func (v *Viewer) Item() (catalog.Item, bool) { return v.item, v.open }

func (v *Viewer) ActiveShot() string { return v.shot }

// Gallery is the thumbnail rail for the open item. It never returns an
// empty slice for an item that has a hero image.
func (v *Viewer) Gallery() []string {
	if !v.open {
		return nil
	}
	return v.item.Shots()
}

// ShotIndex is the position of the active shot in Gallery, or -1.
func (v *Viewer) ShotIndex() int {
	for i, s := range v.Gallery() {
		if s == v.shot {
			return i
		}
	}
	return -1
}

// HandleKey handles a key press while the viewer is open: Escape closes
// and the arrows step through the gallery. It reports whether the viewer
// consumed the key; an open viewer consumes every key so the carousel
// behind it never moves.
func (v *Viewer) HandleKey(k carousel.Key) bool {
	if !v.open {
		return false
	}
	switch k {
	case carousel.KeyEscape:
		v.Close()
	case carousel.KeyLeft:
		v.StepShot(-1)
	case carousel.KeyRight:
		v.StepShot(1)
	}
	return true
}
