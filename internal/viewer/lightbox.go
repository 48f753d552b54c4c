package viewer

import (
	"time"

	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/catalog"
	"go.uber.org/zap"
)

// Phase is the lightbox lifecycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	// PhaseClosing is the fade-out: still drawn, no longer interactive.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	}
	return "closed"
}

// DefaultClosing is how long the lightbox fades out after Close.
const DefaultClosing = 180 * time.Millisecond

// Lightbox shows one archive image at a time over a flat list, stepping
// cyclically in both directions.
type Lightbox struct {
	name    string
	lock    ScrollLock
	now     func() time.Time
	log     *zap.Logger
	closing time.Duration

	items     []catalog.Item
	index     int
	phase     Phase
	closeFrom time.Time
}

// NewLightbox creates a closed lightbox over items.
func NewLightbox(name string, items []catalog.Item, lock ScrollLock, now func() time.Time, log *zap.Logger) *Lightbox {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Lightbox{
		name:    name,
		lock:    lock,
		now:     now,
		log:     log.Named("lightbox"),
		closing: DefaultClosing,
		items:   items,
	}
}

// SetItems replaces the image list, keeping the index in range. An open
// lightbox over an emptied list closes at once.
func (lb *Lightbox) SetItems(items []catalog.Item) {
	lb.items = items
	if len(items) == 0 {
		lb.index = 0
		lb.Dispose()
		return
	}
	lb.index = min(lb.index, len(items)-1)
}

// Open shows the image at start, clamped into range. Opening during the
// closing phase cancels it.
func (lb *Lightbox) Open(start int) bool {
	if len(lb.items) == 0 {
		return false
	}
	lb.index = max(0, min(start, len(lb.items)-1))
	lb.phase = PhaseOpen
	if lb.lock != nil {
		lb.lock.Acquire(lb.name)
	}
	lb.log.Debug("open", zap.Int("index", lb.index))
	return true
}

// Next and Prev wrap around the list.
func (lb *Lightbox) Next() { lb.step(1) }
func (lb *Lightbox) Prev() { lb.step(-1) }

func (lb *Lightbox) step(d int) {
	n := len(lb.items)
	if lb.phase != PhaseOpen || n == 0 {
		return
	}
	lb.index = (lb.index + d + n) % n
}

// Close starts the closing phase. The scroll lock is released when it ends.
func (lb *Lightbox) Close() {
	if lb.phase != PhaseOpen {
		return
	}
	lb.phase = PhaseClosing
	lb.closeFrom = lb.now()
	lb.log.Debug("closing", zap.Int("index", lb.index))
}

// Frame finishes the closing phase once its duration has passed.
func (lb *Lightbox) Frame() {
	if lb.phase == PhaseClosing && lb.now().Sub(lb.closeFrom) >= lb.closing {
		lb.finish()
	}
}

// Dispose closes immediately, skipping the fade. Screens call it when they
// are torn down so the lock never outlives them.
func (lb *Lightbox) Dispose() {
	if lb.phase == PhaseClosed {
		return
	}
	lb.finish()
}

func (lb *Lightbox) finish() {
	lb.phase = PhaseClosed
	if lb.lock != nil {
		lb.lock.Release(lb.name)
	}
	lb.log.Debug("closed")
}

func (lb *Lightbox) Phase() Phase { return lb.phase }

// Visible reports whether the lightbox should be drawn.
func (lb *Lightbox) Visible() bool { return lb.phase != PhaseClosed }

// Interactive reports whether the lightbox accepts input.
func (lb *Lightbox) Interactive() bool { return lb.phase == PhaseOpen }

func (lb *Lightbox) Index() int { return lb.index }

func (lb *Lightbox) Len() int { return len(lb.items) }

// Current is the image on show.
func (lb *Lightbox) Current() (catalog.Item, bool) {
	if lb.phase == PhaseClosed || len(lb.items) == 0 {
		return catalog.Item{}, false
	}
	return lb.items[lb.index], true
}

// Alpha is the draw opacity: 1 while open, fading to 0 while closing.
func (lb *Lightbox) Alpha() float64 {
	switch lb.phase {
	case PhaseOpen:
		return 1
	case PhaseClosing:
		if lb.closing <= 0 {
			return 0
		}
		p := float64(lb.now().Sub(lb.closeFrom)) / float64(lb.closing)
		return max(0, 1-p)
	}
	return 0
}

// HandleKey handles Escape and the arrows. A visible lightbox consumes
// every key, including during the closing phase.
func (lb *Lightbox) HandleKey(k carousel.Key) bool {
	if !lb.Visible() {
		return false
	}
	switch k {
	case carousel.KeyEscape:
		lb.Close()
	case carousel.KeyLeft:
		lb.Prev()
	case carousel.KeyRight:
		lb.Next()
	}
	return true
}
