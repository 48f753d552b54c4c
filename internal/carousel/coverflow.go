package carousel

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// CardTransform is the 3D-ish presentation of one coverflow card.
type CardTransform struct {
	Scale      float64
	RotateY    float64 // degrees
	TranslateY float64 // pixels
	Opacity    float64
	Blur       float64 // pixels
}

// CoverflowTransform computes a card's transform from how far its center
// sits from the rail center, relative to the rail width.
func CoverflowTransform(cardCenter, railCenter, railWidth float64) CardTransform {
	if railWidth <= 0 {
		return CardTransform{Scale: 1, Opacity: 1}
	}
	dx := (cardCenter - railCenter) / railWidth
	adx := math.Abs(dx)
	t := clampf(dx*2.2, -1, 1)
	return CardTransform{
		Scale:      1 - math.Min(adx, 0.6)*0.26,
		RotateY:    t * -26,
		TranslateY: math.Min(adx, 0.7) * 22,
		Opacity:    1 - math.Min(adx, 0.9)*0.55,
		Blur:       math.Min(adx, 0.9) * 1.1,
	}
}

// activeRatio is the minimum visible ratio for a card to become active
// while the rail is being dragged.
const activeRatio = 0.55

// MostVisible returns the index with the largest visible ratio, or current
// when no card is at least activeRatio visible.
func MostVisible(ratios []float64, current int) int {
	best, bestRatio := current, 0.0
	for i, r := range ratios {
		if r > bestRatio {
			best, bestRatio = i, r
		}
	}
	if bestRatio >= activeRatio {
		return best
	}
	return current
}

// Coverflow is a clamped carousel whose cards are scaled, rotated and faded
// by their distance from the center. Transform recomputation runs at most
// once per frame no matter how often the rail moves.
type Coverflow struct {
	*Carousel

	frames     FrameScheduler
	transforms []CardTransform
	ratios     []float64
	railOffset float64
	lastMeas   Measure
	featured   int
}

// NewCoverflow creates a coverflow over n cards.
func NewCoverflow(n int, cfg Config, now func() time.Time, log *zap.Logger) *Coverflow {
	return &Coverflow{
		Carousel:   New(n, Clamped, cfg, now, log),
		transforms: make([]CardTransform, n),
		ratios:     make([]float64, n),
	}
}

// Sync observes the rail position for this frame. A resize recomputes
// immediately; movement schedules a coalesced recompute.
func (cf *Coverflow) Sync() {
	m := cf.Measure()
	if !m.Ready() {
		return
	}
	off, _ := cf.Offset()
	if m != cf.lastMeas {
		cf.lastMeas = m
		cf.railOffset = off
		cf.frames.Cancel()
		cf.recompute(off)
		return
	}
	if off != cf.railOffset {
		cf.railOffset = off
		cf.frames.Request()
	}
}

// Transforms flushes any pending recompute and returns the per-card
// transforms, indexed like the cards.
func (cf *Coverflow) Transforms() []CardTransform {
	cf.frames.Flush(func() { cf.recompute(cf.railOffset) })
	return cf.transforms
}

// Scheduler exposes the frame scheduler, mostly for tests.
func (cf *Coverflow) Scheduler() *FrameScheduler { return &cf.frames }

// Featured is the card whose look backs the stage: the most visible card
// while dragging, the track's index otherwise.
func (cf *Coverflow) Featured() int {
	if cf.Dragging() {
		return cf.featured
	}
	cf.featured = cf.Track().Real()
	return cf.featured
}

func (cf *Coverflow) recompute(offset float64) {
	m := cf.Measure()
	railCenter := m.Container / 2
	for i := range cf.transforms {
		left := cf.ItemLeft(offset, i)
		cf.transforms[i] = CoverflowTransform(left+m.Item/2, railCenter, m.Container)
		cf.ratios[i] = VisibleRatio(left, m.Item, m.Container)
	}
	if cf.Dragging() {
		cf.featured = MostVisible(cf.ratios, cf.featured)
	}
}
