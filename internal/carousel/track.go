package carousel

import (
	"time"

	"go.uber.org/zap"
)

// Mode selects how a Track treats the ends of its sequence.
type Mode int

const (
	// Clamped stops at the first and last item.
	Clamped Mode = iota
	// Loop pads the sequence with a clone of the last item before index 0
	// and a clone of the first item after the end, and re-bases silently
	// when a transition lands on a clone.
	Loop
)

// TrackConfig holds the timing of committed transitions.
type TrackConfig struct {
	// Commit is how long a committed transition takes to finish.
	Commit time.Duration
	// RebaseFrames is how many frames transitions stay disabled after a
	// silent re-base jump.
	RebaseFrames int
}

func DefaultTrackConfig() TrackConfig {
	return TrackConfig{Commit: 500 * time.Millisecond, RebaseFrames: 2}
}

// Track is the single source of truth for a carousel's position. Every
// navigation input (arrows, dots, drag, wheel, keyboard) goes through GoTo,
// so at most one committed transition is ever in flight.
type Track struct {
	n    int
	mode Mode
	cfg  TrackConfig
	now  func() time.Time
	log  *zap.Logger

	raw         int
	animating   bool
	transitions bool
	committedAt time.Time
	rearmIn     int

	// visual easing from a previous position to raw
	easeFrom   float64
	easeStart  time.Time
	easeActive bool

	// OnSettle is called after a committed transition finishes, with the
	// real index it settled on.
	OnSettle func(idx int)
}

// NewTrack creates a track over n items. Loop mode is only used when there
// is more than one item. A nil now uses time.Now; a nil log discards.
func NewTrack(n int, mode Mode, cfg TrackConfig, now func() time.Time, log *zap.Logger) *Track {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	if n <= 1 {
		mode = Clamped
	}
	if cfg.RebaseFrames < 1 {
		cfg.RebaseFrames = 1
	}
	t := &Track{
		n:           n,
		mode:        mode,
		cfg:         cfg,
		now:         now,
		log:         log,
		transitions: true,
	}
	if mode == Loop {
		t.raw = 1
	}
	return t
}

// Len is the number of real items.
func (t *Track) Len() int { return t.n }

// Mode reports the effective mode.
func (t *Track) Mode() Mode { return t.mode }

// Raw is the index into the rendered sequence (with clones in Loop mode).
func (t *Track) Raw() int { return t.raw }

// Animating reports whether a committed transition is in flight.
func (t *Track) Animating() bool { return t.animating }

// TransitionsEnabled reports whether index changes are currently animated.
func (t *Track) TransitionsEnabled() bool { return t.transitions }

// Real is the user-facing index in [0, n-1].
func (t *Track) Real() int {
	if t.mode == Loop {
		return clamp(t.raw-1, 0, t.n-1)
	}
	return clamp(t.raw, 0, t.n-1)
}

// RawRange returns the valid raw index bounds for the current mode.
func (t *Track) RawRange() (lo, hi int) {
	if t.mode == Loop {
		return 0, t.n + 1
	}
	return 0, max(t.n-1, 0)
}

// RenderedLen is the length of the rendered sequence, n+2 in Loop mode.
func (t *Track) RenderedLen() int {
	if t.mode == Loop {
		return t.n + 2
	}
	return t.n
}

// RealAt maps a rendered position to the real item it shows.
func (t *Track) RealAt(raw int) int {
	if t.mode != Loop {
		return clamp(raw, 0, t.n-1)
	}
	switch raw {
	case 0:
		return t.n - 1
	case t.n + 1:
		return 0
	}
	return clamp(raw-1, 0, t.n-1)
}

// Progress is (real+1)/n, or 1 when there is at most one item.
func (t *Track) Progress() float64 {
	if t.n <= 1 {
		return 1
	}
	return float64(t.Real()+1) / float64(t.n)
}

// GoTo commits a transition to the given raw index, clamped into range. It
// is ignored while another commit is in flight or when there is nothing to
// navigate. It returns whether the commit was accepted.
func (t *Track) GoTo(raw int) bool {
	if t.n <= 1 || t.animating {
		return false
	}
	lo, hi := t.RawRange()
	from := t.Position()
	t.animating = true
	t.transitions = true
	t.rearmIn = 0
	t.committedAt = t.now()
	t.raw = clamp(raw, lo, hi)
	t.ease(from)
	t.log.Debug("carousel commit", zap.Int("raw", t.raw), zap.Int("real", t.Real()))
	return true
}

// Next commits one step forward.
func (t *Track) Next() bool { return t.GoTo(t.raw + 1) }

// Prev commits one step back.
func (t *Track) Prev() bool { return t.GoTo(t.raw - 1) }

// Advance commits dir steps (normally ±1).
func (t *Track) Advance(dir int) bool {
	if dir == 0 {
		return false
	}
	return t.GoTo(t.raw + dir)
}

// GoToReal commits to a real index, as a dot indicator would.
func (t *Track) GoToReal(idx int) bool {
	if t.mode == Loop {
		return t.GoTo(idx + 1)
	}
	return t.GoTo(idx)
}

// BeginDrag suspends animation so the rendered position tracks the pointer.
func (t *Track) BeginDrag() {
	t.transitions = false
	t.rearmIn = 0
}

// SnapBack settles on the current index with an animated but uncommitted
// transition after a drag that did not reach the threshold. It never moves
// the index: a commit accepted during the drag keeps its target, and a
// re-base that happened under the finger is kept.
func (t *Track) SnapBack() {
	from := t.Position()
	t.transitions = true
	t.rearmIn = 0
	t.ease(from)
}

// Release applies the outcome of a drag. A commit steps from the current
// index rather than from where the drag began, since a commit or re-base may
// have moved it in the meantime. fromPos is the rendered position, in index
// units, at the moment the pointer was released, so the settling animation
// starts where the finger left the track.
func (t *Track) Release(r Release, fromPos float64) {
	t.transitions = true
	t.rearmIn = 0
	if r.Commit && t.GoTo(t.raw+r.Dir) {
		t.ease(fromPos)
		return
	}
	t.SnapBack()
	t.ease(fromPos)
}

// Frame advances the track by one rendered frame. It re-arms transitions
// after a silent re-base and delivers the transition-finished signal once
// the commit duration has elapsed.
func (t *Track) Frame() {
	if t.rearmIn > 0 {
		t.rearmIn--
		if t.rearmIn == 0 {
			t.transitions = true
		}
	}
	if t.animating && t.now().Sub(t.committedAt) >= t.cfg.Commit {
		t.TransitionFinished()
	}
}

// TransitionFinished is the end-of-transition signal. It clears the
// in-flight guard and, in Loop mode, re-bases off a clone without animation.
// Extra calls without a commit in flight are ignored.
func (t *Track) TransitionFinished() {
	if !t.animating {
		return
	}
	t.animating = false
	t.easeActive = false
	if t.mode == Loop {
		switch t.raw {
		case 0:
			t.jumpSilently(t.n)
		case t.n + 1:
			t.jumpSilently(1)
		}
	}
	if t.OnSettle != nil {
		t.OnSettle(t.Real())
	}
}

func (t *Track) jumpSilently(raw int) {
	t.transitions = false
	t.easeActive = false
	t.raw = raw
	t.rearmIn = t.cfg.RebaseFrames
	t.log.Debug("carousel rebase", zap.Int("raw", raw))
}

// Position is the rendered position in index units. It eases toward Raw
// while a transition is animating and equals Raw otherwise.
func (t *Track) Position() float64 {
	if !t.easeActive || !t.transitions || t.cfg.Commit <= 0 {
		return float64(t.raw)
	}
	p := float64(t.now().Sub(t.easeStart)) / float64(t.cfg.Commit)
	if p >= 1 {
		t.easeActive = false
		return float64(t.raw)
	}
	return t.easeFrom + (float64(t.raw)-t.easeFrom)*easeOut(p)
}

// Offset returns the translation for the stage given a layout measurement
// and the live drag travel. ok is false until the layout is measured.
func (t *Track) Offset(m Measure, dragPx float64) (float64, bool) {
	off, ok := CenterOffsetAt(m, t.Position())
	if !ok {
		return 0, false
	}
	return off + dragPx, true
}

func (t *Track) ease(from float64) {
	if !t.transitions || from == float64(t.raw) {
		t.easeActive = false
		return
	}
	t.easeFrom = from
	t.easeStart = t.now()
	t.easeActive = true
}
