package viewer

import "sync"

// ScrollLock is the page-wide scroll lock shared by every viewer. Only one
// owner holds it at a time; the last acquirer wins.
type ScrollLock interface {
	// Acquire takes the lock for owner. Acquiring while already the owner
	// is a no-op.
	Acquire(owner string)
	// Release gives the lock up if owner still holds it, restoring the value
	// that was in effect before the first acquisition. Releasing a lock the
	// owner does not hold is a no-op.
	Release(owner string)
	// Held reports whether anyone holds the lock.
	Held() bool
}

// Overflow values a BodyLock toggles between.
const (
	OverflowAuto   = ""
	OverflowHidden = "hidden"
)

// BodyLock models the document body's overflow style as a single-owner
// lock. It remembers whatever value was set before it was acquired, so
// releasing restores that value rather than a hard-coded default.
type BodyLock struct {
	mu       sync.Mutex
	value    string
	previous string
	owner    string
	held     bool
	acquires int
}

// NewBodyLock returns an unheld lock whose current overflow value is initial.
func NewBodyLock(initial string) *BodyLock {
	return &BodyLock{value: initial}
}

func (l *BodyLock) Acquire(owner string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		if l.owner != owner {
			l.owner = owner
			l.acquires++
		}
		return
	}
	l.previous = l.value
	l.value = OverflowHidden
	l.owner = owner
	l.held = true
	l.acquires++
}

func (l *BodyLock) Release(owner string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.held || l.owner != owner {
		return
	}
	l.value = l.previous
	l.owner = ""
	l.held = false
}

func (l *BodyLock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

// Owner returns the current holder, or "" when unheld.
func (l *BodyLock) Owner() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}

// Value is the overflow value currently in effect.
func (l *BodyLock) Value() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

// Set changes the overflow value from outside the lock, the way another
// part of the page might. While held, the change is remembered and applied
// on release instead.
func (l *BodyLock) Set(v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		l.previous = v
		return
	}
	l.value = v
}

// Acquisitions counts successful ownership changes since creation.
func (l *BodyLock) Acquisitions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquires
}
