package carousel

// Key is a keyboard input relevant to carousel navigation.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyEscape
	KeyEnter
)

// Action is what a key press resolves to once modal state is considered.
type Action int

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionOpen
	ActionClose
	// ActionModal means an open viewer owns the key; the carousel must not
	// react to it.
	ActionModal
)

// RouteKey resolves a key press. While a viewer is open every key belongs to
// the viewer and Escape closes it, so arrow keys never reach the carousel
// behind it.
func RouteKey(k Key, viewerOpen bool) Action {
	if viewerOpen {
		if k == KeyEscape {
			return ActionClose
		}
		if k == KeyNone {
			return ActionNone
		}
		return ActionModal
	}
	switch k {
	case KeyLeft:
		return ActionPrev
	case KeyRight:
		return ActionNext
	case KeyEnter:
		return ActionOpen
	}
	return ActionNone
}

// Step converts a carousel action into an index delta.
func (a Action) Step() int {
	switch a {
	case ActionPrev:
		return -1
	case ActionNext:
		return 1
	}
	return 0
}
