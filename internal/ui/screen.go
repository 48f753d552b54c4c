package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens (Lookbook, Archive, Showcase, Latest, Film).
type Screen interface {
	// Update applies one frame of input.
	Update(in *Input) error
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed. Screens close any open
	// viewer here so the scroll lock never outlives them.
	OnExit()
	// Name returns the screen name for the tab bar and debugging.
	Name() string
}

// Modal is implemented by screens that can show a viewer over their
// content. The app asks before handling global keys such as Tab.
type Modal interface {
	ModalOpen() bool
}

// Debuggable screens contribute lines to the debug overlay.
type Debuggable interface {
	DebugLines() []string
}

// ScreenManager holds the current top-level screen and the tab bar above it.
type ScreenManager struct {
	current Screen
	Tabs    *TabBar
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

// Replace exits the current screen and enters s.
func (sm *ScreenManager) Replace(s Screen) {
	if sm.current != nil {
		sm.current.OnExit()
	}
	sm.current = s
	s.OnEnter()
	sm.updateTabHighlight()
}

// Clear exits the current screen and leaves none.
func (sm *ScreenManager) Clear() {
	if sm.current != nil {
		sm.current.OnExit()
		sm.current = nil
	}
}

func (sm *ScreenManager) Current() Screen {
	return sm.current
}

// ModalOpen reports whether the current screen has a viewer open.
func (sm *ScreenManager) ModalOpen() bool {
	m, ok := sm.current.(Modal)
	return ok && m.ModalOpen()
}

func (sm *ScreenManager) Update(in *Input) error {
	s := sm.current
	if s == nil {
		return nil
	}

	// Clicks on the tab bar are intercepted before the screen gets them,
	// unless a viewer covers it.
	if sm.Tabs != nil && !sm.ModalOpen() && in.Pressed && in.CursorY < TabBarHeight {
		sm.Tabs.HandleClick(in.CursorX, in.CursorY)
		sm.updateTabHighlight()
		return nil
	}

	if err := s.Update(in); err != nil {
		return err
	}
	sm.updateTabHighlight()
	return nil
}

func (sm *ScreenManager) updateTabHighlight() {
	if sm.Tabs == nil || sm.current == nil {
		return
	}
	sm.Tabs.Active = sm.current.Name()
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	s := sm.current
	if s == nil {
		return
	}
	s.Draw(dst)
	// The tab bar sits under any open viewer, so screens draw their
	// overlays after it.
	if sm.Tabs != nil && !sm.ModalOpen() {
		sm.Tabs.Draw(dst)
	}
}
