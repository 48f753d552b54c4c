package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/config"
	"github.com/depeter/atelier/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyMap[string(c)] = ebiten.KeyA + ebiten.Key(c-'a')
	}
	for d := '0'; d <= '9'; d++ {
		keyMap[string(d)] = ebiten.KeyDigit0 + ebiten.Key(d-'0')
	}
	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		keyMap[fmt.Sprintf("f%d", i+1)] = k
	}
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Bindings are the configured keys resolved once at startup. A binding whose
// name does not parse is left unbound.
type Bindings struct {
	Prev, Next, Open, Close ebiten.Key
	Film, NextScreen, Debug ebiten.Key

	bound map[ebiten.Key]bool
}

// NewBindings resolves kb, returning an error that lists every name that
// could not be parsed.
func NewBindings(kb config.KeybindConfig) (Bindings, error) {
	b := Bindings{bound: map[ebiten.Key]bool{}}
	var bad []string
	for _, e := range []struct {
		name string
		dst  *ebiten.Key
	}{
		{kb.Prev, &b.Prev},
		{kb.Next, &b.Next},
		{kb.Open, &b.Open},
		{kb.Close, &b.Close},
		{kb.Film, &b.Film},
		{kb.NextScreen, &b.NextScreen},
		{kb.Debug, &b.Debug},
	} {
		k, ok := parseKey(e.name)
		if !ok {
			bad = append(bad, fmt.Sprintf("%q", e.name))
			continue
		}
		*e.dst = k
		b.bound[k] = true
	}
	if len(bad) > 0 {
		return b, fmt.Errorf("unknown key names: %s", strings.Join(bad, ", "))
	}
	return b, nil
}

func (b Bindings) has(k ebiten.Key) bool { return b.bound[k] }

// keyState abstracts ebiten's key queries so the routing below can be
// exercised without a running game.
type keyState struct {
	justPressed func(ebiten.Key) bool
	repeating   func(ebiten.Key) bool
	altHeld     bool
}

func ebitenKeys() keyState {
	return keyState{
		justPressed: inpututil.IsKeyJustPressed,
		repeating:   ui.KeyRepeating,
		altHeld:     ebiten.IsKeyPressed(ebiten.KeyAlt),
	}
}

// navKey picks this frame's navigation key. Arrow bindings repeat while
// held; Open is ignored with Alt so Alt+Enter stays the fullscreen toggle.
func (b Bindings) navKey(ks keyState) carousel.Key {
	switch {
	case b.has(b.Close) && ks.justPressed(b.Close):
		return carousel.KeyEscape
	case b.has(b.Open) && !ks.altHeld && ks.justPressed(b.Open):
		return carousel.KeyEnter
	case b.has(b.Prev) && ks.repeating(b.Prev):
		return carousel.KeyLeft
	case b.has(b.Next) && ks.repeating(b.Next):
		return carousel.KeyRight
	}
	return carousel.KeyNone
}

// pollInput collects one frame of input.
func (b Bindings) pollInput() *ui.Input {
	in := &ui.Input{Key: b.navKey(ebitenKeys())}
	ui.PollPointer(in)
	return in
}

func (b Bindings) justPressed(k ebiten.Key) bool {
	return b.has(k) && inpututil.IsKeyJustPressed(k)
}
