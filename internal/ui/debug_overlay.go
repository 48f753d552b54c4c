package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugOverlay shows the current screen's carousel state.
type DebugOverlay struct {
	Visible bool
}

func (d *DebugOverlay) Toggle() { d.Visible = !d.Visible }

// Draw draws the overlay if visible. extra lines come from the app (lock
// state, tick rate) and are listed before the screen's own.
func (d *DebugOverlay) Draw(screen *ebiten.Image, s Screen, extra ...string) {
	if !d.Visible || s == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = TabBarHeight + 12.0
	)

	lines := append([]string{fmt.Sprintf("screen: %s", s.Name())}, extra...)
	if dbg, ok := s.(Debuggable); ok {
		lines = append(lines, dbg.DebugLines()...)
	}

	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 360.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
