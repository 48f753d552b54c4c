package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws an error banner with a "Dismiss" button.
// Store one per owner that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	Text        string
	dismissRect ButtonRect
}

// Draw renders the banner along the bottom edge. Returns the height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image) float64 {
	if ed.Text == "" {
		ed.dismissRect = ButtonRect{}
		return 0
	}
	b := dst.Bounds()
	const h = 40.0
	y := float64(b.Dy()) - h
	vector.DrawFilledRect(dst, 0, float32(y), float32(b.Dx()), h, ColorSurface, false)
	vector.StrokeLine(dst, 0, float32(y), float32(b.Dx()), float32(y), 1, ColorError, false)

	btnW := 80.0
	btnX := float64(b.Dx()) - btnW - 16
	msg := truncateText(ed.Text, btnX-40, FontSizeSmall)
	DrawText(dst, msg, 20, y+12, FontSizeSmall, ColorError)

	ed.dismissRect = ButtonRect{X: btnX, Y: y + 8, W: btnW, H: h - 16}
	vector.StrokeRect(dst, float32(btnX), float32(y+8), float32(btnW), float32(h-16), 1, ColorTextMuted, false)
	DrawTextCentered(dst, "Dismiss", btnX+btnW/2, y+h/2, FontSizeSmall, ColorTextSecondary)
	return h
}

// HandleClick checks if the dismiss button was clicked. Returns true if the
// click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my float64) bool {
	if ed.Text == "" {
		return false
	}
	if ed.dismissRect.Contains(mx, my) {
		ed.Text = ""
		ed.dismissRect = ButtonRect{}
		return true
	}
	return false
}
