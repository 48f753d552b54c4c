package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/viewer"
)

// ViewerOverlay draws a look viewer over its screen and turns clicks on
// the backdrop, close button, thumbnails and call to action into viewer
// operations.
type ViewerOverlay struct {
	V    *viewer.Viewer
	deps *Deps

	hits  HitList
	click Clicker
}

func NewViewerOverlay(v *viewer.Viewer, deps *Deps) *ViewerOverlay {
	return &ViewerOverlay{V: v, deps: deps}
}

// Update consumes all input while the viewer is open and reports whether it
// did.
func (o *ViewerOverlay) Update(in *Input) bool {
	if !o.V.IsOpen() {
		o.click = Clicker{}
		return false
	}
	if in.Key != carousel.KeyNone {
		o.V.HandleKey(in.Key)
	}
	if in.Pressed {
		if h, ok := o.hits.At(in.CursorX, in.CursorY); ok {
			o.click.Down(h)
		}
	}
	if in.Released {
		if h, ok := o.click.Up(&o.hits, in.CursorX, in.CursorY); ok {
			o.activate(h)
		}
	}
	return true
}

func (o *ViewerOverlay) activate(h Hit) {
	switch h.ID {
	case "backdrop", "close":
		o.V.Close()
	case "thumb":
		if g := o.V.Gallery(); h.Index < len(g) {
			o.V.SelectShot(g[h.Index])
		}
	case "cta":
		item, ok := o.V.Item()
		if !ok || item.CTATarget == "" {
			return
		}
		o.deps.logger().Info("cta", zap.String("item", item.ID), zap.String("target", item.CTATarget))
		if o.deps.OpenCTA != nil {
			o.deps.OpenCTA(item.CTATarget)
		}
	}
}

// Draw renders the viewer if open and rebuilds its hit targets.
func (o *ViewerOverlay) Draw(dst *ebiten.Image) {
	o.hits.Reset()
	item, ok := o.V.Item()
	if !ok {
		return
	}

	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	vector.DrawFilledRect(dst, 0, 0, float32(sw), float32(sh), ColorOverlay, false)
	o.hits.Button("backdrop", 0, ButtonRect{W: sw, H: sh})

	pw := math.Min(1100, sw-96)
	ph := math.Min(680, sh-96)
	panel := ButtonRect{X: (sw - pw) / 2, Y: (sh - ph) / 2, W: pw, H: ph}
	vector.DrawFilledRect(dst, float32(panel.X), float32(panel.Y), float32(pw), float32(ph), ColorSurface, false)
	o.hits.Surface("panel", 0, panel)

	// Hero
	hero := ButtonRect{X: panel.X, Y: panel.Y, W: pw * 0.55, H: ph}
	DrawImageCover(dst, o.deps.image(o.V.ActiveShot(), cache.Full), hero, item.Title, CardStyle{})

	// Copy column
	x := hero.X + hero.W + 36
	colW := panel.X + pw - x - 36
	y := panel.Y + 44
	DrawText(dst, letterSpaced(item.Heading()), x, y, FontSizeCaption, ColorPrimary)
	y += 24
	DrawText(dst, truncateText(item.Title, colW, FontSizeTitle), x, y, FontSizeTitle, ColorBone)
	y += 52
	if item.Description != "" {
		y += DrawTextWrapped(dst, item.Description, x, y, colW, FontSizeBody, ColorTextSecondary)
		y += 16
	}

	// Thumbnail rail
	active := o.V.ShotIndex()
	for i, shot := range o.V.Gallery() {
		r := ButtonRect{X: x + float64(i)*(ViewerThumbSize+ViewerThumbGap), Y: y, W: ViewerThumbSize, H: ViewerThumbSize}
		if r.X+r.W > x+colW {
			break
		}
		DrawImageCover(dst, o.deps.image(shot, cache.Thumb), r, "", CardStyle{Dim: dimIf(i != active, 0.45)})
		if i == active {
			vector.StrokeRect(dst, float32(r.X-2), float32(r.Y-2), float32(r.W+4), float32(r.H+4), 2, ColorFocusBorder, false)
		}
		o.hits.Button("thumb", i, r)
	}
	y += ViewerThumbSize + 32

	if item.CTATarget != "" {
		label := item.CTALabel
		if label == "" {
			label = "Commission this look"
		}
		o.hits.Button("cta", 0, DrawButton(dst, label, x, y, true))
	}

	// Close
	cr := drawRoundButton(dst, panel.X+pw-CloseButtonSize/2-12, panel.Y+CloseButtonSize/2+12, CloseButtonSize, true, drawCloseIcon)
	o.hits.Button("close", 0, cr)
}

func dimIf(cond bool, v float64) float64 {
	if cond {
		return v
	}
	return 0
}
