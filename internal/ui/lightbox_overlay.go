package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/atelier/internal/cache"
	"github.com/depeter/atelier/internal/carousel"
	"github.com/depeter/atelier/internal/viewer"
)

// LightboxOverlay draws the archive lightbox, fading it out during its
// closing phase.
type LightboxOverlay struct {
	L    *viewer.Lightbox
	deps *Deps

	hits  HitList
	click Clicker
}

func NewLightboxOverlay(l *viewer.Lightbox, deps *Deps) *LightboxOverlay {
	return &LightboxOverlay{L: l, deps: deps}
}

// Update advances the closing phase and handles input. It reports whether
// the lightbox consumed the frame's input.
func (o *LightboxOverlay) Update(in *Input) bool {
	o.L.Frame()
	if !o.L.Visible() {
		o.click = Clicker{}
		return false
	}
	if in.Key != carousel.KeyNone {
		o.L.HandleKey(in.Key)
	}
	if !o.L.Interactive() {
		return true
	}
	if in.Pressed {
		if h, ok := o.hits.At(in.CursorX, in.CursorY); ok {
			o.click.Down(h)
		}
	}
	if in.Released {
		if h, ok := o.click.Up(&o.hits, in.CursorX, in.CursorY); ok {
			switch h.ID {
			case "backdrop", "close":
				o.L.Close()
			case "prev":
				o.L.Prev()
			case "next":
				o.L.Next()
			}
		}
	}
	return true
}

func (o *LightboxOverlay) Draw(dst *ebiten.Image) {
	o.hits.Reset()
	item, ok := o.L.Current()
	if !ok {
		return
	}
	alpha := o.L.Alpha()

	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	bg := color.RGBA{A: uint8(0xE6 * alpha)}
	vector.DrawFilledRect(dst, 0, 0, float32(sw), float32(sh), bg, false)
	o.hits.Button("backdrop", 0, ButtonRect{W: sw, H: sh})

	h := sh - 160
	w := math.Min(sw-240, h*0.72)
	r := ButtonRect{X: (sw - w) / 2, Y: 80, W: w, H: h}
	DrawImageCover(dst, o.deps.image(item.HeroImage, cache.Full), r, item.Alt, CardStyle{Alpha: alpha})
	o.hits.Surface("image", 0, r)

	caption := item.Alt
	if caption == "" {
		caption = item.Title
	}
	DrawTextAlpha(dst, caption, r.X, r.Y+r.H+18, FontSizeSmall, ColorTextSecondary, alpha)
	counter := fmt.Sprintf("%02d / %02d", o.L.Index()+1, o.L.Len())
	tw, _ := MeasureText(counter, FontSizeSmall)
	DrawTextAlpha(dst, counter, r.X+r.W-tw, r.Y+r.H+18, FontSizeSmall, ColorTextSecondary, alpha)

	if alpha < 1 {
		return
	}
	o.hits.Button("prev", 0, drawRoundButton(dst, r.X-60, sh/2, ChevronSize, true, chevronLeft))
	o.hits.Button("next", 0, drawRoundButton(dst, r.X+r.W+60, sh/2, ChevronSize, true, chevronRight))
	o.hits.Button("close", 0, drawRoundButton(dst, sw-48, 48, CloseButtonSize, true, drawCloseIcon))
}

func chevronLeft(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	drawChevron(dst, cx, cy, r*2, -1, clr)
}

func chevronRight(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	drawChevron(dst, cx, cy, r*2, 1, clr)
}
