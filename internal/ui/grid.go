package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridCells lays out cols×rows equal cells inside area, separated by gap,
// in row-major order.
func GridCells(area ButtonRect, cols, rows int, gap float64) []ButtonRect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	w := (area.W - gap*float64(cols-1)) / float64(cols)
	h := (area.H - gap*float64(rows-1)) / float64(rows)
	if w <= 0 || h <= 0 {
		return nil
	}
	cells := make([]ButtonRect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, ButtonRect{
				X: area.X + float64(c)*(w+gap),
				Y: area.Y + float64(r)*(h+gap),
				W: w,
				H: h,
			})
		}
	}
	return cells
}

// coverCrop returns the centered part of img with the aspect ratio w:h, so
// scaling it to w×h fills the box without distortion.
func coverCrop(img *ebiten.Image, w, h float64) *ebiten.Image {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return img
	}
	target := w / h
	var r image.Rectangle
	if iw/ih > target {
		cw := int(ih * target)
		x0 := b.Min.X + (b.Dx()-cw)/2
		r = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else {
		ch := int(iw / target)
		y0 := b.Min.Y + (b.Dy()-ch)/2
		r = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}
	return img.SubImage(r).(*ebiten.Image)
}

// CardStyle tweaks how a card image is drawn.
type CardStyle struct {
	Alpha float64
	// ScaleX and ScaleY scale the card about its center; zero means 1.
	ScaleX, ScaleY float64
	// Dim darkens the image, 0 (none) to 1 (black).
	Dim float64
}

// DrawImageCover draws img center-cropped to fill r. A nil img draws a
// placeholder with label.
func DrawImageCover(dst *ebiten.Image, img *ebiten.Image, r ButtonRect, label string, st CardStyle) {
	sx, sy := st.ScaleX, st.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	alpha := st.Alpha
	if alpha == 0 {
		alpha = 1
	}
	w, h := r.W*sx, r.H*sy
	x := r.X + (r.W-w)/2
	y := r.Y + (r.H-h)/2

	if img == nil {
		clr := ColorSurface
		clr.A = uint8(float64(clr.A) * alpha)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
		if label != "" {
			DrawTextCentered(dst, truncateText(label, w-16, FontSizeSmall), x+w/2, y+h/2, FontSizeSmall, ColorTextMuted)
		}
		return
	}

	src := coverCrop(img, r.W, r.H)
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	if st.Dim > 0 {
		k := float32(1 - st.Dim)
		op.ColorScale.Scale(k, k, k, 1)
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(src, op)
}

// DrawCard draws a catalog card: image, title and an action label.
func DrawCard(dst *ebiten.Image, img *ebiten.Image, r ButtonRect, title, label string, focused bool) {
	if focused {
		vector.StrokeRect(dst, float32(r.X-4), float32(r.Y-4), float32(r.W+8), float32(r.H+8), 2, ColorFocusBorder, false)
	}
	DrawImageCover(dst, img, r, title, CardStyle{})

	// Caption band
	const band = 54
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+r.H-band), float32(r.W), band, color.RGBA{A: 0xA0}, false)
	DrawText(dst, truncateText(title, r.W-24, FontSizeBody), r.X+12, r.Y+r.H-band+8, FontSizeBody, ColorText)
	if label != "" {
		DrawText(dst, letterSpaced(label), r.X+12, r.Y+r.H-band+30, FontSizeCaption, ColorPrimary)
	}
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}

// DrawButton draws a labelled button and returns its rect.
func DrawButton(dst *ebiten.Image, label string, x, y float64, filled bool) ButtonRect {
	tw, _ := MeasureText(label, FontSizeSmall)
	r := ButtonRect{X: x, Y: y, W: tw + 40, H: ViewerButtonH}
	if filled {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorPrimary, false)
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorBackground)
	} else {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorBone, false)
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorText)
	}
	return r
}

func rectOf(r ButtonRect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
}
