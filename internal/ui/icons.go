package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawChevron draws a '<' (dir < 0) or '>' chevron centered at (cx, cy).
func drawChevron(dst *ebiten.Image, cx, cy, r float32, dir int, clr color.Color) {
	d := float32(1)
	if dir < 0 {
		d = -1
	}
	vector.StrokeLine(dst, cx-d*r*0.3, cy-r*0.6, cx+d*r*0.3, cy, 2, clr, true)
	vector.StrokeLine(dst, cx+d*r*0.3, cy, cx-d*r*0.3, cy+r*0.6, 2, clr, true)
}

// drawCloseIcon draws an 'x' centered at (cx, cy).
func drawCloseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, 2, clr, true)
	vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, 2, clr, true)
}

// drawPlayIcon draws a filled play triangle inside a ring.
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 2, clr, true)
	var p vector.Path
	p.MoveTo(cx-r*0.3, cy-r*0.45)
	p.LineTo(cx+r*0.5, cy)
	p.LineTo(cx-r*0.3, cy+r*0.45)
	p.Close()
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixelImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel *ebiten.Image

func whitePixelImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whitePixel
}

// drawRoundButton draws a circular icon button and returns its bounds.
func drawRoundButton(dst *ebiten.Image, cx, cy, size float64, enabled bool, icon func(*ebiten.Image, float32, float32, float32, color.Color)) ButtonRect {
	bg := ColorSurfaceHover
	fg := ColorText
	if !enabled {
		bg = ColorSurface
		fg = ColorTextMuted
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(size/2), bg, true)
	icon(dst, float32(cx), float32(cy), float32(size/4), fg)
	return ButtonRect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// drawDots draws page indicators centered at (cx, y) and returns one rect
// per dot.
func drawDots(dst *ebiten.Image, cx, y float64, n, active int) []ButtonRect {
	const (
		dotR   = 4
		dotGap = 16
	)
	rects := make([]ButtonRect, n)
	x0 := cx - float64(n-1)*dotGap/2
	for i := 0; i < n; i++ {
		x := x0 + float64(i)*dotGap
		clr := ColorTextMuted
		r := float32(dotR)
		if i == active {
			clr = ColorPrimary
			r = dotR + 1
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), r, clr, true)
		rects[i] = ButtonRect{X: x - dotGap/2, Y: y - dotGap/2, W: dotGap, H: dotGap}
	}
	return rects
}
