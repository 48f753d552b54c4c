// Package icon draws the window icon procedurally.
package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	brass     = color.RGBA{R: 0xC8, G: 0xA2, B: 0x5A, A: 0xFF}
	brassDark = color.RGBA{R: 0x96, G: 0x77, B: 0x3C, A: 0xFF}
	bone      = color.RGBA{R: 0xF2, G: 0xEC, B: 0xE2, A: 0xFF}
	darkBG    = color.RGBA{R: 0x12, G: 0x10, B: 0x0E, A: 0xFF}
	glow      = color.RGBA{R: 0xC8, G: 0xA2, B: 0x5A, A: 0x40}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	fillCircle(img, s*0.5, s*0.5, s*0.46, glow)
	fillRing(img, s*0.5, s*0.5, s*0.44, s*0.04, brassDark)
	drawDressForm(img, s)
	drawNeedle(img, s)

	return img
}

// drawDressForm draws a tailor's dummy: a bust, a narrow waist flaring to
// the hips, and a stand.
func drawDressForm(img *image.RGBA, s float64) {
	cx := s * 0.5
	top := s * 0.22
	bottom := s * 0.66
	for y := int(top); y <= int(bottom); y++ {
		t := (float64(y) - top) / (bottom - top)
		// Shoulders at t=0.1, waist at t=0.55, hips at t=1.
		half := s * (0.13 + 0.06*math.Cos(t*2*math.Pi+0.6))
		if t < 0.1 {
			half *= 0.6 + 4*t
		}
		for x := int(cx - half); x <= int(cx+half); x++ {
			blendPixel(img, x, y, bone)
		}
	}
	// Neck and stand.
	fillRoundedRect(img, cx-s*0.04, top-s*0.06, s*0.08, s*0.07, s*0.02, bone)
	fillRect(img, int(cx-s*0.015), int(bottom), max(1, int(s*0.03)), int(s*0.14), brass)
	fillRoundedRect(img, cx-s*0.12, bottom+s*0.13, s*0.24, s*0.04, s*0.02, brass)
}

// drawNeedle lays a brass needle diagonally across the form's waist.
func drawNeedle(img *image.RGBA, s float64) {
	x0, y0 := s*0.26, s*0.60
	x1, y1 := s*0.76, s*0.34
	steps := int(s)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		w := s * 0.018 * (1 - 0.7*t)
		fillCircle(img, x0+(x1-x0)*t, y0+(y1-y0)*t, w, brass)
	}
	// Eye of the needle.
	fillCircle(img, x0+(x1-x0)*0.06, y0+(y1-y0)*0.06, s*0.007, darkBG)
}

func fillRing(img *image.RGBA, cx, cy, r, width float64, c color.Color) {
	bounds := img.Bounds()
	outer := r + width/2
	inner := r - width/2
	for y := int(cy - outer); y <= int(cy+outer+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - outer); x <= int(cx+outer+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d >= inner && d <= outer {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills the rectangle whose corners are rounded to radius
// rf, testing each pixel against the nearest point of the inner rectangle.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	b := img.Bounds()
	for y := max(int(yf), b.Min.Y); y <= int(yf+hf) && y < b.Max.Y; y++ {
		for x := max(int(xf), b.Min.X); x <= int(xf+wf) && x < b.Max.X; x++ {
			nx := math.Max(xf+rf, math.Min(float64(x), xf+wf-rf))
			ny := math.Max(yf+rf, math.Min(float64(y), yf+hf-rf))
			if math.Hypot(float64(x)-nx, float64(y)-ny) <= rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
