package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TabBar lists the top-level screens along the top edge.
type TabBar struct {
	Names  []string
	Active string
	// OnSelect is called with the clicked tab's name.
	OnSelect func(name string)

	rects []ButtonRect
}

func NewTabBar(names []string) *TabBar {
	return &TabBar{Names: names}
}

// HandleClick reports whether a tab was hit.
func (tb *TabBar) HandleClick(x, y float64) bool {
	for i, r := range tb.rects {
		if r.Contains(x, y) {
			if tb.OnSelect != nil && tb.Names[i] != tb.Active {
				tb.OnSelect(tb.Names[i])
			}
			return true
		}
	}
	return false
}

// Next returns the tab after the active one, wrapping around.
func (tb *TabBar) Next() string {
	if len(tb.Names) == 0 {
		return ""
	}
	for i, n := range tb.Names {
		if n == tb.Active {
			return tb.Names[(i+1)%len(tb.Names)]
		}
	}
	return tb.Names[0]
}

func (tb *TabBar) Draw(dst *ebiten.Image) {
	w := float32(dst.Bounds().Dx())
	vector.DrawFilledRect(dst, 0, 0, w, TabBarHeight, ColorBackground, false)
	vector.StrokeLine(dst, 0, TabBarHeight, w, TabBarHeight, 1, ColorSurfaceHover, false)

	DrawText(dst, "ATELIER", TabBarPadding, TabBarHeight/2-10, FontSizeHeading, ColorBone)

	tb.rects = tb.rects[:0]
	x := 220.0
	for _, name := range tb.Names {
		label := letterSpaced(name)
		tw, _ := MeasureText(label, FontSizeCaption)
		r := ButtonRect{X: x, Y: 0, W: tw + 32, H: TabBarHeight}
		clr := ColorTextSecondary
		if name == tb.Active {
			clr = ColorPrimary
			vector.DrawFilledRect(dst, float32(r.X+16), TabBarHeight-3, float32(tw), 2, ColorPrimary, false)
		}
		DrawText(dst, label, r.X+16, TabBarHeight/2-6, FontSizeCaption, clr)
		tb.rects = append(tb.rects, r)
		x += r.W
	}
}
