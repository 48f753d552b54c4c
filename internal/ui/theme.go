package ui

import "image/color"

// Colors: warm atelier palette, ink on bone with a brass accent
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x10, B: 0x0E, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1E, G: 0x1B, B: 0x18, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2A, G: 0x26, B: 0x22, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xC8, G: 0xA2, B: 0x5A, A: 0xFF} // brass
	ColorPrimaryDark   = color.RGBA{R: 0x96, G: 0x77, B: 0x3C, A: 0xFF}
	ColorBone          = color.RGBA{R: 0xF2, G: 0xEC, B: 0xE2, A: 0xFF}
	ColorText          = color.RGBA{R: 0xEE, G: 0xE8, B: 0xDE, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0xA8, G: 0x9F, B: 0x92, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x6E, G: 0x67, B: 0x5E, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xC8, G: 0xA2, B: 0x5A, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC8}
	ColorError         = color.RGBA{R: 0xE0, G: 0x58, B: 0x48, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x6C, G: 0xB8, B: 0x6A, A: 0xFF}
)

// Layout constants
const (
	SectionPadding = 48
	SectionTitleH  = 44

	TabBarHeight  = 56
	TabBarPadding = 24

	FontSizeDisplay = 40
	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.18

	// ScrollWheelSpeed is pixels per mouse wheel notch.
	ScrollWheelSpeed = 100

	// Lookbook coverflow cards.
	CoverCardWidth  = 340
	CoverCardHeight = 480
	CoverCardGap    = 36

	// Archive cards fill most of the stage width.
	ArchiveCardRatio = 0.62
	ArchiveCardGap   = 24

	// Latest attires snap rail.
	LatestCardWidth  = 300
	LatestCardHeight = 420
	LatestCardGap    = 32

	// Showcase grid.
	ShowcaseGap = 20

	// Viewer.
	ViewerThumbSize = 72
	ViewerThumbGap  = 10
	ViewerButtonH   = 44
	CloseButtonSize = 40
	ChevronSize     = 44
)
