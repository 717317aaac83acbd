package ui

import (
	"image/color"
	"time"
)

// Colors — dark theme with the Dim orange accent
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x11, B: 0x16, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1E, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2A, G: 0x28, B: 0x32, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF} // Dim orange
	ColorPrimaryDark   = color.RGBA{R: 0xC4, G: 0x71, B: 0x10, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE4, G: 0xE4, B: 0xE4, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x92, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x62, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xF7, G: 0x93, B: 0x1E, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorRatingGold    = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Layout constants
const (
	CardWidth    = 220
	CardHeight   = 330
	CardGap      = 28
	CardFocusPad = 8

	SectionPadding = 40
	SectionTitleH  = 36

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	ScreenWidth  = 1920
	ScreenHeight = 1080

	// CardRowHeight is the height of one card row including title label and padding.
	CardRowHeight = CardHeight + CardGap + FontSizeSmall + FontSizeCaption + 16

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)

// Preview popup constants
const (
	// HoverDelay is how long the pointer must rest on a card before the
	// preview opens. Brief passes never activate anything.
	HoverDelay = 600 * time.Millisecond

	PopupWidth    = 340
	PopupHeight   = 360
	PopupMargin   = 5 // viewport edge margin used for side resolution
	PopupPadding  = 16
	PopupMaxTags  = 3 // genre chips shown, input order preserved
	PopupAnimStep = 0.18

	// NoDescription is shown when an item has no overview text.
	NoDescription = "No description available."
	// NoVersions is shown on the play affordance while the version list is empty.
	NoVersions = "No versions available"
)
