package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Save state colours. Labels pick them up through Success/Warning importance.
var (
	savedColor   = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	unsavedColor = color.NRGBA{R: 214, G: 120, B: 0, A: 255}
)

// compactSizes shrink the defaults so twelve action buttons fit the window
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   6,
	theme.SizeNameLineSpacing:    2,
	theme.SizeNameScrollBar:      12,
	theme.SizeNameText:           13,
	theme.SizeNameHeadingText:    16,
	theme.SizeNameSubHeadingText: 13,
	theme.SizeNameCaptionText:    10,
}

// CompactTheme is the default theme with denser sizes and the save state
// colours. Fonts and icons are unchanged.
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color returns the save state colours and defers the rest
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return savedColor
	case theme.ColorNameWarning:
		return unsavedColor
	}
	return t.Theme.Color(name, variant)
}

// Size returns compact sizes
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
