package mainwindow

import (
	"image/color"

	"muscle-overlay/internal/picker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme ties the widget accents to the marker colors drawn on the image:
// the status of a selected group uses the current group ring color, a
// missing selection the picked ring color.
type Theme struct {
	style picker.MarkerStyle
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme creates a theme for the given marker style.
func NewTheme(style picker.MarkerStyle) *Theme {
	return &Theme{style: style}
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.style.CurrentColor
	case theme.ColorNameWarning:
		return t.style.RingColor
	case theme.ColorNameSuccess:
		return t.style.DotColor
	case theme.ColorNameSelection:
		c := t.style.HighlightColor
		c.A = 0x80
		return c
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
