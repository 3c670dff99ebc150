package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/roffe/txgraph/pkg/assets"
)

const IconNameWindowMarker fyne.ThemeIconName = "window-marker"

var (
	AppIcon = &fyne.StaticResource{
		StaticName:    "txgraph.svg",
		StaticContent: assets.IconBytes,
	}
	windowMarkerIconRes = &fyne.StaticResource{
		StaticName:    "window_marker.svg",
		StaticContent: assets.WindowMarkerBytes,
	}
)

// WindowMarkerIcon is the toolbar icon of the overview graph toggle.
func WindowMarkerIcon() fyne.Resource {
	if res := fyne.CurrentApp().Settings().Theme().Icon(IconNameWindowMarker); res != nil {
		return res
	}
	return theme.NewThemedResource(windowMarkerIconRes)
}

type GraphTheme struct{}

func (m GraphTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 23, G: 23, B: 24, A: 255}
	case theme.ColorNameHover:
		return color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 64}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m GraphTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	switch name {
	case IconNameWindowMarker:
		return theme.NewThemedResource(windowMarkerIconRes)
	default:
		return theme.DefaultTheme().Icon(name)
	}
}

func (m GraphTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m GraphTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInlineIcon:
		return 18
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBarSmall:
		return 4
	case theme.SizeNameText:
		return 13
	default:
		return theme.DefaultTheme().Size(name)
	}
}
