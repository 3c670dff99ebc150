package windows

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
	txtheme "github.com/roffe/txgraph/pkg/theme"
)

var modeNames = []string{
	chart.ModeNone.String(),
	chart.ModeSelect.String(),
	chart.ModeZoom.String(),
	chart.ModeEdit.String(),
}

func (cw *ChartWindow) newToolbar() *fyne.Container {
	c := cw.view.Chart()

	cw.modeSelect = widget.NewSelect(modeNames, func(s string) {
		m, err := chart.ParseMode(s)
		if err != nil {
			log.Println(err)
			return
		}
		c.SetInteractionMode(m)
		cw.settings.Mode = m
	})
	cw.modeSelect.SetSelected(cw.settings.Mode.String())

	cw.autoConnect = widget.NewCheck("Auto-connect", func(b bool) {
		c.SetAutoConnect(b)
		cw.settings.AutoConnect = b
	})
	cw.autoConnect.SetChecked(cw.settings.AutoConnect)

	cw.keepY = widget.NewCheck("Keep Y limits", func(b bool) {
		c.SetKeepYLimits(b)
		cw.settings.KeepYLimits = b
	})
	cw.keepY.SetChecked(cw.settings.KeepYLimits)

	cw.scaleSelect = widget.NewSelect(colors.ScaleNames(), func(s string) {
		scale, err := colors.ParseScale(s)
		if err != nil {
			log.Println(err)
			return
		}
		cw.view.SetColorScale(scale)
		cw.settings.ColorScale = scale
	})
	cw.scaleSelect.SetSelected(cw.settings.ColorScale.String())

	overviewBtn := widget.NewButtonWithIcon("", txtheme.WindowMarkerIcon(), func() {
		cw.overview = !cw.overview
		cw.rebuild()
	})

	cw.copyBtn = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), cw.copySelection)
	cw.copyBtn.Disable()

	return container.NewHBox(
		widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), cw.openFile),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("Mode"), nil, cw.modeSelect),
		cw.autoConnect,
		cw.keepY,
		widget.NewSeparator(),
		widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() {
			c.ScrollToStart(true)
		}),
		widget.NewButtonWithIcon("", theme.MediaFastRewindIcon(), func() {
			c.Scroll(-cw.settings.ScrollFraction, true)
		}),
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), func() {
			c.ZoomOutAll(true)
		}),
		widget.NewButtonWithIcon("", theme.MediaFastForwardIcon(), func() {
			c.Scroll(cw.settings.ScrollFraction, true)
		}),
		widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() {
			c.ScrollToEnd(true)
		}),
		overviewBtn,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("Raster"), nil, cw.scaleSelect),
		cw.copyBtn,
		widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), cw.exportPNG),
		widget.NewButtonWithIcon("", theme.SettingsIcon(), cw.showSettings),
		widget.NewButtonWithIcon("", theme.HelpIcon(), func() {
			ShowHelp(cw.app)
		}),
	)
}
