package windows

import (
	"net/url"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/assets"
	"github.com/roffe/txgraph/pkg/update"
)

var helpWindow fyne.Window

func Help(a fyne.App, w fyne.Window) *container.AppTabs {
	md := widget.NewRichTextFromMarkdown(assets.Help)
	md.Wrapping = fyne.TextWrapWord

	src, _ := url.Parse("https://github.com/roffe/txgraph")
	meta := a.Metadata()

	return container.NewAppTabs(
		container.NewTabItemWithIcon("Controls", theme.VisibilityIcon(), container.NewVScroll(md)),
		container.NewTabItemWithIcon("About", theme.InfoIcon(), container.NewVBox(
			widget.NewHyperlink("txgraph", src),
			widget.NewLabel("Version: "+meta.Version+" Build: "+strconv.Itoa(meta.Build)),
			widget.NewButtonWithIcon("Check for updates", theme.DownloadIcon(), func() {
				go update.UpdateCheck(a, w)
			}),
		)),
	)
}

// ShowHelp raises the help window, creating it on first use.
func ShowHelp(a fyne.App) {
	if helpWindow != nil {
		helpWindow.RequestFocus()
		return
	}
	helpWindow = a.NewWindow("Help")
	helpWindow.SetContent(Help(a, helpWindow))
	helpWindow.Resize(fyne.NewSize(560, 480))
	helpWindow.SetOnClosed(func() {
		helpWindow = nil
	})
	helpWindow.Show()
}
