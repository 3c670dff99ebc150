package progressmodal

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/theme"
)

// ProgressModal blocks the window with a message and a running progress bar
// while a slow load or export is in flight.
type ProgressModal struct {
	p  *widget.PopUp
	pb *widget.ProgressBarInfinite
}

func New(c fyne.Canvas, message string) *ProgressModal {
	icon := canvas.NewImageFromResource(theme.AppIcon)
	icon.SetMinSize(fyne.NewSize(64, 64))
	icon.FillMode = canvas.ImageFillContain
	pb := widget.NewProgressBarInfinite()
	msg := container.NewBorder(icon, pb, nil, nil, widget.NewLabel(message))
	return &ProgressModal{
		p:  widget.NewModalPopUp(msg, c),
		pb: pb,
	}
}

func (pm *ProgressModal) Show() {
	pm.pb.Start()
	pm.p.Show()
}

func (pm *ProgressModal) Hide() {
	pm.pb.Stop()
	pm.p.Hide()
}

func (pm *ProgressModal) Visible() bool {
	return pm.p.Visible()
}
