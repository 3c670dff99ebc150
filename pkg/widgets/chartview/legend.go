package chartview

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/txgraph/pkg/plotter"
)

var disabledColor = color.RGBA{128, 128, 128, 255}

// LegendEntry shows a series name and the value under the pointer. Tapping
// toggles the series, a secondary tap opens a colour picker.
type LegendEntry struct {
	widget.BaseWidget
	text          *canvas.Text
	value         *canvas.Text
	enabled       bool
	onTapped      func(bool)
	onColorUpdate func(col color.Color)
	onHover       func(bool)
	color         color.Color

	OnDoubleTapped func()

	oldSize fyne.Size
}

func NewLegendEntry(text string, col color.Color, onTapped func(enabled bool), onColorUpdate func(col color.Color), onHover func(bool)) *LegendEntry {
	le := &LegendEntry{
		text:          canvas.NewText(text, col),
		value:         canvas.NewText("-", col),
		enabled:       true,
		onTapped:      onTapped,
		onColorUpdate: onColorUpdate,
		onHover:       onHover,
		color:         col,
	}
	if le.onTapped == nil {
		le.onTapped = func(bool) {}
	}
	if le.onColorUpdate == nil {
		le.onColorUpdate = func(color.Color) {}
	}
	if le.onHover == nil {
		le.onHover = func(bool) {}
	}
	le.text.TextSize = 13
	le.value.TextSize = 13
	le.value.Alignment = fyne.TextAlignTrailing
	le.ExtendBaseWidget(le)
	return le
}

// SetValue updates the readout, NaN shows as a dash.
func (le *LegendEntry) SetValue(v float64) {
	s := "-"
	if !math.IsNaN(v) {
		s = plotter.FormatValue(v)
	}
	if le.value.Text == s {
		return
	}
	le.value.Text = s
	le.value.Refresh()
}

func (le *LegendEntry) Value() string {
	return le.value.Text
}

func (le *LegendEntry) Enabled() bool {
	return le.enabled
}

func (le *LegendEntry) MouseIn(*desktop.MouseEvent) {
	le.onHover(true)
}

func (le *LegendEntry) MouseMoved(*desktop.MouseEvent) {
}

func (le *LegendEntry) MouseOut() {
	le.onHover(false)
}

func (le *LegendEntry) Enable() {
	le.enabled = true
	le.setStyle(le.color, false)
}

func (le *LegendEntry) Disable() {
	le.enabled = false
	le.setStyle(disabledColor, true)
}

func (le *LegendEntry) setStyle(col color.Color, italic bool) {
	le.text.Color = col
	le.value.Color = col
	le.text.TextStyle = fyne.TextStyle{Italic: italic}
	le.value.TextStyle = fyne.TextStyle{Italic: italic}
	le.text.Refresh()
	le.value.Refresh()
}

func (le *LegendEntry) Tapped(*fyne.PointEvent) {
	if le.enabled {
		le.Disable()
	} else {
		le.Enable()
	}
	le.onTapped(le.enabled)
}

func (le *LegendEntry) DoubleTapped(*fyne.PointEvent) {
	if f := le.OnDoubleTapped; f != nil {
		f()
	}
}

func (le *LegendEntry) TappedSecondary(*fyne.PointEvent) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		le.color = c
		if le.enabled {
			le.setStyle(c, false)
		}
		le.onColorUpdate(c)
	})

	c := fyne.CurrentApp().Driver().CanvasForObject(le)
	if c == nil {
		return
	}
	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), c)
	modal.Show()
}

func (le *LegendEntry) CreateRenderer() fyne.WidgetRenderer {
	return &legendEntryRenderer{le}
}

type legendEntryRenderer struct {
	le *LegendEntry
}

func (r *legendEntryRenderer) Layout(size fyne.Size) {
	if r.le.oldSize == size {
		return
	}
	r.le.oldSize = size
	r.le.value.Move(fyne.NewPos(0, 0))
	r.le.value.Resize(fyne.NewSize(64, size.Height))
	r.le.text.Move(fyne.NewPos(72, 0))
}

func (r *legendEntryRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 18)
}

func (r *legendEntryRenderer) Refresh() {
	r.le.value.Refresh()
	r.le.text.Refresh()
}

func (r *legendEntryRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.le.value, r.le.text}
}

func (r *legendEntryRenderer) Destroy() {
}
