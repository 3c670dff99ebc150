package chartview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (cv *ChartView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	cv.focus()
	cv.pressed = true
	cv.chart.OnPointerPressed(event.Position)
}

func (cv *ChartView) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary || !cv.pressed {
		return
	}
	cv.pressed = false
	cv.chart.OnPointerReleased(event.Position)
}

func (cv *ChartView) Dragged(event *fyne.DragEvent) {
	if !cv.pressed {
		return
	}
	cv.chart.OnPointerDragged(event.Position)
}

func (cv *ChartView) DragEnd() {}

func (cv *ChartView) MouseIn(event *desktop.MouseEvent) {
	cv.chart.OnPointerMoved(event.Position)
}

func (cv *ChartView) MouseMoved(event *desktop.MouseEvent) {
	cv.chart.OnPointerMoved(event.Position)
}

func (cv *ChartView) MouseOut() {
	cv.chart.OnPointerLeft()
}

// Scrolled pans every zoomed graph, wheel down moves forward in time.
func (cv *ChartView) Scrolled(event *fyne.ScrollEvent) {
	switch {
	case event.Scrolled.DY < 0:
		cv.chart.Scroll(cv.scrollFraction, true)
	case event.Scrolled.DY > 0:
		cv.chart.Scroll(-cv.scrollFraction, true)
	}
}

func (cv *ChartView) Tapped(*fyne.PointEvent) {
	cv.focus()
}

func (cv *ChartView) focus() {
	if cv.focused {
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(cv); c != nil {
		c.Focus(cv)
	}
}

func (cv *ChartView) FocusGained() {
	cv.focused = true
}

func (cv *ChartView) FocusLost() {
	cv.focused = false
}

func (cv *ChartView) TypedRune(r rune) {
	switch r {
	case '0':
		cv.chart.ZoomOutAll(true)
	}
}

func (cv *ChartView) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyHome:
		cv.chart.ScrollToStart(true)
	case fyne.KeyEnd:
		cv.chart.ScrollToEnd(true)
	case fyne.KeyPageUp:
		cv.chart.Scroll(-1, true)
	case fyne.KeyPageDown:
		cv.chart.Scroll(1, true)
	case fyne.KeyLeft:
		cv.chart.Scroll(-cv.scrollFraction, true)
	case fyne.KeyRight:
		cv.chart.Scroll(cv.scrollFraction, true)
	case fyne.KeyEscape:
		cv.pressed = false
		cv.chart.CancelGesture()
	default:
		if f := cv.OnTypedKey; f != nil {
			f(key)
		}
	}
}
