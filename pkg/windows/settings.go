package windows

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/debug"
	"github.com/roffe/txgraph/pkg/widgets/numericentry"
)

var errScrollFraction = errors.New("scroll step must be above 0 and at most 1")

func (cw *ChartWindow) showSettings() {
	fraction := numericentry.New()
	fraction.SetFloat(cw.settings.ScrollFraction)
	fraction.Validator = func(string) error {
		v, err := fraction.Float()
		if err != nil {
			return err
		}
		if v <= 0 || v > 1 {
			return errScrollFraction
		}
		return nil
	}
	debugLog := widget.NewCheck("", nil)
	debugLog.SetChecked(cw.settings.DebugLog)

	d := dialog.NewForm("Settings", "Save", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Scroll step (pages)", fraction),
		widget.NewFormItem("Write debug.log", debugLog),
	}, func(ok bool) {
		if !ok {
			return
		}
		if v, err := fraction.Float(); err == nil {
			cw.applySettings(v, debugLog.Checked)
		}
	}, cw.Window)
	d.Resize(fyne.NewSize(360, 180))
	d.Show()
}

func (cw *ChartWindow) applySettings(scrollFraction float64, debugLog bool) {
	if scrollFraction > 0 && scrollFraction <= 1 {
		cw.settings.ScrollFraction = scrollFraction
		cw.view.SetScrollFraction(scrollFraction)
	}
	if debugLog != cw.settings.DebugLog {
		debug.Close()
		if debugLog {
			debug.Enable("debug.log")
		} else {
			debug.Enable("")
		}
	}
	cw.settings.DebugLog = debugLog
	cw.settings.Save(cw.app.Preferences())
}
