package numericentry

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Widget is an entry that only accepts decimal numbers. Both '.' and ','
// work as decimal separator.
type Widget struct {
	widget.Entry
}

func New() *Widget {
	entry := &Widget{}
	entry.ExtendBaseWidget(entry)
	entry.Validator = func(s string) error {
		_, err := parse(s)
		return err
	}
	return entry
}

func (e *Widget) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '.' || r == ',' {
		e.Entry.TypedRune(r)
	}
}

func (e *Widget) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}
	if _, err := parse(paste.Clipboard.Content()); err == nil {
		e.Entry.TypedShortcut(shortcut)
	}
}

func (e *Widget) Float() (float64, error) {
	return parse(e.Text)
}

func (e *Widget) SetFloat(v float64) {
	e.SetText(strconv.FormatFloat(v, 'f', -1, 64))
}

func parse(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
