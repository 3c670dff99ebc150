package main

import (
	"context"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/roffe/txgraph/pkg/dataset"
	"github.com/roffe/txgraph/pkg/theme"
	"github.com/roffe/txgraph/pkg/update"
	"github.com/roffe/txgraph/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.txgraph")
	a.Settings().SetTheme(&theme.GraphTheme{})
	a.SetIcon(theme.AppIcon)

	var (
		ds  *dataset.Dataset
		err error
	)
	if len(os.Args) > 1 {
		ds, err = dataset.Load(os.Args[1])
		if err != nil {
			log.Println(err)
		}
	}

	cw := windows.NewChartWindow(a, ds)
	if err != nil {
		dialog.ShowError(err, cw.Window)
	}
	go updateCheck(a, cw.Window)
	cw.ShowAndRun()
}

// updateCheck looks for a new release at most every four days.
func updateCheck(a fyne.App, w fyne.Window) {
	if next := a.Preferences().String("nextUpdateCheck"); next != "" {
		if t, err := time.Parse(time.RFC3339, next); err == nil && time.Now().Before(t) {
			return
		}
	}
	isLatest, latestVersion := update.IsLatest(context.Background(), "v"+a.Metadata().Version)
	if !isLatest {
		update.ShowAvailable(a, w, latestVersion)
	}
	a.Preferences().SetString("nextUpdateCheck", time.Now().Add(96*time.Hour).Format(time.RFC3339))
}
