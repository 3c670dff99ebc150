package windows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/roffe/txgraph/pkg/dataset"
	"github.com/roffe/txgraph/pkg/export"
	"github.com/roffe/txgraph/pkg/widgets/progressmodal"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

var ErrNoSelection = errors.New("nothing selected")

func (cw *ChartWindow) openFile() {
	filename, err := sdialog.File().Filter("Dataset", "csv", "txt", "xlsx", "xlsm").Title("Open dataset").Load()
	if err != nil {
		if errors.Is(err, sdialog.ErrCancelled) {
			return
		}
		cw.showError(err)
		return
	}
	pm := progressmodal.New(cw.Window.Canvas(), "Loading "+filepath.Base(filename))
	pm.Show()
	cw.Window.Canvas().Unfocus()
	go cw.loadFile(filename, pm)
}

// loadFile replaces the dataset while the modal still blocks input; the
// chart core must not see pointer or key events during the rebuild.
func (cw *ChartWindow) loadFile(filename string, pm interface{ Hide() }) {
	defer pm.Hide()
	ds, err := dataset.Load(filename)
	if err != nil {
		cw.showError(err)
		return
	}
	cw.SetDataset(ds)
}

func (cw *ChartWindow) exportPNG() {
	d := sdialog.File().Filter("PNG image", "png").Title("Export chart")
	if cw.settings.ExportDir != "" {
		d = d.SetStartDir(cw.settings.ExportDir)
	}
	filename, err := d.Save()
	if err != nil {
		if errors.Is(err, sdialog.ErrCancelled) {
			return
		}
		cw.showError(err)
		return
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	size := cw.view.Size()
	opts := []export.Option{
		export.WithSize(max(int(size.Width), 640), max(int(size.Height), 480)),
		export.WithColorScale(cw.settings.ColorScale),
	}
	if cw.data != nil {
		opts = append(opts, export.WithTitle(cw.data.Name))
	}
	if err := export.SavePNG(context.Background(), filename, cw.view.Chart(), opts...); err != nil {
		cw.showError(err)
		return
	}
	cw.settings.ExportDir = filepath.Dir(filename)
	cw.status.SetText("Exported " + filename)
	if err := open.Run(filename); err != nil {
		cw.showError(err)
	}
}

// copySelection puts the selected range of the selected graph's visible
// series on the clipboard as tab separated text.
func (cw *ChartWindow) copySelection() {
	sel, ok := cw.view.Selection()
	if !ok {
		cw.showError(ErrNoSelection)
		return
	}
	series := sel.Graph.EnabledTimeSeries(true, true)
	if len(series) == 0 {
		cw.showError(fmt.Errorf("graph %d has no visible series", sel.Graph.ID()))
		return
	}
	text := dataset.FormatTSV(series, sel.Limits.Start, sel.Limits.End)
	cw.writeClipboard(text)
	cw.status.SetText(fmt.Sprintf("Copied %d rows", strings.Count(text, "\n")-1))
}

func (cw *ChartWindow) writeClipboard(text string) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		cw.Window.Clipboard().SetContent(text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}

func formatSummary(ds *dataset.Dataset) string {
	if len(ds.Series) == 0 {
		return "no series"
	}
	s := ds.Series[0]
	return fmt.Sprintf("%d series, %d samples every %s from %s",
		len(ds.Series), s.Len(), ds.Interval, s.Start.Format("2006-01-02 15:04:05"))
}
