package windows

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/capture"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/dataset"
	"github.com/roffe/txgraph/pkg/debug"
	"github.com/roffe/txgraph/pkg/settings"
	"github.com/roffe/txgraph/pkg/widgets/chartview"
)

// seriesPerGraph caps how many series a generated graph stacks.
const seriesPerGraph = 4

type ChartWindow struct {
	fyne.Window
	app fyne.App

	settings settings.Settings
	data     *dataset.Dataset
	overview bool

	view   *chartview.ChartView
	status *widget.Label

	modeSelect  *widget.Select
	scaleSelect *widget.Select
	autoConnect *widget.Check
	keepY       *widget.Check
	copyBtn     *widget.Button
}

// NewChartWindow opens ds in a new window. ds may be nil, the window then
// starts empty and waits for a file to be opened.
func NewChartWindow(a fyne.App, ds *dataset.Dataset) *ChartWindow {
	cw := &ChartWindow{
		Window:   a.NewWindow("txgraph"),
		app:      a,
		settings: settings.Load(a.Preferences()),
		overview: true,
		status:   widget.NewLabel(""),
	}
	if cw.settings.DebugLog {
		debug.Enable("debug.log")
	}

	cw.view = chartview.New(nil, cw.settings.ChartOptions(),
		chartview.WithScrollFraction(cw.settings.ScrollFraction),
		chartview.WithColorScale(cw.settings.ColorScale),
	)
	cw.view.OnSelection = func(chartview.Selection) {
		cw.copyBtn.Enable()
	}
	cw.view.OnZoom = func(g *chart.Graph, lim chart.Limits) {
		debug.Logf("zoom graph %d to %s - %s", g.ID(), lim.Start, lim.End)
	}

	cw.Window.SetContent(container.NewBorder(
		cw.newToolbar(),
		cw.status,
		nil,
		nil,
		cw.view,
	))
	cw.view.OnTypedKey = cw.typedKey
	cw.Window.Canvas().SetOnTypedKey(cw.typedKey)
	cw.Window.SetCloseIntercept(cw.closeIntercept)
	cw.Window.Resize(fyne.NewSize(1280, 800))

	if ds != nil {
		cw.SetDataset(ds)
	}
	return cw
}

// SetDataset replaces the charted data.
func (cw *ChartWindow) SetDataset(ds *dataset.Dataset) {
	cw.data = ds
	cw.Window.SetTitle("txgraph - " + ds.Name)
	cw.rebuild()
	cw.status.SetText(ds.Name + ": " + formatSummary(ds))
}

func (cw *ChartWindow) rebuild() {
	if cw.data == nil {
		return
	}
	cw.view.SetGraphs(cw.data.Graphs(dataset.GraphOptions{
		PerGraph: seriesPerGraph,
		Overview: cw.overview,
	}))
	cw.copyBtn.Disable()
}

func (cw *ChartWindow) View() *chartview.ChartView {
	return cw.view
}

func (cw *ChartWindow) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyF1:
		ShowHelp(cw.app)
	case fyne.KeyF12:
		dir := cw.settings.ExportDir
		if dir == "" {
			dir = "."
		}
		filename, err := capture.Screenshot(cw.Window.Canvas(), dir)
		if err != nil {
			cw.showError(err)
			return
		}
		cw.status.SetText("Saved " + filename)
	}
}

func (cw *ChartWindow) showError(err error) {
	log.Println(err)
	dialog.ShowError(err, cw.Window)
}

func (cw *ChartWindow) closeIntercept() {
	cw.settings.Save(cw.app.Preferences())
	cw.view.Close()
	debug.Close()
	cw.Window.Close()
}
