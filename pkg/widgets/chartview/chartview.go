package chartview

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
	"github.com/roffe/txgraph/pkg/eventbus"
	"github.com/roffe/txgraph/pkg/layout"
	"github.com/roffe/txgraph/pkg/overlay"
	"github.com/roffe/txgraph/pkg/plotter"
)

var _ fyne.Widget = (*ChartView)(nil)
var _ fyne.Draggable = (*ChartView)(nil)
var _ fyne.Focusable = (*ChartView)(nil)
var _ fyne.Scrollable = (*ChartView)(nil)

const (
	axisWidth    = 60
	titleHeight  = 18
	footerHeight = 16
	legendWidth  = 220
	valueLabels  = 6
	timeLabels   = 6
)

// Selection is the latest Select-mode rectangle.
type Selection struct {
	Graph  *chart.Graph
	Limits chart.Limits
}

// graphView holds the canvas objects of one graph.
type graphView struct {
	graph  *chart.Graph
	image  *canvas.Image
	raster *image.RGBA
	frame  *canvas.Rectangle
	title  *canvas.Text
	values []*canvas.Text
	times  []*canvas.Text

	colors    []color.RGBA
	highlight int
}

// ChartView hosts a chart.Chart: it renders the graphs, routes pointer and
// keyboard input to the chart and shows a legend with pointer readouts.
type ChartView struct {
	widget.BaseWidget

	chart  *chart.Chart
	layer  *overlay.Layer
	bus    *eventbus.Controller
	ownBus bool

	views  []*graphView
	stack  *layout.Stack
	legend *fyne.Container
	scroll *container.Scroll
	status *canvas.Text

	entries []*LegendEntry
	cancels []func()

	scrollFraction   float64
	resolutionFactor float32
	scale            colors.Scale
	focused          bool
	pressed          bool

	selection   Selection
	OnSelection func(Selection)
	OnZoom      func(*chart.Graph, chart.Limits)

	// OnTypedKey receives keys the view does not handle itself.
	OnTypedKey func(*fyne.KeyEvent)

	size fyne.Size
}

type Option func(*ChartView)

// WithScrollFraction sets how much of a page one mouse wheel step scrolls.
func WithScrollFraction(f float64) Option {
	return func(cv *ChartView) {
		cv.scrollFraction = f
	}
}

func WithPlotResolutionFactor(factor float32) Option {
	return func(cv *ChartView) {
		cv.resolutionFactor = factor
	}
}

// WithEventBus shares a readout bus instead of creating one per view.
func WithEventBus(bus *eventbus.Controller) Option {
	return func(cv *ChartView) {
		cv.bus = bus
	}
}

func WithColorScale(s colors.Scale) Option {
	return func(cv *ChartView) {
		cv.scale = s
	}
}

// WithWeights sets the relative graph heights in graph order.
func WithWeights(weights ...float32) Option {
	return func(cv *ChartView) {
		cv.stack.Weights = weights
	}
}

// New builds a view over graphs. Chart options are applied after the view
// installs its own overlay and redraw hook.
func New(graphs []*chart.Graph, chartOpts []chart.Option, opts ...Option) *ChartView {
	cv := &ChartView{
		layer:            overlay.New(),
		stack:            &layout.Stack{Gap: 4},
		legend:           container.NewVBox(),
		status:           canvas.NewText("", color.RGBA{200, 200, 200, 255}),
		scrollFraction:   0.5,
		resolutionFactor: 1,
	}
	cv.ExtendBaseWidget(cv)
	for _, opt := range opts {
		opt(cv)
	}
	if cv.bus == nil {
		cv.bus = eventbus.New(nil)
		cv.ownBus = true
	}
	cv.status.TextSize = 12
	cv.scroll = container.NewVScroll(cv.legend)

	copts := append([]chart.Option{
		chart.WithOverlay(cv.layer),
		chart.WithRedraw(cv.redraw),
	}, chartOpts...)
	cv.chart = chart.New(nil, copts...)
	cv.chart.OnMotion(cv.onMotion)
	cv.chart.OnSelect(cv.onSelect)
	cv.chart.OnPointSelect(cv.onPointSelect)
	cv.chart.OnZoom(func(g *chart.Graph, _ chart.Bounds, lim chart.Limits) {
		if f := cv.OnZoom; f != nil {
			f(g, lim)
		}
	})
	cv.SetGraphs(graphs)
	return cv
}

func (cv *ChartView) Chart() *chart.Chart {
	return cv.chart
}

func (cv *ChartView) SetScrollFraction(f float64) {
	cv.scrollFraction = f
}

// SetColorScale changes the palette raster graphs are drawn with.
func (cv *ChartView) SetColorScale(s colors.Scale) {
	if cv.scale == s {
		return
	}
	cv.scale = s
	cv.chart.Invalidate()
}

func (cv *ChartView) Selection() (Selection, bool) {
	return cv.selection, cv.selection.Graph != nil
}

// SetGraphs replaces the graph list, rebuilding legend and graph images.
func (cv *ChartView) SetGraphs(graphs []*chart.Graph) {
	for _, cancel := range cv.cancels {
		cancel()
	}
	cv.cancels = nil
	cv.entries = nil
	cv.legend.RemoveAll()
	cv.layer.Clear()
	cv.selection = Selection{}

	cv.views = make([]*graphView, len(graphs))
	for i, g := range graphs {
		v := &graphView{
			graph:     g,
			raster:    image.NewRGBA(image.Rect(0, 0, 1, 1)),
			frame:     canvas.NewRectangle(color.Transparent),
			title:     canvas.NewText(g.Title(), color.RGBA{220, 220, 220, 255}),
			highlight: -1,
		}
		v.image = canvas.NewImageFromImage(v.raster)
		v.image.FillMode = canvas.ImageFillStretch
		v.image.ScaleMode = canvas.ImageScaleFastest
		v.frame.StrokeColor = color.RGBA{90, 90, 90, 255}
		v.frame.StrokeWidth = 1
		v.title.TextSize = 12
		v.title.TextStyle.Bold = true
		for range valueLabels {
			v.values = append(v.values, axisText(fyne.TextAlignTrailing))
		}
		for range timeLabels {
			v.times = append(v.times, axisText(fyne.TextAlignCenter))
		}
		for n, b := range g.Bindings() {
			v.colors = append(v.colors, colors.ForSeries(n, b.Series.Name))
		}
		cv.views[i] = v
		cv.addLegend(v)
	}
	cv.chart.Rebuild(graphs)
	if cv.size.Width > 0 {
		cv.layout(cv.size)
	}
	cv.Refresh()
}

func axisText(align fyne.TextAlign) *canvas.Text {
	t := canvas.NewText("", color.RGBA{170, 170, 170, 255})
	t.TextSize = 10
	t.Alignment = align
	t.Hide()
	return t
}

func (cv *ChartView) addLegend(v *graphView) {
	g := v.graph
	if len(g.Bindings()) == 0 {
		return
	}
	header := canvas.NewText(v.title.Text, color.RGBA{220, 220, 220, 255})
	if header.Text == "" {
		header.Text = fmt.Sprintf("Graph %d", g.ID())
	}
	header.TextStyle.Bold = true
	cv.legend.Add(header)
	for n, b := range g.Bindings() {
		entry := NewLegendEntry(b.Series.Name, v.colors[n],
			func(enabled bool) {
				b.Enabled = enabled
				cv.chart.Invalidate(g.ID())
			},
			func(col color.Color) {
				v.colors[n] = colors.ToRGBA(col)
				cv.chart.Invalidate(g.ID())
			},
			func(hover bool) {
				if hover {
					v.highlight = n
				} else {
					v.highlight = -1
				}
				cv.chart.Invalidate(g.ID())
			},
		)
		entry.OnDoubleTapped = func() {
			cv.chart.BindEditSeries(b.Series)
			cv.setStatus("Editing " + b.Series.Name)
		}
		cv.entries = append(cv.entries, entry)
		cv.legend.Add(entry)
		cv.cancels = append(cv.cancels, cv.bus.SubscribeFunc(readoutTopic(g.ID(), n), entry.SetValue))
	}
}

func readoutTopic(id chart.ID, binding int) string {
	return fmt.Sprintf("%d/%d", id, binding)
}

// redraw receives coalesced redraw requests from the chart.
func (cv *ChartView) redraw(ids []chart.ID) {
	for _, id := range ids {
		if v := cv.view(id); v != nil {
			cv.renderGraph(v)
		}
	}
	cv.updateWindows()
}

func (cv *ChartView) view(id chart.ID) *graphView {
	for _, v := range cv.views {
		if v.graph.ID() == id {
			return v
		}
	}
	return nil
}

func (cv *ChartView) renderGraph(v *graphView) {
	b := v.graph.PlotBounds()
	if b.Empty() {
		return
	}
	w := int(b.Size.Width * cv.resolutionFactor)
	h := int(b.Size.Height * cv.resolutionFactor)
	if v.raster.Bounds().Dx() != w || v.raster.Bounds().Dy() != h {
		v.raster = image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	o := plotter.DefaultOptions(v.graph)
	o.Colors = v.colors
	o.Highlight = v.highlight
	o.Scale = cv.scale
	plotter.Render(v.raster, v.graph, o)
	v.image.Image = v.raster
	v.image.Refresh()
	cv.updateAxis(v)
}

// updateAxis positions the tick labels of one graph.
func (cv *ChartView) updateAxis(v *graphView) {
	b := v.graph.PlotBounds()
	lim := v.graph.Limits()
	var ticks []float64
	var times []time.Time
	if lim.Valid() {
		ticks = plotter.ValueTicks(lim.Min, lim.Max, 4)
		times = plotter.TimeTicks(lim.Start, lim.End, 4)
	}
	for i, t := range v.values {
		if i >= len(ticks) {
			t.Hide()
			continue
		}
		pos, err := v.graph.DataToDevice(chart.DataPoint{Time: lim.Start, Value: ticks[i]})
		if err != nil {
			t.Hide()
			continue
		}
		t.Text = plotter.FormatValue(ticks[i])
		t.Move(fyne.NewPos(b.Position.X-axisWidth, pos.Y-7))
		t.Resize(fyne.NewSize(axisWidth-4, 14))
		t.Show()
		t.Refresh()
	}
	for i, t := range v.times {
		if i >= len(times) {
			t.Hide()
			continue
		}
		pos, err := v.graph.DataToDevice(chart.DataPoint{Time: times[i], Value: lim.Min})
		if err != nil {
			t.Hide()
			continue
		}
		t.Text = plotter.FormatTime(times[i], lim.Width())
		t.Move(fyne.NewPos(pos.X-50, b.Max().Y+1))
		t.Resize(fyne.NewSize(100, footerHeight-2))
		t.Show()
		t.Refresh()
	}
}

// updateWindows moves the window markers of every reference graph.
func (cv *ChartView) updateWindows() {
	for _, v := range cv.views {
		window, ok := cv.chart.ReferenceWindow(v.graph)
		if !ok {
			continue
		}
		cv.layer.SetWindow(v.graph.ID(), overlay.WindowRect(v.graph, window))
	}
}

func (cv *ChartView) onMotion(g *chart.Graph, _ fyne.Position, dp chart.DataPoint) {
	for n, b := range g.Bindings() {
		t, err := b.Series.Round(dp.Time)
		if err != nil {
			continue
		}
		v, _ := b.Series.Value(t)
		// a full bus drops the readout, the next move sends a fresh one
		_ = cv.bus.Publish(readoutTopic(g.ID(), n), v)
	}
	cv.setStatus(fmt.Sprintf("%s  %s", dp.Time.Format("2006-01-02 15:04:05"), plotter.FormatValue(dp.Value)))
}

func (cv *ChartView) onSelect(g *chart.Graph, _ chart.Bounds, lim chart.Limits) {
	cv.selection = Selection{Graph: g, Limits: lim}
	cv.setStatus(fmt.Sprintf("Selected %s to %s", lim.Start.Format("2006-01-02 15:04"), lim.End.Format("2006-01-02 15:04")))
	if f := cv.OnSelection; f != nil {
		f(cv.selection)
	}
}

func (cv *ChartView) onPointSelect(g *chart.Graph, _ fyne.Position, dp chart.DataPoint) {
	cv.selection = Selection{Graph: g, Limits: chart.Limits{Start: dp.Time, End: dp.Time, Min: dp.Value, Max: dp.Value}}
	cv.setStatus(fmt.Sprintf("Selected %s", dp.Time.Format("2006-01-02 15:04:05")))
	if f := cv.OnSelection; f != nil {
		f(cv.selection)
	}
}

func (cv *ChartView) setStatus(s string) {
	if cv.status.Text == s {
		return
	}
	cv.status.Text = s
	cv.status.Refresh()
}

// Close releases the readout subscriptions.
func (cv *ChartView) Close() {
	for _, cancel := range cv.cancels {
		cancel()
	}
	cv.cancels = nil
	if cv.ownBus {
		cv.bus.Close()
	}
}

func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return &chartViewRenderer{cv}
}
