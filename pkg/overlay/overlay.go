package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/roffe/txgraph/pkg/chart"
)

var _ chart.Overlay = (*Layer)(nil)

var (
	bandStroke   = color.RGBA{255, 255, 255, 200}
	bandFill     = color.RGBA{255, 255, 255, 24}
	crossColor   = color.RGBA{255, 215, 0, 220}
	windowStroke = color.RGBA{0, 160, 255, 220}
	windowFill   = color.RGBA{0, 160, 255, 40}
)

// Layer keeps the pointer feedback as canvas objects stacked above the graph
// images. Draw shows an object at the given shape, Erase hides it again if the
// shape still matches.
type Layer struct {
	container *fyne.Container

	band       *canvas.Rectangle
	horizontal *canvas.Line
	vertical   *canvas.Line
	windows    map[chart.ID]*canvas.Rectangle

	bandShape  chart.Bounds
	crossPoint fyne.Position
	crossClip  chart.Bounds

	draws, erases int
}

type LayerOpt func(*Layer)

func WithCrosshairColor(col color.Color) LayerOpt {
	return func(l *Layer) {
		l.horizontal.StrokeColor = col
		l.vertical.StrokeColor = col
	}
}

func WithBandColor(stroke, fill color.Color) LayerOpt {
	return func(l *Layer) {
		l.band.StrokeColor = stroke
		l.band.FillColor = fill
	}
}

func New(opts ...LayerOpt) *Layer {
	l := &Layer{
		band:       canvas.NewRectangle(bandFill),
		horizontal: canvas.NewLine(crossColor),
		vertical:   canvas.NewLine(crossColor),
		windows:    make(map[chart.ID]*canvas.Rectangle),
	}
	l.band.StrokeColor = bandStroke
	l.band.StrokeWidth = 1
	l.horizontal.StrokeWidth = 1
	l.vertical.StrokeWidth = 1

	for _, opt := range opts {
		opt(l)
	}

	l.band.Hide()
	l.horizontal.Hide()
	l.vertical.Hide()
	l.container = container.NewWithoutLayout(l.band, l.horizontal, l.vertical)
	return l
}

// Object returns the canvas object to stack above the graphs.
func (l *Layer) Object() fyne.CanvasObject {
	return l.container
}

func (l *Layer) DrawRubberBand(r chart.Bounds) {
	l.draws++
	l.bandShape = r
	l.band.Move(r.Position)
	l.band.Resize(r.Size)
	l.band.Show()
	l.band.Refresh()
}

func (l *Layer) EraseRubberBand(r chart.Bounds) {
	l.erases++
	if r != l.bandShape {
		return
	}
	l.bandShape = chart.Bounds{}
	l.band.Hide()
}

func (l *Layer) DrawCrosshair(p fyne.Position, clip chart.Bounds) {
	l.draws++
	l.crossPoint, l.crossClip = p, clip
	m := clip.Max()
	l.horizontal.Position1 = fyne.NewPos(clip.Position.X, p.Y)
	l.horizontal.Position2 = fyne.NewPos(m.X, p.Y)
	l.vertical.Position1 = fyne.NewPos(p.X, clip.Position.Y)
	l.vertical.Position2 = fyne.NewPos(p.X, m.Y)
	l.horizontal.Show()
	l.vertical.Show()
	l.horizontal.Refresh()
	l.vertical.Refresh()
}

func (l *Layer) EraseCrosshair(p fyne.Position, clip chart.Bounds) {
	l.erases++
	if p != l.crossPoint || clip != l.crossClip {
		return
	}
	l.horizontal.Hide()
	l.vertical.Hide()
}

// SetWindow shows the mirrored window as a translucent rectangle on a
// reference graph. An empty rectangle hides it.
func (l *Layer) SetWindow(id chart.ID, r chart.Bounds) {
	rect, ok := l.windows[id]
	if !ok {
		rect = canvas.NewRectangle(windowFill)
		rect.StrokeColor = windowStroke
		rect.StrokeWidth = 1
		l.windows[id] = rect
		// windows sit below the band and crosshair
		l.container.Objects = append([]fyne.CanvasObject{rect}, l.container.Objects...)
	}
	if r.Empty() {
		rect.Hide()
		return
	}
	rect.Move(r.Position)
	rect.Resize(r.Size)
	rect.Show()
	rect.Refresh()
}

// Clear hides everything, used when the graph list is rebuilt.
func (l *Layer) Clear() {
	l.band.Hide()
	l.horizontal.Hide()
	l.vertical.Hide()
	for _, rect := range l.windows {
		rect.Hide()
	}
	l.bandShape = chart.Bounds{}
}

func (l *Layer) BandVisible() bool {
	return l.band.Visible()
}

func (l *Layer) CrosshairVisible() bool {
	return l.horizontal.Visible()
}

// Balance is the number of draws not yet matched by an erase.
func (l *Layer) Balance() int {
	return l.draws - l.erases
}

// WindowRect maps a data-space window onto a reference graph's plot area.
func WindowRect(g *chart.Graph, window chart.Limits) chart.Bounds {
	if window.IsZero() {
		return chart.Bounds{}
	}
	tl, err := g.DataToDevice(chart.DataPoint{Time: window.Start, Value: g.Limits().Max})
	if err != nil {
		return chart.Bounds{}
	}
	br, err := g.DataToDevice(chart.DataPoint{Time: window.End, Value: g.Limits().Min})
	if err != nil {
		return chart.Bounds{}
	}
	return chart.BoundsFromPoints(tl, br).Intersect(g.PlotBounds())
}
