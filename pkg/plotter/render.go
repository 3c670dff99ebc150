package plotter

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
	"time"

	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
	"github.com/roffe/txgraph/pkg/timeseries"
)

// Options controls how Render draws a graph.
type Options struct {
	Background color.RGBA
	Grid       color.RGBA
	// Colors holds one colour per series binding, in binding order.
	Colors []color.RGBA
	// Highlight is the binding index drawn thicker, -1 for none.
	Highlight int
	Scale     colors.Scale
	GridLines int
}

func DefaultOptions(g *chart.Graph) Options {
	o := Options{
		Background: color.RGBA{24, 24, 24, 255},
		Grid:       color.RGBA{60, 60, 60, 255},
		Highlight:  -1,
		GridLines:  5,
	}
	for i, b := range g.Bindings() {
		o.Colors = append(o.Colors, colors.ForSeries(i, b.Series.Name))
	}
	return o
}

func (o Options) color(i int, name string) color.RGBA {
	if i < len(o.Colors) {
		return o.Colors[i]
	}
	return colors.ForSeries(i, name)
}

// Render draws g's enabled series into img using the graph's current window.
// The whole image is the plot area.
func Render(img *image.RGBA, g *chart.Graph, o Options) {
	draw.Draw(img, img.Bounds(), &image.Uniform{o.Background}, image.Point{}, draw.Src)
	lim := g.Limits()
	if !lim.Valid() {
		return
	}
	size := img.Bounds().Size()
	if size.X < 2 || size.Y < 2 {
		return
	}
	m := mapping{lim: lim, w: size.X, h: size.Y}
	drawGrid(img, m, o)

	right := rightRange(g)
	if g.Kind() == chart.KindRaster {
		renderRaster(img, g, m, o)
		return
	}
	for i, b := range g.Bindings() {
		if !b.Enabled || i == o.Highlight {
			continue
		}
		renderSeries(img, g.Kind(), b, m.forAxis(b.Axis, right), o.color(i, b.Series.Name), 1)
	}
	if o.Highlight >= 0 && o.Highlight < len(g.Bindings()) {
		if b := g.Bindings()[o.Highlight]; b.Enabled {
			renderSeries(img, g.Kind(), b, m.forAxis(b.Axis, right), o.color(o.Highlight, b.Series.Name), 3)
		}
	}
}

type mapping struct {
	lim  chart.Limits
	w, h int
}

func (m mapping) x(t time.Time) int {
	return int(float64(t.Sub(m.lim.Start)) / float64(m.lim.Width()) * float64(m.w-1))
}

func (m mapping) y(v float64) int {
	return int((m.lim.Max - v) / m.lim.Height() * float64(m.h-1))
}

// valueRange is the value extent of the right axis. Right axis series are
// not part of the graph window and always show in full.
type valueRange struct {
	min, max float64
	ok       bool
}

func (m mapping) forAxis(axis chart.Axis, right valueRange) mapping {
	if axis == chart.AxisRight && right.ok {
		m.lim.Min, m.lim.Max = right.min, right.max
	}
	return m
}

func rightRange(g *chart.Graph) valueRange {
	var r valueRange
	for _, s := range g.EnabledTimeSeries(false, true) {
		lo, hi, ok := s.MinMax()
		if !ok {
			continue
		}
		if !r.ok {
			r = valueRange{min: lo, max: hi, ok: true}
		}
		r.min, r.max = math.Min(r.min, lo), math.Max(r.max, hi)
	}
	if r.ok && r.max <= r.min {
		r.min, r.max = r.min-1, r.max+1
	}
	return r
}

func drawGrid(img *image.RGBA, m mapping, o Options) {
	if o.GridLines <= 0 {
		return
	}
	for _, v := range ValueTicks(m.lim.Min, m.lim.Max, o.GridLines) {
		y := m.y(v)
		fillRect(img, 0, y, m.w-1, y, o.Grid)
	}
	for _, t := range TimeTicks(m.lim.Start, m.lim.End, o.GridLines) {
		x := m.x(t)
		fillRect(img, x, 0, x, m.h-1, o.Grid)
	}
}

// visible returns the index range of samples that touch the window, including
// one sample on either side so lines run to the edge.
func visible(s *timeseries.Series, lim chart.Limits) (int, int) {
	first := s.Interval.Steps(s.Start, lim.Start) - 1
	last := s.Interval.Steps(s.Start, lim.End) + 1
	return max(first, 0), min(last, s.Len()-1)
}

func renderSeries(img *image.RGBA, kind chart.Kind, b *chart.Binding, m mapping, col color.RGBA, thickness int) {
	s := b.Series
	if s.Len() == 0 {
		return
	}
	switch kind {
	case chart.KindLine:
		first, last := visible(s, m.lim)
		px, py, have := 0, 0, false
		for i := first; i <= last; i++ {
			v := s.ValueAt(i)
			if math.IsNaN(v) {
				have = false
				continue
			}
			x, y := m.x(s.TimeAt(i)), m.y(v)
			if have {
				thickLine(img, px, py, x, y, thickness, col)
			} else {
				img.SetRGBA(x, y, col)
			}
			px, py, have = x, y, true
		}
	case chart.KindBar:
		first, last := visible(s, m.lim)
		base := m.y(math.Max(m.lim.Min, math.Min(0, m.lim.Max)))
		for i := first; i <= last; i++ {
			v := s.ValueAt(i)
			if math.IsNaN(v) {
				continue
			}
			x0 := m.x(s.TimeAt(i))
			x1 := m.x(s.TimeAt(i+1)) - 1
			fillRect(img, x0, base, max(x0, x1), m.y(v), col)
		}
	case chart.KindScatter:
		first, last := visible(s, m.lim)
		for i := first; i <= last; i++ {
			if v := s.ValueAt(i); !math.IsNaN(v) {
				fillCircle(img, m.x(s.TimeAt(i)), m.y(v), 1+thickness, col)
			}
		}
	case chart.KindDuration:
		renderDuration(img, s, m, col, thickness)
	}
}

// renderDuration draws the values sorted from largest to smallest across the
// full width, the share of time a value is exceeded.
func renderDuration(img *image.RGBA, s *timeseries.Series, m mapping, col color.RGBA, thickness int) {
	values := make([]float64, 0, s.Len())
	for i := range s.Len() {
		if v := s.ValueAt(i); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	n := len(values)
	px, py := 0, m.y(values[0])
	for i, v := range values {
		x := 0
		if n > 1 {
			x = i * (m.w - 1) / (n - 1)
		}
		y := m.y(v)
		thickLine(img, px, py, x, y, thickness, col)
		px, py = x, y
	}
}

// renderRaster gives every enabled series a horizontal band with one colour
// cell per sample.
func renderRaster(img *image.RGBA, g *chart.Graph, m mapping, o Options) {
	series := g.EnabledTimeSeries(true, true)
	if len(series) == 0 {
		return
	}
	band := m.h / len(series)
	for row, s := range series {
		lo, hi, ok := s.MinMax()
		if !ok {
			continue
		}
		y0, y1 := row*band, (row+1)*band-1
		first, last := visible(s, m.lim)
		for i := first; i <= last; i++ {
			x0 := max(m.x(s.TimeAt(i)), 0)
			x1 := min(m.x(s.TimeAt(i+1))-1, m.w-1)
			fillRect(img, x0, y0, max(x0, x1), y1, o.Scale.At(lo, hi, s.ValueAt(i)))
		}
	}
}
