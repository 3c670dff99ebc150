package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/roffe/txgraph/pkg/timeseries"
	"golang.org/x/text/cases"
)

type ID int

// Kind selects how a graph renders its series. Scatter, Duration and Raster
// graphs do not take part in zoom or select drags.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindScatter
	KindDuration
	KindRaster
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindScatter:
		return "scatter"
	case KindDuration:
		return "duration"
	case KindRaster:
		return "raster"
	}
	return "unknown"
}

func ParseKind(s string) (Kind, error) {
	for k := KindLine; k <= KindRaster; k++ {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return KindLine, fmt.Errorf("unknown graph kind %q", s)
}

func (k Kind) Draggable() bool {
	switch k {
	case KindScatter, KindDuration, KindRaster:
		return false
	}
	return true
}

// Variant tags a graph as a main graph or a reference (overview) graph.
type Variant interface {
	mode(requested Mode) Mode
}

type MainGraph struct{}

func (MainGraph) mode(requested Mode) Mode { return requested }

// ReferenceGraph shows the full extent of the graph it mirrors and only
// ever zooms.
type ReferenceGraph struct {
	Mirrors ID
}

func (ReferenceGraph) mode(Mode) Mode { return ModeZoom }

// ZoomGroup keys the set of graphs whose windows move together.
type ZoomGroup string

// ParseZoomGroup folds a configured group name into its key.
func ParseZoomGroup(s string) ZoomGroup {
	return ZoomGroup(cases.Fold().String(strings.TrimSpace(s)))
}

type Axis int

const (
	AxisLeft Axis = iota
	AxisRight
)

// Binding attaches a series to a graph axis.
type Binding struct {
	Series  *timeseries.Series
	Axis    Axis
	Enabled bool
}

type Graph struct {
	id          ID
	title       string
	variant     Variant
	kind        Kind
	group       ZoomGroup
	zoomEnabled bool

	maxLimits Limits
	limits    Limits
	bounds    Bounds

	bindings []*Binding
}

type GraphOpt func(*Graph)

func WithTitle(title string) GraphOpt {
	return func(g *Graph) {
		g.title = title
	}
}

func WithKind(kind Kind) GraphOpt {
	return func(g *Graph) {
		g.kind = kind
	}
}

func WithZoomGroup(name string) GraphOpt {
	return func(g *Graph) {
		g.group = ParseZoomGroup(name)
	}
}

func WithZoomEnabled(enabled bool) GraphOpt {
	return func(g *Graph) {
		g.zoomEnabled = enabled
	}
}

// WithMaxLimits pins the full extent instead of deriving it from the series.
func WithMaxLimits(l Limits) GraphOpt {
	return func(g *Graph) {
		g.maxLimits = l.Normalize()
	}
}

func WithSeries(s *timeseries.Series, axis Axis) GraphOpt {
	return func(g *Graph) {
		g.bindings = append(g.bindings, &Binding{Series: s, Axis: axis, Enabled: true})
	}
}

// AsReference turns the graph into an overview of the graph with the given id.
// Reference graphs keep their full extent and are left out of zoom assignment.
func AsReference(mirrors ID) GraphOpt {
	return func(g *Graph) {
		g.variant = ReferenceGraph{Mirrors: mirrors}
		g.zoomEnabled = false
	}
}

func NewGraph(id ID, opts ...GraphOpt) *Graph {
	g := &Graph{
		id:          id,
		variant:     MainGraph{},
		kind:        KindLine,
		zoomEnabled: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) ID() ID { return g.id }
func (g *Graph) Title() string { return g.title }
func (g *Graph) Variant() Variant { return g.variant }
func (g *Graph) Kind() Kind { return g.kind }
func (g *Graph) ZoomGroup() ZoomGroup { return g.group }
func (g *Graph) ZoomEnabled() bool { return g.zoomEnabled }
func (g *Graph) Bindings() []*Binding { return g.bindings }
func (g *Graph) PlotBounds() Bounds { return g.bounds }
func (g *Graph) Limits() Limits { return g.limits }
func (g *Graph) SetLimits(l Limits) { g.limits = l.Normalize() }
func (g *Graph) SetPlotBounds(b Bounds) { g.bounds = b }

func (g *Graph) IsReference() bool {
	_, ok := g.variant.(ReferenceGraph)
	return ok
}

// Mode returns the interaction mode in effect on this graph.
func (g *Graph) Mode(requested Mode) Mode {
	return g.variant.mode(requested)
}

func (g *Graph) NumTimeSeries() int {
	return len(g.bindings)
}

func (g *Graph) EnabledTimeSeries(left, right bool) []*timeseries.Series {
	var out []*timeseries.Series
	for _, b := range g.bindings {
		if !b.Enabled {
			continue
		}
		if (b.Axis == AxisLeft && left) || (b.Axis == AxisRight && right) {
			out = append(out, b.Series)
		}
	}
	return out
}

func (g *Graph) binds(s *timeseries.Series) bool {
	for _, b := range g.bindings {
		if b.Series == s {
			return true
		}
	}
	return false
}

// MaxLimits is the full extent of the graph. Unless pinned it is derived from
// the bound series on every call, so edits and new series widen it.
func (g *Graph) MaxLimits() Limits {
	if !g.maxLimits.IsZero() {
		return g.maxLimits
	}
	var (
		out      Limits
		haveTime bool
		lo, hi   float64
		haveVal  bool
	)
	valueAxis := AxisLeft
	if len(g.EnabledTimeSeries(true, false)) == 0 {
		valueAxis = AxisRight
	}
	for _, b := range g.bindings {
		s := b.Series
		if s.Len() == 0 {
			continue
		}
		if !haveTime || s.Start.Before(out.Start) {
			out.Start = s.Start
		}
		if !haveTime || s.End().After(out.End) {
			out.End = s.End()
		}
		haveTime = true
		if b.Axis != valueAxis {
			continue
		}
		if smin, smax, ok := s.MinMax(); ok {
			if !haveVal {
				lo, hi = smin, smax
			}
			lo, hi = min(lo, smin), max(hi, smax)
			haveVal = true
		}
	}
	if !haveTime {
		return Limits{}
	}
	if !out.End.After(out.Start) {
		out.End = out.Start.Add(time.Second)
	}
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	out.Min, out.Max = lo, hi
	return out
}
