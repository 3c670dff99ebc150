package chart

import (
	"fyne.io/fyne/v2"
	"github.com/roffe/txgraph/pkg/timeseries"
)

type (
	MotionFunc      func(g *Graph, device fyne.Position, data DataPoint)
	PointSelectFunc func(g *Graph, device fyne.Position, data DataPoint)
	RectFunc        func(g *Graph, device Bounds, data Limits)
)

// Chart ties a page of graphs to the interaction state machine, the zoom
// coordinator, the point editor and the crosshair. All methods must be called
// from the UI goroutine.
type Chart struct {
	graphs []*Graph
	gen    int

	session   session
	editor    *Editor
	crosshair *Crosshair
	overlay   Overlay

	keepYLimits bool
	laidOut     bool

	redraw func(ids []ID)
	dirty  []ID
	depth  int

	onMotion      []MotionFunc
	onSelect      []RectFunc
	onPointSelect []PointSelectFunc
	onZoom        []RectFunc
}

type Option func(*Chart)

func WithOverlay(o Overlay) Option {
	return func(c *Chart) {
		c.overlay = o
	}
}

// WithRedraw sets the function receiving coalesced redraw requests.
func WithRedraw(fn func(ids []ID)) Option {
	return func(c *Chart) {
		c.redraw = fn
	}
}

// WithKeepYLimits makes zoom and select rectangles keep the anchor graph's
// full vertical extent.
func WithKeepYLimits(keep bool) Option {
	return func(c *Chart) {
		c.keepYLimits = keep
	}
}

func WithAutoConnect(enabled bool) Option {
	return func(c *Chart) {
		c.editor.SetAutoConnect(enabled)
	}
}

func WithMode(m Mode) Option {
	return func(c *Chart) {
		c.session.mode = m
	}
}

func New(graphs []*Graph, opts ...Option) *Chart {
	c := &Chart{
		editor:  NewEditor(),
		overlay: nopOverlay{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.crosshair = NewCrosshair(c.overlay)
	c.Rebuild(graphs)
	return c
}

// Rebuild replaces the graph list wholesale and returns the interaction
// state to idle.
func (c *Chart) Rebuild(graphs []*Graph) {
	c.CancelGesture()
	c.crosshair.Reset()
	c.editor.Bind(nil)
	c.graphs = graphs
	c.laidOut = false
	c.gen++
	gen := c.gen
	seen := make(map[*timeseries.Series]bool)
	for _, g := range graphs {
		for _, b := range g.bindings {
			if seen[b.Series] {
				continue
			}
			seen[b.Series] = true
			s := b.Series
			s.OnChange(func(timeseries.ChangeEvent) {
				if gen != c.gen {
					return
				}
				c.seriesChanged(s)
			})
		}
	}
}

func (c *Chart) Graphs() []*Graph {
	return c.graphs
}

func (c *Chart) Graph(id ID) *Graph {
	for _, g := range c.graphs {
		if g.id == id {
			return g
		}
	}
	return nil
}

func (c *Chart) Editor() *Editor {
	return c.editor
}

func (c *Chart) SetKeepYLimits(keep bool) {
	c.keepYLimits = keep
}

func (c *Chart) KeepYLimits() bool {
	return c.keepYLimits
}

func (c *Chart) OnMotion(fn MotionFunc) { c.onMotion = append(c.onMotion, fn) }
func (c *Chart) OnSelect(fn RectFunc) { c.onSelect = append(c.onSelect, fn) }
func (c *Chart) OnPointSelect(fn PointSelectFunc) { c.onPointSelect = append(c.onPointSelect, fn) }
func (c *Chart) OnZoom(fn RectFunc) { c.onZoom = append(c.onZoom, fn) }

// Resize applies new plot bounds. The first call after a build shows every
// graph at its own extent, then zooms every group out silently so graphs
// with different natural extents line up.
func (c *Chart) Resize(bounds map[ID]Bounds) {
	for _, g := range c.graphs {
		if b, ok := bounds[g.id]; ok {
			g.bounds = b
		}
	}
	if c.laidOut {
		return
	}
	c.laidOut = true
	for _, g := range c.graphs {
		if g.limits.IsZero() {
			g.limits = g.MaxLimits()
		}
	}
	c.ZoomOutAll(false)
}

// ReferenceWindow returns the current window of the graph a reference graph
// mirrors.
func (c *Chart) ReferenceWindow(g *Graph) (Limits, bool) {
	ref, ok := g.variant.(ReferenceGraph)
	if !ok {
		return Limits{}, false
	}
	m := c.Graph(ref.Mirrors)
	if m == nil {
		return Limits{}, false
	}
	return m.limits, true
}

// EditPoint writes a value through the point editor.
func (c *Chart) EditPoint(dp DataPoint) error {
	c.begin()
	defer c.end()
	return c.editor.EditPoint(dp)
}

func (c *Chart) SetAutoConnect(enabled bool) {
	c.editor.SetAutoConnect(enabled)
}

// BindEditSeries selects the series edit clicks write to.
func (c *Chart) BindEditSeries(s *timeseries.Series) {
	c.editor.Bind(s)
}

// Invalidate requests a redraw of the given graphs, or of every graph when
// called without ids.
func (c *Chart) Invalidate(ids ...ID) {
	c.begin()
	defer c.end()
	if len(ids) == 0 {
		c.markAllDirty()
		return
	}
	for _, id := range ids {
		if g := c.Graph(id); g != nil {
			c.markDirty(g)
		}
	}
}

func (c *Chart) graphAt(p fyne.Position) *Graph {
	for _, g := range c.graphs {
		if g.ContainsDevicePoint(p) {
			return g
		}
	}
	return nil
}

func (c *Chart) seriesChanged(s *timeseries.Series) {
	c.begin()
	defer c.end()
	for _, g := range c.graphs {
		if g.binds(s) {
			c.markDirty(g)
		}
	}
}

// begin and end bracket a handler; redraw requests made inside are
// delivered once when the outermost handler returns.
func (c *Chart) begin() {
	c.depth++
}

func (c *Chart) end() {
	c.depth--
	if c.depth > 0 || len(c.dirty) == 0 {
		return
	}
	ids := c.dirty
	c.dirty = nil
	if c.redraw != nil {
		c.redraw(ids)
	}
}

func (c *Chart) markDirty(graphs ...*Graph) {
	for _, g := range graphs {
		dup := false
		for _, id := range c.dirty {
			if id == g.id {
				dup = true
				break
			}
		}
		if !dup {
			c.dirty = append(c.dirty, g.id)
		}
	}
}

func (c *Chart) markAllDirty() {
	c.markDirty(c.graphs...)
}
