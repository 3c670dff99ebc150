package chart

import (
	"math"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/roffe/txgraph/pkg/timeseries"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daily(name string, start time.Time, n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i % 50)
	}
	return timeseries.New(name, start, timeseries.NewInterval(timeseries.Day, 1), values)
}

type recordingOverlay struct {
	bandDraws, bandErases   int
	crossDraws, crossErases int
	band                    *Bounds
}

func (o *recordingOverlay) DrawRubberBand(r Bounds) {
	o.bandDraws++
	o.band = &r
}

func (o *recordingOverlay) EraseRubberBand(r Bounds) {
	o.bandErases++
	o.band = nil
}

func (o *recordingOverlay) DrawCrosshair(fyne.Position, Bounds) { o.crossDraws++ }
func (o *recordingOverlay) EraseCrosshair(fyne.Position, Bounds) { o.crossErases++ }

// scenarioGraphs builds graph A and B from the zoom-out scenario, both in
// group "1", plus graph C in another group.
func scenarioGraphs() (a, b, c *Graph) {
	a = NewGraph(1,
		WithZoomGroup("1"),
		WithMaxLimits(Limits{Start: date(2000, 1, 1), End: date(2001, 1, 1), Min: 0, Max: 100}),
		WithSeries(daily("a", date(2000, 1, 1), 367), AxisLeft),
	)
	b = NewGraph(2,
		WithZoomGroup(" 1 "),
		WithMaxLimits(Limits{Start: date(2000, 6, 1), End: date(2001, 6, 1), Min: 0, Max: 50}),
		WithSeries(daily("b", date(2000, 6, 1), 366), AxisLeft),
	)
	c = NewGraph(3,
		WithZoomGroup("other"),
		WithMaxLimits(Limits{Start: date(1990, 1, 1), End: date(1991, 1, 1), Min: -5, Max: 5}),
		WithSeries(daily("c", date(1990, 1, 1), 366), AxisLeft),
	)
	return a, b, c
}

func layout(c *Chart) {
	bounds := make(map[ID]Bounds)
	for i, g := range c.Graphs() {
		bounds[g.ID()] = NewBounds(0, float32(i)*200, 400, 200)
	}
	c.Resize(bounds)
}

func TestZoomOutAllUnion(t *testing.T) {
	a, b, other := scenarioGraphs()
	c := New([]*Graph{a, b, other})
	c.ZoomOutAll(false)

	want := Limits{Start: date(2000, 1, 1), End: date(2001, 6, 1), Min: 0, Max: 100}
	for _, g := range []*Graph{a, b} {
		if !g.Limits().Equal(want) {
			t.Errorf("graph %d limits = %+v, want %+v", g.ID(), g.Limits(), want)
		}
	}
	if !other.Limits().Equal(other.MaxLimits()) {
		t.Errorf("graph in other group = %+v, want its own extent", other.Limits())
	}

	first := []Limits{a.Limits(), b.Limits(), other.Limits()}
	c.ZoomOutAll(true)
	for i, g := range []*Graph{a, b, other} {
		if !g.Limits().Equal(first[i]) {
			t.Errorf("second ZoomOutAll changed graph %d: %+v != %+v", g.ID(), g.Limits(), first[i])
		}
	}
}

func TestZoomOutAllSkipsGraphsWithoutSeries(t *testing.T) {
	a, _, _ := scenarioGraphs()
	empty := NewGraph(9, WithZoomGroup("1"),
		WithMaxLimits(Limits{Start: date(1980, 1, 1), End: date(2020, 1, 1), Min: 0, Max: 1}))
	disabled := NewGraph(10, WithZoomGroup("1"), WithZoomEnabled(false),
		WithSeries(daily("d", date(2000, 1, 1), 10), AxisLeft))
	c := New([]*Graph{a, empty, disabled})
	c.ZoomOutAll(true)
	if !empty.Limits().IsZero() {
		t.Errorf("graph without series got limits %+v", empty.Limits())
	}
	if !disabled.Limits().IsZero() {
		t.Errorf("zoom-disabled graph got limits %+v", disabled.Limits())
	}
	// the empty graph's pinned extent still counts toward the union
	if got := a.Limits().Start; !got.Equal(date(1980, 1, 1)) {
		t.Errorf("union start = %v, want 1980-01-01", got)
	}
}

func TestParseZoomGroupFoldsCase(t *testing.T) {
	if ParseZoomGroup("Engine") != ParseZoomGroup("  ENGINE ") {
		t.Error("zoom groups differing only in case and spacing are not equal")
	}
	if ParseZoomGroup("a") == ParseZoomGroup("b") {
		t.Error("distinct zoom groups compare equal")
	}
}

func TestContainsIsStrict(t *testing.T) {
	g := NewGraph(1)
	g.SetPlotBounds(NewBounds(10, 20, 100, 50))
	tests := []struct {
		name string
		p    fyne.Position
		want bool
	}{
		{"inside", fyne.NewPos(50, 40), true},
		{"left edge", fyne.NewPos(10, 40), false},
		{"right edge", fyne.NewPos(110, 40), false},
		{"top edge", fyne.NewPos(50, 20), false},
		{"bottom edge", fyne.NewPos(50, 70), false},
		{"just inside corner", fyne.NewPos(10.5, 20.5), true},
		{"outside", fyne.NewPos(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ContainsDevicePoint(tt.p); got != tt.want {
				t.Errorf("ContainsDevicePoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDeviceToDataNotReady(t *testing.T) {
	g := NewGraph(1)
	if _, err := g.DeviceToData(fyne.NewPos(1, 1)); err != ErrNotReady {
		t.Errorf("no bounds: err = %v, want ErrNotReady", err)
	}
	g.SetPlotBounds(NewBounds(0, 0, 100, 100))
	if _, err := g.DeviceToData(fyne.NewPos(1, 1)); err != ErrNotReady {
		t.Errorf("no limits: err = %v, want ErrNotReady", err)
	}
}

func TestDeviceToDataRoundTrip(t *testing.T) {
	g := NewGraph(1)
	g.SetPlotBounds(NewBounds(0, 0, 400, 200))
	g.SetLimits(Limits{Start: date(2000, 1, 1), End: date(2000, 1, 1).Add(400 * time.Hour), Min: 0, Max: 100})
	dp, err := g.DeviceToData(fyne.NewPos(100, 50))
	if err != nil {
		t.Fatal(err)
	}
	if !dp.Time.Equal(date(2000, 1, 1).Add(100*time.Hour)) || dp.Value != 75 {
		t.Errorf("DeviceToData() = %+v, want 100h / 75", dp)
	}
	p, err := g.DataToDevice(dp)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(p.X-100)) > 1e-3 || math.Abs(float64(p.Y-50)) > 1e-3 {
		t.Errorf("DataToDevice() = %v, want (100, 50)", p)
	}
}

func TestZoomDragPropagates(t *testing.T) {
	a, b, other := scenarioGraphs()
	var redraws [][]ID
	c := New([]*Graph{a, b, other}, WithRedraw(func(ids []ID) { redraws = append(redraws, ids) }))
	layout(c)
	c.SetInteractionMode(ModeZoom)

	want, err := a.DeviceRectToData(BoundsFromPoints(fyne.NewPos(50, 50), fyne.NewPos(150, 150)))
	if err != nil {
		t.Fatal(err)
	}
	if want.Max != 75 || want.Min != 25 {
		t.Fatalf("expected inverted y, got min %v max %v", want.Min, want.Max)
	}
	otherBefore := other.Limits()

	var zoomed *Graph
	c.OnZoom(func(g *Graph, _ Bounds, _ Limits) { zoomed = g })

	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(100, 100))
	c.OnPointerDragged(fyne.NewPos(150, 150))
	if !c.RubberBanding() {
		t.Error("no rubber band during drag")
	}
	redraws = nil
	c.OnPointerReleased(fyne.NewPos(150, 150))

	if !a.Limits().Equal(want) {
		t.Errorf("anchor limits = %+v, want %+v", a.Limits(), want)
	}
	if !b.Limits().Equal(want) {
		t.Errorf("group member limits = %+v, want %+v", b.Limits(), want)
	}
	if !other.Limits().Equal(otherBefore) {
		t.Errorf("graph in other group changed to %+v", other.Limits())
	}
	if zoomed != a {
		t.Errorf("zoom observer got %v, want graph A", zoomed)
	}
	if len(redraws) != 1 {
		t.Errorf("redraw requested %d times, want once", len(redraws))
	}
	if c.RubberBanding() || c.session.anchor != nil {
		t.Error("session not reset after release")
	}
}

func TestReleaseOutsideUsesPreviousDragPoint(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b})
	layout(c)
	c.SetInteractionMode(ModeSelect)

	var got Bounds
	c.OnSelect(func(_ *Graph, r Bounds, _ Limits) { got = r })
	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(120, 120))
	c.OnPointerDragged(fyne.NewPos(300, 180))
	c.OnPointerReleased(fyne.NewPos(900, 900))

	want := BoundsFromPoints(fyne.NewPos(50, 50), fyne.NewPos(120, 120))
	if got != want {
		t.Errorf("selected %+v, want %+v", got, want)
	}
}

func TestReleaseInSiblingGraphClipsToAnchor(t *testing.T) {
	for _, mode := range []Mode{ModeZoom, ModeSelect} {
		t.Run(mode.String(), func(t *testing.T) {
			a, b, _ := scenarioGraphs()
			o := &recordingOverlay{}
			c := New([]*Graph{a, b}, WithOverlay(o))
			layout(c)
			c.SetInteractionMode(mode)
			u := c.CombinedMaxExtent(a.ZoomGroup())

			var (
				selected Bounds
				limits   Limits
			)
			c.OnSelect(func(_ *Graph, r Bounds, lim Limits) { selected, limits = r, lim })
			c.OnZoom(func(g *Graph, r Bounds, lim Limits) {
				if g == a {
					selected, limits = r, lim
				}
			})

			c.OnPointerPressed(fyne.NewPos(50, 150))
			c.OnPointerDragged(fyne.NewPos(150, 250))
			if o.band == nil {
				t.Fatal("no rubber band drawn")
			}
			drawn := *o.band
			c.OnPointerReleased(fyne.NewPos(150, 250))

			if selected != drawn {
				t.Errorf("applied rectangle %+v, drawn %+v", selected, drawn)
			}
			if limits.Min < u.Min || limits.Max > u.Max {
				t.Errorf("limits %v..%v outside combined extent %v..%v", limits.Min, limits.Max, u.Min, u.Max)
			}
			if mode == ModeZoom && a.Limits().Min < u.Min {
				t.Errorf("anchor min = %v, below %v", a.Limits().Min, u.Min)
			}
		})
	}
}

func TestClickThreshold(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		release fyne.Position
		click   bool
	}{
		{"select within slop", ModeSelect, fyne.NewPos(102, 102), true},
		{"select flat drag", ModeSelect, fyne.NewPos(180, 101), true},
		{"select drag", ModeSelect, fyne.NewPos(103, 103), false},
		{"zoom within slop", ModeZoom, fyne.NewPos(98, 101), true},
		{"zoom drag", ModeZoom, fyne.NewPos(160, 150), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, _ := scenarioGraphs()
			c := New([]*Graph{a, b})
			layout(c)
			c.SetInteractionMode(tt.mode)
			before := a.Limits()

			var points, rects int
			c.OnPointSelect(func(*Graph, fyne.Position, DataPoint) { points++ })
			c.OnSelect(func(*Graph, Bounds, Limits) { rects++ })

			c.OnPointerPressed(fyne.NewPos(100, 100))
			c.OnPointerDragged(tt.release)
			c.OnPointerReleased(tt.release)

			switch tt.mode {
			case ModeSelect:
				if tt.click && (points != 1 || rects != 0) {
					t.Errorf("click reported %d points, %d rects", points, rects)
				}
				if !tt.click && (points != 0 || rects != 1) {
					t.Errorf("drag reported %d points, %d rects", points, rects)
				}
			case ModeZoom:
				changed := !a.Limits().Equal(before)
				if changed == tt.click {
					t.Errorf("zoom changed limits = %v, click = %v", changed, tt.click)
				}
			}
		})
	}
}

func TestSelectDoesNotMutate(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b})
	layout(c)
	c.SetInteractionMode(ModeSelect)
	before := a.Limits()
	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(150, 150))
	c.OnPointerReleased(fyne.NewPos(150, 150))
	if !a.Limits().Equal(before) {
		t.Errorf("select changed limits to %+v", a.Limits())
	}
}

func TestKeepYLimits(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b}, WithKeepYLimits(true), WithMode(ModeZoom))
	layout(c)
	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(150, 150))
	c.OnPointerReleased(fyne.NewPos(150, 150))
	if got := a.Limits(); got.Min != 0 || got.Max != 100 {
		t.Errorf("vertical extent = %v..%v, want 0..100", got.Min, got.Max)
	}
}

func TestNonDraggableKindIgnored(t *testing.T) {
	g := NewGraph(1, WithKind(KindScatter), WithSeries(daily("s", date(2000, 1, 1), 100), AxisLeft))
	o := &recordingOverlay{}
	c := New([]*Graph{g}, WithOverlay(o), WithMode(ModeZoom))
	layout(c)
	before := g.Limits()
	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(150, 150))
	c.OnPointerReleased(fyne.NewPos(150, 150))
	if o.bandDraws != 0 {
		t.Errorf("scatter graph drew %d rubber bands", o.bandDraws)
	}
	if !g.Limits().Equal(before) {
		t.Errorf("scatter graph zoomed to %+v", g.Limits())
	}
}

func TestRubberBandPairing(t *testing.T) {
	a, b, _ := scenarioGraphs()
	o := &recordingOverlay{}
	c := New([]*Graph{a, b}, WithOverlay(o), WithMode(ModeZoom))
	layout(c)
	c.OnPointerPressed(fyne.NewPos(50, 50))
	for i := 0; i < 4; i++ {
		c.OnPointerDragged(fyne.NewPos(60+float32(i)*20, 60+float32(i)*20))
	}
	if o.bandDraws != 4 || o.bandErases != 3 {
		t.Errorf("draws %d erases %d, want 4 and 3", o.bandDraws, o.bandErases)
	}
	c.OnPointerReleased(fyne.NewPos(120, 120))
	if o.bandErases != 4 || o.band != nil {
		t.Errorf("rubber band left on screen after release")
	}
}

func TestReferenceGraphLockedToZoom(t *testing.T) {
	s := daily("s", date(2000, 1, 1), 200)
	main := NewGraph(1, WithSeries(s, AxisLeft))
	ref := NewGraph(2, AsReference(1), WithSeries(s, AxisLeft))
	c := New([]*Graph{main, ref}, WithMode(ModeSelect))
	layout(c)

	if ref.Mode(ModeSelect) != ModeZoom || ref.Mode(ModeEdit) != ModeZoom {
		t.Fatal("reference graph not locked to zoom")
	}
	full := ref.Limits()
	var selects int
	c.OnSelect(func(*Graph, Bounds, Limits) { selects++ })

	// graph 2 occupies y 200..400
	c.OnPointerPressed(fyne.NewPos(100, 250))
	c.OnPointerDragged(fyne.NewPos(200, 350))
	c.OnPointerReleased(fyne.NewPos(200, 350))

	if selects != 0 {
		t.Error("reference graph reported a selection")
	}
	if !ref.Limits().Equal(full) {
		t.Errorf("reference graph window changed to %+v", ref.Limits())
	}
	if main.Limits().Equal(full) {
		t.Error("main graph was not zoomed from the reference graph")
	}
	win, ok := c.ReferenceWindow(ref)
	if !ok || !win.Equal(main.Limits()) {
		t.Errorf("ReferenceWindow() = %+v, %v", win, ok)
	}
}

func TestCrosshairPairing(t *testing.T) {
	a, b, _ := scenarioGraphs()
	o := &recordingOverlay{}
	c := New([]*Graph{a, b}, WithOverlay(o), WithMode(ModeEdit))
	layout(c)
	const n = 5
	for i := 0; i < n; i++ {
		c.OnPointerMoved(fyne.NewPos(20+float32(i)*10, 30))
	}
	if o.crossDraws != n || o.crossErases != n-1 {
		t.Errorf("draws %d erases %d, want %d and %d", o.crossDraws, o.crossErases, n, n-1)
	}
	c.SetInteractionMode(ModeZoom)
	if o.crossErases != n {
		t.Error("crosshair not erased when leaving edit mode")
	}
}

func TestCrosshairOutsideBounds(t *testing.T) {
	o := &recordingOverlay{}
	ch := NewCrosshair(o)
	b := NewBounds(0, 0, 100, 100)
	ch.OnMouseMove(fyne.NewPos(50, 50), b)
	ch.OnMouseMove(fyne.NewPos(100, 50), b)
	ch.OnMouseMove(fyne.NewPos(60, 50), b)
	if o.crossDraws != 2 || o.crossErases != 1 {
		t.Errorf("draws %d erases %d, want 2 and 1", o.crossDraws, o.crossErases)
	}
	if !ch.Visible() {
		t.Error("crosshair should be visible")
	}
}

func TestEditClickWritesSeries(t *testing.T) {
	start := date(2000, 1, 1)
	s := timeseries.New("s", start, timeseries.NewInterval(timeseries.Hour, 1), make([]float64, 400))
	g := NewGraph(1, WithSeries(s, AxisLeft),
		WithMaxLimits(Limits{Start: start, End: start.Add(400 * time.Hour), Min: 0, Max: 100}))
	var redraws int
	c := New([]*Graph{g}, WithMode(ModeEdit), WithRedraw(func([]ID) { redraws++ }))
	layout(c)

	c.OnPointerPressed(fyne.NewPos(100, 50))
	c.OnPointerReleased(fyne.NewPos(101, 50))

	v, err := s.Value(start.Add(100 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if v != 75 {
		t.Errorf("edited value = %v, want 75", v)
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, want 1", redraws)
	}
}

func TestScrollRoundTrip(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b})
	layout(c)
	window := Limits{Start: date(2000, 3, 1), End: date(2000, 4, 1), Min: 0, Max: 100}
	a.SetLimits(window)
	c.PropagateZoom(a, window)

	c.Scroll(1.0, false)
	if !a.Limits().Start.Equal(window.End) {
		t.Errorf("after scroll(+1) start = %v, want %v", a.Limits().Start, window.End)
	}
	c.Scroll(-1.0, false)
	if !a.Limits().Equal(window) || !b.Limits().Equal(window) {
		t.Errorf("scroll(+1), scroll(-1) = %+v, want %+v", a.Limits(), window)
	}
}

func TestScrollClamps(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b})
	layout(c)
	u := c.CombinedMaxExtent(a.ZoomGroup())
	window := Limits{Start: date(2001, 5, 1), End: date(2001, 5, 21), Min: 0, Max: 100}
	c.PropagateZoom(a, window)

	var notified int
	c.OnZoom(func(*Graph, Bounds, Limits) { notified++ })
	c.Scroll(1.0, true)
	got := a.Limits()
	if !got.End.Equal(u.End) || got.Width() != window.Width() {
		t.Errorf("clamped scroll = %v..%v, want end %v width %v", got.Start, got.End, u.End, window.Width())
	}
	if notified != 2 {
		t.Errorf("notified %d graphs, want 2", notified)
	}

	c.ScrollToStart(false)
	if got := a.Limits(); !got.Start.Equal(u.Start) || got.Width() != window.Width() {
		t.Errorf("ScrollToStart() = %v..%v", got.Start, got.End)
	}
	c.Scroll(-0.5, false)
	if got := a.Limits(); !got.Start.Equal(u.Start) {
		t.Errorf("scroll past start = %v, want clamp to %v", got.Start, u.Start)
	}
	c.ScrollToEnd(false)
	if got := a.Limits(); !got.End.Equal(u.End) || got.Width() != window.Width() {
		t.Errorf("ScrollToEnd() = %v..%v", got.Start, got.End)
	}
}

func TestScrollToEdgesClampWideWindow(t *testing.T) {
	a, b, _ := scenarioGraphs()
	c := New([]*Graph{a, b})
	layout(c)
	u := c.CombinedMaxExtent(a.ZoomGroup())
	wide := Limits{Start: date(1999, 1, 1), End: date(2003, 1, 1), Min: 0, Max: 100}

	a.SetLimits(wide)
	c.ScrollToStart(false)
	if got := a.Limits(); !got.Start.Equal(u.Start) || got.End.After(u.End) {
		t.Errorf("ScrollToStart() = %v..%v, want inside %v..%v", got.Start, got.End, u.Start, u.End)
	}

	a.SetLimits(wide)
	c.ScrollToEnd(false)
	if got := a.Limits(); !got.End.Equal(u.End) || got.Start.Before(u.Start) {
		t.Errorf("ScrollToEnd() = %v..%v, want inside %v..%v", got.Start, got.End, u.Start, u.End)
	}
}

func TestScrollSkipsZoomedOutGraphs(t *testing.T) {
	a, b, _ := scenarioGraphs()
	var redraws int
	c := New([]*Graph{a, b}, WithRedraw(func([]ID) { redraws++ }))
	layout(c)
	before := a.Limits()
	c.Scroll(1.0, true)
	c.ScrollToEnd(true)
	if !a.Limits().Equal(before) {
		t.Errorf("fully zoomed out graph scrolled to %+v", a.Limits())
	}
	if redraws != 0 {
		t.Errorf("redraws = %d, want none", redraws)
	}
}

func TestMaxLimitsFollowSeries(t *testing.T) {
	s := daily("s", date(2000, 1, 1), 10)
	g := NewGraph(1, WithSeries(s, AxisLeft))
	before := g.MaxLimits()
	if err := s.Set(date(2000, 1, 5), 500); err != nil {
		t.Fatal(err)
	}
	after := g.MaxLimits()
	if after.Max != 500 || before.Max == 500 {
		t.Errorf("max limits did not follow edit: before %v after %v", before.Max, after.Max)
	}
}

func TestRebuildResets(t *testing.T) {
	a, b, _ := scenarioGraphs()
	var redraws int
	c := New([]*Graph{a, b}, WithMode(ModeZoom), WithRedraw(func([]ID) { redraws++ }))
	layout(c)
	c.OnPointerPressed(fyne.NewPos(50, 50))
	c.OnPointerDragged(fyne.NewPos(150, 150))

	s := daily("fresh", date(2010, 1, 1), 10)
	c.Rebuild([]*Graph{NewGraph(7, WithSeries(s, AxisLeft))})
	if c.RubberBanding() || c.session.anchor != nil {
		t.Error("gesture survived rebuild")
	}
	redraws = 0
	// series of the old graph list no longer trigger redraws
	_ = a.Bindings()[0].Series.Set(date(2000, 1, 2), 1)
	if redraws != 0 {
		t.Errorf("stale series triggered %d redraws", redraws)
	}
	_ = s.Set(date(2010, 1, 2), 1)
	if redraws != 1 {
		t.Errorf("bound series triggered %d redraws, want 1", redraws)
	}
}

func TestInvalidate(t *testing.T) {
	a, b, other := scenarioGraphs()
	var redraws [][]ID
	c := New([]*Graph{a, b, other}, WithRedraw(func(ids []ID) { redraws = append(redraws, ids) }))
	c.Invalidate(2, 2, 99)
	if len(redraws) != 1 || len(redraws[0]) != 1 || redraws[0][0] != 2 {
		t.Errorf("Invalidate(2) redraws = %v", redraws)
	}
	redraws = nil
	c.Invalidate()
	if len(redraws) != 1 || len(redraws[0]) != 3 {
		t.Errorf("Invalidate() redraws = %v", redraws)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"line", KindLine, false},
		{" Raster ", KindRaster, false},
		{"DURATION", KindDuration, false},
		{"pie", KindLine, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v", tt.in, got, err)
		}
	}
}
