package chart

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeSelect
	ModeZoom
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeSelect:
		return "Select"
	case ModeZoom:
		return "Zoom"
	case ModeEdit:
		return "Edit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ModeNone, nil
	case "select":
		return ModeSelect, nil
	case "zoom":
		return ModeZoom, nil
	case "edit":
		return ModeEdit, nil
	}
	return ModeNone, fmt.Errorf("unknown interaction mode %q", s)
}

// clickSlop is the largest pointer travel, in pixels along either axis, that
// still counts as a click.
const clickSlop = 2

type session struct {
	mode Mode

	anchor            *Graph
	pressPoint        fyne.Position
	currentDragPoint  fyne.Position
	previousDragPoint fyne.Position
	rubberBanding     bool

	band      Bounds
	bandDrawn bool
}

func (c *Chart) SetInteractionMode(m Mode) {
	if m != ModeEdit {
		c.crosshair.Reset()
	}
	c.session.mode = m
}

func (c *Chart) InteractionMode() Mode {
	return c.session.mode
}

// RubberBanding reports whether a drag rectangle is being shown.
func (c *Chart) RubberBanding() bool {
	return c.session.rubberBanding
}

func (c *Chart) OnPointerPressed(p fyne.Position) {
	c.begin()
	defer c.end()
	if g := c.graphAt(p); g != nil {
		c.anchor(g, p)
	}
}

func (c *Chart) anchor(g *Graph, p fyne.Position) {
	s := &c.session
	s.anchor = g
	s.pressPoint = p
	s.currentDragPoint = p
	s.previousDragPoint = p
}

func (c *Chart) OnPointerDragged(p fyne.Position) {
	c.begin()
	defer c.end()
	s := &c.session
	if s.anchor == nil {
		if g := c.graphAt(p); g != nil {
			c.anchor(g, p)
		}
		return
	}
	g := s.anchor
	if !g.kind.Draggable() {
		return
	}
	if mode := g.Mode(s.mode); mode == ModeSelect || mode == ModeZoom {
		s.rubberBanding = true
		r := BoundsFromPoints(s.pressPoint, p).Intersect(g.bounds)
		if s.bandDrawn {
			c.overlay.EraseRubberBand(s.band)
		}
		c.overlay.DrawRubberBand(r)
		s.band = r
		s.bandDrawn = true
	}
	s.previousDragPoint = s.currentDragPoint
	s.currentDragPoint = p
	if dp, err := g.DeviceToData(p); err == nil {
		for _, fn := range c.onMotion {
			fn(g, p, dp)
		}
	}
}

func (c *Chart) OnPointerReleased(p fyne.Position) {
	c.begin()
	defer c.end()
	defer c.resetSession()

	s := &c.session
	g := s.anchor
	if g == nil {
		return
	}
	mode := g.Mode(s.mode)
	if (mode == ModeSelect || mode == ModeZoom) && !g.kind.Draggable() {
		return
	}
	effective := p
	if c.graphAt(p) == nil {
		effective = s.previousDragPoint
	}
	dx, dy := effective.X-s.pressPoint.X, effective.Y-s.pressPoint.Y
	click := abs32(dx) <= clickSlop || abs32(dy) <= clickSlop

	switch mode {
	case ModeSelect:
		if click {
			c.pointSelect(g, s.pressPoint)
			return
		}
		r := BoundsFromPoints(s.pressPoint, effective).Intersect(g.bounds)
		lim, err := c.rectToData(g, r)
		if err != nil {
			log.Printf("select on graph %d: %v", g.id, err)
			return
		}
		for _, fn := range c.onSelect {
			fn(g, r, lim)
		}
	case ModeZoom:
		if click {
			return
		}
		r := BoundsFromPoints(s.pressPoint, effective).Intersect(g.bounds)
		lim, err := c.rectToData(g, r)
		if err != nil {
			log.Printf("zoom on graph %d: %v", g.id, err)
			return
		}
		// a reference graph keeps showing its full extent
		if !g.IsReference() {
			g.SetLimits(lim)
		}
		c.PropagateZoom(g, lim)
		c.clearBand()
		c.markAllDirty()
		for _, fn := range c.onZoom {
			fn(g, r, lim)
		}
	case ModeEdit:
		if click {
			c.editAt(g, s.pressPoint)
		}
	}
}

// OnPointerMoved drives the edit-mode crosshair and motion observers.
func (c *Chart) OnPointerMoved(p fyne.Position) {
	c.begin()
	defer c.end()
	g := c.graphAt(p)
	if c.session.mode == ModeEdit {
		var b Bounds
		if g != nil && g.Mode(ModeEdit) == ModeEdit {
			b = g.bounds
		}
		c.crosshair.OnMouseMove(p, b)
	}
	if g == nil {
		return
	}
	if dp, err := g.DeviceToData(p); err == nil {
		for _, fn := range c.onMotion {
			fn(g, p, dp)
		}
	}
}

// OnPointerLeft hides pointer feedback when the pointer leaves the chart.
func (c *Chart) OnPointerLeft() {
	c.crosshair.Reset()
}

// CancelGesture abandons a press or drag in progress.
func (c *Chart) CancelGesture() {
	c.resetSession()
}

func (c *Chart) pointSelect(g *Graph, p fyne.Position) {
	dp, err := g.DeviceToData(p)
	if err != nil {
		log.Printf("select on graph %d: %v", g.id, err)
		return
	}
	for _, fn := range c.onPointSelect {
		fn(g, p, dp)
	}
}

func (c *Chart) editAt(g *Graph, p fyne.Position) {
	dp, err := g.DeviceToData(p)
	if err != nil {
		log.Printf("edit on graph %d: %v", g.id, err)
		return
	}
	if s := c.editor.Series(); s == nil || !g.binds(s) {
		left := g.EnabledTimeSeries(true, false)
		if len(left) == 0 {
			log.Printf("edit on graph %d: %v", g.id, ErrNoSeries)
			return
		}
		c.editor.Bind(left[0])
	}
	if err := c.editor.EditPoint(dp); err != nil {
		log.Printf("edit on graph %d: %v", g.id, err)
	}
}

func (c *Chart) rectToData(g *Graph, r Bounds) (Limits, error) {
	lim, err := g.DeviceRectToData(r)
	if err != nil {
		return Limits{}, err
	}
	if c.keepYLimits {
		if m := g.MaxLimits(); !m.IsZero() {
			lim.Min, lim.Max = m.Min, m.Max
		}
	}
	return lim, nil
}

func (c *Chart) clearBand() {
	s := &c.session
	if s.bandDrawn {
		c.overlay.EraseRubberBand(s.band)
		s.bandDrawn = false
		s.band = Bounds{}
	}
}

func (c *Chart) resetSession() {
	c.clearBand()
	s := &c.session
	s.anchor = nil
	s.pressPoint = fyne.Position{}
	s.currentDragPoint = fyne.Position{}
	s.previousDragPoint = fyne.Position{}
	s.rubberBanding = false
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
