package chart

import "time"

// groups returns the distinct zoom groups in graph order.
func (c *Chart) groups() []ZoomGroup {
	var out []ZoomGroup
	seen := make(map[ZoomGroup]bool)
	for _, g := range c.graphs {
		if !seen[g.group] {
			seen[g.group] = true
			out = append(out, g.group)
		}
	}
	return out
}

func (c *Chart) members(group ZoomGroup) []*Graph {
	var out []*Graph
	for _, g := range c.graphs {
		if g.group == group {
			out = append(out, g)
		}
	}
	return out
}

func eligible(g *Graph) bool {
	return g.zoomEnabled && g.NumTimeSeries() > 0
}

// CombinedMaxExtent is the union of the group members' full extents. It is
// recomputed on every call since member extents change as series are edited.
func (c *Chart) CombinedMaxExtent(group ZoomGroup) Limits {
	var u Limits
	for _, g := range c.members(group) {
		u = u.Union(g.MaxLimits())
	}
	return u
}

// PropagateZoom assigns limits to every zoom-enabled graph in the source's
// group. Redraw is requested after all assignments are made.
func (c *Chart) PropagateZoom(source *Graph, limits Limits) {
	c.begin()
	defer c.end()
	for _, g := range c.graphs {
		if g.zoomEnabled && g.group == source.group {
			g.SetLimits(limits)
			c.markDirty(g)
		}
	}
}

// ZoomOutAll shows the combined maximum extent on every eligible graph.
func (c *Chart) ZoomOutAll(redraw bool) {
	c.begin()
	defer c.end()
	for _, group := range c.groups() {
		u := c.CombinedMaxExtent(group)
		if u.IsZero() {
			continue
		}
		for _, g := range c.members(group) {
			if !eligible(g) {
				continue
			}
			g.limits = u
			if redraw {
				c.markDirty(g)
			}
		}
	}
}

// Scroll moves every zoomed-in window by fraction pages, +1 being one full
// window to the right. Windows never leave the group's combined extent.
func (c *Chart) Scroll(fraction float64, notify bool) {
	c.moveWindows(notify, func(cur, u Limits) (time.Time, time.Time) {
		width := min(cur.Width(), u.Width())
		shift := time.Duration(fraction * float64(width))
		start, end := cur.Start.Add(shift), cur.End.Add(shift)
		switch {
		case shift > 0 && end.After(u.End):
			end = u.End
			start = end.Add(-width)
		case shift < 0 && start.Before(u.Start):
			start = u.Start
			end = start.Add(width)
		}
		return start, end
	})
}

func (c *Chart) ScrollToStart(notify bool) {
	c.moveWindows(notify, func(cur, u Limits) (time.Time, time.Time) {
		return u.Start, u.Start.Add(min(cur.Width(), u.Width()))
	})
}

func (c *Chart) ScrollToEnd(notify bool) {
	c.moveWindows(notify, func(cur, u Limits) (time.Time, time.Time) {
		return u.End.Add(-min(cur.Width(), u.Width())), u.End
	})
}

func (c *Chart) moveWindows(notify bool, move func(cur, union Limits) (time.Time, time.Time)) {
	c.begin()
	defer c.end()
	for _, group := range c.groups() {
		u := c.CombinedMaxExtent(group)
		if u.IsZero() {
			continue
		}
		for _, g := range c.members(group) {
			if !eligible(g) || g.limits.Equal(u) {
				continue
			}
			start, end := move(g.limits, u)
			next := g.limits.WithWindow(start, end)
			if next.Equal(g.limits) {
				continue
			}
			g.limits = next
			c.markDirty(g)
			if notify {
				for _, fn := range c.onZoom {
					fn(g, g.bounds, next)
				}
			}
		}
	}
}
