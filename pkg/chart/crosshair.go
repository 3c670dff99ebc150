package chart

import "fyne.io/fyne/v2"

// Crosshair follows the pointer in edit mode with a horizontal and a vertical
// line clipped to the plot bounds under the pointer.
type Crosshair struct {
	overlay Overlay

	lastPoint    fyne.Position
	eraseNeeded  bool
	activeBounds Bounds
}

func NewCrosshair(o Overlay) *Crosshair {
	if o == nil {
		o = nopOverlay{}
	}
	return &Crosshair{overlay: o}
}

// OnMouseMove must be called once per pointer move.
func (c *Crosshair) OnMouseMove(p fyne.Position, plotBounds Bounds) {
	if c.eraseNeeded {
		c.overlay.EraseCrosshair(c.lastPoint, c.activeBounds)
		c.eraseNeeded = false
	}
	c.lastPoint = p
	c.activeBounds = plotBounds
	if plotBounds.Contains(p) {
		c.overlay.DrawCrosshair(p, plotBounds)
		c.eraseNeeded = true
	}
}

// Reset removes a visible crosshair.
func (c *Crosshair) Reset() {
	if c.eraseNeeded {
		c.overlay.EraseCrosshair(c.lastPoint, c.activeBounds)
		c.eraseNeeded = false
	}
}

func (c *Crosshair) Visible() bool {
	return c.eraseNeeded
}
