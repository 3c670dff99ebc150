package chart

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
)

// ErrNotReady is returned by coordinate conversion before a graph has plot
// bounds with area and a valid data window.
var ErrNotReady = errors.New("graph not laid out")

// DeviceToData converts a device position to data space. Device y grows
// downward, data values grow upward.
func (g *Graph) DeviceToData(p fyne.Position) (DataPoint, error) {
	b, l := g.bounds, g.limits
	if b.Empty() || !l.Valid() {
		return DataPoint{}, ErrNotReady
	}
	fx := float64(p.X-b.Position.X) / float64(b.Size.Width)
	fy := float64(p.Y-b.Position.Y) / float64(b.Size.Height)
	return DataPoint{
		Time:  l.Start.Add(time.Duration(fx * float64(l.Width()))),
		Value: l.Max - fy*l.Height(),
	}, nil
}

// DataToDevice is the inverse of DeviceToData.
func (g *Graph) DataToDevice(dp DataPoint) (fyne.Position, error) {
	b, l := g.bounds, g.limits
	if b.Empty() || !l.Valid() {
		return fyne.Position{}, ErrNotReady
	}
	fx := float64(dp.Time.Sub(l.Start)) / float64(l.Width())
	fy := (l.Max - dp.Value) / l.Height()
	return fyne.NewPos(
		b.Position.X+float32(fx*float64(b.Size.Width)),
		b.Position.Y+float32(fy*float64(b.Size.Height)),
	), nil
}

// ContainsDevicePoint is true only strictly inside the plot bounds.
func (g *Graph) ContainsDevicePoint(p fyne.Position) bool {
	return g.bounds.Contains(p)
}

// DeviceRectToData converts a device rectangle to data limits.
func (g *Graph) DeviceRectToData(r Bounds) (Limits, error) {
	topLeft, err := g.DeviceToData(r.Position)
	if err != nil {
		return Limits{}, err
	}
	bottomRight, err := g.DeviceToData(r.Max())
	if err != nil {
		return Limits{}, err
	}
	return Limits{
		Start: topLeft.Time,
		End:   bottomRight.Time,
		Min:   bottomRight.Value,
		Max:   topLeft.Value,
	}.Normalize(), nil
}
