package chart

import (
	"time"

	"fyne.io/fyne/v2"
)

// Limits is a rectangle in data space: a time window by a value range.
type Limits struct {
	Start time.Time
	End   time.Time
	Min   float64
	Max   float64
}

func (l Limits) IsZero() bool {
	return l.Start.IsZero() && l.End.IsZero() && l.Min == 0 && l.Max == 0
}

// Valid reports whether the limits span a non-empty area.
func (l Limits) Valid() bool {
	return l.End.After(l.Start) && l.Max > l.Min
}

func (l Limits) Width() time.Duration {
	return l.End.Sub(l.Start)
}

func (l Limits) Height() float64 {
	return l.Max - l.Min
}

func (l Limits) Equal(o Limits) bool {
	return l.Start.Equal(o.Start) && l.End.Equal(o.End) && l.Min == o.Min && l.Max == o.Max
}

// Union returns the smallest limits containing both. Zero limits are ignored.
func (l Limits) Union(o Limits) Limits {
	if l.IsZero() {
		return o
	}
	if o.IsZero() {
		return l
	}
	u := l
	if o.Start.Before(u.Start) {
		u.Start = o.Start
	}
	if o.End.After(u.End) {
		u.End = o.End
	}
	u.Min = min(u.Min, o.Min)
	u.Max = max(u.Max, o.Max)
	return u
}

// Normalize orders Start/End and Min/Max.
func (l Limits) Normalize() Limits {
	if l.End.Before(l.Start) {
		l.Start, l.End = l.End, l.Start
	}
	if l.Max < l.Min {
		l.Min, l.Max = l.Max, l.Min
	}
	return l
}

// WithWindow returns a copy with the time window replaced.
func (l Limits) WithWindow(start, end time.Time) Limits {
	l.Start, l.End = start, end
	return l
}

// DataPoint is a position in data space.
type DataPoint struct {
	Time  time.Time
	Value float64
}

// Bounds is a rectangle in device space.
type Bounds struct {
	Position fyne.Position
	Size     fyne.Size
}

func NewBounds(x, y, w, h float32) Bounds {
	return Bounds{Position: fyne.NewPos(x, y), Size: fyne.NewSize(w, h)}
}

// BoundsFromPoints returns the rectangle spanned by two corners in any order.
func BoundsFromPoints(a, b fyne.Position) Bounds {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return NewBounds(x0, y0, x1-x0, y1-y0)
}

func (b Bounds) Empty() bool {
	return b.Size.Width <= 0 || b.Size.Height <= 0
}

func (b Bounds) Max() fyne.Position {
	return b.Position.Add(b.Size)
}

// Contains is strict: points on any of the four edges are outside.
func (b Bounds) Contains(p fyne.Position) bool {
	m := b.Max()
	return p.X > b.Position.X && p.X < m.X && p.Y > b.Position.Y && p.Y < m.Y
}

// Intersect clips b to o. The result is empty when they do not overlap.
func (b Bounds) Intersect(o Bounds) Bounds {
	bm, om := b.Max(), o.Max()
	x0, y0 := max(b.Position.X, o.Position.X), max(b.Position.Y, o.Position.Y)
	x1, y1 := min(bm.X, om.X), min(bm.Y, om.Y)
	if x1 < x0 || y1 < y0 {
		return Bounds{}
	}
	return NewBounds(x0, y0, x1-x0, y1-y0)
}
