package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/roffe/txgraph/pkg/debug"
	"github.com/roffe/txgraph/pkg/interpolate"
	"github.com/roffe/txgraph/pkg/timeseries"
)

var ErrNoSeries = errors.New("no series bound for editing")

type editRecord struct {
	time  time.Time
	value float64
	set   bool
}

// Editor writes edit-mode clicks into a series. With auto-connect on, the
// steps strictly between the two latest edits are filled by linear
// interpolation, forward in time only.
type Editor struct {
	series *timeseries.Series

	previous    editRecord
	current     editRecord
	autoConnect bool
	pendingSwap bool
}

func NewEditor() *Editor {
	return &Editor{}
}

// Bind selects the series edits are written to. Switching series clears the
// edit history.
func (e *Editor) Bind(s *timeseries.Series) {
	if e.series == s {
		return
	}
	e.series = s
	e.Reset()
}

func (e *Editor) Series() *timeseries.Series {
	return e.series
}

func (e *Editor) Reset() {
	e.previous = editRecord{}
	e.current = editRecord{}
	e.pendingSwap = false
}

// SetAutoConnect toggles interpolation without touching the edit history.
func (e *Editor) SetAutoConnect(enabled bool) {
	e.autoConnect = enabled
}

func (e *Editor) AutoConnect() bool {
	return e.autoConnect
}

// PendingSwap reports that the latest edit was earlier than the one before it
// and was left unconnected.
func (e *Editor) PendingSwap() bool {
	return e.pendingSwap
}

// Last returns the most recent edit.
func (e *Editor) Last() (DataPoint, bool) {
	return DataPoint{Time: e.current.time, Value: e.current.value}, e.current.set
}

func (e *Editor) EditPoint(dp DataPoint) error {
	if e.series == nil {
		return ErrNoSeries
	}
	t, err := e.series.Round(dp.Time)
	if err != nil {
		return fmt.Errorf("edit point: %w", err)
	}
	if err := e.series.Set(t, dp.Value); err != nil {
		return fmt.Errorf("edit point: %w", err)
	}
	e.previous = e.current
	e.current = editRecord{time: t, value: dp.Value, set: true}
	if e.previous.set && e.autoConnect {
		e.interpolationFill()
	}
	return nil
}

func (e *Editor) interpolationFill() {
	prev, cur := e.previous, e.current
	if cur.time.Equal(prev.time) {
		return
	}
	if cur.time.Before(prev.time) {
		e.pendingSwap = true
		return
	}
	it, err := e.series.Between(prev.time, cur.time)
	if err != nil {
		debug.Logf("auto-connect %s: %v", e.series.Name, err)
		return
	}
	for it.Next() {
		it.Set(interpolate.Time(prev.time, prev.value, cur.time, cur.value, it.Time().Sub(prev.time)))
	}
	e.series.NotifyRange(prev.time, cur.time)
	if e.pendingSwap {
		e.pendingSwap = false
	}
}
