package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrOutOfRange = errors.New("timestamp outside series range")
	ErrEmptyRange = errors.New("empty iterator range")
)

// ChangeEvent describes a write to a series. Single writes have From equal to To.
type ChangeEvent struct {
	Series *Series
	From   time.Time
	To     time.Time
}

type ChangeFunc func(ChangeEvent)

// Series holds values sampled at a regular native interval starting at Start.
// Missing samples are NaN.
type Series struct {
	Name     string
	Interval Interval
	Start    time.Time

	values    []float64
	listeners []ChangeFunc
}

func New(name string, start time.Time, interval Interval, values []float64) *Series {
	return &Series{
		Name:     name,
		Interval: interval,
		Start:    start,
		values:   values,
	}
}

func (s *Series) Len() int {
	return len(s.values)
}

func (s *Series) End() time.Time {
	if len(s.values) == 0 {
		return s.Start
	}
	return s.TimeAt(len(s.values) - 1)
}

func (s *Series) TimeAt(idx int) time.Time {
	return s.Interval.Add(s.Start, idx)
}

func (s *Series) Index(t time.Time) (int, error) {
	idx := s.Interval.Steps(s.Start, t)
	if idx < 0 || idx >= len(s.values) {
		return -1, fmt.Errorf("%s %s: %w", s.Name, t.Format(time.RFC3339), ErrOutOfRange)
	}
	return idx, nil
}

func (s *Series) ValueAt(idx int) float64 {
	if idx < 0 || idx >= len(s.values) {
		return math.NaN()
	}
	return s.values[idx]
}

func (s *Series) Value(t time.Time) (float64, error) {
	idx, err := s.Index(t)
	if err != nil {
		return math.NaN(), err
	}
	return s.values[idx], nil
}

// Round snaps t to a native timestamp of the series. Hourly series round to
// the nearest step; every other base floors to the step containing t.
func (s *Series) Round(t time.Time) (time.Time, error) {
	if s.Interval.Base == Hour {
		t = t.Add(s.Interval.Duration() / 2)
	}
	idx, err := s.Index(t)
	if err != nil {
		return time.Time{}, err
	}
	return s.TimeAt(idx), nil
}

// Set writes a single value and notifies listeners of the one change.
func (s *Series) Set(t time.Time, v float64) error {
	idx, err := s.Index(t)
	if err != nil {
		return err
	}
	s.values[idx] = v
	s.emit(ChangeEvent{Series: s, From: t, To: t})
	return nil
}

// NotifyRange emits a single change event covering [from, to], used after
// batched writes through an Iterator.
func (s *Series) NotifyRange(from, to time.Time) {
	s.emit(ChangeEvent{Series: s, From: from, To: to})
}

func (s *Series) OnChange(fn ChangeFunc) {
	s.listeners = append(s.listeners, fn)
}

func (s *Series) emit(ev ChangeEvent) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

// MinMax returns the value range ignoring missing samples. ok is false when
// the series holds no values.
func (s *Series) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
