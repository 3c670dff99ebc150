package timeseries

import (
	"fmt"
	"time"
)

// Iterator walks the native timestamps of a series between two bounds.
// Writes through Set do not notify listeners; callers batch a NotifyRange.
type Iterator struct {
	s    *Series
	idx  int
	last int
}

// Between returns an iterator over the timestamps strictly between from and to.
func (s *Series) Between(from, to time.Time) (*Iterator, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%s between %s and %s: %w", s.Name, from.Format(time.RFC3339), to.Format(time.RFC3339), ErrEmptyRange)
	}
	start, err := s.Index(from)
	if err != nil {
		return nil, err
	}
	end, err := s.Index(to)
	if err != nil {
		return nil, err
	}
	// from/to may lie off-grid, keep only steps strictly inside
	if !s.TimeAt(end).Before(to) {
		end--
	}
	return &Iterator{s: s, idx: start, last: end}, nil
}

func (it *Iterator) Next() bool {
	it.idx++
	return it.idx <= it.last
}

func (it *Iterator) Time() time.Time {
	return it.s.TimeAt(it.idx)
}

func (it *Iterator) Value() float64 {
	return it.s.ValueAt(it.idx)
}

func (it *Iterator) Set(v float64) {
	it.s.values[it.idx] = v
}
