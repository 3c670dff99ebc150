package timeseries

import (
	"fmt"
	"strings"
	"time"
)

type Base int

const (
	Second Base = iota
	Minute
	Hour
	Day
	Month
	Year
)

func (b Base) String() string {
	switch b {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "min", "minute", "minutes":
		return Minute, nil
	case "h", "hour", "hours":
		return Hour, nil
	case "d", "day", "days":
		return Day, nil
	case "mon", "month", "months":
		return Month, nil
	case "y", "year", "years":
		return Year, nil
	}
	return 0, fmt.Errorf("unknown interval base %q", s)
}

// Interval is the native step of a series: Multiplier units of Base.
// Month and Year steps follow the calendar and have irregular length.
type Interval struct {
	Base       Base
	Multiplier int
}

func NewInterval(base Base, multiplier int) Interval {
	if multiplier < 1 {
		multiplier = 1
	}
	return Interval{Base: base, Multiplier: multiplier}
}

func (i Interval) String() string {
	return fmt.Sprintf("%d %s", i.mul(), i.Base)
}

func (i Interval) mul() int {
	if i.Multiplier < 1 {
		return 1
	}
	return i.Multiplier
}

func (i Interval) calendar() bool {
	return i.Base == Month || i.Base == Year
}

// Duration returns the fixed length of one step. Calendar intervals return 0.
func (i Interval) Duration() time.Duration {
	m := time.Duration(i.mul())
	switch i.Base {
	case Second:
		return m * time.Second
	case Minute:
		return m * time.Minute
	case Hour:
		return m * time.Hour
	case Day:
		return m * 24 * time.Hour
	}
	return 0
}

// Add advances t by n steps.
func (i Interval) Add(t time.Time, n int) time.Time {
	switch i.Base {
	case Month:
		return t.AddDate(0, n*i.mul(), 0)
	case Year:
		return t.AddDate(n*i.mul(), 0, 0)
	}
	return t.Add(time.Duration(n) * i.Duration())
}

// Steps returns the number of whole steps from start to t, rounded toward
// negative infinity.
func (i Interval) Steps(start, t time.Time) int {
	if !i.calendar() {
		d := t.Sub(start)
		step := i.Duration()
		n := int(d / step)
		if d < 0 && d%step != 0 {
			n--
		}
		return n
	}
	months := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
	span := i.mul()
	if i.Base == Year {
		span *= 12
	}
	n := months / span
	// the month difference ignores day and clock, settle on the exact step
	for i.Add(start, n).After(t) {
		n--
	}
	for !i.Add(start, n+1).After(t) {
		n++
	}
	return n
}
