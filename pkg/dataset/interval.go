package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roffe/txgraph/pkg/timeseries"
	"github.com/xuri/excelize/v2"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999-0700",
	"2006-01-02 15:04:05.999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseTime accepts the common spreadsheet timestamp layouts and bare Excel
// serial dates.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t.Round(time.Millisecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, ErrTimeFormat)
}

// DetectInterval picks the native interval from the smallest gap between
// consecutive timestamps. Calendar months and years are recognised when the
// gap is 28 days or more and lands on the same day of month.
func DetectInterval(times []time.Time) (timeseries.Interval, error) {
	if len(times) == 0 {
		return timeseries.Interval{}, ErrNoData
	}
	if len(times) == 1 {
		return timeseries.NewInterval(timeseries.Day, 1), nil
	}
	var minGap time.Duration
	at := 0
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		if gap <= 0 {
			return timeseries.Interval{}, fmt.Errorf("%s: %w", times[i].Format(time.RFC3339), ErrIrregular)
		}
		if minGap == 0 || gap < minGap {
			minGap, at = gap, i
		}
	}

	if minGap >= 28*24*time.Hour {
		a, b := times[at-1], times[at]
		months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
		if months > 0 && a.AddDate(0, months, 0).Equal(b) {
			if months%12 == 0 {
				return timeseries.NewInterval(timeseries.Year, months/12), nil
			}
			return timeseries.NewInterval(timeseries.Month, months), nil
		}
	}

	units := []struct {
		base timeseries.Base
		d    time.Duration
	}{
		{timeseries.Day, 24 * time.Hour},
		{timeseries.Hour, time.Hour},
		{timeseries.Minute, time.Minute},
		{timeseries.Second, time.Second},
	}
	for _, u := range units {
		if minGap%u.d == 0 {
			return timeseries.NewInterval(u.base, int(minGap/u.d)), nil
		}
	}
	return timeseries.Interval{}, fmt.Errorf("gap %s: %w", minGap, ErrIrregular)
}
