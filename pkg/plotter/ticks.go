package plotter

import (
	"math"
	"strconv"
	"time"
)

// ValueTicks returns about n evenly spaced round values inside [lo, hi].
func ValueTicks(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) || math.IsInf(hi-lo, 0) {
		return nil
	}
	step := niceStep((hi - lo) / float64(n))
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		// avoid printing -0 and accumulated float noise
		out = append(out, math.Round(v/step)*step+0)
	}
	return out
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	}
	return 10 * base
}

var timeSteps = []time.Duration{
	time.Second, 5 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 2 * 24 * time.Hour, 7 * 24 * time.Hour, 14 * 24 * time.Hour,
}

// TimeTicks returns about n tick times inside [start, end], aligned to whole
// seconds, minutes, hours, days, months or years depending on the span.
func TimeTicks(start, end time.Time, n int) []time.Time {
	if n < 1 || !end.After(start) {
		return nil
	}
	raw := end.Sub(start) / time.Duration(n)
	for _, step := range timeSteps {
		if step >= raw {
			var out []time.Time
			for t := start.Truncate(step); !t.After(end); t = t.Add(step) {
				if !t.Before(start) {
					out = append(out, t)
				}
			}
			return out
		}
	}
	months := int(raw/(30*24*time.Hour)) + 1
	for _, m := range []int{1, 2, 3, 6, 12, 24, 60, 120} {
		if m >= months {
			months = m
			break
		}
	}
	t := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	if months >= 12 {
		t = time.Date(start.Year(), 1, 1, 0, 0, 0, 0, start.Location())
	}
	var out []time.Time
	for ; !t.After(end); t = t.AddDate(0, months, 0) {
		if !t.Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// FormatTime picks a label layout that fits the visible span.
func FormatTime(t time.Time, span time.Duration) string {
	switch {
	case span <= 2*time.Minute:
		return t.Format("15:04:05")
	case span <= 2*24*time.Hour:
		return t.Format("01-02 15:04")
	case span <= 400*24*time.Hour:
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01")
}

func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
