package interpolate

import (
	"math"
	"time"
)

// Linear returns the value on the line through (x0, y0) and (x1, y1) at x.
func Linear(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	frac := (x - x0) / (x1 - x0)
	return (1.0-frac)*y0 + frac*y1
}

// Time interpolates between two timestamped values. elapsed is measured from t0.
func Time(t0 time.Time, v0 float64, t1 time.Time, v1 float64, elapsed time.Duration) float64 {
	span := t1.Sub(t0)
	if span == 0 {
		return v0
	}
	return Linear(0, v0, float64(span), v1, float64(elapsed))
}

// Fraction returns where x sits between lo and hi, clamped to [0, 1].
func Fraction(lo, hi, x float64) float64 {
	if hi == lo {
		return 0
	}
	return math.Max(0, math.Min(1, (x-lo)/(hi-lo)))
}

// Lerp is the inverse of Fraction without clamping.
func Lerp(lo, hi, frac float64) float64 {
	return lo + (hi-lo)*frac
}
