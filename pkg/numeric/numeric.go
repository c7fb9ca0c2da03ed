// Package numeric holds the small float helpers shared by every estimator:
// guarded division, percentage handling and the spreadsheet "nice step"
// rounding used for chart bounds.
package numeric

import "math"

// SafeDivide returns n/d, or 0 when d is zero or not finite.
func SafeDivide(n, d float64) float64 {
	return SafeDivideOr(n, d, 0)
}

// SafeDivideOr returns n/d, or fallback when d is zero, NaN or infinite.
func SafeDivideOr(n, d, fallback float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fallback
	}
	return n / d
}

// CeilDiv returns ceil(a/b), or 0 when b is zero.
func CeilDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return math.Ceil(a / b)
}

// Percent converts a 0-100 percentage into a fraction.
func Percent(pct float64) float64 {
	return pct / 100
}

// Share returns value as a percentage of total. A zero total yields NaN or
// Inf, which callers leave for the presentation layer to render.
func Share(value, total float64) float64 {
	return value / total * 100
}

// Finite maps NaN and ±Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds half up (toward +Inf), the way the reference spreadsheet
// and its web port round. NaN and ±Inf are returned unchanged.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Mean returns the arithmetic mean of values, NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// RoundDownToNiceStep floors value to a multiple of a quarter power of ten.
// The magnitude is taken from log10(value*4), one step coarser than the
// round-up variant; both directions must stay asymmetric to reproduce the
// reference chart bounds.
func RoundDownToNiceStep(value float64) float64 {
	value = Finite(value)
	if value <= 0 {
		return 0
	}
	power := math.Floor(math.Log10(value * 4))
	magnitude := math.Pow(10, power) / 4
	return math.Floor(value/magnitude) * magnitude
}

// RoundUpToNiceStep ceils value to a multiple of a quarter power of ten.
func RoundUpToNiceStep(value float64) float64 {
	value = Finite(value)
	if value <= 0 {
		return 0
	}
	power := math.Floor(math.Log10(value))
	magnitude := math.Pow(10, power) / 4
	return math.Ceil(value/magnitude) * magnitude
}
