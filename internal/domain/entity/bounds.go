package entity

import (
	"fmt"
	"strings"
)

// Bound selects which side of a bounded estimate is displayed.
type Bound string

const (
	BoundLow  Bound = "low"
	BoundHigh Bound = "high"
)

// ParseBound accepts low/lower and high/upper, case-insensitively.
func ParseBound(s string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "low", "lower":
		return BoundLow, nil
	case "high", "upper":
		return BoundHigh, nil
	}
	return "", fmt.Errorf("invalid bound %q: expected low or high", s)
}

// Label is the human-readable name used in tables and reports.
func (b Bound) Label() string {
	if b == BoundHigh {
		return "Upper Bound"
	}
	return "Lower Bound"
}

// BoundedEstimate is a conservative/optimistic pair for one quantity.
// Lower <= Upper is expected but not enforced.
type BoundedEstimate struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Select returns the side picked by b without recomputing anything.
func (e BoundedEstimate) Select(b Bound) float64 {
	if b == BoundHigh {
		return e.Upper
	}
	return e.Lower
}

// Add sums two estimates side by side.
func (e BoundedEstimate) Add(o BoundedEstimate) BoundedEstimate {
	return BoundedEstimate{Lower: e.Lower + o.Lower, Upper: e.Upper + o.Upper}
}

// Scale multiplies both sides by the given lower and upper factors.
func (e BoundedEstimate) Scale(lower, upper float64) BoundedEstimate {
	return BoundedEstimate{Lower: e.Lower * lower, Upper: e.Upper * upper}
}
