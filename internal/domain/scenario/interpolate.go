// Package scenario builds the stepped growth curves shown between the
// lower and upper size-class totals.
package scenario

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// Step is one fixed point on a curve, as a fraction of the bound range.
type Step struct {
	Label    string
	Fraction float64
}

// Steps are the interpolation points, lowest first.
var Steps = []Step{
	{Label: "Lower Bound", Fraction: 0},
	{Label: "+10%", Fraction: 0.10},
	{Label: "+20%", Fraction: 0.20},
	{Label: "+50%", Fraction: 0.50},
	{Label: "Upper Bound", Fraction: 1},
}

// Bounds returns the nice-rounded anchors of a curve: base rounded down
// and upperSource rounded up, per size class. Non-finite inputs read as 0.
func Bounds(base, upperSource entity.SizeBreakdown) (lower, upper entity.SizeBreakdown) {
	lower = entity.SizeBreakdown{
		Small:  numeric.RoundDownToNiceStep(base.Small),
		Medium: numeric.RoundDownToNiceStep(base.Medium),
		Large:  numeric.RoundDownToNiceStep(base.Large),
	}
	upper = entity.SizeBreakdown{
		Small:  numeric.RoundUpToNiceStep(upperSource.Small),
		Medium: numeric.RoundUpToNiceStep(upperSource.Medium),
		Large:  numeric.RoundUpToNiceStep(upperSource.Large),
	}
	return lower, upper
}

// Interpolate returns one point per Step. Size classes are rounded half up;
// the total is the rounded sum of the unrounded classes.
func Interpolate(base, upperSource entity.SizeBreakdown) []entity.ScenarioPoint {
	lower, upper := Bounds(base, upperSource)
	points := make([]entity.ScenarioPoint, 0, len(Steps))
	for _, s := range Steps {
		small := lower.Small + s.Fraction*(upper.Small-lower.Small)
		medium := lower.Medium + s.Fraction*(upper.Medium-lower.Medium)
		large := lower.Large + s.Fraction*(upper.Large-lower.Large)
		points = append(points, entity.ScenarioPoint{
			Label:  s.Label,
			Small:  numeric.Round(small),
			Medium: numeric.Round(medium),
			Large:  numeric.Round(large),
			Total:  numeric.Round(small + medium + large),
		})
	}
	return points
}
