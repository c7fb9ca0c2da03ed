// Package rollup combines the per-use-case estimates into summary tables:
// the cross-category rollup with its derived Other row, and the split of
// flights and fleet across vehicle size classes.
package rollup

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// OtherShare returns the Other volume for a named-category sum, sized so
// that it is otherFraction of the grand total: other = f*sum/(1-f).
func OtherShare(sum, otherFraction float64) float64 {
	return otherFraction * sum / (1 - otherFraction)
}

// Aggregate builds the summary table from the estimator outputs.
// Shares are computed independently for each bound.
func Aggregate(results []entity.UseCaseResult, otherFraction float64) entity.Rollup {
	var sum, uavs entity.BoundedEstimate
	rates := make([]float64, 0, len(results))
	for _, r := range results {
		sum = sum.Add(r.Flights)
		uavs = uavs.Add(r.UAVs)
		rates = append(rates, r.FlightsPerUAV)
	}

	otherRate := numeric.Round(numeric.Mean(rates))
	other := entity.BoundedEstimate{
		Lower: OtherShare(sum.Lower, otherFraction),
		Upper: OtherShare(sum.Upper, otherFraction),
	}
	total := sum.Add(other)
	otherUAVs := entity.BoundedEstimate{Lower: other.Lower / otherRate, Upper: other.Upper / otherRate}

	out := entity.Rollup{Categories: make([]entity.CategoryRollup, 0, len(results))}
	for _, r := range results {
		out.Categories = append(out.Categories, row(r.UseCase.Title(), r.Flights, total, r.FlightsPerUAV, r.UAVs))
	}
	out.Other = row(entity.OtherRowName, other, total, otherRate, otherUAVs)

	totalUAVs := uavs.Add(otherUAVs)
	out.Total = entity.CategoryRollup{
		Name:         entity.TotalRowName,
		LowerFlights: total.Lower,
		LowerPct:     100,
		UpperFlights: total.Upper,
		UpperPct:     100,
		LowerUAVs:    totalUAVs.Lower,
		UpperUAVs:    totalUAVs.Upper,
	}
	return out
}

func row(name string, flights, total entity.BoundedEstimate, rate float64, uavs entity.BoundedEstimate) entity.CategoryRollup {
	return entity.CategoryRollup{
		Name:          name,
		LowerFlights:  flights.Lower,
		LowerPct:      numeric.Share(flights.Lower, total.Lower),
		UpperFlights:  flights.Upper,
		UpperPct:      numeric.Share(flights.Upper, total.Upper),
		FlightsPerUAV: rate,
		LowerUAVs:     uavs.Lower,
		UpperUAVs:     uavs.Upper,
	}
}
