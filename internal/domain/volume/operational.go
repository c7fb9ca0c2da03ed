// Package volume turns operating assumptions and use-case inputs into annual
// flight and fleet estimates. Every function is pure: non-finite values from
// unguarded divisions propagate to the caller unless a fallback is documented.
package volume

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// Operational derives the per-UAV operating profile from the shared assumptions.
func Operational(a entity.OperationalAssumptions) entity.OperationalProfile {
	// Divide last so whole-number inputs give an exact rate; estimators ceil against it.
	hours := a.HoursPerDay * a.DaysPerWeek * a.WeeksPerYear * a.TimeInFlightPct / 100
	return entity.OperationalProfile{
		OperationalHoursPerYear:    hours,
		FlightsPerYear:             hours / (a.AvgHoursPerFlight + a.AvgOverheadHoursPerFlight),
		CoveredLinearPathPerFlight: a.AvgVelocity * a.AvgHoursPerFlight,
		// km/h x m / 10 gives hectares per flight.
		CoveredAreaPerFlightHa: a.AvgVelocity * a.CoverageWidthPerPath / 10,
		MaxAnnualStructures:    a.MaxStructuresPerWeek * a.WeeksPerYear,
	}
}

// NewShared bundles the assumptions with their derived profile.
func NewShared(a entity.OperationalAssumptions) entity.Shared {
	return entity.Shared{Assumptions: a, Profile: Operational(a)}
}

// capacityBounds applies a lower/upper capacity percentage to a maximum.
func capacityBounds(max float64, c entity.CapacityRange) entity.BoundedEstimate {
	return entity.BoundedEstimate{Lower: max, Upper: max}.
		Scale(numeric.Percent(c.LowerPct), numeric.Percent(c.UpperPct))
}

// perUAVFleet divides flight bounds by an annual per-UAV rate, unguarded.
func perUAVFleet(flights entity.BoundedEstimate, perUAV float64) entity.BoundedEstimate {
	return entity.BoundedEstimate{Lower: flights.Lower / perUAV, Upper: flights.Upper / perUAV}
}

func result(u entity.UseCase, flights, uavs entity.BoundedEstimate, perUAV float64) entity.UseCaseResult {
	return entity.UseCaseResult{UseCase: u, Flights: flights, UAVs: uavs, FlightsPerUAV: perUAV}
}
