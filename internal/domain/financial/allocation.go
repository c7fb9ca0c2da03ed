// Package financial converts flight and fleet volumes into flight-fee and
// permit revenue, its split between corridor owners, protocol and city, and
// the resulting economic impact.
package financial

import (
	"math"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// VolumesFromEstimates maps estimator outputs onto revenue streams.
// Inspection combines agriculture, linear, structure and emergency volumes.
func VolumesFromEstimates(e entity.Estimates) entity.StreamVolumes {
	inspection := entity.StreamVolume{}
	for _, r := range []entity.UseCaseResult{
		e.Agriculture.UseCaseResult,
		e.Linear.UseCaseResult,
		e.Structure.UseCaseResult,
		e.Emergency.UseCaseResult,
	} {
		inspection.Flights = inspection.Flights.Add(r.Flights)
		inspection.UAVs = inspection.UAVs.Add(r.UAVs)
	}
	return entity.StreamVolumes{
		Delivery:     entity.StreamVolume{Flights: e.Delivery.Flights, UAVs: e.Delivery.UAVs},
		UAM:          entity.StreamVolume{Flights: e.UrbanAir.Flights, UAVs: e.UrbanAir.UAVs},
		Inspection:   inspection,
		Recreational: entity.StreamVolume{Flights: e.Recreational.Flights},
	}
}

// Allocate computes both bounds. The active one is chosen afterwards with
// FinancialResult.Select.
func Allocate(in entity.FinancialInputs, v entity.StreamVolumes) entity.FinancialResult {
	return entity.FinancialResult{
		Low:  breakdown(in, v, entity.BoundLow),
		High: breakdown(in, v, entity.BoundHigh),
	}
}

func breakdown(in entity.FinancialInputs, v entity.StreamVolumes, b entity.Bound) entity.FinancialBreakdown {
	var out entity.FinancialBreakdown

	out.RevenueDelivery = volume(v.Delivery.Flights, b) * in.PriceDelivery
	out.RevenueUAM = volume(v.UAM.Flights, b) * in.PriceUAM
	out.RevenueInspection = volume(v.Inspection.Flights, b) * in.PriceInspection
	out.RevenueRec = volume(v.Recreational.Flights, b) * in.PriceRec
	out.TotalFlightFees = out.RevenueDelivery + out.RevenueUAM + out.RevenueInspection + out.RevenueRec

	out.SmallUAVCount = volume(v.Delivery.UAVs, b) + volume(v.Inspection.UAVs, b)
	out.TotalPermitRevenue = out.SmallUAVCount*in.FeePermitDrone + volume(v.UAM.UAVs, b)*in.FeePermitUAM

	city := numeric.Percent(in.SplitCity)
	out.ProtocolShare = out.TotalFlightFees * numeric.Percent(in.SplitProtocol)
	out.OwnerShare = out.TotalFlightFees * numeric.Percent(in.SplitOwners)
	out.CityShare = out.OwnerShare * city
	out.PrivateShare = out.OwnerShare * (1 - city)
	out.TotalCityRevenue = out.CityShare + out.TotalPermitRevenue

	out.GrandTotal = out.TotalFlightFees + out.TotalPermitRevenue
	out.GrossEconomicImpact = out.GrandTotal * in.EconMultiplier
	out.Jobs = numeric.Round(out.GrossEconomicImpact / in.AvgSalary)
	return out
}

// volume reads one side of a stream bound. A NaN volume counts as no volume,
// like an empty input field; infinities are kept.
func volume(e entity.BoundedEstimate, b entity.Bound) float64 {
	v := e.Select(b)
	if math.IsNaN(v) {
		return 0
	}
	return v
}
