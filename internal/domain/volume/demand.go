package volume

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// Recreational sizes hobby use from the share of the population owning a UAV.
func Recreational(in entity.RecreationalInput, s entity.Shared) entity.RecreationalResult {
	population := entity.Or(in.Population, s.Assumptions.Population)
	uavs := entity.BoundedEstimate{
		Lower: population * numeric.Percent(in.UAVPercentLower),
		Upper: population * numeric.Percent(in.UAVPercentUpper),
	}
	perUAV := in.AvgFlightsPerMonth * 12
	flights := uavs.Scale(perUAV, perUAV)
	return entity.RecreationalResult{
		UseCaseResult: result(entity.UseCaseRecreational, flights, uavs, perUAV),
	}
}

// Delivery sizes parcel delivery from the manufactured-goods freight a UAV can carry.
func Delivery(in entity.DeliveryInput, s entity.Shared) entity.DeliveryResult {
	tonnesMax := in.AnnualTonnes * numeric.Percent(in.ManufacturedGoodsPct) * numeric.Percent(in.UAVPotentialPct)
	flightsMax := tonnesMax * 1000 / in.AvgKgPerDelivery
	perUAV := in.AvgFlightsPerDay * s.Assumptions.DaysPerWeek * s.Assumptions.WeeksPerYear

	flights := capacityBounds(flightsMax, in.Capacity)
	uavs := perUAVFleet(flights, perUAV)
	return entity.DeliveryResult{
		UseCaseResult:       result(entity.UseCaseDelivery, flights, uavs, perUAV),
		AnnualUAVTonnesMax:  tonnesMax,
		AnnualUAVFlightsMax: flightsMax,
	}
}

// UrbanAirMobility sizes air-taxi use from the mode share of vehicle trips.
func UrbanAirMobility(in entity.MobilityInput, _ entity.Shared) entity.MobilityResult {
	share := entity.BoundedEstimate{
		Lower: in.TotalAnnualVehicleTrips * numeric.Percent(in.VehicleSharePctLower),
		Upper: in.TotalAnnualVehicleTrips * numeric.Percent(in.VehicleSharePctUpper),
	}
	flights := share.Scale(numeric.Percent(in.Capacity.LowerPct), numeric.Percent(in.Capacity.UpperPct))
	uavs := perUAVFleet(flights, in.AvgFlightsPerYear)
	return entity.MobilityResult{
		UseCaseResult: result(entity.UseCaseUrbanAir, flights, uavs, in.AvgFlightsPerYear),
		VehicleShare:  share,
	}
}
