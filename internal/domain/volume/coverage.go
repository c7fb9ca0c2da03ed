package volume

import (
	"math"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// Agriculture sizes area coverage of farmland, cropland and forests.
// A land type whose location count is not positive contributes no flights.
func Agriculture(in entity.AgricultureInput, s entity.Shared) entity.AgricultureResult {
	areaPerFlight := entity.Or(in.CoveredAreaPerFlightHa, s.Profile.CoveredAreaPerFlightHa)
	maxFlights := entity.Or(in.MaxFlightsPerUAVPerYear, s.Profile.FlightsPerYear)

	res := entity.AgricultureResult{LandTypes: make([]entity.LandTypeResult, 0, len(in.LandTypes))}
	for _, lt := range in.LandTypes {
		row := entity.LandTypeResult{
			Name:                lt.Name,
			Locations:           math.Max(lt.Locations, lt.Hectares/in.MaxAnnualAreaPerUAV),
			HectaresPerLocation: in.MaxAnnualAreaPerUAV,
		}
		if row.Locations > 0 {
			row.HectaresPerLocation = lt.Hectares / row.Locations
			row.FlightsPerLocation = math.Ceil(row.HectaresPerLocation/areaPerFlight) * lt.CoveragePerYear
		}
		row.UAVsPerLocation = math.Ceil(row.FlightsPerLocation / maxFlights)

		res.TotalFlights += row.FlightsPerLocation * row.Locations
		res.TotalUAVs += row.UAVsPerLocation * row.Locations
		res.LandTypes = append(res.LandTypes, row)
	}

	perUAV := res.TotalFlights / res.TotalUAVs
	flights := capacityBounds(res.TotalFlights, in.Capacity)
	res.UseCaseResult = result(entity.UseCaseAgriculture, flights, perUAVFleet(flights, perUAV), perUAV)
	return res
}

// LinearInspection sizes inspection of linear assets. Each asset gets at
// least one location, and each location its own whole number of UAVs.
func LinearInspection(in entity.LinearInput, s entity.Shared) entity.InspectionResult {
	maxPath := entity.Or(in.MaxLinearPathPerUAV, s.Assumptions.MaxKmPerUAV)
	pathPerFlight := entity.Or(in.CoveredLinearPathPerFlight, s.Profile.CoveredLinearPathPerFlight)
	maxFlights := entity.Or(in.MaxFlightsPerUAVPerYear, s.Profile.FlightsPerYear)

	res := entity.InspectionResult{Assets: make([]entity.AssetResult, 0, len(in.Assets))}
	for _, a := range in.Assets {
		locations := math.Ceil(a.LengthKm / maxPath)
		if locations == 0 || math.IsNaN(locations) {
			locations = 1
		}
		row := entity.AssetResult{
			Name:             a.Name,
			Locations:        locations,
			UnitsPerLocation: a.LengthKm / locations,
		}
		row.FlightsPerLocation = math.Ceil(row.UnitsPerLocation/pathPerFlight) * a.CoverageTimesPerYear
		row.UAVsPerLocation = math.Ceil(row.FlightsPerLocation / maxFlights)
		row.TotalFlights = row.FlightsPerLocation * row.Locations
		row.TotalUAVs = row.UAVsPerLocation * row.Locations

		res.TotalFlights += row.TotalFlights
		res.TotalUAVs += row.TotalUAVs
		res.Assets = append(res.Assets, row)
	}

	perUAV := res.TotalFlights / res.TotalUAVs
	res.UseCaseResult = result(entity.UseCaseLinear,
		capacityBounds(res.TotalFlights, in.Capacity),
		capacityBounds(res.TotalUAVs, in.Capacity),
		perUAV)
	return res
}

// StructureInspection sizes inspection of discrete structures. Every
// location is served by at least one UAV.
func StructureInspection(in entity.StructureInput, s entity.Shared) entity.InspectionResult {
	maxStructures := entity.Or(in.MaxStructuresPerUAV, s.Profile.MaxAnnualStructures)
	maxFlights := entity.Or(in.MaxFlightsPerUAVPerYear, s.Profile.FlightsPerYear)

	res := entity.InspectionResult{Assets: make([]entity.AssetResult, 0, len(in.Assets))}
	for _, a := range in.Assets {
		row := entity.AssetResult{
			Name:      a.Name,
			Locations: math.Ceil(a.Structures / maxStructures),
		}
		if row.Locations > 0 {
			row.UnitsPerLocation = a.Structures / row.Locations
		}
		row.FlightsPerLocation = math.Ceil(row.UnitsPerLocation/in.StructuresPerFlight) * a.CoverageTimesPerYear
		row.UAVsPerLocation = math.Max(math.Ceil(row.FlightsPerLocation/maxFlights), 1)
		row.TotalFlights = row.FlightsPerLocation * row.Locations
		row.TotalUAVs = row.UAVsPerLocation * row.Locations

		res.TotalFlights += row.TotalFlights
		res.TotalUAVs += row.TotalUAVs
		res.Assets = append(res.Assets, row)
	}

	var perUAV float64
	if res.TotalUAVs > 0 {
		perUAV = res.TotalFlights / res.TotalUAVs
	}
	flights := capacityBounds(res.TotalFlights, in.Capacity)
	var uavs entity.BoundedEstimate
	if perUAV > 0 {
		uavs = perUAVFleet(flights, perUAV)
	}
	res.UseCaseResult = result(entity.UseCaseStructure, flights, uavs, perUAV)
	return res
}

// EmergencyResponse sizes event-driven coverage. Flights scale with the
// number of annual events; the fleet is sized for the share of events a
// single fleet can serve.
func EmergencyResponse(in entity.EmergencyInput, s entity.Shared) entity.EmergencyResult {
	areaPerFlight := entity.Or(in.CoveredAreaPerFlight, s.Assumptions.DailyAreaPerFlight)
	servedPct := entity.Or(in.AvgEventServedPct, s.Assumptions.AvgEventServedPct)

	res := entity.EmergencyResult{
		Purposes:          make([]entity.PurposeResult, 0, len(in.Coverage)),
		AvgEventServedPct: servedPct,
	}
	for _, c := range in.Coverage {
		row := entity.PurposeResult{
			Name:             c.Name,
			TotalCoveragePct: c.Percent * c.TimesPerEvent,
			DailyAreaPerUAV:  c.DailyFlights * areaPerFlight,
			AvgAreaPerFlight: numeric.SafeDivide(c.DailyArea, c.DailyFlights),
		}
		if row.AvgAreaPerFlight == 0 || math.IsNaN(row.AvgAreaPerFlight) {
			row.AvgAreaPerFlight = areaPerFlight
			row.UsedFallbackCoverage = true
		}
		row.TotalCoverageArea = row.TotalCoveragePct * in.ImpactedArea
		row.TotalFlights = row.TotalCoverageArea / row.AvgAreaPerFlight
		row.TotalUAVs = math.Ceil(row.TotalFlights / (c.DailyFlights * c.DaysToFull))

		res.EventFlights += row.TotalFlights
		res.EventUAVs += row.TotalUAVs
		res.Purposes = append(res.Purposes, row)
	}

	res.TotalFlightsMax = res.EventFlights * in.AnnualEvents
	res.TotalUAVsMax = res.EventUAVs / numeric.Percent(servedPct)
	res.UseCaseResult = result(entity.UseCaseEmergency,
		capacityBounds(res.TotalFlightsMax, in.Capacity),
		capacityBounds(res.TotalUAVsMax, in.Capacity),
		res.TotalFlightsMax/res.TotalUAVsMax)
	return res
}
