package volume

import (
	"math"
	"testing"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

const tolerance = 1e-6

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance*math.Max(1, math.Abs(want)) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func defaultShared() entity.Shared {
	return NewShared(entity.DefaultScenario().Operational)
}

func TestOperational(t *testing.T) {
	a := entity.OperationalAssumptions{
		HoursPerDay:               6,
		DaysPerWeek:               5,
		WeeksPerYear:              48,
		TimeInFlightPct:           70,
		AvgHoursPerFlight:         1,
		AvgOverheadHoursPerFlight: 0.5,
		AvgVelocity:               20,
		CoverageWidthPerPath:      100,
		MaxStructuresPerWeek:      7,
	}
	p := Operational(a)
	approx(t, "OperationalHoursPerYear", p.OperationalHoursPerYear, 1008)
	approx(t, "FlightsPerYear", p.FlightsPerYear, 672)
	approx(t, "CoveredLinearPathPerFlight", p.CoveredLinearPathPerFlight, 20)
	approx(t, "CoveredAreaPerFlightHa", p.CoveredAreaPerFlightHa, 200)
	approx(t, "MaxAnnualStructures", p.MaxAnnualStructures, 336)
}

func TestOperationalDefaultRateIsExact(t *testing.T) {
	p := defaultShared().Profile
	if p.OperationalHoursPerYear != 1008 {
		t.Errorf("OperationalHoursPerYear = %v, want exactly 1008", p.OperationalHoursPerYear)
	}
	if p.FlightsPerYear != 672 {
		t.Errorf("FlightsPerYear = %v, want exactly 672", p.FlightsPerYear)
	}
	// 1344 flights per location fit exactly two UAVs.
	if got := math.Ceil(1344 / p.FlightsPerYear); got != 2 {
		t.Errorf("ceil(1344/FlightsPerYear) = %v, want 2", got)
	}
}

func TestOperationalZeroFlightTime(t *testing.T) {
	p := Operational(entity.OperationalAssumptions{HoursPerDay: 6, DaysPerWeek: 5, WeeksPerYear: 48, TimeInFlightPct: 70})
	if !math.IsInf(p.FlightsPerYear, 1) {
		t.Errorf("FlightsPerYear = %v, want +Inf", p.FlightsPerYear)
	}
}

func TestRecreational(t *testing.T) {
	in := entity.RecreationalInput{
		Population:         entity.Float(6500000),
		UAVPercentLower:    0.588,
		UAVPercentUpper:    1.331,
		AvgFlightsPerMonth: 2,
	}
	r := Recreational(in, entity.Shared{})
	approx(t, "uavs lower", r.UAVs.Lower, 38220)
	approx(t, "uavs upper", r.UAVs.Upper, 86515)
	approx(t, "flights lower", r.Flights.Lower, 917280)
	approx(t, "flights upper", r.Flights.Upper, 2076360)
	approx(t, "flights per uav", r.FlightsPerUAV, 24)
}

func TestRecreationalInheritsPopulation(t *testing.T) {
	s := defaultShared()
	s.Assumptions.Population = 1000
	r := Recreational(entity.RecreationalInput{UAVPercentLower: 10, UAVPercentUpper: 20, AvgFlightsPerMonth: 1}, s)
	approx(t, "uavs lower", r.UAVs.Lower, 100)
	approx(t, "uavs upper", r.UAVs.Upper, 200)

	r = Recreational(entity.RecreationalInput{Population: entity.Float(0), UAVPercentLower: 10}, s)
	if r.UAVs.Lower != 0 {
		t.Errorf("explicit zero population should override shared value, got %v", r.UAVs.Lower)
	}
}

func TestDelivery(t *testing.T) {
	r := Delivery(entity.DefaultScenario().Delivery, defaultShared())
	approx(t, "flights max", r.AnnualUAVFlightsMax, 476280000)
	approx(t, "flights lower", r.Flights.Lower, 9525600)
	approx(t, "flights upper", r.Flights.Upper, 23814000)
	approx(t, "flights per uav", r.FlightsPerUAV, 240)
	approx(t, "uavs lower", r.UAVs.Lower, 39690)
	approx(t, "uavs upper", r.UAVs.Upper, 99225)
}

func TestDeliveryZeroPayload(t *testing.T) {
	in := entity.DefaultScenario().Delivery
	in.AvgKgPerDelivery = 0
	r := Delivery(in, defaultShared())
	if !math.IsInf(r.Flights.Lower, 1) {
		t.Errorf("zero payload should propagate +Inf, got %v", r.Flights.Lower)
	}
}

func TestUrbanAirMobility(t *testing.T) {
	r := UrbanAirMobility(entity.DefaultScenario().UrbanAir, defaultShared())
	approx(t, "flights lower", r.Flights.Lower, 23.4e6)
	approx(t, "flights upper", r.Flights.Upper, 253.5e6)
	approx(t, "uavs lower", r.UAVs.Lower, 3900)
	approx(t, "uavs upper", r.UAVs.Upper, 42250)
	approx(t, "flights per uav", r.FlightsPerUAV, 6000)
}

func TestAgriculture(t *testing.T) {
	r := Agriculture(entity.DefaultScenario().Agriculture, defaultShared())
	approx(t, "total flights", r.TotalFlights, 112)
	approx(t, "total uavs", r.TotalUAVs, 10.064)
	approx(t, "flights lower", r.Flights.Lower, 5.6)
	approx(t, "flights upper", r.Flights.Upper, 56)
	approx(t, "flights per uav", r.FlightsPerUAV, 112/10.064)
	approx(t, "uavs upper", r.UAVs.Upper, 56/(112/10.064))

	if len(r.LandTypes) != 3 {
		t.Fatalf("got %d land types, want 3", len(r.LandTypes))
	}
	forest := r.LandTypes[2]
	approx(t, "forest locations", forest.Locations, 0.008)
	approx(t, "forest flights per location", forest.FlightsPerLocation, 5000)
	approx(t, "forest uavs per location", forest.UAVsPerLocation, 8)
}

func TestAgricultureEmptyLandType(t *testing.T) {
	in := entity.AgricultureInput{
		LandTypes:           []entity.LandType{{Name: "Empty", CoveragePerYear: 4}},
		MaxAnnualAreaPerUAV: 250000,
	}
	r := Agriculture(in, defaultShared())
	if r.LandTypes[0].FlightsPerLocation != 0 {
		t.Errorf("empty land type flights = %v, want 0", r.LandTypes[0].FlightsPerLocation)
	}
	if !math.IsNaN(r.FlightsPerUAV) {
		t.Errorf("zero fleet should yield NaN flights per UAV, got %v", r.FlightsPerUAV)
	}
}

func TestLinearInspection(t *testing.T) {
	r := LinearInspection(entity.DefaultScenario().Linear, defaultShared())
	approx(t, "total flights", r.TotalFlights, 665)
	approx(t, "total uavs", r.TotalUAVs, 8)
	approx(t, "flights lower", r.Flights.Lower, 33.25)
	approx(t, "flights upper", r.Flights.Upper, 332.5)
	approx(t, "uavs lower", r.UAVs.Lower, 0.4)
	approx(t, "uavs upper", r.UAVs.Upper, 4)
	approx(t, "flights per uav", r.FlightsPerUAV, 83.125)

	roads := r.Assets[1]
	approx(t, "local roads locations", roads.Locations, 2)
	approx(t, "local roads km per location", roads.UnitsPerLocation, 200)
	approx(t, "local roads flights per location", roads.FlightsPerLocation, 10)
}

func TestLinearInspectionFleetCeiling(t *testing.T) {
	in := entity.LinearInput{
		Assets:                  []entity.LinearAsset{{Name: "Busy", LengthKm: 20, CoverageTimesPerYear: 1000}},
		MaxFlightsPerUAVPerYear: entity.Float(672),
	}
	r := LinearInspection(in, defaultShared())
	// 1000 flights per location need two UAVs.
	approx(t, "uavs per location", r.Assets[0].UAVsPerLocation, 2)
}

func TestLinearInspectionZeroLengthKeepsOneLocation(t *testing.T) {
	in := entity.LinearInput{Assets: []entity.LinearAsset{{Name: "None", LengthKm: 0, CoverageTimesPerYear: 4}}}
	r := LinearInspection(in, defaultShared())
	approx(t, "locations", r.Assets[0].Locations, 1)
	approx(t, "flights", r.TotalFlights, 0)
}

func TestStructureInspection(t *testing.T) {
	r := StructureInspection(entity.DefaultScenario().Structure, defaultShared())
	approx(t, "total flights", r.TotalFlights, 415256)
	approx(t, "total uavs", r.TotalUAVs, 634)
	approx(t, "flights lower", r.Flights.Lower, 20762.8)
	approx(t, "flights upper", r.Flights.Upper, 207628)
	approx(t, "flights per uav", r.FlightsPerUAV, 415256.0/634)

	bridges := r.Assets[0]
	approx(t, "bridge locations", bridges.Locations, 14)
	approx(t, "bridge flights per location", bridges.FlightsPerLocation, 1252)
	approx(t, "bridge uavs per location", bridges.UAVsPerLocation, 2)
}

func TestStructureInspectionNoStructures(t *testing.T) {
	in := entity.StructureInput{
		Assets:              []entity.StructureAsset{{Name: "None", CoverageTimesPerYear: 4}},
		StructuresPerFlight: 1,
	}
	r := StructureInspection(in, defaultShared())
	if r.FlightsPerUAV != 0 || r.UAVs.Lower != 0 || r.UAVs.Upper != 0 {
		t.Errorf("empty structure model should be guarded to zero, got %+v", r.UseCaseResult)
	}
}

func TestEmergencyResponse(t *testing.T) {
	r := EmergencyResponse(entity.DefaultScenario().Emergency, defaultShared())

	want := []struct {
		flights, uavs float64
		fallback      bool
	}{
		{8000, 250, false},
		{3200, 100, false},
		{20000, 358, true},
		{5000, 60, true},
	}
	for i, w := range want {
		p := r.Purposes[i]
		approx(t, p.Name+" flights", p.TotalFlights, w.flights)
		approx(t, p.Name+" uavs", p.TotalUAVs, w.uavs)
		if p.UsedFallbackCoverage != w.fallback {
			t.Errorf("%s fallback = %v, want %v", p.Name, p.UsedFallbackCoverage, w.fallback)
		}
	}
	approx(t, "gov daily area per uav", r.Purposes[2].DailyAreaPerUAV, 16)

	approx(t, "event flights", r.EventFlights, 36200)
	approx(t, "event uavs", r.EventUAVs, 768)
	approx(t, "flights max", r.TotalFlightsMax, 362000)
	approx(t, "uavs max", r.TotalUAVsMax, 1536)
	approx(t, "flights lower", r.Flights.Lower, 18100)
	approx(t, "flights upper", r.Flights.Upper, 181000)
	approx(t, "uavs lower", r.UAVs.Lower, 76.8)
	approx(t, "uavs upper", r.UAVs.Upper, 768)
	approx(t, "flights per uav", r.FlightsPerUAV, 362000.0/1536)
}

func TestEmergencyZeroDailyFlightsFallsBack(t *testing.T) {
	in := entity.EmergencyInput{
		ImpactedArea: 100,
		AnnualEvents: 1,
		Coverage:     []entity.CoveragePurpose{{Name: "Idle", Percent: 1, TimesPerEvent: 1, DailyArea: 5, DaysToFull: 1}},
	}
	r := EmergencyResponse(in, defaultShared())
	p := r.Purposes[0]
	if !p.UsedFallbackCoverage {
		t.Error("expected fallback coverage when daily flights is zero")
	}
	approx(t, "avg area per flight", p.AvgAreaPerFlight, 2)
	approx(t, "flights", p.TotalFlights, 50)
	if !math.IsInf(p.TotalUAVs, 1) {
		t.Errorf("fleet with zero daily flights should be +Inf, got %v", p.TotalUAVs)
	}
}
