package entity

import "time"

const (
	// DefaultOtherFraction is the share of the grand total attributed to uncategorised use.
	DefaultOtherFraction = 0.001
	// DefaultOtherFlightsPerUAV is the annual flight rate used to size the Other fleet.
	DefaultOtherFlightsPerUAV = 1036
)

// Scenario is the complete input snapshot of one calculation pass.
type Scenario struct {
	Operational  OperationalAssumptions `json:"operational" yaml:"operational" toml:"operational"`
	Recreational RecreationalInput      `json:"recreational" yaml:"recreational" toml:"recreational"`
	Delivery     DeliveryInput          `json:"delivery" yaml:"delivery" toml:"delivery"`
	UrbanAir     MobilityInput          `json:"urban_air_mobility" yaml:"urban_air_mobility" toml:"urban_air_mobility"`
	Agriculture  AgricultureInput       `json:"agriculture" yaml:"agriculture" toml:"agriculture"`
	Linear       LinearInput            `json:"linear_inspection" yaml:"linear_inspection" toml:"linear_inspection"`
	Structure    StructureInput         `json:"structure_inspection" yaml:"structure_inspection" toml:"structure_inspection"`
	Emergency    EmergencyInput         `json:"emergency_response" yaml:"emergency_response" toml:"emergency_response"`

	VehicleMix         VehicleMixes    `json:"vehicle_mix" yaml:"vehicle_mix" toml:"vehicle_mix"`
	OtherFraction      float64         `json:"other_fraction" yaml:"other_fraction" toml:"other_fraction"`
	OtherFlightsPerUAV float64         `json:"other_flights_per_uav" yaml:"other_flights_per_uav" toml:"other_flights_per_uav"`
	Financial          FinancialInputs `json:"financial" yaml:"financial" toml:"financial"`
}

// DefaultScenario returns the reference 2049 scenario.
func DefaultScenario() Scenario {
	return Scenario{
		Operational: OperationalAssumptions{
			Year:                      2049,
			Population:                6500000,
			HoursPerDay:               6,
			DaysPerWeek:               5,
			WeeksPerYear:              48,
			TimeInFlightPct:           70,
			AvgHoursPerFlight:         1,
			AvgOverheadHoursPerFlight: 0.5,
			AvgVelocity:               20,
			CoverageWidthPerPath:      100,
			MaxStructuresPerWeek:      7,
			MaxKmPerUAV:               250,
			DailyAreaPerFlight:        2,
			AvgEventServedPct:         50,
		},
		Recreational: RecreationalInput{
			UAVPercentLower:    0.588,
			UAVPercentUpper:    1.331,
			AvgFlightsPerMonth: 2,
		},
		Delivery: DeliveryInput{
			AnnualTonnes:         7938000,
			ManufacturedGoodsPct: 30,
			UAVPotentialPct:      20,
			AvgKgPerDelivery:     1,
			AvgFlightsPerDay:     1,
			Capacity:             CapacityRange{LowerPct: 2, UpperPct: 5},
		},
		UrbanAir: MobilityInput{
			TotalAnnualVehicleTrips: 7.8e9,
			VehicleSharePctLower:    15,
			VehicleSharePctUpper:    65,
			AvgFlightsPerYear:       6000,
			Capacity:                CapacityRange{LowerPct: 2, UpperPct: 5},
		},
		Agriculture: AgricultureInput{
			LandTypes: []LandType{
				{Name: "Agriculture Land", Hectares: 2000, Locations: 8, CoveragePerYear: 4},
				{Name: "Cropland", Hectares: 80, Locations: 2, CoveragePerYear: 4},
				{Name: "Forests/Parks", Hectares: 2000, Locations: 0, CoveragePerYear: 4},
			},
			MaxAnnualAreaPerUAV: 250000,
			Capacity:            CapacityRange{LowerPct: 5, UpperPct: 50},
		},
		Linear: LinearInput{
			Assets: []LinearAsset{
				{Name: "Highways", LengthKm: 40, CoverageTimesPerYear: 4},
				{Name: "Local Roads", LengthKm: 400, CoverageTimesPerYear: 1},
				{Name: "Railways High-speed", LengthKm: 1, CoverageTimesPerYear: 365},
				{Name: "Railways Low-speed", LengthKm: 7, CoverageTimesPerYear: 156},
				{Name: "Railways Freight-only", LengthKm: 10, CoverageTimesPerYear: 104},
				{Name: "Pipelines", LengthKm: 13, CoverageTimesPerYear: 4},
				{Name: "High-voltage Transmission Lines", LengthKm: 40, CoverageTimesPerYear: 4},
			},
			Capacity: CapacityRange{LowerPct: 5, UpperPct: 50},
		},
		Structure: StructureInput{
			Assets: []StructureAsset{
				{Name: "Bridges & Culverts", Structures: 4380, CoverageTimesPerYear: 4},
				{Name: "Annual Infrastructure Construction", Structures: 2920, CoverageTimesPerYear: 48},
				{Name: "Annual Residential Unit Construction", Structures: 29200, CoverageTimesPerYear: 4},
				{Name: "Annual Non-Residential Construction", Structures: 2920, CoverageTimesPerYear: 48},
			},
			StructuresPerFlight: 1,
			Capacity:            CapacityRange{LowerPct: 5, UpperPct: 50},
		},
		Emergency: EmergencyInput{
			ImpactedArea: 10000,
			AnnualEvents: 10,
			Coverage: []CoveragePurpose{
				{Name: "Search and Rescue", Percent: 0.05, TimesPerEvent: 1, DailyFlights: 16, DailyArea: 1, DaysToFull: 2},
				{Name: "Cellular Connectivity", Percent: 0.2, TimesPerEvent: 1, DailyFlights: 16, DailyArea: 10, DaysToFull: 2},
				{Name: "Government Inspection", Percent: 1.0, TimesPerEvent: 4, DailyFlights: 8, DailyArea: 0, DaysToFull: 7},
				{Name: "Insurance Inspection", Percent: 1.0, TimesPerEvent: 1, DailyFlights: 12, DailyArea: 0, DaysToFull: 7},
			},
			Capacity: CapacityRange{LowerPct: 5, UpperPct: 50},
		},
		VehicleMix: VehicleMixes{
			UseCaseRecreational: NewVehicleMix(1, 0),
			UseCaseDelivery:     NewVehicleMix(0, 1),
			UseCaseUrbanAir:     NewVehicleMix(0, 0),
			UseCaseAgriculture:  NewVehicleMix(0.5, 0.5),
			UseCaseLinear:       NewVehicleMix(0.8, 0.2),
			UseCaseStructure:    NewVehicleMix(0.8, 0.2),
			UseCaseEmergency:    NewVehicleMix(0.5, 0.4),
		},
		OtherFraction:      DefaultOtherFraction,
		OtherFlightsPerUAV: DefaultOtherFlightsPerUAV,
		Financial: FinancialInputs{
			PriceDelivery:   7,
			PriceUAM:        180,
			PriceInspection: 75,
			PriceRec:        0.5,
			FeePermitDrone:  100,
			FeePermitUAM:    5000,
			SplitOwners:     70,
			SplitProtocol:   30,
			SplitCity:       70,
			EconMultiplier:  2.5,
			AvgSalary:       75000,
		},
	}
}

// DashboardResult is every output of one calculation pass.
type DashboardResult struct {
	RunID        string          `json:"run_id"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Year         int             `json:"year"`
	Shared       Shared          `json:"shared"`
	Estimates    Estimates       `json:"estimates"`
	Rollup       Rollup          `json:"rollup"`
	Distribution Distribution    `json:"distribution"`
	FlightCurve  []ScenarioPoint `json:"flight_curve"`
	FleetCurve   []ScenarioPoint `json:"fleet_curve"`
	Volumes      StreamVolumes   `json:"volumes"`
	Financial    FinancialResult `json:"financial"`
}
