package entity

// UseCase identifies one of the named volume categories.
type UseCase string

const (
	UseCaseRecreational UseCase = "recreational"
	UseCaseDelivery     UseCase = "delivery"
	UseCaseUrbanAir     UseCase = "urban_air_mobility"
	UseCaseAgriculture  UseCase = "agriculture"
	UseCaseLinear       UseCase = "linear_inspection"
	UseCaseStructure    UseCase = "structure_inspection"
	UseCaseEmergency    UseCase = "emergency_response"
	UseCaseOther        UseCase = "other"
)

// UseCases lists the named categories in display order. Other is derived.
var UseCases = []UseCase{
	UseCaseRecreational,
	UseCaseDelivery,
	UseCaseUrbanAir,
	UseCaseAgriculture,
	UseCaseLinear,
	UseCaseStructure,
	UseCaseEmergency,
}

var useCaseTitles = map[UseCase]string{
	UseCaseRecreational: "Recreational Use",
	UseCaseDelivery:     "Commercial Delivery",
	UseCaseUrbanAir:     "Urban Air Mobility",
	UseCaseAgriculture:  "Agriculture",
	UseCaseLinear:       "Linear Inspection",
	UseCaseStructure:    "Structure Inspection",
	UseCaseEmergency:    "Emergency Response",
	UseCaseOther:        "Other",
}

// Title returns the display name of the use case.
func (u UseCase) Title() string {
	if t, ok := useCaseTitles[u]; ok {
		return t
	}
	return string(u)
}

// CapacityRange is the lower/upper share of maximum capacity a use case reaches.
type CapacityRange struct {
	LowerPct float64 `json:"uav_capacity_pct_lower" yaml:"uav_capacity_pct_lower" toml:"uav_capacity_pct_lower"`
	UpperPct float64 `json:"uav_capacity_pct_upper" yaml:"uav_capacity_pct_upper" toml:"uav_capacity_pct_upper"`
}

// RecreationalInput models hobby ownership as a share of population.
type RecreationalInput struct {
	Population         *float64 `json:"population,omitempty" yaml:"population,omitempty" toml:"population,omitempty"`
	UAVPercentLower    float64  `json:"uav_percent_lower" yaml:"uav_percent_lower" toml:"uav_percent_lower"`
	UAVPercentUpper    float64  `json:"uav_percent_upper" yaml:"uav_percent_upper" toml:"uav_percent_upper"`
	AvgFlightsPerMonth float64  `json:"avg_flights_per_month" yaml:"avg_flights_per_month" toml:"avg_flights_per_month"`
}

// DeliveryInput models parcel delivery from annual freight tonnage.
type DeliveryInput struct {
	AnnualTonnes         float64       `json:"annual_tonnes" yaml:"annual_tonnes" toml:"annual_tonnes"`
	ManufacturedGoodsPct float64       `json:"manufactured_goods_pct" yaml:"manufactured_goods_pct" toml:"manufactured_goods_pct"`
	UAVPotentialPct      float64       `json:"uav_potential_pct" yaml:"uav_potential_pct" toml:"uav_potential_pct"`
	AvgKgPerDelivery     float64       `json:"avg_kg_per_delivery" yaml:"avg_kg_per_delivery" toml:"avg_kg_per_delivery"`
	AvgFlightsPerDay     float64       `json:"avg_flights_per_day" yaml:"avg_flights_per_day" toml:"avg_flights_per_day"`
	Capacity             CapacityRange `json:"capacity" yaml:"capacity" toml:"capacity"`
}

// MobilityInput models passenger air taxis as a share of vehicle trips.
type MobilityInput struct {
	TotalAnnualVehicleTrips float64       `json:"total_annual_vehicle_trips" yaml:"total_annual_vehicle_trips" toml:"total_annual_vehicle_trips"`
	VehicleSharePctLower    float64       `json:"vehicle_share_pct_lower" yaml:"vehicle_share_pct_lower" toml:"vehicle_share_pct_lower"`
	VehicleSharePctUpper    float64       `json:"vehicle_share_pct_upper" yaml:"vehicle_share_pct_upper" toml:"vehicle_share_pct_upper"`
	AvgFlightsPerYear       float64       `json:"avg_flights_per_year" yaml:"avg_flights_per_year" toml:"avg_flights_per_year"`
	Capacity                CapacityRange `json:"capacity" yaml:"capacity" toml:"capacity"`
}

// LandType is one area-coverage row of the agriculture model.
type LandType struct {
	Name            string  `json:"name" yaml:"name" toml:"name"`
	Hectares        float64 `json:"hectares" yaml:"hectares" toml:"hectares"`
	Locations       float64 `json:"locations" yaml:"locations" toml:"locations"`
	CoveragePerYear float64 `json:"coverage_per_year" yaml:"coverage_per_year" toml:"coverage_per_year"`
}

// AgricultureInput models area coverage of farmland and forests.
type AgricultureInput struct {
	LandTypes               []LandType    `json:"land_types" yaml:"land_types" toml:"land_types"`
	MaxAnnualAreaPerUAV     float64       `json:"max_annual_area_per_uav" yaml:"max_annual_area_per_uav" toml:"max_annual_area_per_uav"`
	CoveredAreaPerFlightHa  *float64      `json:"covered_area_per_flight_ha,omitempty" yaml:"covered_area_per_flight_ha,omitempty" toml:"covered_area_per_flight_ha,omitempty"`
	MaxFlightsPerUAVPerYear *float64      `json:"max_flights_per_uav_per_year,omitempty" yaml:"max_flights_per_uav_per_year,omitempty" toml:"max_flights_per_uav_per_year,omitempty"`
	Capacity                CapacityRange `json:"capacity" yaml:"capacity" toml:"capacity"`
}

// LinearAsset is one linear-infrastructure row, e.g. highways or pipelines.
type LinearAsset struct {
	Name                 string  `json:"name" yaml:"name" toml:"name"`
	LengthKm             float64 `json:"length_km" yaml:"length_km" toml:"length_km"`
	CoverageTimesPerYear float64 `json:"coverage_times_per_year" yaml:"coverage_times_per_year" toml:"coverage_times_per_year"`
}

// LinearInput models inspection of roads, rails, pipelines and power lines.
type LinearInput struct {
	Assets                     []LinearAsset `json:"assets" yaml:"assets" toml:"assets"`
	MaxLinearPathPerUAV        *float64      `json:"max_linear_path_per_uav,omitempty" yaml:"max_linear_path_per_uav,omitempty" toml:"max_linear_path_per_uav,omitempty"`
	CoveredLinearPathPerFlight *float64      `json:"covered_linear_path_per_flight,omitempty" yaml:"covered_linear_path_per_flight,omitempty" toml:"covered_linear_path_per_flight,omitempty"`
	MaxFlightsPerUAVPerYear    *float64      `json:"max_flights_per_uav_per_year,omitempty" yaml:"max_flights_per_uav_per_year,omitempty" toml:"max_flights_per_uav_per_year,omitempty"`
	Capacity                   CapacityRange `json:"capacity" yaml:"capacity" toml:"capacity"`
}

// StructureAsset is one structure-count row, e.g. bridges or construction sites.
type StructureAsset struct {
	Name                 string  `json:"name" yaml:"name" toml:"name"`
	Structures           float64 `json:"structures" yaml:"structures" toml:"structures"`
	CoverageTimesPerYear float64 `json:"coverage_times_per_year" yaml:"coverage_times_per_year" toml:"coverage_times_per_year"`
}

// StructureInput models inspection of discrete structures.
type StructureInput struct {
	Assets                  []StructureAsset `json:"assets" yaml:"assets" toml:"assets"`
	MaxStructuresPerUAV     *float64         `json:"max_structures_per_uav,omitempty" yaml:"max_structures_per_uav,omitempty" toml:"max_structures_per_uav,omitempty"`
	StructuresPerFlight     float64          `json:"structures_per_flight" yaml:"structures_per_flight" toml:"structures_per_flight"`
	MaxFlightsPerUAVPerYear *float64         `json:"max_flights_per_uav_per_year,omitempty" yaml:"max_flights_per_uav_per_year,omitempty" toml:"max_flights_per_uav_per_year,omitempty"`
	Capacity                CapacityRange    `json:"capacity" yaml:"capacity" toml:"capacity"`
}

// CoveragePurpose is one emergency mission type (search and rescue, connectivity, inspection).
type CoveragePurpose struct {
	Name          string  `json:"name" yaml:"name" toml:"name"`
	Percent       float64 `json:"percent" yaml:"percent" toml:"percent"` // fraction of impacted area
	TimesPerEvent float64 `json:"times_per_event" yaml:"times_per_event" toml:"times_per_event"`
	DailyFlights  float64 `json:"daily_flights" yaml:"daily_flights" toml:"daily_flights"`
	DailyArea     float64 `json:"daily_area" yaml:"daily_area" toml:"daily_area"`
	DaysToFull    float64 `json:"days_to_full" yaml:"days_to_full" toml:"days_to_full"`
}

// EmergencyInput models event-driven coverage of disaster areas.
type EmergencyInput struct {
	ImpactedArea         float64           `json:"impacted_area" yaml:"impacted_area" toml:"impacted_area"` // sq km per event
	AnnualEvents         float64           `json:"annual_events" yaml:"annual_events" toml:"annual_events"`
	AvgEventServedPct    *float64          `json:"avg_event_served_pct,omitempty" yaml:"avg_event_served_pct,omitempty" toml:"avg_event_served_pct,omitempty"`
	CoveredAreaPerFlight *float64          `json:"covered_area_per_flight,omitempty" yaml:"covered_area_per_flight,omitempty" toml:"covered_area_per_flight,omitempty"`
	Coverage             []CoveragePurpose `json:"coverage" yaml:"coverage" toml:"coverage"`
	Capacity             CapacityRange     `json:"capacity" yaml:"capacity" toml:"capacity"`
}
