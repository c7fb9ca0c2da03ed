package entity

// UseCaseResult is the common output of every use-case estimator.
type UseCaseResult struct {
	UseCase       UseCase         `json:"use_case"`
	Flights       BoundedEstimate `json:"flights"`
	UAVs          BoundedEstimate `json:"uavs"`
	FlightsPerUAV float64         `json:"flights_per_uav"`
}

// RecreationalResult adds nothing to the common output.
type RecreationalResult struct {
	UseCaseResult
}

// DeliveryResult carries the delivery ceiling before capacity bounds.
type DeliveryResult struct {
	UseCaseResult
	AnnualUAVTonnesMax  float64 `json:"annual_uav_tonnes_max"`
	AnnualUAVFlightsMax float64 `json:"annual_uav_flights_max"`
}

// MobilityResult carries the mode-share trip counts.
type MobilityResult struct {
	UseCaseResult
	VehicleShare BoundedEstimate `json:"vehicle_share"`
}

// LandTypeResult is the per-row detail of the agriculture model.
type LandTypeResult struct {
	Name                string  `json:"name"`
	Locations           float64 `json:"locations"`
	HectaresPerLocation float64 `json:"hectares_per_location"`
	FlightsPerLocation  float64 `json:"flights_per_location"`
	UAVsPerLocation     float64 `json:"uavs_per_location"`
}

// AgricultureResult holds agriculture totals and detail rows.
type AgricultureResult struct {
	UseCaseResult
	LandTypes    []LandTypeResult `json:"land_types"`
	TotalFlights float64          `json:"total_flights"`
	TotalUAVs    float64          `json:"total_uavs"`
}

// AssetResult is the per-row detail of the linear and structure inspection models.
// UnitsPerLocation is km for linear assets and structures for structure assets.
type AssetResult struct {
	Name               string  `json:"name"`
	Locations          float64 `json:"locations"`
	UnitsPerLocation   float64 `json:"units_per_location"`
	FlightsPerLocation float64 `json:"flights_per_location"`
	UAVsPerLocation    float64 `json:"uavs_per_location"`
	TotalFlights       float64 `json:"total_flights"`
	TotalUAVs          float64 `json:"total_uavs"`
}

// InspectionResult holds linear or structure inspection totals and detail rows.
type InspectionResult struct {
	UseCaseResult
	Assets       []AssetResult `json:"assets"`
	TotalFlights float64       `json:"total_flights"`
	TotalUAVs    float64       `json:"total_uavs"`
}

// PurposeResult is the per-purpose detail of the emergency model, for one event.
type PurposeResult struct {
	Name                 string  `json:"name"`
	TotalCoveragePct     float64 `json:"total_coverage_pct"`
	TotalCoverageArea    float64 `json:"total_coverage_area"`
	AvgAreaPerFlight     float64 `json:"avg_area_per_flight"`
	DailyAreaPerUAV      float64 `json:"daily_area_per_uav"`
	TotalFlights         float64 `json:"total_flights"`
	TotalUAVs            float64 `json:"total_uavs"`
	UsedFallbackCoverage bool    `json:"used_fallback_coverage"`
}

// EmergencyResult holds per-event sums, annual maxima and detail rows.
type EmergencyResult struct {
	UseCaseResult
	Purposes          []PurposeResult `json:"purposes"`
	EventFlights      float64         `json:"event_flights"`
	EventUAVs         float64         `json:"event_uavs"`
	TotalFlightsMax   float64         `json:"total_flights_max"`
	TotalUAVsMax      float64         `json:"total_uavs_max"`
	AvgEventServedPct float64         `json:"avg_event_served_pct"`
}

// Estimates groups the seven estimator outputs of one pass.
type Estimates struct {
	Recreational RecreationalResult `json:"recreational"`
	Delivery     DeliveryResult     `json:"delivery"`
	UrbanAir     MobilityResult     `json:"urban_air_mobility"`
	Agriculture  AgricultureResult  `json:"agriculture"`
	Linear       InspectionResult   `json:"linear_inspection"`
	Structure    InspectionResult   `json:"structure_inspection"`
	Emergency    EmergencyResult    `json:"emergency_response"`
}

// Results returns the common outputs in display order.
func (e Estimates) Results() []UseCaseResult {
	return []UseCaseResult{
		e.Recreational.UseCaseResult,
		e.Delivery.UseCaseResult,
		e.UrbanAir.UseCaseResult,
		e.Agriculture.UseCaseResult,
		e.Linear.UseCaseResult,
		e.Structure.UseCaseResult,
		e.Emergency.UseCaseResult,
	}
}
