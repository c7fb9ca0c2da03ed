package entity

// OperationalAssumptions are the top-level operating inputs shared by every use case.
// Percentages are expressed 0-100.
type OperationalAssumptions struct {
	Year                      int     `json:"year" yaml:"year" toml:"year"`
	Population                float64 `json:"population" yaml:"population" toml:"population"`
	HoursPerDay               float64 `json:"hours_per_day" yaml:"hours_per_day" toml:"hours_per_day"`
	DaysPerWeek               float64 `json:"days_per_week" yaml:"days_per_week" toml:"days_per_week"`
	WeeksPerYear              float64 `json:"weeks_per_year" yaml:"weeks_per_year" toml:"weeks_per_year"`
	TimeInFlightPct           float64 `json:"time_in_flight_pct" yaml:"time_in_flight_pct" toml:"time_in_flight_pct"`
	AvgHoursPerFlight         float64 `json:"avg_hours_per_flight" yaml:"avg_hours_per_flight" toml:"avg_hours_per_flight"`
	AvgOverheadHoursPerFlight float64 `json:"avg_overhead_hours_per_flight" yaml:"avg_overhead_hours_per_flight" toml:"avg_overhead_hours_per_flight"`
	AvgVelocity               float64 `json:"avg_velocity" yaml:"avg_velocity" toml:"avg_velocity"`                               // km/h
	CoverageWidthPerPath      float64 `json:"coverage_width_per_path" yaml:"coverage_width_per_path" toml:"coverage_width_per_path"` // meters

	// Defaults handed down to the inspection and emergency estimators.
	MaxStructuresPerWeek float64 `json:"max_structures_per_week" yaml:"max_structures_per_week" toml:"max_structures_per_week"`
	MaxKmPerUAV          float64 `json:"max_km_per_uav" yaml:"max_km_per_uav" toml:"max_km_per_uav"`
	DailyAreaPerFlight   float64 `json:"daily_area_per_flight" yaml:"daily_area_per_flight" toml:"daily_area_per_flight"`
	AvgEventServedPct    float64 `json:"avg_event_served_pct" yaml:"avg_event_served_pct" toml:"avg_event_served_pct"`
}

// OperationalProfile is derived from OperationalAssumptions.
type OperationalProfile struct {
	OperationalHoursPerYear    float64 `json:"operational_hours_per_year"`
	FlightsPerYear             float64 `json:"flights_per_year"`
	CoveredLinearPathPerFlight float64 `json:"covered_linear_path_per_flight"`
	CoveredAreaPerFlightHa     float64 `json:"covered_area_per_flight_ha"`
	MaxAnnualStructures        float64 `json:"max_annual_structures"`
}

// Shared is the read-only configuration every estimator receives. It replaces
// per-section copies of population, operating days and coverage defaults.
type Shared struct {
	Assumptions OperationalAssumptions `json:"assumptions"`
	Profile     OperationalProfile     `json:"profile"`
}

// Float returns a pointer to v, for optional overrides in use-case inputs.
func Float(v float64) *float64 {
	return &v
}

// Or returns *p when set, otherwise fallback.
func Or(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
