package entity

// Names of the synthetic rows appended to rollup and distribution tables.
const (
	OtherRowName        = "Other"
	OtherAverageRowName = "Other (average)"
	TotalRowName        = "Total"
)

// VehicleMixFraction splits a use case across size classes. Large is derived
// as 1 - Small - Medium and may go negative when the inputs exceed 1.
type VehicleMixFraction struct {
	Small  float64 `json:"small" yaml:"small" toml:"small"`
	Medium float64 `json:"medium" yaml:"medium" toml:"medium"`
	Large  float64 `json:"large" yaml:"-" toml:"-"`
}

// NewVehicleMix builds a mix with the large share derived.
func NewVehicleMix(small, medium float64) VehicleMixFraction {
	return VehicleMixFraction{Small: small, Medium: medium, Large: 1 - small - medium}
}

// VehicleMixes holds the per-use-case size mix inputs.
type VehicleMixes map[UseCase]VehicleMixFraction

// CategoryRollup is one row of the cross-category summary table.
type CategoryRollup struct {
	Name          string  `json:"name"`
	LowerFlights  float64 `json:"lower_flights"`
	LowerPct      float64 `json:"lower_pct"`
	UpperFlights  float64 `json:"upper_flights"`
	UpperPct      float64 `json:"upper_pct"`
	FlightsPerUAV float64 `json:"flights_per_uav"`
	LowerUAVs     float64 `json:"lower_uavs"`
	UpperUAVs     float64 `json:"upper_uavs"`
}

// Rollup is the summary table: named categories, the derived Other row and the Total row.
type Rollup struct {
	Categories []CategoryRollup `json:"categories"`
	Other      CategoryRollup   `json:"other"`
	Total      CategoryRollup   `json:"total"`
}

// Rows returns categories followed by Other and Total.
func (r Rollup) Rows() []CategoryRollup {
	rows := make([]CategoryRollup, 0, len(r.Categories)+2)
	rows = append(rows, r.Categories...)
	return append(rows, r.Other, r.Total)
}

// SizeBreakdown is one row of a size-class table (mix, flights or fleet).
type SizeBreakdown struct {
	Name   string  `json:"name"`
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
	Total  float64 `json:"total"`
}

// SizeTable is a list of rows plus the column sums.
type SizeTable struct {
	Rows   []SizeBreakdown `json:"rows"`
	Totals SizeBreakdown   `json:"totals"`
}

// Distribution is the full vehicle-type breakdown of one pass.
type Distribution struct {
	Mix          []SizeBreakdown `json:"mix"`
	FlightsLower SizeTable       `json:"flights_lower"`
	FlightsUpper SizeTable       `json:"flights_upper"`
	UAVsLower    SizeTable       `json:"uavs_lower"`
	UAVsUpper    SizeTable       `json:"uavs_upper"`
}

// Flights returns the flight table for the selected bound.
func (d Distribution) Flights(b Bound) SizeTable {
	if b == BoundHigh {
		return d.FlightsUpper
	}
	return d.FlightsLower
}

// UAVs returns the fleet table for the selected bound.
func (d Distribution) UAVs(b Bound) SizeTable {
	if b == BoundHigh {
		return d.UAVsUpper
	}
	return d.UAVsLower
}

// ScenarioPoint is one interpolation step between nice-rounded bounds.
type ScenarioPoint struct {
	Label  string  `json:"label"`
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
	Total  float64 `json:"total"`
}
