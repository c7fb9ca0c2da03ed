package entity

// FinancialInputs are the unit economics of the financial impact model.
// Split percentages are 0-100.
type FinancialInputs struct {
	PriceDelivery   float64 `json:"price_delivery" yaml:"price_delivery" toml:"price_delivery"`
	PriceUAM        float64 `json:"price_uam" yaml:"price_uam" toml:"price_uam"`
	PriceInspection float64 `json:"price_inspection" yaml:"price_inspection" toml:"price_inspection"`
	PriceRec        float64 `json:"price_rec" yaml:"price_rec" toml:"price_rec"`
	FeePermitDrone  float64 `json:"fee_permit_drone" yaml:"fee_permit_drone" toml:"fee_permit_drone"`
	FeePermitUAM    float64 `json:"fee_permit_uam" yaml:"fee_permit_uam" toml:"fee_permit_uam"`
	SplitOwners     float64 `json:"split_owners" yaml:"split_owners" toml:"split_owners"`
	SplitProtocol   float64 `json:"split_protocol" yaml:"split_protocol" toml:"split_protocol"`
	SplitCity       float64 `json:"split_city" yaml:"split_city" toml:"split_city"`
	EconMultiplier  float64 `json:"econ_multiplier" yaml:"econ_multiplier" toml:"econ_multiplier"`
	AvgSalary       float64 `json:"avg_salary" yaml:"avg_salary" toml:"avg_salary"`
}

// StreamVolume is the flight and fleet bounds of one revenue stream.
type StreamVolume struct {
	Flights BoundedEstimate `json:"flights"`
	UAVs    BoundedEstimate `json:"uavs"`
}

// StreamVolumes feeds the financial model. Recreational flights carry no permits.
type StreamVolumes struct {
	Delivery     StreamVolume `json:"delivery"`
	UAM          StreamVolume `json:"uam"`
	Inspection   StreamVolume `json:"inspection"`
	Recreational StreamVolume `json:"recreational"`
}

// FinancialBreakdown is the financial result for one bound.
type FinancialBreakdown struct {
	RevenueDelivery     float64 `json:"revenue_delivery"`
	RevenueUAM          float64 `json:"revenue_uam"`
	RevenueInspection   float64 `json:"revenue_inspection"`
	RevenueRec          float64 `json:"revenue_rec"`
	TotalFlightFees     float64 `json:"total_flight_fees"`
	SmallUAVCount       float64 `json:"small_uav_count"`
	TotalPermitRevenue  float64 `json:"total_permit_revenue"`
	ProtocolShare       float64 `json:"protocol_share"`
	OwnerShare          float64 `json:"owner_share"`
	CityShare           float64 `json:"city_share"`
	PrivateShare        float64 `json:"private_share"`
	TotalCityRevenue    float64 `json:"total_city_revenue"`
	GrossEconomicImpact float64 `json:"gross_economic_impact"`
	Jobs                float64 `json:"jobs"`
	GrandTotal          float64 `json:"grand_total"`
}

// RevenueStream is a named slice of flight-fee revenue.
type RevenueStream struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// Streams lists flight-fee revenue by stream, in display order.
func (b FinancialBreakdown) Streams() []RevenueStream {
	return []RevenueStream{
		{Name: "Delivery", Revenue: b.RevenueDelivery},
		{Name: "Urban Air Mobility", Revenue: b.RevenueUAM},
		{Name: "Inspection", Revenue: b.RevenueInspection},
		{Name: "Recreational", Revenue: b.RevenueRec},
	}
}

// FinancialResult holds both bounds; the active one is picked with Select.
type FinancialResult struct {
	Low  FinancialBreakdown `json:"low"`
	High FinancialBreakdown `json:"high"`
}

// Select returns the breakdown for b.
func (r FinancialResult) Select(b Bound) FinancialBreakdown {
	if b == BoundHigh {
		return r.High
	}
	return r.Low
}
