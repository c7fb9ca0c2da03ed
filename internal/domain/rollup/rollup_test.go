package rollup

import (
	"math"
	"testing"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// referenceResults mirrors the rounded per-category defaults of the summary tables.
func referenceResults() []entity.UseCaseResult {
	mk := func(u entity.UseCase, lower, upper, perUAV float64) entity.UseCaseResult {
		return entity.UseCaseResult{
			UseCase:       u,
			Flights:       entity.BoundedEstimate{Lower: lower, Upper: upper},
			UAVs:          entity.BoundedEstimate{Lower: lower / perUAV, Upper: upper / perUAV},
			FlightsPerUAV: perUAV,
		}
	}
	return []entity.UseCaseResult{
		mk(entity.UseCaseRecreational, 917280, 2076360, 24),
		mk(entity.UseCaseDelivery, 9525600, 23814000, 240),
		mk(entity.UseCaseUrbanAir, 23400000, 253500000, 6000),
		mk(entity.UseCaseAgriculture, 6, 56, 11),
		mk(entity.UseCaseLinear, 33, 333, 83),
		mk(entity.UseCaseStructure, 20763, 207628, 655),
		mk(entity.UseCaseEmergency, 18100, 181000, 236),
	}
}

func TestAggregateOtherAndTotals(t *testing.T) {
	results := []entity.UseCaseResult{
		{UseCase: entity.UseCaseRecreational, Flights: entity.BoundedEstimate{Lower: 72000000, Upper: 80000000}, FlightsPerUAV: 10},
		{UseCase: entity.UseCaseDelivery, Flights: entity.BoundedEstimate{Lower: 751432, Upper: 1000000}, FlightsPerUAV: 21},
	}
	r := Aggregate(results, entity.DefaultOtherFraction)

	approx(t, "other lower", r.Other.LowerFlights, 0.001*72751432/0.999, 1e-6)
	approx(t, "total lower", r.Total.LowerFlights, 72751432+0.001*72751432/0.999, 1e-4)
	if got := math.Round(r.Total.LowerFlights); got != 72824256 {
		t.Errorf("rounded total lower = %v, want 72824256", got)
	}
	approx(t, "other per uav", r.Other.FlightsPerUAV, 16, 0)
}

func TestAggregateSharesSumTo100(t *testing.T) {
	r := Aggregate(referenceResults(), entity.DefaultOtherFraction)

	var sumLower, sumUpper, flights float64
	for _, c := range r.Categories {
		sumLower += c.LowerPct
		sumUpper += c.UpperPct
		flights += c.LowerFlights
	}
	sumLower += r.Other.LowerPct
	sumUpper += r.Other.UpperPct

	approx(t, "lower pct sum", sumLower, 100, 1e-9)
	approx(t, "upper pct sum", sumUpper, 100, 1e-9)
	approx(t, "named + other", flights+r.Other.LowerFlights, r.Total.LowerFlights, 1e-6)
	approx(t, "other share", r.Other.LowerPct, 0.1, 1e-9)
	// mean of 24, 240, 6000, 11, 83, 655, 236 is 1035.57
	approx(t, "other per uav", r.Other.FlightsPerUAV, 1036, 0)

	if rows := r.Rows(); len(rows) != 9 || rows[7].Name != "Other" || rows[8].Name != "Total" {
		t.Errorf("unexpected row layout: %+v", rows)
	}
}

func TestAggregateZeroTotalPropagatesNaN(t *testing.T) {
	r := Aggregate([]entity.UseCaseResult{{UseCase: entity.UseCaseLinear, FlightsPerUAV: 1}}, entity.DefaultOtherFraction)
	if !math.IsNaN(r.Categories[0].LowerPct) {
		t.Errorf("share of a zero total should be NaN, got %v", r.Categories[0].LowerPct)
	}
}

func TestMixClosure(t *testing.T) {
	mixes := entity.DefaultScenario().VehicleMix
	d := Distribute(referenceResults(), mixes, entity.DefaultOtherFraction, entity.DefaultOtherFlightsPerUAV)
	for _, m := range d.Mix {
		approx(t, m.Name+" closure", m.Small+m.Medium+m.Large, 1, 1e-12)
		approx(t, m.Name+" total", m.Total, 1, 1e-12)
	}

	other := d.Mix[len(d.Mix)-1]
	if other.Name != entity.OtherAverageRowName {
		t.Fatalf("last mix row = %q, want %q", other.Name, entity.OtherAverageRowName)
	}
	approx(t, "avg small", other.Small, 3.6/7, 1e-12)
	approx(t, "avg medium", other.Medium, 2.3/7, 1e-12)
}

func TestMixOverOneGoesNegative(t *testing.T) {
	results := []entity.UseCaseResult{{UseCase: entity.UseCaseAgriculture, Flights: entity.BoundedEstimate{Lower: 100}, FlightsPerUAV: 10}}
	mixes := entity.VehicleMixes{entity.UseCaseAgriculture: {Small: 0.8, Medium: 0.5}}
	d := Distribute(results, mixes, 0, 1)
	approx(t, "large share", d.Mix[0].Large, -0.3, 1e-12)
	approx(t, "large flights", d.FlightsLower.Rows[0].Large, -30, 1e-9)
}

func TestDistributeFlightsAndFleet(t *testing.T) {
	results := referenceResults()
	d := Distribute(results, entity.DefaultScenario().VehicleMix, entity.DefaultOtherFraction, entity.DefaultOtherFlightsPerUAV)

	rec := d.FlightsLower.Rows[0]
	approx(t, "rec small", rec.Small, 917280, 1e-9)
	approx(t, "rec large", rec.Large, 0, 1e-9)

	uam := d.FlightsUpper.Rows[2]
	approx(t, "uam large", uam.Large, 253500000, 1e-6)

	var sum float64
	for _, r := range results {
		sum += r.Flights.Lower
	}
	other := d.FlightsLower.Rows[len(d.FlightsLower.Rows)-1]
	approx(t, "other flights", other.Total, OtherShare(sum, entity.DefaultOtherFraction), 1e-6)
	approx(t, "other split", other.Small+other.Medium+other.Large, other.Total, 1e-6)
	approx(t, "flight totals", d.FlightsLower.Totals.Total, sum+other.Total, 1e-6)

	recFleet := d.UAVsLower.Rows[0]
	approx(t, "rec fleet", recFleet.Total, 917280.0/24, 1e-9)
	otherFleet := d.UAVsLower.Rows[len(d.UAVsLower.Rows)-1]
	approx(t, "other fleet", otherFleet.Total, other.Total/1036, 1e-9)

	if d.Flights(entity.BoundHigh).Totals != d.FlightsUpper.Totals {
		t.Error("Flights(high) should select the upper table")
	}
}
