package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/financial"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/rollup"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/scenario"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/volume"
)

// Calculate runs one full pass over a scenario: estimators, rollup, size
// distribution, scenario curves and financial allocation. Every call builds
// a fresh result.
func Calculate(s entity.Scenario) *entity.DashboardResult {
	shared := volume.NewShared(s.Operational)

	est := entity.Estimates{
		Recreational: volume.Recreational(s.Recreational, shared),
		Delivery:     volume.Delivery(s.Delivery, shared),
		UrbanAir:     volume.UrbanAirMobility(s.UrbanAir, shared),
		Agriculture:  volume.Agriculture(s.Agriculture, shared),
		Linear:       volume.LinearInspection(s.Linear, shared),
		Structure:    volume.StructureInspection(s.Structure, shared),
		Emergency:    volume.EmergencyResponse(s.Emergency, shared),
	}
	results := est.Results()

	dist := rollup.Distribute(results, s.VehicleMix, s.OtherFraction, s.OtherFlightsPerUAV)
	volumes := financial.VolumesFromEstimates(est)

	return &entity.DashboardResult{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now(),
		Year:         s.Operational.Year,
		Shared:       shared,
		Estimates:    est,
		Rollup:       rollup.Aggregate(results, s.OtherFraction),
		Distribution: dist,
		FlightCurve:  scenario.Interpolate(dist.FlightsLower.Totals, dist.FlightsUpper.Totals),
		FleetCurve:   scenario.Interpolate(dist.UAVsLower.Totals, dist.UAVsUpper.Totals),
		Volumes:      volumes,
		Financial:    financial.Allocate(s.Financial, volumes),
	}
}
