package rollup

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// AverageMix is the unweighted mean of the small and medium shares, with
// large derived from them.
func AverageMix(mixes []entity.VehicleMixFraction) entity.VehicleMixFraction {
	small := make([]float64, len(mixes))
	medium := make([]float64, len(mixes))
	for i, m := range mixes {
		small[i] = m.Small
		medium[i] = m.Medium
	}
	return entity.NewVehicleMix(numeric.Mean(small), numeric.Mean(medium))
}

// Distribute splits each category's flights and fleet across size classes.
// A use case without a mix entry is treated as all large vehicles.
func Distribute(results []entity.UseCaseResult, mixes entity.VehicleMixes, otherFraction, otherFlightsPerUAV float64) entity.Distribution {
	rowMixes := make([]entity.VehicleMixFraction, len(results))
	var d entity.Distribution
	for i, r := range results {
		m := mixes[r.UseCase]
		rowMixes[i] = entity.NewVehicleMix(m.Small, m.Medium)
		d.Mix = append(d.Mix, mixRow(r.UseCase.Title(), rowMixes[i]))
	}
	avg := AverageMix(rowMixes)
	d.Mix = append(d.Mix, entity.SizeBreakdown{
		Name:   entity.OtherAverageRowName,
		Small:  avg.Small,
		Medium: avg.Medium,
		Large:  avg.Large,
		Total:  1,
	})

	d.FlightsLower, d.UAVsLower = split(results, rowMixes, avg, entity.BoundLow, otherFraction, otherFlightsPerUAV)
	d.FlightsUpper, d.UAVsUpper = split(results, rowMixes, avg, entity.BoundHigh, otherFraction, otherFlightsPerUAV)
	return d
}

func mixRow(name string, m entity.VehicleMixFraction) entity.SizeBreakdown {
	return entity.SizeBreakdown{
		Name:   name,
		Small:  m.Small,
		Medium: m.Medium,
		Large:  m.Large,
		Total:  m.Small + m.Medium + m.Large,
	}
}

func split(results []entity.UseCaseResult, mixes []entity.VehicleMixFraction, avg entity.VehicleMixFraction,
	b entity.Bound, otherFraction, otherFlightsPerUAV float64) (flights, uavs entity.SizeTable) {
	var sum float64
	for i, r := range results {
		f := r.Flights.Select(b)
		sum += f
		fr := sized(r.UseCase.Title(), f, mixes[i])
		flights.Rows = append(flights.Rows, fr)
		uavs.Rows = append(uavs.Rows, fleet(fr, r.FlightsPerUAV))
	}

	other := sized(entity.OtherRowName, OtherShare(sum, otherFraction), avg)
	flights.Rows = append(flights.Rows, other)
	uavs.Rows = append(uavs.Rows, fleet(other, otherFlightsPerUAV))

	flights.Totals = totals(flights.Rows)
	uavs.Totals = totals(uavs.Rows)
	return flights, uavs
}

func sized(name string, flights float64, m entity.VehicleMixFraction) entity.SizeBreakdown {
	return entity.SizeBreakdown{
		Name:   name,
		Small:  flights * m.Small,
		Medium: flights * m.Medium,
		Large:  flights * m.Large,
		Total:  flights,
	}
}

// fleet divides a flight row by an annual per-UAV rate. Zero rates propagate as Inf/NaN.
func fleet(f entity.SizeBreakdown, perUAV float64) entity.SizeBreakdown {
	return entity.SizeBreakdown{
		Name:   f.Name,
		Small:  f.Small / perUAV,
		Medium: f.Medium / perUAV,
		Large:  f.Large / perUAV,
		Total:  (f.Small + f.Medium + f.Large) / perUAV,
	}
}

func totals(rows []entity.SizeBreakdown) entity.SizeBreakdown {
	t := entity.SizeBreakdown{Name: entity.TotalRowName}
	for _, r := range rows {
		t.Small += r.Small
		t.Medium += r.Medium
		t.Large += r.Large
		t.Total += r.Total
	}
	return t
}
