package report

import (
	"fmt"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

// Section is one titled table. Sheet is a short name for spreadsheet tabs.
type Section struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]string
}

// Build lays out every section of a dashboard for the selected bound.
// Estimator and rollup tables always carry both bounds; the size-class,
// financial and revenue tables show the selected one.
func Build(res *entity.DashboardResult, b entity.Bound) []Section {
	sections := []Section{
		Operational(res.Shared),
		Estimates(res.Estimates),
		Agriculture(res.Estimates.Agriculture),
		Inspection("Linear Inspection Detail", "Linear Detail", "Km per Location", res.Estimates.Linear),
		Inspection("Structure Inspection Detail", "Structure Detail", "Structures per Location", res.Estimates.Structure),
		Emergency(res.Estimates.Emergency),
		Rollup(res.Rollup),
		Mix(res.Distribution.Mix),
		SizeTable(fmt.Sprintf("Flights by Vehicle Size (%s)", b.Label()), "Flights by Size", res.Distribution.Flights(b)),
		SizeTable(fmt.Sprintf("UAVs by Vehicle Size (%s)", b.Label()), "UAVs by Size", res.Distribution.UAVs(b)),
		Curve("Flight Scenarios", "Flight Scenarios", res.FlightCurve),
		Curve("Fleet Scenarios", "Fleet Scenarios", res.FleetCurve),
	}
	fin := res.Financial.Select(b)
	return append(sections, Financial(fin, b), Revenue(fin, b))
}

// Operational lists the shared assumptions and the derived profile.
func Operational(s entity.Shared) Section {
	a, p := s.Assumptions, s.Profile
	return Section{
		Title:   fmt.Sprintf("General Operational Model (%d)", a.Year),
		Sheet:   "Operational",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Population", Number(a.Population)},
			{"Hours per Day", Number(a.HoursPerDay)},
			{"Days per Week", Number(a.DaysPerWeek)},
			{"Weeks per Year", Number(a.WeeksPerYear)},
			{"Time in Flight", Percent(a.TimeInFlightPct)},
			{"Operational Hours per Year", Number(p.OperationalHoursPerYear)},
			{"Flights per UAV per Year", Number(p.FlightsPerYear)},
			{"Covered Linear Path per Flight (km)", Number(p.CoveredLinearPathPerFlight)},
			{"Covered Area per Flight (ha)", Number(p.CoveredAreaPerFlightHa)},
			{"Max Annual Structures per UAV", Number(p.MaxAnnualStructures)},
		},
	}
}

// Estimates is the per-use-case summary of both bounds.
func Estimates(e entity.Estimates) Section {
	s := Section{
		Title:   "Use Case Estimates",
		Sheet:   "Estimates",
		Headers: []string{"Use Case", "Lower Flights", "Upper Flights", "Lower UAVs", "Upper UAVs", "Flights per UAV"},
	}
	for _, r := range e.Results() {
		s.Rows = append(s.Rows, []string{
			r.UseCase.Title(),
			Number(r.Flights.Lower),
			Number(r.Flights.Upper),
			Number(r.UAVs.Lower),
			Number(r.UAVs.Upper),
			Number(r.FlightsPerUAV),
		})
	}
	return s
}

// Agriculture is the per-land-type detail.
func Agriculture(r entity.AgricultureResult) Section {
	s := Section{
		Title:   "Agriculture Detail",
		Sheet:   "Agriculture Detail",
		Headers: []string{"Land Type", "Locations", "Hectares per Location", "Flights per Location", "UAVs per Location"},
	}
	for _, lt := range r.LandTypes {
		s.Rows = append(s.Rows, []string{
			lt.Name,
			Number(lt.Locations),
			Number(lt.HectaresPerLocation),
			Number(lt.FlightsPerLocation),
			Number(lt.UAVsPerLocation),
		})
	}
	s.Rows = append(s.Rows, []string{entity.TotalRowName, "", "", Number(r.TotalFlights), Number(r.TotalUAVs)})
	return s
}

// Inspection is the per-asset detail of the linear or structure model.
func Inspection(title, sheet, unitHeader string, r entity.InspectionResult) Section {
	s := Section{
		Title:   title,
		Sheet:   sheet,
		Headers: []string{"Asset", "Locations", unitHeader, "Flights per Location", "UAVs per Location", "Total Flights", "Total UAVs"},
	}
	for _, a := range r.Assets {
		s.Rows = append(s.Rows, []string{
			a.Name,
			Number(a.Locations),
			Number(a.UnitsPerLocation),
			Number(a.FlightsPerLocation),
			Number(a.UAVsPerLocation),
			Number(a.TotalFlights),
			Number(a.TotalUAVs),
		})
	}
	s.Rows = append(s.Rows, []string{entity.TotalRowName, "", "", "", "", Number(r.TotalFlights), Number(r.TotalUAVs)})
	return s
}

// Emergency is the per-purpose detail for a single event.
func Emergency(r entity.EmergencyResult) Section {
	s := Section{
		Title:   "Emergency Response Detail (per event)",
		Sheet:   "Emergency Detail",
		Headers: []string{"Purpose", "Coverage", "Coverage Area", "Area per Flight", "Daily Area per UAV", "Flights", "UAVs"},
	}
	for _, p := range r.Purposes {
		area := Number(p.AvgAreaPerFlight)
		if p.UsedFallbackCoverage {
			area += " (default)"
		}
		s.Rows = append(s.Rows, []string{
			p.Name,
			Fraction(p.TotalCoveragePct),
			Number(p.TotalCoverageArea),
			area,
			Number(p.DailyAreaPerUAV),
			Number(p.TotalFlights),
			Number(p.TotalUAVs),
		})
	}
	s.Rows = append(s.Rows,
		[]string{"Per Event", "", "", "", "", Number(r.EventFlights), Number(r.EventUAVs)},
		[]string{"Annual Maximum", "", "", "", Percent(r.AvgEventServedPct) + " served", Number(r.TotalFlightsMax), Number(r.TotalUAVsMax)},
	)
	return s
}

// Rollup is the cross-category summary with shares.
func Rollup(r entity.Rollup) Section {
	s := Section{
		Title:   "Cross-Category Summary",
		Sheet:   "Summary",
		Headers: []string{"Category", "Lower Flights", "Lower %", "Upper Flights", "Upper %", "Flights per UAV", "Lower UAVs", "Upper UAVs"},
	}
	for _, c := range r.Rows() {
		perUAV := Number(c.FlightsPerUAV)
		if c.Name == entity.TotalRowName {
			perUAV = ""
		}
		s.Rows = append(s.Rows, []string{
			c.Name,
			Number(c.LowerFlights),
			Percent(c.LowerPct),
			Number(c.UpperFlights),
			Percent(c.UpperPct),
			perUAV,
			Number(c.LowerUAVs),
			Number(c.UpperUAVs),
		})
	}
	return s
}

// Mix is the vehicle size mix per category.
func Mix(rows []entity.SizeBreakdown) Section {
	s := Section{
		Title:   "Vehicle Size Mix",
		Sheet:   "Vehicle Mix",
		Headers: []string{"Category", "Small", "Medium", "Large", "Total"},
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []string{r.Name, Fraction(r.Small), Fraction(r.Medium), Fraction(r.Large), Fraction(r.Total)})
	}
	return s
}

// SizeTable renders a flight or fleet breakdown with its totals row.
func SizeTable(title, sheet string, t entity.SizeTable) Section {
	s := Section{
		Title:   title,
		Sheet:   sheet,
		Headers: []string{"Category", "Small", "Medium", "Large", "Total"},
	}
	for _, r := range t.Rows {
		s.Rows = append(s.Rows, sizeRow(r))
	}
	s.Rows = append(s.Rows, sizeRow(t.Totals))
	return s
}

func sizeRow(r entity.SizeBreakdown) []string {
	return []string{r.Name, Number(r.Small), Number(r.Medium), Number(r.Large), Number(r.Total)}
}

// Curve renders a scenario curve.
func Curve(title, sheet string, points []entity.ScenarioPoint) Section {
	s := Section{
		Title:   title,
		Sheet:   sheet,
		Headers: []string{"Step", "Small", "Medium", "Large", "Total"},
	}
	for _, p := range points {
		s.Rows = append(s.Rows, []string{p.Label, Number(p.Small), Number(p.Medium), Number(p.Large), Number(p.Total)})
	}
	return s
}

// Financial lists revenue, allocation and impact for one bound.
func Financial(f entity.FinancialBreakdown, b entity.Bound) Section {
	return Section{
		Title:   fmt.Sprintf("Financial Impact (%s)", b.Label()),
		Sheet:   "Financial",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Flight Fees", Currency(f.TotalFlightFees)},
			{"Small UAV Permits", Number(f.SmallUAVCount)},
			{"Total Permit Revenue", Currency(f.TotalPermitRevenue)},
			{"Grand Total", Currency(f.GrandTotal)},
			{"Protocol Share", Currency(f.ProtocolShare)},
			{"Corridor Owner Share", Currency(f.OwnerShare)},
			{"City Corridor Share", Currency(f.CityShare)},
			{"Private Corridor Share", Currency(f.PrivateShare)},
			{"Total City Revenue", Currency(f.TotalCityRevenue)},
			{"Gross Economic Activity", Currency(f.GrossEconomicImpact)},
			{"Jobs Supported", Number(f.Jobs)},
		},
	}
}

// Revenue splits flight-fee revenue by stream.
func Revenue(f entity.FinancialBreakdown, b entity.Bound) Section {
	s := Section{
		Title:   fmt.Sprintf("Revenue Mix (%s)", b.Label()),
		Sheet:   "Revenue Mix",
		Headers: []string{"Stream", "Revenue", "Share"},
	}
	for _, st := range f.Streams() {
		s.Rows = append(s.Rows, []string{st.Name, Currency(st.Revenue), Percent(st.Revenue / f.TotalFlightFees * 100)})
	}
	return s
}
