package export

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
)

func newTestRepository() *ExportRepositoryImpl {
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	return &ExportRepositoryImpl{now: func() time.Time { return fixed }}
}

func sampleResult() *entity.DashboardResult {
	res := &entity.DashboardResult{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		Year:        2049,
		Rollup: entity.Rollup{
			Categories: []entity.CategoryRollup{{Name: "Recreational Use", LowerFlights: 917280, LowerPct: 100, FlightsPerUAV: 24}},
			Other:      entity.CategoryRollup{Name: entity.OtherRowName},
			Total:      entity.CategoryRollup{Name: entity.TotalRowName, LowerFlights: 917280},
		},
		Financial: entity.FinancialResult{
			Low: entity.FinancialBreakdown{TotalFlightFees: 100, RevenueDelivery: 100},
		},
	}
	res.Estimates.Recreational.UseCase = entity.UseCaseRecreational
	res.Estimates.Recreational.Flights = entity.BoundedEstimate{Lower: 917280, Upper: 2076360}
	res.Estimates.Recreational.FlightsPerUAV = 24
	res.Estimates.Emergency.Purposes = []entity.PurposeResult{{Name: "Fire", AvgAreaPerFlight: math.NaN()}}
	res.Estimates.Emergency.TotalUAVsMax = math.Inf(1)
	return res
}

func TestGenerateFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	got, err := newTestRepository().generateFilename("uav-volume", dir, "csv")
	if err != nil {
		t.Fatalf("generateFilename: %v", err)
	}
	if want := filepath.Join(dir, "uav-volume_20250304_050607.csv"); got != want {
		t.Errorf("generateFilename = %q, want %q", got, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestExportToCSV(t *testing.T) {
	path, err := newTestRepository().ExportToCSV(sampleResult(), entity.BoundLow, "report", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToCSV: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if records[0][0] != "General Operational Model (0)" {
		t.Errorf("first record = %v", records[0])
	}

	var found bool
	for _, rec := range records {
		if rec[0] == "Recreational Use" && len(rec) > 2 && rec[1] == "917,280" && rec[2] == "2,076,360" {
			found = true
		}
	}
	if !found {
		t.Error("recreational estimate row not found in CSV")
	}
}

func TestExportToJSONWritesNullForNonFinite(t *testing.T) {
	path, err := newTestRepository().ExportToJSON(sampleResult(), entity.BoundHigh, "report", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Bound  string `json:"bound"`
		Result struct {
			RunID     string `json:"run_id"`
			Estimates struct {
				Recreational struct {
					UseCase       string   `json:"use_case"`
					FlightsPerUAV float64  `json:"flights_per_uav"`
					Flights       struct{ Lower, Upper float64 }
				} `json:"recreational"`
				Emergency struct {
					TotalUAVsMax *float64 `json:"total_uavs_max"`
					Purposes     []struct {
						Name             string   `json:"name"`
						AvgAreaPerFlight *float64 `json:"avg_area_per_flight"`
					} `json:"purposes"`
				} `json:"emergency_response"`
			} `json:"estimates"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Bound != "high" || doc.Result.RunID != "run-1" {
		t.Errorf("header = %q %q", doc.Bound, doc.Result.RunID)
	}
	rec := doc.Result.Estimates.Recreational
	if rec.UseCase != string(entity.UseCaseRecreational) || rec.FlightsPerUAV != 24 || rec.Flights.Upper != 2076360 {
		t.Errorf("recreational = %+v", rec)
	}
	em := doc.Result.Estimates.Emergency
	if em.TotalUAVsMax != nil {
		t.Errorf("infinite value should be null, got %v", *em.TotalUAVsMax)
	}
	if len(em.Purposes) != 1 || em.Purposes[0].AvgAreaPerFlight != nil {
		t.Errorf("NaN value should be null: %+v", em.Purposes)
	}
	if !strings.Contains(string(data), `"generated_at": "2025-03-04T05:06:07Z"`) {
		t.Error("timestamp should keep its RFC 3339 form")
	}
}

func TestExportToJSONKeepsFieldOrder(t *testing.T) {
	path, err := newTestRepository().ExportToJSON(sampleResult(), entity.BoundLow, "report", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	keys := []string{`"bound"`, `"result"`, `"run_id"`, `"generated_at"`, `"year"`, `"shared"`, `"estimates"`, `"financial"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(text, k)
		if i < 0 {
			t.Fatalf("key %s missing", k)
		}
		if i < last {
			t.Errorf("key %s out of declaration order", k)
		}
		last = i
	}
}

func TestJSONSafe(t *testing.T) {
	type inner struct {
		B float64 `json:"b"`
	}
	type outer struct {
		Z    float64 `json:"z"`
		inner
		A    float64 `json:"a,omitempty"`
		Skip string  `json:"-"`
		M    map[int]float64
	}

	data, err := json.Marshal(jsonSafe(outer{Z: math.NaN(), inner: inner{B: 2}, Skip: "x", M: map[int]float64{1: math.Inf(-1)}}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"z":null,"b":2,"M":{"1":null}}`; string(data) != want {
		t.Errorf("jsonSafe = %s, want %s", data, want)
	}
}

func TestExportToXLSX(t *testing.T) {
	res := sampleResult()
	path, err := newTestRepository().ExportToXLSX(res, entity.BoundLow, "report", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	sections := report.Build(res, entity.BoundLow)
	sheets := f.GetSheetList()
	if len(sheets) != len(sections) {
		t.Fatalf("got %d sheets, want %d", len(sheets), len(sections))
	}
	for _, name := range sheets {
		if name == defaultSheet {
			t.Errorf("default sheet was not removed")
		}
	}

	rows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if rows[0][0] != "Cross-Category Summary" {
		t.Errorf("title = %v", rows[0])
	}
	if rows[1][0] != "Category" || rows[2][0] != "Recreational Use" || rows[2][1] != "917,280" {
		t.Errorf("summary rows = %v", rows[:3])
	}
}

func TestExportToPDF(t *testing.T) {
	path, err := newTestRepository().ExportToPDF(sampleResult(), entity.BoundLow, "report", t.TempDir())
	if err != nil {
		t.Fatalf("ExportToPDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("output is not a PDF document")
	}
}

func TestExportScorecard(t *testing.T) {
	card := entity.Scorecard{
		Sheet: "2025 Overall",
		Regions: []entity.RegionScore{
			{Name: "Texas", Scores: map[entity.ScoreFactor]float64{entity.FactorOverall2025: 90.5}, Rank2025: 1, Rank2023: 2, Delta: 4, HasScore: true},
			{Name: "Alaska"},
		},
	}
	repo := newTestRepository()
	dir := t.TempDir()

	csvPath, err := repo.ExportScorecardToCSV(card, "scorecard", dir)
	if err != nil {
		t.Fatalf("ExportScorecardToCSV: %v", err)
	}
	file, err := os.Open(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if got := records[1][:5]; got[0] != "Texas" || got[1] != "1" || got[3] != "4" || got[4] != "90.5" {
		t.Errorf("scored row = %v", records[1])
	}
	if records[2][0] != "Alaska" || records[2][1] != "" {
		t.Errorf("unscored row = %v", records[2])
	}

	jsonPath, err := repo.ExportScorecardToJSON(card, "scorecard", dir)
	if err != nil {
		t.Fatalf("ExportScorecardToJSON: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded entity.Scorecard
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Regions) != 2 || decoded.Regions[0].Score(entity.FactorOverall2025) != 90.5 {
		t.Errorf("decoded = %+v", decoded)
	}
}
