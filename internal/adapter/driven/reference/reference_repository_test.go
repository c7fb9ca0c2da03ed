package reference

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

const statesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Alabama"}, "geometry": null},
    {"type": "Feature", "properties": {"name": "Alaska"}, "geometry": null},
    {"type": "Feature", "properties": {}, "geometry": null}
  ]
}`

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		row := row
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "scorecard.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScorecard(t *testing.T) {
	path := writeWorkbook(t, types.DefaultScorecardSheet, [][]interface{}{
		{"State", "Overall Score 2025", "Baseline Overall Score 2023", "Airspace Lease provisions permission (30%) ", "Sandbox (10%)"},
		{"Texas", 90.5, 80, 30, nil},
		{nil, 10, 10, 10, 10},
		{"Ohio", "n/a", 55, nil, 10},
	})

	card, err := NewReferenceRepository().LoadScorecard(path, types.DefaultScorecardSheet)
	if err != nil {
		t.Fatalf("LoadScorecard: %v", err)
	}
	if card.Sheet != types.DefaultScorecardSheet || len(card.Regions) != 2 {
		t.Fatalf("card = %+v", card)
	}

	texas := card.Regions[0]
	if texas.Name != "Texas" || !texas.HasScore {
		t.Errorf("texas = %+v", texas)
	}
	if texas.Score(entity.FactorOverall2025) != 90.5 || texas.Score(entity.FactorAirspaceLease) != 30 {
		t.Errorf("texas scores = %v", texas.Scores)
	}
	if texas.Score(entity.FactorSandbox) != 0 || texas.Score(entity.FactorJobs) != 0 {
		t.Errorf("missing cells and columns should read 0: %v", texas.Scores)
	}

	ohio := card.Regions[1]
	if ohio.Score(entity.FactorOverall2025) != 0 || ohio.Score(entity.FactorBaseline2023) != 55 || ohio.Score(entity.FactorSandbox) != 10 {
		t.Errorf("ohio scores = %v", ohio.Scores)
	}
}

func TestLoadScorecardErrors(t *testing.T) {
	repo := NewReferenceRepository()

	path := writeWorkbook(t, "Sheet1", [][]interface{}{{"State"}, {"Texas"}})
	if _, err := repo.LoadScorecard(path, types.DefaultScorecardSheet); !errors.Is(err, types.ErrSheetNotFound) {
		t.Errorf("err = %v, want ErrSheetNotFound", err)
	}

	path = writeWorkbook(t, "Sheet1", [][]interface{}{{"Region", "Overall Score 2025"}, {"Texas", 1}})
	if _, err := repo.LoadScorecard(path, "Sheet1"); !errors.Is(err, types.ErrColumnNotFound) {
		t.Errorf("err = %v, want ErrColumnNotFound", err)
	}

	if _, err := repo.LoadScorecard(filepath.Join(t.TempDir(), "missing.xlsx"), "Sheet1"); err == nil {
		t.Error("expected error for missing workbook")
	}
}

func TestLoadRegionNamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.json")
	if err := os.WriteFile(path, []byte(statesGeoJSON), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := NewReferenceRepository().LoadRegionNames(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadRegionNames: %v", err)
	}
	if want := []string{"Alabama", "Alaska"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestLoadRegionNamesFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/states.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statesGeoJSON))
	}))
	defer server.Close()

	repo := NewReferenceRepository()
	names, err := repo.LoadRegionNames(context.Background(), server.URL+"/states.json")
	if err != nil {
		t.Fatalf("LoadRegionNames: %v", err)
	}
	if len(names) != 2 || names[0] != "Alabama" {
		t.Errorf("names = %v", names)
	}

	if _, err := repo.LoadRegionNames(context.Background(), server.URL+"/missing.json"); !errors.Is(err, types.ErrRegionFetch) {
		t.Errorf("err = %v, want ErrRegionFetch", err)
	}
}

func TestLoadRegionNamesInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"features": [`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReferenceRepository().LoadRegionNames(context.Background(), path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 30% ", 30},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		if got := parseScore(tt.in); got != tt.want {
			t.Errorf("parseScore(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
