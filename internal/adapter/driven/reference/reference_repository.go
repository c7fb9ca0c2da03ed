// Package reference reads the state scorecard workbook and GeoJSON region
// lists.
package reference

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mdobak/go-xerrors"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/repository"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
)

const stateColumn = "State"

// factorColumns maps each factor to its workbook header. Headers are matched
// after trimming, since several carry trailing spaces in the source file.
var factorColumns = map[entity.ScoreFactor]string{
	entity.FactorOverall2025:   "Overall Score 2025",
	entity.FactorBaseline2023:  "Baseline Overall Score 2023",
	entity.FactorAirspaceLease: "Airspace Lease provisions permission (30%)",
	entity.FactorEasement:      "Express Avigational Easement (25%)",
	entity.FactorTaskForce:     "Drone Task Force or Program Office (20%)",
	entity.FactorSandbox:       "Sandbox (10%)",
	entity.FactorJobs:          "Jobs Score (5 %)",
	entity.FactorAirRights:     "Air rights vested in landowners (10%)",
}

// ReferenceRepositoryImpl implementa o ReferenceRepository.
type ReferenceRepositoryImpl struct {
	client *retryablehttp.Client
}

// NewReferenceRepository cria um novo repositório de dados de referência.
func NewReferenceRepository() repository.ReferenceRepository {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil
	return &ReferenceRepositoryImpl{client: client}
}

// LoadScorecard reads one sheet of the scorecard workbook. Rows without a
// state name are skipped and empty or non-numeric score cells read as 0.
func (r *ReferenceRepositoryImpl) LoadScorecard(path, sheet string) (entity.Scorecard, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return entity.Scorecard{}, xerrors.New(fmt.Errorf("error opening scorecard workbook %s: %w", path, err))
	}
	defer f.Close()

	if !hasSheet(f.GetSheetList(), sheet) {
		return entity.Scorecard{}, xerrors.New(fmt.Errorf("%w: %q in %s", types.ErrSheetNotFound, sheet, path))
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return entity.Scorecard{}, xerrors.New(fmt.Errorf("error reading sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return entity.Scorecard{}, xerrors.New(fmt.Errorf("%w: %q in empty sheet %q", types.ErrColumnNotFound, stateColumn, sheet))
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}
	stateIdx, ok := index[stateColumn]
	if !ok {
		return entity.Scorecard{}, xerrors.New(fmt.Errorf("%w: %q in sheet %q", types.ErrColumnNotFound, stateColumn, sheet))
	}

	card := entity.Scorecard{Sheet: sheet}
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, stateIdx))
		if name == "" {
			continue
		}
		region := entity.RegionScore{
			Name:     name,
			Scores:   make(map[entity.ScoreFactor]float64, len(factorColumns)),
			HasScore: true,
		}
		for _, factor := range entity.ScoreFactors {
			col, ok := index[factorColumns[factor]]
			if !ok {
				region.Scores[factor] = 0
				continue
			}
			region.Scores[factor] = parseScore(cell(row, col))
		}
		card.Regions = append(card.Regions, region)
	}
	return card, nil
}

// LoadRegionNames returns the name of every feature, in file order.
func (r *ReferenceRepositoryImpl) LoadRegionNames(ctx context.Context, source string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = r.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = xerrors.New(fmt.Errorf("error reading region file %s: %w", source, err))
		}
	}
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, xerrors.New(fmt.Errorf("region source %s is not valid JSON", source))
	}

	var names []string
	for _, name := range gjson.GetBytes(data, "features.#.properties.name").Array() {
		if n := strings.TrimSpace(name.String()); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}

func (r *ReferenceRepositoryImpl) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, xerrors.New(fmt.Errorf("error creating request for %s: %w", url, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, xerrors.New(fmt.Errorf("%w: %s: %v", types.ErrRegionFetch, url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.New(fmt.Errorf("%w: %s returned %s", types.ErrRegionFetch, url, resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.New(fmt.Errorf("error reading response from %s: %w", url, err))
	}
	return body, nil
}

func hasSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseScore(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
