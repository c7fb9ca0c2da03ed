package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/repository"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Funções de Exportação do Dashboard ---

func (r *ExportRepositoryImpl) ExportToCSV(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	for i, section := range report.Build(result, bound) {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
		if err := writer.Write([]string{section.Title}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
		if err := writer.Write(section.Headers); err != nil {
			return "", fmt.Errorf("error writing CSV header: %w", err)
		}
		if err := writer.WriteAll(section.Rows); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// dashboardDocument is the JSON export layout.
type dashboardDocument struct {
	Bound  entity.Bound            `json:"bound"`
	Result *entity.DashboardResult `json:"result"`
}

func (r *ExportRepositoryImpl) ExportToJSON(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error) {
	return r.writeJSON(dashboardDocument{Bound: bound, Result: result}, filename, outputDir)
}

// --- Scorecard ---

func (r *ExportRepositoryImpl) ExportScorecardToCSV(card entity.Scorecard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating scorecard CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"State", "Rank 2025", "Rank 2023", "Delta"}
	for _, f := range entity.ScoreFactors {
		headers = append(headers, string(f))
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, region := range card.Regions {
		record := []string{region.Name, "", "", ""}
		if region.HasScore {
			record[1] = strconv.Itoa(region.Rank2025)
			record[2] = strconv.Itoa(region.Rank2023)
			record[3] = strconv.FormatFloat(region.Delta, 'f', -1, 64)
		}
		for _, f := range entity.ScoreFactors {
			cell := ""
			if region.HasScore {
				cell = strconv.FormatFloat(region.Score(f), 'f', -1, 64)
			}
			record = append(record, cell)
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportScorecardToJSON(card entity.Scorecard, filename, outputDir string) (string, error) {
	return r.writeJSON(card, filename, outputDir)
}

func (r *ExportRepositoryImpl) writeJSON(v interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	// NaN and Inf have no JSON form; they are written as null.
	if err := encoder.Encode(jsonSafe(v)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
