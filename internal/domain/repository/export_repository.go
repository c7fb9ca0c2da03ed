package repository

import (
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

// ExportRepository writes dashboard and scorecard reports to disk and
// returns the absolute path of each file.
type ExportRepository interface {
	ExportToCSV(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error)
	ExportToJSON(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error)
	ExportToPDF(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error)
	ExportToXLSX(result *entity.DashboardResult, bound entity.Bound, filename, outputDir string) (string, error)

	// Scorecard
	ExportScorecardToCSV(card entity.Scorecard, filename, outputDir string) (string, error)
	ExportScorecardToJSON(card entity.Scorecard, filename, outputDir string) (string, error)
}
