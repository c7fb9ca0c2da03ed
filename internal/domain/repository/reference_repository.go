package repository

import (
	"context"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

// ReferenceRepository loads reference data that lives outside the scenario:
// the per-state scorecard workbook and the list of region names.
type ReferenceRepository interface {
	LoadScorecard(path, sheet string) (entity.Scorecard, error)
	// LoadRegionNames reads a GeoJSON feature collection from a file path or
	// an http(s) URL and returns each feature's properties.name.
	LoadRegionNames(ctx context.Context, source string) ([]string, error)
}
