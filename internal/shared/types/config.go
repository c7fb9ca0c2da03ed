package types

import "github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"

// DefaultScorecardSheet is the workbook sheet holding the current overall scores.
const DefaultScorecardSheet = "2025 Overall"

// Config represents the application configuration that can be loaded from a file.
// Report settings sit next to the scenario so one file drives a whole run.
type Config struct {
	ReportName string          `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string        `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string          `json:"dir" yaml:"dir" toml:"dir"`
	Bound      string          `json:"bound" yaml:"bound" toml:"bound"`
	Publish    PublishConfig   `json:"publish" yaml:"publish" toml:"publish"`
	Scorecard  ScorecardConfig `json:"scorecard" yaml:"scorecard" toml:"scorecard"`
	Scenario   entity.Scenario `json:"scenario" yaml:"scenario" toml:"scenario"`
}

// PublishConfig selects where exported reports are uploaded.
type PublishConfig struct {
	Bucket  string `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix  string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
	Region  string `json:"region" yaml:"region" toml:"region"`
}

// ScorecardConfig points at the state scorecard sources.
type ScorecardConfig struct {
	Workbook string `json:"workbook" yaml:"workbook" toml:"workbook"`
	Sheet    string `json:"sheet" yaml:"sheet" toml:"sheet"`
	GeoJSON  string `json:"geojson" yaml:"geojson" toml:"geojson"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		ReportName: "uav-volume",
		Bound:      string(entity.BoundLow),
		Publish:    PublishConfig{Prefix: "reports"},
		Scorecard:  ScorecardConfig{Sheet: DefaultScorecardSheet},
		Scenario:   entity.DefaultScenario(),
	}
}
