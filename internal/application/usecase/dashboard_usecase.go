package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/repository"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/scorecard"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/numeric"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	publishRepo   repository.PublishRepository
	exportRepo    repository.ExportRepository
	configRepo    repository.ConfigRepository
	referenceRepo repository.ReferenceRepository
	console       types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	publishRepo repository.PublishRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	referenceRepo repository.ReferenceRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		publishRepo:   publishRepo,
		exportRepo:    exportRepo,
		configRepo:    configRepo,
		referenceRepo: referenceRepo,
		console:       console,
	}
}

// LoadConfig reads the configuration file named in args, or the defaults
// when none is given, and applies the command-line overrides.
func (uc *DashboardUseCase) LoadConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := types.DefaultConfig()
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		uc.console.LogInfo("Loaded scenario from %s", args.ConfigFile)
	}

	if args.Bound != "" {
		cfg.Bound = args.Bound
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		cfg.Dir = args.Dir
	}
	if args.OtherFraction != nil {
		cfg.Scenario.OtherFraction = *args.OtherFraction
	}
	if args.PublishBucket != "" {
		cfg.Publish.Bucket = args.PublishBucket
	}
	if args.PublishPrefix != "" {
		cfg.Publish.Prefix = args.PublishPrefix
	}
	if args.AWSProfile != "" {
		cfg.Publish.Profile = args.AWSProfile
	}
	if args.AWSRegion != "" {
		cfg.Publish.Region = args.AWSRegion
	}
	if args.Workbook != "" {
		cfg.Scorecard.Workbook = args.Workbook
	}
	if args.Sheet != "" {
		cfg.Scorecard.Sheet = args.Sheet
	}
	if args.GeoJSON != "" {
		cfg.Scorecard.GeoJSON = args.GeoJSON
	}
	return cfg, nil
}

// RunDashboard calculates the scenario, renders every section for the
// selected bound, writes the requested reports and publishes them.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.LoadConfig(args)
	if err != nil {
		return err
	}

	bound, err := entity.ParseBound(cfg.Bound)
	if err != nil {
		return err
	}

	status := uc.console.Status("Calculating scenario...")
	result := Calculate(cfg.Scenario)
	status.Stop()

	uc.displayDashboard(result, bound)

	paths := uc.exportDashboard(result, bound, cfg)

	if cfg.Publish.Bucket == "" {
		return nil
	}
	if len(paths) == 0 {
		uc.console.LogWarning("Publish bucket %s set but no reports were written; use --report-type", cfg.Publish.Bucket)
		return nil
	}
	return uc.publish(ctx, cfg.Publish, result.RunID, paths)
}

func (uc *DashboardUseCase) displayDashboard(result *entity.DashboardResult, bound entity.Bound) {
	for _, section := range report.Build(result, bound) {
		uc.console.Println()
		uc.console.Println(section.Title)
		uc.console.Print(uc.createDisplayTable(section).Render())
	}

	uc.console.DisplayScenarioBars("Flight Scenarios (total)", curvePoints(result.FlightCurve))
	uc.console.DisplayScenarioBars("Fleet Scenarios (total)", curvePoints(result.FleetCurve))

	total := result.Rollup.Total
	flights, uavs := total.LowerFlights, total.LowerUAVs
	if bound == entity.BoundHigh {
		flights, uavs = total.UpperFlights, total.UpperUAVs
	}
	uc.console.LogSuccess("%s: %s annual flights flown by %s UAVs, about %s flights per UAV",
		bound.Label(),
		report.Number(flights),
		report.Number(numeric.CeilDiv(uavs, 1)),
		report.Number(numeric.CeilDiv(flights, uavs)),
	)
	fin := result.Financial.Select(bound)
	uc.console.LogInfo("Total city revenue %s, %s jobs supported", report.Currency(fin.TotalCityRevenue), report.Number(fin.Jobs))
}

func (uc *DashboardUseCase) createDisplayTable(section report.Section) types.TableInterface {
	table := uc.console.CreateTable()
	for _, h := range section.Headers {
		table.AddColumn(h)
	}
	for _, row := range section.Rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		table.AddRow(cells...)
	}
	return table
}

func curvePoints(points []entity.ScenarioPoint) []types.CurvePoint {
	out := make([]types.CurvePoint, len(points))
	for i, p := range points {
		out[i] = types.CurvePoint{Label: p.Label, Value: p.Total}
	}
	return out
}

// exportDashboard writes one file per requested report type and returns
// the paths that were written. Failures are logged and skipped.
func (uc *DashboardUseCase) exportDashboard(result *entity.DashboardResult, bound entity.Bound, cfg *types.Config) []string {
	if len(cfg.ReportType) == 0 {
		return nil
	}

	var paths []string
	progress := uc.console.Progress(cfg.ReportType)
	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(result, bound, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(result, bound, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(result, bound, cfg.ReportName, cfg.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(result, bound, cfg.ReportName, cfg.Dir)
		default:
			err = fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}
		progress.Increment()

		if err != nil {
			uc.console.LogError("Failed to export dashboard to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		paths = append(paths, path)
	}
	progress.Stop()

	for _, path := range paths {
		uc.console.LogSuccess("Saved report: %s", path)
	}
	return paths
}

func (uc *DashboardUseCase) publish(ctx context.Context, target types.PublishConfig, runID string, paths []string) error {
	if target.Profile != "" && !contains(uc.publishRepo.GetAWSProfiles(), target.Profile) {
		uc.console.LogWarning("Profile '%s' not found in AWS configuration", target.Profile)
	}

	status := uc.console.Status(fmt.Sprintf("Publishing %d report(s) to s3://%s...", len(paths), target.Bucket))
	uris, err := uc.publishRepo.Publish(ctx, target, runID, paths)
	status.Stop()

	for _, uri := range uris {
		uc.console.LogSuccess("Published %s", uri)
	}
	if err != nil {
		return fmt.Errorf("publishing reports: %w", err)
	}
	return nil
}

// RunScorecard loads the state scorecard, ranks it, optionally lines it up
// with a region list and renders it ordered by the selected factor.
func (uc *DashboardUseCase) RunScorecard(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.LoadConfig(args)
	if err != nil {
		return err
	}
	if cfg.Scorecard.Workbook == "" {
		return types.ErrNoWorkbook
	}
	if cfg.Scorecard.Sheet == "" {
		cfg.Scorecard.Sheet = types.DefaultScorecardSheet
	}

	factor := entity.FactorOverall2025
	if args.Factor != "" {
		f, ok := scorecard.ParseFactor(args.Factor)
		if !ok {
			return fmt.Errorf("%w: %s", types.ErrUnknownFactor, args.Factor)
		}
		factor = f
	}

	status := uc.console.Status("Loading scorecard...")
	card, err := uc.referenceRepo.LoadScorecard(cfg.Scorecard.Workbook, cfg.Scorecard.Sheet)
	if err != nil {
		status.Stop()
		return err
	}

	var names []string
	if cfg.Scorecard.GeoJSON != "" {
		status.Update("Loading region names...")
		names, err = uc.referenceRepo.LoadRegionNames(ctx, cfg.Scorecard.GeoJSON)
		if err != nil {
			status.Stop()
			return err
		}
	}
	status.Stop()

	card = RankScorecard(card, factor, names)

	uc.console.Println(fmt.Sprintf("State Scorecard: %s (by %s)", card.Sheet, factor))
	uc.console.Print(uc.createDisplayTable(scorecardSection(card, factor)).Render())

	unscored := 0
	for _, r := range card.Regions {
		if !r.HasScore {
			unscored++
		}
	}
	if unscored > 0 {
		uc.console.LogWarning("%d region(s) have no score in sheet %q", unscored, card.Sheet)
	}

	uc.exportScorecard(card, cfg)
	return nil
}

func (uc *DashboardUseCase) exportScorecard(card entity.Scorecard, cfg *types.Config) {
	name := cfg.ReportName + "-scorecard"
	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportScorecardToCSV(card, name, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportScorecardToJSON(card, name, cfg.Dir)
		default:
			err = fmt.Errorf("%w for scorecard: %s", types.ErrUnsupportedReportType, reportType)
		}
		if err != nil {
			if errors.Is(err, types.ErrUnsupportedReportType) {
				uc.console.LogWarning("%s", err)
			} else {
				uc.console.LogError("Failed to export scorecard to %s: %s", strings.ToUpper(reportType), err)
			}
			continue
		}
		uc.console.LogSuccess("Saved scorecard: %s", path)
	}
}

// InitConfig writes the default configuration to path. The format follows
// the file extension.
func (uc *DashboardUseCase) InitConfig(path string) error {
	if err := uc.configRepo.SaveConfigFile(path, types.DefaultConfig()); err != nil {
		return err
	}
	uc.console.LogSuccess("Wrote default scenario to %s", path)
	return nil
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
