package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skytrade/uav-volume-dashboard-go/internal/application/usecase"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/version"
)

// Environment variables that provide flag defaults.
const (
	EnvBucket  = "UAV_VOLUME_BUCKET"
	EnvPrefix  = "UAV_VOLUME_PREFIX"
	EnvProfile = "AWS_PROFILE"
	EnvRegion  = "AWS_REGION"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "uav-volume",
		Short:         "UAV volume scenario dashboard",
		Long:          "Estimates annual UAV flights and fleet size per use case, rolls them up by vehicle size and derives the financial impact of a scenario.",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "UAV Volume Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON scenario file")
	flags.StringP("bound", "b", "", "Bound shown in size, financial and revenue tables: low or high (default low)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.Float64("other-fraction", entity.DefaultOtherFraction, "Share of the grand total attributed to uncategorised use")
	flags.String("publish-bucket", os.Getenv(EnvBucket), "S3 bucket to upload the reports to")
	flags.String("publish-prefix", os.Getenv(EnvPrefix), "Key prefix for uploaded reports")
	flags.String("aws-profile", os.Getenv(EnvProfile), "AWS profile used for publishing")
	flags.String("aws-region", os.Getenv(EnvRegion), "AWS region used for publishing")
	flags.Bool("debug", false, "Print stack traces for errors")

	scorecardCmd := &cobra.Command{
		Use:   "scorecard",
		Short: "Rank states by their drone readiness scores",
		Args:  cobra.NoArgs,
		RunE:  app.runScorecard,
	}
	scorecardCmd.Flags().String("workbook", "", "Path to the scorecard XLSX workbook")
	scorecardCmd.Flags().String("sheet", "", "Workbook sheet to read (default \""+types.DefaultScorecardSheet+"\")")
	scorecardCmd.Flags().String("geojson", "", "GeoJSON file path or http(s) URL listing the regions to show")
	scorecardCmd.Flags().String("factor", string(entity.FactorOverall2025), "Factor used to order the table")

	initCmd := &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the default scenario to a TOML, YAML, or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runInitConfig,
	}

	rootCmd.AddCommand(scorecardCmd, initCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// Debug reports whether --debug was given.
func (app *CLIApp) Debug() bool {
	debug, _ := app.rootCmd.PersistentFlags().GetBool("debug")
	return debug
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	bound, _ := flags.GetString("bound")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	publishBucket, _ := flags.GetString("publish-bucket")
	publishPrefix, _ := flags.GetString("publish-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")
	debug, _ := flags.GetBool("debug")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	// Only an explicit flag overrides the scenario file.
	var otherFraction *float64
	if flags.Changed("other-fraction") {
		v, err := flags.GetFloat64("other-fraction")
		if err != nil {
			return nil, err
		}
		otherFraction = &v
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Bound:         bound,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		OtherFraction: otherFraction,
		Debug:         debug,
		PublishBucket: publishBucket,
		PublishPrefix: publishPrefix,
		AWSProfile:    awsProfile,
		AWSRegion:     awsRegion,
	}

	if cmd.Name() == "scorecard" {
		args.Workbook, _ = flags.GetString("workbook")
		args.Sheet, _ = flags.GetString("sheet")
		args.GeoJSON, _ = flags.GetString("geojson")
		args.Factor, _ = flags.GetString("factor")
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	ctx := cmd.Context()
	go version.CheckLatestVersion(ctx, app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

func (app *CLIApp) runScorecard(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunScorecard(cmd.Context(), cliArgs)
}

func (app *CLIApp) runInitConfig(_ *cobra.Command, args []string) error {
	return app.dashboardUseCase.InitConfig(args[0])
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetArgs replaces the command-line arguments, for tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}
