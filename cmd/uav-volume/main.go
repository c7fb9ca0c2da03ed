package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"

	"github.com/skytrade/uav-volume-dashboard-go/internal/adapter/driven/aws"
	"github.com/skytrade/uav-volume-dashboard-go/internal/adapter/driven/config"
	"github.com/skytrade/uav-volume-dashboard-go/internal/adapter/driven/export"
	"github.com/skytrade/uav-volume-dashboard-go/internal/adapter/driven/reference"
	"github.com/skytrade/uav-volume-dashboard-go/internal/adapter/driving/cli"
	"github.com/skytrade/uav-volume-dashboard-go/internal/application/usecase"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/console"
	"github.com/skytrade/uav-volume-dashboard-go/pkg/version"
)

func main() {
	// .env é opcional; variáveis já definidas no ambiente têm prioridade
	_ = godotenv.Load()

	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	publishRepo := aws.NewAWSRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	referenceRepo := reference.NewReferenceRepository()
	consoleImpl := console.NewConsole()

	dashboardUseCase := usecase.NewDashboardUseCase(
		publishRepo,
		exportRepo,
		configRepo,
		referenceRepo,
		consoleImpl,
	)
	app.SetDashboardUseCase(dashboardUseCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Execute(ctx)
	stop()

	if err != nil {
		if app.Debug() {
			fmt.Fprint(os.Stderr, xerrors.Sprint(err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
