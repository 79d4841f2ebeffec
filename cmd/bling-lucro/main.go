package main

import (
	"fmt"
	"os"

	"github.com/vendalytics/bling-lucro-go/internal/adapter/driven/config"
	"github.com/vendalytics/bling-lucro-go/internal/adapter/driven/export"
	"github.com/vendalytics/bling-lucro-go/internal/adapter/driven/input"
	"github.com/vendalytics/bling-lucro-go/internal/adapter/driving/cli"
	"github.com/vendalytics/bling-lucro-go/internal/application/usecase"
	"github.com/vendalytics/bling-lucro-go/pkg/console"
	"github.com/vendalytics/bling-lucro-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	inputRepo := input.NewInputRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo)

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		inputRepo,
		exportRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
