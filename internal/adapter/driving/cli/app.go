package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vendalytics/bling-lucro-go/internal/application/usecase"
	"github.com/vendalytics/bling-lucro-go/internal/domain/repository"
	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
	"github.com/vendalytics/bling-lucro-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "bling-lucro",
		Short:   "Gerador de relatório de lucro a partir do export de vendas do Bling",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Bling Lucro version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("vendas", "v", "", "CSV de vendas exportado do Bling (ponto e vírgula, Latin-1)")
	rootCmd.PersistentFlags().StringP("custos", "c", "", "Planilha de custos (.xlsx, uma ou mais abas)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "RELATORIO_FINAL", "Nome base dos arquivos de saída (sem extensão)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"xlsx"}, "Formatos de saída: xlsx, csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Diretório dos arquivos de saída (padrão: diretório atual)")
	rootCmd.PersistentFlags().Float64("frete-minimo", 0, "Preço unitário mínimo para a linha participar do rateio de frete (0 = todas as linhas; 79.90 é o limiar usual)")
	rootCmd.PersistentFlags().Bool("rateio-soma", false, "Soma comissão/frete das linhas do grupo em vez de usar o primeiro valor")
	rootCmd.PersistentFlags().Bool("preco-medio", false, "Usa a média do preço unitário dentro do grupo (NF, SKU)")
	rootCmd.PersistentFlags().String("imposto-base", "recebido", "Base de cálculo do imposto: recebido | total")
	rootCmd.PersistentFlags().Float64("aliquota", 0.09, "Alíquota do imposto")
	rootCmd.PersistentFlags().Bool("manter-zeros-nf", false, "Preserva zeros à esquerda no número da NF")
	rootCmd.PersistentFlags().Bool("trend", false, "Exibe barras de lucro por data de venda no terminal")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs monta o CLIArgs mesclando o arquivo de configuração (quando
// houver) com as flags: flag explicitamente passada vence o valor do
// arquivo.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	vendas, _ := flags.GetString("vendas")
	custos, _ := flags.GetString("custos")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	freteMinimo, _ := flags.GetFloat64("frete-minimo")
	rateioSoma, _ := flags.GetBool("rateio-soma")
	precoMedio, _ := flags.GetBool("preco-medio")
	impostoBase, _ := flags.GetString("imposto-base")
	aliquota, _ := flags.GetFloat64("aliquota")
	manterZerosNF, _ := flags.GetBool("manter-zeros-nf")
	trend, _ := flags.GetBool("trend")

	if configFile != "" {
		config, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		if !flags.Changed("vendas") && config.VendasFile != "" {
			vendas = config.VendasFile
		}
		if !flags.Changed("custos") && config.CustosFile != "" {
			custos = config.CustosFile
		}
		if !flags.Changed("report-name") && config.ReportName != "" {
			reportName = config.ReportName
		}
		if !flags.Changed("report-type") && len(config.ReportType) > 0 {
			reportType = config.ReportType
		}
		if !flags.Changed("dir") && config.Dir != "" {
			dir = config.Dir
		}
		if !flags.Changed("frete-minimo") && config.FreteMinimo != 0 {
			freteMinimo = config.FreteMinimo
		}
		if !flags.Changed("rateio-soma") {
			rateioSoma = config.RateioSoma
		}
		if !flags.Changed("preco-medio") {
			precoMedio = config.PrecoMedio
		}
		if !flags.Changed("imposto-base") && config.ImpostoBase != "" {
			impostoBase = config.ImpostoBase
		}
		if !flags.Changed("aliquota") && config.Aliquota != 0 {
			aliquota = config.Aliquota
		}
		if !flags.Changed("manter-zeros-nf") {
			manterZerosNF = config.ManterZerosNF
		}
		if !flags.Changed("trend") {
			trend = config.Trend
		}
	}

	if vendas == "" {
		return nil, fmt.Errorf("informe o CSV de vendas com --vendas (ou no arquivo de configuração)")
	}
	if custos == "" {
		return nil, fmt.Errorf("informe a planilha de custos com --custos (ou no arquivo de configuração)")
	}
	if impostoBase != "recebido" && impostoBase != "total" {
		return nil, fmt.Errorf("base de imposto inválida: %q (use recebido ou total)", impostoBase)
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		VendasFile:    vendas,
		CustosFile:    custos,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		FreteMinimo:   freteMinimo,
		RateioSoma:    rateioSoma,
		PrecoMedio:    precoMedio,
		ImpostoBase:   impostoBase,
		Aliquota:      aliquota,
		ManterZerosNF: manterZerosNF,
		Trend:         trend,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
