package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vendalytics/bling-lucro-go/internal/domain/coerce"
	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
	"github.com/vendalytics/bling-lucro-go/internal/domain/report"
	"github.com/vendalytics/bling-lucro-go/internal/domain/repository"
	"github.com/vendalytics/bling-lucro-go/internal/domain/schema"
	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
)

// máximo de linhas da prévia no terminal; o relatório completo fica
// nos arquivos exportados.
const previewMaxRows = 15

// ReportUseCase handles the main report generation functionality.
type ReportUseCase struct {
	inputRepo  repository.InputRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewReportUseCase cria um novo caso de uso de relatório.
func NewReportUseCase(
	inputRepo repository.InputRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		inputRepo:  inputRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// RunReport executa a geração completa do relatório: leitura, resolução de
// cabeçalhos, coerção, agregação, rateio, cruzamento de custos e exportação.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	status := uc.console.Status("Lendo export de vendas...")

	salesTable, err := uc.inputRepo.LoadSalesTable(args.VendasFile)
	if err != nil {
		status.Stop()
		return fmt.Errorf("falha ao ler o export de vendas: %w", err)
	}

	status.Update("Lendo planilha de custos...")
	costTable, err := uc.inputRepo.LoadCostTable(args.CustosFile)
	if err != nil {
		status.Stop()
		return fmt.Errorf("falha ao ler a planilha de custos: %w", err)
	}

	status.Update("Resolvendo cabeçalhos...")
	salesMapping, err := schema.ResolveSales(salesTable.Headers)
	if err != nil {
		status.Stop()
		return err
	}
	costMapping, err := schema.ResolveCost(costTable.Headers)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Convertendo valores...")
	salesLines, err := coerce.SalesTable(salesTable, salesMapping, coerce.Options{
		ManterZerosNF: args.ManterZerosNF,
	})
	if err != nil {
		status.Stop()
		return err
	}
	costs, err := coerce.CostTable(costTable, costMapping)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Agregando e rateando...")
	opts := report.Options{
		PrecoMedio:  args.PrecoMedio,
		RateioSoma:  args.RateioSoma,
		FreteMinimo: args.FreteMinimo,
		ImpostoBase: report.ImpostoBase(args.ImpostoBase),
		Aliquota:    args.Aliquota,
	}
	aggregated := report.Aggregate(salesLines, opts)
	prorated := report.Prorate(aggregated, opts)
	rows, semCusto := report.Assemble(prorated, costs, opts)

	status.Stop()

	uc.console.LogInfo("Vendas: %d linhas lidas, %d após agregação por (NF, SKU)", len(salesLines), len(rows))
	for _, sku := range semCusto {
		uc.console.LogWarning("SKU sem custo cadastrado: %s (custo e lucro ficam N/D)", sku)
	}

	summary := report.BuildSummary(rows, semCusto)

	uc.displayPreviewTable(rows)
	uc.displaySummary(summary)

	if args.Trend {
		uc.displayTrend(summary)
	}

	return uc.exportReports(rows, summary, args)
}

// displayPreviewTable exibe as primeiras linhas do relatório no terminal.
func (uc *ReportUseCase) displayPreviewTable(rows []entity.ReportRow) {
	table := uc.console.CreateTable()
	table.AddColumn("Data")
	table.AddColumn("NF")
	table.AddColumn("SKU")
	table.AddColumn("Qtd")
	table.AddColumn("Recebido")
	table.AddColumn("Custo")
	table.AddColumn("Lucro")

	shown := rows
	if len(shown) > previewMaxRows {
		shown = shown[:previewMaxRows]
	}
	for _, row := range shown {
		table.AddRow(
			row.DataVenda,
			row.NF,
			row.SKU,
			strconv.FormatFloat(row.Quantidade, 'f', -1, 64),
			fmt.Sprintf("R$ %.2f", row.ValorRecebido),
			formatOptional(row.CustoTotal),
			formatOptional(row.Lucro),
		)
	}

	uc.console.Println(table.Render())
	if len(rows) > previewMaxRows {
		uc.console.LogInfo("Prévia limitada a %d de %d linhas", previewMaxRows, len(rows))
	}
}

// displaySummary exibe o resumo executivo no terminal.
func (uc *ReportUseCase) displaySummary(summary *entity.ReportSummary) {
	uc.console.Println()
	uc.console.LogInfo("Notas fiscais: %d | Produtos distintos: %d", summary.TotalNotas, summary.ProdutosDistintos)
	uc.console.LogInfo("Unidades vendidas: %s | Recebido: R$ %.2f | Lucro: R$ %.2f",
		strconv.FormatFloat(summary.TotalUnidades, 'f', -1, 64),
		summary.TotalRecebido,
		summary.LucroTotal,
	)
	if summary.TopLucro != nil && summary.TopLucro.Lucro != nil {
		uc.console.LogInfo("Maior lucro: %s (NF %s) com R$ %.2f",
			summary.TopLucro.SKU, summary.TopLucro.NF, *summary.TopLucro.Lucro)
	}
	if len(summary.SKUsSemCusto) > 0 {
		uc.console.LogWarning("%d SKU(s) sem custo: %s",
			len(summary.SKUsSemCusto), strings.Join(summary.SKUsSemCusto, ", "))
	}
}

// displayTrend exibe as barras de lucro por data de venda.
func (uc *ReportUseCase) displayTrend(summary *entity.ReportSummary) {
	daily := make([]types.DailyProfit, 0, len(summary.LucroPorData))
	for _, dl := range summary.LucroPorData {
		daily = append(daily, types.DailyProfit{Data: dl.Data, Lucro: dl.Lucro})
	}
	uc.console.DisplayProfitTrend(daily)
}

// exportReports grava o relatório em cada formato pedido.
func (uc *ReportUseCase) exportReports(rows []entity.ReportRow, summary *entity.ReportSummary, args *types.CLIArgs) error {
	var firstErr error
	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "xlsx":
			path, err := uc.exportRepo.ExportReportToXLSX(rows, args.Aliquota, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar XLSX: %v", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				uc.console.LogSuccess("Relatório exportado para XLSX: %s", path)
			}
		case "csv":
			path, err := uc.exportRepo.ExportReportToCSV(rows, args.Aliquota, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar CSV: %v", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				uc.console.LogSuccess("Relatório exportado para CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportReportToJSON(rows, summary, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar JSON: %v", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				uc.console.LogSuccess("Relatório exportado para JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportAnalyticReportToPDF(summary, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Falha ao exportar PDF: %v", err)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				uc.console.LogSuccess("Relatório analítico exportado para PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Formato de relatório desconhecido: %s (use xlsx, csv, json ou pdf)", reportType)
		}
	}
	return firstErr
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/D"
	}
	return fmt.Sprintf("R$ %.2f", *v)
}
