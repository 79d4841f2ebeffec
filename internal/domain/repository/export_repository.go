package repository

import (
	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToXLSX(rows []entity.ReportRow, aliquota float64, filename, outputDir string) (string, error)
	ExportReportToCSV(rows []entity.ReportRow, aliquota float64, filename, outputDir string) (string, error)
	ExportReportToJSON(rows []entity.ReportRow, summary *entity.ReportSummary, filename, outputDir string) (string, error)

	// Relatório analítico visual: resumo executivo, barras de lucro e
	// quantidade por SKU, série de lucro por data.
	ExportAnalyticReportToPDF(summary *entity.ReportSummary, filename, outputDir string) (string, error)
}
