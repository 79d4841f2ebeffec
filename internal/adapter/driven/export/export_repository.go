package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
	"github.com/vendalytics/bling-lucro-go/internal/domain/repository"
)

// naoDisponivel marca custo/lucro indefinidos nas saídas tabulares (SKU sem
// correspondência na planilha de custos).
const naoDisponivel = "N/D"

const sheetName = "Relatório"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// reportHeaders devolve os cabeçalhos do relatório na ordem fixa de saída.
func reportHeaders(aliquota float64) []string {
	return []string{
		"Data da Venda",
		"NF",
		"SKU",
		"Descrição do Produto",
		"Quantidade",
		"Preço Unitário",
		"Preço Total",
		"Valor Recebido",
		"Custo",
		fmt.Sprintf("Imposto (%s%%)", strconv.FormatFloat(aliquota*100, 'f', -1, 64)),
		"Lucro",
	}
}

// --- Exportação tabular ---

func (r *ExportRepositoryImpl) ExportReportToXLSX(rows []entity.ReportRow, aliquota float64, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("erro ao preparar a planilha: %w", err)
	}

	headers := reportHeaders(aliquota)
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return "", fmt.Errorf("erro ao escrever o cabeçalho: %w", err)
	}

	for i, row := range rows {
		var custo, lucro interface{} = naoDisponivel, naoDisponivel
		if row.CustoTotal != nil {
			custo = *row.CustoTotal
		}
		if row.Lucro != nil {
			lucro = *row.Lucro
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		values := []interface{}{
			row.DataVenda,
			row.NF,
			row.SKU,
			row.Descricao,
			row.Quantidade,
			row.PrecoUnit,
			row.TotalItem,
			row.ValorRecebido,
			custo,
			row.Imposto,
			lucro,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", fmt.Errorf("erro ao escrever a linha %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("erro ao salvar o XLSX: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToCSV(rows []entity.ReportRow, aliquota float64, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o arquivo CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'
	defer writer.Flush()

	if err := writer.Write(reportHeaders(aliquota)); err != nil {
		return "", fmt.Errorf("erro ao escrever o cabeçalho CSV: %w", err)
	}

	for _, row := range rows {
		custo, lucro := naoDisponivel, naoDisponivel
		if row.CustoTotal != nil {
			custo = fmt.Sprintf("%.2f", *row.CustoTotal)
		}
		if row.Lucro != nil {
			lucro = fmt.Sprintf("%.2f", *row.Lucro)
		}

		record := []string{
			row.DataVenda,
			row.NF,
			row.SKU,
			row.Descricao,
			strconv.FormatFloat(row.Quantidade, 'f', -1, 64),
			fmt.Sprintf("%.2f", row.PrecoUnit),
			fmt.Sprintf("%.2f", row.TotalItem),
			fmt.Sprintf("%.2f", row.ValorRecebido),
			custo,
			fmt.Sprintf("%.2f", row.Imposto),
			lucro,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("erro ao escrever a linha CSV: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(rows []entity.ReportRow, summary *entity.ReportSummary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("erro ao criar o arquivo JSON: %w", err)
	}
	defer file.Close()

	payload := struct {
		Resumo *entity.ReportSummary `json:"resumo"`
		Linhas []entity.ReportRow    `json:"linhas"`
	}{Resumo: summary, Linhas: rows}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("erro ao codificar o JSON: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("não foi possível obter o diretório atual: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de saída '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
