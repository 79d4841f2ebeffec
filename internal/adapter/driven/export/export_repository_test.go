package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

func sampleRows() []entity.ReportRow {
	custo := 25.00
	lucro := 52.35
	return []entity.ReportRow{
		{
			DataVenda:     "05/03/2025",
			NF:            "4521",
			SKU:           "ABC-1",
			Descricao:     "MEL SILVESTRE 500G",
			Quantidade:    2,
			PrecoUnit:     49.90,
			TotalItem:     99.80,
			ValorRecebido: 85.00,
			CustoTotal:    &custo,
			Imposto:       7.65,
			Lucro:         &lucro,
		},
		{
			DataVenda:     "06/03/2025",
			NF:            "4522",
			SKU:           "XYZ-9",
			Quantidade:    1,
			PrecoUnit:     30.00,
			TotalItem:     30.00,
			ValorRecebido: 28.00,
			Imposto:       2.52,
		},
	}
}

func TestReportHeadersAliquota(t *testing.T) {
	headers := reportHeaders(0.09)
	if headers[9] != "Imposto (9%)" {
		t.Errorf("headers[9] = %q, want %q", headers[9], "Imposto (9%)")
	}
	headers = reportHeaders(0.125)
	if headers[9] != "Imposto (12.5%)" {
		t.Errorf("headers[9] = %q, want %q", headers[9], "Imposto (12.5%)")
	}
}

func TestExportReportToCSV(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	path, err := repo.ExportReportToCSV(sampleRows(), 0.09, "RELATORIO_TESTE", t.TempDir())
	if err != nil {
		t.Fatalf("ExportReportToCSV() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("abrindo o CSV gerado: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("lendo o CSV gerado: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (cabeçalho + 2 linhas)", len(records))
	}
	if records[0][0] != "Data da Venda" || records[0][9] != "Imposto (9%)" {
		t.Errorf("cabeçalho = %v", records[0])
	}
	if records[1][2] != "ABC-1" || records[1][8] != "25.00" || records[1][10] != "52.35" {
		t.Errorf("linha 1 = %v", records[1])
	}
	// custo e lucro indefinidos viram N/D
	if records[2][8] != "N/D" || records[2][10] != "N/D" {
		t.Errorf("linha sem custo = %v, want N/D em custo e lucro", records[2])
	}
}

func TestExportReportToXLSX(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	path, err := repo.ExportReportToXLSX(sampleRows(), 0.09, "RELATORIO_TESTE", t.TempDir())
	if err != nil {
		t.Fatalf("ExportReportToXLSX() error = %v", err)
	}
	if !strings.HasSuffix(path, ".xlsx") {
		t.Errorf("path = %q, want sufixo .xlsx", path)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("abrindo o XLSX gerado: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(sheetName)
	if err != nil {
		t.Fatalf("lendo a aba %q: %v", sheetName, err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[1][2] != "ABC-1" {
		t.Errorf("SKU = %q, want ABC-1", rows[1][2])
	}
	if rows[2][8] != "N/D" {
		t.Errorf("custo indefinido = %q, want N/D", rows[2][8])
	}
}

func TestExportReportToJSON(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	summary := &entity.ReportSummary{
		GeradoEm:      time.Now(),
		LucroTotal:    52.35,
		TotalNotas:    2,
		SKUsSemCusto:  []string{"XYZ-9"},
		TotalRecebido: 113.00,
	}

	path, err := repo.ExportReportToJSON(sampleRows(), summary, "RELATORIO_TESTE", t.TempDir())
	if err != nil {
		t.Fatalf("ExportReportToJSON() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lendo o JSON gerado: %v", err)
	}

	var payload struct {
		Resumo entity.ReportSummary `json:"resumo"`
		Linhas []entity.ReportRow   `json:"linhas"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decodificando o JSON gerado: %v", err)
	}

	if payload.Resumo.TotalNotas != 2 {
		t.Errorf("TotalNotas = %d, want 2", payload.Resumo.TotalNotas)
	}
	if len(payload.Linhas) != 2 {
		t.Fatalf("len(Linhas) = %d, want 2", len(payload.Linhas))
	}
	// ponteiro nulo é serializado como null e volta como nil
	if payload.Linhas[1].Lucro != nil {
		t.Errorf("Lucro da linha sem custo = %v, want nil", payload.Linhas[1].Lucro)
	}
}

func TestExportAnalyticReportToPDF(t *testing.T) {
	lucro := 52.35
	repo := &ExportRepositoryImpl{}
	summary := &entity.ReportSummary{
		GeradoEm:          time.Now(),
		TotalUnidades:     3,
		TotalRecebido:     113.00,
		LucroTotal:        52.35,
		TotalNotas:        2,
		ProdutosDistintos: 2,
		TopLucro:          &entity.ReportRow{SKU: "ABC-1", NF: "4521", Lucro: &lucro},
		LucroPorSKU:       []entity.SKUValue{{SKU: "ABC-1", Valor: 52.35}},
		QuantidadePorSKU:  []entity.SKUValue{{SKU: "ABC-1", Valor: 2}, {SKU: "XYZ-9", Valor: 1}},
		LucroPorData:      []entity.DataLucro{{Data: "05/03/2025", Lucro: 52.35}},
		SKUsSemCusto:      []string{"XYZ-9"},
	}

	path, err := repo.ExportAnalyticReportToPDF(summary, "RELATORIO_TESTE", t.TempDir())
	if err != nil {
		t.Fatalf("ExportAnalyticReportToPDF() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF não foi gravado: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF gerado está vazio")
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("path = %q, want sufixo .pdf", path)
	}
}

func TestGenerateFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := generateFilename("RELATORIO", dir, "csv")
	if err != nil {
		t.Fatalf("generateFilename() error = %v", err)
	}
	base := strings.TrimSuffix(strings.TrimPrefix(path, dir+string(os.PathSeparator)), ".csv")
	if !strings.HasPrefix(base, "RELATORIO_") {
		t.Errorf("nome = %q, want prefixo RELATORIO_", base)
	}
	// sufixo de timestamp no formato AAAAMMDD_HHMMSS
	ts := strings.TrimPrefix(base, "RELATORIO_")
	if _, err := time.Parse("20060102_150405", ts); err != nil {
		t.Errorf("timestamp %q fora do formato esperado: %v", ts, err)
	}
}
