package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

// maxBarras limita quantos SKUs entram em uma página de barras; acima disso
// os menores valores são resumidos em uma nota de rodapé da página.
const maxBarras = 40

// ExportAnalyticReportToPDF gera o relatório analítico visual: página de
// resumo executivo, barras de lucro e de quantidade por SKU e a série de
// lucro por data de venda.
func (r *ExportRepositoryImpl) ExportAnalyticReportToPDF(summary *entity.ReportSummary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{31, 119, 180}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawPageHeader := func(title string) {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
		pdf.Ln(8)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	page := 0
	drawFooter := func() {
		page++
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Relatório Analítico de Vendas | %s", time.Now().Format("02/01/2006"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", page)), "", 0, "R", false, 0, "")
	}

	// Página 1 — resumo executivo
	pdf.AddPage()
	drawPageHeader("Resumo Executivo de Vendas")

	resumo := fmt.Sprintf(
		"Data do Relatório: %s\n\n"+
			"Total de Produtos Vendidos: %d\n"+
			"Valor Total Recebido: R$ %.2f\n"+
			"Lucro Total: R$ %.2f\n"+
			"Total de Notas Fiscais Emitidas: %d\n"+
			"Produtos distintos vendidos: %d",
		summary.GeradoEm.Format("02/01/2006 15:04:05"),
		int(summary.TotalUnidades),
		summary.TotalRecebido,
		summary.LucroTotal,
		summary.TotalNotas,
		summary.ProdutosDistintos,
	)
	drawSection("Resumo", resumo)

	if summary.TopLucro != nil && summary.TopLucro.Lucro != nil {
		drawSection("Destaques", fmt.Sprintf(
			"Produto com maior lucro: %s - R$ %.2f",
			summary.TopLucro.SKU, *summary.TopLucro.Lucro,
		))
	}
	if len(summary.SKUsSemCusto) > 0 {
		aviso := fmt.Sprintf("%d SKU(s) sem custo na planilha; custo e lucro indefinidos para essas linhas:\n", len(summary.SKUsSemCusto))
		for _, sku := range summary.SKUsSemCusto {
			aviso += fmt.Sprintf("  - %s\n", sku)
		}
		drawSection("Lacunas de Custo", aviso)
	}
	drawFooter()

	// Página 2 — lucro por SKU
	pdf.AddPage()
	drawPageHeader("Lucro Total por SKU")
	r.drawBarChart(pdf, tr, summary.LucroPorSKU, "R$ %.2f", [3]int{31, 119, 180})
	drawFooter()

	// Página 3 — quantidade por SKU
	pdf.AddPage()
	drawPageHeader("Quantidade Vendida por SKU")
	r.drawBarChart(pdf, tr, summary.QuantidadePorSKU, "%.0f un", [3]int{44, 160, 44})
	drawFooter()

	// Página 4 — lucro por data de venda
	pdf.AddPage()
	drawPageHeader("Lucro Total por Data de Venda")
	r.drawProfitSeries(pdf, tr, summary.LucroPorData)
	drawFooter()

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("erro ao escrever o PDF analítico: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// drawBarChart desenha barras horizontais, maior valor no topo. A lista
// chega ordenada crescente (ordem das páginas de barras do resumo), então
// percorremos de trás para frente.
func (r *ExportRepositoryImpl) drawBarChart(pdf *gofpdf.Fpdf, tr func(string) string, data []entity.SKUValue, valueFormat string, barColor [3]int) {
	if len(data) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Cell(0, 8, tr("Sem dados para este gráfico."))
		return
	}

	maxAbs := 0.0
	for _, d := range data {
		v := d.Valor
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	const (
		labelWidth = 45.0
		chartWidth = 115.0
		barHeight  = 5.0
		rowHeight  = 7.0
	)

	shown := len(data)
	if shown > maxBarras {
		shown = maxBarras
	}

	pdf.SetFont("Arial", "", 8)
	for i := 0; i < shown; i++ {
		d := data[len(data)-1-i] // maior primeiro
		y := pdf.GetY()

		label := d.SKU
		if len(label) > 24 {
			label = label[:21] + "..."
		}
		pdf.SetTextColor(50, 50, 50)
		pdf.CellFormat(labelWidth, rowHeight, tr(label), "", 0, "R", false, 0, "")

		width := 0.0
		if maxAbs > 0 {
			v := d.Valor
			if v < 0 {
				v = -v
			}
			width = v / maxAbs * chartWidth
		}
		if d.Valor < 0 {
			pdf.SetFillColor(214, 39, 40)
		} else {
			pdf.SetFillColor(barColor[0], barColor[1], barColor[2])
		}
		pdf.Rect(pdf.GetX()+2, y+1, width, barHeight, "F")

		pdf.SetXY(pdf.GetX()+4+width, y)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(30, rowHeight, tr(fmt.Sprintf(valueFormat, d.Valor)), "", 0, "L", false, 0, "")

		pdf.SetY(y + rowHeight)
		pdf.SetX(10)
	}

	if len(data) > shown {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.Cell(0, 6, tr(fmt.Sprintf("... (+%d SKUs de menor valor omitidos)", len(data)-shown)))
	}
}

// drawProfitSeries desenha a série de lucro por data como linha com
// marcadores, no estilo do gráfico de tendência do terminal.
func (r *ExportRepositoryImpl) drawProfitSeries(pdf *gofpdf.Fpdf, tr func(string) string, data []entity.DataLucro) {
	if len(data) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.Cell(0, 8, tr("Sem datas de venda interpretáveis para este gráfico."))
		return
	}

	const (
		x0 = 25.0
		y0 = 45.0
		w  = 165.0
		h  = 110.0
	)

	minV, maxV := data[0].Lucro, data[0].Lucro
	for _, d := range data {
		if d.Lucro < minV {
			minV = d.Lucro
		}
		if d.Lucro > maxV {
			maxV = d.Lucro
		}
	}
	if minV > 0 {
		minV = 0
	}
	if maxV < 0 {
		maxV = 0
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	// moldura e linha do zero
	pdf.SetDrawColor(200, 200, 200)
	pdf.Rect(x0, y0, w, h, "D")
	zeroY := y0 + h - (0-minV)/span*h
	pdf.SetDrawColor(160, 160, 160)
	pdf.Line(x0, zeroY, x0+w, zeroY)

	// escala no eixo Y
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(x0-22, y0+2, tr(fmt.Sprintf("R$ %.2f", maxV)))
	pdf.Text(x0-22, y0+h, tr(fmt.Sprintf("R$ %.2f", minV)))

	pointX := func(i int) float64 {
		if len(data) == 1 {
			return x0 + w/2
		}
		return x0 + float64(i)/float64(len(data)-1)*w
	}
	pointY := func(v float64) float64 {
		return y0 + h - (v-minV)/span*h
	}

	// linha
	pdf.SetDrawColor(214, 39, 40)
	pdf.SetLineWidth(0.5)
	for i := 1; i < len(data); i++ {
		pdf.Line(pointX(i-1), pointY(data[i-1].Lucro), pointX(i), pointY(data[i].Lucro))
	}
	pdf.SetLineWidth(0.2)

	// marcadores
	pdf.SetFillColor(214, 39, 40)
	for i, d := range data {
		pdf.Circle(pointX(i), pointY(d.Lucro), 1.0, "F")
	}

	// rótulos de data, espaçados para não sobrepor
	step := 1
	for len(data)/step > 10 {
		step++
	}
	pdf.SetTextColor(100, 100, 100)
	for i := 0; i < len(data); i += step {
		pdf.Text(pointX(i)-8, y0+h+5, tr(data[i].Data))
	}
}
