package report

import (
	"math"
	"time"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

// dateLayouts são os formatos aceitos para a data de venda, testados em
// ordem. O export do Bling usa dd/mm/aaaa; os demais cobrem planilhas
// retrabalhadas à mão.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/06",
}

// ParseDate tenta interpretar uma data de venda do export.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate devolve a data no formato dd/mm/aaaa, ou o marcador
// DATA INDEFINIDA quando a entrada não é interpretável. Uma data ruim não
// aborta a execução.
func FormatDate(raw string) string {
	if t, ok := ParseDate(raw); ok {
		return t.Format("02/01/2006")
	}
	return entity.DataIndefinida
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Assemble produz as linhas finais do relatório: junção à esquerda com a
// planilha de custos por SKU, imposto, lucro, arredondamento monetário a 2
// casas e deduplicação por (NF, SKU) mantendo a primeira ocorrência.
//
// Um SKU sem custo correspondente gera CustoTotal e Lucro nulos — nunca
// zero — e entra na lista de lacunas devolvida para aviso ao usuário.
// SKUs duplicados na planilha de custos: a última ocorrência vence.
func Assemble(lines []entity.AggregatedLine, costs []entity.CostEntry, opts Options) ([]entity.ReportRow, []string) {
	custoPorSKU := make(map[string]float64, len(costs))
	for _, c := range costs {
		custoPorSKU[c.SKU] = c.Custo
	}

	seen := make(map[groupKey]bool, len(lines))
	rows := make([]entity.ReportRow, 0, len(lines))
	var semCusto []string
	semCustoSeen := make(map[string]bool)

	for _, l := range lines {
		key := groupKey{nf: l.NF, sku: l.SKU}
		if seen[key] {
			continue
		}
		seen[key] = true

		base := l.ValorRecebido
		if opts.ImpostoBase == ImpostoSobreTotal {
			base = l.TotalItem
		}
		imposto := base * opts.Aliquota

		row := entity.ReportRow{
			DataVenda:     FormatDate(l.DataVenda),
			NF:            l.NF,
			SKU:           l.SKU,
			Descricao:     l.Descricao,
			Quantidade:    l.Quantidade,
			PrecoUnit:     round2(l.PrecoUnit),
			TotalItem:     round2(l.TotalItem),
			ValorRecebido: round2(l.ValorRecebido),
			Imposto:       round2(imposto),
		}

		if custo, ok := custoPorSKU[l.SKU]; ok {
			custoTotal := custo * l.Quantidade
			lucro := l.ValorRecebido - custoTotal - imposto
			custoTotal = round2(custoTotal)
			lucro = round2(lucro)
			row.CustoTotal = &custoTotal
			row.Lucro = &lucro
		} else if !semCustoSeen[l.SKU] {
			semCustoSeen[l.SKU] = true
			semCusto = append(semCusto, l.SKU)
		}

		rows = append(rows, row)
	}

	return rows, semCusto
}
