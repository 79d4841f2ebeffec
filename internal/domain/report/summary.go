package report

import (
	"sort"
	"time"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

// BuildSummary calcula o resumo executivo a partir das linhas finais:
// totais, contagens distintas, destaque de maior lucro e as séries por SKU
// e por data usadas no relatório analítico. Linhas com lucro indefinido
// entram nos totais de unidades e recebimento, mas não nas somas de lucro.
func BuildSummary(rows []entity.ReportRow, semCusto []string) *entity.ReportSummary {
	s := &entity.ReportSummary{
		GeradoEm:     time.Now(),
		SKUsSemCusto: semCusto,
	}

	nfs := make(map[string]bool)
	skus := make(map[string]bool)
	lucroPorSKU := make(map[string]float64)
	qtdPorSKU := make(map[string]float64)
	lucroPorData := make(map[string]float64)

	var top *entity.ReportRow
	for i := range rows {
		r := &rows[i]
		s.TotalUnidades += r.Quantidade
		s.TotalRecebido += r.ValorRecebido
		nfs[r.NF] = true
		skus[r.SKU] = true
		qtdPorSKU[r.SKU] += r.Quantidade

		if r.Lucro == nil {
			continue
		}
		s.LucroTotal += *r.Lucro
		lucroPorSKU[r.SKU] += *r.Lucro
		if r.DataVenda != entity.DataIndefinida {
			lucroPorData[r.DataVenda] += *r.Lucro
		}
		if top == nil || *r.Lucro > *top.Lucro {
			top = r
		}
	}

	s.TotalNotas = len(nfs)
	s.ProdutosDistintos = len(skus)
	s.TopLucro = top
	s.LucroPorSKU = sortedSKUValues(lucroPorSKU)
	s.QuantidadePorSKU = sortedSKUValues(qtdPorSKU)
	s.LucroPorData = sortedDataLucro(lucroPorData)

	return s
}

// sortedSKUValues ordena por valor crescente, SKU como desempate, para as
// barras horizontais saírem do menor para o maior.
func sortedSKUValues(m map[string]float64) []entity.SKUValue {
	out := make([]entity.SKUValue, 0, len(m))
	for sku, v := range m {
		out = append(out, entity.SKUValue{SKU: sku, Valor: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Valor != out[j].Valor {
			return out[i].Valor < out[j].Valor
		}
		return out[i].SKU < out[j].SKU
	})
	return out
}

// sortedDataLucro ordena cronologicamente (as chaves já estão em
// dd/mm/aaaa, vindas do FormatDate).
func sortedDataLucro(m map[string]float64) []entity.DataLucro {
	out := make([]entity.DataLucro, 0, len(m))
	for data, v := range m {
		out = append(out, entity.DataLucro{Data: data, Lucro: v})
	}
	sort.Slice(out, func(i, j int) bool {
		ti, _ := time.Parse("02/01/2006", out[i].Data)
		tj, _ := time.Parse("02/01/2006", out[j].Data)
		return ti.Before(tj)
	})
	return out
}
