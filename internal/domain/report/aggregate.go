package report

import "github.com/vendalytics/bling-lucro-go/internal/domain/entity"

type groupKey struct {
	nf  string
	sku string
}

// Aggregate colapsa as linhas de venda que compartilham (NF, SKU) em uma
// AggregatedLine por grupo, na ordem de primeira aparição. Reduções: data e
// descrição ficam com o primeiro valor; quantidade e total são somados;
// preço unitário e comissão/frete seguem as opções.
func Aggregate(lines []entity.SalesLine, opts Options) []entity.AggregatedLine {
	index := make(map[groupKey]int, len(lines))
	out := make([]entity.AggregatedLine, 0, len(lines))

	// soma e contagem de preços por grupo, para a redução por média
	precoSum := make([]float64, 0, len(lines))
	precoN := make([]int, 0, len(lines))

	for _, l := range lines {
		key := groupKey{nf: l.NF, sku: l.SKU}
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, entity.AggregatedLine{
				NF:         l.NF,
				SKU:        l.SKU,
				DataVenda:  l.DataVenda,
				Descricao:  l.Descricao,
				PrecoUnit:  l.PrecoUnit,
				Quantidade: l.Quantidade,
				TotalItem:  l.TotalItem,
				Comissao:   l.Comissao,
				Frete:      l.Frete,
			})
			precoSum = append(precoSum, l.PrecoUnit)
			precoN = append(precoN, 1)
			continue
		}

		g := &out[i]
		g.Quantidade += l.Quantidade
		g.TotalItem += l.TotalItem
		if opts.RateioSoma {
			g.Comissao += l.Comissao
			g.Frete += l.Frete
		}
		precoSum[i] += l.PrecoUnit
		precoN[i]++
	}

	if opts.PrecoMedio {
		for i := range out {
			out[i].PrecoUnit = precoSum[i] / float64(precoN[i])
		}
	}

	return out
}
