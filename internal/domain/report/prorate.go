package report

import "github.com/vendalytics/bling-lucro-go/internal/domain/entity"

// Prorate distribui a comissão e o frete de cada nota entre as linhas
// membros, proporcionalmente à participação de cada linha no total da nota.
// A tarifa da nota é a da primeira linha do grupo (o export repete o valor
// em toda linha). Devolve uma nova fatia; a entrada não é alterada.
//
// Com FreteMinimo > 0, só as linhas com preço unitário maior ou igual ao
// limiar participam do rateio de frete: o denominador passa a ser o total
// das linhas elegíveis e as demais recebem frete zero. A comissão sempre
// usa a nota inteira.
//
// Uma nota com total zero (todas as quantidades zeradas) aloca zero em toda
// linha em vez de dividir por zero.
func Prorate(lines []entity.AggregatedLine, opts Options) []entity.AggregatedLine {
	out := make([]entity.AggregatedLine, len(lines))
	copy(out, lines)

	groups := make(map[string][]int)
	var order []string
	for i, l := range out {
		if _, ok := groups[l.NF]; !ok {
			order = append(order, l.NF)
		}
		groups[l.NF] = append(groups[l.NF], i)
	}

	for _, nf := range order {
		idx := groups[nf]

		totalNF := 0.0
		for _, i := range idx {
			totalNF += out[i].TotalItem
		}
		comissaoNF := out[idx[0]].Comissao
		freteNF := out[idx[0]].Frete

		// pool de frete: todas as linhas, ou só as elegíveis pelo limiar
		fretePool := idx
		if opts.FreteMinimo > 0 {
			fretePool = nil
			for _, i := range idx {
				if out[i].PrecoUnit >= opts.FreteMinimo {
					fretePool = append(fretePool, i)
				}
			}
		}
		totalFrete := 0.0
		for _, i := range fretePool {
			totalFrete += out[i].TotalItem
		}

		for _, i := range idx {
			share := 0.0
			if totalNF != 0 {
				share = out[i].TotalItem / totalNF
			}
			out[i].ComissaoDiv = share * comissaoNF
			out[i].FreteDiv = 0
		}
		for _, i := range fretePool {
			if totalFrete != 0 {
				out[i].FreteDiv = out[i].TotalItem / totalFrete * freteNF
			}
		}
		for _, i := range idx {
			out[i].ValorRecebido = out[i].TotalItem - out[i].ComissaoDiv - out[i].FreteDiv
		}
	}

	return out
}
