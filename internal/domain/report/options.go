// Package report implementa o núcleo do relatório: agrupamento por
// (NF, SKU), rateio proporcional de comissão e frete por nota, junção com a
// planilha de custos e montagem das linhas finais. Todas as transformações
// são puras: as entradas nunca são alteradas.
package report

// ImpostoBase define sobre qual valor o imposto é calculado.
type ImpostoBase string

const (
	// ImpostoSobreRecebido calcula o imposto sobre o valor recebido
	// (total da linha menos comissão e frete rateados).
	ImpostoSobreRecebido ImpostoBase = "recebido"
	// ImpostoSobreTotal calcula o imposto sobre o preço total da linha.
	ImpostoSobreTotal ImpostoBase = "total"
)

// Options controla as reduções de agrupamento, o rateio e o cálculo final.
type Options struct {
	// PrecoMedio usa a média do preço unitário dentro do grupo (NF, SKU);
	// caso contrário vale o primeiro preço visto.
	PrecoMedio bool

	// RateioSoma soma comissão e frete das linhas do grupo em vez de tomar
	// o primeiro valor. O export do Bling repete a tarifa da nota em toda
	// linha, então somar dobraria a conta; a opção existe para exports que
	// já trazem a tarifa quebrada por linha.
	RateioSoma bool

	// FreteMinimo limita o rateio de frete às linhas com preço unitário
	// maior ou igual ao limiar (política de frete só sobre itens de maior
	// valor). Zero desabilita o filtro. A comissão nunca é filtrada.
	FreteMinimo float64

	// ImpostoBase define a base de cálculo do imposto.
	ImpostoBase ImpostoBase

	// Aliquota é a alíquota do imposto (fração, não percentual).
	Aliquota float64
}

// DefaultOptions devolve as opções com os padrões documentados: primeiro
// valor para preço/comissão/frete, sem limiar de frete, imposto de 9% sobre
// o valor recebido.
func DefaultOptions() Options {
	return Options{
		ImpostoBase: ImpostoSobreRecebido,
		Aliquota:    0.09,
	}
}
