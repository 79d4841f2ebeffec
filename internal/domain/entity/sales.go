package entity

// SalesLine é uma linha do export de vendas do Bling após a coerção de
// tipos. Comissão e frete são tarifas da NF inteira, repetidas pelo export
// em cada linha da nota.
type SalesLine struct {
	SKU        string  `json:"sku"`
	DataVenda  string  `json:"data_venda"`
	NF         string  `json:"nf"`
	Descricao  string  `json:"descricao,omitempty"`
	PrecoUnit  float64 `json:"preco_unit"`
	Quantidade float64 `json:"quantidade"`
	TotalItem  float64 `json:"total_item"`
	Comissao   float64 `json:"comissao"`
	Frete      float64 `json:"frete"`
}

// CostEntry é uma entrada da planilha de custos: custo unitário por SKU.
type CostEntry struct {
	SKU   string  `json:"sku"`
	Custo float64 `json:"custo"`
}

// AggregatedLine é o resultado do agrupamento por (NF, SKU): quantidades e
// totais somados, comissão/frete no nível da nota e, após o rateio, as
// parcelas alocadas à linha.
type AggregatedLine struct {
	NF         string  `json:"nf"`
	SKU        string  `json:"sku"`
	DataVenda  string  `json:"data_venda"`
	Descricao  string  `json:"descricao,omitempty"`
	PrecoUnit  float64 `json:"preco_unit"`
	Quantidade float64 `json:"quantidade"`
	TotalItem  float64 `json:"total_item"`
	Comissao   float64 `json:"comissao"`
	Frete      float64 `json:"frete"`

	ComissaoDiv   float64 `json:"comissao_div"`
	FreteDiv      float64 `json:"frete_div"`
	ValorRecebido float64 `json:"valor_recebido"`
}
