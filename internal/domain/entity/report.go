package entity

import "time"

// DataIndefinida é o marcador usado quando a data de venda não pôde ser
// interpretada. A linha permanece no relatório; só a data fica indefinida.
const DataIndefinida = "DATA INDEFINIDA"

// ReportRow é uma linha do relatório final: exatamente uma por par
// (NF, SKU). CustoTotal e Lucro são ponteiros porque um SKU sem
// correspondência na planilha de custos tem custo indefinido, nunca zero.
type ReportRow struct {
	DataVenda     string   `json:"data_venda"`
	NF            string   `json:"nf"`
	SKU           string   `json:"sku"`
	Descricao     string   `json:"descricao,omitempty"`
	Quantidade    float64  `json:"quantidade"`
	PrecoUnit     float64  `json:"preco_unit"`
	TotalItem     float64  `json:"total_item"`
	ValorRecebido float64  `json:"valor_recebido"`
	CustoTotal    *float64 `json:"custo_total"`
	Imposto       float64  `json:"imposto"`
	Lucro         *float64 `json:"lucro"`
}

// SKUValue é um valor agregado por SKU, usado nas páginas de barras do
// relatório analítico.
type SKUValue struct {
	SKU   string  `json:"sku"`
	Valor float64 `json:"valor"`
}

// DataLucro é o lucro somado de um dia de venda.
type DataLucro struct {
	Data  string  `json:"data"` // dd/mm/aaaa
	Lucro float64 `json:"lucro"`
}

// ReportSummary é o resumo executivo de uma geração de relatório.
type ReportSummary struct {
	GeradoEm          time.Time   `json:"gerado_em"`
	TotalUnidades     float64     `json:"total_unidades"`
	TotalRecebido     float64     `json:"total_recebido"`
	LucroTotal        float64     `json:"lucro_total"`
	TotalNotas        int         `json:"total_notas"`
	ProdutosDistintos int         `json:"produtos_distintos"`
	TopLucro          *ReportRow  `json:"top_lucro,omitempty"`
	LucroPorSKU       []SKUValue  `json:"lucro_por_sku"`
	QuantidadePorSKU  []SKUValue  `json:"quantidade_por_sku"`
	LucroPorData      []DataLucro `json:"lucro_por_data"`
	SKUsSemCusto      []string    `json:"skus_sem_custo,omitempty"`
}
