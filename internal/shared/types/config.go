package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	VendasFile    string   `json:"vendas" yaml:"vendas" toml:"vendas"`
	CustosFile    string   `json:"custos" yaml:"custos" toml:"custos"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
	FreteMinimo   float64  `json:"frete_minimo" yaml:"frete_minimo" toml:"frete_minimo"`
	RateioSoma    bool     `json:"rateio_soma" yaml:"rateio_soma" toml:"rateio_soma"`
	PrecoMedio    bool     `json:"preco_medio" yaml:"preco_medio" toml:"preco_medio"`
	ImpostoBase   string   `json:"imposto_base" yaml:"imposto_base" toml:"imposto_base"`
	Aliquota      float64  `json:"aliquota" yaml:"aliquota" toml:"aliquota"`
	ManterZerosNF bool     `json:"manter_zeros_nf" yaml:"manter_zeros_nf" toml:"manter_zeros_nf"`
	Trend         bool     `json:"trend" yaml:"trend" toml:"trend"`
}
