package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	VendasFile    string
	CustosFile    string
	ReportName    string
	ReportType    []string
	Dir           string
	FreteMinimo   float64
	RateioSoma    bool
	PrecoMedio    bool
	ImpostoBase   string
	Aliquota      float64
	ManterZerosNF bool
	Trend         bool
}
