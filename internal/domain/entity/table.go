package entity

// RawTable é uma tabela bruta lida de um arquivo de entrada: cabeçalhos
// originais (sem normalização) e linhas como mapas cabeçalho→valor, tudo
// como texto. A resolução de colunas canônicas acontece depois, sobre os
// cabeçalhos originais.
type RawTable struct {
	Headers []string
	Rows    []map[string]string
	Source  string
}
