package types

import "fmt"

// MissingFieldError indica que uma coluna canônica obrigatória não pôde ser
// resolvida a partir dos cabeçalhos do arquivo. É sempre fatal: nenhum
// relatório é produzido sem ela.
type MissingFieldError struct {
	Field string // campo canônico, ex.: "NF"
	Table string // "vendas" ou "custos"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("coluna obrigatória não encontrada no arquivo de %s: %s", e.Table, e.Field)
}

// ParseError indica que uma célula não pôde ser convertida para o tipo
// esperado. A coerção é por coluna inteira: uma célula inválida aborta a
// execução toda.
type ParseError struct {
	Field string // campo canônico da coluna
	Row   int    // linha de dados, 1-indexada (sem contar o cabeçalho)
	Value string // conteúdo original da célula
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("valor inválido na coluna %s, linha %d: %q", e.Field, e.Row, e.Value)
}
