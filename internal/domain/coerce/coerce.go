// Package coerce converte as colunas de texto das tabelas brutas para os
// tipos do pipeline. A conversão é por coluna inteira: a primeira célula
// inválida aborta a execução com um ParseError apontando campo e linha.
package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
	"github.com/vendalytics/bling-lucro-go/internal/domain/schema"
	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
)

// Options controla a normalização de identificadores.
type Options struct {
	// ManterZerosNF preserva zeros à esquerda no número da NF. Por padrão
	// são removidos: a NF é só chave de agrupamento e "00123" e "123"
	// referem-se à mesma nota.
	ManterZerosNF bool
}

// Currency interpreta um valor monetário no formato do export: marcador
// "R$" opcional e vírgula decimal ("R$ 49,90" → 49.90).
func Currency(raw string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "R$", ""))
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// Number interpreta um número com vírgula decimal ("2,5" → 2.5).
func Number(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// SKU normaliza o identificador de produto para servir de chave de join
// insensível a caixa.
func SKU(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NF normaliza o número da nota fiscal.
func NF(raw string, manterZeros bool) string {
	s := strings.TrimSpace(raw)
	if !manterZeros {
		s = strings.TrimLeft(s, "0")
	}
	return s
}

// SalesTable converte a tabela bruta de vendas em linhas tipadas, usando o
// mapeamento de campos canônicos já resolvido. TotalItem é calculado aqui,
// antes de qualquer agrupamento.
func SalesTable(table *entity.RawTable, m schema.Mapping, opts Options) ([]entity.SalesLine, error) {
	lines := make([]entity.SalesLine, 0, len(table.Rows))

	for i, row := range table.Rows {
		cell := func(field string) string { return row[m[field]] }
		rowNum := i + 1

		preco, err := currencyCell(schema.FieldPrecoUnit, rowNum, cell(schema.FieldPrecoUnit))
		if err != nil {
			return nil, err
		}
		comissao, err := currencyCell(schema.FieldComissao, rowNum, cell(schema.FieldComissao))
		if err != nil {
			return nil, err
		}
		frete, err := currencyCell(schema.FieldFrete, rowNum, cell(schema.FieldFrete))
		if err != nil {
			return nil, err
		}
		quantidade, err := numberCell(schema.FieldQuantidade, rowNum, cell(schema.FieldQuantidade))
		if err != nil {
			return nil, err
		}

		// preço e quantidade não podem ser negativos; comissão e frete
		// podem ser zero mas nunca negativos
		if preco < 0 {
			return nil, &types.ParseError{Field: schema.FieldPrecoUnit, Row: rowNum, Value: cell(schema.FieldPrecoUnit)}
		}
		if quantidade < 0 {
			return nil, &types.ParseError{Field: schema.FieldQuantidade, Row: rowNum, Value: cell(schema.FieldQuantidade)}
		}
		if comissao < 0 {
			return nil, &types.ParseError{Field: schema.FieldComissao, Row: rowNum, Value: cell(schema.FieldComissao)}
		}
		if frete < 0 {
			return nil, &types.ParseError{Field: schema.FieldFrete, Row: rowNum, Value: cell(schema.FieldFrete)}
		}

		sku := SKU(cell(schema.FieldSKU))
		if sku == "" {
			return nil, &types.ParseError{Field: schema.FieldSKU, Row: rowNum, Value: cell(schema.FieldSKU)}
		}

		// a célula da NF precisa vir preenchida; "000" vira "" só depois,
		// pela remoção de zeros, e continua agrupando
		if strings.TrimSpace(cell(schema.FieldNF)) == "" {
			return nil, &types.ParseError{Field: schema.FieldNF, Row: rowNum, Value: cell(schema.FieldNF)}
		}
		nf := NF(cell(schema.FieldNF), opts.ManterZerosNF)

		lines = append(lines, entity.SalesLine{
			SKU:        sku,
			DataVenda:  strings.TrimSpace(cell(schema.FieldDataVenda)),
			NF:         nf,
			Descricao:  strings.ToUpper(strings.TrimSpace(cell(schema.FieldDescricao))),
			PrecoUnit:  preco,
			Quantidade: quantidade,
			TotalItem:  preco * quantidade,
			Comissao:   comissao,
			Frete:      frete,
		})
	}

	return lines, nil
}

// CostTable converte a tabela bruta de custos em entradas tipadas. Linhas
// com SKU vazio são descartadas (sobras de formatação das abas); um custo
// ilegível em linha com SKU é fatal.
func CostTable(table *entity.RawTable, m schema.Mapping) ([]entity.CostEntry, error) {
	entries := make([]entity.CostEntry, 0, len(table.Rows))

	for i, row := range table.Rows {
		sku := SKU(row[m[schema.FieldSKU]])
		if sku == "" {
			continue
		}
		raw := row[m[schema.FieldCusto]]
		custo, err := currencyCell(schema.FieldCusto, i+1, raw)
		if err != nil {
			return nil, err
		}
		if custo < 0 {
			return nil, &types.ParseError{Field: schema.FieldCusto, Row: i + 1, Value: raw}
		}
		entries = append(entries, entity.CostEntry{SKU: sku, Custo: custo})
	}

	return entries, nil
}

func currencyCell(field string, row int, raw string) (float64, error) {
	v, err := Currency(raw)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &types.ParseError{Field: field, Row: row, Value: raw}
	}
	return v, nil
}

func numberCell(field string, row int, raw string) (float64, error) {
	v, err := Number(raw)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &types.ParseError{Field: field, Row: row, Value: raw}
	}
	return v, nil
}
