// Package schema resolve os cabeçalhos livres dos arquivos de entrada para
// os campos canônicos do pipeline. O casamento é por substring sobre uma
// cópia simplificada do cabeçalho (maiúsculas, sem acentos), com uma lista
// ordenada de regras: a primeira regra que casar vence.
package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
)

// Campos canônicos.
const (
	FieldSKU        = "SKU"
	FieldDataVenda  = "DATA_VENDA"
	FieldNF         = "NF"
	FieldPrecoUnit  = "PRECO_UNIT"
	FieldComissao   = "COMISSAO"
	FieldFrete      = "FRETE"
	FieldDescricao  = "DESC_PRODUTO"
	FieldQuantidade = "QUANTIDADE"
	FieldCusto      = "CUSTO"
)

// Rule associa palavras-chave a um campo canônico. Um cabeçalho simplificado
// casa com a regra quando contém qualquer uma das palavras-chave.
type Rule struct {
	Field    string
	Keywords []string
}

// SalesRules é a lista de regras do export de vendas, na ordem de
// prioridade. Um cabeçalho que contenha mais de uma palavra-chave resolve
// para a regra testada primeiro.
var SalesRules = []Rule{
	{FieldSKU, []string{"SKU"}},
	{FieldDataVenda, []string{"DATA"}},
	{FieldNF, []string{"NUMERO"}},
	{FieldPrecoUnit, []string{"PRECO", "UNIT"}},
	{FieldComissao, []string{"COMISS"}},
	{FieldFrete, []string{"FRETE"}},
	{FieldDescricao, []string{"DESCRI"}},
	{FieldQuantidade, []string{"QUANT"}},
}

// CostRules é a lista de regras da planilha de custos.
var CostRules = []Rule{
	{FieldSKU, []string{"SKU", "CODIGO"}},
	{FieldCusto, []string{"CUSTO"}},
}

// salesRequired são os campos sem os quais nenhum relatório é possível.
// DESC_PRODUTO é opcional.
var salesRequired = []string{
	FieldSKU, FieldDataVenda, FieldNF,
	FieldPrecoUnit, FieldComissao, FieldFrete, FieldQuantidade,
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Simplify devolve a forma do cabeçalho usada no casamento: sem espaços nas
// pontas, em maiúsculas e sem diacríticos ("Número" → "NUMERO").
func Simplify(header string) string {
	s := strings.ToUpper(strings.TrimSpace(header))
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	return s
}

func (r Rule) matches(simplified string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(simplified, kw) {
			return true
		}
	}
	return false
}

// Mapping relaciona campo canônico → cabeçalho original da tabela.
type Mapping map[string]string

func resolve(headers []string, rules []Rule) Mapping {
	m := Mapping{}
	for _, h := range headers {
		simplified := Simplify(h)
		for _, rule := range rules {
			if rule.matches(simplified) {
				// o primeiro cabeçalho que casa fica com o campo
				if _, taken := m[rule.Field]; !taken {
					m[rule.Field] = h
				}
				break
			}
		}
	}
	return m
}

// ResolveSales mapeia os cabeçalhos do export de vendas para os campos
// canônicos. A NF tem uma passada extra de emergência; se mesmo assim não
// resolver, ou se faltar qualquer outro campo obrigatório, devolve
// MissingFieldError.
func ResolveSales(headers []string) (Mapping, error) {
	m := resolve(headers, SalesRules)
	if _, ok := m[FieldNF]; !ok {
		resolveNFFallback(headers, m)
	}
	for _, field := range salesRequired {
		if _, ok := m[field]; !ok {
			return nil, &types.MissingFieldError{Field: field, Table: "vendas"}
		}
	}
	return m, nil
}

// resolveNFFallback força a resolução da NF quando a passada principal
// falhou: primeiro qualquer cabeçalho contendo NUMER após simplificação,
// depois o cabeçalho corrompido "NÃºmero" que aparece quando o CSV Latin-1
// foi reescrito como UTF-8 em algum ponto do caminho.
func resolveNFFallback(headers []string, m Mapping) {
	for _, h := range headers {
		if strings.Contains(Simplify(h), "NUMER") {
			m[FieldNF] = h
			return
		}
	}
	for _, h := range headers {
		if strings.TrimSpace(h) == "NÃºmero" {
			m[FieldNF] = h
			return
		}
	}
}

// ResolveCost mapeia os cabeçalhos da planilha de custos. SKU e CUSTO são
// ambos obrigatórios.
func ResolveCost(headers []string) (Mapping, error) {
	m := resolve(headers, CostRules)
	if _, ok := m[FieldSKU]; !ok {
		return nil, &types.MissingFieldError{Field: FieldSKU, Table: "custos"}
	}
	if _, ok := m[FieldCusto]; !ok {
		return nil, &types.MissingFieldError{Field: FieldCusto, Table: "custos"}
	}
	return m, nil
}
