package coerce

import (
	"errors"
	"math"
	"testing"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
	"github.com/vendalytics/bling-lucro-go/internal/domain/schema"
	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{"com marcador", "R$ 49,90", 49.90, false},
		{"sem marcador", "49,90", 49.90, false},
		{"marcador colado", "R$49,90", 49.90, false},
		{"ponto decimal", "49.90", 49.90, false},
		{"inteiro", "120", 120, false},
		{"zero", "0,00", 0, false},
		{"espacos", "  R$ 10,50  ", 10.50, false},
		{"vazio", "", 0, true},
		{"texto", "abc", 0, true},
		{"so marcador", "R$", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Currency(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Currency(%q) = %v, want erro", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Currency(%q) error = %v", tt.raw, err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Currency(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"2,5", 2.5},
		{"3", 3},
		{" 1,0 ", 1},
	}
	for _, tt := range tests {
		got, err := Number(tt.raw)
		if err != nil {
			t.Fatalf("Number(%q) error = %v", tt.raw, err)
		}
		if got != tt.expected {
			t.Errorf("Number(%q) = %v, want %v", tt.raw, got, tt.expected)
		}
	}
}

func TestSKU(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{" abc-123 ", "ABC-123"},
		{"KIT2xMEL", "KIT2XMEL"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SKU(tt.raw); got != tt.expected {
			t.Errorf("SKU(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestNF(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		manterZeros bool
		expected    string
	}{
		{"remove zeros", "000123", false, "123"},
		{"mantem zeros", "000123", true, "000123"},
		{"sem zeros", "4521", false, "4521"},
		{"espacos", " 77 ", false, "77"},
		{"so zeros", "000", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NF(tt.raw, tt.manterZeros); got != tt.expected {
				t.Errorf("NF(%q, %v) = %q, want %q", tt.raw, tt.manterZeros, got, tt.expected)
			}
		})
	}
}

// mapeamento identidade: os testes usam os nomes canônicos como cabeçalhos.
func identityMapping(fields ...string) schema.Mapping {
	m := schema.Mapping{}
	for _, f := range fields {
		m[f] = f
	}
	return m
}

func salesMapping() schema.Mapping {
	return identityMapping(
		schema.FieldSKU, schema.FieldDataVenda, schema.FieldNF,
		schema.FieldPrecoUnit, schema.FieldComissao, schema.FieldFrete,
		schema.FieldDescricao, schema.FieldQuantidade,
	)
}

func salesRow(overrides map[string]string) map[string]string {
	row := map[string]string{
		schema.FieldSKU:        "abc-1",
		schema.FieldDataVenda:  "05/03/2025",
		schema.FieldNF:         "004521",
		schema.FieldPrecoUnit:  "R$ 49,90",
		schema.FieldComissao:   "R$ 10,00",
		schema.FieldFrete:      "R$ 20,00",
		schema.FieldDescricao:  "Mel Silvestre 500g",
		schema.FieldQuantidade: "2",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestSalesTable(t *testing.T) {
	table := &entity.RawTable{Rows: []map[string]string{salesRow(nil)}}

	lines, err := SalesTable(table, salesMapping(), Options{})
	if err != nil {
		t.Fatalf("SalesTable() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}

	l := lines[0]
	if l.SKU != "ABC-1" {
		t.Errorf("SKU = %q, want %q", l.SKU, "ABC-1")
	}
	if l.NF != "4521" {
		t.Errorf("NF = %q, want %q", l.NF, "4521")
	}
	if l.Descricao != "MEL SILVESTRE 500G" {
		t.Errorf("Descricao = %q, want %q", l.Descricao, "MEL SILVESTRE 500G")
	}
	if l.PrecoUnit != 49.90 {
		t.Errorf("PrecoUnit = %v, want 49.90", l.PrecoUnit)
	}
	if l.Quantidade != 2 {
		t.Errorf("Quantidade = %v, want 2", l.Quantidade)
	}
	if math.Abs(l.TotalItem-99.80) > 1e-9 {
		t.Errorf("TotalItem = %v, want 99.80", l.TotalItem)
	}
}

func TestSalesTableManterZerosNF(t *testing.T) {
	table := &entity.RawTable{Rows: []map[string]string{salesRow(nil)}}
	lines, err := SalesTable(table, salesMapping(), Options{ManterZerosNF: true})
	if err != nil {
		t.Fatalf("SalesTable() error = %v", err)
	}
	if lines[0].NF != "004521" {
		t.Errorf("NF = %q, want %q", lines[0].NF, "004521")
	}
}

func TestSalesTableParseError(t *testing.T) {
	tests := []struct {
		name  string
		over  map[string]string
		field string
	}{
		{"preco ilegivel", map[string]string{schema.FieldPrecoUnit: "abc"}, schema.FieldPrecoUnit},
		{"preco negativo", map[string]string{schema.FieldPrecoUnit: "-1,00"}, schema.FieldPrecoUnit},
		{"quantidade negativa", map[string]string{schema.FieldQuantidade: "-2"}, schema.FieldQuantidade},
		{"comissao negativa", map[string]string{schema.FieldComissao: "-5,00"}, schema.FieldComissao},
		{"frete ilegivel", map[string]string{schema.FieldFrete: "gratis"}, schema.FieldFrete},
		{"sku vazio", map[string]string{schema.FieldSKU: "   "}, schema.FieldSKU},
		{"nf vazia", map[string]string{schema.FieldNF: "   "}, schema.FieldNF},
		{"quantidade nao finita", map[string]string{schema.FieldQuantidade: "NaN"}, schema.FieldQuantidade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &entity.RawTable{Rows: []map[string]string{
				salesRow(nil),
				salesRow(tt.over),
			}}
			_, err := SalesTable(table, salesMapping(), Options{})
			var parseErr *types.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("SalesTable() error = %v, want ParseError", err)
			}
			if parseErr.Field != tt.field {
				t.Errorf("campo = %q, want %q", parseErr.Field, tt.field)
			}
			if parseErr.Row != 2 {
				t.Errorf("linha = %d, want 2", parseErr.Row)
			}
		})
	}
}

func TestSalesTableAllZeroNF(t *testing.T) {
	// "000" é preenchida, então passa; a remoção de zeros deixa a chave
	// de agrupamento vazia e as linhas seguem agrupando juntas
	table := &entity.RawTable{Rows: []map[string]string{
		salesRow(map[string]string{schema.FieldNF: "000"}),
	}}
	lines, err := SalesTable(table, salesMapping(), Options{})
	if err != nil {
		t.Fatalf("SalesTable() error = %v", err)
	}
	if lines[0].NF != "" {
		t.Errorf("NF = %q, want vazia após remover zeros", lines[0].NF)
	}
}

func TestCostTable(t *testing.T) {
	m := identityMapping(schema.FieldSKU, schema.FieldCusto)
	table := &entity.RawTable{Rows: []map[string]string{
		{schema.FieldSKU: "abc-1", schema.FieldCusto: "R$ 12,50"},
		{schema.FieldSKU: "", schema.FieldCusto: "qualquer coisa"},
		{schema.FieldSKU: "xyz-9", schema.FieldCusto: "30"},
	}}

	entries, err := CostTable(table, m)
	if err != nil {
		t.Fatalf("CostTable() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (linha sem SKU descartada)", len(entries))
	}
	if entries[0].SKU != "ABC-1" || entries[0].Custo != 12.50 {
		t.Errorf("entries[0] = %+v, want ABC-1 / 12.50", entries[0])
	}
	if entries[1].SKU != "XYZ-9" || entries[1].Custo != 30 {
		t.Errorf("entries[1] = %+v, want XYZ-9 / 30", entries[1])
	}
}

func TestCostTableBadCusto(t *testing.T) {
	m := identityMapping(schema.FieldSKU, schema.FieldCusto)
	table := &entity.RawTable{Rows: []map[string]string{
		{schema.FieldSKU: "abc-1", schema.FieldCusto: "caro"},
	}}
	_, err := CostTable(table, m)
	var parseErr *types.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("CostTable() error = %v, want ParseError", err)
	}
	if parseErr.Field != schema.FieldCusto {
		t.Errorf("campo = %q, want %q", parseErr.Field, schema.FieldCusto)
	}
}

func TestCostTableNegativeCusto(t *testing.T) {
	m := identityMapping(schema.FieldSKU, schema.FieldCusto)
	table := &entity.RawTable{Rows: []map[string]string{
		{schema.FieldSKU: "abc-1", schema.FieldCusto: "-3,00"},
	}}
	if _, err := CostTable(table, m); err == nil {
		t.Fatal("CostTable() aceitou custo negativo")
	}
}
