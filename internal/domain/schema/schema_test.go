package schema

import (
	"errors"
	"testing"

	"github.com/vendalytics/bling-lucro-go/internal/shared/types"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"acento agudo", "Número", "NUMERO"},
		{"cedilha", "Descrição", "DESCRICAO"},
		{"til", "Comissão", "COMISSAO"},
		{"espacos nas pontas", "  Data Venda  ", "DATA VENDA"},
		{"ja simplificado", "SKU", "SKU"},
		{"minusculas", "preço unitário", "PRECO UNITARIO"},
		{"vazio", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simplify(tt.header); got != tt.expected {
				t.Errorf("Simplify(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestResolveSales(t *testing.T) {
	headers := []string{
		"Data Venda",
		"Número",
		"SKU",
		"Descrição do Produto",
		"Quantidade",
		"Preço Unitário",
		"Comissão",
		"Frete",
	}

	m, err := ResolveSales(headers)
	if err != nil {
		t.Fatalf("ResolveSales() error = %v", err)
	}

	expected := map[string]string{
		FieldDataVenda:  "Data Venda",
		FieldNF:         "Número",
		FieldSKU:        "SKU",
		FieldDescricao:  "Descrição do Produto",
		FieldQuantidade: "Quantidade",
		FieldPrecoUnit:  "Preço Unitário",
		FieldComissao:   "Comissão",
		FieldFrete:      "Frete",
	}
	for field, header := range expected {
		if m[field] != header {
			t.Errorf("campo %s resolveu para %q, want %q", field, m[field], header)
		}
	}
}

func TestResolveSalesRulePriority(t *testing.T) {
	// "SKU do Produto" contém SKU e também casa com DESCRI? Não: contém
	// "PRODUTO". A regra SKU vem antes de DESCRI, então o cabeçalho fica
	// com SKU e "Descrição" segue livre para DESC_PRODUTO.
	headers := []string{
		"Data", "Número NF", "SKU do Produto", "Descrição",
		"Quantidade", "Preço Unit.", "Comissões", "Valor Frete",
	}
	m, err := ResolveSales(headers)
	if err != nil {
		t.Fatalf("ResolveSales() error = %v", err)
	}
	if m[FieldSKU] != "SKU do Produto" {
		t.Errorf("SKU = %q, want %q", m[FieldSKU], "SKU do Produto")
	}
	if m[FieldDescricao] != "Descrição" {
		t.Errorf("DESC_PRODUTO = %q, want %q", m[FieldDescricao], "Descrição")
	}
	if m[FieldNF] != "Número NF" {
		t.Errorf("NF = %q, want %q", m[FieldNF], "Número NF")
	}
}

func TestResolveSalesFirstHeaderWins(t *testing.T) {
	// dois cabeçalhos casando com DATA: o primeiro fica com o campo
	headers := []string{
		"Data Venda", "Data Emissão", "Número", "SKU",
		"Quantidade", "Preço Unitário", "Comissão", "Frete",
	}
	m, err := ResolveSales(headers)
	if err != nil {
		t.Fatalf("ResolveSales() error = %v", err)
	}
	if m[FieldDataVenda] != "Data Venda" {
		t.Errorf("DATA_VENDA = %q, want %q", m[FieldDataVenda], "Data Venda")
	}
}

func TestResolveSalesNFFallbackMojibake(t *testing.T) {
	// "NÃºmero" é o que sobra quando o CSV Latin-1 foi regravado como
	// UTF-8: a simplificação não produz NUMERO nem NUMER, e só a passada
	// literal de emergência resolve.
	headers := []string{
		"Data Venda", "NÃºmero", "SKU", "Quantidade",
		"Preço Unitário", "Comissão", "Frete",
	}
	m, err := ResolveSales(headers)
	if err != nil {
		t.Fatalf("ResolveSales() error = %v", err)
	}
	if m[FieldNF] != "NÃºmero" {
		t.Errorf("NF = %q, want %q", m[FieldNF], "NÃºmero")
	}
}

func TestResolveSalesMissingField(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		field   string
	}{
		{
			"sem NF",
			[]string{"Data", "SKU", "Quantidade", "Preço Unitário", "Comissão", "Frete"},
			FieldNF,
		},
		{
			"sem SKU",
			[]string{"Data", "Número", "Quantidade", "Preço Unitário", "Comissão", "Frete"},
			FieldSKU,
		},
		{
			"sem frete",
			[]string{"Data", "Número", "SKU", "Quantidade", "Preço Unitário", "Comissão"},
			FieldFrete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSales(tt.headers)
			var missing *types.MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("ResolveSales() error = %v, want MissingFieldError", err)
			}
			if missing.Field != tt.field {
				t.Errorf("campo faltante = %q, want %q", missing.Field, tt.field)
			}
			if missing.Table != "vendas" {
				t.Errorf("tabela = %q, want %q", missing.Table, "vendas")
			}
		})
	}
}

func TestResolveSalesDescricaoOptional(t *testing.T) {
	headers := []string{
		"Data", "Número", "SKU", "Quantidade",
		"Preço Unitário", "Comissão", "Frete",
	}
	m, err := ResolveSales(headers)
	if err != nil {
		t.Fatalf("ResolveSales() error = %v", err)
	}
	if _, ok := m[FieldDescricao]; ok {
		t.Errorf("DESC_PRODUTO não deveria resolver sem cabeçalho de descrição")
	}
}

func TestResolveCost(t *testing.T) {
	tests := []struct {
		name       string
		headers    []string
		wantSKU    string
		wantCusto  string
		wantErrFor string
	}{
		{
			name:      "cabecalhos diretos",
			headers:   []string{"SKU", "Custo Unitário"},
			wantSKU:   "SKU",
			wantCusto: "Custo Unitário",
		},
		{
			name:      "codigo no lugar de SKU",
			headers:   []string{"Código do Produto", "Custo"},
			wantSKU:   "Código do Produto",
			wantCusto: "Custo",
		},
		{
			name:       "sem custo",
			headers:    []string{"SKU", "Preço"},
			wantErrFor: FieldCusto,
		},
		{
			name:       "sem SKU",
			headers:    []string{"Produto", "Custo"},
			wantErrFor: FieldSKU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ResolveCost(tt.headers)
			if tt.wantErrFor != "" {
				var missing *types.MissingFieldError
				if !errors.As(err, &missing) {
					t.Fatalf("ResolveCost() error = %v, want MissingFieldError", err)
				}
				if missing.Field != tt.wantErrFor {
					t.Errorf("campo faltante = %q, want %q", missing.Field, tt.wantErrFor)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveCost() error = %v", err)
			}
			if m[FieldSKU] != tt.wantSKU {
				t.Errorf("SKU = %q, want %q", m[FieldSKU], tt.wantSKU)
			}
			if m[FieldCusto] != tt.wantCusto {
				t.Errorf("CUSTO = %q, want %q", m[FieldCusto], tt.wantCusto)
			}
		})
	}
}
