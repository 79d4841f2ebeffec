package input

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
	"github.com/vendalytics/bling-lucro-go/internal/domain/schema"
)

// LoadCostTable lê a planilha de custos (.xlsx) e concatena todas as abas
// em uma tabela só. A primeira linha de cada aba é o seu cabeçalho e é
// resolvida por palavra-chave aba por aba: abas podem rotular as colunas de
// forma diferente ("SKU"/"Custo" numa, "Código"/"Custo Unitário" noutra) e
// as linhas saem todas chaveadas pelos campos canônicos. Abas sem linhas de
// dados são ignoradas; uma aba com dados cujo cabeçalho não resolve é
// fatal.
func (r *InputRepositoryImpl) LoadCostTable(path string) (*entity.RawTable, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha de custos: %w", err)
	}
	defer wb.Close()

	table := &entity.RawTable{Source: path}

	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		headers := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.TrimSpace(h)
		}

		var records [][]string
		for _, record := range rows[1:] {
			trimmed := make([]string, len(record))
			for i, cell := range record {
				trimmed[i] = strings.TrimSpace(cell)
			}
			if isRowEmpty(trimmed) {
				continue
			}
			records = append(records, trimmed)
		}
		if len(records) == 0 {
			continue
		}

		mapping, err := schema.ResolveCost(headers)
		if err != nil {
			return nil, fmt.Errorf("aba %q: %w", sheet, err)
		}

		// índice da coluna original de cada campo canônico desta aba
		colIndex := make(map[string]int, len(mapping))
		for field, header := range mapping {
			for i, h := range headers {
				if h == header {
					colIndex[field] = i
					break
				}
			}
		}

		for _, trimmed := range records {
			row := make(map[string]string, len(colIndex))
			for field, i := range colIndex {
				if i < len(trimmed) {
					row[field] = trimmed[i]
				} else {
					row[field] = ""
				}
			}
			table.Rows = append(table.Rows, row)
		}
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("planilha de custos sem dados: %s", path)
	}

	// as linhas já saem chaveadas pelos campos canônicos
	table.Headers = []string{schema.FieldSKU, schema.FieldCusto}

	return table, nil
}
