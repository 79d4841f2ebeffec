package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

// LoadSalesTable lê o export de vendas do Bling: CSV separado por ponto e
// vírgula, codificado em Latin-1, todas as colunas como texto. A primeira
// linha é o cabeçalho; linhas totalmente vazias são descartadas.
func (r *InputRepositoryImpl) LoadSalesTable(path string) (*entity.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo de vendas: %w", err)
	}
	defer file.Close()

	decoded := transform.NewReader(bufio.NewReader(file), charmap.ISO8859_1.NewDecoder())
	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o CSV de vendas: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("arquivo de vendas vazio: %s", path)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &entity.RawTable{
		Headers: headers,
		Source:  path,
	}

	for _, record := range records[1:] {
		trimmed := make([]string, len(record))
		for i, cell := range record {
			trimmed[i] = strings.TrimSpace(cell)
		}
		if isRowEmpty(trimmed) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(trimmed) {
				row[header] = trimmed[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
