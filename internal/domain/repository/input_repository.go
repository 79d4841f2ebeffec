package repository

import (
	"github.com/vendalytics/bling-lucro-go/internal/domain/entity"
)

// InputRepository define a interface dos fornecedores de tabelas brutas. O
// núcleo nunca lê o filesystem diretamente; só consome RawTables daqui.
type InputRepository interface {
	// LoadSalesTable lê o export de vendas do Bling (CSV ponto e vírgula,
	// Latin-1, tudo como texto).
	LoadSalesTable(path string) (*entity.RawTable, error)
	// LoadCostTable lê a planilha de custos (.xlsx), concatenando todas as
	// abas em uma tabela só.
	LoadCostTable(path string) (*entity.RawTable, error)
}
