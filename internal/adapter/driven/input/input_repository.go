package input

import (
	"github.com/vendalytics/bling-lucro-go/internal/domain/repository"
)

// InputRepositoryImpl implementa o InputRepository lendo arquivos locais.
type InputRepositoryImpl struct{}

// NewInputRepository cria uma nova implementação do InputRepository.
func NewInputRepository() repository.InputRepository {
	return &InputRepositoryImpl{}
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
