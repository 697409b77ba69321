package report

import (
	"github.com/shopspring/decimal"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// StockStatus é uma linha pronta para exibição do controle de estoque.
type StockStatus struct {
	ProductID    string
	ProductName  string
	CurrentStock decimal.Decimal
	ReorderPoint decimal.Decimal
	Status       string // entity.StockStatusLow | entity.StockStatusOK
}

// EvaluateStock junta as posições de estoque com o catálogo (inner join em
// id_produto) e calcula saldo e status por linha. Posição sem produto no
// catálogo é descartada: uma linha de estoque sem nome resolvível não é
// acionável — o inverso da política de custo zero da agregação.
//
// A ordem de saída é a ordem de entrada; nenhuma ordenação implícita. Quem
// quiser "mais crítico primeiro" ordena explicitamente.
func EvaluateStock(items []entity.StockItem, products []entity.Product) []StockStatus {
	nameByID := make(map[string]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}

	out := make([]StockStatus, 0, len(items))
	for _, item := range items {
		name, ok := nameByID[item.ProductID]
		if !ok {
			continue
		}

		current := item.CurrentStock()
		status := entity.StockStatusOK
		// Limite inclusivo: saldo igual ao ponto de reposição já é BAIXO
		// ("melhor repor cedo").
		if current.LessThanOrEqual(item.ReorderPoint) {
			status = entity.StockStatusLow
		}

		out = append(out, StockStatus{
			ProductID:    item.ProductID,
			ProductName:  name,
			CurrentStock: current,
			ReorderPoint: item.ReorderPoint,
			Status:       status,
		})
	}
	return out
}
