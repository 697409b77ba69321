package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// GenerateInsights aplica as heurísticas de análise sobre as saídas dos
// motores e devolve no máximo um insight por categoria, na ordem
// canal → estoque → financeiro → qualidade. Funções puras: sem I/O,
// sem aleatoriedade, sem pausa artificial.
func GenerateInsights(sales []entity.Sale, stock []StockStatus, summary Summary) []entity.Insight {
	insights := make([]entity.Insight, 0, 4)

	if channel, ok := topChannel(sales); ok {
		insights = append(insights, entity.Insight{
			Category: entity.InsightCategoryChannel,
			Text:     fmt.Sprintf("Canal forte: %s", channel),
		})
	}

	// Primeira posição BAIXO na ordem de saída do motor de estoque, não a de
	// maior déficit. Regra "primeiro encontrado", reproduzível em teste.
	for _, s := range stock {
		if s.Status == entity.StockStatusLow {
			insights = append(insights, entity.Insight{
				Category: entity.InsightCategoryInventory,
				Text:     fmt.Sprintf("Estoque baixo: %s", s.ProductName),
			})
			break
		}
	}

	// Binário: lucro negativo alerta, qualquer outro valor (zero incluso)
	// afirma. Sem faixas por magnitude.
	text := "Operação lucrativa."
	if summary.Profit.IsNegative() {
		text = "Operação com prejuízo."
	}
	insights = append(insights, entity.Insight{
		Category: entity.InsightCategoryFinancial,
		Text:     text,
	})

	if summary.UnresolvedProducts > 0 {
		insights = append(insights, entity.Insight{
			Category: entity.InsightCategoryQuality,
			Text: fmt.Sprintf("%d produto(s) vendido(s) sem cadastro no catálogo; custo assumido zero.",
				summary.UnresolvedProducts),
		})
	}

	return insights
}

// topChannel devolve o canal com maior soma de valor_total no subconjunto.
// Empate resolve pelo primeiro canal encontrado na ordem de entrada
// (argmax estável, não alfabético).
func topChannel(sales []entity.Sale) (string, bool) {
	if len(sales) == 0 {
		return "", false
	}

	totals := make(map[string]decimal.Decimal, 8)
	order := make([]string, 0, 8)
	for _, s := range sales {
		if _, seen := totals[s.Channel]; !seen {
			order = append(order, s.Channel)
		}
		totals[s.Channel] = totals[s.Channel].Add(s.LineValue)
	}

	best := order[0]
	for _, ch := range order[1:] {
		if totals[ch].GreaterThan(totals[best]) {
			best = ch
		}
	}
	return best, true
}
