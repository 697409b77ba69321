package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// ChannelSlice é uma fatia do gráfico de vendas por canal.
type ChannelSlice struct {
	Channel string
	Total   decimal.Decimal
}

// DailyPoint é um ponto da série de evolução diária das vendas.
type DailyPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// SalesByChannel agrupa o subconjunto por canal somando valor_total.
// A ordem de saída é a ordem de primeira aparição de cada canal.
func SalesByChannel(sales []entity.Sale) []ChannelSlice {
	totals := make(map[string]decimal.Decimal, 8)
	order := make([]string, 0, 8)
	for _, s := range sales {
		if _, seen := totals[s.Channel]; !seen {
			order = append(order, s.Channel)
		}
		totals[s.Channel] = totals[s.Channel].Add(s.LineValue)
	}

	out := make([]ChannelSlice, 0, len(order))
	for _, ch := range order {
		out = append(out, ChannelSlice{Channel: ch, Total: totals[ch]})
	}
	return out
}

// SalesByDay agrupa o subconjunto por data (dia) somando valor_total,
// em ordem cronológica ascendente.
func SalesByDay(sales []entity.Sale) []DailyPoint {
	totals := make(map[time.Time]decimal.Decimal, len(sales))
	for _, s := range sales {
		day := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
		totals[day] = totals[day].Add(s.LineValue)
	}

	out := make([]DailyPoint, 0, len(totals))
	for day, total := range totals {
		out = append(out, DailyPoint{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
