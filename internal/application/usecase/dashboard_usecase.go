// Package usecase orquestra os motores de análise sobre o snapshot da
// sessão e monta as respostas prontas para exibição.
package usecase

import (
	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/domain/report"
)

// DashboardUseCase recalcula o painel inteiro a cada chamada a partir do
// snapshot corrente: filtro → agregação → estoque → insights. Sem cache,
// sem recomputação incremental — o conjunto é pequeno e residente em
// memória, recalcular tudo é a arquitetura.
type DashboardUseCase struct {
	session *session.Session
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(s *session.Session) *DashboardUseCase {
	return &DashboardUseCase{session: s}
}

// GetSummary devolve os KPIs e as séries dos gráficos para a seleção dada.
func (uc *DashboardUseCase) GetSummary(filter dto.FilterRequest) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.session.Snapshot()
	if err != nil {
		return nil, err
	}

	subset := report.FilterSales(snap.Tables.Sales, report.SalesFilter{
		Months:   filter.Months,
		Channels: filter.Channels,
	})
	summary := report.Aggregate(subset, snap.Tables.Products, snap.Tables.FixedCosts)

	channels := report.SalesByChannel(subset)
	channelDTOs := make([]dto.ChannelSliceDTO, 0, len(channels))
	for _, c := range channels {
		channelDTOs = append(channelDTOs, dto.ChannelSliceDTO{Channel: c.Channel, Total: c.Total.Round(2)})
	}

	days := report.SalesByDay(subset)
	dayDTOs := make([]dto.DailyPointDTO, 0, len(days))
	for _, d := range days {
		dayDTOs = append(dayDTOs, dto.DailyPointDTO{Date: d.Date.Format("2006-01-02"), Total: d.Total.Round(2)})
	}

	return &dto.DashboardSummaryDTO{
		Revenue:            summary.Revenue.Round(2),
		Units:              summary.Units,
		VariableCost:       summary.VariableCost.Round(2),
		FixedCost:          summary.FixedCost.Round(2),
		Profit:             summary.Profit.Round(2),
		AverageTicket:      summary.AverageTicket.Round(2),
		SalesByChannel:     channelDTOs,
		SalesByDay:         dayDTOs,
		UnresolvedProducts: summary.UnresolvedProducts,
	}, nil
}

// GetInsights roda as heurísticas sobre o mesmo pipeline do resumo e
// devolve as observações na ordem canônica das categorias.
func (uc *DashboardUseCase) GetInsights(filter dto.FilterRequest) ([]dto.InsightDTO, error) {
	snap, err := uc.session.Snapshot()
	if err != nil {
		return nil, err
	}

	subset := report.FilterSales(snap.Tables.Sales, report.SalesFilter{
		Months:   filter.Months,
		Channels: filter.Channels,
	})
	summary := report.Aggregate(subset, snap.Tables.Products, snap.Tables.FixedCosts)
	stock := report.EvaluateStock(snap.Tables.Stock, snap.Tables.Products)

	insights := report.GenerateInsights(subset, stock, summary)
	out := make([]dto.InsightDTO, 0, len(insights))
	for _, i := range insights {
		out = append(out, dto.InsightDTO{Category: i.Category, Text: i.Text})
	}
	return out, nil
}

// GetStock devolve o controle de estoque completo (independente de filtro
// de vendas), na ordem da planilha.
func (uc *DashboardUseCase) GetStock() ([]dto.StockStatusDTO, error) {
	snap, err := uc.session.Snapshot()
	if err != nil {
		return nil, err
	}

	stock := report.EvaluateStock(snap.Tables.Stock, snap.Tables.Products)
	out := make([]dto.StockStatusDTO, 0, len(stock))
	for _, s := range stock {
		out = append(out, dto.StockStatusDTO{
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			CurrentStock: s.CurrentStock,
			ReorderPoint: s.ReorderPoint,
			Status:       s.Status,
		})
	}
	return out, nil
}

// GetFilterOptions devolve os meses (ordem de primeira aparição no
// calendário) e canais (ordem de primeira aparição nas vendas)
// selecionáveis.
func (uc *DashboardUseCase) GetFilterOptions() (*dto.FilterOptionsDTO, error) {
	snap, err := uc.session.Snapshot()
	if err != nil {
		return nil, err
	}

	months := make([]string, 0, 12)
	seenMonth := make(map[string]bool, 12)
	for _, c := range snap.Tables.Calendar {
		if c.MonthLabel == "" || seenMonth[c.MonthLabel] {
			continue
		}
		seenMonth[c.MonthLabel] = true
		months = append(months, c.MonthLabel)
	}

	channels := make([]string, 0, 8)
	seenChannel := make(map[string]bool, 8)
	for _, s := range snap.Tables.Sales {
		if s.Channel == "" || seenChannel[s.Channel] {
			continue
		}
		seenChannel[s.Channel] = true
		channels = append(channels, s.Channel)
	}

	return &dto.FilterOptionsDTO{Months: months, Channels: channels}, nil
}
