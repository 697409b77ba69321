package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/application/usecase"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/pkg/logger"
)

// ledgerFake serve tabelas em memória e acumula vendas anexadas, imitando
// a união histórica+incremental do store real.
type ledgerFake struct {
	tables   entity.Tables
	appended []entity.Sale
}

func (f *ledgerFake) Load(_ context.Context) (*entity.Tables, error) {
	cp := f.tables
	cp.Sales = append(append([]entity.Sale{}, f.tables.Sales...), f.appended...)
	return &cp, nil
}

func (f *ledgerFake) AppendSale(_ context.Context, sale entity.Sale) error {
	f.appended = append(f.appended, sale)
	return nil
}

func dia(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

func vendaDe(id, prod, channel string, d int, qty, price int64) entity.Sale {
	q := decimal.NewFromInt(qty)
	p := decimal.NewFromInt(price)
	return entity.Sale{
		ID: id, Date: dia(d), ProductID: prod,
		Quantity: q, UnitPrice: p, Channel: channel, LineValue: q.Mul(p),
	}
}

func cenario() *ledgerFake {
	return &ledgerFake{tables: entity.Tables{
		Products: []entity.Product{
			{ID: "P1", Name: "Pad Grande", UnitCost: decimal.NewFromInt(5)},
			{ID: "P2", Name: "Pad Pequeno", UnitCost: decimal.NewFromInt(10)},
		},
		Sales: []entity.Sale{
			vendaDe("v1", "P1", "X", 10, 2, 50), // valor 100, custo 10
			vendaDe("v2", "P2", "Y", 11, 1, 50), // valor 50, custo 10
		},
		Stock: []entity.StockItem{
			{ProductID: "P1", InitialStock: decimal.NewFromInt(10), Outbound: decimal.NewFromInt(8), ReorderPoint: decimal.NewFromInt(5)},
		},
		FixedCosts: []entity.FixedCost{
			{Date: dia(1), Amount: decimal.NewFromInt(30)},
		},
		Calendar: []entity.CalendarEntry{
			{Date: dia(10), MonthLabel: "Janeiro"},
			{Date: dia(11), MonthLabel: "Janeiro"},
			{Date: dia(12), MonthLabel: "Janeiro"},
		},
	}}
}

func sessaoCarregada(t *testing.T, store *ledgerFake) *session.Session {
	t.Helper()
	s := session.New(store, logger.Nop())
	require.NoError(t, s.Reload(context.Background()))
	return s
}

// Pipeline completo do painel: receita 150, custo variável 20, custo fixo
// 30, lucro 100, com as duas séries montadas.
func TestDashboard_GetSummaryPipelineCompleto(t *testing.T) {
	uc := usecase.NewDashboardUseCase(sessaoCarregada(t, cenario()))

	got, err := uc.GetSummary(dto.FilterRequest{})

	require.NoError(t, err)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(150)), "receita = %s", got.Revenue)
	assert.True(t, got.Units.Equal(decimal.NewFromInt(3)))
	assert.True(t, got.VariableCost.Equal(decimal.NewFromInt(20)))
	assert.True(t, got.FixedCost.Equal(decimal.NewFromInt(30)))
	assert.True(t, got.Profit.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.SalesByChannel, 2)
	assert.Equal(t, "X", got.SalesByChannel[0].Channel)
	require.Len(t, got.SalesByDay, 2)
	assert.Equal(t, "2025-01-10", got.SalesByDay[0].Date)
}

func TestDashboard_GetSummaryComFiltroDeCanal(t *testing.T) {
	uc := usecase.NewDashboardUseCase(sessaoCarregada(t, cenario()))

	got, err := uc.GetSummary(dto.FilterRequest{Channels: []string{"X"}})

	require.NoError(t, err)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.Units.Equal(decimal.NewFromInt(2)))
}

// Canal forte X (100 > 50), estoque P1 em 2 <= 5 ⇒ BAIXO, lucro positivo.
func TestDashboard_GetInsights(t *testing.T) {
	uc := usecase.NewDashboardUseCase(sessaoCarregada(t, cenario()))

	got, err := uc.GetInsights(dto.FilterRequest{})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, entity.InsightCategoryChannel, got[0].Category)
	assert.Equal(t, "Canal forte: X", got[0].Text)
	assert.Equal(t, entity.InsightCategoryInventory, got[1].Category)
	assert.Equal(t, "Estoque baixo: Pad Grande", got[1].Text)
	assert.Equal(t, entity.InsightCategoryFinancial, got[2].Category)
	assert.Equal(t, "Operação lucrativa.", got[2].Text)
}

func TestDashboard_GetStock(t *testing.T) {
	uc := usecase.NewDashboardUseCase(sessaoCarregada(t, cenario()))

	got, err := uc.GetStock()

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pad Grande", got[0].ProductName)
	assert.True(t, got[0].CurrentStock.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, entity.StockStatusLow, got[0].Status)
}

func TestDashboard_GetFilterOptions(t *testing.T) {
	uc := usecase.NewDashboardUseCase(sessaoCarregada(t, cenario()))

	got, err := uc.GetFilterOptions()

	require.NoError(t, err)
	assert.Equal(t, []string{"Janeiro"}, got.Months)
	assert.Equal(t, []string{"X", "Y"}, got.Channels)
}
