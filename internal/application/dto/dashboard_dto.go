package dto

import "github.com/shopspring/decimal"

// FilterRequest seleção do operador para período (rótulos de mês do
// calendário) e canal. Listas vazias = sem restrição.
type FilterRequest struct {
	Months   []string
	Channels []string
}

// DashboardSummaryDTO resposta de GET /api/dashboard/summary: os KPIs do
// painel mais as duas séries dos gráficos (pizza por canal e evolução
// diária). Valores arredondados a 2 casas aqui — formatação é papel da
// borda, nunca do motor.
type DashboardSummaryDTO struct {
	Revenue       decimal.Decimal `json:"revenue"`        // faturamento do subconjunto filtrado
	Units         decimal.Decimal `json:"units"`          // itens vendidos
	VariableCost  decimal.Decimal `json:"variable_cost"`  // custo variável (join com catálogo)
	FixedCost     decimal.Decimal `json:"fixed_cost"`     // custos fixos totais
	Profit        decimal.Decimal `json:"profit"`         // resultado
	AverageTicket decimal.Decimal `json:"average_ticket"` // zero quando não há unidades

	SalesByChannel []ChannelSliceDTO `json:"sales_by_channel"`
	SalesByDay     []DailyPointDTO   `json:"sales_by_day"`

	UnresolvedProducts int `json:"unresolved_products"` // vendas com produto fora do catálogo
}

// ChannelSliceDTO fatia do gráfico de vendas por canal.
type ChannelSliceDTO struct {
	Channel string          `json:"channel"`
	Total   decimal.Decimal `json:"total"`
}

// DailyPointDTO ponto da série de evolução diária.
type DailyPointDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// InsightDTO observação textual derivada por regra.
type InsightDTO struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// StockStatusDTO linha do controle de estoque pronta para exibição.
type StockStatusDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	Status       string          `json:"status"`
}

// FilterOptionsDTO opções selecionáveis de período e canal para a camada
// de apresentação montar os seletores.
type FilterOptionsDTO struct {
	Months   []string `json:"months"`
	Channels []string `json:"channels"`
}
