package dto

import "github.com/shopspring/decimal"

// AppendSaleRequest corpo de POST /api/sales.
type AppendSaleRequest struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Channel   string          `json:"channel"`
}

// AppendSaleResponse confirmação do anexo com os campos derivados.
type AppendSaleResponse struct {
	ID        string          `json:"id"`
	LineValue decimal.Decimal `json:"line_value"`
}
