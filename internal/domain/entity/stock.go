package entity

import "github.com/shopspring/decimal"

// Status de estoque calculados pelo motor de avaliação.
const (
	StockStatusLow = "BAIXO" // estoque atual <= ponto de reposição (limite inclusivo)
	StockStatusOK  = "OK"
)

// StockItem representa a posição de estoque de um produto (aba Estoque).
// O modelo guarda os três contadores, nunca um saldo corrente persistido:
// o estoque atual é recalculado a cada avaliação.
type StockItem struct {
	ProductID    string
	InitialStock decimal.Decimal
	Inbound      decimal.Decimal // entradas acumuladas
	Outbound     decimal.Decimal // saídas acumuladas
	ReorderPoint decimal.Decimal
}

// CurrentStock devolve o saldo derivado: inicial + entradas - saídas.
func (s StockItem) CurrentStock() decimal.Decimal {
	return s.InitialStock.Add(s.Inbound).Sub(s.Outbound)
}
