package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa um registro de venda (aba Vendas). Registros são imutáveis:
// vendas novas são anexadas ao final do livro, nunca editadas.
//
// MonthLabel vem do left join com o calendário no momento da montagem do
// snapshot; fica vazio quando a data não resolve para nenhuma entrada do
// calendário (a linha então falha qualquer filtro de período ativo).
type Sale struct {
	ID         string
	Date       time.Time
	ProductID  string
	Quantity   decimal.Decimal // > 0
	UnitPrice  decimal.Decimal // >= 0
	Channel    string          // rótulo livre (ex.: "Shopee", "Loja Física")
	MonthLabel string
	LineValue  decimal.Decimal // Quantity × UnitPrice, derivado na normalização
}

// WithMonthLabel devolve uma cópia da venda com o rótulo de mês atribuído.
func (s Sale) WithMonthLabel(label string) Sale {
	s.MonthLabel = label
	return s
}
