package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedCost representa um custo fixo lançado (aba Custos).
type FixedCost struct {
	Date   time.Time
	Amount decimal.Decimal // >= 0
}
