package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/internal/domain/report"
)

func produto(id, name string, unitCost int64) entity.Product {
	return entity.Product{ID: id, Name: name, UnitCost: decimal.NewFromInt(unitCost)}
}

func custoFixo(amount int64) entity.FixedCost {
	return entity.FixedCost{
		Date:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(amount),
	}
}

// Cenário de referência: vendas X=100 e Y=50, custos fixos 30, custo
// variável 20 ⇒ receita 150 e lucro 100.
func TestAggregate_CenarioReferencia(t *testing.T) {
	sales := []entity.Sale{
		venda("v1", "Janeiro", "X", 2, 50),  // valor_total 100, custo 2×5=10
		venda("v2", "Janeiro", "Y", 1, 50),  // valor_total 50, custo 1×10=10
	}
	sales[1].ProductID = "P2"
	products := []entity.Product{produto("P1", "Pad Grande", 5), produto("P2", "Pad Pequeno", 10)}
	costs := []entity.FixedCost{custoFixo(30)}

	sum := report.Aggregate(sales, products, costs)

	assert.True(t, sum.Revenue.Equal(decimal.NewFromInt(150)), "receita = %s", sum.Revenue)
	assert.True(t, sum.Units.Equal(decimal.NewFromInt(3)))
	assert.True(t, sum.VariableCost.Equal(decimal.NewFromInt(20)))
	assert.True(t, sum.FixedCost.Equal(decimal.NewFromInt(30)))
	assert.True(t, sum.Profit.Equal(decimal.NewFromInt(100)), "lucro = %s", sum.Profit)
	assert.Zero(t, sum.UnresolvedProducts)
}

// Venda com produto fora do catálogo conta em receita e unidades,
// contribui custo zero e é contada como referência não resolvida —
// nunca descartada, nunca erro.
func TestAggregate_ProdutoSemCadastroCustoZero(t *testing.T) {
	s := venda("v1", "Janeiro", "Shopee", 4, 25) // valor_total 100
	s.ProductID = "FANTASMA"

	sum := report.Aggregate([]entity.Sale{s}, []entity.Product{produto("P1", "Pad", 5)}, nil)

	assert.True(t, sum.Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, sum.Units.Equal(decimal.NewFromInt(4)))
	assert.True(t, sum.VariableCost.IsZero())
	assert.Equal(t, 1, sum.UnresolvedProducts)
}

// Subconjunto vazio: tudo zero, ticket médio definido como zero (nunca
// divisão por zero) e lucro zero NÃO é prejuízo.
func TestAggregate_SubconjuntoVazio(t *testing.T) {
	sum := report.Aggregate(nil, nil, nil)

	assert.True(t, sum.Revenue.IsZero())
	assert.True(t, sum.Units.IsZero())
	assert.True(t, sum.AverageTicket.IsZero())
	assert.True(t, sum.Profit.IsZero())
	assert.False(t, sum.Profit.IsNegative(), "lucro zero não pode ser tratado como negativo")
}

func TestAggregate_TicketMedio(t *testing.T) {
	sales := []entity.Sale{
		venda("v1", "Janeiro", "Shopee", 2, 30), // 60
		venda("v2", "Janeiro", "Shopee", 2, 45), // 90
	}

	sum := report.Aggregate(sales, nil, nil)

	// 150 / 4 = 37.5
	require.True(t, sum.Units.Equal(decimal.NewFromInt(4)))
	assert.True(t, sum.AverageTicket.Equal(decimal.NewFromFloat(37.5)), "ticket = %s", sum.AverageTicket)
}

// Custos fixos somam integralmente, sem filtro de período: o mesmo total
// entra na agregação de qualquer subconjunto.
func TestAggregate_CustoFixoNaoFiltradoPorPeriodo(t *testing.T) {
	costs := []entity.FixedCost{custoFixo(10), custoFixo(20)}

	tudo := report.Aggregate([]entity.Sale{venda("v1", "Janeiro", "X", 1, 10)}, nil, costs)
	nada := report.Aggregate(nil, nil, costs)

	assert.True(t, tudo.FixedCost.Equal(decimal.NewFromInt(30)))
	assert.True(t, nada.FixedCost.Equal(decimal.NewFromInt(30)))
}
