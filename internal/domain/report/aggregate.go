package report

import (
	"github.com/shopspring/decimal"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// Summary é o resultado da agregação financeira sobre um subconjunto
// filtrado de vendas. Valores em decimal exato; nenhum arredondamento
// acontece aqui — formatação monetária é responsabilidade do chamador.
type Summary struct {
	Revenue       decimal.Decimal // Σ valor_total do subconjunto
	Units         decimal.Decimal // Σ qtd do subconjunto
	VariableCost  decimal.Decimal // Σ qtd × custo_unit (left join com o catálogo)
	FixedCost     decimal.Decimal // Σ de TODOS os custos fixos (não filtrado por período)
	Profit        decimal.Decimal // Revenue - FixedCost - VariableCost
	AverageTicket decimal.Decimal // Revenue / Units; zero quando Units == 0

	// UnresolvedProducts conta os id_produto distintos das vendas que não
	// existem no catálogo. Essas vendas seguem contando em Revenue/Units e
	// contribuem custo zero; o contador alimenta o insight de qualidade.
	UnresolvedProducts int
}

// Aggregate calcula receita, unidades, custo variável, custo fixo e lucro
// para o subconjunto de vendas.
//
// Custo variável usa left join com o catálogo: venda sem produto cadastrado
// nunca é erro nem descarte — assume custo zero e é contada para o insight
// de qualidade de dados.
//
// Custos fixos são somados integralmente, sem filtro de período, igual ao
// comportamento observado do painel original.
func Aggregate(sales []entity.Sale, products []entity.Product, fixedCosts []entity.FixedCost) Summary {
	costByID := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		costByID[p.ID] = p.UnitCost
	}

	var sum Summary
	unresolved := make(map[string]bool)

	for _, s := range sales {
		sum.Revenue = sum.Revenue.Add(s.LineValue)
		sum.Units = sum.Units.Add(s.Quantity)

		if cost, ok := costByID[s.ProductID]; ok {
			sum.VariableCost = sum.VariableCost.Add(s.Quantity.Mul(cost))
		} else {
			unresolved[s.ProductID] = true
		}
	}

	for _, c := range fixedCosts {
		sum.FixedCost = sum.FixedCost.Add(c.Amount)
	}

	sum.Profit = sum.Revenue.Sub(sum.FixedCost).Sub(sum.VariableCost)
	if sum.Units.IsPositive() {
		sum.AverageTicket = sum.Revenue.Div(sum.Units)
	}
	sum.UnresolvedProducts = len(unresolved)
	return sum
}
