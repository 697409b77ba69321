package entity

import "github.com/shopspring/decimal"

// Product representa um item do catálogo de referência (aba Produtos).
// O catálogo é carregado uma vez por sessão e é somente-leitura para
// todos os componentes de cálculo.
type Product struct {
	ID        string
	Name      string
	UnitCost  decimal.Decimal // custo variável por unidade (>= 0)
	SalePrice decimal.Decimal // preço de venda sugerido (opcional, zero se ausente)
}
