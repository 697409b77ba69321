package entity

// Categorias de insight geradas pelas heurísticas de análise.
const (
	InsightCategoryChannel   = "canal"
	InsightCategoryInventory = "estoque"
	InsightCategoryFinancial = "financeiro"
	InsightCategoryQuality   = "qualidade" // referências de produto não resolvidas
)

// Insight é uma observação textual derivada por regra sobre o conjunto
// filtrado atual. Efêmero: gerado a cada avaliação, nunca persistido.
type Insight struct {
	Category string
	Text     string
}
