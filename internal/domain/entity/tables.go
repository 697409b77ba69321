package entity

// Tables agrupa as cinco tabelas normalizadas devolvidas pelo contrato de
// carga do armazenamento. Nenhuma tabela é mutada após a carga; anexar uma
// venda produz um novo conjunto via recarga completa.
type Tables struct {
	Products   []Product
	Sales      []Sale
	Stock      []StockItem
	FixedCosts []FixedCost
	Calendar   []CalendarEntry
}
