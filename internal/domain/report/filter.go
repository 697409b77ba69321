// Package report contém os motores puros de análise: filtro de vendas,
// agregação financeira, avaliação de estoque e geração de insights.
// Todas as funções são determinísticas e operam sobre entradas imutáveis;
// o chamador é quem decide quando recalcular.
package report

import "github.com/ecopad/ecopad-manager/internal/domain/entity"

// SalesFilter é a seleção do operador para período e canal.
// Seleção vazia em qualquer dimensão significa "sem restrição" — espelha o
// default união-de-todas-as-opções da camada de apresentação e vale para as
// duas dimensões (política única, previsível).
type SalesFilter struct {
	Months   []string
	Channels []string
}

// FilterSales aplica o filtro de mês e depois o de canal (conjuntivo, match
// exato) preservando a ordem original das linhas. Vendas sem rótulo de mês
// (data fora do calendário) falham qualquer filtro de período ativo.
func FilterSales(sales []entity.Sale, filter SalesFilter) []entity.Sale {
	months := toSet(filter.Months)
	channels := toSet(filter.Channels)

	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if len(months) > 0 && !months[s.MonthLabel] {
			continue
		}
		if len(channels) > 0 && !channels[s.Channel] {
			continue
		}
		out = append(out, s)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
