package entity

import "time"

// CalendarEntry mapeia uma data para o rótulo legível do mês (aba Calendario).
// Usado apenas para expor os períodos selecionáveis no filtro.
type CalendarEntry struct {
	Date       time.Time
	MonthLabel string // ex.: "Janeiro", "Fevereiro"
}
