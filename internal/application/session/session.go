// Package session mantém o estado carregado da aplicação: um snapshot
// imutável das cinco tabelas normalizadas, trocado por inteiro a cada
// recarga. Nenhum estado global ambiente — quem precisa das tabelas recebe
// a Session por injeção.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecopad/ecopad-manager/internal/domain"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/internal/domain/repository"
	"github.com/ecopad/ecopad-manager/pkg/logger"
)

// Snapshot é o conjunto imutável de tabelas de uma carga. As vendas já
// carregam o rótulo de mês do left join com o calendário; linhas sem data
// correspondente ficam com rótulo vazio.
type Snapshot struct {
	Tables   entity.Tables
	LoadedAt time.Time
}

// Session guarda o snapshot corrente. O mutex protege apenas a troca do
// ponteiro: os snapshots em si nunca são mutados depois de montados, então
// leitores podem usá-los sem coordenação.
type Session struct {
	store repository.LedgerStore
	log   *logger.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// New constrói a sessão. Nenhuma carga acontece aqui; chame Reload.
func New(store repository.LedgerStore, log *logger.Logger) *Session {
	return &Session{store: store, log: log}
}

// Reload lê o livro persistido, monta um snapshot novo com os rótulos de
// mês anexados e o troca pelo corrente. Em erro, o snapshot anterior
// permanece válido.
func (s *Session) Reload(ctx context.Context) error {
	tables, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	tables.Sales = attachMonthLabels(tables.Sales, tables.Calendar)
	snap := &Snapshot{Tables: *tables, LoadedAt: time.Now()}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.log.Info().Time("loaded_at", snap.LoadedAt).Msg("snapshot da sessão recarregado")
	return nil
}

// Snapshot devolve o snapshot corrente. Erro se nenhuma carga aconteceu
// ainda (a aplicação deve recarregar no bootstrap).
func (s *Session) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, fmt.Errorf("sessão sem snapshot carregado: %w", domain.ErrNotFound)
	}
	return s.snap, nil
}

// attachMonthLabels faz o left join venda→calendário por data (dia).
// Data duplicada no calendário: vale a primeira entrada. Data sem entrada:
// rótulo vazio, a linha falha filtros de período ativos.
func attachMonthLabels(sales []entity.Sale, calendar []entity.CalendarEntry) []entity.Sale {
	labelByDay := make(map[string]string, len(calendar))
	for _, c := range calendar {
		key := c.Date.Format("2006-01-02")
		if _, exists := labelByDay[key]; !exists {
			labelByDay[key] = c.MonthLabel
		}
	}

	out := make([]entity.Sale, len(sales))
	for i, s := range sales {
		out[i] = s.WithMonthLabel(labelByDay[s.Date.Format("2006-01-02")])
	}
	return out
}
