package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/domain"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/pkg/logger"
)

// fakeStore devolve tabelas fixas ou um erro, contando as cargas.
type fakeStore struct {
	tables *entity.Tables
	err    error
	loads  int
}

func (f *fakeStore) Load(_ context.Context) (*entity.Tables, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	cp := *f.tables
	return &cp, nil
}

func (f *fakeStore) AppendSale(_ context.Context, _ entity.Sale) error { return nil }

func dia(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

func tabelasBase() *entity.Tables {
	qty := decimal.NewFromInt(2)
	price := decimal.NewFromInt(50)
	return &entity.Tables{
		Sales: []entity.Sale{
			{ID: "v1", Date: dia(10), ProductID: "P1", Quantity: qty, UnitPrice: price, Channel: "Shopee", LineValue: qty.Mul(price)},
			{ID: "v2", Date: dia(25), ProductID: "P1", Quantity: qty, UnitPrice: price, Channel: "Shopee", LineValue: qty.Mul(price)},
		},
		Calendar: []entity.CalendarEntry{
			{Date: dia(10), MonthLabel: "Janeiro"},
		},
	}
}

func TestSession_SnapshotAntesDaCargaEhErro(t *testing.T) {
	s := session.New(&fakeStore{tables: tabelasBase()}, logger.Nop())

	_, err := s.Snapshot()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Left join com o calendário: v1 ganha "Janeiro", v2 (dia 25, sem entrada
// no calendário) fica sem rótulo.
func TestSession_ReloadAnexaRotulosDeMes(t *testing.T) {
	s := session.New(&fakeStore{tables: tabelasBase()}, logger.Nop())

	require.NoError(t, s.Reload(context.Background()))
	snap, err := s.Snapshot()
	require.NoError(t, err)

	require.Len(t, snap.Tables.Sales, 2)
	assert.Equal(t, "Janeiro", snap.Tables.Sales[0].MonthLabel)
	assert.Empty(t, snap.Tables.Sales[1].MonthLabel)
}

// Recarga com erro preserva o snapshot anterior.
func TestSession_ErroNaRecargaMantemSnapshot(t *testing.T) {
	store := &fakeStore{tables: tabelasBase()}
	s := session.New(store, logger.Nop())
	require.NoError(t, s.Reload(context.Background()))

	store.err = errors.New("disco sumiu")
	err := s.Reload(context.Background())

	require.Error(t, err)
	snap, snapErr := s.Snapshot()
	require.NoError(t, snapErr)
	assert.Len(t, snap.Tables.Sales, 2)
}
