package repository

import (
	"context"

	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// LedgerStore é o contrato com o colaborador de armazenamento.
//
// Load devolve as cinco tabelas normalizadas; arquivo ou planilha ausente é
// falha dura (domain.ErrMissingStore), nunca carga parcial silenciosa.
//
// AppendSale anexa um registro de venda ao livro persistido. Erro no retorno
// é o caminho de falha que o chamador usa para reexibir ou alertar; o motor
// não detecta colisões de escrita concorrente (última escrita vence).
type LedgerStore interface {
	Load(ctx context.Context) (*entity.Tables, error)
	AppendSale(ctx context.Context, sale entity.Sale) error
}
