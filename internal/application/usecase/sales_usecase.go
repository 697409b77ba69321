package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/domain"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/internal/domain/repository"
)

// SalesUseCase anexa vendas ao livro persistido. Vendas são imutáveis:
// só existe anexar, nunca editar. Depois de um anexo bem-sucedido a sessão
// é recarregada por inteiro — sem atualização incremental.
type SalesUseCase struct {
	store   repository.LedgerStore
	session *session.Session
}

// NewSalesUseCase constrói o caso de uso.
func NewSalesUseCase(store repository.LedgerStore, s *session.Session) *SalesUseCase {
	return &SalesUseCase{store: store, session: s}
}

// Append valida o registro, atribui id e valor derivado, persiste e
// recarrega a sessão. Qualquer erro do store propaga para o chamador
// decidir entre repetir ou alertar.
func (uc *SalesUseCase) Append(ctx context.Context, req dto.AppendSaleRequest) (*dto.AppendSaleResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("data %q deve ser YYYY-MM-DD: %w", req.Date, domain.ErrInvalidInput)
	}
	if req.ProductID == "" {
		return nil, fmt.Errorf("id_produto obrigatório: %w", domain.ErrInvalidInput)
	}
	if req.Channel == "" {
		return nil, fmt.Errorf("plataforma obrigatória: %w", domain.ErrInvalidInput)
	}
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("qtd deve ser maior que zero: %w", domain.ErrInvalidInput)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("valor_unit não pode ser negativo: %w", domain.ErrInvalidInput)
	}

	sale := entity.Sale{
		ID:        uuid.NewString(),
		Date:      date,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Channel:   req.Channel,
		LineValue: req.Quantity.Mul(req.UnitPrice),
	}

	if err := uc.store.AppendSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("anexar venda: %w", err)
	}

	if err := uc.session.Reload(ctx); err != nil {
		return nil, fmt.Errorf("recarregar sessão após anexo: %w", err)
	}

	return &dto.AppendSaleResponse{ID: sale.ID, LineValue: sale.LineValue}, nil
}
