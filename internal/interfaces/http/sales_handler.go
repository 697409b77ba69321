package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/application/usecase"
)

// SalesHandler atende o anexo de vendas.
type SalesHandler struct {
	uc *usecase.SalesUseCase
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(uc *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Append anexa uma venda ao livro e devolve o registro derivado.
func (h *SalesHandler) Append(c *fiber.Ctx) error {
	var req dto.AppendSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "corpo da requisição inválido",
		})
	}

	resp, err := h.uc.Append(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SessionHandler expõe a recarga explícita do snapshot.
type SessionHandler struct {
	session *session.Session
}

// NewSessionHandler constrói o handler.
func NewSessionHandler(s *session.Session) *SessionHandler {
	return &SessionHandler{session: s}
}

// Reload relê o livro persistido e troca o snapshot corrente.
func (h *SessionHandler) Reload(c *fiber.Ctx) error {
	if err := h.session.Reload(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "reloaded"})
}
