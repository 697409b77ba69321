package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopad/ecopad-manager/internal/application/usecase"
)

// ReportHandler entrega o relatório imprimível do painel.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SummaryPDF gera o PDF do resumo para a seleção dada.
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	bytes, err := h.uc.GetSummaryPDF(parseFilter(c))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumo.pdf"`)
	return c.Send(bytes)
}
