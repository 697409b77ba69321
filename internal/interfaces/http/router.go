package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/application/usecase"
	"github.com/ecopad/ecopad-manager/internal/domain"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	DashboardUC *usecase.DashboardUseCase
	SalesUC     *usecase.SalesUseCase
	ReportUC    *usecase.ReportUseCase
	Session     *session.Session
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/insights", dashboardHandler.GetInsights)

	api.Get("/stock", dashboardHandler.GetStock)
	api.Get("/filters", dashboardHandler.GetFilterOptions)

	salesHandler := NewSalesHandler(deps.SalesUC)
	api.Post("/sales", salesHandler.Append)

	sessionHandler := NewSessionHandler(deps.Session)
	api.Post("/session/reload", sessionHandler.Reload)

	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/summary.pdf", reportHandler.SummaryPDF)
}

// respondError traduz a taxonomia de erros do domínio para HTTP. Erros de
// integridade/ausência do store são do operador (dados de origem), não do
// cliente: voltam 500 com contexto suficiente para corrigir a planilha.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SESSION_NOT_LOADED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrMissingStore):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "MISSING_STORE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDataIntegrity):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "DATA_INTEGRITY", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
