package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/application/usecase"
)

// DashboardHandler atende os endpoints do painel: KPIs, séries, estoque,
// insights e opções de filtro.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// parseFilter lê months e channels da query string (listas separadas por
// vírgula). Ausência de parâmetro = lista vazia = sem restrição.
func parseFilter(c *fiber.Ctx) dto.FilterRequest {
	return dto.FilterRequest{
		Months:   splitCSV(c.Query("months")),
		Channels: splitCSV(c.Query("channels")),
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetSummary devolve os KPIs e as séries dos gráficos do período/canal
// selecionados.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(parseFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetInsights devolve as observações geradas por regra para a seleção.
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	insights, err := h.uc.GetInsights(parseFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(insights)
}

// GetStock devolve o controle de estoque completo.
func (h *DashboardHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.uc.GetStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stock)
}

// GetFilterOptions devolve meses e canais selecionáveis.
func (h *DashboardHandler) GetFilterOptions(c *fiber.Ctx) error {
	options, err := h.uc.GetFilterOptions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(options)
}
