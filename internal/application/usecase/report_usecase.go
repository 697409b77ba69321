package usecase

import (
	"fmt"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
)

// SummaryPDFGenerator é o contrato com o gerador de PDF (infraestrutura).
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(summary *dto.DashboardSummaryDTO, insights []dto.InsightDTO, stock []dto.StockStatusDTO) ([]byte, error)
}

// ReportUseCase produz o relatório imprimível do painel: os mesmos KPIs,
// insights e controle de estoque do dashboard, em A4.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	pdf       SummaryPDFGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, pdf SummaryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, pdf: pdf}
}

// GetSummaryPDF roda o pipeline do dashboard para a seleção dada e entrega
// os bytes do PDF.
func (uc *ReportUseCase) GetSummaryPDF(filter dto.FilterRequest) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary(filter)
	if err != nil {
		return nil, err
	}
	insights, err := uc.dashboard.GetInsights(filter)
	if err != nil {
		return nil, err
	}
	stock, err := uc.dashboard.GetStock()
	if err != nil {
		return nil, err
	}

	bytes, err := uc.pdf.GenerateSummaryPDF(summary, insights, stock)
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do resumo: %w", err)
	}
	return bytes, nil
}
