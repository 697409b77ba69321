// Package pdf implementa o relatório imprimível do painel: os KPIs do
// período selecionado, os insights e o controle de estoque em uma página A4.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/ecopad/ecopad-manager/internal/application/dto"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32} // verde EcoPad
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 183, Green: 28, Blue: 28}
)

// MarotoSummaryGenerator implementa usecase.SummaryPDFGenerator com Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator constrói o gerador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateSummaryPDF monta o documento e devolve seus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(
	summary *dto.DashboardSummaryDTO,
	insights []dto.InsightDTO,
	stock []dto.StockStatusDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Visão Geral da Operação", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(insightRows(insights)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(stockHeaderRow())
	m.AddRows(stockRows(stock)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("EcoPad Manager — Visão Geral da Operação", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRows: os quatro indicadores do painel mais o ticket médio.
func kpiRows(summary *dto.DashboardSummaryDTO) []core.Row {
	kpi := func(label string, value decimal.Decimal, money bool) core.Col {
		v := value.StringFixed(0)
		if money {
			v = "R$ " + value.StringFixed(2)
		}
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(v, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		)
	}

	return []core.Row{
		row.New(14).Add(
			kpi("Faturamento", summary.Revenue, true),
			kpi("Itens vendidos", summary.Units, false),
			kpi("Custos fixos", summary.FixedCost, true),
			kpi("Resultado", summary.Profit, true),
		),
		row.New(10).Add(
			kpi("Custo variável", summary.VariableCost, true),
			kpi("Ticket médio", summary.AverageTicket, true),
		),
	}
}

// insightRows: uma linha por observação, alertas em vermelho.
func insightRows(insights []dto.InsightDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Análise do Assistente", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, i := range insights {
		color := colorGray
		if i.Category == entity.InsightCategoryInventory || i.Category == entity.InsightCategoryQuality {
			color = colorAlert
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("• "+i.Text, props.Text{Size: 9, Color: color, Top: 1}),
		)))
	}
	return rows
}

func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Produto", 6, align.Left),
		h("Atual", 2, align.Right),
		h("Reposição", 2, align.Right),
		h("Status", 2, align.Center),
	)
}

func stockRows(stock []dto.StockStatusDTO) []core.Row {
	rows := make([]core.Row, 0, len(stock))
	for _, s := range stock {
		statusColor := colorGray
		if s.Status == entity.StockStatusLow {
			statusColor = colorAlert
		}
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(s.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(s.CurrentStock.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(s.ReorderPoint.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(s.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return rows
}
