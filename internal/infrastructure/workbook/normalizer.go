// Package workbook implementa o colaborador de armazenamento sobre uma
// pasta de trabalho Excel (excelize): carga das cinco tabelas, normalização
// de cabeçalhos e tipos, e anexação de vendas com escrita atômica.
package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ecopad/ecopad-manager/internal/domain"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
)

// foldTransformer remove marcas diacríticas: "Calendário" → "Calendario".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName padroniza um cabeçalho ou nome de planilha: apara espaços,
// minúsculas e acentos removidos. É a única forma canônica usada nos lookups.
func NormalizeName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// table é uma planilha já indexada: cabeçalhos normalizados → índice de coluna.
type table struct {
	sheet string
	cols  map[string]int
	rows  [][]string
}

// newTable monta o índice a partir das linhas cruas de excelize
// (primeira linha = cabeçalho).
func newTable(sheet string, raw [][]string) table {
	t := table{sheet: sheet, cols: make(map[string]int)}
	if len(raw) == 0 {
		return t
	}
	for i, h := range raw[0] {
		name := NormalizeName(h)
		if name == "" {
			continue
		}
		if _, dup := t.cols[name]; !dup {
			t.cols[name] = i
		}
	}
	t.rows = raw[1:]
	return t
}

// col devolve o índice da primeira coluna cujo nome normalizado bate com um
// dos apelidos. required=true gera ErrDataIntegrity com contexto de
// planilha e campo quando nada bate.
func (t table) col(required bool, aliases ...string) (int, error) {
	for _, a := range aliases {
		if idx, ok := t.cols[a]; ok {
			return idx, nil
		}
	}
	if required {
		return -1, fmt.Errorf("planilha %s: coluna %q: %w", t.sheet, aliases[0], domain.ErrDataIntegrity)
	}
	return -1, nil
}

// cell devolve a célula da linha no índice dado; índice -1 ou célula fora
// da linha (excelize apara células vazias ao final) devolve "".
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isBlank reporta se a linha inteira está vazia (linhas de sobra no Excel).
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ── Parsing de tipos ──────────────────────────────────────────────────────────

// dateLayouts cobre os formatos vistos nas pastas de trabalho reais: ISO,
// brasileiro e os formatos curtos que o excelize devolve para células de data.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"2/1/2006",
	"01-02-06",
	"Jan 2, 06",
	time.RFC3339,
}

// excel conta dias a partir de 1899-12-30 (serial date).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// parseDate tenta os layouts conhecidos e por fim o número serial do Excel.
func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("data vazia: %w", domain.ErrDataIntegrity)
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := int(serial)
		return excelEpoch.AddDate(0, 0, days), nil
	}
	return time.Time{}, fmt.Errorf("data %q não reconhecida: %w", raw, domain.ErrDataIntegrity)
}

// parseDecimal aceita ponto ou vírgula como separador decimal ("1.234,56"
// e "1234.56"). Célula vazia vale zero.
func parseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número %q inválido: %w", raw, domain.ErrDataIntegrity)
	}
	return d, nil
}

// ── Mapeamento por tabela ─────────────────────────────────────────────────────

func mapProducts(t table) ([]entity.Product, error) {
	idCol, err := t.col(true, "id_produto", "id")
	if err != nil {
		return nil, err
	}
	nameCol, err := t.col(true, "nome_produto", "nome", "produto")
	if err != nil {
		return nil, err
	}
	costCol, err := t.col(true, "custo_unit", "custo_unitario", "custo")
	if err != nil {
		return nil, err
	}
	priceCol, _ := t.col(false, "preco_venda", "valor_venda", "preco")

	out := make([]entity.Product, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		cost, err := parseDecimal(cell(row, costCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		price, err := parseDecimal(cell(row, priceCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		out = append(out, entity.Product{
			ID:        cell(row, idCol),
			Name:      cell(row, nameCol),
			UnitCost:  cost,
			SalePrice: price,
		})
	}
	return out, nil
}

func mapSales(t table) ([]entity.Sale, error) {
	dateCol, err := t.col(true, "data")
	if err != nil {
		return nil, err
	}
	prodCol, err := t.col(true, "id_produto")
	if err != nil {
		return nil, err
	}
	qtyCol, err := t.col(true, "qtd", "quantidade")
	if err != nil {
		return nil, err
	}
	priceCol, err := t.col(true, "valor_unit", "valor_unitario", "preco_unit")
	if err != nil {
		return nil, err
	}
	channelCol, err := t.col(true, "plataforma", "canal")
	if err != nil {
		return nil, err
	}
	idCol, _ := t.col(false, "id", "id_venda")

	out := make([]entity.Sale, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		date, err := parseDate(cell(row, dateCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		qty, err := parseDecimal(cell(row, qtyCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		price, err := parseDecimal(cell(row, priceCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		out = append(out, entity.Sale{
			ID:        cell(row, idCol),
			Date:      date,
			ProductID: cell(row, prodCol),
			Quantity:  qty,
			UnitPrice: price,
			Channel:   cell(row, channelCol),
			LineValue: qty.Mul(price), // campo derivado criado na normalização
		})
	}
	return out, nil
}

func mapStock(t table) ([]entity.StockItem, error) {
	prodCol, err := t.col(true, "id_produto")
	if err != nil {
		return nil, err
	}
	initialCol, err := t.col(true, "estoque_inicial", "inicial")
	if err != nil {
		return nil, err
	}
	inCol, err := t.col(true, "entradas")
	if err != nil {
		return nil, err
	}
	outCol, err := t.col(true, "saidas")
	if err != nil {
		return nil, err
	}
	reorderCol, err := t.col(true, "ponto_reposicao", "ponto_de_reposicao", "reposicao")
	if err != nil {
		return nil, err
	}

	out := make([]entity.StockItem, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		initial, err := parseDecimal(cell(row, initialCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		inbound, err := parseDecimal(cell(row, inCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		outbound, err := parseDecimal(cell(row, outCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		reorder, err := parseDecimal(cell(row, reorderCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		out = append(out, entity.StockItem{
			ProductID:    cell(row, prodCol),
			InitialStock: initial,
			Inbound:      inbound,
			Outbound:     outbound,
			ReorderPoint: reorder,
		})
	}
	return out, nil
}

func mapFixedCosts(t table) ([]entity.FixedCost, error) {
	dateCol, err := t.col(true, "data")
	if err != nil {
		return nil, err
	}
	amountCol, err := t.col(true, "valor", "valor_total", "custo")
	if err != nil {
		return nil, err
	}

	out := make([]entity.FixedCost, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		date, err := parseDate(cell(row, dateCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		amount, err := parseDecimal(cell(row, amountCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		out = append(out, entity.FixedCost{Date: date, Amount: amount})
	}
	return out, nil
}

func mapCalendar(t table) ([]entity.CalendarEntry, error) {
	dateCol, err := t.col(true, "data")
	if err != nil {
		return nil, err
	}
	monthCol, err := t.col(true, "nome_mes", "mes")
	if err != nil {
		return nil, err
	}

	out := make([]entity.CalendarEntry, 0, len(t.rows))
	for _, row := range t.rows {
		if isBlank(row) {
			continue
		}
		date, err := parseDate(cell(row, dateCol))
		if err != nil {
			return nil, fmt.Errorf("planilha %s: %w", t.sheet, err)
		}
		out = append(out, entity.CalendarEntry{
			Date:       date,
			MonthLabel: cell(row, monthCol),
		})
	}
	return out, nil
}
