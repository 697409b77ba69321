package workbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopad/ecopad-manager/internal/domain"
)

func TestNormalizeName_ApararCaixaEAcentos(t *testing.T) {
	cases := map[string]string{
		"  Calendário ": "calendario",
		"Preço_Venda":   "preco_venda",
		"QTD":           "qtd",
		"plataforma":    "plataforma",
		"SAÍDAS":        "saidas",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), "entrada %q", in)
	}
}

func TestParseDate_FormatosConhecidos(t *testing.T) {
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2025-01-15", "15/01/2025"} {
		got, err := parseDate(raw)
		require.NoError(t, err, "formato %q", raw)
		assert.True(t, got.Equal(want), "formato %q deu %s", raw, got)
	}
}

// Serial do Excel: 45672 dias após 1899-12-30 = 2025-01-15.
func TestParseDate_SerialDoExcel(t *testing.T) {
	got, err := parseDate("45672")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseDate_InvalidaEhErroDeIntegridade(t *testing.T) {
	_, err := parseDate("não é data")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestParseDecimal_VirgulaEPonto(t *testing.T) {
	cases := map[string]string{
		"1234.56":     "1234.56",
		"1.234,56":    "1234.56",
		"12,5":        "12.5",
		"R$ 1.000,00": "1000",
		"":            "0",
	}
	for in, want := range cases {
		got, err := parseDecimal(in)
		require.NoError(t, err, "entrada %q", in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "entrada %q deu %s", in, got)
	}
}

func TestMapSales_CabecalhoDesalinhadoAindaResolve(t *testing.T) {
	raw := [][]string{
		{" Data ", "ID_Produto", "Qtd", "Valor_Unit", "Plataforma"},
		{"2025-01-10", "P1", "2", "50", "Shopee"},
	}

	sales, err := mapSales(newTable("vendas", raw))

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "P1", sales[0].ProductID)
	assert.True(t, sales[0].LineValue.Equal(decimal.NewFromInt(100)), "valor_total derivado na normalização")
}

// Sem coluna de data não há join possível: falha dura com contexto, nunca
// default silencioso.
func TestMapSales_SemColunaDeDataFalha(t *testing.T) {
	raw := [][]string{
		{"id_produto", "qtd", "valor_unit", "plataforma"},
		{"P1", "2", "50", "Shopee"},
	}

	_, err := mapSales(newTable("vendas", raw))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "vendas")
	assert.Contains(t, err.Error(), "data")
}

func TestMapStock_LinhasEmBrancoIgnoradas(t *testing.T) {
	raw := [][]string{
		{"id_produto", "estoque_inicial", "entradas", "saidas", "ponto_reposicao"},
		{"P1", "10", "0", "8", "5"},
		{"", "", "", "", ""},
	}

	items, err := mapStock(newTable("estoque", raw))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].CurrentStock().Equal(decimal.NewFromInt(2)))
}
