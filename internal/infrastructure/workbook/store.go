package workbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ecopad/ecopad-manager/internal/domain"
	"github.com/ecopad/ecopad-manager/internal/domain/entity"
	"github.com/ecopad/ecopad-manager/pkg/logger"
)

// Nomes canônicos das abas da pasta de trabalho (lookup é feito com
// NormalizeName, então "Calendário" e "calendario" batem igual).
const (
	sheetProducts   = "produtos"
	sheetSales      = "vendas"
	sheetStock      = "estoque"
	sheetFixedCosts = "custos"
	sheetCalendar   = "calendario"
)

// Cabeçalho da aba Vendas do arquivo incremental criado pelo Store.
var incrementalHeader = []string{"id", "data", "id_produto", "qtd", "valor_unit", "plataforma"}

// Store lê e escreve o livro-razão persistido: uma pasta de trabalho
// histórica (somente leitura aqui) e uma pasta incremental de vendas que
// recebe os anexos e é unida à histórica na carga.
//
// A escrita do incremental é feita em arquivo temporário seguido de rename
// atômico, fechando a janela de corrupção do reescreve-arquivo-inteiro.
type Store struct {
	workbookPath    string
	incrementalPath string
	log             *logger.Logger
}

// NewStore constrói o store. incrementalPath pode ser vazio para desligar a
// união (o Append passa a falhar, útil em leitura pura).
func NewStore(workbookPath, incrementalPath string, log *logger.Logger) *Store {
	return &Store{
		workbookPath:    workbookPath,
		incrementalPath: incrementalPath,
		log:             log,
	}
}

// Load abre a pasta de trabalho e devolve as cinco tabelas normalizadas.
// Arquivo ou aba ausente é falha dura (domain.ErrMissingStore); nenhuma
// carga parcial prossegue em silêncio.
func (s *Store) Load(_ context.Context) (*entity.Tables, error) {
	f, err := excelize.OpenFile(s.workbookPath)
	if err != nil {
		return nil, fmt.Errorf("abrir pasta de trabalho %s: %v: %w", s.workbookPath, err, domain.ErrMissingStore)
	}
	defer f.Close()

	products, err := readSheet(f, sheetProducts, mapProducts)
	if err != nil {
		return nil, err
	}
	sales, err := readSheet(f, sheetSales, mapSales)
	if err != nil {
		return nil, err
	}
	stock, err := readSheet(f, sheetStock, mapStock)
	if err != nil {
		return nil, err
	}
	costs, err := readSheet(f, sheetFixedCosts, mapFixedCosts)
	if err != nil {
		return nil, err
	}
	calendar, err := readSheet(f, sheetCalendar, mapCalendar)
	if err != nil {
		return nil, err
	}

	incremental, err := s.loadIncremental()
	if err != nil {
		return nil, err
	}
	if len(incremental) > 0 {
		s.log.Debug().Int("vendas_incrementais", len(incremental)).Msg("unindo vendas incrementais à tabela histórica")
		sales = append(sales, incremental...)
	}

	s.log.Info().
		Int("produtos", len(products)).
		Int("vendas", len(sales)).
		Int("estoque", len(stock)).
		Int("custos", len(costs)).
		Int("calendario", len(calendar)).
		Msg("pasta de trabalho carregada")

	return &entity.Tables{
		Products:   products,
		Sales:      sales,
		Stock:      stock,
		FixedCosts: costs,
		Calendar:   calendar,
	}, nil
}

// loadIncremental lê a pasta incremental de vendas, se existir. Ausência do
// arquivo é normal (nenhuma venda anexada ainda); qualquer outro problema
// propaga.
func (s *Store) loadIncremental() ([]entity.Sale, error) {
	if s.incrementalPath == "" {
		return nil, nil
	}
	if _, err := os.Stat(s.incrementalPath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.incrementalPath)
	if err != nil {
		return nil, fmt.Errorf("abrir vendas incrementais %s: %v: %w", s.incrementalPath, err, domain.ErrMissingStore)
	}
	defer f.Close()

	return readSheet(f, sheetSales, mapSales)
}

// AppendSale anexa uma venda à aba Vendas do arquivo incremental. Lê o
// estado atual, acrescenta a linha e grava em arquivo temporário renomeado
// por cima do original (atômico no mesmo filesystem).
func (s *Store) AppendSale(_ context.Context, sale entity.Sale) error {
	if s.incrementalPath == "" {
		return fmt.Errorf("store sem arquivo incremental configurado: %w", domain.ErrInvalidInput)
	}

	f, sheet, err := s.openOrCreateIncremental()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("ler aba %s: %w", sheet, err)
	}

	values := []interface{}{
		sale.ID,
		sale.Date.Format("2006-01-02"),
		sale.ProductID,
		sale.Quantity.String(),
		sale.UnitPrice.String(),
		sale.Channel,
	}
	rowIdx := len(rows) + 1
	for col, v := range values {
		cellName, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			return fmt.Errorf("endereçar célula: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, v); err != nil {
			return fmt.Errorf("escrever célula %s: %w", cellName, err)
		}
	}

	tmp := s.incrementalPath + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("gravar arquivo temporário %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.incrementalPath); err != nil {
		return fmt.Errorf("renomear %s: %w", tmp, err)
	}

	s.log.Info().
		Str("id", sale.ID).
		Str("produto", sale.ProductID).
		Str("canal", sale.Channel).
		Msg("venda anexada ao livro incremental")
	return nil
}

// openOrCreateIncremental abre a pasta incremental existente ou cria uma
// nova em memória com a aba Vendas e o cabeçalho padrão.
func (s *Store) openOrCreateIncremental() (*excelize.File, string, error) {
	if _, err := os.Stat(s.incrementalPath); err == nil {
		f, err := excelize.OpenFile(s.incrementalPath)
		if err != nil {
			return nil, "", fmt.Errorf("abrir vendas incrementais %s: %w", s.incrementalPath, err)
		}
		sheet, err := findSheet(f, sheetSales)
		if err != nil {
			f.Close()
			return nil, "", err
		}
		return f, sheet, nil
	}

	f := excelize.NewFile()
	const sheet = "Vendas"
	if _, err := f.NewSheet(sheet); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("criar aba %s: %w", sheet, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("remover aba padrão: %w", err)
	}
	for col, h := range incrementalHeader {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("endereçar célula: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("escrever cabeçalho: %w", err)
		}
	}
	return f, sheet, nil
}

// findSheet localiza uma aba pelo nome normalizado (acentos e caixa não
// importam). Aba ausente é domain.ErrMissingStore com contexto.
func findSheet(f *excelize.File, name string) (string, error) {
	for _, existing := range f.GetSheetList() {
		if NormalizeName(existing) == name {
			return existing, nil
		}
	}
	return "", fmt.Errorf("aba %q: %w", name, domain.ErrMissingStore)
}

// readSheet localiza a aba, lê as linhas e aplica o mapeador tipado.
func readSheet[T any](f *excelize.File, name string, mapper func(table) ([]T, error)) ([]T, error) {
	sheet, err := findSheet(f, name)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", sheet, err)
	}
	return mapper(newTable(name, rows))
}
