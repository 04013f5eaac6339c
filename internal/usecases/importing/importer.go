package importing

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/fruit-shop-api/infrastructure/repository"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
	"github.com/vfg2006/fruit-shop-api/pkg/apiErrors"
	"github.com/vfg2006/fruit-shop-api/pkg/log"
	"github.com/vfg2006/fruit-shop-api/pkg/utils"
)

// Colunas esperadas em cada linha: nome do item, quantidade, valor (opcional) e data
const (
	columnItemName = iota
	columnQuantity
	columnAmount
	columnSoldAt
	columnCount
)

type SalesImporter interface {
	Import(ctx context.Context, rows [][]string) *domain.ImportSummary
	ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportSummary, error)
}

type Importer struct {
	itemRepository repository.ItemRepository
	saleRepository repository.SaleRepository
	location       *time.Location
}

func NewImporter(itemRepository repository.ItemRepository, saleRepository repository.SaleRepository, cfg *config.Config) *Importer {
	location := time.Local
	if cfg != nil && cfg.App.Location != nil {
		location = cfg.App.Location
	}

	return &Importer{
		itemRepository: itemRepository,
		saleRepository: saleRepository,
		location:       location,
	}
}

// batch guarda o estado de um lote em andamento
type batch struct {
	summary *domain.ImportSummary
	items   map[string]*domain.Item
	logger  log.Logger
}

func (i *Importer) newBatch(ctx context.Context) *batch {
	return &batch{
		summary: &domain.ImportSummary{},
		items:   make(map[string]*domain.Item),
		logger:  log.ForComponent(ctx, "sales_importer"),
	}
}

// Import processa as linhas em ordem. Cada linha é independente: uma linha inválida
// é descartada sem afetar as demais, e linhas já gravadas não são desfeitas.
func (i *Importer) Import(ctx context.Context, rows [][]string) *domain.ImportSummary {
	b := i.newBatch(ctx)

	for n, row := range rows {
		if ctx.Err() != nil {
			b.logger.WithField("import_row", n+1).Warn("Importação interrompida pelo contexto")
			break
		}
		i.processRow(b, n+1, row)
	}

	i.logSummary(b)
	return b.summary
}

// ImportCSV lê o CSV linha a linha, sem cabeçalho. Um erro de sintaxe encerra o lote
// naquela linha; as linhas anteriores continuam gravadas e o resumo parcial é retornado.
func (i *Importer) ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	b := i.newBatch(ctx)
	defer i.logSummary(b)

	for line := 1; ; line++ {
		if ctx.Err() != nil {
			return b.summary, NewImportError(ErrCanceled, apiErrors.ErrInternalServer, line, ctx.Err().Error())
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return b.summary, nil
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return b.summary, NewImportError(ErrMalformedCSV, apiErrors.ErrInvalidFormat, parseErr.Line, parseErr.Err.Error())
			}
			return b.summary, NewImportError(ErrMalformedCSV, apiErrors.ErrInvalidFormat, line, err.Error())
		}

		i.processRow(b, line, row)
	}
}

func (i *Importer) processRow(b *batch, line int, row []string) {
	b.summary.Rows++

	sale, err := i.parseRow(b, row)
	if err != nil {
		b.summary.Discarded++
		b.logger.WithFields(log.Fields{
			"import_row":    line,
			"import_reason": err.Error(),
		}).Warn("Linha descartada na importação")
		return
	}

	if _, err := i.saleRepository.Create(sale); err != nil {
		b.summary.Discarded++
		b.logger.WithError(err).WithField("import_row", line).Error("Erro ao gravar venda importada")
		return
	}

	b.summary.Created++
}

func (i *Importer) parseRow(b *batch, row []string) (*domain.Sale, error) {
	if len(row) != columnCount {
		return nil, errWrongColumnCount
	}

	item, err := i.lookupItem(b, row[columnItemName])
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row[columnQuantity]))
	if err != nil || quantity <= 0 {
		return nil, errInvalidQuantity
	}

	var amount int64
	if raw := strings.TrimSpace(row[columnAmount]); raw != "" {
		amount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || amount < 0 {
			return nil, errInvalidAmount
		}
	} else if amount, err = domain.ComputeAmount(item.Price, quantity); err != nil {
		return nil, errInvalidAmount
	}

	soldAt, err := utils.ParseSaleTimestamp(row[columnSoldAt], domain.SaleTimestampLayout, i.location)
	if err != nil {
		return nil, errInvalidTimestamp
	}

	return &domain.Sale{
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: quantity,
		Amount:   amount,
		SoldAt:   soldAt,
	}, nil
}

// lookupItem resolve o item pelo nome exato, reaproveitando buscas feitas no mesmo lote
func (i *Importer) lookupItem(b *batch, name string) (*domain.Item, error) {
	if item, ok := b.items[name]; ok {
		return item, nil
	}

	if name == "" {
		return nil, errUnknownItem
	}

	item, err := i.itemRepository.GetByName(name)
	if err != nil {
		b.logger.WithError(err).WithField("import_item", name).Error("Erro ao buscar item na importação")
		return nil, errUnknownItem
	}

	if item == nil {
		return nil, errUnknownItem
	}

	b.items[name] = item
	return item, nil
}

func (i *Importer) logSummary(b *batch) {
	b.logger.WithFields(log.Fields{
		"import_rows":      b.summary.Rows,
		"import_created":   b.summary.Created,
		"import_discarded": b.summary.Discarded,
	}).Info("Importação de vendas concluída")
}
