package statistics

import (
	"time"

	"github.com/vfg2006/fruit-shop-api/internal/domain"
)

// AggregationResult é o resultado de uma passada do agregador sobre as vendas
type AggregationResult struct {
	Reports    domain.PeriodReports
	GrandTotal int64
}

// Aggregate agrupa as vendas nos períodos da janela em uma única passada.
//
// Todo período da janela aparece no resultado, na ordem da janela, mesmo sem
// vendas. Vendas fora da janela não entram nos relatórios mas somam no total
// geral. A data de cada venda é convertida para loc antes de derivar a chave
// do período (nil usa time.Local).
func Aggregate(window domain.PeriodWindow, sales []*domain.Sale, loc *time.Location) AggregationResult {
	if loc == nil {
		loc = time.Local
	}

	reports := make(domain.PeriodReports, len(window.Keys))
	index := make(map[domain.PeriodKey]*domain.PeriodReport, len(window.Keys))
	for i, key := range window.Keys {
		reports[i] = domain.NewPeriodReport(key)
		index[key] = reports[i]
	}

	var grandTotal int64
	for _, sale := range sales {
		if sale == nil {
			continue
		}

		grandTotal += sale.Amount

		key := domain.KeyOf(sale.SoldAt.In(loc), window.Granularity)
		report, ok := index[key]
		if !ok {
			continue
		}

		report.Amount += sale.Amount

		breakdown, exists := report.Items[sale.ItemName]
		if !exists {
			breakdown = &domain.ItemBreakdown{}
			report.Items[sale.ItemName] = breakdown
		}
		breakdown.Quantity += int64(sale.Quantity)
		breakdown.Amount += sale.Amount
	}

	return AggregationResult{
		Reports:    reports,
		GrandTotal: grandTotal,
	}
}
