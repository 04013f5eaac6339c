package domain

import "time"

// ItemBreakdown acumula quantidade e valor vendidos de um item dentro de um período
type ItemBreakdown struct {
	Quantity int64 `json:"quantity"`
	Amount   int64 `json:"amount"`
}

// PeriodReport é o resumo de vendas de um período. Períodos sem vendas
// aparecem com valor zero e mapa de itens vazio.
type PeriodReport struct {
	Key    PeriodKey                 `json:"period"`
	Amount int64                     `json:"amount"`
	Items  map[string]*ItemBreakdown `json:"items"`
}

func NewPeriodReport(key PeriodKey) *PeriodReport {
	return &PeriodReport{
		Key:   key,
		Items: make(map[string]*ItemBreakdown),
	}
}

// PeriodReports mantém os relatórios na mesma ordem da janela que os gerou
type PeriodReports []*PeriodReport

func (r PeriodReports) Get(key PeriodKey) (*PeriodReport, bool) {
	for _, report := range r {
		if report.Key == key {
			return report, true
		}
	}
	return nil, false
}

// Total soma o valor de todos os períodos da janela
func (r PeriodReports) Total() int64 {
	var total int64
	for _, report := range r {
		total += report.Amount
	}
	return total
}

// SalesStatistics é a resposta do endpoint de estatísticas
type SalesStatistics struct {
	GrandTotal  int64         `json:"grand_total"`
	MonthSpan   int           `json:"month_span"`
	DaySpan     int           `json:"day_span"`
	Monthly     PeriodReports `json:"monthly"`
	Daily       PeriodReports `json:"daily"`
	GeneratedAt time.Time     `json:"generated_at"`
}
