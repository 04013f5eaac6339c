package domain

import (
	"fmt"
	"time"
)

// Granularity define a unidade de agrupamento dos relatórios de vendas
type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityDay
)

func (g Granularity) String() string {
	switch g {
	case GranularityDay:
		return "day"
	default:
		return "month"
	}
}

// PeriodKey identifica um mês (Day == 0) ou um dia do calendário.
// É comparável, portanto pode ser usada diretamente como chave de mapa.
type PeriodKey struct {
	Year  int
	Month time.Month
	Day   int
}

func MonthKey(year int, month time.Month) PeriodKey {
	return PeriodKey{Year: year, Month: month}
}

func DayKey(year int, month time.Month, day int) PeriodKey {
	return PeriodKey{Year: year, Month: month, Day: day}
}

// KeyOf deriva a chave do período de t na granularidade informada, usando o fuso de t
func KeyOf(t time.Time, g Granularity) PeriodKey {
	if g == GranularityDay {
		return DayKey(t.Year(), t.Month(), t.Day())
	}
	return MonthKey(t.Year(), t.Month())
}

func (k PeriodKey) Granularity() Granularity {
	if k.Day == 0 {
		return GranularityMonth
	}
	return GranularityDay
}

// Compare retorna -1, 0 ou 1 em ordem cronológica
func (k PeriodKey) Compare(other PeriodKey) int {
	switch {
	case k.Year != other.Year:
		return compareInt(k.Year, other.Year)
	case k.Month != other.Month:
		return compareInt(int(k.Month), int(other.Month))
	default:
		return compareInt(k.Day, other.Day)
	}
}

func (k PeriodKey) Before(other PeriodKey) bool {
	return k.Compare(other) < 0
}

func (k PeriodKey) String() string {
	if k.Day == 0 {
		return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
	}
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

func (k PeriodKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText aceita os formatos YYYY-MM e YYYY-MM-DD
func (k *PeriodKey) UnmarshalText(text []byte) error {
	value := string(text)

	if t, err := time.Parse("2006-01-02", value); err == nil {
		*k = DayKey(t.Year(), t.Month(), t.Day())
		return nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return fmt.Errorf("período inválido: %s", value)
	}

	*k = MonthKey(t.Year(), t.Month())
	return nil
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// PeriodWindow é a sequência ordenada (mais recente primeiro) de períodos de um relatório
type PeriodWindow struct {
	Granularity Granularity
	Keys        []PeriodKey
}

func (w PeriodWindow) Len() int {
	return len(w.Keys)
}
