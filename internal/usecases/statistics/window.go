package statistics

import (
	"time"

	"github.com/vfg2006/fruit-shop-api/internal/domain"
)

// MonthWindow gera os span meses mais recentes, começando pelo mês de anchor
// e voltando um mês por vez. span <= 0 resulta em janela vazia.
func MonthWindow(anchor time.Time, span int) domain.PeriodWindow {
	window := domain.PeriodWindow{Granularity: domain.GranularityMonth}
	if span <= 0 {
		return window
	}

	window.Keys = make([]domain.PeriodKey, 0, span)
	year, month := anchor.Year(), anchor.Month()

	for i := 0; i < span; i++ {
		window.Keys = append(window.Keys, domain.MonthKey(year, month))

		month--
		if month < time.January {
			month = time.December
			year--
		}
	}

	return window
}

// DayWindow gera os span dias mais recentes, começando pelo dia de anchor.
// A data é normalizada para meio-dia para que mudanças de horário de verão
// nunca pulem ou repitam um dia.
func DayWindow(anchor time.Time, span int) domain.PeriodWindow {
	window := domain.PeriodWindow{Granularity: domain.GranularityDay}
	if span <= 0 {
		return window
	}

	window.Keys = make([]domain.PeriodKey, 0, span)
	current := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 12, 0, 0, 0, anchor.Location())

	for i := 0; i < span; i++ {
		window.Keys = append(window.Keys, domain.DayKey(current.Year(), current.Month(), current.Day()))
		current = current.AddDate(0, 0, -1)
	}

	return window
}
