package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		span   int
		want   []domain.PeriodKey
	}{
		{
			name:   "vira o ano",
			anchor: time.Date(2019, 1, 15, 10, 0, 0, 0, time.UTC),
			span:   3,
			want: []domain.PeriodKey{
				domain.MonthKey(2019, time.January),
				domain.MonthKey(2018, time.December),
				domain.MonthKey(2018, time.November),
			},
		},
		{
			name:   "âncora no último dia do mês",
			anchor: time.Date(2020, 3, 31, 23, 59, 0, 0, time.UTC),
			span:   2,
			want: []domain.PeriodKey{
				domain.MonthKey(2020, time.March),
				domain.MonthKey(2020, time.February),
			},
		},
		{
			name:   "janela vazia",
			anchor: time.Date(2020, 3, 31, 0, 0, 0, 0, time.UTC),
			span:   0,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := MonthWindow(tt.anchor, tt.span)
			assert.Equal(t, domain.GranularityMonth, window.Granularity)
			assert.Equal(t, tt.want, window.Keys)
		})
	}
}

func TestDayWindow(t *testing.T) {
	t.Run("vira o mês em ano não bissexto", func(t *testing.T) {
		window := DayWindow(time.Date(2019, 3, 1, 0, 5, 0, 0, time.UTC), 2)
		assert.Equal(t, domain.GranularityDay, window.Granularity)
		assert.Equal(t, []domain.PeriodKey{
			domain.DayKey(2019, time.March, 1),
			domain.DayKey(2019, time.February, 28),
		}, window.Keys)
	})

	t.Run("vira o ano", func(t *testing.T) {
		window := DayWindow(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC), 3)
		assert.Equal(t, []domain.PeriodKey{
			domain.DayKey(2020, time.January, 1),
			domain.DayKey(2019, time.December, 31),
			domain.DayKey(2019, time.December, 30),
		}, window.Keys)
	})

	t.Run("atravessa o horário de verão", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("base de fusos horários indisponível")
		}

		window := DayWindow(time.Date(2019, 3, 11, 0, 30, 0, 0, loc), 3)
		assert.Equal(t, []domain.PeriodKey{
			domain.DayKey(2019, time.March, 11),
			domain.DayKey(2019, time.March, 10),
			domain.DayKey(2019, time.March, 9),
		}, window.Keys)
	})

	t.Run("dia sem meia-noite no fuso", func(t *testing.T) {
		// Em 2018-11-04 o horário de verão de São Paulo começou às 00:00
		loc, err := time.LoadLocation("America/Sao_Paulo")
		if err != nil {
			t.Skip("base de fusos horários indisponível")
		}

		window := DayWindow(time.Date(2018, 11, 5, 0, 30, 0, 0, loc), 3)
		assert.Equal(t, []domain.PeriodKey{
			domain.DayKey(2018, time.November, 5),
			domain.DayKey(2018, time.November, 4),
			domain.DayKey(2018, time.November, 3),
		}, window.Keys)
	})
}

func TestWindows_StrictlyDecreasing(t *testing.T) {
	anchors := []time.Time{
		time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 29, 18, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 31, 23, 59, 0, 0, time.UTC),
	}

	for _, anchor := range anchors {
		for _, span := range []int{0, 1, 2, 13, 40, 400} {
			for _, window := range []domain.PeriodWindow{MonthWindow(anchor, span), DayWindow(anchor, span)} {
				require.Equal(t, span, window.Len())

				seen := make(map[domain.PeriodKey]bool, span)
				for i, key := range window.Keys {
					assert.False(t, seen[key], "chave repetida %s", key)
					seen[key] = true

					assert.Equal(t, window.Granularity, key.Granularity())
					if i > 0 {
						assert.True(t, key.Before(window.Keys[i-1]), "%s deveria ser anterior a %s", key, window.Keys[i-1])
					}
				}

				if span > 0 {
					assert.Equal(t, domain.KeyOf(anchor, window.Granularity), window.Keys[0])
				}
			}
		}
	}
}
