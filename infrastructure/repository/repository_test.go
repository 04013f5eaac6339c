package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fruit-shop-api/internal/domain"
)

func TestDateRange(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name      string
		filter    *domain.SaleFilter
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "apenas ano",
			filter:    &domain.SaleFilter{Year: 2019},
			wantStart: time.Date(2019, 1, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2020, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:      "ano e mês de dezembro vira o ano",
			filter:    &domain.SaleFilter{Year: 2019, Month: 12},
			wantStart: time.Date(2019, 12, 1, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2020, 1, 1, 0, 0, 0, 0, loc),
		},
		{
			name:      "dia completo",
			filter:    &domain.SaleFilter{Year: 2019, Month: 2, Day: 28},
			wantStart: time.Date(2019, 2, 28, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2019, 3, 1, 0, 0, 0, 0, loc),
		},
		{name: "mês sem ano", filter: &domain.SaleFilter{Month: 3}, wantErr: true},
		{name: "dia sem mês", filter: &domain.SaleFilter{Year: 2019, Day: 3}, wantErr: true},
		{name: "mês fora do intervalo", filter: &domain.SaleFilter{Year: 2019, Month: 13}, wantErr: true},
		{name: "dia inexistente", filter: &domain.SaleFilter{Year: 2019, Month: 2, Day: 29}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := dateRange(tt.filter, loc)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDateFilter))
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(start), "start = %s", start)
			assert.True(t, tt.wantEnd.Equal(end), "end = %s", end)
		})
	}
}

func TestWrapDBError(t *testing.T) {
	assert.Nil(t, wrapDBError(nil, "qualquer"))

	err := wrapDBError(&pq.Error{Code: "23505", Constraint: "items_name_key"}, "erro ao inserir item")
	assert.True(t, errors.Is(err, ErrUniqueViolation))

	err = wrapDBError(&pq.Error{Code: "23503"}, "erro ao inserir venda")
	assert.False(t, errors.Is(err, ErrUniqueViolation))
	assert.Contains(t, err.Error(), "23503")
}
