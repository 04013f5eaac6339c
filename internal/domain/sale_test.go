package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmount(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int
		want     int64
		wantErr  bool
	}{
		{name: "preço vezes quantidade", price: 100, quantity: 3, want: 300},
		{name: "item gratuito", price: 0, quantity: 5, want: 0},
		{name: "limite exato", price: math.MaxInt64 / 2, quantity: 2, want: math.MaxInt64 - 1},
		{name: "estouro", price: math.MaxInt64 / 2, quantity: 3, wantErr: true},
		{name: "quantidade negativa", price: 100, quantity: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ComputeAmount(tt.price, tt.quantity)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmountOverflow)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, amount)
		})
	}
}
