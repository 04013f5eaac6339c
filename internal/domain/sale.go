package domain

import (
	"errors"
	"math"
	"time"
)

// SaleTimestampLayout é o formato das datas de venda aceito na importação CSV e nos formulários
const SaleTimestampLayout = "2006-01-02 15:04"

type Sale struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Amount    int64     `json:"amount"`
	SoldAt    time.Time `json:"sold_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrAmountOverflow indica que preço × quantidade não cabe em int64
var ErrAmountOverflow = errors.New("valor da venda excede o limite suportado")

// ComputeAmount calcula o valor da venda a partir do preço unitário do item.
// O valor é congelado no momento da criação e nunca é recalculado.
func ComputeAmount(price int64, quantity int) (int64, error) {
	if price < 0 || quantity < 0 {
		return 0, ErrAmountOverflow
	}
	if price > 0 && int64(quantity) > math.MaxInt64/price {
		return 0, ErrAmountOverflow
	}
	return price * int64(quantity), nil
}

type CreateSaleRequest struct {
	ItemID   string    `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
	Amount   *int64    `json:"amount" validate:"omitempty,min=0"`
	SoldAt   time.Time `json:"sold_at" validate:"required"`
}

// UpdateSaleRequest só permite alterar quantidade e data; o valor da venda não é tocado
type UpdateSaleRequest struct {
	ID       string     `json:"-"`
	Quantity *int       `json:"quantity" validate:"omitempty,gt=0"`
	SoldAt   *time.Time `json:"sold_at"`
}

// SaleFilter filtra vendas por ano, mês e dia. Zero significa "sem filtro" para o campo.
type SaleFilter struct {
	Year  int
	Month int
	Day   int
}

func (f *SaleFilter) IsEmpty() bool {
	return f == nil || (f.Year == 0 && f.Month == 0 && f.Day == 0)
}
