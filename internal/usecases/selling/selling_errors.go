package selling

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrItemNotFound      = errors.New("item não encontrado")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInvalidAmount     = errors.New("valor da venda não pode ser negativo")
	ErrInvalidFilter     = errors.New("filtro de data inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  string // ID da venda envolvida (quando aplicável)
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
