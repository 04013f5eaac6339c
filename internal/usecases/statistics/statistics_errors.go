package statistics

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSpan = errors.New("janela de períodos deve ser um inteiro positivo")
	ErrFetchSales  = errors.New("erro ao buscar vendas no banco de dados")
)

// StatisticsError carrega o código de erro da API junto ao erro base
type StatisticsError struct {
	Err     error
	Code    string
	Details string
}

func (e *StatisticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StatisticsError) Unwrap() error {
	return e.Err
}

func NewStatisticsError(err error, code string, details string) *StatisticsError {
	return &StatisticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
