package importing

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCSV = errors.New("arquivo CSV malformado")
	ErrCanceled     = errors.New("importação cancelada")
)

// Motivos de descarte de uma linha, usados apenas nos logs
var (
	errWrongColumnCount = errors.New("linha deve ter 4 colunas")
	errUnknownItem      = errors.New("item não cadastrado")
	errInvalidQuantity  = errors.New("quantidade inválida")
	errInvalidAmount    = errors.New("valor inválido")
	errInvalidTimestamp = errors.New("data inválida")
)

type ImportError struct {
	Err     error
	Code    string
	Line    int
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (linha %d): %s", e.Err.Error(), e.Line, e.Details)
	}
	return fmt.Sprintf("%s (linha %d)", e.Err.Error(), e.Line)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, line int, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Line:    line,
		Details: details,
	}
}
