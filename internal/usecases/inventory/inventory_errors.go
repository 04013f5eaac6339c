package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item não encontrado")
	ErrItemAlreadyExists = errors.New("já existe um item com este nome")
	ErrInvalidName       = errors.New("nome do item é obrigatório")
	ErrInvalidPrice      = errors.New("preço do item não pode ser negativo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ItemError é um erro com contexto adicional para itens
type ItemError struct {
	Err     error
	Code    string
	ItemID  string
	Details string
}

func (e *ItemError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func NewItemError(err error, code string, itemID string, details string) *ItemError {
	return &ItemError{
		Err:     err,
		Code:    code,
		ItemID:  itemID,
		Details: details,
	}
}
