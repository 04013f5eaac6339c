package repository

import (
	stderrors "errors"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Código do Postgres para violação de UNIQUE
const uniqueViolationCode = "23505"

var ErrUniqueViolation = stderrors.New("registro duplicado")

// wrapDBError traduz erros do driver para erros do repositório
func wrapDBError(err error, message string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolationCode {
			return errors.Wrap(ErrUniqueViolation, pqErr.Constraint)
		}
		return errors.Wrapf(err, "%s (código: %s)", message, pqErr.Code)
	}

	return errors.Wrap(err, message)
}
