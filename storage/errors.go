package storage

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound signals that an update/delete target row does not exist.
var ErrNotFound = errors.New("registro no encontrado")

// DuplicateNumeroError reports an attempt to create a cotización whose
// numero is already taken. It carries the offending numero so the handler
// can return an actionable body instead of a raw constraint failure.
type DuplicateNumeroError struct {
	Numero string
}

func (e *DuplicateNumeroError) Error() string {
	return fmt.Sprintf("ya existe una cotización con el número %q", e.Numero)
}

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
