package custom_error

import (
	"errors"

	"github.com/lib/pq"
)

// Domain outcomes surfaced by the core. The calling layer maps these to
// user-facing responses; they must never be collapsed into a generic error.
var (
	ErrNotFound                  = errors.New("resource not found")
	ErrAlreadyAssigned           = errors.New("asset already has an active assignment")
	ErrNotFoundOrAlreadyReturned = errors.New("assignment not found or already returned")
	ErrAssetInUse                = errors.New("asset cannot be removed while actively assigned")
	ErrSerialAllocationFailed    = errors.New("serial number allocation failed after retries")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. With a non-empty constraint name, only that constraint matches.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgCheckViolation
}
