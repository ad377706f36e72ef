package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate is returned when an insert or update violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReference is returned when a foreign key points at a missing row.
	ErrReference = errors.New("referenced record does not exist")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateError maps driver errors onto repository sentinels, keeping the original for context.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Message)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrReference, pqErr.Message)
	}
	return err
}
