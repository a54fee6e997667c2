package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an update or delete matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key value violates unique constraint")

	// ErrStorage classifies every other storage or transport failure.
	ErrStorage = errors.New("storage failure")
)

const uniqueViolation = "23505"

// StorageError is the single error type surfaced by the gateway.
type StorageError struct {
	Table string
	Op    string
	Kind  error
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Table, e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func wrap(table, op string, err error) error {
	if err == nil {
		return nil
	}

	kind := ErrStorage
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		kind = ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		kind = ErrDuplicate
	case errors.Is(err, gorm.ErrDuplicatedKey):
		kind = ErrDuplicate
	}

	return &StorageError{Table: table, Op: op, Kind: kind, Err: err}
}
