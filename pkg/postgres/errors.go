package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a point lookup matches no rows.
	ErrNotFound = errors.New("postgres: not found")

	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("postgres: duplicate key")

	// ErrConnection is returned when the server cannot be reached or the
	// connection is lost mid-query.
	ErrConnection = errors.New("postgres: connection failed")

	// ErrQuery covers every other statement failure.
	ErrQuery = errors.New("postgres: query failed")
)

// MapRowError classifies errors from Row.Scan, which is where sql.ErrNoRows
// surfaces for QueryRowContext.
func MapRowError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return mapError(err)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case strings.HasPrefix(string(pqErr.Code), "08"):
			return fmt.Errorf("%w: %v", ErrConnection, err)
		default:
			return fmt.Errorf("%w: %v", ErrQuery, err)
		}
	}

	// lib/pq surfaces dial failures as plain net errors.
	if strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "bad connection") {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return fmt.Errorf("%w: %v", ErrQuery, err)
}
