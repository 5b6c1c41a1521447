package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/storefront/internal/domain"
)

// mapPgError marks deadlocks and serialization failures as retryable.
// Concurrent orders lock their products in request order, so two orders
// over the same products listed differently can deadlock; Postgres aborts
// one of them.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure, pgerrcode.LockNotAvailable:
		return fmt.Errorf("%w: %w", domain.ErrConcurrentUpdate, err)
	}

	return err
}
