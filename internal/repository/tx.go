package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/storefront/internal/db"
)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// withTx executes fn within a transaction if the repository was created with a pool,
// or uses the existing transaction if the repository was created with a transaction.
// The transaction is rolled back on every error path, including a failed commit.
func withTx[T any](ctx context.Context, dbtx db.DBTX, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// Already in a transaction, the caller owns commit and rollback.
	// pgx.Tx has Begin too (savepoints), so this check goes first.
	if tx, ok := dbtx.(pgx.Tx); ok {
		return fn(db.New(tx))
	}

	beginner, ok := dbtx.(txBeginner)
	if !ok {
		return zero, fmt.Errorf("dbtx can not begin a transaction: %T", dbtx)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("beginner.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(db.New(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
