package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes the database transaction boundary of a repository.
// Journal entry commits run header and line inserts inside one of these.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back a finished transaction is not an error.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
