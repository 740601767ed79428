package pgsql

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. Drafts are never
// persisted, so the draft store is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, draftStore portsrepo.DraftStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		CostCenterRepo:   newPgxCostCenterRepository(dbPool),
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		DraftStore:       draftStore,
	}
}
