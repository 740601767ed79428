package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByID retrieves a specific account in a workplace.
	FindAccountByID(ctx context.Context, workplaceID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the accounts that exist among accountIDs, keyed by id.
	// Missing ids are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the accounts of a workplace ordered by code.
	ListAccounts(ctx context.Context, workplaceID string, postingOnly bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
