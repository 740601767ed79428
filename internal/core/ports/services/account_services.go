package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountsByIDs retrieves the accounts that exist among accountIDs, keyed by id.
	GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the chart of accounts, optionally only posting-eligible accounts.
	ListAccounts(ctx context.Context, tenant domain.TenantContext, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, tenant domain.TenantContext, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// CostCenterSvcFacade defines operations for the cost-center directory
type CostCenterSvcFacade interface {
	GetCostCentersByIDs(ctx context.Context, workplaceID string, ids []string) (map[string]domain.CostCenter, error)
	ListCostCenters(ctx context.Context, tenant domain.TenantContext) ([]domain.CostCenter, error)
	CreateCostCenter(ctx context.Context, tenant domain.TenantContext, req dto.CreateCostCenterRequest) (*domain.CostCenter, error)
}
