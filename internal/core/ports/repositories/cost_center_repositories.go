package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// CostCenterReader defines read operations for cost centers
type CostCenterReader interface {
	// FindCostCentersByIDs retrieves the cost centers that exist among ids, keyed by id.
	FindCostCentersByIDs(ctx context.Context, workplaceID string, ids []string) (map[string]domain.CostCenter, error)

	// ListCostCenters retrieves the cost centers of a workplace ordered by code.
	ListCostCenters(ctx context.Context, workplaceID string) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost centers
type CostCenterWriter interface {
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
}

// CostCenterRepositoryFacade combines all cost center repository interfaces
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
