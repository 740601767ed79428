package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/google/uuid"
)

type costCenterService struct {
	BaseService
	repo  portsrepo.CostCenterRepositoryFacade
	clock domain.Clock
}

// NewCostCenterService creates the cost-center directory service.
func NewCostCenterService(repo portsrepo.CostCenterRepositoryFacade, clock domain.Clock) portssvc.CostCenterSvcFacade {
	return &costCenterService{repo: repo, clock: clock}
}

var _ portssvc.CostCenterSvcFacade = (*costCenterService)(nil)

func (s *costCenterService) CreateCostCenter(ctx context.Context, tenant domain.TenantContext, req dto.CreateCostCenterRequest) (*domain.CostCenter, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	cc := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		WorkplaceID:  tenant.WorkplaceID,
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenant.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenant.UserID,
		},
	}
	if err := s.repo.SaveCostCenter(ctx, cc); err != nil {
		s.LogError(ctx, err, "Failed to save cost center", slog.String("code", cc.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Cost center created", slog.String("cost_center_id", cc.CostCenterID))
	return &cc, nil
}

func (s *costCenterService) GetCostCentersByIDs(ctx context.Context, workplaceID string, ids []string) (map[string]domain.CostCenter, error) {
	ids = distinctNonEmpty(ids)
	if len(ids) == 0 {
		return map[string]domain.CostCenter{}, nil
	}
	found, err := s.repo.FindCostCentersByIDs(ctx, workplaceID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to find cost centers", slog.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to find cost centers: %w", err)
	}
	return found, nil
}

func (s *costCenterService) ListCostCenters(ctx context.Context, tenant domain.TenantContext) ([]domain.CostCenter, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	ccs, err := s.repo.ListCostCenters(ctx, tenant.WorkplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	if ccs == nil {
		return []domain.CostCenter{}, nil
	}
	return ccs, nil
}
