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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	clock       domain.Clock
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, clock domain.Clock) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, clock: clock}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, tenant domain.TenantContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}

	allowPosting := true
	if req.AllowPosting != nil {
		allowPosting = *req.AllowPosting
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		WorkplaceID:  tenant.WorkplaceID,
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		AccountType:  req.AccountType,
		AllowPosting: allowPosting,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenant.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenant.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountsByIDs looks up the distinct, non-empty ids in one query.
func (s *accountService) GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	ids := distinctNonEmpty(accountIDs)
	if len(ids) == 0 {
		return map[string]domain.Account{}, nil
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, workplaceID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts", slog.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, tenant domain.TenantContext, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, tenant.WorkplaceID, params.PostingOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func distinctNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
