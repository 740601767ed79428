package handlers_test

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

func (m *MockJournalEntryService) GetEntryByID(ctx context.Context, tenant domain.TenantContext, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenant, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) ListEntries(ctx context.Context, tenant domain.TenantContext, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, tenant, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalEntryService) ValidateEntry(ctx context.Context, tenant domain.TenantContext, entry *domain.JournalEntry) (domain.ValidationResult, error) {
	args := m.Called(ctx, tenant, entry)
	return args.Get(0).(domain.ValidationResult), args.Error(1)
}

func (m *MockJournalEntryService) CreateEntry(ctx context.Context, tenant domain.TenantContext, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenant, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) PostEntry(ctx context.Context, tenant domain.TenantContext, draft *domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenant, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock DraftService ---
type MockDraftService struct {
	mock.Mock
}

var _ portssvc.DraftSvcFacade = (*MockDraftService)(nil)

func draftOrNil(v any) *domain.Draft {
	if v == nil {
		return nil
	}
	return v.(*domain.Draft)
}

func (m *MockDraftService) CreateDraft(ctx context.Context, tenant domain.TenantContext, req dto.CreateDraftRequest) (*domain.Draft, error) {
	args := m.Called(ctx, tenant, req)
	return draftOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDraftService) GetDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, error) {
	args := m.Called(ctx, tenant, draftID)
	return draftOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDraftService) UpdateDraftHeader(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.UpdateDraftHeaderRequest) (*domain.Draft, error) {
	args := m.Called(ctx, tenant, draftID, req)
	return draftOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDraftService) AddDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.JournalEntryLineRequest) (*domain.Draft, domain.LineID, error) {
	args := m.Called(ctx, tenant, draftID, req)
	return draftOrNil(args.Get(0)), args.Get(1).(domain.LineID), args.Error(2)
}

func (m *MockDraftService) UpdateDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID, update domain.LineUpdate) (*domain.Draft, error) {
	args := m.Called(ctx, tenant, draftID, lineID, update)
	return draftOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDraftService) RemoveDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID) (*domain.Draft, bool, error) {
	args := m.Called(ctx, tenant, draftID, lineID)
	return draftOrNil(args.Get(0)), args.Bool(1), args.Error(2)
}

func (m *MockDraftService) ValidateDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, domain.ValidationResult, error) {
	args := m.Called(ctx, tenant, draftID)
	return draftOrNil(args.Get(0)), args.Get(1).(domain.ValidationResult), args.Error(2)
}

func (m *MockDraftService) PostDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenant, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockDraftService) DiscardDraft(ctx context.Context, tenant domain.TenantContext, draftID string) error {
	args := m.Called(ctx, tenant, draftID)
	return args.Error(0)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenant domain.TenantContext, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, tenant, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, tenant domain.TenantContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, tenant, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock CostCenterService ---
type MockCostCenterService struct {
	mock.Mock
}

var _ portssvc.CostCenterSvcFacade = (*MockCostCenterService)(nil)

func (m *MockCostCenterService) GetCostCentersByIDs(ctx context.Context, workplaceID string, ids []string) (map[string]domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterService) ListCostCenters(ctx context.Context, tenant domain.TenantContext) ([]domain.CostCenter, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterService) CreateCostCenter(ctx context.Context, tenant domain.TenantContext, req dto.CreateCostCenterRequest) (*domain.CostCenter, error) {
	args := m.Called(ctx, tenant, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}
