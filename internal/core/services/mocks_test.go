package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindEntryByID(ctx context.Context, workplaceID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListEntriesByWorkplace(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, workplaceID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalEntryRepository) CommitEntry(ctx context.Context, entry domain.JournalEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, workplaceID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, workplaceID string, postingOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, postingOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock AccountService (as used by the journal entry service) ---
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

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

var _ portssvc.EventTracker = (*MockEventTracker)(nil)

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// --- Test collaborators ---

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// sequenceSuffixes hands out the given suffixes in order, repeating the last one.
type sequenceSuffixes struct {
	mu     sync.Mutex
	values []string
	calls  int
}

func (s *sequenceSuffixes) Suffix() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	s.calls++
	return s.values[idx], nil
}
