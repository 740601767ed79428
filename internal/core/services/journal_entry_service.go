package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

const (
	// maxCommitAttempts bounds retries when a freshly drawn entry number
	// collides with an existing one in the workplace.
	maxCommitAttempts = 3

	defaultListLimit = 20

	// EventJournalEntryPosted is the analytics event sent after a successful commit.
	EventJournalEntryPosted = "journal_entry_posted"
)

// journalEntryService posts, validates and reads journal entries.
type journalEntryService struct {
	BaseService
	entryRepo     portsrepo.JournalEntryRepositoryFacade
	accountSvc    portssvc.AccountReaderSvc
	costCenterSvc portssvc.CostCenterSvcFacade
	poster        *domain.Poster
	clock         domain.Clock
	tracker       portssvc.EventTracker
}

// JournalEntryOption is a functional option for configuring the journal entry service
type JournalEntryOption func(*journalEntryService)

// WithCostCenterDirectory enables the cost-center existence check.
func WithCostCenterDirectory(svc portssvc.CostCenterSvcFacade) JournalEntryOption {
	return func(s *journalEntryService) {
		s.costCenterSvc = svc
	}
}

// WithEventTracker sends an analytics event for every posted entry.
func WithEventTracker(tracker portssvc.EventTracker) JournalEntryOption {
	return func(s *journalEntryService) {
		s.tracker = tracker
	}
}

// WithClock overrides the clock used for default entry dates.
func WithClock(clock domain.Clock) JournalEntryOption {
	return func(s *journalEntryService) {
		s.clock = clock
	}
}

// NewJournalEntryService creates a new journal entry service.
func NewJournalEntryService(entryRepo portsrepo.JournalEntryRepositoryFacade, accountSvc portssvc.AccountReaderSvc, poster *domain.Poster, options ...JournalEntryOption) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		entryRepo:  entryRepo,
		accountSvc: accountSvc,
		poster:     poster,
		clock:      domain.SystemClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// directoryCheck loads every account and cost center the entry references and
// returns a check reporting the lines that point at unusable ones.
func (s *journalEntryService) directoryCheck(ctx context.Context, workplaceID string, entry *domain.JournalEntry) (domain.ValidationCheck, error) {
	accountIDs := make([]string, 0, len(entry.Lines))
	costCenterIDs := make([]string, 0)
	for _, l := range entry.Lines {
		accountIDs = append(accountIDs, l.AccountID)
		if l.CostCenterID != nil {
			costCenterIDs = append(costCenterIDs, *l.CostCenterID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, workplaceID, accountIDs)
	if err != nil {
		return nil, err
	}

	var costCenters map[string]domain.CostCenter
	if s.costCenterSvc != nil && len(costCenterIDs) > 0 {
		costCenters, err = s.costCenterSvc.GetCostCentersByIDs(ctx, workplaceID, costCenterIDs)
		if err != nil {
			return nil, err
		}
	}

	return func(e *domain.JournalEntry) []domain.Violation {
		var violations []domain.Violation
		for _, l := range e.Lines {
			// Blank accounts are already reported as LINE_INCOMPLETE.
			if l.AccountID == "" {
				continue
			}
			acc, ok := accounts[l.AccountID]
			if !ok || !acc.IsPostingEligible(workplaceID) {
				violations = append(violations, domain.Violation{
					Kind:       domain.ViolationAccountNotPostable,
					LineID:     l.LineID,
					LineNumber: l.LineNumber,
					Fields:     []string{domain.FieldAccount},
				})
			}
		}
		if s.costCenterSvc == nil {
			return violations
		}
		for _, l := range e.Lines {
			if l.CostCenterID == nil {
				continue
			}
			if cc, ok := costCenters[*l.CostCenterID]; !ok || !cc.IsActive {
				violations = append(violations, domain.Violation{
					Kind:       domain.ViolationCostCenterUnknown,
					LineID:     l.LineID,
					LineNumber: l.LineNumber,
					Fields:     []string{"costCenterID"},
				})
			}
		}
		return violations
	}, nil
}

func (s *journalEntryService) requireOwnEntry(tenant domain.TenantContext, entry *domain.JournalEntry) error {
	if err := s.RequireTenant(tenant); err != nil {
		return err
	}
	if entry.WorkplaceID != tenant.WorkplaceID {
		return fmt.Errorf("%w: journal entry belongs to another workplace", apperrors.ErrForbidden)
	}
	return nil
}

// ValidateEntry implements portssvc.JournalEntryValidatorSvc
func (s *journalEntryService) ValidateEntry(ctx context.Context, tenant domain.TenantContext, entry *domain.JournalEntry) (domain.ValidationResult, error) {
	if err := s.requireOwnEntry(tenant, entry); err != nil {
		return domain.ValidationResult{}, err
	}
	check, err := s.directoryCheck(ctx, tenant.WorkplaceID, entry)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return s.poster.Validator().ValidateWith(entry, entry.Totals(), check), nil
}

// PostEntry implements portssvc.JournalEntryWriterSvc
func (s *journalEntryService) PostEntry(ctx context.Context, tenant domain.TenantContext, draft *domain.JournalEntry) (*domain.JournalEntry, error) {
	if err := s.requireOwnEntry(tenant, draft); err != nil {
		return nil, err
	}
	if !draft.CanPost() {
		return nil, &domain.PostError{Kind: domain.PostInvalidState, Status: draft.Status}
	}

	check, err := s.directoryCheck(ctx, tenant.WorkplaceID, draft)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		posted, err := s.poster.Post(draft, tenant, check)
		if err != nil {
			var postErr *domain.PostError
			if errors.As(err, &postErr) && postErr.Kind == domain.PostValidationFailed {
				s.LogDebug(ctx, "Journal entry rejected", slog.Any("violations", postErr.Violations))
			}
			return nil, err
		}

		entryID, err := s.entryRepo.CommitEntry(ctx, *posted)
		if err != nil {
			// Only a number we drew ourselves may be replaced.
			if errors.Is(err, apperrors.ErrDuplicate) && draft.EntryNumber == "" && attempt < maxCommitAttempts {
				s.LogInfo(ctx, "Entry number collision, retrying", slog.String("entry_number", posted.EntryNumber), slog.Int("attempt", attempt))
				continue
			}
			s.LogError(ctx, err, "Failed to commit journal entry", slog.String("entry_number", posted.EntryNumber))
			return nil, fmt.Errorf("failed to commit journal entry: %w", err)
		}

		posted.EntryID = entryID
		s.LogInfo(ctx, "Journal entry posted",
			slog.String("entry_id", entryID),
			slog.String("entry_number", posted.EntryNumber),
			slog.Int("lines", len(posted.Lines)))
		s.track(tenant, posted)
		return posted, nil
	}
}

func (s *journalEntryService) track(tenant domain.TenantContext, posted *domain.JournalEntry) {
	if s.tracker == nil {
		return
	}
	s.tracker.Enqueue(tenant.UserID, EventJournalEntryPosted, map[string]any{
		"workplace_id":   tenant.WorkplaceID,
		"entry_number":   posted.EntryNumber,
		"line_count":     len(posted.Lines),
		"reference_type": string(posted.ReferenceType),
		"total_debit":    posted.TotalDebit.String(),
	})
}

// CreateEntry implements portssvc.JournalEntryWriterSvc. The request fills the
// two blank lines of a new draft first and appends the rest.
func (s *journalEntryService) CreateEntry(ctx context.Context, tenant domain.TenantContext, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}

	draft, err := BuildDraft(tenant.WorkplaceID, req, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.PostEntry(ctx, tenant, draft)
}

// BuildDraft turns a full journal entry request into a draft using the builder operations.
func BuildDraft(workplaceID string, req dto.CreateJournalEntryRequest, now time.Time) (*domain.JournalEntry, error) {
	entryDate, err := dto.ParseEntryDate(req.EntryDate, now)
	if err != nil {
		return nil, err
	}

	draft := domain.NewDraftEntry(workplaceID, entryDate)
	header := domain.EntryHeader{Description: &req.Description, ReferenceID: req.ReferenceID}
	if req.ReferenceType != "" {
		header.ReferenceType = &req.ReferenceType
	}
	if err := draft.UpdateHeader(header); err != nil {
		return nil, err
	}

	for i, line := range req.Lines {
		if i < len(draft.Lines) {
			lineID := draft.Lines[i].LineID
			for _, update := range line.Updates() {
				if err := draft.UpdateLine(lineID, update); err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
			}
			continue
		}
		if _, err := draft.AddLine(line.Updates()...); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return draft, nil
}

// GetEntryByID implements portssvc.JournalEntryReaderSvc
func (s *journalEntryService) GetEntryByID(ctx context.Context, tenant domain.TenantContext, entryID string) (*domain.JournalEntry, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindEntryByID(ctx, tenant.WorkplaceID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries implements portssvc.JournalEntryReaderSvc
func (s *journalEntryService) ListEntries(ctx context.Context, tenant domain.TenantContext, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	entries, nextToken, err := s.entryRepo.ListEntriesByWorkplace(ctx, tenant.WorkplaceID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
