package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// draftService keeps journal entries under construction in a DraftStore and
// hands them to the journal entry service for validation and posting.
type draftService struct {
	BaseService
	store   portsrepo.DraftStore
	entries portssvc.JournalEntrySvcFacade
	clock   domain.Clock
}

// NewDraftService creates a new draft service.
func NewDraftService(store portsrepo.DraftStore, entries portssvc.JournalEntrySvcFacade, clock domain.Clock) portssvc.DraftSvcFacade {
	return &draftService{store: store, entries: entries, clock: clock}
}

var _ portssvc.DraftSvcFacade = (*draftService)(nil)

func (s *draftService) CreateDraft(ctx context.Context, tenant domain.TenantContext, req dto.CreateDraftRequest) (*domain.Draft, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	entryDate, err := dto.ParseEntryDate(req.EntryDate, now)
	if err != nil {
		return nil, err
	}

	entry := domain.NewDraftEntry(tenant.WorkplaceID, entryDate)
	header := domain.EntryHeader{Description: &req.Description, ReferenceID: req.ReferenceID}
	if req.ReferenceType != "" {
		header.ReferenceType = &req.ReferenceType
	}
	if err := entry.UpdateHeader(header); err != nil {
		return nil, err
	}
	entry.CreatedAt = now
	entry.CreatedBy = tenant.UserID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = tenant.UserID

	snapshot := entry.Clone()
	draftID, err := s.store.CreateDraft(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to store draft")
		return nil, err
	}
	s.LogDebug(ctx, "Draft created", slog.String("draft_id", draftID))
	return &domain.Draft{DraftID: draftID, Entry: snapshot}, nil
}

func (s *draftService) GetDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, error) {
	return s.mutate(ctx, tenant, draftID, nil)
}

// mutate runs fn under the draft's lock and returns a snapshot taken after it.
// A nil fn only reads.
func (s *draftService) mutate(ctx context.Context, tenant domain.TenantContext, draftID string, fn func(e *domain.JournalEntry) error) (*domain.Draft, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	var snapshot *domain.JournalEntry
	err := s.store.WithDraft(ctx, tenant.WorkplaceID, draftID, func(e *domain.JournalEntry) error {
		if fn != nil {
			if err := fn(e); err != nil {
				return err
			}
			if e.CanMutate() {
				e.LastUpdatedAt = s.clock.Now()
				e.LastUpdatedBy = tenant.UserID
			}
		}
		snapshot = e.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.Draft{DraftID: draftID, Entry: snapshot}, nil
}

func (s *draftService) UpdateDraftHeader(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.UpdateDraftHeaderRequest) (*domain.Draft, error) {
	header := domain.EntryHeader{
		Description:   req.Description,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
	}
	if req.EntryDate != nil {
		t, err := time.Parse(dto.DateLayout, *req.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, *req.EntryDate)
		}
		header.EntryDate = &t
	}
	return s.mutate(ctx, tenant, draftID, func(e *domain.JournalEntry) error {
		return e.UpdateHeader(header)
	})
}

func (s *draftService) AddDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.JournalEntryLineRequest) (*domain.Draft, domain.LineID, error) {
	var lineID domain.LineID
	draft, err := s.mutate(ctx, tenant, draftID, func(e *domain.JournalEntry) error {
		id, err := e.AddLine(req.Updates()...)
		lineID = id
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return draft, lineID, nil
}

func (s *draftService) UpdateDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID, update domain.LineUpdate) (*domain.Draft, error) {
	return s.mutate(ctx, tenant, draftID, func(e *domain.JournalEntry) error {
		return e.UpdateLine(lineID, update)
	})
}

func (s *draftService) RemoveDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID) (*domain.Draft, bool, error) {
	var removed bool
	draft, err := s.mutate(ctx, tenant, draftID, func(e *domain.JournalEntry) error {
		ok, err := e.RemoveLine(lineID)
		removed = ok
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return draft, removed, nil
}

// ValidateDraft validates a snapshot so directory lookups happen outside the draft lock.
func (s *draftService) ValidateDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, domain.ValidationResult, error) {
	draft, err := s.GetDraft(ctx, tenant, draftID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	result, err := s.entries.ValidateEntry(ctx, tenant, draft.Entry)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	return draft, result, nil
}

// PostDraft holds the draft lock through the commit so concurrent edits and a
// second post wait for the outcome.
func (s *draftService) PostDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.JournalEntry, error) {
	if err := s.RequireTenant(tenant); err != nil {
		return nil, err
	}
	var posted *domain.JournalEntry
	err := s.store.WithDraft(ctx, tenant.WorkplaceID, draftID, func(e *domain.JournalEntry) error {
		committed, err := s.entries.PostEntry(ctx, tenant, e)
		if err != nil {
			return err
		}
		*e = *committed.Clone()
		posted = committed
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft posted", slog.String("draft_id", draftID), slog.String("entry_id", posted.EntryID))
	return posted, nil
}

func (s *draftService) DiscardDraft(ctx context.Context, tenant domain.TenantContext, draftID string) error {
	if err := s.RequireTenant(tenant); err != nil {
		return err
	}
	return s.store.DeleteDraft(ctx, tenant.WorkplaceID, draftID)
}
