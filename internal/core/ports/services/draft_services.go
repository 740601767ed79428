package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// DraftSvcFacade drives an interactive journal entry draft. Every method returns
// a snapshot of the draft after the change.
type DraftSvcFacade interface {
	CreateDraft(ctx context.Context, tenant domain.TenantContext, req dto.CreateDraftRequest) (*domain.Draft, error)
	GetDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, error)
	UpdateDraftHeader(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.UpdateDraftHeaderRequest) (*domain.Draft, error)
	AddDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, req dto.JournalEntryLineRequest) (*domain.Draft, domain.LineID, error)
	UpdateDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID, update domain.LineUpdate) (*domain.Draft, error)
	// RemoveDraftLine reports false when the removal was refused to keep two lines.
	RemoveDraftLine(ctx context.Context, tenant domain.TenantContext, draftID string, lineID domain.LineID) (*domain.Draft, bool, error)
	ValidateDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.Draft, domain.ValidationResult, error)
	// PostDraft commits the draft. On success the stored draft is replaced by the
	// posted entry, so posting it again fails with an invalid-state error.
	PostDraft(ctx context.Context, tenant domain.TenantContext, draftID string) (*domain.JournalEntry, error)
	DiscardDraft(ctx context.Context, tenant domain.TenantContext, draftID string) error
}
