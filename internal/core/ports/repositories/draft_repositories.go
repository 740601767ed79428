package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// DraftStore keeps journal entries that are still being edited. Drafts are
// scoped to a workplace; a lookup with the wrong workplace behaves as not found.
type DraftStore interface {
	// CreateDraft stores a new draft and returns its id.
	CreateDraft(ctx context.Context, entry *domain.JournalEntry) (string, error)

	// WithDraft runs fn with exclusive access to the stored draft. Changes made by
	// fn are kept even when it returns an error, so fn must only mutate on success.
	WithDraft(ctx context.Context, workplaceID, draftID string, fn func(entry *domain.JournalEntry) error) error

	// DeleteDraft discards a draft.
	DeleteDraft(ctx context.Context, workplaceID, draftID string) error
}
