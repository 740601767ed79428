// Package memory holds process-local stores for state that is never persisted.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

type draftSlot struct {
	mu      sync.Mutex
	entry   *domain.JournalEntry
	deleted bool
}

// DraftStore keeps drafts in a bounded LRU cache. When the cache is full the
// least recently touched draft is evicted. Each draft has its own lock, so
// edits to one draft never wait on another.
type DraftStore struct {
	cache *lru.Cache[string, *draftSlot]
}

var _ portsrepo.DraftStore = (*DraftStore)(nil)

// NewDraftStore creates a store holding at most size drafts.
func NewDraftStore(size int) (*DraftStore, error) {
	cache, err := lru.New[string, *draftSlot](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft cache: %w", err)
	}
	return &DraftStore{cache: cache}, nil
}

func draftKey(workplaceID, draftID string) string {
	return workplaceID + "/" + draftID
}

func draftNotFound(draftID string) error {
	return fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
}

func (s *DraftStore) CreateDraft(ctx context.Context, entry *domain.JournalEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	draftID := uuid.NewString()
	s.cache.Add(draftKey(entry.WorkplaceID, draftID), &draftSlot{entry: entry})
	return draftID, nil
}

func (s *DraftStore) WithDraft(ctx context.Context, workplaceID, draftID string, fn func(entry *domain.JournalEntry) error) error {
	slot, ok := s.cache.Get(draftKey(workplaceID, draftID))
	if !ok {
		return draftNotFound(draftID)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.deleted {
		return draftNotFound(draftID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(slot.entry)
}

func (s *DraftStore) DeleteDraft(ctx context.Context, workplaceID, draftID string) error {
	key := draftKey(workplaceID, draftID)
	slot, ok := s.cache.Peek(key)
	if !ok {
		return draftNotFound(draftID)
	}

	// Wait for an in-flight edit or post to finish before dropping the draft.
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.deleted {
		return draftNotFound(draftID)
	}
	slot.deleted = true
	s.cache.Remove(key)
	return nil
}

// Len reports the number of drafts currently held.
func (s *DraftStore) Len() int {
	return s.cache.Len()
}
