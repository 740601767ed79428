package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// JournalEntryReaderSvc defines read operations for posted journal entries
type JournalEntryReaderSvc interface {
	// GetEntryByID retrieves a posted entry with its lines.
	GetEntryByID(ctx context.Context, tenant domain.TenantContext, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of posted entries in the tenant's workplace.
	ListEntries(ctx context.Context, tenant domain.TenantContext, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalEntryValidatorSvc runs the ledger rules, including the account and
// cost-center directory checks, without changing anything.
type JournalEntryValidatorSvc interface {
	ValidateEntry(ctx context.Context, tenant domain.TenantContext, entry *domain.JournalEntry) (domain.ValidationResult, error)
}

// JournalEntryWriterSvc defines write operations for journal entries
type JournalEntryWriterSvc interface {
	// CreateEntry builds a draft from the request, posts it and commits it.
	CreateEntry(ctx context.Context, tenant domain.TenantContext, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// PostEntry validates and posts the draft, then commits it atomically. The
	// returned entry is the committed one; the draft passed in is left untouched.
	PostEntry(ctx context.Context, tenant domain.TenantContext, draft *domain.JournalEntry) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryValidatorSvc
	JournalEntryWriterSvc
}
