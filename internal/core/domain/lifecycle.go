package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
)

// PostErrorKind separates user-correctable rejections from lifecycle misuse.
type PostErrorKind string

const (
	// PostValidationFailed means one or more rules fired; the caller should show them.
	PostValidationFailed PostErrorKind = "VALIDATION_FAILED"
	// PostInvalidState means post was called on a non-draft entry: a caller bug.
	PostInvalidState PostErrorKind = "INVALID_STATE"
)

// PostError is returned by Poster.Post.
type PostError struct {
	Kind       PostErrorKind
	Status     EntryStatus
	Violations []Violation
}

func (e *PostError) Error() string {
	if e.Kind == PostInvalidState {
		return fmt.Sprintf("cannot post journal entry in status %s", e.Status)
	}
	kinds := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		kinds[i] = string(v.Kind)
	}
	return fmt.Sprintf("journal entry failed validation: %s", strings.Join(kinds, ", "))
}

// Unwrap maps the kind onto the application error families so callers can use errors.Is.
func (e *PostError) Unwrap() error {
	if e.Kind == PostInvalidState {
		return apperrors.ErrInvalidState
	}
	return apperrors.ErrValidation
}

// Poster performs the draft -> posted transition.
type Poster struct {
	clock     Clock
	suffixes  EntryNumberSuffixSource
	validator Validator
}

// NewPoster wires the collaborators the transition needs.
func NewPoster(clock Clock, suffixes EntryNumberSuffixSource, validator Validator) *Poster {
	return &Poster{clock: clock, suffixes: suffixes, validator: validator}
}

// Validator returns the rule set used by Post.
func (p *Poster) Validator() Validator {
	return p.validator
}

// Post validates the draft and returns a finalized copy: entry number assigned
// if absent, totals frozen, status posted. The draft itself is never modified,
// so a failed commit downstream leaves it a draft.
//
// Posting a posted or archived entry is a caller bug. It does not panic: Post
// returns a *PostError of kind PostInvalidState, which unwraps to
// apperrors.ErrInvalidState, and the entry is left untouched. Draft mutators
// report the same misuse as ErrEntryNotDraft.
func (p *Poster) Post(entry *JournalEntry, tenant TenantContext, checks ...ValidationCheck) (*JournalEntry, error) {
	if !entry.CanPost() {
		return nil, &PostError{Kind: PostInvalidState, Status: entry.Status}
	}

	totals := entry.Totals()
	result := p.validator.ValidateWith(entry, totals, checks...)
	if !result.OK {
		return nil, &PostError{Kind: PostValidationFailed, Status: entry.Status, Violations: result.Violations}
	}

	now := p.clock.Now()
	posted := entry.Clone()
	if posted.EntryNumber == "" {
		suffix, err := p.suffixes.Suffix()
		if err != nil {
			return nil, fmt.Errorf("failed to generate entry number: %w", err)
		}
		posted.EntryNumber = FormatEntryNumber(now, suffix)
	}
	posted.TotalDebit = totals.TotalDebit
	posted.TotalCredit = totals.TotalCredit
	posted.Status = StatusPosted
	posted.PostedAt = &now
	posted.PostedBy = tenant.UserID
	if posted.CreatedAt.IsZero() {
		posted.CreatedAt = now
		posted.CreatedBy = tenant.UserID
	}
	posted.LastUpdatedAt = now
	posted.LastUpdatedBy = tenant.UserID
	return posted, nil
}
