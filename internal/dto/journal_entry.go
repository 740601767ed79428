package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of entry dates.
const DateLayout = "2006-01-02"

// JournalEntryLineRequest is one line of a journal entry as sent by clients.
// Completeness is judged by the ledger rules, not by binding, so that blank
// lines come back as LINE_INCOMPLETE violations instead of a generic 400.
type JournalEntryLineRequest struct {
	AccountID    string          `json:"accountID" yaml:"accountID"`
	Description  string          `json:"description" yaml:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount" yaml:"debitAmount" binding:"dgte0,dscale"`
	CreditAmount decimal.Decimal `json:"creditAmount" yaml:"creditAmount" binding:"dgte0,dscale"`
	CostCenterID *string         `json:"costCenterID,omitempty" yaml:"costCenterID,omitempty"`
}

// CreateJournalEntryRequest defines the data needed to create and post a journal entry in one call.
type CreateJournalEntryRequest struct {
	EntryDate     string                    `json:"entryDate" yaml:"entryDate" binding:"omitempty,datetime=2006-01-02"` // defaults to today
	Description   string                    `json:"description" yaml:"description"`
	ReferenceType domain.ReferenceType      `json:"referenceType" yaml:"referenceType" binding:"omitempty,oneof=manual system-generated expense-voucher contract"`
	ReferenceID   *string                   `json:"referenceID,omitempty" yaml:"referenceID,omitempty"`
	Lines         []JournalEntryLineRequest `json:"lines" yaml:"lines" binding:"dive"`
}

// JournalEntryLineResponse defines the data returned for a journal entry line.
type JournalEntryLineResponse struct {
	LineID       string          `json:"lineID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	CostCenterID *string         `json:"costCenterID,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry, posted or draft.
type JournalEntryResponse struct {
	EntryID       string                     `json:"entryID,omitempty"`
	WorkplaceID   string                     `json:"workplaceID"`
	EntryNumber   string                     `json:"entryNumber,omitempty"`
	EntryDate     string                     `json:"entryDate"`
	Description   string                     `json:"description"`
	ReferenceType domain.ReferenceType       `json:"referenceType"`
	ReferenceID   *string                    `json:"referenceID,omitempty"`
	Status        domain.EntryStatus         `json:"status"`
	TotalDebit    decimal.Decimal            `json:"totalDebit"`
	TotalCredit   decimal.Decimal            `json:"totalCredit"`
	Difference    decimal.Decimal            `json:"difference"`
	IsBalanced    bool                       `json:"isBalanced"`
	Lines         []JournalEntryLineResponse `json:"lines,omitempty"`
	PostedAt      *time.Time                 `json:"postedAt,omitempty"`
	PostedBy      string                     `json:"postedBy,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ViolationResponse is one failed ledger rule.
type ViolationResponse struct {
	Kind       domain.ViolationKind `json:"kind"`
	LineID     string               `json:"lineID,omitempty"`
	LineNumber int                  `json:"lineNumber,omitempty"`
	Fields     []string             `json:"fields,omitempty"`
	Difference *decimal.Decimal     `json:"difference,omitempty"`
}

// ValidationResponse is returned by the validate endpoints and, with status 422,
// when posting is rejected.
type ValidationResponse struct {
	OK          bool                `json:"ok"`
	Violations  []ViolationResponse `json:"violations"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	Difference  decimal.Decimal     `json:"difference"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
// Posted entries report their frozen totals, drafts report live totals.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	totals := e.Totals()
	if e.Status != domain.StatusDraft {
		totals = domain.Totals{
			TotalDebit:  e.TotalDebit,
			TotalCredit: e.TotalCredit,
			Difference:  e.TotalDebit.Sub(e.TotalCredit),
		}
	}

	resp := JournalEntryResponse{
		EntryID:       e.EntryID,
		WorkplaceID:   e.WorkplaceID,
		EntryNumber:   e.EntryNumber,
		EntryDate:     e.EntryDate.Format(DateLayout),
		Description:   e.Description,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		Status:        e.Status,
		TotalDebit:    totals.TotalDebit,
		TotalCredit:   totals.TotalCredit,
		Difference:    totals.Difference,
		IsBalanced:    totals.IsBalanced(),
		PostedAt:      e.PostedAt,
		PostedBy:      e.PostedBy,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalEntryLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = JournalEntryLineResponse{
				LineID:       string(l.LineID),
				LineNumber:   l.LineNumber,
				AccountID:    l.AccountID,
				Description:  l.Description,
				DebitAmount:  l.DebitAmount,
				CreditAmount: l.CreditAmount,
				CostCenterID: l.CostCenterID,
			}
		}
	}
	return resp
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to []JournalEntryResponse.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}

// ToValidationResponse converts a validation result plus the totals it was computed from.
func ToValidationResponse(result domain.ValidationResult, totals domain.Totals) ValidationResponse {
	return ValidationResponse{
		OK:          result.OK,
		Violations:  ToViolationResponses(result.Violations),
		TotalDebit:  totals.TotalDebit,
		TotalCredit: totals.TotalCredit,
		Difference:  totals.Difference,
	}
}

// ToViolationResponses converts domain violations for the wire.
func ToViolationResponses(violations []domain.Violation) []ViolationResponse {
	out := make([]ViolationResponse, len(violations))
	for i, v := range violations {
		out[i] = ViolationResponse{
			Kind:       v.Kind,
			LineID:     string(v.LineID),
			LineNumber: v.LineNumber,
			Fields:     v.Fields,
			Difference: v.Difference,
		}
	}
	return out
}
