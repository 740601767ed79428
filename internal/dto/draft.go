package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Line command operations accepted by the update-line endpoint.
const (
	OpSetAccount     = "setAccount"
	OpSetDescription = "setDescription"
	OpSetDebit       = "setDebit"
	OpSetCredit      = "setCredit"
	OpSetCostCenter  = "setCostCenter"
)

// CreateDraftRequest defines the optional header of a new draft.
type CreateDraftRequest struct {
	EntryDate     string               `json:"entryDate" binding:"omitempty,datetime=2006-01-02"`
	Description   string               `json:"description"`
	ReferenceType domain.ReferenceType `json:"referenceType" binding:"omitempty,oneof=manual system-generated expense-voucher contract"`
	ReferenceID   *string              `json:"referenceID"`
}

// UpdateDraftHeaderRequest changes header fields of a draft. Omitted fields are left as is.
type UpdateDraftHeaderRequest struct {
	EntryDate     *string               `json:"entryDate" binding:"omitempty,datetime=2006-01-02"`
	Description   *string               `json:"description"`
	ReferenceType *domain.ReferenceType `json:"referenceType" binding:"omitempty,oneof=manual system-generated expense-voucher contract"`
	ReferenceID   *string               `json:"referenceID"` // "" clears it
}

// LineCommandRequest is a single tagged field update, e.g. {"op":"setDebit","value":"100.000"}.
// A null or missing value clears the cost center and zeroes amounts.
type LineCommandRequest struct {
	Op    string  `json:"op" binding:"required,oneof=setAccount setDescription setDebit setCredit setCostCenter"`
	Value *string `json:"value"`
}

// DraftResponse defines the data returned for a draft.
type DraftResponse struct {
	DraftID string `json:"draftID"`
	JournalEntryResponse
}

// AddDraftLineResponse is returned after a line was appended.
type AddDraftLineResponse struct {
	LineID string        `json:"lineID"`
	Draft  DraftResponse `json:"draft"`
}

// RemoveDraftLineResponse reports whether the line was removed. Removal below
// two lines is refused and reported as removed=false.
type RemoveDraftLineResponse struct {
	Removed bool          `json:"removed"`
	Draft   DraftResponse `json:"draft"`
}

// ToDraftResponse converts a domain.Draft to DraftResponse DTO.
func ToDraftResponse(d *domain.Draft) DraftResponse {
	return DraftResponse{
		DraftID:              d.DraftID,
		JournalEntryResponse: ToJournalEntryResponse(d.Entry),
	}
}

// ToLineUpdate converts the command into the matching domain update.
func (r LineCommandRequest) ToLineUpdate() (domain.LineUpdate, error) {
	value := ""
	if r.Value != nil {
		value = *r.Value
	}
	switch r.Op {
	case OpSetAccount:
		return domain.SetAccount{AccountID: value}, nil
	case OpSetDescription:
		return domain.SetDescription{Description: value}, nil
	case OpSetDebit, OpSetCredit:
		amount := decimal.Zero
		if strings.TrimSpace(value) != "" {
			parsed, err := decimal.NewFromString(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, value)
			}
			amount = parsed
		}
		if err := domain.CheckAmount(amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", value, err)
		}
		if r.Op == OpSetDebit {
			return domain.SetDebit{Amount: amount}, nil
		}
		return domain.SetCredit{Amount: amount}, nil
	case OpSetCostCenter:
		return domain.SetCostCenter{CostCenterID: r.Value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown line operation %q", apperrors.ErrValidation, r.Op)
	}
}

// Updates expands a full line request into the individual field updates.
func (r JournalEntryLineRequest) Updates() []domain.LineUpdate {
	return []domain.LineUpdate{
		domain.SetAccount{AccountID: r.AccountID},
		domain.SetDescription{Description: r.Description},
		domain.SetDebit{Amount: r.DebitAmount},
		domain.SetCredit{Amount: r.CreditAmount},
		domain.SetCostCenter{CostCenterID: r.CostCenterID},
	}
}

// ParseEntryDate parses a YYYY-MM-DD date, falling back to the given time when s is empty.
func ParseEntryDate(s string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return domain.NormalizeDate(fallback), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, s)
	}
	return t, nil
}
