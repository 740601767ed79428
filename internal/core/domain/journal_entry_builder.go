package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	// ErrEntryNotDraft is returned when a draft-only operation is attempted on a
	// posted or archived entry. It wraps apperrors.ErrInvalidState.
	ErrEntryNotDraft = fmt.Errorf("%w: journal entry is not a draft", apperrors.ErrInvalidState)
	// ErrLineNotFound is returned when a line id does not belong to the entry.
	ErrLineNotFound = fmt.Errorf("journal entry line: %w", apperrors.ErrNotFound)
	// ErrNegativeAmount is returned when a debit or credit below zero is set.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	// ErrAmountPrecision is returned when an amount has more than AmountScale
	// decimal places or more integer digits than the ledger stores.
	ErrAmountPrecision = fmt.Errorf("%w: amount must have at most %d decimal places and %d integer digits",
		apperrors.ErrValidation, AmountScale, AmountIntegerDigits)
	// ErrNilLineUpdate is returned when a nil update is applied to a line.
	ErrNilLineUpdate = fmt.Errorf("%w: line update is nil", apperrors.ErrValidation)
)

// AmountIntegerDigits is the number of digits allowed left of the decimal point.
const AmountIntegerDigits = 16

var amountLimit = decimal.New(1, AmountIntegerDigits)

// CheckAmount reports whether d can be stored as a line amount: not negative,
// at most AmountScale decimal places and below 10^AmountIntegerDigits.
// Trailing zeros do not count, so 1.5000 is accepted.
func CheckAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(AmountScale)) || d.GreaterThanOrEqual(amountLimit) {
		return ErrAmountPrecision
	}
	return nil
}

// IsStorableAmount is CheckAmount without the negative check.
func IsStorableAmount(d decimal.Decimal) bool {
	return CheckAmount(d.Abs()) == nil
}

// LineUpdate is a single field update on a journal line. The concrete types
// below are the only implementations, so field and value always agree.
type LineUpdate interface {
	applyTo(l *JournalEntryLine) error
}

// SetAccount sets the line's account.
type SetAccount struct{ AccountID string }

// SetDescription sets the line's description.
type SetDescription struct{ Description string }

// SetDebit sets the debit amount. The credit amount is left as is.
type SetDebit struct{ Amount decimal.Decimal }

// SetCredit sets the credit amount. The debit amount is left as is.
type SetCredit struct{ Amount decimal.Decimal }

// SetCostCenter sets or, with a nil id, clears the line's cost center.
type SetCostCenter struct{ CostCenterID *string }

func (u SetAccount) applyTo(l *JournalEntryLine) error {
	l.AccountID = strings.TrimSpace(u.AccountID)
	return nil
}

func (u SetDescription) applyTo(l *JournalEntryLine) error {
	l.Description = u.Description
	return nil
}

func (u SetDebit) applyTo(l *JournalEntryLine) error {
	if err := CheckAmount(u.Amount); err != nil {
		return err
	}
	l.DebitAmount = u.Amount
	return nil
}

func (u SetCredit) applyTo(l *JournalEntryLine) error {
	if err := CheckAmount(u.Amount); err != nil {
		return err
	}
	l.CreditAmount = u.Amount
	return nil
}

func (u SetCostCenter) applyTo(l *JournalEntryLine) error {
	if u.CostCenterID == nil || strings.TrimSpace(*u.CostCenterID) == "" {
		l.CostCenterID = nil
		return nil
	}
	id := strings.TrimSpace(*u.CostCenterID)
	l.CostCenterID = &id
	return nil
}

// EntryHeader carries optional header changes for a draft. Nil fields are left untouched.
type EntryHeader struct {
	EntryDate     *time.Time
	Description   *string
	ReferenceType *ReferenceType
	ReferenceID   *string // empty string clears the reference
}

// Totals are the aggregates of an entry's current lines.
type Totals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"` // TotalDebit - TotalCredit
}

// IsBalanced reports whether debits equal credits and are non-zero.
// All-zero totals are never balanced.
func (t Totals) IsBalanced() bool {
	return t.Difference.IsZero() && t.TotalDebit.IsPositive()
}

// UpdateHeader applies header changes to a draft.
func (e *JournalEntry) UpdateHeader(h EntryHeader) error {
	if !e.CanMutate() {
		return ErrEntryNotDraft
	}
	if h.EntryDate != nil {
		e.EntryDate = NormalizeDate(*h.EntryDate)
	}
	if h.Description != nil {
		e.Description = *h.Description
	}
	if h.ReferenceType != nil {
		e.ReferenceType = *h.ReferenceType
	}
	if h.ReferenceID != nil {
		if *h.ReferenceID == "" {
			e.ReferenceID = nil
		} else {
			ref := *h.ReferenceID
			e.ReferenceID = &ref
		}
	}
	return nil
}

// AddLine appends a zeroed, blank line, applies any initial updates to it and
// renumbers the entry. If an initial update is rejected nothing is appended.
func (e *JournalEntry) AddLine(initial ...LineUpdate) (LineID, error) {
	if !e.CanMutate() {
		return "", ErrEntryNotDraft
	}
	line := JournalEntryLine{DebitAmount: decimal.Zero, CreditAmount: decimal.Zero}
	for _, u := range initial {
		if u == nil {
			return "", ErrNilLineUpdate
		}
		if err := u.applyTo(&line); err != nil {
			return "", err
		}
	}
	id := e.appendBlankLine()
	idx := len(e.Lines) - 1
	line.LineID = id
	line.LineNumber = e.Lines[idx].LineNumber
	e.Lines[idx] = line
	return id, nil
}

// RemoveLine deletes a line and renumbers the rest. Removal that would leave
// fewer than two lines is refused: it returns false and changes nothing.
func (e *JournalEntry) RemoveLine(id LineID) (bool, error) {
	if !e.CanMutate() {
		return false, ErrEntryNotDraft
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	if len(e.Lines) <= minLines {
		return false, nil
	}
	e.Lines = append(e.Lines[:idx], e.Lines[idx+1:]...)
	e.renumber()
	return true, nil
}

// UpdateLine applies one field update to the line. Debit and credit are
// independent; setting one never zeroes the other. On a posted or archived
// entry it returns ErrEntryNotDraft.
func (e *JournalEntry) UpdateLine(id LineID, update LineUpdate) error {
	if !e.CanMutate() {
		return ErrEntryNotDraft
	}
	if update == nil {
		return ErrNilLineUpdate
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}
	line := e.Lines[idx]
	if err := update.applyTo(&line); err != nil {
		return err
	}
	e.Lines[idx] = line
	return nil
}

// Totals sums the current lines. It is never cached.
func (e *JournalEntry) Totals() Totals {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.DebitAmount)
		credit = credit.Add(l.CreditAmount)
	}
	return Totals{
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  debit.Sub(credit),
	}
}

// IsBalanced reports whether the current lines balance. See Totals.IsBalanced.
func (e *JournalEntry) IsBalanced() bool {
	return e.Totals().IsBalanced()
}
