package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft    EntryStatus = "DRAFT"
	StatusPosted   EntryStatus = "POSTED"
	StatusArchived EntryStatus = "ARCHIVED" // set externally only
)

// ReferenceType tags where an entry came from. Informational only.
type ReferenceType string

const (
	ReferenceManual          ReferenceType = "manual"
	ReferenceSystemGenerated ReferenceType = "system-generated"
	ReferenceExpenseVoucher  ReferenceType = "expense-voucher"
	ReferenceContract        ReferenceType = "contract"
)

// minLines is the number of legs a journal entry needs to be postable, and the
// floor RemoveLine will not go below.
const minLines = 2

// AmountScale is the number of decimal places amounts are stored and shown with.
const AmountScale int32 = 3

// LineID identifies a line within its entry. It is not unique across entries.
type LineID string

// JournalEntryLine is one debit-or-credit leg of a journal entry.
type JournalEntryLine struct {
	LineID       LineID          `json:"lineID"`
	LineNumber   int             `json:"lineNumber"` // 1-based, dense
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	CostCenterID *string         `json:"costCenterID,omitempty"`
}

// JournalEntry is a multi-line accounting record for one business transaction.
// While in draft it is mutated through the builder methods; once posted it is frozen.
type JournalEntry struct {
	EntryID       string             `json:"entryID"`     // assigned by persistence
	WorkplaceID   string             `json:"workplaceID"` // tenant
	EntryNumber   string             `json:"entryNumber"` // JE-YYYY-MM-XXXXXX, set once at post
	EntryDate     time.Time          `json:"entryDate"`   // date only
	Description   string             `json:"description"`
	ReferenceType ReferenceType      `json:"referenceType"`
	ReferenceID   *string            `json:"referenceID,omitempty"`
	Status        EntryStatus        `json:"status"`
	Lines         []JournalEntryLine `json:"lines"`
	TotalDebit    decimal.Decimal    `json:"totalDebit"`  // frozen at post
	TotalCredit   decimal.Decimal    `json:"totalCredit"` // frozen at post
	PostedAt      *time.Time         `json:"postedAt,omitempty"`
	PostedBy      string             `json:"postedBy,omitempty"`
	AuditFields

	nextLineSeq int
}

// NewDraftEntry creates an empty draft for the workplace with two blank lines.
func NewDraftEntry(workplaceID string, entryDate time.Time) *JournalEntry {
	e := &JournalEntry{
		WorkplaceID:   workplaceID,
		EntryDate:     NormalizeDate(entryDate),
		ReferenceType: ReferenceManual,
		Status:        StatusDraft,
		TotalDebit:    decimal.Zero,
		TotalCredit:   decimal.Zero,
	}
	for i := 0; i < minLines; i++ {
		e.appendBlankLine()
	}
	return e
}

// RestoreEntry rebuilds an entry loaded from storage, keeping its stored line ids.
func RestoreEntry(e JournalEntry) *JournalEntry {
	restored := e
	restored.Lines = append([]JournalEntryLine(nil), e.Lines...)
	restored.nextLineSeq = len(restored.Lines)
	for _, l := range restored.Lines {
		if seq, err := strconv.Atoi(strings.TrimPrefix(string(l.LineID), "L")); err == nil && seq > restored.nextLineSeq {
			restored.nextLineSeq = seq
		}
	}
	restored.renumber()
	return &restored
}

// CanMutate reports whether lines and header may still be edited.
func (e *JournalEntry) CanMutate() bool {
	return e.Status == StatusDraft
}

// CanPost reports whether the draft -> posted transition is permitted from the current state.
func (e *JournalEntry) CanPost() bool {
	return e.Status == StatusDraft
}

// Line returns a copy of the line with the given id.
func (e *JournalEntry) Line(id LineID) (JournalEntryLine, bool) {
	idx := e.indexOf(id)
	if idx < 0 {
		return JournalEntryLine{}, false
	}
	return e.Lines[idx], true
}

// Clone returns a deep copy of the entry.
func (e *JournalEntry) Clone() *JournalEntry {
	c := *e
	c.Lines = make([]JournalEntryLine, len(e.Lines))
	for i, l := range e.Lines {
		if l.CostCenterID != nil {
			cc := *l.CostCenterID
			l.CostCenterID = &cc
		}
		c.Lines[i] = l
	}
	if e.ReferenceID != nil {
		ref := *e.ReferenceID
		c.ReferenceID = &ref
	}
	if e.PostedAt != nil {
		at := *e.PostedAt
		c.PostedAt = &at
	}
	return &c
}

func (e *JournalEntry) appendBlankLine() LineID {
	e.nextLineSeq++
	id := LineID(fmt.Sprintf("L%d", e.nextLineSeq))
	e.Lines = append(e.Lines, JournalEntryLine{
		LineID:       id,
		DebitAmount:  decimal.Zero,
		CreditAmount: decimal.Zero,
	})
	e.renumber()
	return id
}

func (e *JournalEntry) indexOf(id LineID) int {
	for i := range e.Lines {
		if e.Lines[i].LineID == id {
			return i
		}
	}
	return -1
}

func (e *JournalEntry) renumber() {
	for i := range e.Lines {
		e.Lines[i].LineNumber = i + 1
	}
}
