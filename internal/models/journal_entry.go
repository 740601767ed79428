package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID       string          `db:"entry_id"`
	WorkplaceID   string          `db:"workplace_id"`
	EntryNumber   string          `db:"entry_number"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   *string         `db:"reference_id"`
	Status        string          `db:"status"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	PostedAt      *time.Time      `db:"posted_at"`
	PostedBy      *string         `db:"posted_by"`
	AuditFields
}

// JournalEntryLine is a row of the journal_entry_lines table.
type JournalEntryLine struct {
	LineID       string          `db:"line_id"` // entry-scoped, e.g. "L3"
	EntryID      string          `db:"entry_id"`
	LineNumber   int             `db:"line_number"`
	AccountID    string          `db:"account_id"`
	Description  string          `db:"description"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	CostCenterID *string         `db:"cost_center_id"`
}
