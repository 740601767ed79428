package mapping

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:       d.EntryID,
		WorkplaceID:   d.WorkplaceID,
		EntryNumber:   d.EntryNumber,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		Status:        string(d.Status),
		TotalDebit:    d.TotalDebit,
		TotalCredit:   d.TotalCredit,
		PostedAt:      d.PostedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PostedBy != "" {
		postedBy := d.PostedBy
		m.PostedBy = &postedBy
	}
	return m
}

// ToModelJournalEntryLines converts the lines of an entry for storage under entryID.
func ToModelJournalEntryLines(entryID string, lines []domain.JournalEntryLine) []models.JournalEntryLine {
	out := make([]models.JournalEntryLine, len(lines))
	for i, l := range lines {
		out[i] = models.JournalEntryLine{
			LineID:       string(l.LineID),
			EntryID:      entryID,
			LineNumber:   l.LineNumber,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			CostCenterID: l.CostCenterID,
		}
	}
	return out
}

// ToDomainJournalEntry rebuilds a domain JournalEntry from its stored header and lines.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalEntryLine) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:       m.EntryID,
		WorkplaceID:   m.WorkplaceID,
		EntryNumber:   m.EntryNumber,
		EntryDate:     domain.NormalizeDate(m.EntryDate),
		Description:   m.Description,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Status:        domain.EntryStatus(m.Status),
		TotalDebit:    m.TotalDebit,
		TotalCredit:   m.TotalCredit,
		PostedAt:      m.PostedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PostedBy != nil {
		d.PostedBy = *m.PostedBy
	}
	if len(lines) > 0 {
		d.Lines = make([]domain.JournalEntryLine, len(lines))
		for i, l := range lines {
			d.Lines[i] = domain.JournalEntryLine{
				LineID:       domain.LineID(l.LineID),
				LineNumber:   l.LineNumber,
				AccountID:    l.AccountID,
				Description:  l.Description,
				DebitAmount:  l.DebitAmount,
				CreditAmount: l.CreditAmount,
				CostCenterID: l.CostCenterID,
			}
		}
	}
	return *domain.RestoreEntry(d)
}
