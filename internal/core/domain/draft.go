package domain

// Draft is a journal entry under construction together with the id the
// draft store assigned to it.
type Draft struct {
	DraftID string
	Entry   *JournalEntry
}
