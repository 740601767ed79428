package domain

import (
	"fmt"
	"regexp"
	"time"
)

// EntryNumberSuffixLength is the length of the random part of an entry number.
const EntryNumberSuffixLength = 6

var entryNumberPattern = regexp.MustCompile(`^JE-\d{4}-\d{2}-[A-Z0-9]{6}$`)

// EntryNumberSuffixSource supplies the random component of entry numbers.
// Uniqueness within a year-month bucket is probabilistic; the store enforces it.
type EntryNumberSuffixSource interface {
	Suffix() (string, error)
}

// FormatEntryNumber builds "JE-YYYY-MM-<suffix>".
func FormatEntryNumber(at time.Time, suffix string) string {
	return fmt.Sprintf("JE-%04d-%02d-%s", at.Year(), int(at.Month()), suffix)
}

// IsValidEntryNumber reports whether s has the JE-YYYY-MM-XXXXXX shape.
func IsValidEntryNumber(s string) bool {
	return entryNumberPattern.MatchString(s)
}
