package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const entryNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSecureRandomString returns n characters drawn uniformly from alphabet
// using crypto/rand.
func GenerateSecureRandomString(n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	if alphabet == "" {
		return "", fmt.Errorf("alphabet must not be empty")
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// EntryNumberSuffixes generates the random [A-Z0-9] part of journal entry numbers.
type EntryNumberSuffixes struct {
	Length int
}

// NewEntryNumberSuffixes returns a generator producing suffixes of the given length.
func NewEntryNumberSuffixes(length int) *EntryNumberSuffixes {
	return &EntryNumberSuffixes{Length: length}
}

// Suffix returns a fresh random suffix.
func (g *EntryNumberSuffixes) Suffix() (string, error) {
	return GenerateSecureRandomString(g.Length, entryNumberAlphabet)
}
