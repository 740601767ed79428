package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := EntryCursor{
		EntryDate: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		EntryID:   "5f0c6a9e-8f53-4b0e-9d61-0e4d1f3c2b7a",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"missing fields", base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))},
		{"empty id", base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|"))},
		{"bad date", base64.URLEncoding.EncodeToString([]byte("yesterday|2023-05-15T00:00:00Z|id"))},
		{"bad created_at", base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|later|id"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
