package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	expenseDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 1, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(expenseDate, createdAt, "0b7c6f7e-4a47-4f3b-9f57-5d1c1c7a3f10")
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token goes in a query string")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, expenseDate, cursor.ExpenseDate)
	assert.Equal(t, createdAt, cursor.CreatedAt)
	assert.Equal(t, "0b7c6f7e-4a47-4f3b-9f57-5d1c1c7a3f10", cursor.ExpenseID)
}

func TestEncodeToken_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	createdAt := time.Date(2024, 3, 1, 21, 0, 0, 0, loc)

	cursor, err := DecodeToken(EncodeToken(createdAt, createdAt, "id-1"))
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(cursor.CreatedAt))
	assert.Equal(t, time.UTC, cursor.CreatedAt.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	noSeparator := base64.RawURLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z"))
	_, err = DecodeToken(noSeparator)
	assert.ErrorContains(t, err, "split")

	noID := base64.RawURLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|2024-03-01T14:30:45Z"))
	_, err = DecodeToken(noID)
	assert.ErrorContains(t, err, "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|2024-03-01T14:30:45Z|id-1"))
	_, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "expense date parse")

	badCreated := base64.RawURLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|later|id-1"))
	_, err = DecodeToken(badCreated)
	assert.ErrorContains(t, err, "created_at parse")
}
