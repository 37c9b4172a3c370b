package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	// Standard timestamp with nanoseconds
	postedAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(postedAt, "entry-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, postedAt, decodedAt, "Timestamp should match after decode")
	assert.Equal(t, "entry-42", decodedID, "ID should match after decode")

	// Zero time values
	zeroToken := EncodeCursor(time.Time{}, "x")
	decodedZero, _, err := DecodeCursor(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.True(t, decodedZero.IsZero(), "Zero time should survive a round trip")

	// Ids may contain the separator
	_, pipedID, err := DecodeCursor(EncodeCursor(postedAt, "a|b"))
	assert.NoError(t, err)
	assert.Equal(t, "a|b", pipedID)

	// Current time values
	now := time.Now().UTC()
	decodedNow, _, err := DecodeCursor(EncodeCursor(now, "y"))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeCursorError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	_, _, err = DecodeCursor(base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")))
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Invalid timestamp
	_, _, err = DecodeCursor(base64.RawURLEncoding.EncodeToString([]byte("notadate|abc")))
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "timestamp parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 5, NormalizeLimit(5))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
