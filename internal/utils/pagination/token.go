package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// DefaultLimit and MaxLimit bound page sizes for list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 200
)

const (
	cursorTimeFormat = time.RFC3339Nano
	cursorSeparator  = "|"
)

// cursors travel in query strings, hence the URL alphabet.
var cursorEncoding = base64.RawURLEncoding

// EncodeCursor builds a keyset cursor from the sort timestamp and id of the
// last row on a page. The id breaks ties between rows sharing a timestamp.
func EncodeCursor(at time.Time, id string) string {
	raw := at.UTC().Format(cursorTimeFormat) + cursorSeparator + id
	return cursorEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a cursor produced by EncodeCursor.
func DecodeCursor(token string) (time.Time, string, error) {
	raw, err := cursorEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token (base64 decode): %w", err)
	}

	ts, id, ok := strings.Cut(string(raw), cursorSeparator)
	if !ok || id == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token (split)")
	}

	at, err := time.Parse(cursorTimeFormat, ts)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token (timestamp parse): %w", err)
	}
	return at, id, nil
}

// NormalizeLimit clamps a requested page size.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
