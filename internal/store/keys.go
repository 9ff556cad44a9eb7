package store

import (
	"fmt"
	"strings"
	"time"
)

// formatCreatedIndexKey creates a creation-time index key with a sortable
// timestamp. We use a custom format with zero-padded nanoseconds to ensure
// lexicographic sorting works correctly.
// Format: idx:{kind}:created_at:{YYYY-MM-DDTHH:MM:SS.NNNNNNNNNZ}:{entryID}.
// Example: idx:book:created_at:2024-01-15T10:30:00.123456789Z:book-abc123.
func formatCreatedIndexKey(kind string, timestamp time.Time, entryID string) []byte {
	// Fixed-width nanoseconds (always 9 digits) so string order matches
	// time order.
	timestampStr := timestamp.UTC().Format("2006-01-02T15:04:05") + fmt.Sprintf(".%09d", timestamp.Nanosecond()) + "Z"
	return fmt.Appendf(nil, "idx:%s:created_at:%s:%s", kind, timestampStr, entryID)
}

// createdIndexPrefix returns the key prefix shared by all creation-time index
// keys of a kind.
func createdIndexPrefix(kind string) []byte {
	return fmt.Appendf(nil, "idx:%s:created_at:", kind)
}

// parseCreatedIndexKey extracts the entry ID from a creation-time index key.
func parseCreatedIndexKey(key []byte, kind string) (entryID string, err error) {
	keyStr := string(key)
	prefix := string(createdIndexPrefix(kind))
	if !strings.HasPrefix(keyStr, prefix) {
		return "", fmt.Errorf("invalid index key: missing prefix %s", prefix)
	}

	remainder := strings.TrimPrefix(keyStr, prefix)

	// Timestamp format is fixed width: 2006-01-02T15:04:05.NNNNNNNNNZ = 30 characters.
	// This avoids issues with splitting on : which appears in the timestamp.
	const timestampLen = 30
	if len(remainder) < timestampLen+2 {
		return "", fmt.Errorf("invalid index key format: %s", keyStr)
	}

	return remainder[timestampLen+1:], nil
}
