package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many items any listing can return at once.
	MaxLimit = 100
)

// Params holds cursor pagination inputs from controllers.
type Params struct {
	Limit  int
	Cursor string
}

// Cursor points at the first item of the next page.
type Cursor struct {
	Offset int
	ID     string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// EncodeCursor builds an opaque cursor string.
func EncodeCursor(cursor Cursor) string {
	payload := fmt.Sprintf("%d|%s", cursor.Offset, cursor.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ParseCursor decodes the cursor string back into its components. A blank
// value yields a nil cursor.
func ParseCursor(value string) (*Cursor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}

	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return nil, fmt.Errorf("invalid cursor offset")
	}
	return &Cursor{Offset: offset, ID: parts[1]}, nil
}

// Page slices items according to p. id names each item so a cursor taken
// from a different listing is rejected instead of silently skipping rows.
// The returned cursor is empty on the last page.
func Page[T any](items []T, p Params, id func(T) string) ([]T, string, error) {
	limit := NormalizeLimit(p.Limit)

	start := 0
	cursor, err := ParseCursor(p.Cursor)
	if err != nil {
		return nil, "", err
	}
	if cursor != nil {
		if cursor.Offset >= len(items) || id(items[cursor.Offset]) != cursor.ID {
			return nil, "", fmt.Errorf("stale cursor")
		}
		start = cursor.Offset
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], "", nil
	}
	next := EncodeCursor(Cursor{Offset: end, ID: id(items[end])})
	return items[start:end], next, nil
}
