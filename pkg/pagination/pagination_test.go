package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(s string) string { return s }

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestCursorRoundTrip(t *testing.T) {
	enc := EncodeCursor(Cursor{Offset: 4, ID: "hoodie"})
	got, err := ParseCursor(enc)
	require.NoError(t, err)
	assert.Equal(t, &Cursor{Offset: 4, ID: "hoodie"}, got)

	got, err = ParseCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseCursor("%%%")
	assert.Error(t, err)
}

func TestPageWalksAllItems(t *testing.T) {
	items := []string{"tee", "hoodie", "jacket", "cargo", "cap"}

	page, next, err := Page(items, Params{Limit: 2}, ident)
	require.NoError(t, err)
	assert.Equal(t, []string{"tee", "hoodie"}, page)
	require.NotEmpty(t, next)

	page, next, err = Page(items, Params{Limit: 2, Cursor: next}, ident)
	require.NoError(t, err)
	assert.Equal(t, []string{"jacket", "cargo"}, page)

	page, next, err = Page(items, Params{Limit: 2, Cursor: next}, ident)
	require.NoError(t, err)
	assert.Equal(t, []string{"cap"}, page)
	assert.Empty(t, next)
}

func TestPageRejectsStaleCursor(t *testing.T) {
	items := []string{"tee", "hoodie", "jacket"}

	_, _, err := Page(items, Params{Cursor: EncodeCursor(Cursor{Offset: 1, ID: "jacket"})}, ident)
	assert.Error(t, err)

	_, _, err = Page(items, Params{Cursor: EncodeCursor(Cursor{Offset: 9, ID: "tee"})}, ident)
	assert.Error(t, err)
}
