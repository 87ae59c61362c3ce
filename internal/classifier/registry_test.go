package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

func TestNewRegistryOrder(t *testing.T) {
	registry := NewRegistry()

	entries := registry.Entries()
	require.Len(t, entries, len(models.Categories()))

	// The registry must enumerate categories in the fixed priority order.
	for i, want := range models.Categories() {
		assert.Equal(t, want, entries[i].Category, "entry %d", i)
	}

	for _, entry := range entries {
		assert.NotEmpty(t, entry.Patterns, "category %s has no patterns", entry.Category)
	}
}

func TestMatchFirstPatternWins(t *testing.T) {
	registry := NewRegistry()

	// This body satisfies both the USSD-prefixed airtime pattern and the
	// plain phrasing; the match must report the first one in the list.
	match, ok := registry.Match("*162*TxId:99*S*Your payment of 500 RWF to Airtime")
	require.True(t, ok)
	assert.Equal(t, models.CategoryAirtimePurchase, match.Category)
	assert.Contains(t, match.Pattern.Expr(), `\*162\*`)
}

func TestMatchCaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	match, ok := registry.Match("YOU HAVE RECEIVED 5,000 RWF FROM JANE DOE")
	require.True(t, ok)
	assert.Equal(t, models.CategoryIncomingMoney, match.Category)
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")

	content := `categories:
  - name: other_transfers
    patterns:
      - '(?P<amount>\d+(?:,\d+)*)\s+RWF moved'
  - name: incoming_money
    patterns:
      - 'Incoming\s+(?P<amount>\d+(?:,\d+)*)\s+RWF from\s+(?P<name>[^(]+)'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	registry, err := LoadRegistry(path)
	require.NoError(t, err)

	entries := registry.Entries()
	require.Len(t, entries, 2)

	// File order is the priority order, whatever it is.
	assert.Equal(t, models.CategoryOtherTransfer, entries[0].Category)
	assert.Equal(t, models.CategoryIncomingMoney, entries[1].Category)

	match, ok := registry.Match("100 RWF moved")
	require.True(t, ok)
	assert.Equal(t, models.CategoryOtherTransfer, match.Category)
}

func TestLoadRegistryErrors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
	}{
		{"unknown category", "categories:\n  - name: mystery\n    patterns:\n      - 'x'\n"},
		{"empty file", "categories: []\n"},
		{"category without patterns", "categories:\n  - name: incoming_money\n    patterns: []\n"},
		{"invalid pattern", "categories:\n  - name: incoming_money\n    patterns:\n      - '(['\n"},
		{"not yaml", "{{{{"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0600))

			_, err := LoadRegistry(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
