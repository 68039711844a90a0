package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedCategories_TopLevelKey(t *testing.T) {
	path := writeSeedFile(t, `categories:
  - name: Food
    type: expense
    subcategories:
      - name: Groceries
      - name: Restaurants
  - name: Salary
    type: income
`)

	categories := LoadSeedCategories(path)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, models.CategoryExpense, categories[0].Type)
	require.Len(t, categories[0].Subcategories, 2)
	assert.NotEmpty(t, categories[0].ID, "ids are assigned on load")
	assert.NotEmpty(t, categories[0].Subcategories[0].ID)
}

func TestLoadSeedCategories_BareList(t *testing.T) {
	path := writeSeedFile(t, `- name: Food
  type: expense
- name: Salary
  type: income
`)

	categories := LoadSeedCategories(path)
	require.Len(t, categories, 2)
	assert.Equal(t, "Salary", categories[1].Name)
}

func TestLoadSeedCategories_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"empty path", func(t *testing.T) string { return "" }},
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "does-not-exist.yaml")
		}},
		{"unparseable content", func(t *testing.T) string {
			return writeSeedFile(t, "{{{ not yaml")
		}},
		{"empty file", func(t *testing.T) string {
			return writeSeedFile(t, "")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := LoadSeedCategories(tt.path(t))
			assert.Equal(t, len(DefaultCategories()), len(categories),
				"every fallback lands on the built-in defaults")
		})
	}
}

func TestDefaultCategories_HaveIDs(t *testing.T) {
	for _, c := range DefaultCategories() {
		assert.NotEmpty(t, c.ID)
		assert.Contains(t, []models.CategoryType{models.CategoryIncome, models.CategoryExpense}, c.Type)
		for _, sub := range c.Subcategories {
			assert.NotEmpty(t, sub.ID)
		}
	}
}
