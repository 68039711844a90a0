package ledger

import (
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// seedCategoryFile is the on-disk shape of a category catalog:
// a top-level "categories:" list.
type seedCategoryFile struct {
	Categories []models.Category `yaml:"categories"`
}

// LoadSeedCategories loads a category catalog from a YAML file. A missing
// file is not an error: the built-in defaults are returned so a fresh install
// always starts with a usable catalog. Entries without ids get one assigned.
func LoadSeedCategories(path string) []models.Category {
	if path == "" {
		return DefaultCategories()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("Seed categories file not found, using defaults")
		} else {
			log.WithError(err).Warn("Failed to read seed categories file, using defaults")
		}
		return DefaultCategories()
	}

	var file seedCategoryFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Categories) > 0 {
		return assignCategoryIDs(file.Categories)
	}

	// Fallback: a bare list without the top-level key.
	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err == nil && len(categories) > 0 {
		return assignCategoryIDs(categories)
	}

	log.WithField("file", path).Warn("Unparseable seed categories file, using defaults")
	return DefaultCategories()
}

func assignCategoryIDs(categories []models.Category) []models.Category {
	for i := range categories {
		if categories[i].ID == "" {
			categories[i].ID = newID()
		}
		for j := range categories[i].Subcategories {
			if categories[i].Subcategories[j].ID == "" {
				categories[i].Subcategories[j].ID = newID()
			}
		}
	}
	return categories
}

// DefaultCategories returns the built-in category catalog used when no seed
// file is configured.
func DefaultCategories() []models.Category {
	return assignCategoryIDs([]models.Category{
		{Name: "Salary", Type: models.CategoryIncome, Icon: "briefcase"},
		{Name: "Other Income", Type: models.CategoryIncome, Icon: "coins"},
		{Name: "Groceries", Type: models.CategoryExpense, Icon: "cart"},
		{Name: "Housing", Type: models.CategoryExpense, Icon: "home", Subcategories: []models.Subcategory{
			{Name: "Rent"},
			{Name: "Utilities"},
		}},
		{Name: "Transport", Type: models.CategoryExpense, Icon: "bus"},
		{Name: "Entertainment", Type: models.CategoryExpense, Icon: "film"},
		{Name: "Health", Type: models.CategoryExpense, Icon: "heart"},
	})
}

// defaultCurrencies returns a one-entry rate table holding only the main
// currency at rate 1. Further currencies are added by the user.
func defaultCurrencies(mainCode string) []models.Currency {
	return []models.Currency{
		{
			Code:   mainCode,
			Name:   mainCode,
			Symbol: mainCode,
			Rate:   decimal.NewFromInt(1),
			IsMain: true,
		},
	}
}

// defaultState builds the state a fresh ledger starts from.
func defaultState(o options) models.LedgerState {
	categories := o.seedCategories
	if categories == nil {
		categories = DefaultCategories()
	}
	return models.LedgerState{
		Currencies:   defaultCurrencies(o.defaultCurrency),
		MainCurrency: o.defaultCurrency,
		Categories:   categories,
		TotalBalance: decimal.Zero,
	}
}
