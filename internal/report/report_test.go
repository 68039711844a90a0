package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
}

func reportState() models.LedgerState {
	return models.LedgerState{
		Categories: []models.Category{
			{ID: "food", Name: "Food", Type: models.CategoryExpense},
			{ID: "salary", Name: "Salary", Type: models.CategoryIncome},
		},
		Currencies: []models.Currency{
			{Code: "USD", Rate: decimal.NewFromInt(1), IsMain: true},
			{Code: "EUR", Rate: decimal.NewFromInt(2)},
		},
		MainCurrency: "USD",
		Transactions: []models.Transaction{
			{ID: "t1", AccountID: "a", Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Currency: "USD", Date: date(1), CategoryID: "salary"},
			{ID: "t2", AccountID: "a", Type: models.TypeExpense, Amount: decimal.NewFromInt(200), Currency: "USD", Date: date(5), CategoryID: "food"},
			{ID: "t3", AccountID: "a", Type: models.TypeExpense, Amount: decimal.NewFromInt(50), Currency: "EUR", Date: date(10), CategoryID: "food"},
			{ID: "t4", AccountID: "a", Type: models.TypeExpense, Amount: decimal.NewFromInt(75), Currency: "USD", Date: date(12), CategoryID: "gone"},
			{ID: "t5", AccountID: "a", ToAccountID: "b", Type: models.TypeTransfer, Amount: decimal.NewFromInt(500), Currency: "USD", Date: date(15)},
			{ID: "t6", AccountID: "a", Type: models.TypeExpense, Amount: decimal.NewFromInt(999), Currency: "USD", Date: date(15).AddDate(0, 1, 0)},
		},
	}
}

func TestMonthly_Totals(t *testing.T) {
	summary := Monthly(reportState(), 2026, time.March, decimal.Zero)

	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, time.March, summary.Month)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(1000)))
	// 200 USD + 50 EUR at rate 2 (=100 USD) + 75 USD. The transfer and the
	// April expense are excluded.
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(375)),
		"expected 375, got %s", summary.Expense)
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(625)))
}

func TestMonthly_ByCategory(t *testing.T) {
	summary := Monthly(reportState(), 2026, time.March, decimal.Zero)

	require.Len(t, summary.ByCategory, 3)
	// Sorted by descending total: Salary 1000, Food 300, Uncategorized 75.
	assert.Equal(t, "Salary", summary.ByCategory[0].Name)
	assert.Equal(t, models.CategoryIncome, summary.ByCategory[0].Type)
	assert.Equal(t, "Food", summary.ByCategory[1].Name)
	assert.True(t, summary.ByCategory[1].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "Uncategorized", summary.ByCategory[2].Name,
		"a dangling category id groups as uncategorized")
}

func TestMonthly_Budget(t *testing.T) {
	summary := Monthly(reportState(), 2026, time.March, decimal.NewFromInt(400))
	assert.True(t, summary.BudgetRemaining.Equal(decimal.NewFromInt(25)))
	assert.False(t, summary.OverBudget)

	summary = Monthly(reportState(), 2026, time.March, decimal.NewFromInt(300))
	assert.True(t, summary.BudgetRemaining.Equal(decimal.NewFromInt(-75)))
	assert.True(t, summary.OverBudget)

	summary = Monthly(reportState(), 2026, time.March, decimal.Zero)
	assert.True(t, summary.BudgetRemaining.IsZero(), "zero budget skips the comparison")
	assert.False(t, summary.OverBudget)
}

func TestMonthly_EmptyMonth(t *testing.T) {
	summary := Monthly(reportState(), 2026, time.December, decimal.Zero)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.Empty(t, summary.ByCategory)
}

func TestMonthly_UnknownCurrencySkipped(t *testing.T) {
	state := reportState()
	state.Transactions = append(state.Transactions, models.Transaction{
		ID: "t7", AccountID: "a", Type: models.TypeExpense,
		Amount: decimal.NewFromInt(1000000), Currency: "XXX", Date: date(20),
	})

	summary := Monthly(state, 2026, time.March, decimal.Zero)
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(375)),
		"a transaction in an unknown currency must not distort the totals")
}
