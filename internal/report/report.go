// Package report computes derived reporting views over a ledger state:
// per-month income/expense breakdowns by category and budget comparison.
// Everything here is a pure function of the state passed in.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/dateutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryTotal is one row of a monthly breakdown, in the main currency.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Type       models.CategoryType
	Total      decimal.Decimal
}

// MonthlySummary aggregates one calendar month of a ledger state.
type MonthlySummary struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal

	// ByCategory is sorted by descending total. Transactions whose category
	// no longer resolves are grouped under the empty id as "Uncategorized".
	ByCategory []CategoryTotal

	// Budget comparison, present when a positive budget is supplied.
	Budget          decimal.Decimal
	BudgetRemaining decimal.Decimal
	OverBudget      bool
}

// Monthly builds the summary for one calendar month. Transfers move money
// between own accounts and are excluded; every amount is converted into the
// main currency. budget may be zero to skip the comparison.
func Monthly(state models.LedgerState, year int, month time.Month, budget decimal.Decimal) MonthlySummary {
	summary := MonthlySummary{
		Year:    year,
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Budget:  budget,
	}

	totals := map[string]*CategoryTotal{}
	for i := range state.Transactions {
		tx := &state.Transactions[i]
		if tx.IsTransfer() || !dateutils.InMonth(tx.Date, year, month) {
			continue
		}

		amount, ok := convertToMain(state, tx.Amount, tx.Currency)
		if !ok {
			log.WithField("transaction", tx.ID).
				Warn("Skipping transaction with unknown currency in monthly summary")
			continue
		}

		if tx.IsIncome() {
			summary.Income = summary.Income.Add(amount)
		} else {
			summary.Expense = summary.Expense.Add(amount)
		}

		row, ok := totals[tx.CategoryID]
		if !ok {
			row = &CategoryTotal{
				CategoryID: tx.CategoryID,
				Name:       categoryName(state, tx.CategoryID),
				Type:       models.CategoryExpense,
				Total:      decimal.Zero,
			}
			if tx.IsIncome() {
				row.Type = models.CategoryIncome
			}
			totals[tx.CategoryID] = row
		}
		row.Total = row.Total.Add(amount)
	}

	summary.Net = summary.Income.Sub(summary.Expense)
	if budget.IsPositive() {
		summary.BudgetRemaining = budget.Sub(summary.Expense)
		summary.OverBudget = summary.BudgetRemaining.IsNegative()
	}

	for _, row := range totals {
		summary.ByCategory = append(summary.ByCategory, *row)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Total.GreaterThan(summary.ByCategory[j].Total)
	})
	return summary
}

func categoryName(state models.LedgerState, id string) string {
	if id == "" {
		return "Uncategorized"
	}
	if cat := state.Category(id); cat != nil {
		return cat.Name
	}
	// Dangling category id after a category deletion.
	return "Uncategorized"
}

func convertToMain(state models.LedgerState, amount decimal.Decimal, code string) (decimal.Decimal, bool) {
	if code == state.MainCurrency {
		return amount, true
	}
	from := state.Currency(code)
	to := state.Currency(state.MainCurrency)
	if from == nil || to == nil {
		return decimal.Zero, false
	}
	return amount.Mul(from.Rate).Div(to.Rate), true
}
