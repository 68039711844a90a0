package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// Accounts returns a copy of the account collection.
func (s *Store) Accounts() []models.Account {
	out := make([]models.Account, len(s.state.Accounts))
	copy(out, s.state.Accounts)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []models.Category {
	clone := s.state.Clone()
	return clone.Categories
}

// Currencies returns a copy of the exchange rate table.
func (s *Store) Currencies() []models.Currency {
	out := make([]models.Currency, len(s.state.Currencies))
	copy(out, s.state.Currencies)
	return out
}

// MainCurrency returns the code of the ledger's main currency.
func (s *Store) MainCurrency() string {
	return s.state.MainCurrency
}

// State returns a deep copy of the whole ledger state for read-only
// consumers such as reports.
func (s *Store) State() models.LedgerState {
	return s.state.Clone()
}

// TotalBalance returns the cached sum of all account balances converted into
// the main currency.
func (s *Store) TotalBalance() decimal.Decimal {
	return s.state.TotalBalance
}

// PaidIncome sums realized income transactions, converted to the main currency.
func (s *Store) PaidIncome() decimal.Decimal {
	return s.sumTransactions(func(tx *models.Transaction) bool {
		return tx.IsIncome() && tx.EffectivePaid()
	})
}

// PaidExpenses sums settled expense transactions, converted to the main currency.
func (s *Store) PaidExpenses() decimal.Decimal {
	return s.sumTransactions(func(tx *models.Transaction) bool {
		return tx.IsExpense() && tx.EffectivePaid()
	})
}

// UnpaidIncome sums expected income not yet received, converted to the main currency.
func (s *Store) UnpaidIncome() decimal.Decimal {
	return s.sumTransactions(func(tx *models.Transaction) bool {
		return tx.IsIncome() && !tx.EffectivePaid()
	})
}

// UnpaidExpenses sums expenses still owed, converted to the main currency.
func (s *Store) UnpaidExpenses() decimal.Decimal {
	return s.sumTransactions(func(tx *models.Transaction) bool {
		return tx.IsExpense() && !tx.EffectivePaid()
	})
}

func (s *Store) sumTransactions(match func(*models.Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for i := range s.state.Transactions {
		tx := &s.state.Transactions[i]
		if !match(tx) {
			continue
		}
		converted, err := s.convert(tx.Amount, tx.Currency, s.state.MainCurrency)
		if err != nil {
			log.WithError(err).WithField("transaction", tx.ID).
				Warn("Skipping transaction with unknown currency in aggregate")
			continue
		}
		total = total.Add(converted)
	}
	return total
}

// RecentTransactions returns the n most recently dated transactions in
// descending date order. n larger than the collection returns everything.
func (s *Store) RecentTransactions(n int) []models.Transaction {
	if n <= 0 {
		return nil
	}
	out := make([]models.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ExchangeRate returns the conversion factor from one currency to another:
// rate(from)/rate(to), where each rate is relative to the main currency.
// Identical codes convert at 1. Unknown codes fail loudly since a silent
// fallback would corrupt financial totals.
func (s *Store) ExchangeRate(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	fromCur := s.state.Currency(from)
	if fromCur == nil {
		return decimal.Zero, &NotFoundError{Entity: "currency", ID: from}
	}
	toCur := s.state.Currency(to)
	if toCur == nil {
		return decimal.Zero, &NotFoundError{Entity: "currency", ID: to}
	}
	return fromCur.Rate.Div(toCur.Rate), nil
}
