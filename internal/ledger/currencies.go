package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// AddCurrency appends a new entry to the exchange rate table. The rate is
// relative to the current main currency. Duplicate codes are refused; adding
// a second main currency is refused (use SetMainCurrency instead).
func (s *Store) AddCurrency(currency models.Currency) error {
	if err := currency.Validate(); err != nil {
		return &ValidationError{Op: "add currency", Err: err}
	}
	if s.state.Currency(currency.Code) != nil {
		return &ConflictError{Op: "add currency", Reason: "code already exists: " + currency.Code}
	}
	if currency.IsMain {
		return &ConflictError{Op: "add currency", Reason: "ledger already has a main currency"}
	}

	s.state.Currencies = append(s.state.Currencies, currency)
	s.commit()
	return nil
}

// UpdateCurrency replaces the rate table entry with the same code. The main
// currency's rate is pinned to 1 and cannot be edited; re-base through
// SetMainCurrency instead. Unknown codes fail loudly: silently accepting one
// would corrupt every converted total.
func (s *Store) UpdateCurrency(currency models.Currency) error {
	if err := currency.Validate(); err != nil {
		return &ValidationError{Op: "update currency", Err: err}
	}
	existing := s.state.Currency(currency.Code)
	if existing == nil {
		return &NotFoundError{Entity: "currency", ID: currency.Code}
	}
	if existing.IsMain && !currency.Rate.Equal(decimal.NewFromInt(1)) {
		return &ConflictError{Op: "update currency", Reason: "main currency rate is fixed at 1"}
	}
	currency.IsMain = existing.IsMain
	*existing = currency
	s.recomputeTotalBalance()
	s.commit()
	return nil
}

// DeleteCurrency removes an entry from the rate table. The main currency
// cannot be deleted, and neither can a currency still referenced by an
// account or a transaction.
func (s *Store) DeleteCurrency(code string) error {
	found := -1
	for i := range s.state.Currencies {
		if s.state.Currencies[i].Code == code {
			found = i
			break
		}
	}
	if found < 0 {
		return &NotFoundError{Entity: "currency", ID: code}
	}
	if code == s.state.MainCurrency {
		return &ConflictError{Op: "delete currency", Reason: "cannot delete the main currency"}
	}
	for _, a := range s.state.Accounts {
		if a.Currency == code {
			return &ConflictError{Op: "delete currency", Reason: "currency in use by account " + a.Name}
		}
	}
	for _, tx := range s.state.Transactions {
		if tx.Currency == code {
			return &ConflictError{Op: "delete currency", Reason: "currency in use by transactions"}
		}
	}

	s.state.Currencies = append(s.state.Currencies[:found], s.state.Currencies[found+1:]...)
	s.commit()
	return nil
}

// SetMainCurrency re-bases the whole rate table onto a new main currency.
// Every rate is divided by the old rate of the new main, so the new main's
// rate becomes exactly 1 and all relative rates are preserved. Setting the
// current main again is a no-op.
func (s *Store) SetMainCurrency(code string) error {
	next := s.state.Currency(code)
	if next == nil {
		return &NotFoundError{Entity: "currency", ID: code}
	}
	if code == s.state.MainCurrency {
		return nil
	}

	pivot := next.Rate
	for i := range s.state.Currencies {
		c := &s.state.Currencies[i]
		c.Rate = c.Rate.Div(pivot)
		c.IsMain = c.Code == code
	}
	// Pin the new main to exactly 1; Div above can leave a long fraction.
	next.Rate = decimal.NewFromInt(1)
	s.state.MainCurrency = code
	s.recomputeTotalBalance()
	s.commit()

	log.WithField("currency", code).Info("Main currency changed")
	return nil
}
