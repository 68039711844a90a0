// Package ledger implements the store that owns all financial data: accounts,
// transactions, categories and the exchange rate table. Every mutation goes
// through the store, which validates the input, keeps account balances
// consistent, records an undo snapshot and writes the state through to
// persistent storage.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Persister is the write-through storage the store saves its state to.
// Persistence is opportunistic: a failed save is logged and the in-memory
// state stays authoritative until the next successful write.
type Persister interface {
	// SaveState persists the current ledger state.
	SaveState(state models.LedgerState) error
	// LoadState restores a previously saved state. ok is false when nothing
	// usable is stored, in which case the store falls back to defaults.
	LoadState() (state models.LedgerState, ok bool, err error)
}

// Store is the single source of truth for all financial data.
//
// The store follows the application's single-threaded execution model: all
// operations run synchronously on one logical thread of control and the store
// performs no internal locking. Callers that share a Store across goroutines
// must serialize access themselves.
type Store struct {
	state     models.LedgerState
	history   []models.LedgerState
	cursor    int
	persister Persister
}

// Option configures a Store during construction.
type Option func(*options)

type options struct {
	defaultCurrency string
	seedCategories  []models.Category
}

// WithDefaultCurrency sets the main currency code used when the store seeds
// a fresh state. Defaults to USD.
func WithDefaultCurrency(code string) Option {
	return func(o *options) {
		if code != "" {
			o.defaultCurrency = code
		}
	}
}

// WithSeedCategories sets the category catalog used when the store seeds a
// fresh state.
func WithSeedCategories(categories []models.Category) Option {
	return func(o *options) {
		o.seedCategories = categories
	}
}

// New creates a Store backed by the given persister. The state is restored
// from storage when possible; a missing or unreadable saved state falls back
// to a seeded default rather than failing (the app must always start).
func New(persister Persister, opts ...Option) *Store {
	o := options{defaultCurrency: "USD"}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{persister: persister}

	state, ok, err := persister.LoadState()
	if err != nil {
		log.WithError(err).Warn("Failed to load persisted ledger state, starting fresh")
	}
	if ok {
		s.state = state
		s.normalizeLoadedState(o)
	} else {
		s.state = defaultState(o)
	}
	s.recomputeTotalBalance()

	// Seed snapshot. Undo at this point is a no-op.
	s.history = []models.LedgerState{s.state.Clone()}
	s.cursor = 0
	return s
}

// normalizeLoadedState repairs a restored state that predates the current
// format: a missing currency table or main currency marker gets the defaults.
func (s *Store) normalizeLoadedState(o options) {
	if len(s.state.Currencies) == 0 {
		s.state.Currencies = defaultCurrencies(o.defaultCurrency)
		s.state.MainCurrency = o.defaultCurrency
		return
	}
	if s.state.Currency(s.state.MainCurrency) == nil {
		// Fall back to whichever entry is flagged main, else the first one.
		s.state.MainCurrency = s.state.Currencies[0].Code
		for _, c := range s.state.Currencies {
			if c.IsMain {
				s.state.MainCurrency = c.Code
				break
			}
		}
		log.WithField("currency", s.state.MainCurrency).
			Warn("Persisted main currency missing from rate table, reassigned")
	}
}

// commit records the current state as a new snapshot and writes it through to
// storage. Any redo future beyond the cursor is discarded: a new action
// invalidates it.
func (s *Store) commit() {
	s.history = append(s.history[:s.cursor+1], s.state.Clone())
	s.cursor = len(s.history) - 1
	s.persist()
}

// persist writes the state to storage. Failures are logged, never surfaced:
// the in-memory state is already updated and the next successful write
// reconciles the on-disk copy.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveState(s.state); err != nil {
		log.WithError(err).Warn("Failed to persist ledger state")
	}
}

// recomputeTotalBalance refreshes the cached total of all account balances
// converted into the main currency.
func (s *Store) recomputeTotalBalance() {
	total := decimal.Zero
	for _, a := range s.state.Accounts {
		converted, err := s.convert(a.Balance, a.Currency, s.state.MainCurrency)
		if err != nil {
			log.WithError(err).WithField("account", a.Name).
				Warn("Skipping account with unknown currency in total balance")
			continue
		}
		total = total.Add(converted)
	}
	s.state.TotalBalance = total
}

// convert converts an amount between two currencies of the rate table.
// Rates are relative to the main currency, so the conversion factor is
// rate(from)/rate(to).
func (s *Store) convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := s.ExchangeRate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
