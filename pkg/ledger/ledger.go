// Package ledger exposes the ledger store for use as a library, re-exporting
// the internal implementation so external consumers do not depend on internal
// package paths.
package ledger

import (
	internal "github.com/jelsonhosly/FinanceTracker-sub001/internal/ledger"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/storage"
)

// Store is the single source of truth for all financial data.
type Store = internal.Store

// Persister is the write-through storage interface a Store saves to.
type Persister = internal.Persister

// Option configures a Store during construction.
type Option = internal.Option

// Re-exported entity types.
type (
	Transaction = models.Transaction
	Account     = models.Account
	Category    = models.Category
	Subcategory = models.Subcategory
	Currency    = models.Currency
	LedgerState = models.LedgerState
)

// New creates a Store backed by the given persister.
func New(persister Persister, opts ...Option) *Store {
	return internal.New(persister, opts...)
}

// WithDefaultCurrency sets the main currency code used for a fresh state.
func WithDefaultCurrency(code string) Option {
	return internal.WithDefaultCurrency(code)
}

// WithSeedCategories sets the category catalog used for a fresh state.
func WithSeedCategories(categories []Category) Option {
	return internal.WithSeedCategories(categories)
}

// Open opens the on-device storage at path and returns a Store persisted to
// it, plus a close function releasing the storage handle.
func Open(path string, opts ...Option) (*Store, func() error, error) {
	kv, err := storage.OpenKV(path)
	if err != nil {
		return nil, nil, err
	}
	store := internal.New(storage.NewStateStore(kv), opts...)
	return store, kv.Close, nil
}
