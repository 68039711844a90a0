package storage

import (
	"encoding/json"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// KeyLedgerState is the key the serialized ledger state lives under.
const KeyLedgerState = "ledger.state"

// persistedState is the on-disk shape of the ledger state. The undo history
// is deliberately absent: it is session-only. There is no schema version
// field, so loading relies on defensive parsing with fallback defaults.
type persistedState struct {
	Transactions []models.Transaction `json:"transactions"`
	Accounts     []models.Account     `json:"accounts"`
	Categories   []models.Category    `json:"categories"`
	Currencies   []models.Currency    `json:"currencies"`
	MainCurrency string               `json:"mainCurrency"`
}

// StateStore persists the ledger state as one JSON blob in the key-value
// store. It implements the ledger's Persister interface.
type StateStore struct {
	kv *KV
}

// NewStateStore wraps a key-value store for ledger state persistence.
func NewStateStore(kv *KV) *StateStore {
	return &StateStore{kv: kv}
}

// SaveState serializes and writes the ledger state.
func (s *StateStore) SaveState(state models.LedgerState) error {
	blob, err := json.Marshal(persistedState{
		Transactions: state.Transactions,
		Accounts:     state.Accounts,
		Categories:   state.Categories,
		Currencies:   state.Currencies,
		MainCurrency: state.MainCurrency,
	})
	if err != nil {
		return err
	}
	return s.kv.Put(KeyLedgerState, string(blob))
}

// LoadState restores a previously saved ledger state. A missing key or a
// corrupted blob is reported as ok=false rather than an error for the missing
// case: the caller falls back to a default state either way, and only genuine
// read failures and parse failures surface in err for logging.
func (s *StateStore) LoadState() (models.LedgerState, bool, error) {
	blob, err := s.kv.Get(KeyLedgerState)
	if err == ErrNotFound {
		return models.LedgerState{}, false, nil
	}
	if err != nil {
		return models.LedgerState{}, false, err
	}

	var p persistedState
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		// Corrupted state must not crash the app; start over.
		return models.LedgerState{}, false, err
	}
	return models.LedgerState{
		Transactions: p.Transactions,
		Accounts:     p.Accounts,
		Categories:   p.Categories,
		Currencies:   p.Currencies,
		MainCurrency: p.MainCurrency,
	}, true, nil
}
