package ledger

import (
	"github.com/google/uuid"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// AddAccount validates and appends a new account. The id is generated here;
// an empty currency defaults to the main currency. The starting balance is
// taken as given and treated as the account's opening balance.
func (s *Store) AddAccount(account models.Account) (models.Account, error) {
	account.ID = uuid.New().String()
	if account.Currency == "" {
		account.Currency = s.state.MainCurrency
	}
	if err := account.Validate(); err != nil {
		return models.Account{}, &ValidationError{Op: "add account", Err: err}
	}
	if s.state.Currency(account.Currency) == nil {
		return models.Account{}, &NotFoundError{Entity: "currency", ID: account.Currency}
	}

	s.state.Accounts = append(s.state.Accounts, account)
	s.recomputeTotalBalance()
	s.commit()

	log.WithFields(map[string]interface{}{
		"id":   account.ID,
		"name": account.Name,
	}).Debug("Account added")
	return account, nil
}

// UpdateAccount replaces the stored account with the same id. The balance on
// the input is preserved as-is; callers editing account metadata should pass
// the current balance through unchanged.
func (s *Store) UpdateAccount(account models.Account) error {
	if err := account.Validate(); err != nil {
		return &ValidationError{Op: "update account", Err: err}
	}
	if s.state.Currency(account.Currency) == nil {
		return &NotFoundError{Entity: "currency", ID: account.Currency}
	}
	existing := s.state.Account(account.ID)
	if existing == nil {
		return &NotFoundError{Entity: "account", ID: account.ID}
	}
	*existing = account
	s.recomputeTotalBalance()
	s.commit()
	return nil
}

// DeleteAccount removes an account. Deletion is blocked while any transaction
// still references the account, either as source or as transfer destination;
// the caller must delete or reassign those transactions first. This keeps
// every stored transaction resolvable against the account list.
func (s *Store) DeleteAccount(id string) error {
	found := -1
	for i := range s.state.Accounts {
		if s.state.Accounts[i].ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		return &NotFoundError{Entity: "account", ID: id}
	}
	for _, tx := range s.state.Transactions {
		if tx.AccountID == id || tx.ToAccountID == id {
			return &ConflictError{
				Op:     "delete account",
				Reason: "account still has transactions; delete or reassign them first",
			}
		}
	}

	s.state.Accounts = append(s.state.Accounts[:found], s.state.Accounts[found+1:]...)
	s.recomputeTotalBalance()
	s.commit()
	return nil
}

// newID generates an id for owned child entities such as subcategories.
func newID() string {
	return uuid.New().String()
}
