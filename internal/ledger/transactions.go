package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// AddTransaction validates and appends a new transaction, adjusting the
// balance of the referenced account(s). The id is generated here; any id on
// the input is ignored. An empty currency defaults to the main currency and
// an unset date defaults to now.
func (s *Store) AddTransaction(tx models.Transaction) (models.Transaction, error) {
	tx.ID = uuid.New().String()
	if tx.Currency == "" {
		tx.Currency = s.state.MainCurrency
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	tx.IsPaid = tx.EffectivePaid()

	if err := s.checkTransaction(&tx, "add transaction"); err != nil {
		return models.Transaction{}, err
	}

	if err := s.applyEffect(&tx, decimal.NewFromInt(1)); err != nil {
		return models.Transaction{}, err
	}
	s.state.Transactions = append(s.state.Transactions, tx)
	s.recomputeTotalBalance()
	s.commit()

	log.WithFields(map[string]interface{}{
		"id":     tx.ID,
		"type":   tx.Type,
		"amount": tx.Amount.String(),
	}).Debug("Transaction added")
	return tx, nil
}

// UpdateTransaction replaces the stored transaction with the same id. The
// balance effect of the prior version is reversed before the new version is
// applied, so the accounts are never double-counted.
func (s *Store) UpdateTransaction(tx models.Transaction) error {
	idx := s.state.Transaction(tx.ID)
	if idx < 0 {
		return &NotFoundError{Entity: "transaction", ID: tx.ID}
	}
	if tx.Currency == "" {
		tx.Currency = s.state.MainCurrency
	}
	tx.IsPaid = tx.EffectivePaid()

	// Validate the replacement fully before reversing anything; a failed
	// update must leave the state untouched.
	if err := s.checkTransaction(&tx, "update transaction"); err != nil {
		return err
	}

	old := s.state.Transactions[idx]
	if err := s.reverseEffect(&old); err != nil {
		return err
	}
	if err := s.applyEffect(&tx, decimal.NewFromInt(1)); err != nil {
		// Restore the old effect so the failed update has no net result.
		if rerr := s.applyEffect(&old, decimal.NewFromInt(1)); rerr != nil {
			log.WithError(rerr).Error("Failed to restore balances after rejected update")
		}
		return err
	}
	s.state.Transactions[idx] = tx
	s.recomputeTotalBalance()
	s.commit()
	return nil
}

// DeleteTransaction reverses the transaction's balance effect and removes it.
// Deleting an id the ledger does not contain is a no-op: the reversal must
// never run twice.
func (s *Store) DeleteTransaction(id string) error {
	idx := s.state.Transaction(id)
	if idx < 0 {
		log.WithField("id", id).Debug("Delete of unknown transaction ignored")
		return nil
	}
	tx := s.state.Transactions[idx]
	if err := s.reverseEffect(&tx); err != nil {
		return err
	}
	s.state.Transactions = append(s.state.Transactions[:idx], s.state.Transactions[idx+1:]...)
	s.recomputeTotalBalance()
	s.commit()
	return nil
}

// checkTransaction runs shape validation plus the referential checks that
// need the ledger: the accounts must exist and the currency must be known.
func (s *Store) checkTransaction(tx *models.Transaction, op string) error {
	if err := tx.Validate(); err != nil {
		return &ValidationError{Op: op, Err: err}
	}
	if s.state.Currency(tx.Currency) == nil {
		return &NotFoundError{Entity: "currency", ID: tx.Currency}
	}
	if s.state.Account(tx.AccountID) == nil {
		return &NotFoundError{Entity: "account", ID: tx.AccountID}
	}
	if tx.IsTransfer() && s.state.Account(tx.ToAccountID) == nil {
		return &NotFoundError{Entity: "account", ID: tx.ToAccountID}
	}
	if tx.CategoryID != "" {
		cat := s.state.Category(tx.CategoryID)
		if cat == nil {
			return &NotFoundError{Entity: "category", ID: tx.CategoryID}
		}
		if tx.SubcategoryID != "" {
			if _, ok := cat.Subcategory(tx.SubcategoryID); !ok {
				return &NotFoundError{Entity: "subcategory", ID: tx.SubcategoryID}
			}
		}
	}
	return nil
}

// applyEffect adjusts account balances for the transaction, scaled by
// direction (+1 to apply, -1 to reverse). The amount is converted from the
// transaction's currency into each account's own currency before it is
// applied.
func (s *Store) applyEffect(tx *models.Transaction, direction decimal.Decimal) error {
	account := s.state.Account(tx.AccountID)
	if account == nil {
		return &NotFoundError{Entity: "account", ID: tx.AccountID}
	}

	amount, err := s.convert(tx.Amount, tx.Currency, account.Currency)
	if err != nil {
		return err
	}

	switch {
	case tx.IsIncome():
		account.Balance = account.Balance.Add(amount.Mul(direction))
	case tx.IsExpense():
		account.Balance = account.Balance.Sub(amount.Mul(direction))
	case tx.IsTransfer():
		dest := s.state.Account(tx.ToAccountID)
		if dest == nil {
			return &NotFoundError{Entity: "account", ID: tx.ToAccountID}
		}
		destAmount, err := s.convert(tx.Amount, tx.Currency, dest.Currency)
		if err != nil {
			return err
		}
		account.Balance = account.Balance.Sub(amount.Mul(direction))
		dest.Balance = dest.Balance.Add(destAmount.Mul(direction))
	}
	return nil
}

// reverseEffect undoes the balance contribution of a stored transaction.
func (s *Store) reverseEffect(tx *models.Transaction) error {
	return s.applyEffect(tx, decimal.NewFromInt(-1))
}
