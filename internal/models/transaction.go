// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the direction and settlement state of a money movement.
type TransactionType string

const (
	// TypeIncome is a generic incoming movement.
	TypeIncome TransactionType = "income"
	// TypeExpense is a generic outgoing movement.
	TypeExpense TransactionType = "expense"
	// TypeTransfer moves money between two accounts of the same ledger.
	TypeTransfer TransactionType = "transfer"
	// TypePaidIncome is income that has already been received.
	TypePaidIncome TransactionType = "paid_income"
	// TypePendingIncome is income that is expected but not yet received.
	TypePendingIncome TransactionType = "pending_income"
	// TypePaidExpense is an expense that has already been settled.
	TypePaidExpense TransactionType = "paid_expense"
	// TypeDueExpense is an expense that is owed but not yet settled.
	TypeDueExpense TransactionType = "due_expense"
)

// RecurrenceUnit is the calendar unit of a recurring transaction.
type RecurrenceUnit string

const (
	RecurDay   RecurrenceUnit = "day"
	RecurWeek  RecurrenceUnit = "week"
	RecurMonth RecurrenceUnit = "month"
	RecurYear  RecurrenceUnit = "year"
)

// Transaction represents a single money movement in the ledger.
// Amount is always a non-negative magnitude; the direction is implied by Type.
type Transaction struct {
	ID            string          `json:"id" yaml:"id"`
	AccountID     string          `json:"accountId" yaml:"accountId"`
	Type          TransactionType `json:"type" yaml:"type"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Currency      string          `json:"currency" yaml:"currency"`
	Date          time.Time       `json:"date" yaml:"date"`
	Description   string          `json:"description,omitempty" yaml:"description,omitempty"`
	CategoryID    string          `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	SubcategoryID string          `json:"subcategoryId,omitempty" yaml:"subcategoryId,omitempty"`
	ToAccountID   string          `json:"toAccountId,omitempty" yaml:"toAccountId,omitempty"`
	IsPaid        bool            `json:"isPaid" yaml:"isPaid"`

	// Optional recurrence descriptor.
	IsRecurring    bool           `json:"isRecurring,omitempty" yaml:"isRecurring,omitempty"`
	RecurringUnit  RecurrenceUnit `json:"recurringUnit,omitempty" yaml:"recurringUnit,omitempty"`
	RecurringValue int            `json:"recurringValue,omitempty" yaml:"recurringValue,omitempty"`

	// Optional reference to an attached receipt (file path or asset id).
	ReceiptRef string `json:"receiptRef,omitempty" yaml:"receiptRef,omitempty"`
}

// IsIncome reports whether the transaction belongs to the income family.
func (t *Transaction) IsIncome() bool {
	switch t.Type {
	case TypeIncome, TypePaidIncome, TypePendingIncome:
		return true
	}
	return false
}

// IsExpense reports whether the transaction belongs to the expense family.
func (t *Transaction) IsExpense() bool {
	switch t.Type {
	case TypeExpense, TypePaidExpense, TypeDueExpense:
		return true
	}
	return false
}

// IsTransfer reports whether the transaction moves money between two accounts.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}

// EffectivePaid resolves the settlement state of the transaction.
// The paid_/pending_/due_ type variants override the IsPaid flag so that
// callers using either convention agree on the result.
func (t *Transaction) EffectivePaid() bool {
	switch t.Type {
	case TypePaidIncome, TypePaidExpense:
		return true
	case TypePendingIncome, TypeDueExpense:
		return false
	}
	return t.IsPaid
}

// Validate checks the shape of the transaction. Referential checks against
// accounts and currencies belong to the ledger store, not here.
func (t *Transaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("transaction requires an account")
	}
	if !t.IsIncome() && !t.IsExpense() && !t.IsTransfer() {
		return fmt.Errorf("unknown transaction type: %s", t.Type)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative: %s", t.Amount)
	}
	if t.IsTransfer() {
		if t.ToAccountID == "" {
			return fmt.Errorf("transfer requires a destination account")
		}
		if t.ToAccountID == t.AccountID {
			return fmt.Errorf("transfer source and destination must differ")
		}
	} else if t.ToAccountID != "" {
		return fmt.Errorf("only transfers may set a destination account")
	}
	if t.IsRecurring {
		switch t.RecurringUnit {
		case RecurDay, RecurWeek, RecurMonth, RecurYear:
		default:
			return fmt.Errorf("invalid recurrence unit: %s", t.RecurringUnit)
		}
		if t.RecurringValue < 1 {
			return fmt.Errorf("recurrence interval must be at least 1, got %d", t.RecurringValue)
		}
	}
	return nil
}
