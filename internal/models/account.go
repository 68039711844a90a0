package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of balance-holding entity.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCredit     AccountType = "credit"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// Account is a balance-holding entity. Balance is a cached projection of the
// account's transaction history, maintained incrementally by the ledger store,
// and is expressed in the account's own currency.
type Account struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Type     AccountType     `json:"type" yaml:"type"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
	Currency string          `json:"currency" yaml:"currency"`

	// Display metadata for UI consumers.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Validate checks the shape of the account.
func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account requires a name")
	}
	switch a.Type {
	case AccountChecking, AccountSavings, AccountCredit, AccountCash, AccountInvestment:
	default:
		return fmt.Errorf("unknown account type: %s", a.Type)
	}
	if a.Currency == "" {
		return fmt.Errorf("account requires a currency")
	}
	return nil
}
