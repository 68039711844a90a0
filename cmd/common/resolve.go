// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/ledger"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

// ResolveAccount finds an account by name or id, matching names
// case-insensitively.
func ResolveAccount(store *ledger.Store, nameOrID string) (models.Account, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	for _, a := range store.Accounts() {
		if a.ID == nameOrID || strings.EqualFold(a.Name, nameOrID) {
			return a, nil
		}
	}
	return models.Account{}, fmt.Errorf("no such account: %q", nameOrID)
}

// ResolveCategory finds a category by name or id, matching names
// case-insensitively.
func ResolveCategory(store *ledger.Store, nameOrID string) (models.Category, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	for _, c := range store.Categories() {
		if c.ID == nameOrID || strings.EqualFold(c.Name, nameOrID) {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("no such category: %q", nameOrID)
}

// CurrencySymbol returns the display symbol for a currency code, falling back
// to the code itself.
func CurrencySymbol(store *ledger.Store, code string) string {
	for _, c := range store.Currencies() {
		if c.Code == code && c.Symbol != "" {
			return c.Symbol
		}
	}
	return code
}
