package models

import "github.com/shopspring/decimal"

// LedgerState is the aggregate root: every collection the ledger store owns,
// plus the cached total balance in the main currency. It is mutated only
// through the ledger store's operations; consumers receive copies.
type LedgerState struct {
	Transactions []Transaction   `json:"transactions" yaml:"transactions"`
	Accounts     []Account       `json:"accounts" yaml:"accounts"`
	Categories   []Category      `json:"categories" yaml:"categories"`
	Currencies   []Currency      `json:"currencies" yaml:"currencies"`
	MainCurrency string          `json:"mainCurrency" yaml:"mainCurrency"`
	TotalBalance decimal.Decimal `json:"totalBalance" yaml:"totalBalance"`
}

// Clone returns a deep copy of the state. decimal.Decimal values are treated
// as immutable, so copying the structs is sufficient; only the slices need
// fresh backing arrays.
func (s *LedgerState) Clone() LedgerState {
	out := LedgerState{
		MainCurrency: s.MainCurrency,
		TotalBalance: s.TotalBalance,
	}
	if s.Transactions != nil {
		out.Transactions = make([]Transaction, len(s.Transactions))
		copy(out.Transactions, s.Transactions)
	}
	if s.Accounts != nil {
		out.Accounts = make([]Account, len(s.Accounts))
		copy(out.Accounts, s.Accounts)
	}
	if s.Categories != nil {
		out.Categories = make([]Category, len(s.Categories))
		for i, c := range s.Categories {
			cc := c
			if c.Subcategories != nil {
				cc.Subcategories = make([]Subcategory, len(c.Subcategories))
				copy(cc.Subcategories, c.Subcategories)
			}
			out.Categories[i] = cc
		}
	}
	if s.Currencies != nil {
		out.Currencies = make([]Currency, len(s.Currencies))
		copy(out.Currencies, s.Currencies)
	}
	return out
}

// Account returns a pointer to the account with the given id, or nil.
// The pointer aliases the state and is for internal use by the store.
func (s *LedgerState) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Transaction returns the index of the transaction with the given id, or -1.
func (s *LedgerState) Transaction(id string) int {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// Category returns a pointer to the category with the given id, or nil.
func (s *LedgerState) Category(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// Currency returns a pointer to the currency with the given code, or nil.
func (s *LedgerState) Currency(code string) *Currency {
	for i := range s.Currencies {
		if s.Currencies[i].Code == code {
			return &s.Currencies[i]
		}
	}
	return nil
}
