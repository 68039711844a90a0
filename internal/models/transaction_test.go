package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		AccountID: "a1",
		Type:      TypeExpense,
		Amount:    decimal.NewFromInt(10),
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid expense", func(tx *Transaction) {}, false},
		{"zero amount is allowed", func(tx *Transaction) { tx.Amount = decimal.Zero }, false},
		{"missing account", func(tx *Transaction) { tx.AccountID = "" }, true},
		{"unknown type", func(tx *Transaction) { tx.Type = "refund" }, true},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, true},
		{"transfer without destination", func(tx *Transaction) { tx.Type = TypeTransfer }, true},
		{"transfer to itself", func(tx *Transaction) {
			tx.Type = TypeTransfer
			tx.ToAccountID = tx.AccountID
		}, true},
		{"valid transfer", func(tx *Transaction) {
			tx.Type = TypeTransfer
			tx.ToAccountID = "a2"
		}, false},
		{"destination on expense", func(tx *Transaction) { tx.ToAccountID = "a2" }, true},
		{"recurring without unit", func(tx *Transaction) {
			tx.IsRecurring = true
			tx.RecurringValue = 1
		}, true},
		{"recurring with zero interval", func(tx *Transaction) {
			tx.IsRecurring = true
			tx.RecurringUnit = RecurMonth
		}, true},
		{"valid recurring", func(tx *Transaction) {
			tx.IsRecurring = true
			tx.RecurringUnit = RecurMonth
			tx.RecurringValue = 1
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionFamilies(t *testing.T) {
	tests := []struct {
		txType   TransactionType
		income   bool
		expense  bool
		transfer bool
	}{
		{TypeIncome, true, false, false},
		{TypePaidIncome, true, false, false},
		{TypePendingIncome, true, false, false},
		{TypeExpense, false, true, false},
		{TypePaidExpense, false, true, false},
		{TypeDueExpense, false, true, false},
		{TypeTransfer, false, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			tx := Transaction{Type: tt.txType}
			assert.Equal(t, tt.income, tx.IsIncome())
			assert.Equal(t, tt.expense, tx.IsExpense())
			assert.Equal(t, tt.transfer, tx.IsTransfer())
		})
	}
}

func TestEffectivePaid(t *testing.T) {
	tests := []struct {
		name   string
		tx     Transaction
		expect bool
	}{
		{"paid variant wins over flag", Transaction{Type: TypePaidExpense, IsPaid: false}, true},
		{"due variant wins over flag", Transaction{Type: TypeDueExpense, IsPaid: true}, false},
		{"pending income is unpaid", Transaction{Type: TypePendingIncome, IsPaid: true}, false},
		{"generic type follows flag true", Transaction{Type: TypeExpense, IsPaid: true}, true},
		{"generic type follows flag false", Transaction{Type: TypeIncome, IsPaid: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.tx.EffectivePaid())
		})
	}
}

func TestLedgerStateClone_IsDeep(t *testing.T) {
	state := LedgerState{
		Accounts: []Account{{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(10)}},
		Categories: []Category{{
			ID: "c1", Name: "Food", Type: CategoryExpense,
			Subcategories: []Subcategory{{ID: "s1", Name: "Groceries"}},
		}},
		Currencies:   []Currency{{Code: "USD", Rate: decimal.NewFromInt(1), IsMain: true}},
		MainCurrency: "USD",
	}

	clone := state.Clone()
	clone.Accounts[0].Name = "changed"
	clone.Categories[0].Subcategories[0].Name = "changed"
	clone.Currencies[0].Code = "EUR"

	assert.Equal(t, "Checking", state.Accounts[0].Name)
	assert.Equal(t, "Groceries", state.Categories[0].Subcategories[0].Name)
	assert.Equal(t, "USD", state.Currencies[0].Code)
}

func TestLedgerStateLookups(t *testing.T) {
	state := LedgerState{
		Accounts:     []Account{{ID: "a1"}},
		Transactions: []Transaction{{ID: "t1"}, {ID: "t2"}},
		Categories:   []Category{{ID: "c1"}},
		Currencies:   []Currency{{Code: "USD"}},
	}

	require.NotNil(t, state.Account("a1"))
	assert.Nil(t, state.Account("nope"))
	assert.Equal(t, 1, state.Transaction("t2"))
	assert.Equal(t, -1, state.Transaction("nope"))
	require.NotNil(t, state.Category("c1"))
	assert.Nil(t, state.Category("nope"))
	require.NotNil(t, state.Currency("USD"))
	assert.Nil(t, state.Currency("CHF"))
}
