package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

func TestUndo_BoundaryNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.Undo(), "undo at the start of history must be a no-op")
	assert.False(t, s.CanUndo())
	assert.Equal(t, 1, s.HistoryLength(), "the seed snapshot is always present")
}

func TestRedo_BoundaryNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	addAccount(t, s, "Wallet", 10, "USD")

	assert.False(t, s.Redo(), "redo with nothing undone must be a no-op")
	assert.False(t, s.CanRedo())
}

func TestUndoRedo_InverseLaw(t *testing.T) {
	s, _ := newTestStore(t)
	account := addAccount(t, s, "Checking", 100, "USD")
	_, err := s.AddTransaction(models.Transaction{
		AccountID: account.ID,
		Type:      models.TypeExpense,
		Amount:    decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	before := s.State()

	require.True(t, s.Undo())
	assert.True(t, s.Accounts()[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, s.Transactions())

	require.True(t, s.Redo())
	after := s.State()
	assert.True(t, after.TotalBalance.Equal(before.TotalBalance))
	require.Len(t, after.Transactions, len(before.Transactions))
	assert.Equal(t, before.Transactions[0].ID, after.Transactions[0].ID)
	assert.True(t, after.Accounts[0].Balance.Equal(before.Accounts[0].Balance))
}

func TestUndo_StepsThroughEveryMutation(t *testing.T) {
	s, _ := newTestStore(t)
	account := addAccount(t, s, "Checking", 0, "USD")
	for _, amount := range []int64{10, 20, 30} {
		_, err := s.AddTransaction(models.Transaction{
			AccountID: account.ID,
			Type:      models.TypeIncome,
			Amount:    decimal.NewFromInt(amount),
		})
		require.NoError(t, err)
	}
	require.True(t, s.TotalBalance().Equal(decimal.NewFromInt(60)))

	require.True(t, s.Undo())
	assert.True(t, s.TotalBalance().Equal(decimal.NewFromInt(30)))
	require.True(t, s.Undo())
	assert.True(t, s.TotalBalance().Equal(decimal.NewFromInt(10)))
	require.True(t, s.Undo())
	assert.True(t, s.TotalBalance().IsZero())
	require.True(t, s.Undo(), "one more step back to before the account existed")
	assert.Empty(t, s.Accounts())
	assert.False(t, s.Undo())
}

func TestCommitAfterUndo_TruncatesRedoFuture(t *testing.T) {
	s, _ := newTestStore(t)
	account := addAccount(t, s, "Checking", 0, "USD")
	_, err := s.AddTransaction(models.Transaction{
		AccountID: account.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = s.AddTransaction(models.Transaction{
		AccountID: account.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	// A new mutation forks history; the undone snapshot is gone for good.
	_, err = s.AddTransaction(models.Transaction{
		AccountID: account.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())
	assert.True(t, s.TotalBalance().Equal(decimal.NewFromInt(5)))
}

func TestUndo_WritesRestoredStateThrough(t *testing.T) {
	s, p := newTestStore(t)
	addAccount(t, s, "Wallet", 42, "USD")
	savesBefore := p.saves

	require.True(t, s.Undo())
	assert.Equal(t, savesBefore+1, p.saves, "undo must persist the restored snapshot")
	assert.Empty(t, p.saved.Accounts)
}
