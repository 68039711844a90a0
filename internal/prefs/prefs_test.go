package prefs

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/storage"
)

func newTestPrefs(t *testing.T) (*Prefs, *storage.KV) {
	t.Helper()
	kv, err := storage.OpenKV(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return New(kv), kv
}

func TestOnboardingComplete(t *testing.T) {
	p, _ := newTestPrefs(t)

	assert.False(t, p.OnboardingComplete(), "defaults to false on a fresh store")

	require.NoError(t, p.SetOnboardingComplete(true))
	assert.True(t, p.OnboardingComplete())

	require.NoError(t, p.SetOnboardingComplete(false))
	assert.False(t, p.OnboardingComplete())
}

func TestProfile(t *testing.T) {
	p, _ := newTestPrefs(t)

	assert.Equal(t, Profile{}, p.Profile(), "zero profile when nothing is stored")

	want := Profile{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, p.SetProfile(want))
	assert.Equal(t, want, p.Profile())
}

func TestSelectedCurrency(t *testing.T) {
	p, _ := newTestPrefs(t)

	_, ok := p.SelectedCurrency()
	assert.False(t, ok)

	want := SelectedCurrency{Code: "EUR", Name: "Euro", Symbol: "€"}
	require.NoError(t, p.SetSelectedCurrency(want))
	got, ok := p.SelectedCurrency()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMonthlyBudget(t *testing.T) {
	p, _ := newTestPrefs(t)

	assert.True(t, p.MonthlyBudget().IsZero(), "defaults to zero")

	require.NoError(t, p.SetMonthlyBudget(decimal.NewFromInt(1500)))
	assert.True(t, p.MonthlyBudget().Equal(decimal.NewFromInt(1500)))
}

func TestCorruptValuesFallBackToDefaults(t *testing.T) {
	p, kv := newTestPrefs(t)

	require.NoError(t, kv.Put(KeyOnboardingComplete, "not json"))
	require.NoError(t, kv.Put(KeyProfile, "[broken"))
	require.NoError(t, kv.Put(KeySelectedCurrency, "42garbage"))
	require.NoError(t, kv.Put(KeyMonthlyBudget, "wat"))

	assert.False(t, p.OnboardingComplete())
	assert.Equal(t, Profile{}, p.Profile())
	_, ok := p.SelectedCurrency()
	assert.False(t, ok)
	assert.True(t, p.MonthlyBudget().IsZero())
}

func TestSelectedCurrency_EmptyCodeReadsAsUnset(t *testing.T) {
	p, kv := newTestPrefs(t)
	require.NoError(t, kv.Put(KeySelectedCurrency, `{"code":"","name":"","symbol":""}`))

	_, ok := p.SelectedCurrency()
	assert.False(t, ok)
}
