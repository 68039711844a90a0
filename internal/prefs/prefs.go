// Package prefs stores the user-level settings that live alongside the ledger
// in on-device storage: onboarding completion, profile fields, the selected
// display currency and the monthly budget. Every value is an independent
// JSON-serialized key and every read falls back to a default when the key is
// missing or unparseable.
package prefs

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/storage"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Storage keys. Values are JSON blobs.
const (
	KeyOnboardingComplete = "prefs.onboarding_complete"
	KeyProfile            = "prefs.profile"
	KeySelectedCurrency   = "prefs.selected_currency"
	KeyMonthlyBudget      = "prefs.monthly_budget"
)

// Profile holds the user-entered identity fields.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SelectedCurrency is the display currency chosen during onboarding.
type SelectedCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Prefs reads and writes user preferences over the key-value store.
type Prefs struct {
	kv *storage.KV
}

// New wraps a key-value store for preference access.
func New(kv *storage.KV) *Prefs {
	return &Prefs{kv: kv}
}

// OnboardingComplete reports whether onboarding has been finished.
// Missing or corrupt values read as false.
func (p *Prefs) OnboardingComplete() bool {
	var done bool
	p.load(KeyOnboardingComplete, &done)
	return done
}

// SetOnboardingComplete records the onboarding completion flag.
func (p *Prefs) SetOnboardingComplete(done bool) error {
	return p.save(KeyOnboardingComplete, done)
}

// Profile returns the stored profile, or the zero profile if none is stored.
func (p *Prefs) Profile() Profile {
	var profile Profile
	p.load(KeyProfile, &profile)
	return profile
}

// SetProfile stores the profile.
func (p *Prefs) SetProfile(profile Profile) error {
	return p.save(KeyProfile, profile)
}

// SelectedCurrency returns the stored display currency. ok is false when
// nothing usable is stored.
func (p *Prefs) SelectedCurrency() (SelectedCurrency, bool) {
	var currency SelectedCurrency
	if !p.load(KeySelectedCurrency, &currency) || currency.Code == "" {
		return SelectedCurrency{}, false
	}
	return currency, true
}

// SetSelectedCurrency stores the display currency.
func (p *Prefs) SetSelectedCurrency(currency SelectedCurrency) error {
	return p.save(KeySelectedCurrency, currency)
}

// MonthlyBudget returns the stored budget, or zero if none is stored.
func (p *Prefs) MonthlyBudget() decimal.Decimal {
	var budget decimal.Decimal
	if !p.load(KeyMonthlyBudget, &budget) {
		return decimal.Zero
	}
	return budget
}

// SetMonthlyBudget stores the monthly budget.
func (p *Prefs) SetMonthlyBudget(budget decimal.Decimal) error {
	return p.save(KeyMonthlyBudget, budget)
}

// load reads and decodes a key into out. It returns false, leaving out
// untouched, when the key is missing or the stored blob does not parse.
func (p *Prefs) load(key string, out interface{}) bool {
	blob, err := p.kv.Get(key)
	if err == storage.ErrNotFound {
		return false
	}
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to read preference")
		return false
	}
	if err := json.Unmarshal([]byte(blob), out); err != nil {
		log.WithError(err).WithField("key", key).Warn("Corrupt preference value, using default")
		return false
	}
	return true
}

func (p *Prefs) save(key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.kv.Put(key, string(blob))
}
