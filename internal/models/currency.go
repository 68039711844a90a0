package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency describes one entry of the ledger's exchange rate table.
// Rate is expressed relative to the ledger's single main currency, whose own
// rate is defined as exactly 1. Exactly one currency is main at any time.
type Currency struct {
	Code   string          `json:"code" yaml:"code"`
	Name   string          `json:"name" yaml:"name"`
	Symbol string          `json:"symbol" yaml:"symbol"`
	Rate   decimal.Decimal `json:"rate" yaml:"rate"`
	IsMain bool            `json:"isMain" yaml:"isMain"`
}

// Validate checks the shape of the currency entry.
func (c *Currency) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("currency requires a code")
	}
	if !c.Rate.IsPositive() {
		return fmt.Errorf("currency %s requires a positive rate, got %s", c.Code, c.Rate)
	}
	return nil
}
