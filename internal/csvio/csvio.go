// Package csvio reads bank-statement style CSV files into ledger
// transactions for bulk import. Rows reference accounts and categories by
// name, as exported statements do; the names are resolved against the ledger
// before anything is applied.
package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/dateutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// StatementRow is one line of an import file.
type StatementRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	Currency    string `csv:"Currency"`
	Account     string `csv:"Account"`
	ToAccount   string `csv:"ToAccount"`
	Category    string `csv:"Category"`
	Subcategory string `csv:"Subcategory"`
	Description string `csv:"Description"`
	Paid        string `csv:"Paid"`
}

// ReadStatementFile parses an import CSV into rows.
func ReadStatementFile(filePath string) ([]StatementRow, error) {
	log.WithField("file", filePath).Info("Reading statement file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []StatementRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing statement file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully read statement rows")
	return rows, nil
}

// Transaction resolves a row against the ledger's accounts and categories
// and builds the transaction to add. Account and category names match
// case-insensitively.
func (r StatementRow) Transaction(accounts []models.Account, categories []models.Category) (models.Transaction, error) {
	tx := models.Transaction{
		Type:        models.TransactionType(strings.TrimSpace(r.Type)),
		Currency:    strings.ToUpper(strings.TrimSpace(r.Currency)),
		Description: strings.TrimSpace(r.Description),
	}

	amount, err := currencyutils.ParseAmount(r.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	// Exported statements carry signed amounts; the ledger stores the
	// magnitude and keeps the direction in the type.
	tx.Amount = amount.Abs()
	if tx.Amount.Equal(decimal.Zero) && strings.TrimSpace(r.Amount) == "" {
		return models.Transaction{}, fmt.Errorf("row has no amount")
	}

	if r.Date != "" {
		date, _, err := dateutils.ParseDate(r.Date)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.Date = date
	}

	account, err := findAccount(accounts, r.Account)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.AccountID = account.ID

	if r.ToAccount != "" {
		dest, err := findAccount(accounts, r.ToAccount)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.ToAccountID = dest.ID
	}

	if r.Category != "" {
		category, err := findCategory(categories, r.Category)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.CategoryID = category.ID
		if r.Subcategory != "" {
			for _, sub := range category.Subcategories {
				if strings.EqualFold(sub.Name, strings.TrimSpace(r.Subcategory)) {
					tx.SubcategoryID = sub.ID
					break
				}
			}
		}
	}

	switch strings.ToLower(strings.TrimSpace(r.Paid)) {
	case "", "true", "yes", "y", "1":
		tx.IsPaid = true
	default:
		tx.IsPaid = false
	}

	return tx, nil
}

func findAccount(accounts []models.Account, name string) (models.Account, error) {
	name = strings.TrimSpace(name)
	for _, a := range accounts {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return models.Account{}, fmt.Errorf("unknown account in statement: %q", name)
}

func findCategory(categories []models.Category, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("unknown category in statement: %q", name)
}
