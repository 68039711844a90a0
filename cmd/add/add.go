// Package add handles the transaction entry command
package add

import (
	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/common"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/dateutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var (
	account     string
	txType      string
	amount      string
	currency    string
	category    string
	subcategory string
	toAccount   string
	date        string
	note        string
	unpaid      bool
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction to the ledger",
	Long: `Add an income, expense or transfer transaction. Accounts and categories
are referenced by name; the balance of the affected account(s) is updated
immediately.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&account, "account", "a", "", "Account name (required)")
	Cmd.Flags().StringVarP(&txType, "type", "t", string(models.TypeExpense), "Transaction type (income|expense|transfer|paid_income|pending_income|paid_expense|due_expense)")
	Cmd.Flags().StringVarP(&amount, "amount", "m", "", "Amount (required, non-negative)")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code (defaults to the main currency)")
	Cmd.Flags().StringVar(&category, "category", "", "Category name")
	Cmd.Flags().StringVar(&subcategory, "subcategory", "", "Subcategory name")
	Cmd.Flags().StringVar(&toAccount, "to", "", "Destination account for transfers")
	Cmd.Flags().StringVar(&date, "date", "", "Transaction date (defaults to today)")
	Cmd.Flags().StringVar(&note, "note", "", "Description")
	Cmd.Flags().BoolVar(&unpaid, "unpaid", false, "Mark the transaction as pending rather than settled")
	_ = Cmd.MarkFlagRequired("account")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	acc, err := common.ResolveAccount(root.Store, account)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	value, err := currencyutils.ParseAmount(amount)
	if err != nil {
		root.Log.Fatalf("Error parsing amount: %v", err)
	}

	tx := models.Transaction{
		AccountID:   acc.ID,
		Type:        models.TransactionType(txType),
		Amount:      value,
		Currency:    currency,
		Description: note,
		IsPaid:      !unpaid,
	}

	if date != "" {
		parsed, _, err := dateutils.ParseDate(date)
		if err != nil {
			root.Log.Fatalf("Error parsing date: %v", err)
		}
		tx.Date = parsed
	}

	if toAccount != "" {
		dest, err := common.ResolveAccount(root.Store, toAccount)
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		tx.ToAccountID = dest.ID
	}

	if category != "" {
		cat, err := common.ResolveCategory(root.Store, category)
		if err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
		tx.CategoryID = cat.ID
		if subcategory != "" {
			for _, sub := range cat.Subcategories {
				if sub.Name == subcategory {
					tx.SubcategoryID = sub.ID
					break
				}
			}
		}
	}

	added, err := root.Store.AddTransaction(tx)
	if err != nil {
		root.Log.Fatalf("Error adding transaction: %v", err)
	}

	root.Log.WithField("id", added.ID).Info("Transaction added")
	for _, a := range root.Store.Accounts() {
		if a.ID == added.AccountID || a.ID == added.ToAccountID {
			root.Log.Infof("%s: %s", a.Name,
				currencyutils.FormatAmount(a.Balance, common.CurrencySymbol(root.Store, a.Currency)))
		}
	}
}
