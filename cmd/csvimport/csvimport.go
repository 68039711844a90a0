// Package csvimport handles bulk statement import
package csvimport

import (
	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/csvio"
)

var input string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a statement CSV file",
	Long: `Import transactions in bulk from a CSV file. Rows reference accounts and
categories by name; every row is validated and applied through the ledger,
so balances stay consistent. A row that fails to resolve is skipped with a
warning rather than aborting the rest of the import.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Statement CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	rows, err := csvio.ReadStatementFile(input)
	if err != nil {
		root.Log.Fatalf("Error reading statement: %v", err)
	}

	accounts := root.Store.Accounts()
	categories := root.Store.Categories()

	imported := 0
	for i, row := range rows {
		tx, err := row.Transaction(accounts, categories)
		if err != nil {
			root.Log.Warnf("Skipping row %d: %v", i+1, err)
			continue
		}
		if _, err := root.Store.AddTransaction(tx); err != nil {
			root.Log.Warnf("Skipping row %d: %v", i+1, err)
			continue
		}
		imported++
	}

	root.Log.Infof("Imported %d of %d transactions", imported, len(rows))
}
