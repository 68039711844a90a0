// Package list handles the recent transactions command
package list

import (
	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/common"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/dateutils"
)

var limit int

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent transactions",
	Run:   listFunc,
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of transactions to show (defaults to the configured recent limit)")
}

func listFunc(cmd *cobra.Command, args []string) {
	n := limit
	if n <= 0 {
		n = root.AppConfig.Ledger.RecentLimit
	}

	transactions := root.Store.RecentTransactions(n)
	if len(transactions) == 0 {
		root.Log.Info("No transactions yet")
		return
	}

	accountNames := map[string]string{}
	for _, a := range root.Store.Accounts() {
		accountNames[a.ID] = a.Name
	}

	for _, tx := range transactions {
		root.Log.Infof("%s  %-14s %-20s %s",
			dateutils.FormatDate(tx.Date, dateutils.DateLayoutISO),
			tx.Type,
			accountNames[tx.AccountID],
			currencyutils.FormatAmount(tx.Amount, common.CurrencySymbol(root.Store, tx.Currency)))
	}
}
