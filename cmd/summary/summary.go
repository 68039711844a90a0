// Package summary handles the totals and monthly report command
package summary

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/common"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/report"
)

var (
	year  int
	month int
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show ledger totals and the monthly report",
	Run:   summaryFunc,
}

func init() {
	now := time.Now()
	Cmd.Flags().IntVar(&year, "year", now.Year(), "Report year")
	Cmd.Flags().IntVar(&month, "month", int(now.Month()), "Report month (1-12)")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	symbol := common.CurrencySymbol(root.Store, root.Store.MainCurrency())

	root.Log.Infof("Total balance:   %s", currencyutils.FormatAmount(root.Store.TotalBalance(), symbol))
	root.Log.Infof("Paid income:     %s", currencyutils.FormatAmount(root.Store.PaidIncome(), symbol))
	root.Log.Infof("Paid expenses:   %s", currencyutils.FormatAmount(root.Store.PaidExpenses(), symbol))
	root.Log.Infof("Unpaid income:   %s", currencyutils.FormatAmount(root.Store.UnpaidIncome(), symbol))
	root.Log.Infof("Unpaid expenses: %s", currencyutils.FormatAmount(root.Store.UnpaidExpenses(), symbol))

	monthly := report.Monthly(root.Store.State(), year, time.Month(month), root.Settings.MonthlyBudget())
	root.Log.Infof("%d-%02d income %s, expenses %s, net %s",
		monthly.Year, int(monthly.Month),
		currencyutils.FormatAmount(monthly.Income, symbol),
		currencyutils.FormatAmount(monthly.Expense, symbol),
		currencyutils.FormatAmount(monthly.Net, symbol))
	for _, row := range monthly.ByCategory {
		root.Log.Infof("  %-20s %s", row.Name, currencyutils.FormatAmount(row.Total, symbol))
	}
	if monthly.Budget.IsPositive() {
		if monthly.OverBudget {
			root.Log.Warnf("Over budget by %s",
				currencyutils.FormatAmount(monthly.BudgetRemaining.Neg(), symbol))
		} else {
			root.Log.Infof("Budget remaining: %s",
				currencyutils.FormatAmount(monthly.BudgetRemaining, symbol))
		}
	}
}
