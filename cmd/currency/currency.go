// Package currency handles exchange rate table commands
package currency

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var (
	name   string
	symbol string
	rate   string
)

// Cmd represents the currency command
var Cmd = &cobra.Command{
	Use:   "currency",
	Short: "List currencies and manage the exchange rate table",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add a currency with a rate relative to the main currency",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var setMainCmd = &cobra.Command{
	Use:   "set-main <code>",
	Short: "Re-base the rate table onto a new main currency",
	Args:  cobra.ExactArgs(1),
	Run:   setMainFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Remove an unused currency from the rate table",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	addCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Display symbol")
	addCmd.Flags().StringVarP(&rate, "rate", "r", "", "Exchange rate relative to the main currency (required)")
	_ = addCmd.MarkFlagRequired("rate")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(setMainCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	for _, c := range root.Store.Currencies() {
		marker := " "
		if c.IsMain {
			marker = "*"
		}
		root.Log.Infof("%s %-5s %-20s rate %s", marker, c.Code, c.Name, c.Rate.String())
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	code := strings.ToUpper(args[0])
	parsed, err := currencyutils.ParseAmount(rate)
	if err != nil {
		root.Log.Fatalf("Error parsing rate: %v", err)
	}
	displayName := name
	if displayName == "" {
		displayName = code
	}

	err = root.Store.AddCurrency(models.Currency{
		Code:   code,
		Name:   displayName,
		Symbol: symbol,
		Rate:   parsed,
	})
	if err != nil {
		root.Log.Fatalf("Error adding currency: %v", err)
	}
	root.Log.Infof("Currency %s added", code)
}

func setMainFunc(cmd *cobra.Command, args []string) {
	code := strings.ToUpper(args[0])
	if err := root.Store.SetMainCurrency(code); err != nil {
		root.Log.Fatalf("Error setting main currency: %v", err)
	}
	root.Log.Infof("Main currency is now %s", code)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	code := strings.ToUpper(args[0])
	if err := root.Store.DeleteCurrency(code); err != nil {
		root.Log.Fatalf("Error deleting currency: %v", err)
	}
	root.Log.Infof("Currency %s deleted", code)
}
