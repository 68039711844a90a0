// Package accounts handles account management commands
package accounts

import (
	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/common"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/models"
)

var (
	name        string
	accountType string
	currency    string
	balance     string
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts and their balances",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new account",
	Run:   addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an account without transactions",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Account name (required)")
	addCmd.Flags().StringVarP(&accountType, "type", "t", string(models.AccountChecking), "Account type (checking|savings|credit|cash|investment)")
	addCmd.Flags().StringVarP(&currency, "currency", "c", "", "Account currency (defaults to the main currency)")
	addCmd.Flags().StringVarP(&balance, "balance", "b", "0", "Opening balance")
	_ = addCmd.MarkFlagRequired("name")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	accounts := root.Store.Accounts()
	if len(accounts) == 0 {
		root.Log.Info("No accounts yet. Create one with 'fintracker accounts add'.")
		return
	}
	for _, a := range accounts {
		root.Log.Infof("%-20s %-12s %s", a.Name, a.Type,
			currencyutils.FormatAmount(a.Balance, common.CurrencySymbol(root.Store, a.Currency)))
	}
	main := root.Store.MainCurrency()
	root.Log.Infof("Total: %s",
		currencyutils.FormatAmount(root.Store.TotalBalance(), common.CurrencySymbol(root.Store, main)))
}

func addFunc(cmd *cobra.Command, args []string) {
	opening, err := currencyutils.ParseAmount(balance)
	if err != nil {
		root.Log.Fatalf("Error parsing balance: %v", err)
	}

	account, err := root.Store.AddAccount(models.Account{
		Name:     name,
		Type:     models.AccountType(accountType),
		Currency: currency,
		Balance:  opening,
	})
	if err != nil {
		root.Log.Fatalf("Error creating account: %v", err)
	}
	root.Log.WithField("id", account.ID).Infof("Account %s created", account.Name)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	account, err := common.ResolveAccount(root.Store, args[0])
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}
	if err := root.Store.DeleteAccount(account.ID); err != nil {
		root.Log.Fatalf("Error deleting account: %v", err)
	}
	root.Log.Infof("Account %s deleted", account.Name)
}
