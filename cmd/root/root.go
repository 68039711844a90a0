// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jelsonhosly/FinanceTracker-sub001/internal/config"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/csvio"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/currencyutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/fileutils"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/ledger"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/prefs"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/report"
	"github.com/jelsonhosly/FinanceTracker-sub001/internal/storage"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the loaded configuration after PersistentPreRun
	AppConfig *config.Config

	// Store is the ledger store shared by all subcommands
	Store *ledger.Store

	// Settings gives subcommands access to the persisted user preferences
	Settings *prefs.Prefs

	kv *storage.KV

	// DataDir optionally overrides the configured data directory
	DataDir string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintracker",
		Short: "A CLI personal finance ledger: accounts, transactions, budgets and reports.",
		Long: `fintracker keeps a local ledger of accounts, transactions, categories and
currencies in on-device storage, and computes balances, income/expense
summaries and multi-currency totals from it.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			if DataDir != "" {
				cfg.Data.Directory = DataDir
			}
			AppConfig = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to all packages
			ledger.SetLogger(Log)
			storage.SetLogger(Log)
			prefs.SetLogger(Log)
			csvio.SetLogger(Log)
			report.SetLogger(Log)
			currencyutils.SetLogger(Log)
			fileutils.SetLogger(Log)

			kv, err = storage.OpenKV(cfg.DBPath())
			if err != nil {
				Log.Fatalf("Error opening storage: %v", err)
			}
			Settings = prefs.New(kv)
			Store = ledger.New(
				storage.NewStateStore(kv),
				ledger.WithDefaultCurrency(cfg.Ledger.DefaultCurrency),
				ledger.WithSeedCategories(ledger.LoadSeedCategories(cfg.Ledger.SeedCategoriesFile)),
			)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if kv != nil {
				if err := kv.Close(); err != nil {
					Log.Warnf("Failed to close storage: %v", err)
				}
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Data directory (overrides configuration)")
}
