package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/accounts"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/add"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/csvimport"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/currency"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/list"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/root"
	"github.com/jelsonhosly/FinanceTracker-sub001/cmd/summary"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the bootstrap log level before any command runs
	configureLogLevelDirectly()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(currency.Cmd)
	root.Cmd.AddCommand(csvimport.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level from LOG_LEVEL so even
// the earliest messages respect it
func configureLogLevelDirectly() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	root.Log.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatalf("Error executing command: %v", err)
	}
}
