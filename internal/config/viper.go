// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		DBFile    string `mapstructure:"db_file" yaml:"db_file"`
	} `mapstructure:"data" yaml:"data"`

	Ledger struct {
		DefaultCurrency    string `mapstructure:"default_currency" yaml:"default_currency"`
		SeedCategoriesFile string `mapstructure:"seed_categories_file" yaml:"seed_categories_file"`
		RecentLimit        int    `mapstructure:"recent_limit" yaml:"recent_limit"`
	} `mapstructure:"ledger" yaml:"ledger"`
}

// DBPath resolves the full path of the sqlite storage file.
func (c *Config) DBPath() string {
	return filepath.Join(c.Data.Directory, c.Data.DBFile)
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fintracker")
	v.AddConfigPath(".fintracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINTRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	dataDir := ".fintracker"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".fintracker")
	}
	v.SetDefault("data.directory", dataDir)
	v.SetDefault("data.db_file", "ledger.db")

	// Ledger defaults
	v.SetDefault("ledger.default_currency", "USD")
	v.SetDefault("ledger.seed_categories_file", "")
	v.SetDefault("ledger.recent_limit", 10)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Data.DBFile == "" {
		return fmt.Errorf("data.db_file must not be empty")
	}

	if config.Ledger.DefaultCurrency == "" {
		return fmt.Errorf("ledger.default_currency must not be empty")
	}

	if config.Ledger.RecentLimit < 1 {
		return fmt.Errorf("ledger.recent_limit must be at least 1, got: %d", config.Ledger.RecentLimit)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
