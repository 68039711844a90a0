package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "ledger.db", cfg.Data.DBFile)
	assert.NotEmpty(t, cfg.Data.Directory)
	assert.Equal(t, "USD", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, 10, cfg.Ledger.RecentLimit)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Setenv("FINTRACKER_LOG_LEVEL", "debug")
	t.Setenv("FINTRACKER_LEDGER_DEFAULT_CURRENCY", "CHF")

	cfg := defaultConfig(t)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "CHF", cfg.Ledger.DefaultCurrency)
}

func TestInitializeConfig_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"bad log level", "FINTRACKER_LOG_LEVEL", "verbose"},
		{"bad log format", "FINTRACKER_LOG_FORMAT", "xml"},
		{"zero recent limit", "FINTRACKER_LEDGER_RECENT_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestDBPath(t *testing.T) {
	cfg := &Config{}
	cfg.Data.Directory = filepath.Join("some", "dir")
	cfg.Data.DBFile = "ledger.db"

	assert.Equal(t, filepath.Join("some", "dir", "ledger.db"), cfg.DBPath())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "not-a-level"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel(), "an invalid level falls back to info")
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
