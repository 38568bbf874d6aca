package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// AccountIDBase is the first account ID handed out; subsequent accounts
	// get sequential IDs from there.
	AccountIDBase int64

	// DefaultAnnualRate is the annual interest rate used when a request does
	// not supply one.
	DefaultAnnualRate decimal.Decimal

	// StatementWindowDays is the default statement window; 0 means full history.
	StatementWindowDays int

	// RateLimit is the request rate limit in ulule/limiter format, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ACCOUNT_ID_BASE", 1001)
	viper.SetDefault("DEFAULT_ANNUAL_RATE", "0.02")
	viper.SetDefault("STATEMENT_WINDOW_DAYS", 30)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AccountIDBase = viper.GetInt64("ACCOUNT_ID_BASE")
	if cfg.AccountIDBase < 1 {
		log.Printf("Warning: Invalid value for ACCOUNT_ID_BASE (%d). Defaulting to 1001.\n", cfg.AccountIDBase)
		cfg.AccountIDBase = 1001
	}

	rateStr := viper.GetString("DEFAULT_ANNUAL_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		log.Printf("Warning: Invalid value for DEFAULT_ANNUAL_RATE ('%s'). Defaulting to 0.02.\n", rateStr)
		rate = decimal.NewFromFloat(0.02)
	}
	cfg.DefaultAnnualRate = rate

	cfg.StatementWindowDays = viper.GetInt("STATEMENT_WINDOW_DAYS")
	if cfg.StatementWindowDays < 0 {
		log.Printf("Warning: Invalid value for STATEMENT_WINDOW_DAYS (%d). Defaulting to 30.\n", cfg.StatementWindowDays)
		cfg.StatementWindowDays = 30
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
