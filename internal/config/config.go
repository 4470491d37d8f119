// Package config loads the moneycalc settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/centcount/money"
)

const envPrefix = "MONEYCALC_"

// Config holds the command line configuration loaded from the environment.
type Config struct {
	LogLevel  string
	LogFormat string
	Currency  money.Currency
}

// Load reads configuration from environment variables and optional .env files.
// Without arguments the .env file of the working directory is used, if any.
// Files named explicitly must exist and be readable.
// Variables already present in the environment take precedence over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	curr, err := money.ParseCurr(strings.TrimSpace(valueOrDefault(k.String(envPrefix+"CURRENCY"), "USD")))
	if err != nil {
		return nil, fmt.Errorf("%sCURRENCY: %w", envPrefix, err)
	}

	cfg := &Config{
		LogLevel:  valueOrDefault(k.String(envPrefix+"LOG_LEVEL"), "info"),
		LogFormat: valueOrDefault(k.String(envPrefix+"LOG_FORMAT"), "console"),
		Currency:  curr,
	}
	return cfg, nil
}

// MustLoad behaves like Load but panics on error.
func MustLoad(files ...string) *Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
