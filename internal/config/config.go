// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/govalues/money"
	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DatabaseURL selects the Postgres store when non-empty; the in-memory
	// store is used otherwise.
	DatabaseURL string
	// ReportCurrency is the ISO code used to format report amounts.
	ReportCurrency string
	LogLevel       string
	LogFormat      string
	// DevSeed loads a small sample ledger on startup.
	DevSeed bool
}

// Load reads the environment. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Addr:           getEnv("ADDR", ":8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReportCurrency: strings.ToUpper(getEnv("REPORT_CURRENCY", "USD")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}
	// An unknown ISO code would make every formatted amount unparseable
	// downstream; fall back to the default rather than carry it.
	if _, err := money.ParseCurr(cfg.ReportCurrency); err != nil {
		cfg.ReportCurrency = "USD"
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEV_SEED"))) {
	case "1", "true", "yes":
		cfg.DevSeed = true
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
