package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("REPORT_CURRENCY", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DEV_SEED", "")
	cfg := Load()
	if cfg.Addr != ":8080" || cfg.ReportCurrency != "USD" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" || cfg.DevSeed {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}

func TestLoad_CurrencyValidation(t *testing.T) {
	t.Setenv("REPORT_CURRENCY", "gbp")
	if got := Load().ReportCurrency; got != "GBP" {
		t.Fatalf("currency = %q, want GBP", got)
	}
	// An unknown code must not leak into the formatters.
	t.Setenv("REPORT_CURRENCY", "WAT")
	if got := Load().ReportCurrency; got != "USD" {
		t.Fatalf("invalid currency should fall back to USD, got %q", got)
	}
}

func TestLoad_DevSeed(t *testing.T) {
	for _, v := range []string{"1", "true", "yes"} {
		t.Setenv("DEV_SEED", v)
		if !Load().DevSeed {
			t.Fatalf("DEV_SEED=%q should enable seeding", v)
		}
	}
	t.Setenv("DEV_SEED", "0")
	if Load().DevSeed {
		t.Fatalf("DEV_SEED=0 should not enable seeding")
	}
}
