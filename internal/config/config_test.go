package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("events")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "3016" {
		t.Fatalf("events port = %q, want 3016", cfg.Server.Port)
	}
	if cfg.Store.File != "events.json" {
		t.Fatalf("events db file = %q, want events.json", cfg.Store.File)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_FILE", "/tmp/markets.json")
	t.Setenv("PRODUCTS_URL", "http://localhost:4000")

	cfg, err := Load("markets")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("port = %q, want override 9999", cfg.Server.Port)
	}
	if cfg.Store.File != "/tmp/markets.json" {
		t.Fatalf("db file = %q, want override", cfg.Store.File)
	}
	if cfg.Services.ProductsURL != "http://localhost:4000" {
		t.Fatalf("products url = %q, want override", cfg.Services.ProductsURL)
	}
}
